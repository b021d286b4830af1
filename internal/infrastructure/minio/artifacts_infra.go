package minio

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/DRSN-tech/visual-search/internal/repository/artifacts"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
)

// artifactObjects — ключи объектов и их content-type.
var artifactObjects = map[string]string{
	artifacts.VectorsFile:  "application/octet-stream",
	artifacts.PathsFile:    "text/plain",
	artifacts.MetadataFile: "application/json",
}

// ArtifactsInfrastructure выгружает артефакты индекса в MinIO и обратно,
// чтобы новые инстансы сервиса могли подтянуть индекс без пересборки.
type ArtifactsInfrastructure struct {
	objectRepo  usecase.ObjectRepository
	dataDir     string
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
	uploadLimit int
}

func NewArtifactsInfrastructure(objectRepo usecase.ObjectRepository, dataDir string, logger logger.Logger, shutdownCtx context.Context) *ArtifactsInfrastructure {
	return &ArtifactsInfrastructure{
		objectRepo:  objectRepo,
		dataDir:     dataDir,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		uploadLimit: 3,
	}
}

// Publish загружает все файлы артефактов параллельно. В случае ошибки
// отменяет остальные загрузки и запускает фоновую очистку уже загруженных.
func (m *ArtifactsInfrastructure) Publish(ctx context.Context) error {
	const op = "ArtifactsInfrastructure.Publish"

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keyCh := make(chan string, len(artifactObjects))
	errCh := make(chan error, len(artifactObjects))
	sem := make(chan struct{}, m.uploadLimit)

	var uploadWg sync.WaitGroup
	for name, contentType := range artifactObjects {
		uploadWg.Add(1)
		go func() {
			defer uploadWg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := m.objectRepo.UploadFile(ctx, name, filepath.Join(m.dataDir, name), contentType); err != nil {
				errCh <- fmt.Errorf("upload %s failed: %w", name, err)
				return
			}

			keyCh <- name
		}()
	}

	go func() {
		uploadWg.Wait()
		close(errCh)
		close(keyCh)
	}()

	keys := make([]string, 0, len(artifactObjects))
	published := false
	defer func() {
		if !published && len(keys) > 0 {
			m.wg.Add(1)
			go m.cleanupUploadedKeys(keys)
		}
	}()

	for completed := 0; completed < len(artifactObjects); {
		select {
		case key, ok := <-keyCh:
			if ok {
				keys = append(keys, key)
				completed++
			}
		case err, ok := <-errCh:
			if ok {
				cancel()
				return e.Wrap(op, err)
			}
		case <-ctx.Done():
			cancel()
			return e.Wrap(op, ctx.Err())
		}
	}

	published = true
	m.logger.Infof("%s: artifacts published", op)

	return nil
}

// Fetch скачивает артефакты индекса из MinIO в локальный каталог.
// Если полного набора в хранилище нет, локальные файлы не трогаются.
func (m *ArtifactsInfrastructure) Fetch(ctx context.Context) error {
	const op = "ArtifactsInfrastructure.Fetch"

	for name := range artifactObjects {
		exists, err := m.objectRepo.Exists(ctx, name)
		if err != nil {
			return e.Wrap(op, err)
		}
		if !exists {
			m.logger.Warnf("%s: object %s is missing, skipping fetch", op, name)
			return nil
		}
	}

	for name := range artifactObjects {
		if err := m.objectRepo.DownloadFile(ctx, name, filepath.Join(m.dataDir, name)); err != nil {
			return e.Wrap(op, err)
		}
	}

	m.logger.Infof("%s: artifacts fetched to %s", op, m.dataDir)

	return nil
}

// cleanupUploadedKeys удаляет указанные объекты с экспоненциальной задержкой и jitter.
func (m *ArtifactsInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done()
	const op = "ArtifactsInfrastructure.cleanupUploadedKeys"
	m.logger.Infof("%s: cleaning up partially published artifacts", op)

	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for _, key := range keys {
		backoff := time.Second
		for attempt := 0; attempt < 3; attempt++ {
			if err := m.objectRepo.Delete(ctx, key); err == nil {
				break
			}

			select {
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			default:
			}

			if attempt < 2 {
				jitter := time.Duration(time.Now().UnixNano() % int64(time.Second))
				sleepTime := backoff + jitter

				select {
				case <-time.After(sleepTime):
				case <-ctx.Done():
					m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
					return
				}
				backoff *= 2
			}
		}
	}
}

// WaitForCleanup ожидает завершения фоновых задач очистки с учётом таймаута завершения приложения.
func (m *ArtifactsInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}

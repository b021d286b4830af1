package usecase

import (
	"context"
	"os"
	"sync"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/google/uuid"
)

// BuildUseCase строит поисковый индекс по каталогу: скачивает изображения,
// векторизует их и сохраняет артефакты индекса.
type BuildUseCase struct {
	catalogRepo   CatalogRepository
	imageRepo     ImageRepository
	embedder      EmbedderInfra
	artifactRepo  ArtifactRepository
	embeddingRepo EmbeddingRepository
	artifacts     ArtifactsInfra
	events        EventsInfra
	logger        logger.Logger
	maxConcurrent int
}

func NewBuildUC(
	catalogRepo CatalogRepository,
	imageRepo ImageRepository,
	embedder EmbedderInfra,
	artifactRepo ArtifactRepository,
	embeddingRepo EmbeddingRepository,
	artifacts ArtifactsInfra,
	events EventsInfra,
	logger logger.Logger,
	maxConcurrent int,
) *BuildUseCase {
	return &BuildUseCase{
		catalogRepo:   catalogRepo,
		imageRepo:     imageRepo,
		embedder:      embedder,
		artifactRepo:  artifactRepo,
		embeddingRepo: embeddingRepo,
		artifacts:     artifacts,
		events:        events,
		logger:        logger,
		maxConcurrent: maxConcurrent,
	}
}

// resolvedItem — запись каталога с локальным файлом изображения.
type resolvedItem struct {
	item      domain.CatalogItem
	localPath string
}

// BuildIndex выполняет полный прогон индексации. Ошибка по отдельной
// записи каталога логируется и запись пропускается, прогон продолжается.
// Если не удалось проиндексировать ни одной записи, существующие
// артефакты не перезаписываются.
func (b *BuildUseCase) BuildIndex(ctx context.Context, req *BuildReq) (*BuildRes, error) {
	const op = "BuildUseCase.BuildIndex"

	items, err := b.catalogRepo.ListItems(ctx, req.Limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(items) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCatalog)
	}

	res := &BuildRes{TotalRows: len(items)}

	// Скачивание изображений с переиспользованием дискового кэша
	resolved := make([]resolvedItem, 0, len(items))
	for i := range items {
		localPath, cacheHit, err := b.imageRepo.Resolve(ctx, &items[i])
		if err != nil {
			res.ResolveFailed++
			b.logger.Warnf("catalog item %d skipped, image not resolved: %v", items[i].ID, e.Wrap(op, err))
			continue
		}

		if cacheHit {
			res.CacheHits++
		} else {
			res.Downloaded++
		}

		resolved = append(resolved, resolvedItem{item: items[i], localPath: localPath})
	}

	// Параллельная векторизация с сохранением порядка записей
	embedded, modelVersion := b.embedAll(ctx, resolved)

	records := make([]domain.IndexRecord, 0, len(resolved))
	for i, embedRes := range embedded {
		if embedRes == nil {
			res.EmbedFailed++
			b.logger.Warnf("catalog item %d skipped, embedding failed", resolved[i].item.ID)
			continue
		}

		meta := domain.NewItemMeta(&resolved[i].item, resolved[i].localPath)
		records = append(records, domain.NewIndexRecord(embedRes.Vector, resolved[i].localPath, meta))
	}

	if len(records) == 0 {
		return nil, e.Wrap(op, e.ErrNoRecords)
	}
	res.Indexed = len(records)

	if err := b.artifactRepo.Save(ctx, records); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Зеркалирование векторов во внешнюю векторную БД
	if err := b.mirrorEmbeddings(ctx, records, modelVersion); err != nil {
		b.logger.Warnf("failed to mirror embeddings: %v", e.Wrap(op, err))
	}

	// Выгрузка артефактов в объектное хранилище
	if err := b.artifacts.Publish(ctx); err != nil {
		b.logger.Warnf("failed to publish artifacts: %v", e.Wrap(op, err))
	}

	if err := b.events.IndexBuilt(ctx, res); err != nil {
		b.logger.Warnf("failed to publish index build event: %v", e.Wrap(op, err))
	}

	return res, nil
}

// embedAll векторизует изображения параллельно с ограничением конкурентности.
// Результаты позиционно соответствуют входу, неудачные — nil.
func (b *BuildUseCase) embedAll(ctx context.Context, resolved []resolvedItem) ([]*EmbedRes, string) {
	const op = "BuildUseCase.embedAll"

	embedded := make([]*EmbedRes, len(resolved))
	sem := make(chan struct{}, b.maxConcurrent)

	var wg sync.WaitGroup
	for i := range resolved {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			data, err := os.ReadFile(resolved[i].localPath)
			if err != nil {
				b.logger.Warnf("failed to read %s: %v", resolved[i].localPath, e.Wrap(op, err))
				return
			}

			embedRes, err := b.embedder.EmbedImage(ctx, data)
			if err != nil {
				b.logger.Warnf("failed to embed %s: %v", resolved[i].localPath, e.Wrap(op, err))
				return
			}

			embedded[i] = embedRes
		}()
	}
	wg.Wait()

	modelVersion := ""
	for _, embedRes := range embedded {
		if embedRes != nil && embedRes.ModelVersion != "" {
			modelVersion = embedRes.ModelVersion
			break
		}
	}

	return embedded, modelVersion
}

// mirrorEmbeddings сохраняет векторы индекса во внешней векторной БД
// с позицией записи в payload.
func (b *BuildUseCase) mirrorEmbeddings(ctx context.Context, records []domain.IndexRecord, modelVersion string) error {
	embeddings := make([]domain.Embedding, 0, len(records))
	for i, rec := range records {
		payload := domain.NewPayload(i, rec.LocalPath, modelVersion)
		embeddings = append(embeddings, *domain.NewEmbedding(uuid.NewString(), rec.Vector, payload))
	}

	return b.embeddingRepo.Upsert(ctx, embeddings)
}

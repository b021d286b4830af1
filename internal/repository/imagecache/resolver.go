package imagecache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/jimlawless/whereami"
)

const defaultExt = ".jpg"

// Resolver скачивает изображения каталога и кэширует их на диске.
// Имя файла детерминировано по записи каталога, поэтому повторная
// индексация переиспользует уже скачанные файлы.
type Resolver struct {
	imagesDir string
	client    *http.Client
}

func NewResolver(imagesDir string, timeout time.Duration) *Resolver {
	return &Resolver{
		imagesDir: imagesDir,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Resolve возвращает локальный путь к изображению записи каталога.
// Если файл уже в кэше, скачивание пропускается и cacheHit = true.
func (r *Resolver) Resolve(ctx context.Context, item *domain.CatalogItem) (string, bool, error) {
	if item.ImageURL == "" {
		return "", false, e.Wrap(whereami.WhereAmI(), fmt.Errorf("catalog item %d has no image url", item.ID))
	}

	localPath := filepath.Join(r.imagesDir, CacheFileName(item))
	if _, err := os.Stat(localPath); err == nil {
		return localPath, true, nil
	}

	if err := os.MkdirAll(r.imagesDir, 0o755); err != nil {
		return "", false, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.download(ctx, item.ImageURL, localPath); err != nil {
		return "", false, e.Wrap(whereami.WhereAmI(), err)
	}

	return localPath, false, nil
}

func (r *Resolver) download(ctx context.Context, rawURL, localPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	tmp := localPath + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, localPath)
}

// CacheFileName возвращает детерминированное имя файла в кэше:
// id_<id> для записей с идентификатором, иначе url_<sha1[:16]> от URL.
func CacheFileName(item *domain.CatalogItem) string {
	stem := ""
	if item.ID > 0 {
		stem = fmt.Sprintf("id_%d", item.ID)
	} else {
		sum := sha1.Sum([]byte(item.ImageURL))
		stem = "url_" + hex.EncodeToString(sum[:])[:16]
	}

	return stem + extFromURL(item.ImageURL)
}

func extFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return defaultExt
	}

	ext := strings.ToLower(path.Ext(parsed.Path))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return defaultExt
	}
}

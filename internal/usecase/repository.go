package usecase

import (
	"context"

	"github.com/DRSN-tech/visual-search/internal/domain"
)

type CatalogRepository interface {
	ListItems(ctx context.Context, limit int) ([]domain.CatalogItem, error)
}

// SimilarityRepository — поиск ближайших векторов по косинусной близости.
type SimilarityRepository interface {
	Search(ctx context.Context, vector []float32, k int) ([]Hit, error)
	Size() int
}

// ArtifactRepository — персистентное хранилище записей индекса.
type ArtifactRepository interface {
	Save(ctx context.Context, records []domain.IndexRecord) error
	Load(ctx context.Context) ([]domain.IndexRecord, error)
}

// ImageRepository — разрешение URL каталога в локальный файл с кэшем.
type ImageRepository interface {
	Resolve(ctx context.Context, item *domain.CatalogItem) (localPath string, cacheHit bool, err error)
}

// CacheRepository — кэш готовых ответов поиска. Промах — (nil, nil).
type CacheRepository interface {
	GetResponse(ctx context.Context, key string) (*MatchRes, error)
	SetResponse(ctx context.Context, key string, res *MatchRes) error
}

// ObjectRepository — объектное хранилище файлов артефактов.
type ObjectRepository interface {
	UploadFile(ctx context.Context, objectName, filePath, contentType string) error
	DownloadFile(ctx context.Context, objectName, filePath string) error
	Exists(ctx context.Context, objectName string) (bool, error)
	Delete(ctx context.Context, objectName string) error
}

// EmbeddingRepository — зеркало векторов во внешней векторной БД.
type EmbeddingRepository interface {
	Upsert(ctx context.Context, vectors []domain.Embedding) error
}

package usecase

import (
	"context"

	"github.com/DRSN-tech/visual-search/internal/domain"
)

// EmbedderInfra — получение векторного представления изображения
// от ML-сервиса. Вектор на выходе всегда нормализован.
type EmbedderInfra interface {
	EmbedImage(ctx context.Context, data []byte) (*EmbedRes, error)
}

// DetectorInfra — детекция объектов на изображении. Реализация может
// быть заглушкой: тогда возвращается пустой список без ошибки.
type DetectorInfra interface {
	DetectObjects(ctx context.Context, data []byte) ([]domain.Region, error)
}

// EventsInfra — публикация доменных событий.
type EventsInfra interface {
	SearchPerformed(ctx context.Context, req *SearchEventReq) error
	IndexBuilt(ctx context.Context, res *BuildRes) error
}

// ArtifactsInfra — выгрузка артефактов индекса во внешнее объектное
// хранилище и обратно.
type ArtifactsInfra interface {
	Publish(ctx context.Context) error
	Fetch(ctx context.Context) error
}

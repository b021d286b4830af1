package ml_service

import (
	"context"
	"time"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/proto"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/jimlawless/whereami"
)

// Detector клиент детекции объектов на том же ML-сервисе.
type Detector struct {
	client      proto.VisionServiceClient
	callTimeout time.Duration
}

func NewDetector(client proto.VisionServiceClient, callTimeout time.Duration) *Detector {
	return &Detector{
		client:      client,
		callTimeout: callTimeout,
	}
}

// DetectObjects возвращает найденные на изображении объекты.
// Фильтрация по классам и уверенности остаётся на стороне вызывающего.
func (d *Detector) DetectObjects(ctx context.Context, data []byte) ([]domain.Region, error) {
	callCtx, cancel := context.WithTimeout(ctx, d.callTimeout)
	defer cancel()

	res, err := d.client.DetectObjects(callCtx, &proto.DetectObjectsRequest{
		ImageData: data,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	regions := make([]domain.Region, 0, len(res.Detections))
	for _, det := range res.Detections {
		regions = append(regions, *domain.NewRegion(
			det.Label,
			det.Confidence,
			int(det.X1), int(det.Y1), int(det.X2), int(det.Y2),
		))
	}

	return regions, nil
}

// NoopDetector — заглушка, когда детектор выключен конфигурацией.
// Пустая выдача переводит поиск в режим одного региона на весь кадр.
type NoopDetector struct{}

func NewNoopDetector() *NoopDetector { return &NoopDetector{} }

func (NoopDetector) DetectObjects(context.Context, []byte) ([]domain.Region, error) {
	return nil, nil
}

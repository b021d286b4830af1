package ml_service

import (
	"context"
	"fmt"
	"time"

	"github.com/DRSN-tech/visual-search/internal/proto"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/jitter"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/DRSN-tech/visual-search/pkg/vecmath"
)

// MLService клиент для взаимодействия с внешним ML-сервисом векторизации.
type MLService struct {
	client      proto.VisionServiceClient
	maxRetries  int
	callTimeout time.Duration
	vectorSize  int
	logger      logger.Logger
}

func NewMLService(client proto.VisionServiceClient, maxRetries int, callTimeout time.Duration, vectorSize int, logger logger.Logger) *MLService {
	return &MLService{
		client:      client,
		maxRetries:  maxRetries,
		callTimeout: callTimeout,
		vectorSize:  vectorSize,
		logger:      logger,
	}
}

// EmbedImage запрашивает векторное представление изображения с retry-логикой
// и экспоненциальной задержкой. Вектор на выходе нормализован.
func (m *MLService) EmbedImage(ctx context.Context, data []byte) (*usecase.EmbedRes, error) {
	const (
		op         = "MLService.EmbedImage"
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	for attempt := 0; attempt < m.maxRetries; attempt++ {
		res, err := m.embedOnce(ctx, data)
		if err == nil {
			return res, nil
		}

		if attempt == m.maxRetries-1 {
			return nil, e.Wrap(op, fmt.Errorf("all %d attempts failed: %w", m.maxRetries, err))
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		m.logger.Warnf("embedding failed, retrying in %v (attempt %d): %v", sleepTime, attempt+1, err)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return nil, e.Wrap(op, ctx.Err())
		}
	}

	return nil, e.Wrap(op, fmt.Errorf("unreachable"))
}

// embedOnce выполняет один вызов ML-сервиса с таймаутом и валидирует ответ.
func (m *MLService) embedOnce(ctx context.Context, data []byte) (*usecase.EmbedRes, error) {
	callCtx, cancel := context.WithTimeout(ctx, m.callTimeout)
	defer cancel()

	res, err := m.client.EmbedImage(callCtx, &proto.EmbedImageRequest{
		ImageData: data,
		ImageType: "jpeg",
	})
	if err != nil {
		return nil, err
	}

	if len(res.Vector) == 0 {
		return nil, e.ErrEmptyVector
	}
	if m.vectorSize > 0 && len(res.Vector) != m.vectorSize {
		return nil, fmt.Errorf("%w: got %d, want %d", e.ErrVectorDimMismatch, len(res.Vector), m.vectorSize)
	}
	if !vecmath.IsFinite(res.Vector) {
		return nil, fmt.Errorf("model returned non-finite vector")
	}

	return usecase.NewEmbedRes(vecmath.Normalize(res.Vector), res.ModelVersion), nil
}

package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/imaging"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// minDetectionConfidence — порог уверенности детектора, регионы ниже отбрасываются.
	minDetectionConfidence = 0.30
	// defaultMatchTitle подставляется, когда у записи каталога нет ни имени, ни категории.
	defaultMatchTitle = "Match"

	cacheTimeout = 500 * time.Millisecond
	eventTimeout = 2 * time.Second
)

// furnitureLabels — классы детектора, по которым имеет смысл искать в каталоге.
var furnitureLabels = map[string]struct{}{
	"chair":    {},
	"couch":    {},
	"sofa":     {},
	"table":    {},
	"bed":      {},
	"cabinet":  {},
	"desk":     {},
	"dresser":  {},
	"armchair": {},
}

// MatchUseCase реализует поиск похожих товаров каталога по изображению.
type MatchUseCase struct {
	index      SimilarityRepository
	records    []domain.IndexRecord
	embedder   EmbedderInfra
	detector   DetectorInfra
	cacheRepo  CacheRepository
	events     EventsInfra
	logger     logger.Logger
	scratchDir string
	topK       int
}

func NewMatchUC(
	index SimilarityRepository,
	records []domain.IndexRecord,
	embedder EmbedderInfra,
	detector DetectorInfra,
	cacheRepo CacheRepository,
	events EventsInfra,
	logger logger.Logger,
	scratchDir string,
	topK int,
) *MatchUseCase {
	return &MatchUseCase{
		index:      index,
		records:    records,
		embedder:   embedder,
		detector:   detector,
		cacheRepo:  cacheRepo,
		events:     events,
		logger:     logger,
		scratchDir: scratchDir,
		topK:       topK,
	}
}

// MatchImage обрабатывает загруженное изображение: предлагает регионы,
// векторизует каждый и ищет ближайшие записи каталога.
func (m *MatchUseCase) MatchImage(ctx context.Context, req *MatchReq) (*MatchRes, error) {
	const op = "MatchUseCase.MatchImage"

	if err := m.validateRequest(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Проверка готовности индекса до любой работы с изображением
	if m.index == nil || m.index.Size() == 0 || len(m.records) == 0 {
		return nil, e.Wrap(op, e.ErrIndexNotBuilt)
	}

	// Поиск готового ответа в кэше
	cacheKey := m.cacheKey(req.Data)
	if cached, err := m.cacheRepo.GetResponse(ctx, cacheKey); err != nil {
		m.logger.Warnf("failed to probe response cache: %v", e.Wrap(op, err))
	} else if cached != nil {
		return cached, nil
	}

	// Scratch-копия запроса на время обработки
	scratchPath, err := m.saveScratch(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err := os.Remove(scratchPath); err != nil {
			m.logger.Warnf("failed to remove scratch file %s: %v", scratchPath, err)
		}
	}()

	img, _, err := imaging.Decode(req.Data)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	regions := m.proposeRegions(ctx, req.Data, width, height)

	results := make([]RegionMatches, 0, len(regions))
	modelVersion := ""
	totalMatches := 0
	for _, region := range regions {
		matches, version, err := m.matchRegion(ctx, img, req.Data, region)
		if err != nil {
			// Ошибка по одному региону не роняет запрос целиком
			m.logger.Warnf("region %q skipped: %v", region.Label, e.Wrap(op, err))
			continue
		}

		if version != "" {
			modelVersion = version
		}
		totalMatches += len(matches)

		results = append(results, RegionMatches{
			Label:      region.Label,
			Confidence: region.Confidence,
			X1:         region.X1,
			Y1:         region.Y1,
			X2:         region.X2,
			Y2:         region.Y2,
			Matches:    matches,
		})
	}

	if len(results) == 0 {
		return nil, e.Wrap(op, e.ErrNoRegions)
	}

	res := NewMatchRes(results)

	// Фоновое сохранение ответа в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
		defer cancel()

		if err := m.cacheRepo.SetResponse(bgCtx, cacheKey, res); err != nil {
			m.logger.Warnf("failed to cache match response in background: %v", e.Wrap(op, err))
		}
	}()

	// Фоновая публикация события поиска
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), eventTimeout)
		defer cancel()

		if err := m.events.SearchPerformed(bgCtx, NewSearchEventReq(len(results), totalMatches, modelVersion)); err != nil {
			m.logger.Warnf("failed to publish search event: %v", e.Wrap(op, err))
		}
	}()

	return res, nil
}

// proposeRegions спрашивает детектор и фильтрует его выдачу по порогу
// уверенности, списку классов мебели и границам изображения.
// Если пригодных регионов нет, возвращается один регион на весь кадр.
func (m *MatchUseCase) proposeRegions(ctx context.Context, data []byte, width, height int) []domain.Region {
	const op = "MatchUseCase.proposeRegions"

	detections, err := m.detector.DetectObjects(ctx, data)
	if err != nil {
		m.logger.Warnf("detector unavailable, falling back to full frame: %v", e.Wrap(op, err))
		return []domain.Region{*domain.FullRegion(width, height)}
	}

	regions := make([]domain.Region, 0, len(detections))
	for _, det := range detections {
		if det.Confidence < minDetectionConfidence {
			continue
		}
		if _, ok := furnitureLabels[strings.ToLower(det.Label)]; !ok {
			continue
		}
		if !det.Clamp(width, height) {
			continue
		}

		regions = append(regions, det)
	}

	if len(regions) == 0 {
		return []domain.Region{*domain.FullRegion(width, height)}
	}

	return regions
}

// matchRegion векторизует регион и ищет ближайшие записи каталога.
func (m *MatchUseCase) matchRegion(ctx context.Context, img image.Image, data []byte, region domain.Region) ([]Match, string, error) {
	regionData := data
	if region.Label != domain.FullRegionLabel {
		crop := imaging.Crop(img, region.X1, region.Y1, region.X2, region.Y2)

		encoded, err := imaging.EncodeJPEG(crop)
		if err != nil {
			return nil, "", err
		}
		regionData = encoded
	}

	embedRes, err := m.embedder.EmbedImage(ctx, regionData)
	if err != nil {
		return nil, "", err
	}

	hits, err := m.index.Search(ctx, embedRes.Vector, m.topK)
	if err != nil {
		return nil, "", err
	}

	matches := make([]Match, 0, len(hits))
	for _, hit := range hits {
		if hit.Index < 0 || hit.Index >= len(m.records) {
			continue
		}

		matches = append(matches, m.projectMatch(hit, m.records[hit.Index]))
	}

	return matches, embedRes.ModelVersion, nil
}

// projectMatch собирает клиентское представление записи каталога.
func (m *MatchUseCase) projectMatch(hit Hit, rec domain.IndexRecord) Match {
	title := rec.Meta.Name
	if title == "" {
		title = rec.Meta.Title
	}
	if title == "" {
		title = rec.Meta.Category
	}
	if title == "" {
		title = defaultMatchTitle
	}

	preview := rec.Meta.ImageURL
	if preview == "" {
		preview = rec.LocalPath
	}

	price := ""
	if rec.Meta.Price > 0 {
		price = decimal.NewFromInt(rec.Meta.Price).Div(decimal.NewFromInt(100)).StringFixed(2)
	}

	return Match{
		Score:        hit.Score,
		Title:        title,
		Image:        preview,
		Price:        price,
		ExternalURL:  rec.Meta.ExternalURL,
		PinterestURL: rec.Meta.PinterestURL,
		ImagePath:    rec.LocalPath,
	}
}

// saveScratch сохраняет запрос во временный файл обработки.
func (m *MatchUseCase) saveScratch(req *MatchReq) (string, error) {
	if err := os.MkdirAll(m.scratchDir, 0o755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(req.Filename))
	if ext == "" {
		ext = ".jpg"
	}

	path := filepath.Join(m.scratchDir, uuid.NewString()+ext)
	if err := os.WriteFile(path, req.Data, 0o644); err != nil {
		return "", err
	}

	return path, nil
}

func (m *MatchUseCase) validateRequest(req *MatchReq) error {
	if req == nil || len(req.Data) == 0 {
		return e.ErrNoImage
	}

	return nil
}

// cacheKey — детерминированный ключ ответа по содержимому изображения и topK.
func (m *MatchUseCase) cacheKey(data []byte) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf("match:%s:%d", hex.EncodeToString(sum[:]), m.topK)
}

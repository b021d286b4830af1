package usecase

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"
	"testing"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/imaging"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FAKES

type fakeIndex struct {
	hits []Hit
	size int
}

func (f *fakeIndex) Search(context.Context, []float32, int) ([]Hit, error) {
	return f.hits, nil
}

func (f *fakeIndex) Size() int { return f.size }

type fakeEmbedder struct {
	mu     sync.Mutex
	calls  int
	failOn int // начиная с какого вызова возвращать ошибку, 0 — никогда
}

func (f *fakeEmbedder) EmbedImage(context.Context, []byte) (*EmbedRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.failOn > 0 && f.calls >= f.failOn {
		return nil, fmt.Errorf("ml service is down")
	}

	return NewEmbedRes([]float32{1, 0, 0}, "clip-vit-b32"), nil
}

func (f *fakeEmbedder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeDetector struct {
	regions []domain.Region
	err     error
}

func (f *fakeDetector) DetectObjects(context.Context, []byte) ([]domain.Region, error) {
	return f.regions, f.err
}

type fakeCache struct {
	mu    sync.Mutex
	store map[string]*MatchRes
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]*MatchRes)}
}

func (f *fakeCache) GetResponse(_ context.Context, key string) (*MatchRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store[key], nil
}

func (f *fakeCache) SetResponse(_ context.Context, key string, res *MatchRes) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = res
	return nil
}

type fakeEvents struct {
	mu       sync.Mutex
	searches []SearchEventReq
	builds   []BuildRes
}

func (f *fakeEvents) SearchPerformed(_ context.Context, req *SearchEventReq) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, *req)
	return nil
}

func (f *fakeEvents) IndexBuilt(_ context.Context, res *BuildRes) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.builds = append(f.builds, *res)
	return nil
}

// HELPERS

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}

	data, err := imaging.EncodeJPEG(img)
	require.NoError(t, err)
	return data
}

func testIndexRecords() []domain.IndexRecord {
	return []domain.IndexRecord{
		domain.NewIndexRecord(
			[]float32{1, 0, 0},
			"/data/images/id_1.jpg",
			domain.ItemMeta{ID: 1, Name: "Диван угловой", Category: "sofa", ImageURL: "https://cdn.example.com/1.jpg", Price: 12999},
		),
		domain.NewIndexRecord(
			[]float32{0, 1, 0},
			"/data/images/id_2.jpg",
			domain.ItemMeta{ID: 2, Title: "Кресло", Category: "chair"},
		),
		domain.NewIndexRecord(
			[]float32{0, 0, 1},
			"/data/images/id_3.jpg",
			domain.ItemMeta{ID: 3, Category: "table"},
		),
		domain.NewIndexRecord(
			[]float32{1, 1, 0},
			"/data/images/id_4.jpg",
			domain.ItemMeta{ID: 4},
		),
	}
}

func newTestMatchUC(t *testing.T, index SimilarityRepository, detector DetectorInfra, embedder EmbedderInfra, cache CacheRepository) *MatchUseCase {
	t.Helper()

	return NewMatchUC(
		index,
		testIndexRecords(),
		embedder,
		detector,
		cache,
		&fakeEvents{},
		logger.NewNopLogger(),
		t.TempDir(),
		10,
	)
}

// TESTS

func TestMatchUseCase_IndexNotBuilt(t *testing.T) {
	embedder := &fakeEmbedder{}
	uc := NewMatchUC(
		&fakeIndex{size: 0},
		nil,
		embedder,
		&fakeDetector{},
		newFakeCache(),
		&fakeEvents{},
		logger.NewNopLogger(),
		t.TempDir(),
		10,
	)

	// Намеренно мусорные байты: проверка индекса идёт до декодирования
	_, err := uc.MatchImage(context.Background(), NewMatchReq([]byte("not an image"), "x.jpg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrIndexNotBuilt)
	assert.Equal(t, 0, embedder.callCount())
}

func TestMatchUseCase_FullFrameFallback(t *testing.T) {
	index := &fakeIndex{size: 3, hits: []Hit{{Index: 0, Score: 0.93}, {Index: 1, Score: 0.55}}}
	uc := newTestMatchUC(t, index, &fakeDetector{}, &fakeEmbedder{}, newFakeCache())

	res, err := uc.MatchImage(context.Background(), NewMatchReq(testJPEG(t, 64, 48), "room.jpg"))
	require.NoError(t, err)
	require.Len(t, res.Results, 1)

	region := res.Results[0]
	assert.Equal(t, domain.FullRegionLabel, region.Label)
	assert.Equal(t, float32(1.0), region.Confidence)
	assert.Equal(t, 0, region.X1)
	assert.Equal(t, 0, region.Y1)
	assert.Equal(t, 64, region.X2)
	assert.Equal(t, 48, region.Y2)
	require.Len(t, region.Matches, 2)
}

func TestMatchUseCase_RegionFiltering(t *testing.T) {
	detector := &fakeDetector{
		regions: []domain.Region{
			{Label: "chair", Confidence: 0.8, X1: 5, Y1: 5, X2: 40, Y2: 40},     // остаётся
			{Label: "chair", Confidence: 0.1, X1: 0, Y1: 0, X2: 30, Y2: 30},     // ниже порога
			{Label: "person", Confidence: 0.9, X1: 0, Y1: 0, X2: 30, Y2: 30},    // не мебель
			{Label: "table", Confidence: 0.9, X1: 70, Y1: 10, X2: 200, Y2: 40}, // за границей кадра
		},
	}
	index := &fakeIndex{size: 3, hits: []Hit{{Index: 1, Score: 0.7}}}
	uc := newTestMatchUC(t, index, detector, &fakeEmbedder{}, newFakeCache())

	res, err := uc.MatchImage(context.Background(), NewMatchReq(testJPEG(t, 64, 48), "room.jpg"))
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "chair", res.Results[0].Label)
	assert.Equal(t, 40, res.Results[0].X2)
}

func TestMatchUseCase_DetectorErrorFallsBackToFullFrame(t *testing.T) {
	detector := &fakeDetector{err: fmt.Errorf("detector unavailable")}
	index := &fakeIndex{size: 3, hits: []Hit{{Index: 0, Score: 0.5}}}
	uc := newTestMatchUC(t, index, detector, &fakeEmbedder{}, newFakeCache())

	res, err := uc.MatchImage(context.Background(), NewMatchReq(testJPEG(t, 32, 32), "room.jpg"))
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, domain.FullRegionLabel, res.Results[0].Label)
}

func TestMatchUseCase_CorruptImageLeavesNoScratch(t *testing.T) {
	scratchDir := t.TempDir()
	uc := NewMatchUC(
		&fakeIndex{size: 3, hits: []Hit{}},
		testIndexRecords(),
		&fakeEmbedder{},
		&fakeDetector{},
		newFakeCache(),
		&fakeEvents{},
		logger.NewNopLogger(),
		scratchDir,
		10,
	)

	_, err := uc.MatchImage(context.Background(), NewMatchReq([]byte("broken bytes"), "x.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrUnsupportedImage)

	entries, err := os.ReadDir(scratchDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMatchUseCase_CacheHitSkipsPipeline(t *testing.T) {
	cache := newFakeCache()
	embedder := &fakeEmbedder{}
	uc := newTestMatchUC(t, &fakeIndex{size: 3}, &fakeDetector{}, embedder, cache)

	data := testJPEG(t, 16, 16)
	cached := NewMatchRes([]RegionMatches{{Label: "full", Matches: []Match{}}})
	require.NoError(t, cache.SetResponse(context.Background(), uc.cacheKey(data), cached))

	res, err := uc.MatchImage(context.Background(), NewMatchReq(data, "room.jpg"))
	require.NoError(t, err)
	assert.Equal(t, cached, res)
	assert.Equal(t, 0, embedder.callCount())
}

func TestMatchUseCase_Projection(t *testing.T) {
	index := &fakeIndex{size: 4, hits: []Hit{
		{Index: 0, Score: 0.9},
		{Index: 1, Score: 0.6},
		{Index: 2, Score: 0.3},
		{Index: 3, Score: 0.1},
	}}
	uc := newTestMatchUC(t, index, &fakeDetector{}, &fakeEmbedder{}, newFakeCache())

	res, err := uc.MatchImage(context.Background(), NewMatchReq(testJPEG(t, 32, 32), "room.jpg"))
	require.NoError(t, err)
	require.Len(t, res.Results, 1)

	matches := res.Results[0].Matches
	require.Len(t, matches, 4)

	assert.Equal(t, "Диван угловой", matches[0].Title)
	assert.Equal(t, "129.99", matches[0].Price)
	assert.Equal(t, "https://cdn.example.com/1.jpg", matches[0].Image)

	// Имени нет, берётся title из метаданных
	assert.Equal(t, "Кресло", matches[1].Title)
	assert.Empty(t, matches[1].Price)
	assert.Equal(t, "/data/images/id_2.jpg", matches[1].Image)

	// Ни имени, ни title — категория
	assert.Equal(t, "table", matches[2].Title)

	// Пустые метаданные
	assert.Equal(t, "Match", matches[3].Title)
}

func TestMatchUseCase_EmbedFailureSkipsRegion(t *testing.T) {
	detector := &fakeDetector{
		regions: []domain.Region{
			{Label: "chair", Confidence: 0.9, X1: 0, Y1: 0, X2: 20, Y2: 20},
			{Label: "sofa", Confidence: 0.9, X1: 10, Y1: 10, X2: 30, Y2: 30},
		},
	}
	index := &fakeIndex{size: 3, hits: []Hit{{Index: 0, Score: 0.8}}}
	embedder := &fakeEmbedder{failOn: 2}
	uc := newTestMatchUC(t, index, detector, embedder, newFakeCache())

	res, err := uc.MatchImage(context.Background(), NewMatchReq(testJPEG(t, 64, 64), "room.jpg"))
	require.NoError(t, err)
	assert.Len(t, res.Results, 1)
}

func TestMatchUseCase_AllRegionsFail(t *testing.T) {
	embedder := &fakeEmbedder{failOn: 1}
	uc := newTestMatchUC(t, &fakeIndex{size: 3}, &fakeDetector{}, embedder, newFakeCache())

	_, err := uc.MatchImage(context.Background(), NewMatchReq(testJPEG(t, 32, 32), "room.jpg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrNoRegions)
}

func TestMatchUseCase_EmptyRequest(t *testing.T) {
	uc := newTestMatchUC(t, &fakeIndex{size: 3}, &fakeDetector{}, &fakeEmbedder{}, newFakeCache())

	_, err := uc.MatchImage(context.Background(), NewMatchReq(nil, ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrNoImage)
}

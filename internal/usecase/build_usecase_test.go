package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FAKES

type fakeCatalog struct {
	items []domain.CatalogItem
	err   error
}

func (f *fakeCatalog) ListItems(_ context.Context, limit int) ([]domain.CatalogItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && limit < len(f.items) {
		return f.items[:limit], nil
	}
	return f.items, nil
}

// fakeResolver пишет настоящие файлы, BuildIndex читает их с диска.
type fakeResolver struct {
	dir      string
	failIDs  map[int64]bool
	cacheIDs map[int64]bool
}

func (f *fakeResolver) Resolve(_ context.Context, item *domain.CatalogItem) (string, bool, error) {
	if f.failIDs[item.ID] {
		return "", false, fmt.Errorf("download failed for item %d", item.ID)
	}

	path := filepath.Join(f.dir, fmt.Sprintf("id_%d.jpg", item.ID))
	if err := os.WriteFile(path, []byte("image bytes"), 0o644); err != nil {
		return "", false, err
	}

	return path, f.cacheIDs[item.ID], nil
}

type fakeArtifactRepo struct {
	mu    sync.Mutex
	saved [][]domain.IndexRecord
}

func (f *fakeArtifactRepo) Save(_ context.Context, records []domain.IndexRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, records)
	return nil
}

func (f *fakeArtifactRepo) Load(context.Context) ([]domain.IndexRecord, error) {
	return nil, nil
}

type fakeMirror struct {
	mu       sync.Mutex
	upserted []domain.Embedding
}

func (f *fakeMirror) Upsert(_ context.Context, vectors []domain.Embedding) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserted = append(f.upserted, vectors...)
	return nil
}

type fakePublisher struct {
	published int
}

func (f *fakePublisher) Publish(context.Context) error { f.published++; return nil }
func (f *fakePublisher) Fetch(context.Context) error   { return nil }

// HELPERS

func testCatalogItems() []domain.CatalogItem {
	return []domain.CatalogItem{
		{ID: 1, Name: "Кресло", Category: "chair", ImageURL: "https://cdn.example.com/1.jpg", Price: 4999},
		{ID: 2, Name: "Диван", Category: "sofa", ImageURL: "https://cdn.example.com/2.jpg", Price: 19999},
		{ID: 3, Name: "Стол", Category: "table", ImageURL: "https://cdn.example.com/3.jpg", Price: 8999},
	}
}

type buildFixture struct {
	catalog   *fakeCatalog
	resolver  *fakeResolver
	embedder  *fakeEmbedder
	artifacts *fakeArtifactRepo
	mirror    *fakeMirror
	publisher *fakePublisher
	events    *fakeEvents
	uc        *BuildUseCase
}

func newBuildFixture(t *testing.T) *buildFixture {
	t.Helper()

	f := &buildFixture{
		catalog:   &fakeCatalog{items: testCatalogItems()},
		resolver:  &fakeResolver{dir: t.TempDir(), failIDs: map[int64]bool{}, cacheIDs: map[int64]bool{}},
		embedder:  &fakeEmbedder{},
		artifacts: &fakeArtifactRepo{},
		mirror:    &fakeMirror{},
		publisher: &fakePublisher{},
		events:    &fakeEvents{},
	}
	f.uc = NewBuildUC(
		f.catalog,
		f.resolver,
		f.embedder,
		f.artifacts,
		f.mirror,
		f.publisher,
		f.events,
		logger.NewNopLogger(),
		4,
	)

	return f
}

// TESTS

func TestBuildUseCase_HappyPath(t *testing.T) {
	f := newBuildFixture(t)
	f.resolver.cacheIDs[2] = true

	res, err := f.uc.BuildIndex(context.Background(), NewBuildReq(0))
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalRows)
	assert.Equal(t, 3, res.Indexed)
	assert.Equal(t, 1, res.CacheHits)
	assert.Equal(t, 2, res.Downloaded)
	assert.Equal(t, 0, res.ResolveFailed)
	assert.Equal(t, 0, res.EmbedFailed)

	require.Len(t, f.artifacts.saved, 1)
	records := f.artifacts.saved[0]
	require.Len(t, records, 3)

	// Порядок записей совпадает с порядком каталога
	assert.Equal(t, int64(1), records[0].Meta.ID)
	assert.Equal(t, int64(2), records[1].Meta.ID)
	assert.Equal(t, int64(3), records[2].Meta.ID)
	assert.Equal(t, "Кресло", records[0].Meta.Name)
	assert.Contains(t, records[0].LocalPath, "id_1.jpg")

	// Зеркало и публикация артефактов вызваны
	assert.Len(t, f.mirror.upserted, 3)
	assert.Equal(t, int64(0), f.mirror.upserted[0].Payload["record_index"])
	assert.Equal(t, 1, f.publisher.published)
	assert.Len(t, f.events.builds, 1)
}

func TestBuildUseCase_ResolveFailureSkipsItem(t *testing.T) {
	f := newBuildFixture(t)
	f.resolver.failIDs[2] = true

	res, err := f.uc.BuildIndex(context.Background(), NewBuildReq(0))
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalRows)
	assert.Equal(t, 2, res.Indexed)
	assert.Equal(t, 1, res.ResolveFailed)

	require.Len(t, f.artifacts.saved, 1)
	records := f.artifacts.saved[0]
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].Meta.ID)
	assert.Equal(t, int64(3), records[1].Meta.ID)
}

func TestBuildUseCase_EmptyCatalog(t *testing.T) {
	f := newBuildFixture(t)
	f.catalog.items = nil

	_, err := f.uc.BuildIndex(context.Background(), NewBuildReq(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrEmptyCatalog)
	assert.Empty(t, f.artifacts.saved)
}

func TestBuildUseCase_AllEmbedsFailDoesNotPersist(t *testing.T) {
	f := newBuildFixture(t)
	f.embedder.failOn = 1

	_, err := f.uc.BuildIndex(context.Background(), NewBuildReq(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrNoRecords)
	assert.Empty(t, f.artifacts.saved)
	assert.Empty(t, f.mirror.upserted)
	assert.Equal(t, 0, f.publisher.published)
}

func TestBuildUseCase_LimitRespected(t *testing.T) {
	f := newBuildFixture(t)

	res, err := f.uc.BuildIndex(context.Background(), NewBuildReq(2))
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalRows)
	assert.Equal(t, 2, res.Indexed)
}

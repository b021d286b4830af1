package artifacts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []domain.IndexRecord {
	return []domain.IndexRecord{
		domain.NewIndexRecord(
			[]float32{0.1, 0.2, 0.3},
			"/data/images/id_1.jpg",
			domain.ItemMeta{ID: 1, Name: "Кресло", Category: "chair", ImageURL: "https://example.com/1.jpg", LocalPath: "/data/images/id_1.jpg"},
		),
		domain.NewIndexRecord(
			[]float32{0.4, 0.5, 0.6},
			"/data/images/id_2.jpg",
			domain.ItemMeta{ID: 2, Category: "sofa", LocalPath: "/data/images/id_2.jpg"},
		),
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir(), logger.NewNopLogger())

	want := testRecords()
	require.NoError(t, store.Save(context.Background(), want))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(want))

	for i := range want {
		assert.Equal(t, want[i].Vector, got[i].Vector)
		assert.Equal(t, want[i].LocalPath, got[i].LocalPath)
		assert.Equal(t, want[i].Meta, got[i].Meta)
	}
}

func TestStore_LoadMissingFiles(t *testing.T) {
	store := NewStore(t.TempDir(), logger.NewNopLogger())

	records, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_LoadLengthMismatch(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, logger.NewNopLogger())
	require.NoError(t, store.Save(context.Background(), testRecords()))

	// Обрезаем список путей до одной строки.
	require.NoError(t, os.WriteFile(filepath.Join(dir, PathsFile), []byte("/data/images/id_1.jpg"), 0o644))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrArtifactsCorrupt)
}

func TestStore_LoadCorruptVectors(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, logger.NewNopLogger())
	require.NoError(t, store.Save(context.Background(), testRecords()))

	data, err := os.ReadFile(filepath.Join(dir, VectorsFile))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, VectorsFile), data[:len(data)-2], 0o644))

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrArtifactsCorrupt)
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, logger.NewNopLogger())
	require.NoError(t, store.Save(context.Background(), testRecords()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp")
	}
}

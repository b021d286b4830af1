package flatindex

import (
	"context"
	"testing"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatIndex_SearchOrdersByScore(t *testing.T) {
	idx, err := NewFromRecords(3, []domain.IndexRecord{
		{Vector: []float32{1, 0, 0}},
		{Vector: []float32{0, 1, 0}},
		{Vector: []float32{0.9, 0.1, 0}},
	})
	require.NoError(t, err)

	hits, err := idx.Search(context.Background(), []float32{1, 0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	assert.Equal(t, 0, hits[0].Index)
	assert.Equal(t, 2, hits[1].Index)
	assert.Equal(t, 1, hits[2].Index)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-5)
	assert.InDelta(t, 0.0, hits[2].Score, 1e-5)
}

func TestFlatIndex_SearchKLargerThanSize(t *testing.T) {
	idx, err := NewFromRecords(2, []domain.IndexRecord{
		{Vector: []float32{1, 0}},
		{Vector: []float32{0, 1}},
	})
	require.NoError(t, err)

	hits, err := idx.Search(context.Background(), []float32{1, 1}, 10)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestFlatIndex_SearchEmptyIndex(t *testing.T) {
	idx := NewFlatIndex(4)

	hits, err := idx.Search(context.Background(), []float32{1, 0, 0, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestFlatIndex_QueryNormalizationIdempotent(t *testing.T) {
	idx, err := NewFromRecords(2, []domain.IndexRecord{
		{Vector: []float32{3, 4}},
		{Vector: []float32{-1, 2}},
	})
	require.NoError(t, err)

	raw, err := idx.Search(context.Background(), []float32{6, 8}, 2)
	require.NoError(t, err)
	unit, err := idx.Search(context.Background(), []float32{0.6, 0.8}, 2)
	require.NoError(t, err)

	require.Len(t, raw, 2)
	require.Len(t, unit, 2)
	for i := range raw {
		assert.Equal(t, unit[i].Index, raw[i].Index)
		assert.InDelta(t, unit[i].Score, raw[i].Score, 1e-5)
	}
}

func TestFlatIndex_AddDimMismatch(t *testing.T) {
	idx := NewFlatIndex(3)

	err := idx.Add([]float32{1, 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrVectorDimMismatch)

	err = idx.Add(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrEmptyVector)
}

func TestFlatIndex_MarshalRoundTrip(t *testing.T) {
	idx, err := NewFromRecords(3, []domain.IndexRecord{
		{Vector: []float32{1, 2, 3}},
		{Vector: []float32{-4, 5, -6}},
	})
	require.NoError(t, err)

	data, err := idx.MarshalBinary()
	require.NoError(t, err)

	restored := NewFlatIndex(0)
	require.NoError(t, restored.UnmarshalBinary(data))
	assert.Equal(t, idx.Size(), restored.Size())

	want, err := idx.Search(context.Background(), []float32{1, 1, 1}, 2)
	require.NoError(t, err)
	got, err := restored.Search(context.Background(), []float32{1, 1, 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFlatIndex_UnmarshalTruncated(t *testing.T) {
	idx, err := NewFromRecords(2, []domain.IndexRecord{{Vector: []float32{1, 0}}})
	require.NoError(t, err)

	data, err := idx.MarshalBinary()
	require.NoError(t, err)

	restored := NewFlatIndex(0)
	err = restored.UnmarshalBinary(data[:len(data)-3])
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrArtifactsCorrupt)
}

package flatindex

import (
	"bytes"
	"context"
	"encoding/binary"
	"sort"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/vecmath"
	"github.com/jimlawless/whereami"
)

// FlatIndex плоский in-memory индекс по скалярному произведению.
// Векторы нормализованы при добавлении, поэтому скалярное произведение
// совпадает с косинусной близостью. Magnitudes предвычислены один раз.
type FlatIndex struct {
	dim        int
	vectors    [][]float32
	magnitudes []float32
}

func NewFlatIndex(dim int) *FlatIndex {
	return &FlatIndex{
		dim:        dim,
		vectors:    make([][]float32, 0),
		magnitudes: make([]float32, 0),
	}
}

// NewFromRecords строит индекс по векторам записей каталога.
// Порядок векторов в индексе совпадает с порядком записей.
func NewFromRecords(dim int, records []domain.IndexRecord) (*FlatIndex, error) {
	idx := NewFlatIndex(dim)
	for _, rec := range records {
		if err := idx.Add(rec.Vector); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return idx, nil
}

// Size возвращает количество векторов в индексе.
func (f *FlatIndex) Size() int {
	return len(f.vectors)
}

// Add нормализует и добавляет вектор в конец индекса.
func (f *FlatIndex) Add(vector []float32) error {
	if len(vector) == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrEmptyVector)
	}
	if len(vector) != f.dim {
		return e.Wrap(whereami.WhereAmI(), e.ErrVectorDimMismatch)
	}

	normalized := vecmath.Normalize(vector)
	f.vectors = append(f.vectors, normalized)
	f.magnitudes = append(f.magnitudes, vecmath.Magnitude(normalized))

	return nil
}

// Search возвращает не более k ближайших векторов по убыванию близости.
// Запрос нормализуется сам, повторная нормализация не меняет результат.
// Для пустого индекса возвращается пустой срез без ошибки.
func (f *FlatIndex) Search(_ context.Context, vector []float32, k int) ([]usecase.Hit, error) {
	if len(vector) != f.dim {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrVectorDimMismatch)
	}
	if k <= 0 || len(f.vectors) == 0 {
		return []usecase.Hit{}, nil
	}

	query := vecmath.Normalize(vector)
	queryMag := vecmath.Magnitude(query)

	hits := make([]usecase.Hit, 0, len(f.vectors))
	for i, stored := range f.vectors {
		score := vecmath.CosineSimilarity(query, stored, queryMag, f.magnitudes[i])
		hits = append(hits, usecase.Hit{Index: i, Score: score})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if k < len(hits) {
		hits = hits[:k]
	}

	return hits, nil
}

// MarshalBinary сериализует индекс: dim, count и векторы подряд (little-endian).
func (f *FlatIndex) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, uint32(f.dim)); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(f.vectors))); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	for _, vector := range f.vectors {
		if err := binary.Write(buf, binary.LittleEndian, vector); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary восстанавливает индекс из сериализованного представления.
func (f *FlatIndex) UnmarshalBinary(data []byte) error {
	buf := bytes.NewReader(data)

	var dim, count uint32
	if err := binary.Read(buf, binary.LittleEndian, &dim); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.ErrArtifactsCorrupt)
	}
	if err := binary.Read(buf, binary.LittleEndian, &count); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.ErrArtifactsCorrupt)
	}
	if buf.Len() != int(dim)*int(count)*4 {
		return e.Wrap(whereami.WhereAmI(), e.ErrArtifactsCorrupt)
	}

	vectors := make([][]float32, 0, count)
	magnitudes := make([]float32, 0, count)
	for i := uint32(0); i < count; i++ {
		vector := make([]float32, dim)
		if err := binary.Read(buf, binary.LittleEndian, vector); err != nil {
			return e.Wrap(whereami.WhereAmI(), e.ErrArtifactsCorrupt)
		}
		vectors = append(vectors, vector)
		magnitudes = append(magnitudes, vecmath.Magnitude(vector))
	}

	f.dim = int(dim)
	f.vectors = vectors
	f.magnitudes = magnitudes

	return nil
}

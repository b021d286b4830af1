package qdrant

import (
	"context"

	"github.com/DRSN-tech/visual-search/internal/cfg"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/vecmath"
	"github.com/jimlawless/whereami"
	"github.com/qdrant/go-client/qdrant"
)

// SearchRepo — поиск ближайших векторов поверх коллекции Qdrant.
// Позиция записи локального индекса хранится в payload каждой точки,
// поэтому выдача Qdrant проецируется на те же записи, что и плоский индекс.
type SearchRepo struct {
	client *qdrant.Client
	cfg    *cfg.QdrantCfg
	size   int
}

// NewSearchRepo создаёт репозиторий. size — количество записей локального
// индекса, с которым согласована коллекция.
func NewSearchRepo(client *qdrant.Client, cfg *cfg.QdrantCfg, size int) *SearchRepo {
	return &SearchRepo{
		client: client,
		cfg:    cfg,
		size:   size,
	}
}

// Search возвращает не более k ближайших точек по косинусной близости.
func (q *SearchRepo) Search(ctx context.Context, vector []float32, k int) ([]usecase.Hit, error) {
	if k <= 0 || q.size == 0 {
		return []usecase.Hit{}, nil
	}

	query := vecmath.Normalize(vector)
	limit := uint64(k)

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Query:          qdrant.NewQuery(query...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	hits := make([]usecase.Hit, 0, len(points))
	for _, point := range points {
		recordIndex, ok := point.Payload["record_index"]
		if !ok {
			continue
		}

		hits = append(hits, usecase.NewHit(int(recordIndex.GetIntegerValue()), point.Score))
	}

	return hits, nil
}

// Size возвращает количество записей, с которым согласована коллекция.
func (q *SearchRepo) Size() int {
	return q.size
}

package pgdb

import (
	"context"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CatalogRepo читает каталог товаров из PostgreSQL.
type CatalogRepo struct {
	pool *pgxpool.Pool
	conv converter.CatalogConverter
}

func NewCatalogRepo(pool *pgxpool.Pool, conv converter.CatalogConverter) *CatalogRepo {
	return &CatalogRepo{
		pool: pool,
		conv: conv,
	}
}

// ListItems возвращает записи каталога с изображениями в порядке добавления.
// limit <= 0 означает выборку без ограничения.
func (c *CatalogRepo) ListItems(ctx context.Context, limit int) ([]domain.CatalogItem, error) {
	query := `
		SELECT
			id,
			COALESCE(name, ''),
			COALESCE(category, ''),
			COALESCE(style, ''),
			COALESCE(price, 0),
			image_url,
			COALESCE(pinterest_url, ''),
			COALESCE(external_url, ''),
			created_at
		FROM products
		WHERE image_url IS NOT NULL AND image_url <> ''
		ORDER BY id
	`

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = c.pool.Query(ctx, query+" LIMIT $1", limit)
	} else {
		rows, err = c.pool.Query(ctx, query)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.CatalogItem, 0)
	for rows.Next() {
		var model converter.CatalogItemModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Category, &model.Style,
			&model.Price, &model.ImageURL, &model.PinterestURL,
			&model.ExternalURL, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

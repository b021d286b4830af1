package converter

import "time"

// CatalogItemModel представляет запись таблицы products в PostgreSQL.
type CatalogItemModel struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Category     string    `db:"category"`
	Style        string    `db:"style"`
	Price        int64     `db:"price"`
	ImageURL     string    `db:"image_url"`
	PinterestURL string    `db:"pinterest_url"`
	ExternalURL  string    `db:"external_url"`
	CreatedAt    time.Time `db:"created_at"`
}

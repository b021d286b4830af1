package domain

import "time"

// CatalogItem описывает запись каталога товаров.
// Каталог принадлежит внешней системе, записи неизменяемы после загрузки.
type CatalogItem struct {
	ID           int64
	Name         string
	Category     string
	Style        string
	Price        int64 // Цена хранится в копейках
	ImageURL     string
	ExternalURL  string
	PinterestURL string
	CreatedAt    time.Time
}

func NewCatalogItem(id int64, name, category, style string, price int64, imageURL, externalURL, pinterestURL string) *CatalogItem {
	return &CatalogItem{
		ID:           id,
		Name:         name,
		Category:     category,
		Style:        style,
		Price:        price,
		ImageURL:     imageURL,
		ExternalURL:  externalURL,
		PinterestURL: pinterestURL,
	}
}

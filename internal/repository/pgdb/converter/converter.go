package converter

import (
	"github.com/DRSN-tech/visual-search/internal/domain"
)

// CatalogConverter преобразует записи каталога между domain и моделью PostgreSQL.
type CatalogConverter interface {
	ToModel(entity *domain.CatalogItem) *CatalogItemModel
	ToEntity(model *CatalogItemModel) *domain.CatalogItem
}

type catalogConverter struct{}

func NewCatalogConverter() CatalogConverter {
	return &catalogConverter{}
}

func (catalogConverter) ToModel(entity *domain.CatalogItem) *CatalogItemModel {
	return &CatalogItemModel{
		ID:           entity.ID,
		Name:         entity.Name,
		Category:     entity.Category,
		Style:        entity.Style,
		Price:        entity.Price,
		ImageURL:     entity.ImageURL,
		PinterestURL: entity.PinterestURL,
		ExternalURL:  entity.ExternalURL,
		CreatedAt:    entity.CreatedAt,
	}
}

func (catalogConverter) ToEntity(model *CatalogItemModel) *domain.CatalogItem {
	return &domain.CatalogItem{
		ID:           model.ID,
		Name:         model.Name,
		Category:     model.Category,
		Style:        model.Style,
		Price:        model.Price,
		ImageURL:     model.ImageURL,
		PinterestURL: model.PinterestURL,
		ExternalURL:  model.ExternalURL,
		CreatedAt:    model.CreatedAt,
	}
}

package domain

// ItemMeta — проекция полей каталога, сохраняемая рядом с вектором.
// Сериализуется в metadata.json, порядок полей совпадает с артефактом.
type ItemMeta struct {
	ID           int64  `json:"id"`
	Name         string `json:"name,omitempty"`
	Title        string `json:"title,omitempty"`
	Category     string `json:"category"`
	Style        string `json:"style"`
	ImageURL     string `json:"image_url"`
	PinterestURL string `json:"pinterest_url"`
	ExternalURL  string `json:"external_url"`
	Price        int64  `json:"price"`
	LocalPath    string `json:"local_path"`
}

// IndexRecord связывает вектор изображения, локальный путь и метаданные
// в одной записи. Позиция записи в срезе и есть её идентификатор в индексе.
type IndexRecord struct {
	Vector    []float32
	LocalPath string
	Meta      ItemMeta
}

func NewIndexRecord(vector []float32, localPath string, meta ItemMeta) IndexRecord {
	return IndexRecord{
		Vector:    vector,
		LocalPath: localPath,
		Meta:      meta,
	}
}

// NewItemMeta строит проекцию метаданных из записи каталога.
func NewItemMeta(item *CatalogItem, localPath string) ItemMeta {
	return ItemMeta{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		Style:        item.Style,
		ImageURL:     item.ImageURL,
		PinterestURL: item.PinterestURL,
		ExternalURL:  item.ExternalURL,
		Price:        item.Price,
		LocalPath:    localPath,
	}
}

package usecase

// MATCH USECASE

// MatchReq — запрос поиска похожих товаров по изображению.
type MatchReq struct {
	Data     []byte // байты изображения
	Filename string // оригинальное имя файла (для scratch-копии и логов)
}

// Match — один найденный товар каталога.
type Match struct {
	Score        float32 `json:"score"`
	Title        string  `json:"title"`
	Image        string  `json:"image"`
	Price        string  `json:"price,omitempty"`
	ExternalURL  string  `json:"external_url,omitempty"`
	PinterestURL string  `json:"pinterest_url,omitempty"`
	ImagePath    string  `json:"image_path,omitempty"`
}

// RegionMatches — результаты поиска для одного региона изображения.
type RegionMatches struct {
	Label      string  `json:"label"`
	Confidence float32 `json:"confidence"`
	X1         int     `json:"x1"`
	Y1         int     `json:"y1"`
	X2         int     `json:"x2"`
	Y2         int     `json:"y2"`
	Matches    []Match `json:"matches"`
}

// MatchRes — ответ поиска: по блоку результатов на каждый регион.
type MatchRes struct {
	Results []RegionMatches `json:"results"`
}

// BUILD USECASE

// BuildReq — запрос построения индекса.
type BuildReq struct {
	Limit int // максимум записей каталога, 0 — без ограничения
}

// BuildRes — счётчики прогона индексации.
type BuildRes struct {
	TotalRows     int
	Indexed       int
	CacheHits     int
	Downloaded    int
	ResolveFailed int
	EmbedFailed   int
}

// REPOSITORIES

// Hit — позиция в индексе и её близость к запросу.
type Hit struct {
	Index int
	Score float32
}

// INFRASTRUCTURE

// EmbedRes — результат векторизации одного изображения.
type EmbedRes struct {
	Vector       []float32
	ModelVersion string
}

// SearchEventReq — данные события выполненного поиска.
type SearchEventReq struct {
	Regions      int
	TotalMatches int
	ModelVersion string
}

// MAPPERS

func NewMatchReq(data []byte, filename string) *MatchReq {
	return &MatchReq{
		Data:     data,
		Filename: filename,
	}
}

func NewMatchRes(results []RegionMatches) *MatchRes {
	return &MatchRes{
		Results: results,
	}
}

func NewBuildReq(limit int) *BuildReq {
	return &BuildReq{
		Limit: limit,
	}
}

func NewHit(index int, score float32) Hit {
	return Hit{
		Index: index,
		Score: score,
	}
}

func NewEmbedRes(vector []float32, modelVersion string) *EmbedRes {
	return &EmbedRes{
		Vector:       vector,
		ModelVersion: modelVersion,
	}
}

func NewSearchEventReq(regions int, totalMatches int, modelVersion string) *SearchEventReq {
	return &SearchEventReq{
		Regions:      regions,
		TotalMatches: totalMatches,
		ModelVersion: modelVersion,
	}
}

package domain

import "time"

// Payload описывает дополнительную информацию вектора
type Payload map[string]any

// Embedding представляет эмбеддинг одного изображения каталога
// в том виде, в котором он зеркалируется во внешнее векторное хранилище.
type Embedding struct {
	ID      string
	Vector  []float32
	Payload Payload
}

func NewEmbedding(id string, vector []float32, payload Payload) *Embedding {
	return &Embedding{
		ID:      id,
		Vector:  vector,
		Payload: payload,
	}
}

// NewPayload собирает payload вектора: позиция записи в локальном индексе,
// путь к изображению и версия модели.
func NewPayload(recordIndex int, imagePath string, modelVersion string) Payload {
	return Payload{
		"record_index":  int64(recordIndex),
		"image_path":    imagePath,
		"created_at":    time.Now().UTC().UnixNano(),
		"model_version": modelVersion,
	}
}

package e

import "fmt"

var (
	// Внутренние ошибки с векторами и индексом
	ErrIndexNotBuilt     = fmt.Errorf("similarity index not built or empty, run the indexer first")
	ErrEmptyVector       = fmt.Errorf("vector embedding is empty")
	ErrVectorDimMismatch = fmt.Errorf("vector dimension mismatch")
	ErrArtifactsCorrupt  = fmt.Errorf("index artifacts are inconsistent")
	ErrEmptyCatalog      = fmt.Errorf("catalog is empty or unreachable")
	ErrNoRegions         = fmt.Errorf("no region could be embedded")
	ErrNoRecords         = fmt.Errorf("no catalog record could be indexed")

	// 400 Bad Request
	ErrExpectedMultipart = fmt.Errorf("expected multipart/form-data request")
	ErrNoImage           = fmt.Errorf("no image provided")
	ErrFileTooLarge      = fmt.Errorf("uploaded file is too large")
	ErrUnsupportedImage  = fmt.Errorf("unsupported image format (cannot decode), use JPG/PNG/GIF/WEBP")
	ErrStatusBadRequest  = fmt.Errorf("bad request")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

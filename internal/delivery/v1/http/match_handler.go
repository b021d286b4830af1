package http

import (
	"net/http"

	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
)

type MatchHandler struct {
	matchUsecase usecase.MatcherUC
	logger       logger.Logger
}

func NewMatchHandler(matchUsecase usecase.MatcherUC, logger logger.Logger) *MatchHandler {
	return &MatchHandler{matchUsecase: matchUsecase, logger: logger}
}

// matchImage
//
//	@Summary		Поиск похожих товаров по изображению
//	@Description	Принимает изображение интерьера, находит на нём мебель и возвращает похожие товары каталога для каждого региона
//	@Tags			match
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file			true	"Изображение (JPG/PNG/GIF/WEBP)"
//	@Success		200		{object}	SuccessResponse	"Результаты поиска по регионам"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		503		{object}	ErrorResponse	"Индекс ещё не построен"
//	@Router			/match [post]
func (m *MatchHandler) matchImage(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 16 << 20
		maxFileSize         = 15 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		m.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		m.logger.Warnf("%d %s: image field is missing", http.StatusBadRequest, e.ErrStatusBadRequest.Error())
		WriteError(w, e.ErrNoImage)
		return
	}

	data, err := readImageFile(files[0], maxFileSize)
	if err != nil {
		m.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := m.matchUsecase.MatchImage(r.Context(), usecase.NewMatchReq(data, files[0].Filename))
	if err != nil {
		m.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewSuccessResponse(res.Results))
}

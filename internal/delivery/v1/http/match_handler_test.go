package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMatcher struct {
	res *usecase.MatchRes
	err error
	got *usecase.MatchReq
}

func (f *fakeMatcher) MatchImage(_ context.Context, req *usecase.MatchReq) (*usecase.MatchRes, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func newTestRouter(t *testing.T, matcher usecase.MatcherUC) *chi.Mux {
	t.Helper()

	mux := chi.NewRouter()
	router := NewRouter(mux, logger.NewNopLogger())
	router.Init(matcher)
	return mux
}

func multipartBody(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestMatchHandler_Success(t *testing.T) {
	matcher := &fakeMatcher{
		res: usecase.NewMatchRes([]usecase.RegionMatches{
			{
				Label:      "full",
				Confidence: 1.0,
				X2:         640,
				Y2:         480,
				Matches: []usecase.Match{
					{Score: 0.91, Title: "Кресло", Image: "https://cdn.example.com/1.jpg", Price: "49.99"},
				},
			},
		}),
	}
	mux := newTestRouter(t, matcher)

	body, contentType := multipartBody(t, "image", "room.jpg", []byte("image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Status  string                  `json:"status"`
		Results []usecase.RegionMatches `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
	require.Len(t, envelope.Results, 1)
	assert.Equal(t, "full", envelope.Results[0].Label)
	require.Len(t, envelope.Results[0].Matches, 1)
	assert.Equal(t, "Кресло", envelope.Results[0].Matches[0].Title)

	require.NotNil(t, matcher.got)
	assert.Equal(t, "room.jpg", matcher.got.Filename)
	assert.Equal(t, []byte("image bytes"), matcher.got.Data)
}

func TestMatchHandler_NotMultipart(t *testing.T) {
	mux := newTestRouter(t, &fakeMatcher{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", bytes.NewBufferString(`{"x":1}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorEnvelope(t, rec.Body.Bytes())
}

func TestMatchHandler_MissingImageField(t *testing.T) {
	mux := newTestRouter(t, &fakeMatcher{})

	body, contentType := multipartBody(t, "file", "room.jpg", []byte("image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorEnvelope(t, rec.Body.Bytes())
}

func TestMatchHandler_UnsupportedImage(t *testing.T) {
	mux := newTestRouter(t, &fakeMatcher{err: e.Wrap("MatchUseCase.MatchImage", e.ErrUnsupportedImage)})

	body, contentType := multipartBody(t, "image", "notes.txt", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertErrorEnvelope(t, rec.Body.Bytes())
}

func TestMatchHandler_IndexNotBuilt(t *testing.T) {
	mux := newTestRouter(t, &fakeMatcher{err: e.Wrap("MatchUseCase.MatchImage", e.ErrIndexNotBuilt)})

	body, contentType := multipartBody(t, "image", "room.jpg", []byte("image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assertErrorEnvelope(t, rec.Body.Bytes())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t, &fakeMatcher{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func assertErrorEnvelope(t *testing.T, body []byte) {
	t.Helper()

	var envelope ErrorResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.NotEmpty(t, envelope.Message)
}

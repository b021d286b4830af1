package imagecache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheFileName(t *testing.T) {
	tests := []struct {
		name string
		item domain.CatalogItem
		want string
	}{
		{
			name: "по идентификатору",
			item: domain.CatalogItem{ID: 42, ImageURL: "https://cdn.example.com/photos/sofa.png"},
			want: "id_42.png",
		},
		{
			name: "без идентификатора хэш от URL",
			item: domain.CatalogItem{ImageURL: "https://cdn.example.com/photos/sofa.png"},
			want: "url_",
		},
		{
			name: "неизвестное расширение",
			item: domain.CatalogItem{ID: 7, ImageURL: "https://cdn.example.com/img?id=7"},
			want: "id_7.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CacheFileName(&tt.item)
			if tt.item.ID > 0 {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Contains(t, got, tt.want)
				assert.Len(t, got, len("url_")+16+len(".png"))
			}
		})
	}
}

func TestResolver_DownloadAndCacheHit(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("fake image bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	resolver := NewResolver(dir, 5*time.Second)
	item := &domain.CatalogItem{ID: 1, ImageURL: srv.URL + "/img.jpg"}

	localPath, cacheHit, err := resolver.Resolve(context.Background(), item)
	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.Equal(t, filepath.Join(dir, "id_1.jpg"), localPath)

	data, err := os.ReadFile(localPath)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	_, cacheHit, err = resolver.Resolve(context.Background(), item)
	require.NoError(t, err)
	assert.True(t, cacheHit)
	assert.Equal(t, 1, calls)
}

func TestResolver_DownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	resolver := NewResolver(t.TempDir(), 5*time.Second)
	item := &domain.CatalogItem{ID: 2, ImageURL: srv.URL + "/missing.jpg"}

	_, _, err := resolver.Resolve(context.Background(), item)
	require.Error(t, err)
}

func TestResolver_NoImageURL(t *testing.T) {
	resolver := NewResolver(t.TempDir(), time.Second)

	_, _, err := resolver.Resolve(context.Background(), &domain.CatalogItem{ID: 3})
	require.Error(t, err)
}

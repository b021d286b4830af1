package redis

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/visual-search/internal/cfg"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/clients"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*CacheRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := clients.NewRedisClient(&cfg.RedisCfg{
		Addr:        mr.Addr(),
		DialTimeout: time.Second,
		Timeout:     time.Second,
	})

	repo := NewCacheRepo(client, &cfg.RedisCfg{ResponseTTL: time.Minute}, logger.NewNopLogger())
	return repo, mr
}

func TestCacheRepo_RoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	res := usecase.NewMatchRes([]usecase.RegionMatches{
		{
			Label:      "full",
			Confidence: 1.0,
			X2:         640,
			Y2:         480,
			Matches: []usecase.Match{
				{Score: 0.92, Title: "Диван", Image: "https://cdn.example.com/1.jpg", Price: "129.99"},
			},
		},
	})

	const key = "match:abc:10"
	require.NoError(t, repo.SetResponse(ctx, key, res))

	got, err := repo.GetResponse(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, res, got)
}

func TestCacheRepo_Miss(t *testing.T) {
	repo, _ := newTestRepo(t)

	got, err := repo.GetResponse(context.Background(), "match:missing:10")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheRepo_CorruptEntryTreatedAsMiss(t *testing.T) {
	repo, mr := newTestRepo(t)
	require.NoError(t, mr.Set("match:bad:10", "{not json"))

	got, err := repo.GetResponse(context.Background(), "match:bad:10")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheRepo_TTLApplied(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetResponse(ctx, "match:ttl:10", usecase.NewMatchRes(nil)))
	assert.Greater(t, mr.TTL("match:ttl:10"), time.Duration(0))

	mr.FastForward(2 * time.Minute)
	got, err := repo.GetResponse(ctx, "match:ttl:10")
	require.NoError(t, err)
	assert.Nil(t, got)
}

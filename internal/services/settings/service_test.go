package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"equifund/internal/models"
	"equifund/internal/repositories/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSettingRepo struct {
	setting *models.PlatformSetting
	err     error
	calls   int
}

func (r *stubSettingRepo) GetLatest(context.Context) (*models.PlatformSetting, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.setting, nil
}

func (r *stubSettingRepo) Create(_ context.Context, setting *models.PlatformSetting) error {
	r.setting = setting
	return nil
}

func newTestCache(t *testing.T) *cache.CacheService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewCacheService(client, time.Minute)
}

func TestDefaultCurrencyID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the configured currency", func(t *testing.T) {
		repo := &stubSettingRepo{setting: &models.PlatformSetting{ID: 1, CurrencyID: 3}}
		svc := NewService(repo, newTestCache(t))

		id, err := svc.DefaultCurrencyID(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint(3), id)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		repo := &stubSettingRepo{err: errors.New("db down")}
		svc := NewService(repo, newTestCache(t))

		_, err := svc.DefaultCurrencyID(ctx)
		assert.Error(t, err)
	})
}

func TestGetUsesCache(t *testing.T) {
	ctx := context.Background()
	repo := &stubSettingRepo{setting: &models.PlatformSetting{ID: 1, SiteName: "EquiFund", CurrencyID: 2}}
	svc := NewService(repo, newTestCache(t))

	first, err := svc.Get(ctx)
	require.NoError(t, err)

	second, err := svc.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.CurrencyID, second.CurrencyID)
	assert.Equal(t, 1, repo.calls, "second read should come from cache")
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	repo := &stubSettingRepo{setting: &models.PlatformSetting{ID: 1, CurrencyID: 2}}
	svc := NewService(repo, newTestCache(t))

	_, err := svc.Get(ctx)
	require.NoError(t, err)

	repo.setting = &models.PlatformSetting{ID: 1, CurrencyID: 5}
	require.NoError(t, svc.Invalidate(ctx))

	id, err := svc.DefaultCurrencyID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(5), id)
	assert.Equal(t, 2, repo.calls)
}

func TestNilCacheTolerated(t *testing.T) {
	ctx := context.Background()
	repo := &stubSettingRepo{setting: &models.PlatformSetting{ID: 1, CurrencyID: 4}}
	svc := NewService(repo, nil)

	id, err := svc.DefaultCurrencyID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(4), id)
	require.NoError(t, svc.Invalidate(ctx))
}

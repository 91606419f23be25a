// Package settings serves platform-wide configuration, most importantly the
// default currency used whenever a request does not name one. Settings are
// read often and change rarely, so reads go through a TTL cache.
package settings

import (
	"context"
	"fmt"

	"equifund/internal/models"
	"equifund/internal/repositories"
	"equifund/internal/repositories/cache"
)

const settingsCacheKey = "platform:settings"

// Service resolves platform settings.
type Service interface {
	Get(ctx context.Context) (*models.PlatformSetting, error)
	// DefaultCurrencyID returns the platform default currency.
	DefaultCurrencyID(ctx context.Context) (uint, error)
	// Invalidate drops the cached settings, forcing a re-read on the next
	// lookup. Called after the admin updates platform settings.
	Invalidate(ctx context.Context) error
}

type service struct {
	repo  repositories.SettingRepository
	cache *cache.CacheService
}

func NewService(repo repositories.SettingRepository, cacheService *cache.CacheService) Service {
	if repo == nil {
		panic("setting repository is required")
	}
	return &service{
		repo:  repo,
		cache: cacheService,
	}
}

func (s *service) Get(ctx context.Context) (*models.PlatformSetting, error) {
	if s.cache != nil {
		var cached models.PlatformSetting
		if found, err := s.cache.Get(ctx, settingsCacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	setting, err := s.repo.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load platform settings: %w", err)
	}

	if s.cache != nil {
		// Cache failures only cost the next caller a DB read.
		_ = s.cache.Set(ctx, settingsCacheKey, setting)
	}
	return setting, nil
}

func (s *service) DefaultCurrencyID(ctx context.Context) (uint, error) {
	setting, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return setting.CurrencyID, nil
}

func (s *service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, settingsCacheKey)
}

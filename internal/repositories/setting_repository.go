package repositories

import (
	"context"
	"errors"
	"fmt"

	"equifund/internal/models"

	"gorm.io/gorm"
)

type SettingRepository interface {
	// GetLatest returns the most recent platform settings row.
	GetLatest(ctx context.Context) (*models.PlatformSetting, error)
	Create(ctx context.Context, setting *models.PlatformSetting) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetLatest(ctx context.Context) (*models.PlatformSetting, error) {
	var setting models.PlatformSetting
	if err := r.db.WithContext(ctx).Order("id DESC").First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get platform settings: %w", err)
	}
	return &setting, nil
}

func (r *settingRepository) Create(ctx context.Context, setting *models.PlatformSetting) error {
	if err := r.db.WithContext(ctx).Create(setting).Error; err != nil {
		return fmt.Errorf("failed to create platform settings: %w", err)
	}
	return nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"equifund/internal/models"

	"gorm.io/gorm"
)

type CurrencyRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Currency, error)
	ListByIDs(ctx context.Context, ids []uint) ([]models.Currency, error)
	Create(ctx context.Context, currency *models.Currency) error
}

type currencyRepository struct {
	db *gorm.DB
}

func NewCurrencyRepository(db *gorm.DB) CurrencyRepository {
	return &currencyRepository{db: db}
}

func (r *currencyRepository) GetByID(ctx context.Context, id uint) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.WithContext(ctx).First(&currency, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCurrencyNotFound
		}
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}
	return &currency, nil
}

func (r *currencyRepository) ListByIDs(ctx context.Context, ids []uint) ([]models.Currency, error) {
	var currencies []models.Currency
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&currencies).Error; err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}

func (r *currencyRepository) Create(ctx context.Context, currency *models.Currency) error {
	if err := r.db.WithContext(ctx).Create(currency).Error; err != nil {
		return fmt.Errorf("failed to create currency: %w", err)
	}
	return nil
}

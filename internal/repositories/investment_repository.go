package repositories

import (
	"context"
	"fmt"

	"equifund/internal/models"

	"gorm.io/gorm"
)

type InvestmentRepository interface {
	// DistinctCurrencyIDs returns the currencies the user has invested in.
	DistinctCurrencyIDs(ctx context.Context, userID uint) ([]uint, error)
	ListByUserAndCurrency(ctx context.Context, userID, currencyID uint, limit int) ([]models.Investment, error)
	CountByUserAndCurrency(ctx context.Context, userID, currencyID uint) (int64, error)
}

type investmentRepository struct {
	db *gorm.DB
}

func NewInvestmentRepository(db *gorm.DB) InvestmentRepository {
	return &investmentRepository{db: db}
}

func (r *investmentRepository) DistinctCurrencyIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Investment{}).
		Where("user_id = ?", userID).
		Distinct("currency_id").
		Pluck("currency_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invested currencies: %w", err)
	}
	return ids, nil
}

func (r *investmentRepository) ListByUserAndCurrency(ctx context.Context, userID, currencyID uint, limit int) ([]models.Investment, error) {
	var investments []models.Investment
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND currency_id = ?", userID, currencyID).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&investments).Error; err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return investments, nil
}

func (r *investmentRepository) CountByUserAndCurrency(ctx context.Context, userID, currencyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Investment{}).
		Where("user_id = ? AND currency_id = ?", userID, currencyID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count investments: %w", err)
	}
	return count, nil
}

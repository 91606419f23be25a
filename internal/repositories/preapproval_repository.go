package repositories

import (
	"context"
	"errors"
	"fmt"

	"equifund/internal/models"

	"gorm.io/gorm"
)

type PreapprovalRepository interface {
	Create(ctx context.Context, preapproval *models.WalletPreapproval) error
	GetByID(ctx context.Context, id uint) (*models.WalletPreapproval, error)
	Delete(ctx context.Context, id uint) error
}

type preapprovalRepository struct {
	db *gorm.DB
}

func NewPreapprovalRepository(db *gorm.DB) PreapprovalRepository {
	return &preapprovalRepository{db: db}
}

func (r *preapprovalRepository) Create(ctx context.Context, preapproval *models.WalletPreapproval) error {
	if err := r.db.WithContext(ctx).Create(preapproval).Error; err != nil {
		return fmt.Errorf("failed to create wallet preapproval: %w", err)
	}
	return nil
}

func (r *preapprovalRepository) GetByID(ctx context.Context, id uint) (*models.WalletPreapproval, error) {
	var preapproval models.WalletPreapproval
	if err := r.db.WithContext(ctx).First(&preapproval, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreapprovalNotFound
		}
		return nil, fmt.Errorf("failed to get wallet preapproval: %w", err)
	}
	return &preapproval, nil
}

func (r *preapprovalRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.WalletPreapproval{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete wallet preapproval: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPreapprovalNotFound
	}
	return nil
}

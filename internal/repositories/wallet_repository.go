package repositories

import (
	"context"
	"errors"
	"fmt"

	"equifund/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WalletRepository interface {
	Create(ctx context.Context, wallet *models.Wallet) error
	GetByUserAndCurrency(ctx context.Context, userID, currencyID uint) (*models.Wallet, error)
	// CountByKey counts wallets matching the full (user, walletId,
	// currency) key, used by the idempotent provisioning check.
	CountByKey(ctx context.Context, userID uint, walletID string, currencyID uint) (int64, error)
	// UpdateAmount persists the reconciled balance. The reconciler is the
	// only caller.
	UpdateAmount(ctx context.Context, userID, currencyID uint, amount decimal.Decimal) error
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	if err := r.db.WithContext(ctx).Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) GetByUserAndCurrency(ctx context.Context, userID, currencyID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND currency_id = ?", userID, currencyID).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) CountByKey(ctx context.Context, userID uint, walletID string, currencyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Wallet{}).
		Where("user_id = ? AND wallet_id = ? AND currency_id = ?", userID, walletID, currencyID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count wallets: %w", err)
	}
	return count, nil
}

func (r *walletRepository) UpdateAmount(ctx context.Context, userID, currencyID uint, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&models.Wallet{}).
		Where("user_id = ? AND currency_id = ?", userID, currencyID).
		Update("wallet_amount", amount)
	if result.Error != nil {
		return fmt.Errorf("failed to update wallet amount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

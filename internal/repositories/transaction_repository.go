package repositories

import (
	"context"
	"errors"
	"fmt"

	"equifund/internal/models"

	"gorm.io/gorm"
)

// AdminTransactionFilter narrows the admin transaction listing.
type AdminTransactionFilter struct {
	Statuses          []models.TransactionStatus
	TransactionType   int
	WalletType        models.WalletType
	TransactionNumber string
	Limit             int
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *models.WalletTransaction) error
	// CreateAndConsumePreapproval durably creates the ledger entry and
	// deletes the originating preapproval in a single database
	// transaction, so a topup can never be credited twice.
	CreateAndConsumePreapproval(ctx context.Context, tx *models.WalletTransaction, preapprovalID uint) error
	GetByID(ctx context.Context, id uint) (*models.WalletTransaction, error)
	// ListForBalance returns every non-declined ledger entry for the
	// (user, currency) pair, the reconciler's input snapshot.
	ListForBalance(ctx context.Context, userID, currencyID uint) ([]models.WalletTransaction, error)
	ListByUserAndCurrency(ctx context.Context, userID, currencyID uint, limit int) ([]models.WalletTransaction, error)
	CountByUserAndCurrency(ctx context.Context, userID, currencyID uint) (int64, error)
	ListAdmin(ctx context.Context, filter AdminTransactionFilter) ([]models.WalletTransaction, error)
	CountAdmin(ctx context.Context, filter AdminTransactionFilter) (int64, error)
	UpdateStatus(ctx context.Context, id uint, status models.TransactionStatus, rejectReason string) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.WalletTransaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create wallet transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) CreateAndConsumePreapproval(ctx context.Context, tx *models.WalletTransaction, preapprovalID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(dbTx *gorm.DB) error {
		if err := dbTx.Create(tx).Error; err != nil {
			return err
		}
		result := dbTx.Delete(&models.WalletPreapproval{}, preapprovalID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPreapprovalNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrPreapprovalNotFound) {
			return ErrPreapprovalNotFound
		}
		return fmt.Errorf("failed to finalize wallet transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.WalletTransaction, error) {
	var tx models.WalletTransaction
	if err := r.db.WithContext(ctx).First(&tx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get wallet transaction: %w", err)
	}
	return &tx, nil
}

func (r *transactionRepository) ListForBalance(ctx context.Context, userID, currencyID uint) ([]models.WalletTransaction, error) {
	var txs []models.WalletTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND currency_id = ? AND status <> ?", userID, currencyID, models.StatusDeclined).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger entries: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) ListByUserAndCurrency(ctx context.Context, userID, currencyID uint, limit int) ([]models.WalletTransaction, error) {
	var txs []models.WalletTransaction
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND currency_id = ?", userID, currencyID).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallet transactions: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) CountByUserAndCurrency(ctx context.Context, userID, currencyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WalletTransaction{}).
		Where("user_id = ? AND currency_id = ?", userID, currencyID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count wallet transactions: %w", err)
	}
	return count, nil
}

func (r *transactionRepository) adminQuery(ctx context.Context, filter AdminTransactionFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.WalletTransaction{})
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.TransactionType != 0 {
		query = query.Where("transaction_type = ?", filter.TransactionType)
	}
	if filter.WalletType != "" {
		query = query.Where("wallet_type = ?", filter.WalletType)
	}
	if filter.TransactionNumber != "" {
		query = query.Where("transaction_number = ?", filter.TransactionNumber)
	}
	return query
}

func (r *transactionRepository) ListAdmin(ctx context.Context, filter AdminTransactionFilter) ([]models.WalletTransaction, error) {
	var txs []models.WalletTransaction
	query := r.adminQuery(ctx, filter).Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if err := query.Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallet transactions: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) CountAdmin(ctx context.Context, filter AdminTransactionFilter) (int64, error) {
	var count int64
	if err := r.adminQuery(ctx, filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count wallet transactions: %w", err)
	}
	return count, nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, id uint, status models.TransactionStatus, rejectReason string) error {
	updates := map[string]interface{}{"status": status}
	if rejectReason != "" {
		updates["reject_reason"] = rejectReason
	}
	result := r.db.WithContext(ctx).
		Model(&models.WalletTransaction{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

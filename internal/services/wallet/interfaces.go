package wallet

import (
	"context"

	"equifund/internal/models"
	"equifund/internal/repositories"

	"github.com/shopspring/decimal"
)

// Service is the wallet ledger and balance-reconciliation core.
type Service interface {
	// EnsureWallet lazily provisions the (user, currency) wallet.
	// A zero currencyID resolves to the platform default. Campaign
	// owners are skipped silently. Idempotent.
	EnsureWallet(ctx context.Context, userID, currencyID uint) error

	// RecomputeBalance re-derives the wallet balance from its ledger
	// entries. This is the only writer of the cached balance.
	RecomputeBalance(ctx context.Context, userID, currencyID uint) error

	// Balance reads the cached aggregate; zero when no wallet exists.
	Balance(ctx context.Context, userID, currencyID uint) (decimal.Decimal, error)

	WalletDetail(ctx context.Context, userID, currencyID uint) (*models.Wallet, error)
	ListUserTransactions(ctx context.Context, userID, currencyID uint, limit int) (*TransactionList, error)

	CreateTopup(ctx context.Context, userID uint, req TopupRequest) (*models.WalletPreapproval, error)
	GetPreapproval(ctx context.Context, id uint) (*models.WalletPreapproval, error)
	FinalizeTopup(ctx context.Context, preapprovalID uint, req FinalizeTopupRequest) (*models.WalletTransaction, error)
	Withdraw(ctx context.Context, userID uint, req WithdrawRequest) (*models.WalletTransaction, error)

	ListAdminTransactions(ctx context.Context, filter repositories.AdminTransactionFilter) (*AdminTransactionList, error)
	ApproveTransaction(ctx context.Context, id uint, status models.TransactionStatus, rejectReason string) error
}

// SettingsProvider resolves the platform default currency.
type SettingsProvider interface {
	DefaultCurrencyID(ctx context.Context) (uint, error)
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the per-(user, currency) balance aggregate. WalletAmount is a
// cached projection of the transaction ledger and is written exclusively by
// the reconciler.
type Wallet struct {
	ID           uint            `gorm:"primarykey" json:"id"`
	UserID       uint            `gorm:"uniqueIndex:idx_wallet_user_currency;not null" json:"user"`
	CurrencyID   uint            `gorm:"uniqueIndex:idx_wallet_user_currency;not null" json:"currencyId"`
	WalletID     string          `gorm:"not null" json:"walletId"`
	WalletAmount decimal.Decimal `gorm:"type:numeric(20,3);default:0" json:"walletAmount"`
	Status       string          `gorm:"default:'active'" json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

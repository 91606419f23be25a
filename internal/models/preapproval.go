package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletPreapproval stages a topup before the payment gateway confirms it.
// It carries the shape of a pending transaction minus status and fees, and is
// deleted in the same database transaction that creates the final
// WalletTransaction.
type WalletPreapproval struct {
	ID                uint            `gorm:"primarykey" json:"id"`
	UserID            uint            `gorm:"index;not null" json:"user"`
	CurrencyID        uint            `gorm:"not null" json:"currencyId"`
	WalletID          string          `json:"walletId"`
	TransactionNumber string          `json:"transactionNumber"`
	Amount            decimal.Decimal `gorm:"type:numeric(20,3);not null" json:"amount"`
	WalletType        WalletType      `gorm:"default:'CREDIT'" json:"walletType"`
	TransactionType   int             `gorm:"default:1" json:"transactionType"`
	GatewayID         *uint           `json:"gatewayId,omitempty"`
	Description       string          `json:"description,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

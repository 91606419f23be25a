package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is a read-model row for the investor's history endpoints. The
// investment pipeline itself lives outside this service; wallet debits for
// investments reference the campaign through WalletTransaction.CampaignID.
type Investment struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	UserID        uint            `gorm:"index:idx_investment_user_currency;not null" json:"user"`
	CampaignID    uint            `gorm:"not null" json:"campaignId"`
	CurrencyID    uint            `gorm:"index:idx_investment_user_currency;not null" json:"currencyId"`
	TransactionID *uint           `json:"transactionId,omitempty"`
	Amount        decimal.Decimal `gorm:"type:numeric(20,3);not null" json:"amount"`
	Status        string          `gorm:"default:'pending'" json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

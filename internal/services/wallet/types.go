package wallet

import (
	"time"

	"equifund/internal/models"

	"github.com/shopspring/decimal"
)

// Config holds wallet service configuration.
type Config struct {
	// DocumentBucket is the object-store bucket for acknowledgement
	// documents.
	DocumentBucket string
	// AdminEmail receives new-withdrawal notifications.
	AdminEmail string
}

// TopupRequest stages a topup before gateway confirmation.
type TopupRequest struct {
	Amount            decimal.Decimal
	CurrencyID        uint
	GatewayID         *uint
	TransactionNumber string
	Description       string
}

// Document is an uploaded acknowledgement file.
type Document struct {
	FileName string
	Data     []byte
}

// FinalizeTopupRequest resolves a preapproval into a ledger entry.
type FinalizeTopupRequest struct {
	UserID            uint
	GatewayID         uint
	Amount            decimal.Decimal
	CurrencyID        uint
	TransactionNumber string
	Description       string
	CampaignID        *uint
	Document          *Document
}

// WithdrawRequest creates a debit ledger entry with payout bank details.
type WithdrawRequest struct {
	Amount        decimal.Decimal
	CurrencyID    uint
	AccountType   string
	BankName      string
	AccountNumber string
	RoutingNumber string
}

// TransactionList is the user-facing wallet history page.
type TransactionList struct {
	TotalCount        int64                      `json:"totalCount"`
	Docs              []models.WalletTransaction `json:"docs"`
	DisplayLoadMore   bool                       `json:"displayLoadMore"`
	UserWalletBalance decimal.Decimal            `json:"userWalletBalance"`
}

// AdminTransactionList is the admin review queue page.
type AdminTransactionList struct {
	AllDocsCount    int64                      `json:"allDocsCount"`
	Docs            []models.WalletTransaction `json:"docs"`
	DisplayLoadMore bool                       `json:"displayLoadMore"`
}

// clock is injectable for deterministic ids in tests.
type clock func() time.Time

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletType tells whether a ledger entry adds to or reserves from the wallet.
type WalletType string

const (
	WalletTypeCredit WalletType = "CREDIT"
	WalletTypeDebit  WalletType = "DEBIT"
)

// TransactionStatus is the explicit state of a ledger entry. The integer
// values are part of the wire contract with existing clients.
type TransactionStatus int

const (
	StatusPending  TransactionStatus = 0 // awaiting manual (offline) settlement
	StatusReserved TransactionStatus = 1 // reserved, unused by current flows
	StatusApproved TransactionStatus = 2
	StatusDeclined TransactionStatus = 3
)

func (s TransactionStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusReserved:
		return "reserved"
	case StatusApproved:
		return "approved"
	case StatusDeclined:
		return "declined"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status accepts no further transitions.
func (s TransactionStatus) Terminal() bool {
	return s == StatusApproved || s == StatusDeclined
}

// Valid reports whether s is a known status value.
func (s TransactionStatus) Valid() bool {
	return s >= StatusPending && s <= StatusDeclined
}

// Transaction types.
const (
	TransactionTypeTopup      = 1
	TransactionTypeWithdrawal = 2
)

// FeeDetails is the audit breakdown of gateway fees charged on a topup.
// The transaction amount itself is stored net of TransactionFees.
type FeeDetails struct {
	FeesPercentage  decimal.Decimal `gorm:"type:numeric(10,3);default:0" json:"feesPercentage"`
	FlatFees        decimal.Decimal `gorm:"type:numeric(10,3);default:0" json:"flatFees"`
	TransactionFees decimal.Decimal `gorm:"type:numeric(20,3);default:0" json:"transactionFees"`
}

// WalletTransaction is one immutable ledger entry. The only mutation ever
// applied after creation is the single admin-driven status transition.
type WalletTransaction struct {
	ID                uint              `gorm:"primarykey" json:"id"`
	UserID            uint              `gorm:"index:idx_wallet_tx_user_currency;not null" json:"user"`
	CurrencyID        uint              `gorm:"index:idx_wallet_tx_user_currency;not null" json:"currencyId"`
	WalletID          string            `gorm:"not null" json:"walletId"`
	TransactionNumber string            `gorm:"index" json:"transactionNumber"`
	Amount            decimal.Decimal   `gorm:"type:numeric(20,3);not null" json:"amount"`
	WalletType        WalletType        `gorm:"not null" json:"walletType"`
	TransactionType   int               `gorm:"not null" json:"transactionType"`
	Status            TransactionStatus `gorm:"not null;default:0" json:"status"`
	FeeDetails        FeeDetails        `gorm:"embedded;embeddedPrefix:fee_" json:"feesDetails"`
	GatewayID         *uint             `json:"gatewayId,omitempty"`
	CampaignID        *uint             `json:"campaignId,omitempty"`
	// AcknowledgeDocument is the object-store locator of the uploaded
	// proof-of-payment document, when one was provided.
	AcknowledgeDocument string `json:"acknowledgeDocument,omitempty"`
	Description         string `json:"description,omitempty"`

	// Bank details captured on withdrawal requests.
	AccountType   string `json:"accountType,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	RoutingNumber string `json:"routingNumber,omitempty"`

	RejectReason string    `json:"rejectReason,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

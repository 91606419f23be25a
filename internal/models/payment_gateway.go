package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gateway payment types relevant to fee computation and approval flow.
// Offline gateways settle manually through the admin approval queue.
const (
	GatewayTypeOffline = "offline"
	GatewayTypeACH     = "ach"
)

type PaymentGateway struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	PaymentType string `gorm:"not null" json:"paymentType"`
	// GatewayFee is the percentage fee for ACH gateways.
	GatewayFee decimal.Decimal `gorm:"type:numeric(10,3);default:0" json:"gatewayFee"`
	// GatewayFeeFixed and GatewayFeePercentage apply to gateways that
	// charge both a flat and a percentage component.
	GatewayFeeFixed      decimal.Decimal `gorm:"type:numeric(10,3);default:0" json:"gatewayFeeFixed"`
	GatewayFeePercentage decimal.Decimal `gorm:"type:numeric(10,3);default:0" json:"gatewayFeePercentage"`
	Status               string          `gorm:"default:'active'" json:"status"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

func (g *PaymentGateway) IsOffline() bool {
	return g.PaymentType == GatewayTypeOffline
}

package wallet

import (
	"equifund/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// computeFees evaluates the gateway fee policy once, at finalize time.
// ACH gateways charge a pure percentage; gateways configured with both a
// fixed and a percentage fee charge both; everything else is free.
func computeFees(gateway *models.PaymentGateway, amount decimal.Decimal) models.FeeDetails {
	fees := models.FeeDetails{
		FeesPercentage:  decimal.Zero,
		FlatFees:        decimal.Zero,
		TransactionFees: decimal.Zero,
	}

	switch {
	case gateway.PaymentType == models.GatewayTypeACH:
		if !gateway.GatewayFee.IsZero() {
			fees.FeesPercentage = gateway.GatewayFee
			fees.TransactionFees = amount.Mul(gateway.GatewayFee).Div(hundred)
		}
	case !gateway.GatewayFeeFixed.IsZero() && !gateway.GatewayFeePercentage.IsZero():
		fees.FeesPercentage = gateway.GatewayFeePercentage
		fees.FlatFees = gateway.GatewayFeeFixed
		fees.TransactionFees = amount.
			Mul(gateway.GatewayFeePercentage).
			Div(hundred).
			Add(gateway.GatewayFeeFixed)
	}

	return fees
}

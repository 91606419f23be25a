// Package notification delivers transactional emails for wallet events.
// Delivery is fire-and-forget: callers log failures and continue, so a mail
// outage can never abort a wallet operation.
package notification

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
)

// Notification kinds, one per wallet state transition that notifies someone.
const (
	KindTopupRequested       = "topup_requested"
	KindTopupCredited        = "topup_credited"
	KindTopupApproved        = "topup_approved"
	KindTopupDeclined        = "topup_declined"
	KindWithdrawRequested    = "withdraw_requested"
	KindWithdrawApproved     = "withdraw_approved"
	KindWithdrawDeclined     = "withdraw_declined"
	KindAdminWithdrawRequest = "admin_withdraw_request"
)

// Message describes one notification.
type Message struct {
	Kind         string
	Recipient    string
	Amount       decimal.Decimal
	CurrencyCode string
	// Reason carries the admin reject reason on declined kinds.
	Reason string
	// Detail carries extra body content, e.g. bank details on the admin
	// withdraw notification.
	Detail string
}

// Notifier sends a notification to its recipient.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LogNotifier writes notifications to the structured logger. It stands in for
// the platform mailer, which lives outside this service.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification",
		"kind", message.Kind,
		"recipient", message.Recipient,
		"amount", message.Amount.String(),
		"currency", message.CurrencyCode,
		"reason", message.Reason,
	)
	return nil
}

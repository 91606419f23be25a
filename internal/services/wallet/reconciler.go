package wallet

import (
	"context"
	"errors"

	"equifund/internal/models"
	"equifund/internal/repositories"

	"github.com/shopspring/decimal"
)

// RecomputeBalance re-derives the cached wallet balance from the ledger under
// the pair lock. Use this entry point from outside the service; internal
// flows that already hold the lock call recomputeBalance directly.
func (s *service) RecomputeBalance(ctx context.Context, userID, currencyID uint) error {
	currencyID, err := s.resolveCurrency(ctx, currencyID)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(userID, currencyID)
	defer unlock()

	return s.recomputeBalance(ctx, userID, currencyID)
}

// recomputeBalance assumes the (user, currency) lock is held.
//
// Credits count only once approved; debits count from the moment they are
// requested, so pending withdrawals keep funds reserved. Declined entries
// never count. The result is clamped at zero and truncated to the ledger's
// three decimal places.
func (s *service) recomputeBalance(ctx context.Context, userID, currencyID uint) error {
	entries, err := s.transactions.ListForBalance(ctx, userID, currencyID)
	if err != nil {
		return err
	}

	balance := decimal.Zero
	for _, entry := range entries {
		switch entry.WalletType {
		case models.WalletTypeCredit:
			if entry.Status == models.StatusApproved {
				balance = balance.Add(entry.Amount)
			}
		case models.WalletTypeDebit:
			balance = balance.Sub(entry.Amount)
		}
	}
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	balance = balance.Truncate(3)

	if err := s.wallets.UpdateAmount(ctx, userID, currencyID, balance); err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			// No wallet row yet; the balance materializes on first
			// provisioning.
			return nil
		}
		return err
	}

	s.logger.Debug("wallet balance reconciled",
		"user", userID, "currency", currencyID, "balance", balance.String())
	return nil
}

package wallet

import (
	"context"
	"errors"
	"fmt"

	"equifund/internal/models"
	"equifund/internal/repositories"
)

// EnsureWallet lazily provisions the (user, currency) wallet row. The first
// wallet a user ever gets also mints their wallet id; later currencies reuse
// it. Campaign owners never hold investor wallets and are skipped silently.
func (s *service) EnsureWallet(ctx context.Context, userID, currencyID uint) error {
	currencyID, err := s.resolveCurrency(ctx, currencyID)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return fmt.Errorf("failed to load user %d: %w", userID, err)
		}
		return err
	}
	if user.Role == models.RoleCampaignOwner {
		return nil
	}

	if user.WalletID == "" {
		walletID := timeDerivedID(s.now())
		if err := s.wallets.Create(ctx, &models.Wallet{
			UserID:     userID,
			CurrencyID: currencyID,
			WalletID:   walletID,
		}); err != nil {
			return err
		}
		if err := s.users.SetWalletID(ctx, userID, walletID); err != nil {
			return err
		}
		s.logger.Info("wallet provisioned", "user", userID, "currency", currencyID, "wallet_id", walletID)
		// Ledger entries can predate the wallet row; pick them up now.
		return s.RecomputeBalance(ctx, userID, currencyID)
	}

	count, err := s.wallets.CountByKey(ctx, userID, user.WalletID, currencyID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.wallets.Create(ctx, &models.Wallet{
		UserID:     userID,
		CurrencyID: currencyID,
		WalletID:   user.WalletID,
	}); err != nil {
		return err
	}
	s.logger.Info("wallet provisioned", "user", userID, "currency", currencyID, "wallet_id", user.WalletID)
	return s.RecomputeBalance(ctx, userID, currencyID)
}

// Package wallet implements the investor wallet ledger: lazy wallet
// provisioning, topup and withdrawal request flows, the admin approval state
// machine, and balance reconciliation from the transaction ledger.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	domainerr "equifund/internal/errors"
	"equifund/internal/models"
	"equifund/internal/repositories"
	"equifund/internal/services/notification"
	"equifund/internal/storage"

	"github.com/shopspring/decimal"
)

type service struct {
	users        repositories.UserRepository
	currencies   repositories.CurrencyRepository
	gateways     repositories.GatewayRepository
	wallets      repositories.WalletRepository
	transactions repositories.TransactionRepository
	preapprovals repositories.PreapprovalRepository
	settings     SettingsProvider
	notifier     notification.Notifier
	store        storage.ObjectStore
	config       Config
	locks        *keyedLocks
	logger       *slog.Logger
	now          clock
}

// NewService creates the wallet service.
func NewService(
	users repositories.UserRepository,
	currencies repositories.CurrencyRepository,
	gateways repositories.GatewayRepository,
	wallets repositories.WalletRepository,
	transactions repositories.TransactionRepository,
	preapprovals repositories.PreapprovalRepository,
	settings SettingsProvider,
	notifier notification.Notifier,
	store storage.ObjectStore,
	config Config,
	logger *slog.Logger,
) Service {
	if users == nil || wallets == nil || transactions == nil || preapprovals == nil {
		panic("wallet service: repositories are required")
	}
	if settings == nil {
		panic("wallet service: settings provider is required")
	}
	if config.DocumentBucket == "" {
		config.DocumentBucket = DefaultDocumentBucket
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		users:        users,
		currencies:   currencies,
		gateways:     gateways,
		wallets:      wallets,
		transactions: transactions,
		preapprovals: preapprovals,
		settings:     settings,
		notifier:     notifier,
		store:        store,
		config:       config,
		locks:        newKeyedLocks(),
		logger:       logger,
		now:          time.Now,
	}
}

// resolveCurrency substitutes the platform default for a zero currency id.
func (s *service) resolveCurrency(ctx context.Context, currencyID uint) (uint, error) {
	if currencyID != 0 {
		return currencyID, nil
	}
	return s.settings.DefaultCurrencyID(ctx)
}

// currencyCode looks up the display code for notifications; failures degrade
// to an empty code rather than blocking the operation.
func (s *service) currencyCode(ctx context.Context, currencyID uint) string {
	if s.currencies == nil {
		return ""
	}
	currency, err := s.currencies.GetByID(ctx, currencyID)
	if err != nil {
		return ""
	}
	return currency.Code
}

// notify delivers fire-and-forget; a failed notification is logged and never
// aborts the triggering operation.
func (s *service) notify(ctx context.Context, msg notification.Message) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Warn("notification delivery failed", "kind", msg.Kind, "error", err)
	}
}

func (s *service) GetPreapproval(ctx context.Context, id uint) (*models.WalletPreapproval, error) {
	preapproval, err := s.preapprovals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPreapprovalNotFound) {
			return nil, domainerr.ErrPreapprovalNotFound
		}
		return nil, err
	}
	return preapproval, nil
}

func (s *service) CreateTopup(ctx context.Context, userID uint, req TopupRequest) (*models.WalletPreapproval, error) {
	if !req.Amount.IsPositive() {
		return nil, domainerr.ErrInvalidAmount
	}

	currencyID, err := s.resolveCurrency(ctx, req.CurrencyID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	transactionNumber := req.TransactionNumber
	if transactionNumber == "" {
		transactionNumber = timeDerivedID(s.now())
	}

	preapproval := &models.WalletPreapproval{
		UserID:            userID,
		CurrencyID:        currencyID,
		WalletID:          user.WalletID,
		TransactionNumber: transactionNumber,
		Amount:            req.Amount,
		WalletType:        models.WalletTypeCredit,
		TransactionType:   models.TransactionTypeTopup,
		GatewayID:         req.GatewayID,
		Description:       req.Description,
	}
	if err := s.preapprovals.Create(ctx, preapproval); err != nil {
		return nil, err
	}

	s.notify(ctx, notification.Message{
		Kind:         notification.KindTopupRequested,
		Recipient:    user.Email,
		Amount:       req.Amount,
		CurrencyCode: s.currencyCode(ctx, currencyID),
	})

	return preapproval, nil
}

func (s *service) FinalizeTopup(ctx context.Context, preapprovalID uint, req FinalizeTopupRequest) (*models.WalletTransaction, error) {
	preapproval, err := s.GetPreapproval(ctx, preapprovalID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	gatewayID := req.GatewayID
	if gatewayID == 0 && preapproval.GatewayID != nil {
		gatewayID = *preapproval.GatewayID
	}
	gateway, err := s.gateways.GetByID(ctx, gatewayID)
	if err != nil {
		if errors.Is(err, repositories.ErrGatewayNotFound) {
			return nil, domainerr.ErrGatewayNotFound
		}
		return nil, err
	}

	amount := req.Amount
	if !amount.IsPositive() {
		amount = preapproval.Amount
	}
	currencyID := req.CurrencyID
	if currencyID == 0 {
		currencyID = preapproval.CurrencyID
	}
	transactionNumber := req.TransactionNumber
	if transactionNumber == "" {
		transactionNumber = timeDerivedID(s.now())
	}
	description := req.Description
	if description == "" {
		description = preapproval.Description
	}
	if description == "" {
		description = descTopup
	}

	// Offline gateways settle manually through the admin queue; everything
	// else was confirmed by the gateway before this call.
	status := models.StatusApproved
	if gateway.IsOffline() {
		status = models.StatusPending
	}

	fees := computeFees(gateway, amount)
	netAmount := amount.Sub(fees.TransactionFees)

	tx := &models.WalletTransaction{
		UserID:            req.UserID,
		CurrencyID:        currencyID,
		WalletID:          user.WalletID,
		TransactionNumber: transactionNumber,
		Amount:            netAmount,
		WalletType:        models.WalletTypeCredit,
		TransactionType:   models.TransactionTypeTopup,
		Status:            status,
		FeeDetails:        fees,
		GatewayID:         &gateway.ID,
		CampaignID:        req.CampaignID,
		Description:       description,
	}

	// The upload happens before any durable write so a failed upload
	// aborts the finalize with no ledger entry to compensate.
	if req.Document != nil {
		locator, err := s.uploadAcknowledgement(ctx, req.UserID, req.Document)
		if err != nil {
			s.logger.Error("acknowledgement upload failed", "user", req.UserID, "error", err)
			return nil, domainerr.ErrDocumentUpload
		}
		tx.AcknowledgeDocument = locator
	}

	unlock := s.locks.Lock(req.UserID, currencyID)
	defer unlock()

	if err := s.transactions.CreateAndConsumePreapproval(ctx, tx, preapprovalID); err != nil {
		if errors.Is(err, repositories.ErrPreapprovalNotFound) {
			return nil, domainerr.ErrPreapprovalNotFound
		}
		return nil, err
	}

	if status == models.StatusApproved {
		if err := s.recomputeBalance(ctx, req.UserID, currencyID); err != nil {
			return nil, err
		}
	}

	s.notify(ctx, notification.Message{
		Kind:         notification.KindTopupCredited,
		Recipient:    user.Email,
		Amount:       netAmount,
		CurrencyCode: s.currencyCode(ctx, currencyID),
	})

	return tx, nil
}

func (s *service) uploadAcknowledgement(ctx context.Context, userID uint, doc *Document) (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("object store not configured")
	}
	ext := strings.ToLower(filepath.Ext(doc.FileName))
	key := fmt.Sprintf("wallet-document-%d-%d%s", userID, s.now().UnixMilli(), ext)
	return s.store.Put(ctx, s.config.DocumentBucket, key, doc.Data)
}

func (s *service) Withdraw(ctx context.Context, userID uint, req WithdrawRequest) (*models.WalletTransaction, error) {
	if !req.Amount.IsPositive() {
		return nil, domainerr.ErrInvalidAmount
	}

	currencyID, err := s.resolveCurrency(ctx, req.CurrencyID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	// The balance check, the debit write, and the reconcile must observe a
	// consistent ledger, so they all run under the pair lock.
	unlock := s.locks.Lock(userID, currencyID)
	defer unlock()

	wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currencyID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, domainerr.ErrWalletNotFound
		}
		return nil, err
	}
	if wallet.WalletAmount.LessThan(req.Amount) {
		return nil, domainerr.ErrInsufficientBalance
	}

	tx := &models.WalletTransaction{
		UserID:            userID,
		CurrencyID:        currencyID,
		WalletID:          user.WalletID,
		TransactionNumber: timeDerivedID(s.now()),
		Amount:            req.Amount,
		WalletType:        models.WalletTypeDebit,
		TransactionType:   models.TransactionTypeWithdrawal,
		Status:            models.StatusPending,
		Description:       descWithdrawInitiated,
		AccountType:       req.AccountType,
		BankName:          req.BankName,
		AccountNumber:     req.AccountNumber,
		RoutingNumber:     req.RoutingNumber,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}

	// The pending debit reserves the funds immediately.
	if err := s.recomputeBalance(ctx, userID, currencyID); err != nil {
		return nil, err
	}

	code := s.currencyCode(ctx, currencyID)
	s.notify(ctx, notification.Message{
		Kind:         notification.KindWithdrawRequested,
		Recipient:    user.Email,
		Amount:       req.Amount,
		CurrencyCode: code,
	})
	s.notify(ctx, notification.Message{
		Kind:         notification.KindAdminWithdrawRequest,
		Recipient:    s.config.AdminEmail,
		Amount:       req.Amount,
		CurrencyCode: code,
		Detail: fmt.Sprintf(
			"Amount: %s %s, Account Type: %s, Bank Name: %s, Account Number: %s, Routing Number: %s",
			req.Amount.String(), code,
			req.AccountType, req.BankName, req.AccountNumber, req.RoutingNumber,
		),
	})

	return tx, nil
}

func (s *service) ApproveTransaction(ctx context.Context, id uint, status models.TransactionStatus, rejectReason string) error {
	if status != models.StatusApproved && status != models.StatusDeclined {
		return domainerr.ErrInvalidStatus
	}

	// First read only supplies the lock key; the state check happens on a
	// second read under the pair lock, or a concurrent settlement could
	// slip between check and write.
	tx, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return domainerr.ErrTransactionNotFound
		}
		return err
	}

	unlock := s.locks.Lock(tx.UserID, tx.CurrencyID)
	defer unlock()

	tx, err = s.transactions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return domainerr.ErrTransactionNotFound
		}
		return err
	}

	// Approved and declined are terminal.
	switch tx.Status {
	case models.StatusApproved:
		return domainerr.ErrAlreadyApproved
	case models.StatusDeclined:
		return domainerr.ErrAlreadyDeclined
	}

	// Manual approval only applies to offline gateways; online gateways
	// settle on their own.
	if tx.GatewayID != nil {
		gateway, err := s.gateways.GetByID(ctx, *tx.GatewayID)
		if err != nil {
			if errors.Is(err, repositories.ErrGatewayNotFound) {
				return domainerr.ErrGatewayNotFound
			}
			return err
		}
		if !gateway.IsOffline() {
			return domainerr.ErrGatewayNotOffline
		}
	}

	if status != models.StatusDeclined {
		rejectReason = ""
	}
	if err := s.transactions.UpdateStatus(ctx, id, status, rejectReason); err != nil {
		return err
	}
	if err := s.recomputeBalance(ctx, tx.UserID, tx.CurrencyID); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, tx.UserID)
	if err != nil {
		// The transition is durable; a missing user only costs the email.
		s.logger.Warn("approval notification skipped", "transaction", id, "error", err)
		return nil
	}

	s.notify(ctx, notification.Message{
		Kind:         approvalKind(tx.WalletType, status),
		Recipient:    user.Email,
		Amount:       tx.Amount,
		CurrencyCode: s.currencyCode(ctx, tx.CurrencyID),
		Reason:       rejectReason,
	})
	return nil
}

func approvalKind(walletType models.WalletType, status models.TransactionStatus) string {
	if walletType == models.WalletTypeCredit {
		if status == models.StatusApproved {
			return notification.KindTopupApproved
		}
		return notification.KindTopupDeclined
	}
	if status == models.StatusApproved {
		return notification.KindWithdrawApproved
	}
	return notification.KindWithdrawDeclined
}

func (s *service) ListUserTransactions(ctx context.Context, userID, currencyID uint, limit int) (*TransactionList, error) {
	currencyID, err := s.resolveCurrency(ctx, currencyID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	if err := s.EnsureWallet(ctx, userID, currencyID); err != nil {
		return nil, err
	}

	totalCount, err := s.transactions.CountByUserAndCurrency(ctx, userID, currencyID)
	if err != nil {
		return nil, err
	}
	docs, err := s.transactions.ListByUserAndCurrency(ctx, userID, currencyID, limit)
	if err != nil {
		return nil, err
	}
	balance, err := s.Balance(ctx, userID, currencyID)
	if err != nil {
		return nil, err
	}

	return &TransactionList{
		TotalCount:        totalCount,
		Docs:              docs,
		DisplayLoadMore:   totalCount > int64(len(docs)),
		UserWalletBalance: balance,
	}, nil
}

func (s *service) ListAdminTransactions(ctx context.Context, filter repositories.AdminTransactionFilter) (*AdminTransactionList, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}

	allDocsCount, err := s.transactions.CountAdmin(ctx, filter)
	if err != nil {
		return nil, err
	}
	docs, err := s.transactions.ListAdmin(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &AdminTransactionList{
		AllDocsCount:    allDocsCount,
		Docs:            docs,
		DisplayLoadMore: allDocsCount > int64(len(docs)),
	}, nil
}

func (s *service) WalletDetail(ctx context.Context, userID, currencyID uint) (*models.Wallet, error) {
	currencyID, err := s.resolveCurrency(ctx, currencyID)
	if err != nil {
		return nil, err
	}
	if err := s.EnsureWallet(ctx, userID, currencyID); err != nil {
		return nil, err
	}

	wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currencyID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, domainerr.ErrWalletNotFound
		}
		return nil, err
	}
	return wallet, nil
}

// Balance reads the cached aggregate without provisioning a wallet.
func (s *service) Balance(ctx context.Context, userID, currencyID uint) (decimal.Decimal, error) {
	currencyID, err := s.resolveCurrency(ctx, currencyID)
	if err != nil {
		return decimal.Zero, err
	}

	wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currencyID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return wallet.WalletAmount, nil
}

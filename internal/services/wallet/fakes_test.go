package wallet

import (
	"context"
	"sync"

	"equifund/internal/models"
	"equifund/internal/repositories"
	"equifund/internal/services/notification"

	"github.com/shopspring/decimal"
)

// In-memory fakes for the repository interfaces. They hold just enough
// behavior for the service paths under test.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uint]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copy := *user
	return &copy, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copy := *user
			return &copy, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) SetWalletID(_ context.Context, userID uint, walletID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.WalletID = walletID
	return nil
}

type fakeCurrencyRepo struct {
	currencies map[uint]*models.Currency
}

func newFakeCurrencyRepo(currencies ...*models.Currency) *fakeCurrencyRepo {
	repo := &fakeCurrencyRepo{currencies: make(map[uint]*models.Currency)}
	for _, c := range currencies {
		repo.currencies[c.ID] = c
	}
	return repo
}

func (r *fakeCurrencyRepo) GetByID(_ context.Context, id uint) (*models.Currency, error) {
	currency, ok := r.currencies[id]
	if !ok {
		return nil, repositories.ErrCurrencyNotFound
	}
	return currency, nil
}

func (r *fakeCurrencyRepo) ListByIDs(_ context.Context, ids []uint) ([]models.Currency, error) {
	var out []models.Currency
	for _, id := range ids {
		if c, ok := r.currencies[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCurrencyRepo) Create(_ context.Context, currency *models.Currency) error {
	r.currencies[currency.ID] = currency
	return nil
}

type fakeGatewayRepo struct {
	gateways map[uint]*models.PaymentGateway
}

func newFakeGatewayRepo(gateways ...*models.PaymentGateway) *fakeGatewayRepo {
	repo := &fakeGatewayRepo{gateways: make(map[uint]*models.PaymentGateway)}
	for _, g := range gateways {
		repo.gateways[g.ID] = g
	}
	return repo
}

func (r *fakeGatewayRepo) GetByID(_ context.Context, id uint) (*models.PaymentGateway, error) {
	gateway, ok := r.gateways[id]
	if !ok {
		return nil, repositories.ErrGatewayNotFound
	}
	return gateway, nil
}

func (r *fakeGatewayRepo) Create(_ context.Context, gateway *models.PaymentGateway) error {
	r.gateways[gateway.ID] = gateway
	return nil
}

type fakeWalletRepo struct {
	mu      sync.Mutex
	nextID  uint
	wallets []*models.Wallet
}

func newFakeWalletRepo(wallets ...*models.Wallet) *fakeWalletRepo {
	repo := &fakeWalletRepo{nextID: 1}
	for _, w := range wallets {
		repo.wallets = append(repo.wallets, w)
		if w.ID >= repo.nextID {
			repo.nextID = w.ID + 1
		}
	}
	return repo
}

func (r *fakeWalletRepo) Create(_ context.Context, wallet *models.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	wallet.ID = r.nextID
	r.nextID++
	r.wallets = append(r.wallets, wallet)
	return nil
}

func (r *fakeWalletRepo) GetByUserAndCurrency(_ context.Context, userID, currencyID uint) (*models.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.wallets {
		if w.UserID == userID && w.CurrencyID == currencyID {
			copy := *w
			return &copy, nil
		}
	}
	return nil, repositories.ErrWalletNotFound
}

func (r *fakeWalletRepo) CountByKey(_ context.Context, userID uint, walletID string, currencyID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, w := range r.wallets {
		if w.UserID == userID && w.WalletID == walletID && w.CurrencyID == currencyID {
			count++
		}
	}
	return count, nil
}

func (r *fakeWalletRepo) UpdateAmount(_ context.Context, userID, currencyID uint, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.wallets {
		if w.UserID == userID && w.CurrencyID == currencyID {
			w.WalletAmount = amount
			return nil
		}
	}
	return repositories.ErrWalletNotFound
}

type fakeTransactionRepo struct {
	mu           sync.Mutex
	nextID       uint
	transactions []*models.WalletTransaction
	preapprovals *fakePreapprovalRepo
}

func newFakeTransactionRepo(preapprovals *fakePreapprovalRepo) *fakeTransactionRepo {
	return &fakeTransactionRepo{nextID: 1, preapprovals: preapprovals}
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *models.WalletTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx.ID = r.nextID
	r.nextID++
	r.transactions = append(r.transactions, tx)
	return nil
}

func (r *fakeTransactionRepo) CreateAndConsumePreapproval(ctx context.Context, tx *models.WalletTransaction, preapprovalID uint) error {
	if err := r.preapprovals.Delete(ctx, preapprovalID); err != nil {
		return err
	}
	return r.Create(ctx, tx)
}

func (r *fakeTransactionRepo) GetByID(_ context.Context, id uint) (*models.WalletTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tx := range r.transactions {
		if tx.ID == id {
			copy := *tx
			return &copy, nil
		}
	}
	return nil, repositories.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) ListForBalance(_ context.Context, userID, currencyID uint) ([]models.WalletTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.WalletTransaction
	for _, tx := range r.transactions {
		if tx.UserID == userID && tx.CurrencyID == currencyID && tx.Status != models.StatusDeclined {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) ListByUserAndCurrency(_ context.Context, userID, currencyID uint, limit int) ([]models.WalletTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.WalletTransaction
	for i := len(r.transactions) - 1; i >= 0; i-- {
		tx := r.transactions[i]
		if tx.UserID == userID && tx.CurrencyID == currencyID {
			out = append(out, *tx)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) CountByUserAndCurrency(_ context.Context, userID, currencyID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, tx := range r.transactions {
		if tx.UserID == userID && tx.CurrencyID == currencyID {
			count++
		}
	}
	return count, nil
}

func (r *fakeTransactionRepo) ListAdmin(_ context.Context, filter repositories.AdminTransactionFilter) ([]models.WalletTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.WalletTransaction
	for i := len(r.transactions) - 1; i >= 0; i-- {
		tx := r.transactions[i]
		if matchesAdminFilter(tx, filter) {
			out = append(out, *tx)
			if filter.Limit > 0 && len(out) == filter.Limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) CountAdmin(_ context.Context, filter repositories.AdminTransactionFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, tx := range r.transactions {
		if matchesAdminFilter(tx, filter) {
			count++
		}
	}
	return count, nil
}

func matchesAdminFilter(tx *models.WalletTransaction, filter repositories.AdminTransactionFilter) bool {
	if len(filter.Statuses) > 0 {
		found := false
		for _, status := range filter.Statuses {
			if tx.Status == status {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.TransactionType != 0 && tx.TransactionType != filter.TransactionType {
		return false
	}
	if filter.WalletType != "" && tx.WalletType != filter.WalletType {
		return false
	}
	if filter.TransactionNumber != "" && tx.TransactionNumber != filter.TransactionNumber {
		return false
	}
	return true
}

func (r *fakeTransactionRepo) UpdateStatus(_ context.Context, id uint, status models.TransactionStatus, rejectReason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tx := range r.transactions {
		if tx.ID == id {
			tx.Status = status
			if rejectReason != "" {
				tx.RejectReason = rejectReason
			}
			return nil
		}
	}
	return repositories.ErrTransactionNotFound
}

type fakePreapprovalRepo struct {
	mu           sync.Mutex
	nextID       uint
	preapprovals map[uint]*models.WalletPreapproval
}

func newFakePreapprovalRepo() *fakePreapprovalRepo {
	return &fakePreapprovalRepo{nextID: 1, preapprovals: make(map[uint]*models.WalletPreapproval)}
}

func (r *fakePreapprovalRepo) Create(_ context.Context, preapproval *models.WalletPreapproval) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	preapproval.ID = r.nextID
	r.nextID++
	r.preapprovals[preapproval.ID] = preapproval
	return nil
}

func (r *fakePreapprovalRepo) GetByID(_ context.Context, id uint) (*models.WalletPreapproval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	preapproval, ok := r.preapprovals[id]
	if !ok {
		return nil, repositories.ErrPreapprovalNotFound
	}
	copy := *preapproval
	return &copy, nil
}

func (r *fakePreapprovalRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.preapprovals[id]; !ok {
		return repositories.ErrPreapprovalNotFound
	}
	delete(r.preapprovals, id)
	return nil
}

type staticSettings struct {
	currencyID uint
}

func (s staticSettings) DefaultCurrencyID(context.Context) (uint, error) {
	return s.currencyID, nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []notification.Message
}

func (n *recordingNotifier) Send(_ context.Context, message notification.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

func (n *recordingNotifier) byKind(kind string) []notification.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []notification.Message
	for _, m := range n.messages {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	failPut bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (s *fakeStore) Put(_ context.Context, bucket, key string, data []byte) (string, error) {
	if s.failPut {
		return "", context.DeadlineExceeded
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	locator := bucket + "/" + key
	s.objects[locator] = data
	return locator, nil
}

func (s *fakeStore) Delete(_ context.Context, locator string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, locator)
	return nil
}

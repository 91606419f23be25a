package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	domainerr "equifund/internal/errors"
	"equifund/internal/models"
	"equifund/internal/repositories"
	"equifund/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWalletService returns canned results per method.
type stubWalletService struct {
	finalizeErr error
	finalized   *wallet.FinalizeTopupRequest
	withdrawErr error
	detail      *models.Wallet
	detailErr   error
}

func (s *stubWalletService) EnsureWallet(context.Context, uint, uint) error     { return nil }
func (s *stubWalletService) RecomputeBalance(context.Context, uint, uint) error { return nil }
func (s *stubWalletService) Balance(context.Context, uint, uint) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (s *stubWalletService) WalletDetail(context.Context, uint, uint) (*models.Wallet, error) {
	return s.detail, s.detailErr
}

func (s *stubWalletService) ListUserTransactions(context.Context, uint, uint, int) (*wallet.TransactionList, error) {
	return &wallet.TransactionList{}, nil
}

func (s *stubWalletService) CreateTopup(context.Context, uint, wallet.TopupRequest) (*models.WalletPreapproval, error) {
	return &models.WalletPreapproval{ID: 1}, nil
}

func (s *stubWalletService) GetPreapproval(context.Context, uint) (*models.WalletPreapproval, error) {
	return &models.WalletPreapproval{ID: 1}, nil
}

func (s *stubWalletService) FinalizeTopup(_ context.Context, _ uint, req wallet.FinalizeTopupRequest) (*models.WalletTransaction, error) {
	s.finalized = &req
	if s.finalizeErr != nil {
		return nil, s.finalizeErr
	}
	return &models.WalletTransaction{ID: 1}, nil
}

func (s *stubWalletService) Withdraw(context.Context, uint, wallet.WithdrawRequest) (*models.WalletTransaction, error) {
	if s.withdrawErr != nil {
		return nil, s.withdrawErr
	}
	return &models.WalletTransaction{ID: 2}, nil
}

func (s *stubWalletService) ListAdminTransactions(context.Context, repositories.AdminTransactionFilter) (*wallet.AdminTransactionList, error) {
	return &wallet.AdminTransactionList{}, nil
}

func (s *stubWalletService) ApproveTransaction(context.Context, uint, models.TransactionStatus, string) error {
	return nil
}

func newTestApp(svc wallet.Service) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("claims", &models.UserClaims{UserID: 1, Email: "investor@example.com", Role: models.RoleUser})
		return c.Next()
	})
	h := NewWalletHandler(svc)
	app.Post("/api/wallet/update-wallet-topup/:id", h.UpdateWalletTopup)
	app.Post("/api/wallet/wallet-withdraw", h.WalletWithdraw)
	app.Get("/api/wallet/get-user-wallet-detail", h.GetUserWalletDetail)
	return app
}

func multipartBody(t *testing.T, filename string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if filename != "" {
		part, err := writer.CreateFormFile(acknowledgeDocumentField, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUpdateWalletTopup(t *testing.T) {
	t.Run("rejects non-pdf uploads", func(t *testing.T) {
		svc := &stubWalletService{}
		app := newTestApp(svc)

		body, contentType := multipartBody(t, "receipt.png", nil)
		req := httptest.NewRequest(fiber.MethodPost, "/api/wallet/update-wallet-topup/1", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Nil(t, svc.finalized, "service should not be called for invalid uploads")
	})

	t.Run("accepts pdf uploads and passes form fields through", func(t *testing.T) {
		svc := &stubWalletService{}
		app := newTestApp(svc)

		body, contentType := multipartBody(t, "Receipt.PDF", map[string]string{
			"amount":     "150.500",
			"currencyId": "1",
			"gatewayId":  "2",
		})
		req := httptest.NewRequest(fiber.MethodPost, "/api/wallet/update-wallet-topup/1", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		require.NotNil(t, svc.finalized)
		assert.True(t, svc.finalized.Amount.Equal(decimal.RequireFromString("150.500")))
		assert.Equal(t, uint(1), svc.finalized.CurrencyID)
		assert.Equal(t, uint(2), svc.finalized.GatewayID)
		require.NotNil(t, svc.finalized.Document)
		assert.Equal(t, "Receipt.PDF", svc.finalized.Document.FileName)
	})

	t.Run("maps missing preapproval to 404", func(t *testing.T) {
		svc := &stubWalletService{finalizeErr: domainerr.ErrPreapprovalNotFound}
		app := newTestApp(svc)

		body, contentType := multipartBody(t, "", nil)
		req := httptest.NewRequest(fiber.MethodPost, "/api/wallet/update-wallet-topup/9", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestWalletWithdraw(t *testing.T) {
	t.Run("maps insufficient balance to 422", func(t *testing.T) {
		svc := &stubWalletService{withdrawErr: domainerr.ErrInsufficientBalance}
		app := newTestApp(svc)

		req := httptest.NewRequest(fiber.MethodPost, "/api/wallet/wallet-withdraw",
			strings.NewReader(`{"amount":"100","currencyId":1,"bankName":"First Bank","accountNumber":"12345678","routingNumber":"021000021"}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("returns the created transaction", func(t *testing.T) {
		svc := &stubWalletService{}
		app := newTestApp(svc)

		req := httptest.NewRequest(fiber.MethodPost, "/api/wallet/wallet-withdraw",
			strings.NewReader(`{"amount":"25","currencyId":1,"bankName":"First Bank","accountNumber":"12345678","routingNumber":"021000021"}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestGetUserWalletDetail(t *testing.T) {
	t.Run("maps missing wallet to 404", func(t *testing.T) {
		svc := &stubWalletService{detailErr: domainerr.ErrWalletNotFound}
		app := newTestApp(svc)

		req := httptest.NewRequest(fiber.MethodGet, "/api/wallet/get-user-wallet-detail", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

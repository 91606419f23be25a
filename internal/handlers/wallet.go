package handlers

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"

	domainerr "equifund/internal/errors"
	"equifund/internal/services/wallet"
	"equifund/internal/utils"
	"equifund/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const acknowledgeDocumentField = "acknowledgeDocument"

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetUserWalletList returns the wallet transaction history page for the
// authenticated user, provisioning the wallet on first access.
func (h *WalletHandler) GetUserWalletList(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	currencyID := uint(c.QueryInt("currencyId", 0))
	limit := c.QueryInt("limit", 0)

	list, err := h.walletService.ListUserTransactions(c.Context(), claims.UserID, currencyID, limit)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, list)
}

// GetUserWalletDetail returns the wallet row with its cached balance,
// provisioning the wallet on first access.
func (h *WalletHandler) GetUserWalletDetail(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	currencyID := uint(c.QueryInt("currencyId", 0))

	detail, err := h.walletService.WalletDetail(c.Context(), claims.UserID, currencyID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"wallet": detail})
}

// AddWalletTopup stages a topup preapproval before gateway confirmation.
func (h *WalletHandler) AddWalletTopup(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount            decimal.Decimal `json:"amount"`
		CurrencyID        uint            `json:"currencyId"`
		GatewayID         *uint           `json:"gatewayId"`
		TransactionNumber string          `json:"transactionNumber"`
		Description       string          `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	preapproval, err := h.walletService.CreateTopup(c.Context(), claims.UserID, wallet.TopupRequest{
		Amount:            input.Amount,
		CurrencyID:        input.CurrencyID,
		GatewayID:         input.GatewayID,
		TransactionNumber: input.TransactionNumber,
		Description:       input.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"preapproval": preapproval})
}

// GetWalletPreapproval returns a staged topup by id.
func (h *WalletHandler) GetWalletPreapproval(c *fiber.Ctx) error {
	if _, err := extractUserClaims(c); err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return utils.BadRequest(c, "invalid preapproval id")
	}

	preapproval, err := h.walletService.GetPreapproval(c.Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"preapproval": preapproval})
}

// UpdateWalletTopup finalizes a staged topup into a ledger entry. The request
// is multipart so offline payers can attach a proof-of-payment document;
// only PDF uploads are accepted.
func (h *WalletHandler) UpdateWalletTopup(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return utils.BadRequest(c, "invalid preapproval id")
	}

	req := wallet.FinalizeTopupRequest{
		UserID:            claims.UserID,
		TransactionNumber: c.FormValue("transactionNumber"),
		Description:       c.FormValue("description"),
	}
	if v := c.FormValue("amount"); v != "" {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			return respondError(c, domainerr.ErrInvalidAmount)
		}
		req.Amount = amount
	}
	if v := c.FormValue("currencyId"); v != "" {
		currencyID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return utils.BadRequest(c, "invalid currency id")
		}
		req.CurrencyID = uint(currencyID)
	}
	if v := c.FormValue("gatewayId"); v != "" {
		gatewayID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return utils.BadRequest(c, "invalid gateway id")
		}
		req.GatewayID = uint(gatewayID)
	}
	if v := c.FormValue("campaignId"); v != "" {
		campaignID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return utils.BadRequest(c, "invalid campaign id")
		}
		cid := uint(campaignID)
		req.CampaignID = &cid
	}

	doc, err := readAcknowledgeDocument(c)
	if err != nil {
		return respondError(c, err)
	}
	req.Document = doc

	tx, err := h.walletService.FinalizeTopup(c.Context(), uint(id), req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"transaction": tx})
}

// readAcknowledgeDocument extracts the optional multipart upload; a missing
// file is not an error.
func readAcknowledgeDocument(c *fiber.Ctx) (*wallet.Document, error) {
	fileHeader, err := c.FormFile(acknowledgeDocumentField)
	if err != nil {
		return nil, nil
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		return nil, domainerr.ErrUploadOnlyPDF
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, domainerr.ErrDocumentUpload
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, domainerr.ErrDocumentUpload
	}

	return &wallet.Document{FileName: fileHeader.Filename, Data: data}, nil
}

// WalletWithdraw creates a pending withdrawal request against the wallet
// balance.
func (h *WalletHandler) WalletWithdraw(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount        decimal.Decimal `json:"amount"`
		CurrencyID    uint            `json:"currencyId"`
		AccountType   string          `json:"accountType"`
		BankName      string          `json:"bankName" validate:"required"`
		AccountNumber string          `json:"accountNumber" validate:"required"`
		RoutingNumber string          `json:"routingNumber" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if err := validation.Struct(input); err != nil {
		return utils.BadRequest(c, "missing bank details")
	}

	tx, err := h.walletService.Withdraw(c.Context(), claims.UserID, wallet.WithdrawRequest{
		Amount:        input.Amount,
		CurrencyID:    input.CurrencyID,
		AccountType:   input.AccountType,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		RoutingNumber: input.RoutingNumber,
	})
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"transaction": tx})
}

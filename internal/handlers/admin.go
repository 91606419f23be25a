package handlers

import (
	"strconv"
	"strings"

	domainerr "equifund/internal/errors"
	"equifund/internal/models"
	"equifund/internal/repositories"
	"equifund/internal/services/wallet"
	"equifund/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminWalletHandler struct {
	walletService wallet.Service
}

func NewAdminWalletHandler(walletService wallet.Service) *AdminWalletHandler {
	return &AdminWalletHandler{
		walletService: walletService,
	}
}

// GetAllWalletTransactions lists the review queue. Filters: status (comma
// separated ints), transactionType, walletType, transactionNumber, limit.
func (h *AdminWalletHandler) GetAllWalletTransactions(c *fiber.Ctx) error {
	filter := repositories.AdminTransactionFilter{
		TransactionType:   c.QueryInt("transactionType", 0),
		WalletType:        models.WalletType(c.Query("walletType")),
		TransactionNumber: c.Query("transactionNumber"),
		Limit:             c.QueryInt("limit", 0),
	}

	if raw := c.Query("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			value, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return utils.BadRequest(c, "invalid status filter")
			}
			status := models.TransactionStatus(value)
			if !status.Valid() {
				return utils.BadRequest(c, "invalid status filter")
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	list, err := h.walletService.ListAdminTransactions(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, list)
}

// UpdateWalletTransactionStatus settles a pending transaction. Only approve
// and decline are accepted; declines require a reason.
func (h *AdminWalletHandler) UpdateWalletTransactionStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	var input struct {
		Status       int    `json:"status"`
		RejectReason string `json:"rejectReason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	status := models.TransactionStatus(input.Status)
	if status == models.StatusDeclined && input.RejectReason == "" {
		return respondError(c, domainerr.ErrInvalidStatus)
	}

	if err := h.walletService.ApproveTransaction(c.Context(), uint(id), status, input.RejectReason); err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "transaction status updated"})
}

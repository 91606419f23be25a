package handlers

import (
	"equifund/internal/services/investment"
	"equifund/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type InvestmentHandler struct {
	investmentService investment.Service
}

func NewInvestmentHandler(investmentService investment.Service) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

// GetUniqueCurrency lists the currencies the user has invested in, used by
// clients to populate the portfolio currency switcher.
func (h *InvestmentHandler) GetUniqueCurrency(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	currencies, err := h.investmentService.UniqueCurrencies(c.Context(), claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"currencies": currencies})
}

// GetMyInvestmentList pages the user's investment history for one currency.
func (h *InvestmentHandler) GetMyInvestmentList(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	currencyID := uint(c.QueryInt("currencyId", 0))
	limit := c.QueryInt("limit", 0)

	list, err := h.investmentService.ListInvestments(c.Context(), claims.UserID, currencyID, limit)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, list)
}

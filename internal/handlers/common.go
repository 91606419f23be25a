// Package handlers exposes the wallet and investment services over HTTP.
package handlers

import (
	stderrors "errors"

	domainerr "equifund/internal/errors"
	"equifund/internal/models"
	"equifund/internal/utils"

	"github.com/gofiber/fiber/v2"
)

func extractUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

// respondError maps domain failures to HTTP statuses; anything unrecognized
// is a 500 with a generic message so internals never leak to clients.
func respondError(c *fiber.Ctx, err error) error {
	var derr *domainerr.DomainError
	if stderrors.As(err, &derr) {
		switch derr.Kind {
		case domainerr.KindNotFound:
			return utils.NotFound(c, derr.Message)
		case domainerr.KindValidation:
			return utils.BadRequest(c, derr.Message)
		case domainerr.KindInvalidState, domainerr.KindInsufficientFunds:
			return utils.UnprocessableEntity(c, derr.Message)
		case domainerr.KindUpstream:
			return utils.Respond(c, fiber.StatusBadGateway, fiber.Map{"error": derr.Message})
		}
	}
	return utils.InternalError(c, "internal server error")
}

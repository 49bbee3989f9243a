package handlers

import (
	"errors"
	"net/http"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/utils"
	"github.com/gofiber/fiber/v3"
)

// respondError maps service errors onto HTTP status codes and the shared
// response envelope. Unknown errors become a 500 without leaking details.
func respondError(c fiber.Ctx, err error) error {
	var invalidItem *models.InvalidLineItemError
	if errors.As(err, &invalidItem) {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_LINE_ITEM", invalidItem.Error()))
	}

	switch {
	case errors.Is(err, models.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(
			utils.CreateErrorResponse("NOT_FOUND", "Ressource introuvable"))
	case errors.Is(err, models.ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("INVALID_CREDENTIALS", "Email ou mot de passe incorrect"))
	case errors.Is(err, models.ErrEmailTaken):
		return c.Status(http.StatusConflict).JSON(
			utils.CreateErrorResponse("EMAIL_TAKEN", "Cet email est déjà utilisé"))
	case errors.Is(err, models.ErrOutOfStock):
		return c.Status(http.StatusConflict).JSON(
			utils.CreateErrorResponse("OUT_OF_STOCK", "Stock insuffisant pour cet article"))
	case errors.Is(err, models.ErrAlreadyConverted):
		return c.Status(http.StatusConflict).JSON(
			utils.CreateErrorResponse("ALREADY_CONVERTED", "Ce devis a déjà été converti en facture"))
	case errors.Is(err, models.ErrInvalidTransition):
		return c.Status(http.StatusConflict).JSON(
			utils.CreateErrorResponse("INVALID_TRANSITION", "Transition de statut non autorisée"))
	case errors.Is(err, models.ErrAlreadyPlayed):
		return c.Status(http.StatusConflict).JSON(
			utils.CreateErrorResponse("ALREADY_PLAYED", "Vous avez déjà tenté votre chance"))
	case errors.Is(err, models.ErrPartnerInUse):
		return c.Status(http.StatusConflict).JSON(
			utils.CreateErrorResponse("PARTNER_IN_USE", "Ce partenaire possède encore des documents"))
	case errors.Is(err, models.ErrBadSignature):
		return c.Status(http.StatusForbidden).JSON(
			utils.CreateErrorResponse("BAD_SIGNATURE", "Signature invalide"))
	case errors.Is(err, models.ErrDuplicateNumber):
		return c.Status(http.StatusConflict).JSON(
			utils.CreateErrorResponse("DUPLICATE_NUMBER", "Numéro de document déjà attribué"))
	}

	return c.Status(http.StatusInternalServerError).JSON(
		utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Une erreur interne est survenue"))
}

func respondBadRequest(c fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(
		utils.CreateErrorResponse("BAD_REQUEST", message))
}

func respondValidation(c fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(
		utils.CreateErrorResponse("VALIDATION_ERROR", err.Error()))
}

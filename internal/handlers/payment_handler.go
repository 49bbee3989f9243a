package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/services"
	"github.com/Amadoujf/nouveauyama/utils"
	"github.com/gofiber/fiber/v3"
)

type PaymentHandler struct {
	paytechService *services.PayTechService
	middleware     *AuthMiddleware
}

func NewPaymentHandler(paytechService *services.PayTechService, middleware *AuthMiddleware) *PaymentHandler {
	return &PaymentHandler{
		paytechService: paytechService,
		middleware:     middleware,
	}
}

func (h *PaymentHandler) Register(app *fiber.App) {
	paymentGr := app.Group("/api/payments/paytech")

	paymentGr.Post("/initiate", h.InitiatePayment, h.middleware.OptionalAuth)
	// IPN is called by the gateway, never by a browser session.
	paymentGr.Post("/ipn", h.HandleIPN)
}

func (h *PaymentHandler) InitiatePayment(c fiber.Ctx) error {
	var req models.InitiatePaymentRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	redirectURL, err := h.paytechService.InitiatePayment(c.Context(), req.OrderID)
	if err != nil {
		slog.Error("failed to initiate payment", "order_id", req.OrderID, "error", err)
		return respondError(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"redirect_url": redirectURL,
	}))
}

func (h *PaymentHandler) HandleIPN(c fiber.Ctx) error {
	var event services.IPNEvent
	if err := c.Bind().Body(&event); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}

	order, err := h.paytechService.HandleIPN(event)
	if err != nil {
		slog.Error("ipn processing failed", "ref_command", event.RefCommand, "type", event.TypeEvent, "error", err)
		return respondError(c, err)
	}

	slog.Info("ipn processed", "order_id", order.OrderID, "type", event.TypeEvent)
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"order_id":       order.OrderID,
		"payment_status": order.PaymentStatus,
	}))
}

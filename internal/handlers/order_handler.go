package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/services"
	"github.com/Amadoujf/nouveauyama/utils"
	"github.com/gofiber/fiber/v3"
)

type OrderHandler struct {
	orderService   *services.OrderService
	receiptService *services.ReceiptService
	contactService *services.ContactService
	middleware     *AuthMiddleware
}

func NewOrderHandler(
	orderService *services.OrderService,
	receiptService *services.ReceiptService,
	contactService *services.ContactService,
	middleware *AuthMiddleware,
) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		receiptService: receiptService,
		contactService: contactService,
		middleware:     middleware,
	}
}

func (h *OrderHandler) Register(app *fiber.App) {
	api := app.Group("/api")

	orderGr := api.Group("/orders")
	orderGr.Post("/", h.CreateOrder, h.middleware.OptionalAuth)
	orderGr.Get("/", h.ListMyOrders, h.middleware.RequireAuth)
	orderGr.Get("/track/:number", h.TrackOrder)
	orderGr.Get("/:id", h.GetOrder, h.middleware.RequireAuth)
	orderGr.Get("/:id/invoice", h.DownloadReceipt, h.middleware.RequireAuth)

	api.Post("/contact", h.SubmitContact)
}

func (h *OrderHandler) CreateOrder(c fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	order, err := h.orderService.Create(c.Context(), cartOwner(c), req)
	if err != nil {
		slog.Error("failed to create order", "error", err)
		return respondError(c, err)
	}

	slog.Info("order placed", "order_id", order.OrderID, "total", order.Total)
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(order))
}

func (h *OrderHandler) ListMyOrders(c fiber.Ctx) error {
	claims := claimsFrom(c)

	orders, err := h.orderService.ListForUser(claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(orders))
}

func (h *OrderHandler) GetOrder(c fiber.Ctx) error {
	claims := claimsFrom(c)

	user := &models.User{UserID: claims.UserID, Role: claims.Role}
	order, err := h.orderService.GetForUser(c.Params("id"), user)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(order))
}

// TrackOrder is the public lookup by order number, no account needed.
func (h *OrderHandler) TrackOrder(c fiber.Ctx) error {
	order, err := h.orderService.Track(c.Params("number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(order))
}

func (h *OrderHandler) DownloadReceipt(c fiber.Ctx) error {
	claims := claimsFrom(c)

	user := &models.User{UserID: claims.UserID, Role: claims.Role}
	order, err := h.orderService.GetForUser(c.Params("id"), user)
	if err != nil {
		return respondError(c, err)
	}

	data, err := h.receiptService.Render(order)
	if err != nil {
		slog.Error("failed to render receipt", "order_id", order.OrderID, "error", err)
		return respondError(c, err)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+order.OrderID+`.pdf"`)
	return c.Status(http.StatusOK).Send(data)
}

func (h *OrderHandler) SubmitContact(c fiber.Ctx) error {
	var req models.ContactRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	message, err := h.contactService.Submit(req)
	if err != nil {
		slog.Error("failed to save contact message", "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(message))
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Amadoujf/nouveauyama/internal/config"
	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/services"
	"github.com/Amadoujf/nouveauyama/utils"
	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	dashboardService *services.DashboardService
	orderService     *services.OrderService
	authService      *services.AuthService
	contactService   *services.ContactService
	seedService      *services.SeedService
	cfg              *config.AppConfig
	middleware       *AuthMiddleware
}

func NewAdminHandler(
	dashboardService *services.DashboardService,
	orderService *services.OrderService,
	authService *services.AuthService,
	contactService *services.ContactService,
	seedService *services.SeedService,
	cfg *config.AppConfig,
	middleware *AuthMiddleware,
) *AdminHandler {
	return &AdminHandler{
		dashboardService: dashboardService,
		orderService:     orderService,
		authService:      authService,
		contactService:   contactService,
		seedService:      seedService,
		cfg:              cfg,
		middleware:       middleware,
	}
}

func (h *AdminHandler) Register(app *fiber.App) {
	app.Post("/api/seed", h.Seed)

	adminGr := app.Group("/api/admin", h.middleware.RequireAdmin)
	adminGr.Get("/stats", h.Stats)
	adminGr.Get("/orders", h.ListOrders)
	adminGr.Put("/orders/:id/status", h.UpdateOrderStatus)
	adminGr.Get("/users", h.ListUsers)
	adminGr.Get("/messages", h.ListMessages)
	adminGr.Put("/messages/:id/read", h.MarkMessageRead)
}

// Seed bootstraps demo data. Disabled in production.
func (h *AdminHandler) Seed(c fiber.Ctx) error {
	if h.cfg.Environment == "production" {
		return c.Status(http.StatusForbidden).JSON(
			utils.CreateErrorResponse("FORBIDDEN", "Le seed est désactivé en production"))
	}

	report, err := h.seedService.Run()
	if err != nil {
		slog.Error("seed failed", "error", err)
		return respondError(c, err)
	}

	slog.Info("database seeded", "products", report.Products, "admin_created", report.AdminCreated)
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(report))
}

func (h *AdminHandler) Stats(c fiber.Ctx) error {
	stats, err := h.dashboardService.Admin()
	if err != nil {
		slog.Error("failed to compute admin stats", "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(stats))
}

func (h *AdminHandler) ListOrders(c fiber.Ctx) error {
	filter := models.OrderFilter{
		Status:        models.OrderStatus(c.Query("status")),
		PaymentStatus: models.PaymentStatus(c.Query("payment_status")),
		Limit:         queryInt(c, "limit", 50),
		Skip:          queryInt(c, "skip", 0),
	}

	orders, err := h.orderService.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(orders))
}

func (h *AdminHandler) UpdateOrderStatus(c fiber.Ctx) error {
	var req models.UpdateOrderStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	order, err := h.orderService.UpdateStatus(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(order))
}

func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	users, err := h.authService.ListUsers(queryInt(c, "limit", 50), queryInt(c, "skip", 0))
	if err != nil {
		return respondError(c, err)
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(public))
}

func (h *AdminHandler) ListMessages(c fiber.Ctx) error {
	messages, err := h.contactService.List(queryInt(c, "limit", 50), queryInt(c, "skip", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(messages))
}

func (h *AdminHandler) MarkMessageRead(c fiber.Ctx) error {
	if err := h.contactService.MarkRead(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"message": "Message marqué comme lu",
	}))
}

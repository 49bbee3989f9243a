package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/services"
	"github.com/Amadoujf/nouveauyama/utils"
	"github.com/gofiber/fiber/v3"
)

type MarketingHandler struct {
	marketingService *services.MarketingService
	middleware       *AuthMiddleware
}

func NewMarketingHandler(marketingService *services.MarketingService, middleware *AuthMiddleware) *MarketingHandler {
	return &MarketingHandler{
		marketingService: marketingService,
		middleware:       middleware,
	}
}

func (h *MarketingHandler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/newsletter/subscribe", h.Subscribe)
	api.Get("/newsletter/validate/:code", h.ValidatePromoByCode)
	api.Post("/promo-codes/validate", h.ValidatePromo)

	gameGr := api.Group("/game")
	gameGr.Get("/config", h.WheelConfig)
	gameGr.Get("/check-eligibility", h.CheckEligibility)
	gameGr.Post("/spin", h.Spin)

	adminGr := api.Group("/admin", h.middleware.RequireAdmin)
	adminGr.Get("/subscribers", h.ListSubscribers)
	adminGr.Post("/campaigns", h.CreateCampaign)
	adminGr.Get("/campaigns", h.ListCampaigns)
	adminGr.Post("/campaigns/:id/send", h.SendCampaign)
}

func (h *MarketingHandler) Subscribe(c fiber.Ctx) error {
	var req models.NewsletterSubscribeRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	sub, err := h.marketingService.Subscribe(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(sub))
}

func (h *MarketingHandler) ValidatePromo(c fiber.Ctx) error {
	var req models.ValidatePromoRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	validation, err := h.marketingService.ValidatePromo(req)
	if err != nil {
		slog.Error("promo validation failed", "code", req.Code, "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(validation))
}

// ValidatePromoByCode checks a code without a cart context. Codes with a
// minimum cart amount still report it through the validation reason.
func (h *MarketingHandler) ValidatePromoByCode(c fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return respondBadRequest(c, "Code promo requis")
	}

	validation, err := h.marketingService.ValidatePromo(models.ValidatePromoRequest{
		Code:      code,
		CartTotal: int64(queryInt(c, "cart_total", 0)),
	})
	if err != nil {
		slog.Error("promo validation failed", "code", code, "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(validation))
}

func (h *MarketingHandler) WheelConfig(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(h.marketingService.WheelConfig()))
}

func (h *MarketingHandler) CheckEligibility(c fiber.Ctx) error {
	email := c.Query("email")
	if ok, _ := utils.ValidateEmail(email); !ok {
		return respondBadRequest(c, "Email invalide")
	}

	eligible, err := h.marketingService.CheckEligibility(email)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"eligible": eligible,
	}))
}

func (h *MarketingHandler) Spin(c fiber.Ctx) error {
	var req models.SpinRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	spin, err := h.marketingService.Spin(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(spin))
}

func (h *MarketingHandler) ListSubscribers(c fiber.Ctx) error {
	subscribers, err := h.marketingService.ListSubscribers()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(subscribers))
}

func (h *MarketingHandler) CreateCampaign(c fiber.Ctx) error {
	var req models.CampaignRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	campaign, err := h.marketingService.CreateCampaign(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(campaign))
}

func (h *MarketingHandler) ListCampaigns(c fiber.Ctx) error {
	campaigns, err := h.marketingService.ListCampaigns()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(campaigns))
}

func (h *MarketingHandler) SendCampaign(c fiber.Ctx) error {
	queued, err := h.marketingService.SendCampaign(c.Context(), c.Params("id"))
	if err != nil {
		slog.Error("failed to send campaign", "campaign_id", c.Params("id"), "error", err)
		return respondError(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"queued": queued,
	}))
}

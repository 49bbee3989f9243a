package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/services"
	"github.com/Amadoujf/nouveauyama/utils"
	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	authService *services.AuthService
	middleware  *AuthMiddleware
}

func NewAuthHandler(authService *services.AuthService, middleware *AuthMiddleware) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		middleware:  middleware,
	}
}

func (h *AuthHandler) Register(app *fiber.App) {
	authGr := app.Group("/api/auth")

	authGr.Post("/register", h.RegisterUser)
	authGr.Post("/login", h.Login)
	authGr.Get("/me", h.Me, h.middleware.RequireAuth)
	authGr.Post("/logout", h.Logout, h.middleware.RequireAuth)
}

func (h *AuthHandler) RegisterUser(c fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	user, token, err := h.authService.Register(c.Context(), req)
	if err != nil {
		slog.Error("registration failed", "email", req.Email, "error", err)
		return respondError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(fiber.Map{
		"user":  user.Public(),
		"token": token,
	}))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	user, token, err := h.authService.Login(c.Context(), req)
	if err != nil {
		slog.Warn("login failed", "email", req.Email, "error", err)
		return respondError(c, err)
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"user":  user.Public(),
		"token": token,
	}))
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	claims := claimsFrom(c)

	user, err := h.authService.GetUser(claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(user.Public()))
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims := claimsFrom(c)

	if err := h.authService.Logout(c.Context(), claims.TokenID); err != nil {
		slog.Error("logout failed", "user_id", claims.UserID, "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"message": "Déconnexion réussie",
	}))
}

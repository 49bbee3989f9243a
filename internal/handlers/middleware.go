package handlers

import (
	"net/http"
	"strings"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/services"
	"github.com/Amadoujf/nouveauyama/utils"
	"github.com/gofiber/fiber/v3"
)

const claimsKey = "claims"

type AuthMiddleware struct {
	jwtService  *services.JWTService
	authService *services.AuthService
}

func NewAuthMiddleware(jwtService *services.JWTService, authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		authService: authService,
	}
}

func (m *AuthMiddleware) extractClaims(c fiber.Ctx) (*models.Claims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, models.ErrInvalidCredentials
	}

	tokenString := authHeader
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = authHeader[7:]
	}

	claims, err := m.jwtService.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}

	// Tokens survive logout; the session record does not.
	if !m.authService.IsSessionActive(c.Context(), claims.TokenID) {
		return nil, models.ErrInvalidCredentials
	}

	return claims, nil
}

// RequireAuth rejects requests without a valid bearer token and live session.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	claims, err := m.extractClaims(c)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("UNAUTHORIZED", "Authentification requise"))
	}
	c.Locals(claimsKey, claims)
	return c.Next()
}

// RequireAdmin allows only authenticated admins through.
func (m *AuthMiddleware) RequireAdmin(c fiber.Ctx) error {
	claims, err := m.extractClaims(c)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("UNAUTHORIZED", "Authentification requise"))
	}
	if claims.Role != models.RoleAdmin {
		return c.Status(http.StatusForbidden).JSON(
			utils.CreateErrorResponse("FORBIDDEN", "Accès réservé aux administrateurs"))
	}
	c.Locals(claimsKey, claims)
	return c.Next()
}

// OptionalAuth attaches claims when a valid token is present and lets the
// request through either way. Guest carts rely on this.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if claims, err := m.extractClaims(c); err == nil {
		c.Locals(claimsKey, claims)
	}
	return c.Next()
}

func claimsFrom(c fiber.Ctx) *models.Claims {
	claims, _ := c.Locals(claimsKey).(*models.Claims)
	return claims
}

// cartOwner resolves the cart identity: the user when authenticated,
// otherwise the X-Session-ID header the storefront generates for guests.
func cartOwner(c fiber.Ctx) services.CartOwner {
	if claims := claimsFrom(c); claims != nil {
		return services.CartOwner{UserID: claims.UserID}
	}
	return services.CartOwner{SessionID: c.Get("X-Session-ID")}
}

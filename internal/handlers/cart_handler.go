package handlers

import (
	"net/http"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/services"
	"github.com/Amadoujf/nouveauyama/utils"
	"github.com/gofiber/fiber/v3"
)

type CartHandler struct {
	cartService *services.CartService
	middleware  *AuthMiddleware
}

func NewCartHandler(cartService *services.CartService, middleware *AuthMiddleware) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		middleware:  middleware,
	}
}

func (h *CartHandler) Register(app *fiber.App) {
	// Carts work for guests too; identity comes from the token when present,
	// from the X-Session-ID header otherwise.
	cartGr := app.Group("/api/cart", h.middleware.OptionalAuth)
	cartGr.Get("/", h.GetCart)
	cartGr.Post("/add", h.AddToCart)
	cartGr.Put("/update", h.UpdateCartItem)
	cartGr.Delete("/remove/:id", h.RemoveFromCart)
	cartGr.Delete("/clear", h.ClearCart)

	wishlistGr := app.Group("/api/wishlist", h.middleware.RequireAuth)
	wishlistGr.Get("/", h.GetWishlist)
	wishlistGr.Post("/add/:id", h.AddToWishlist)
	wishlistGr.Delete("/remove/:id", h.RemoveFromWishlist)
}

func (h *CartHandler) GetCart(c fiber.Ctx) error {
	cart, err := h.cartService.Get(cartOwner(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(cart))
}

func (h *CartHandler) AddToCart(c fiber.Ctx) error {
	var req models.AddToCartRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	cart, err := h.cartService.Add(cartOwner(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(cart))
}

func (h *CartHandler) UpdateCartItem(c fiber.Ctx) error {
	var req models.UpdateCartItemRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	cart, err := h.cartService.Update(cartOwner(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(cart))
}

func (h *CartHandler) RemoveFromCart(c fiber.Ctx) error {
	cart, err := h.cartService.Remove(cartOwner(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(cart))
}

func (h *CartHandler) ClearCart(c fiber.Ctx) error {
	if err := h.cartService.Clear(cartOwner(c)); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"message": "Panier vidé",
	}))
}

func (h *CartHandler) GetWishlist(c fiber.Ctx) error {
	claims := claimsFrom(c)

	products, err := h.cartService.GetWishlist(claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(products))
}

func (h *CartHandler) AddToWishlist(c fiber.Ctx) error {
	claims := claimsFrom(c)

	if err := h.cartService.AddToWishlist(claims.UserID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"message": "Produit ajouté à la liste de souhaits",
	}))
}

func (h *CartHandler) RemoveFromWishlist(c fiber.Ctx) error {
	claims := claimsFrom(c)

	if err := h.cartService.RemoveFromWishlist(claims.UserID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"message": "Produit retiré de la liste de souhaits",
	}))
}

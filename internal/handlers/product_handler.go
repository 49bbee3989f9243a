package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/services"
	"github.com/Amadoujf/nouveauyama/utils"
	"github.com/gofiber/fiber/v3"
)

type ProductHandler struct {
	productService *services.ProductService
	authService    *services.AuthService
	middleware     *AuthMiddleware
}

func NewProductHandler(productService *services.ProductService, authService *services.AuthService, middleware *AuthMiddleware) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		authService:    authService,
		middleware:     middleware,
	}
}

func (h *ProductHandler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/categories", h.ListCategories)
	api.Get("/flash-sales", h.FlashSales)

	productGr := api.Group("/products")
	productGr.Get("/", h.ListProducts)
	productGr.Get("/:id", h.GetProduct)
	productGr.Get("/:id/similar", h.SimilarProducts)
	productGr.Get("/:id/reviews", h.ListReviews)
	productGr.Post("/:id/reviews", h.CreateReview, h.middleware.RequireAuth)

	adminGr := api.Group("/admin/products", h.middleware.RequireAdmin)
	adminGr.Post("/", h.CreateProduct)
	adminGr.Put("/:id", h.UpdateProduct)
	adminGr.Delete("/:id", h.DeleteProduct)
}

func (h *ProductHandler) ListCategories(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(services.Categories))
}

func (h *ProductHandler) ListProducts(c fiber.Ctx) error {
	filter := models.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    queryInt(c, "limit", 50),
		Skip:     queryInt(c, "skip", 0),
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}
	if v := c.Query("is_new"); v != "" {
		isNew := v == "true"
		filter.IsNew = &isNew
	}
	if v := c.Query("is_promo"); v != "" {
		isPromo := v == "true"
		filter.IsPromo = &isPromo
	}

	products, err := h.productService.List(filter)
	if err != nil {
		slog.Error("failed to list products", "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(products))
}

func (h *ProductHandler) GetProduct(c fiber.Ctx) error {
	product, err := h.productService.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(product))
}

func (h *ProductHandler) SimilarProducts(c fiber.Ctx) error {
	products, err := h.productService.Similar(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(products))
}

func (h *ProductHandler) FlashSales(c fiber.Ctx) error {
	products, err := h.productService.FlashSales()
	if err != nil {
		slog.Error("failed to list flash sales", "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(products))
}

func (h *ProductHandler) CreateProduct(c fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	product, err := h.productService.Create(req)
	if err != nil {
		slog.Error("failed to create product", "name", req.Name, "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(product))
}

func (h *ProductHandler) UpdateProduct(c fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	product, err := h.productService.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(product))
}

func (h *ProductHandler) DeleteProduct(c fiber.Ctx) error {
	if err := h.productService.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"message": "Produit supprimé",
	}))
}

func (h *ProductHandler) CreateReview(c fiber.Ctx) error {
	claims := claimsFrom(c)

	var req models.CreateReviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	user, err := h.authService.GetUser(claims.UserID)
	if err != nil {
		return respondError(c, err)
	}

	review, err := h.productService.CreateReview(c.Params("id"), user, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(review))
}

func (h *ProductHandler) ListReviews(c fiber.Ctx) error {
	reviews, err := h.productService.ListReviews(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(reviews))
}

func queryInt(c fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

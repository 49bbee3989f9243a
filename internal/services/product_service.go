package services

import (
	"log/slog"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/repository"
	"github.com/Amadoujf/nouveauyama/utils"
)

// Categories is the static storefront taxonomy.
var Categories = []string{
	"electromenager",
	"electronique",
	"mode",
	"maison",
	"beaute",
	"sport",
}

type ProductService struct {
	products *repository.ProductRepository
}

func NewProductService(products *repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) Create(req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		ProductID:        utils.GenerateEntityID("prod_", 12, false),
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            req.Price,
		OriginalPrice:    req.OriginalPrice,
		Category:         req.Category,
		Subcategory:      req.Subcategory,
		Images:           req.Images,
		Stock:            req.Stock,
		Featured:         req.Featured,
		IsNew:            req.IsNew,
		IsPromo:          req.IsPromo,
		Specs:            req.Specs,
	}
	if product.Images == nil {
		product.Images = models.StringList{}
	}

	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List(filter models.ProductFilter) ([]models.Product, error) {
	return s.products.List(filter)
}

// Get returns a product with its review aggregate filled in.
func (s *ProductService) Get(productID string) (*models.Product, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}

	average, count, err := s.products.RatingStats(productID)
	if err != nil {
		slog.Warn("failed to load rating stats", "product_id", productID, "error", err)
		return product, nil
	}
	if count > 0 {
		product.AverageRating = &average
	}
	product.ReviewCount = count

	return product, nil
}

func (s *ProductService) Similar(productID string) ([]models.Product, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	return s.products.Similar(productID, product.Category, 4)
}

func (s *ProductService) FlashSales() ([]models.Product, error) {
	return s.products.FlashSales()
}

func (s *ProductService) Update(productID string, req models.CreateProductRequest) (*models.Product, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.ShortDescription = req.ShortDescription
	product.Price = req.Price
	product.OriginalPrice = req.OriginalPrice
	product.Category = req.Category
	product.Subcategory = req.Subcategory
	if req.Images != nil {
		product.Images = req.Images
	}
	product.Stock = req.Stock
	product.Featured = req.Featured
	product.IsNew = req.IsNew
	product.IsPromo = req.IsPromo
	product.Specs = req.Specs

	if err := s.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(productID string) error {
	return s.products.Delete(productID)
}

// ---------------------------------------------------------------------------
// Reviews
// ---------------------------------------------------------------------------

func (s *ProductService) CreateReview(productID string, user *models.User, req models.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		return nil, err
	}

	verified, err := s.products.HasPurchased(user.UserID, productID)
	if err != nil {
		slog.Warn("failed to check purchase history", "user_id", user.UserID, "error", err)
		verified = false
	}

	review := &models.Review{
		ReviewID:         utils.GenerateEntityID("rev_", 12, false),
		ProductID:        productID,
		UserID:           user.UserID,
		UserName:         user.Name,
		Rating:           req.Rating,
		Title:            req.Title,
		Comment:          req.Comment,
		VerifiedPurchase: verified,
	}

	if err := s.products.CreateReview(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ProductService) ListReviews(productID string) ([]models.Review, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		return nil, err
	}
	return s.products.ListReviews(productID)
}

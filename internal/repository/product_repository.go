package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/jmoiron/sqlx"
)

type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(product *models.Product) error {
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	query := `
		INSERT INTO products (product_id, name, description, short_description, price,
			original_price, category, subcategory, images, stock, featured, is_new,
			is_promo, specs, created_at, updated_at)
		VALUES (:product_id, :name, :description, :short_description, :price,
			:original_price, :category, :subcategory, :images, :stock, :featured, :is_new,
			:is_promo, :specs, :created_at, :updated_at)`

	if _, err := r.db.NamedExec(query, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *ProductRepository) GetByID(productID string) (*models.Product, error) {
	var product models.Product
	query := `
		SELECT product_id, name, description, short_description, price, original_price,
			category, subcategory, images, stock, featured, is_new, is_promo, specs,
			created_at, updated_at
		FROM products WHERE product_id = $1`

	err := r.db.Get(&product, query, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (r *ProductRepository) List(filter models.ProductFilter) ([]models.Product, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	addCondition := func(cond string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.Category != "" {
		addCondition("category = $%d", filter.Category)
	}
	if filter.Featured != nil {
		addCondition("featured = $%d", *filter.Featured)
	}
	if filter.IsNew != nil {
		addCondition("is_new = $%d", *filter.IsNew)
	}
	if filter.IsPromo != nil {
		addCondition("is_promo = $%d", *filter.IsPromo)
	}
	if filter.Search != "" {
		addCondition("(name ILIKE $%d OR description ILIKE $%[1]d)", "%"+filter.Search+"%")
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := fmt.Sprintf(`
		SELECT product_id, name, description, short_description, price, original_price,
			category, subcategory, images, stock, featured, is_new, is_promo, specs,
			created_at, updated_at
		FROM products
		WHERE %s
		ORDER BY created_at DESC
		LIMIT %d OFFSET %d`, strings.Join(conditions, " AND "), limit, filter.Skip)

	var products []models.Product
	if err := r.db.Select(&products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// Similar returns products sharing the category, excluding the product itself.
func (r *ProductRepository) Similar(productID, category string, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 4
	}

	var products []models.Product
	query := `
		SELECT product_id, name, description, short_description, price, original_price,
			category, subcategory, images, stock, featured, is_new, is_promo, specs,
			created_at, updated_at
		FROM products
		WHERE category = $1 AND product_id <> $2
		ORDER BY created_at DESC
		LIMIT $3`

	if err := r.db.Select(&products, query, category, productID, limit); err != nil {
		return nil, fmt.Errorf("failed to list similar products: %w", err)
	}

	return products, nil
}

// FlashSales returns promo products that carry a struck-through original price.
func (r *ProductRepository) FlashSales() ([]models.Product, error) {
	var products []models.Product
	query := `
		SELECT product_id, name, description, short_description, price, original_price,
			category, subcategory, images, stock, featured, is_new, is_promo, specs,
			created_at, updated_at
		FROM products
		WHERE is_promo = TRUE AND original_price IS NOT NULL
		ORDER BY created_at DESC`

	if err := r.db.Select(&products, query); err != nil {
		return nil, fmt.Errorf("failed to list flash sales: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) Update(product *models.Product) error {
	product.UpdatedAt = time.Now()

	query := `
		UPDATE products
		SET name = :name,
			description = :description,
			short_description = :short_description,
			price = :price,
			original_price = :original_price,
			category = :category,
			subcategory = :subcategory,
			images = :images,
			stock = :stock,
			featured = :featured,
			is_new = :is_new,
			is_promo = :is_promo,
			specs = :specs,
			updated_at = :updated_at
		WHERE product_id = :product_id`

	result, err := r.db.NamedExec(query, product)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *ProductRepository) Delete(productID string) error {
	result, err := r.db.Exec(`DELETE FROM products WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *ProductRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Reviews
// ---------------------------------------------------------------------------

func (r *ProductRepository) CreateReview(review *models.Review) error {
	review.CreatedAt = time.Now()

	query := `
		INSERT INTO reviews (review_id, product_id, user_id, user_name, rating, title,
			comment, verified_purchase, created_at)
		VALUES (:review_id, :product_id, :user_id, :user_name, :rating, :title,
			:comment, :verified_purchase, :created_at)`

	if _, err := r.db.NamedExec(query, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *ProductRepository) ListReviews(productID string) ([]models.Review, error) {
	var reviews []models.Review
	query := `SELECT * FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`

	if err := r.db.Select(&reviews, query, productID); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// RatingStats returns the average rating and review count for a product.
func (r *ProductRepository) RatingStats(productID string) (float64, int, error) {
	var stats struct {
		Average sql.NullFloat64 `db:"average"`
		Count   int             `db:"count"`
	}
	query := `SELECT AVG(rating) AS average, COUNT(*) AS count FROM reviews WHERE product_id = $1`

	if err := r.db.Get(&stats, query, productID); err != nil {
		return 0, 0, fmt.Errorf("failed to get rating stats: %w", err)
	}

	return stats.Average.Float64, stats.Count, nil
}

// HasPurchased reports whether the user has a paid or delivered order
// containing the product, used for the verified purchase flag.
func (r *ProductRepository) HasPurchased(userID, productID string) (bool, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM orders
		WHERE user_id = $1
		  AND (payment_status = 'paid' OR order_status = 'delivered')
		  AND items @> $2::jsonb`

	itemMatch := fmt.Sprintf(`[{"product_id": %q}]`, productID)
	if err := r.db.Get(&count, query, userID, itemMatch); err != nil {
		return false, fmt.Errorf("failed to check purchase history: %w", err)
	}

	return count > 0, nil
}

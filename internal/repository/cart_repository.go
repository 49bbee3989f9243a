package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/jmoiron/sqlx"
)

type CartRepository struct {
	db *sqlx.DB
}

func NewCartRepository(db *sqlx.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) GetByUser(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Get(&cart, `SELECT * FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart by user: %w", err)
	}
	return &cart, nil
}

func (r *CartRepository) GetBySession(sessionID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Get(&cart, `SELECT * FROM carts WHERE session_id = $1`, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart by session: %w", err)
	}
	return &cart, nil
}

func (r *CartRepository) Create(cart *models.Cart) error {
	cart.CreatedAt = time.Now()
	cart.UpdatedAt = cart.CreatedAt

	query := `
		INSERT INTO carts (cart_id, user_id, session_id, items, created_at, updated_at)
		VALUES (:cart_id, :user_id, :session_id, :items, :created_at, :updated_at)`

	if _, err := r.db.NamedExec(query, cart); err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

func (r *CartRepository) UpdateItems(cartID string, items models.CartItemList) error {
	result, err := r.db.Exec(
		`UPDATE carts SET items = $2, updated_at = now() WHERE cart_id = $1`,
		cartID, items)
	if err != nil {
		return fmt.Errorf("failed to update cart items: %w", err)
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

func (r *CartRepository) Delete(cartID string) error {
	if _, err := r.db.Exec(`DELETE FROM carts WHERE cart_id = $1`, cartID); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Wishlist
// ---------------------------------------------------------------------------

type WishlistRepository struct {
	db *sqlx.DB
}

func NewWishlistRepository(db *sqlx.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

func (r *WishlistRepository) Get(userID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.db.Get(&wishlist, `SELECT * FROM wishlists WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	return &wishlist, nil
}

// Upsert writes the wishlist item list, creating the row on first use.
func (r *WishlistRepository) Upsert(userID string, items models.StringList) error {
	query := `
		INSERT INTO wishlists (user_id, items, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (user_id) DO UPDATE SET items = EXCLUDED.items, updated_at = now()`

	if _, err := r.db.Exec(query, userID, items); err != nil {
		return fmt.Errorf("failed to upsert wishlist: %w", err)
	}
	return nil
}

package models

import "time"

// Cart belongs either to an authenticated user or to an anonymous session,
// never both.
type Cart struct {
	CartID    string       `json:"cart_id" db:"cart_id"`
	UserID    *string      `json:"user_id,omitempty" db:"user_id"`
	SessionID *string      `json:"session_id,omitempty" db:"session_id"`
	Items     CartItemList `json:"items" db:"items"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}

// EnrichedCartItem joins a cart row with current product data.
type EnrichedCartItem struct {
	ProductID string     `json:"product_id"`
	Name      string     `json:"name"`
	Price     int64      `json:"price"`
	Images    StringList `json:"images"`
	Stock     int        `json:"stock"`
	Quantity  int        `json:"quantity"`
	LineTotal int64      `json:"line_total"`
}

type EnrichedCart struct {
	CartID string             `json:"cart_id"`
	Items  []EnrichedCartItem `json:"items"`
	Total  int64              `json:"total"`
}

type Wishlist struct {
	UserID    string     `json:"user_id" db:"user_id"`
	Items     StringList `json:"items" db:"items"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

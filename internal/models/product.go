package models

import "time"

type Product struct {
	ProductID        string     `json:"product_id" db:"product_id"`
	Name             string     `json:"name" db:"name"`
	Description      string     `json:"description" db:"description"`
	ShortDescription string     `json:"short_description" db:"short_description"`
	Price            int64      `json:"price" db:"price"`
	OriginalPrice    *int64     `json:"original_price,omitempty" db:"original_price"`
	Category         string     `json:"category" db:"category"`
	Subcategory      *string    `json:"subcategory,omitempty" db:"subcategory"`
	Images           StringList `json:"images" db:"images"`
	Stock            int        `json:"stock" db:"stock"`
	Featured         bool       `json:"featured" db:"featured"`
	IsNew            bool       `json:"is_new" db:"is_new"`
	IsPromo          bool       `json:"is_promo" db:"is_promo"`
	Specs            JSONMap    `json:"specs,omitempty" db:"specs"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`

	// Filled from the reviews table on single-product fetch, not stored.
	AverageRating *float64 `json:"average_rating,omitempty" db:"-"`
	ReviewCount   int      `json:"review_count" db:"-"`
}

// ProductFilter narrows product listing.
type ProductFilter struct {
	Category string
	Featured *bool
	IsNew    *bool
	IsPromo  *bool
	Search   string
	Limit    int
	Skip     int
}

type Review struct {
	ReviewID         string    `json:"review_id" db:"review_id"`
	ProductID        string    `json:"product_id" db:"product_id"`
	UserID           string    `json:"user_id" db:"user_id"`
	UserName         string    `json:"user_name" db:"user_name"`
	Rating           int       `json:"rating" db:"rating"`
	Title            string    `json:"title" db:"title"`
	Comment          string    `json:"comment" db:"comment"`
	VerifiedPurchase bool      `json:"verified_purchase" db:"verified_purchase"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

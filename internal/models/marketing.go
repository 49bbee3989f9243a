package models

import "time"

type NewsletterSubscriber struct {
	Email        string    `json:"email" db:"email"`
	Name         *string   `json:"name,omitempty" db:"name"`
	PromoCode    string    `json:"promo_code" db:"promo_code"`
	SubscribedAt time.Time `json:"subscribed_at" db:"subscribed_at"`
}

type PromoCode struct {
	Code            string     `json:"code" db:"code"`
	DiscountPercent int        `json:"discount_percent" db:"discount_percent"`
	DiscountAmount  int64      `json:"discount_amount" db:"discount_amount"`
	FreeShipping    bool       `json:"free_shipping" db:"free_shipping"`
	MinCartTotal    int64      `json:"min_cart_total" db:"min_cart_total"`
	IssuedTo        *string    `json:"issued_to,omitempty" db:"issued_to"`
	Used            bool       `json:"used" db:"used"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

type GameSpin struct {
	SpinID    string    `json:"spin_id" db:"spin_id"`
	Email     string    `json:"email" db:"email"`
	Name      *string   `json:"name,omitempty" db:"name"`
	PrizeType PrizeType `json:"prize_type" db:"prize_type"`
	PrizeCode string    `json:"prize_code" db:"prize_code"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Campaign struct {
	CampaignID     string         `json:"campaign_id" db:"campaign_id"`
	Subject        string         `json:"subject" db:"subject"`
	BodyHTML       string         `json:"body_html" db:"body_html"`
	Status         CampaignStatus `json:"status" db:"status"`
	RecipientCount int            `json:"recipient_count" db:"recipient_count"`
	SentAt         *time.Time     `json:"sent_at,omitempty" db:"sent_at"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}

// WheelPrize describes one bucket of the spin wheel as served to the
// storefront.
type WheelPrize struct {
	Type   PrizeType `json:"type"`
	Label  string    `json:"label"`
	Weight int       `json:"weight"`
}

package models

import "time"

type Order struct {
	OrderID       string        `json:"order_id" db:"order_id"`
	UserID        *string       `json:"user_id,omitempty" db:"user_id"`
	Items         OrderItemList `json:"items" db:"items"`
	Shipping      ShippingInfo  `json:"shipping" db:"shipping"`
	PaymentMethod PaymentMethod `json:"payment_method" db:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	OrderStatus   OrderStatus   `json:"order_status" db:"order_status"`
	Subtotal      int64         `json:"subtotal" db:"subtotal"`
	ShippingCost  int64         `json:"shipping_cost" db:"shipping_cost"`
	Total         int64         `json:"total" db:"total"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// OrderFilter narrows admin order listing.
type OrderFilter struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
	Limit         int
	Skip          int
}

type ContactMessage struct {
	MessageID string    `json:"message_id" db:"message_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// scanJSON decodes a JSONB column value into dest. lib/pq hands JSONB back
// as []byte.
func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan JSONB: expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, dest)
}

// LineItem is one row of a quote or invoice. Prices are whole FCFA. Quantity
// is fractional so services sold by the hour or by weight stay representable.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"` // display label, defaults to "unité"
	UnitPrice   int64   `json:"unit_price"`
	Discount    float64 `json:"discount"` // percent, 0..100
}

type LineItemList []LineItem

func (l LineItemList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal line items: %w", err)
	}
	return string(b), nil
}

func (l *LineItemList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// ContractClause is one numbered clause of a contract.
type ContractClause struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ClauseList []ContractClause

func (l ClauseList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal clauses: %w", err)
	}
	return string(b), nil
}

func (l *ClauseList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// CartItem references a product with a chosen quantity.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CartItemList []CartItem

func (l CartItemList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart items: %w", err)
	}
	return string(b), nil
}

func (l *CartItemList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// OrderItem is a snapshot of a product at order time. Name and price are
// copied so later catalog edits do not rewrite order history.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

type OrderItemList []OrderItem

func (l OrderItemList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order items: %w", err)
	}
	return string(b), nil
}

func (l *OrderItemList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// ShippingInfo is the delivery block of an order.
type ShippingInfo struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Region   string `json:"region,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

func (s ShippingInfo) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal shipping info: %w", err)
	}
	return string(b), nil
}

func (s *ShippingInfo) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// StringList maps to a JSONB array of strings (product image URLs).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// JSONMap maps to a free-form JSONB object (product specs).
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON map: %w", err)
	}
	return string(b), nil
}

func (m *JSONMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

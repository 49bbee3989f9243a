package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Amadoujf/nouveauyama/utils"
)

func trimAndValidateString(str string, fieldName string, minLen, maxLen int) error {
	trimmed := strings.TrimSpace(str)
	if len(trimmed) < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if len(trimmed) > maxLen {
		return fmt.Errorf("%s must be %d characters or less", fieldName, maxLen)
	}
	return nil
}

func isValidPaymentMethod(method PaymentMethod) bool {
	switch method {
	case PaymentWave, PaymentOrangeMoney, PaymentCard, PaymentCash:
		return true
	default:
		return false
	}
}

func isValidContractType(contractType ContractType) bool {
	switch contractType {
	case ContractPartnership, ContractSponsoring, ContractVendor:
		return true
	default:
		return false
	}
}

func isValidInvoiceType(invoiceType InvoiceType) bool {
	switch invoiceType {
	case InvoiceTypeProforma, InvoiceTypeFinal:
		return true
	default:
		return false
	}
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
}

func (r RegisterRequest) Validate() error {
	if ok, _ := utils.ValidateEmail(r.Email); !ok {
		return errors.New("email format incorrect")
	}
	if err := trimAndValidateString(r.Name, "name", 2, 255); err != nil {
		return err
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if r.Phone != nil && *r.Phone != "" {
		if ok, _ := utils.ValidatePhone(*r.Phone); !ok {
			return errors.New("phone format incorrect")
		}
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

type CreateProductRequest struct {
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description"`
	Price            int64      `json:"price"`
	OriginalPrice    *int64     `json:"original_price,omitempty"`
	Category         string     `json:"category"`
	Subcategory      *string    `json:"subcategory,omitempty"`
	Images           StringList `json:"images"`
	Stock            int        `json:"stock"`
	Featured         bool       `json:"featured"`
	IsNew            bool       `json:"is_new"`
	IsPromo          bool       `json:"is_promo"`
	Specs            JSONMap    `json:"specs,omitempty"`
}

func (r CreateProductRequest) Validate() error {
	if err := trimAndValidateString(r.Name, "name", 2, 255); err != nil {
		return err
	}
	if err := trimAndValidateString(r.Category, "category", 2, 64); err != nil {
		return err
	}
	if r.Price < 0 {
		return errors.New("price must not be negative")
	}
	if r.OriginalPrice != nil && *r.OriginalPrice < 0 {
		return errors.New("original_price must not be negative")
	}
	if r.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

func (r CreateReviewRequest) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	if err := trimAndValidateString(r.Title, "title", 1, 255); err != nil {
		return err
	}
	if strings.TrimSpace(r.Comment) == "" {
		return errors.New("comment is required")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Cart
// ---------------------------------------------------------------------------

type AddToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (r AddToCartRequest) Validate() error {
	if strings.TrimSpace(r.ProductID) == "" {
		return errors.New("product_id is required")
	}
	if r.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	return nil
}

type UpdateCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (r UpdateCartItemRequest) Validate() error {
	if strings.TrimSpace(r.ProductID) == "" {
		return errors.New("product_id is required")
	}
	if r.Quantity < 0 {
		return errors.New("quantity must not be negative")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Orders
// ---------------------------------------------------------------------------

type CreateOrderRequest struct {
	Items         []OrderItem   `json:"items"`
	Shipping      ShippingInfo  `json:"shipping"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PromoCode     *string       `json:"promo_code,omitempty"`
}

func (r CreateOrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return errors.New("order must contain at least one item")
	}
	for _, item := range r.Items {
		if item.ProductID == "" {
			return errors.New("order item missing product_id")
		}
		if item.Quantity < 1 {
			return errors.New("order item quantity must be at least 1")
		}
	}
	if err := trimAndValidateString(r.Shipping.FullName, "shipping.full_name", 2, 255); err != nil {
		return err
	}
	if strings.TrimSpace(r.Shipping.Address) == "" {
		return errors.New("shipping.address is required")
	}
	if strings.TrimSpace(r.Shipping.City) == "" {
		return errors.New("shipping.city is required")
	}
	if ok, _ := utils.ValidatePhone(r.Shipping.Phone); !ok {
		return errors.New("shipping.phone format incorrect")
	}
	if !isValidPaymentMethod(r.PaymentMethod) {
		return fmt.Errorf("unsupported payment method: %s", r.PaymentMethod)
	}
	return nil
}

type UpdateOrderStatusRequest struct {
	OrderStatus   *OrderStatus   `json:"order_status,omitempty"`
	PaymentStatus *PaymentStatus `json:"payment_status,omitempty"`
}

func (r UpdateOrderStatusRequest) Validate() error {
	if r.OrderStatus == nil && r.PaymentStatus == nil {
		return errors.New("nothing to update")
	}
	if r.OrderStatus != nil {
		switch *r.OrderStatus {
		case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		default:
			return fmt.Errorf("unknown order status: %s", *r.OrderStatus)
		}
	}
	if r.PaymentStatus != nil {
		switch *r.PaymentStatus {
		case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		default:
			return fmt.Errorf("unknown payment status: %s", *r.PaymentStatus)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Commercial documents
// ---------------------------------------------------------------------------

type PartnerRequest struct {
	Name        string  `json:"name"`
	CompanyName *string `json:"company_name,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	NINEA       *string `json:"ninea,omitempty"`
	RCCM        *string `json:"rccm,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (r PartnerRequest) Validate() error {
	if err := trimAndValidateString(r.Name, "name", 2, 255); err != nil {
		return err
	}
	if r.Email != nil && *r.Email != "" {
		if ok, _ := utils.ValidateEmail(*r.Email); !ok {
			return errors.New("email format incorrect")
		}
	}
	return nil
}

type CreateQuoteRequest struct {
	PartnerID    string     `json:"partner_id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	Items        []LineItem `json:"items"`
	ValidityDays int        `json:"validity_days"`
	Notes        *string    `json:"notes,omitempty"`
	PaymentTerms *string    `json:"payment_terms,omitempty"`
}

func (r CreateQuoteRequest) Validate() error {
	if strings.TrimSpace(r.PartnerID) == "" {
		return errors.New("partner_id is required")
	}
	if err := trimAndValidateString(r.Title, "title", 2, 255); err != nil {
		return err
	}
	if len(r.Items) == 0 {
		return errors.New("quote must contain at least one item")
	}
	if r.ValidityDays < 0 {
		return errors.New("validity_days must not be negative")
	}
	return nil
}

type CreateInvoiceRequest struct {
	PartnerID    string      `json:"partner_id"`
	InvoiceType  InvoiceType `json:"invoice_type"`
	Title        string      `json:"title"`
	Description  *string     `json:"description,omitempty"`
	Items        []LineItem  `json:"items"`
	DueDate      *time.Time  `json:"due_date,omitempty"`
	Notes        *string     `json:"notes,omitempty"`
	PaymentTerms *string     `json:"payment_terms,omitempty"`
}

func (r CreateInvoiceRequest) Validate() error {
	if strings.TrimSpace(r.PartnerID) == "" {
		return errors.New("partner_id is required")
	}
	if !isValidInvoiceType(r.InvoiceType) {
		return fmt.Errorf("unknown invoice type: %s", r.InvoiceType)
	}
	if err := trimAndValidateString(r.Title, "title", 2, 255); err != nil {
		return err
	}
	if len(r.Items) == 0 {
		return errors.New("invoice must contain at least one item")
	}
	return nil
}

type CreateContractRequest struct {
	PartnerID    string           `json:"partner_id"`
	ContractType ContractType     `json:"contract_type"`
	Title        string           `json:"title"`
	Description  *string          `json:"description,omitempty"`
	Clauses      []ContractClause `json:"clauses"`
	StartDate    time.Time        `json:"start_date"`
	EndDate      *time.Time       `json:"end_date,omitempty"`
	Value        *int64           `json:"value,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

func (r CreateContractRequest) Validate() error {
	if strings.TrimSpace(r.PartnerID) == "" {
		return errors.New("partner_id is required")
	}
	if !isValidContractType(r.ContractType) {
		return fmt.Errorf("unknown contract type: %s", r.ContractType)
	}
	if err := trimAndValidateString(r.Title, "title", 2, 255); err != nil {
		return err
	}
	if r.StartDate.IsZero() {
		return errors.New("start_date is required")
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return errors.New("end_date must be after start_date")
	}
	if r.Value != nil && *r.Value < 0 {
		return errors.New("value must not be negative")
	}
	return nil
}

type RecordPaymentRequest struct {
	Amount int64 `json:"amount"`
}

func (r RecordPaymentRequest) Validate() error {
	if r.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Marketing
// ---------------------------------------------------------------------------

type NewsletterSubscribeRequest struct {
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

func (r NewsletterSubscribeRequest) Validate() error {
	if ok, _ := utils.ValidateEmail(r.Email); !ok {
		return errors.New("email format incorrect")
	}
	return nil
}

type ValidatePromoRequest struct {
	Code      string `json:"code"`
	CartTotal int64  `json:"cart_total"`
}

func (r ValidatePromoRequest) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return errors.New("code is required")
	}
	if r.CartTotal < 0 {
		return errors.New("cart_total must not be negative")
	}
	return nil
}

type SpinRequest struct {
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

func (r SpinRequest) Validate() error {
	if ok, _ := utils.ValidateEmail(r.Email); !ok {
		return errors.New("email format incorrect")
	}
	return nil
}

type CampaignRequest struct {
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
}

func (r CampaignRequest) Validate() error {
	if err := trimAndValidateString(r.Subject, "subject", 2, 255); err != nil {
		return err
	}
	if strings.TrimSpace(r.BodyHTML) == "" {
		return errors.New("body_html is required")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Contact & payments
// ---------------------------------------------------------------------------

type ContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
}

func (r ContactRequest) Validate() error {
	if err := trimAndValidateString(r.Name, "name", 2, 255); err != nil {
		return err
	}
	if ok, _ := utils.ValidateEmail(r.Email); !ok {
		return errors.New("email format incorrect")
	}
	if err := trimAndValidateString(r.Subject, "subject", 2, 255); err != nil {
		return err
	}
	if strings.TrimSpace(r.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}

type InitiatePaymentRequest struct {
	OrderID string `json:"order_id"`
}

func (r InitiatePaymentRequest) Validate() error {
	if strings.TrimSpace(r.OrderID) == "" {
		return errors.New("order_id is required")
	}
	return nil
}

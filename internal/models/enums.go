package models

// DocType identifies a numbered commercial document family. Each family
// carries an independent yearly sequence.
type DocType string

const (
	DocTypeQuote    DocType = "quote"
	DocTypeProforma DocType = "proforma"
	DocTypeInvoice  DocType = "invoice"
	DocTypeContract DocType = "contract"
)

// Code returns the short code embedded in document numbers.
func (d DocType) Code() string {
	switch d {
	case DocTypeQuote:
		return "DEV"
	case DocTypeProforma:
		return "PRO"
	case DocTypeInvoice:
		return "FAC"
	case DocTypeContract:
		return "CTR"
	default:
		return ""
	}
}

type QuoteStatus string

const (
	QuotePending   QuoteStatus = "pending"
	QuoteAccepted  QuoteStatus = "accepted"
	QuoteRefused   QuoteStatus = "refused"
	QuoteConverted QuoteStatus = "converted"
)

type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "unpaid"
	InvoicePartial InvoiceStatus = "partial"
	InvoicePaid    InvoiceStatus = "paid"
)

type InvoiceType string

const (
	InvoiceTypeProforma InvoiceType = "proforma"
	InvoiceTypeFinal    InvoiceType = "final"
)

type ContractStatus string

const (
	ContractDraft   ContractStatus = "draft"
	ContractActive  ContractStatus = "active"
	ContractSigned  ContractStatus = "signed"
	ContractExpired ContractStatus = "expired"
)

type ContractType string

const (
	ContractPartnership ContractType = "partnership"
	ContractSponsoring  ContractType = "sponsoring"
	ContractVendor      ContractType = "vendor"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentWave        PaymentMethod = "wave"
	PaymentOrangeMoney PaymentMethod = "orange_money"
	PaymentCard        PaymentMethod = "card"
	PaymentCash        PaymentMethod = "cash"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type PrizeType string

const (
	PrizeDiscount5    PrizeType = "discount_5"
	PrizeDiscount10   PrizeType = "discount_10"
	PrizeDiscount15   PrizeType = "discount_15"
	PrizeDiscount20   PrizeType = "discount_20"
	PrizeFreeShipping PrizeType = "free_shipping"
)

type CampaignStatus string

const (
	CampaignDraft CampaignStatus = "draft"
	CampaignSent  CampaignStatus = "sent"
)

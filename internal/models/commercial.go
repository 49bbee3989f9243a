package models

import "time"

type Partner struct {
	PartnerID   string     `json:"partner_id" db:"partner_id"`
	Name        string     `json:"name" db:"name"`
	CompanyName *string    `json:"company_name,omitempty" db:"company_name"`
	Address     *string    `json:"address,omitempty" db:"address"`
	City        string     `json:"city" db:"city"`
	Country     string     `json:"country" db:"country"`
	Email       *string    `json:"email,omitempty" db:"email"`
	Phone       *string    `json:"phone,omitempty" db:"phone"`
	NINEA       *string    `json:"ninea,omitempty" db:"ninea"`
	RCCM        *string    `json:"rccm,omitempty" db:"rccm"`
	LogoURL     *string    `json:"logo_url,omitempty" db:"logo_url"`
	Notes       *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// MonetaryTotal is the output of the line-item total calculator. Values are
// whole FCFA.
type MonetaryTotal struct {
	Subtotal int64 `json:"subtotal"`
	Total    int64 `json:"total"`
}

// DocumentSequence is one per-type per-year counter row.
type DocumentSequence struct {
	DocType      DocType   `json:"doc_type" db:"doc_type"`
	Year         int       `json:"year" db:"year"`
	LastSequence int       `json:"last_sequence" db:"last_sequence"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type Quote struct {
	QuoteID              string       `json:"quote_id" db:"quote_id"`
	QuoteNumber          string       `json:"quote_number" db:"quote_number"`
	PartnerID            string       `json:"partner_id" db:"partner_id"`
	Title                string       `json:"title" db:"title"`
	Description          *string      `json:"description,omitempty" db:"description"`
	Items                LineItemList `json:"items" db:"items"`
	ValidityDays         int          `json:"validity_days" db:"validity_days"`
	Notes                *string      `json:"notes,omitempty" db:"notes"`
	PaymentTerms         *string      `json:"payment_terms,omitempty" db:"payment_terms"`
	Subtotal             int64        `json:"subtotal" db:"subtotal"`
	Total                int64        `json:"total" db:"total"`
	Status               QuoteStatus  `json:"status" db:"status"`
	AcceptedAt           *time.Time   `json:"accepted_at,omitempty" db:"accepted_at"`
	RefusedAt            *time.Time   `json:"refused_at,omitempty" db:"refused_at"`
	ConvertedToInvoiceID *string      `json:"converted_to_invoice_id,omitempty" db:"converted_to_invoice_id"`
	PDFURL               *string      `json:"pdf_url,omitempty" db:"pdf_url"`
	CreatedAt            time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt            *time.Time   `json:"updated_at,omitempty" db:"updated_at"`
}

type Invoice struct {
	InvoiceID     string        `json:"invoice_id" db:"invoice_id"`
	InvoiceNumber string        `json:"invoice_number" db:"invoice_number"`
	PartnerID     string        `json:"partner_id" db:"partner_id"`
	InvoiceType   InvoiceType   `json:"invoice_type" db:"invoice_type"`
	Title         string        `json:"title" db:"title"`
	Description   *string       `json:"description,omitempty" db:"description"`
	Items         LineItemList  `json:"items" db:"items"`
	DueDate       *time.Time    `json:"due_date,omitempty" db:"due_date"`
	Notes         *string       `json:"notes,omitempty" db:"notes"`
	PaymentTerms  *string       `json:"payment_terms,omitempty" db:"payment_terms"`
	FromQuoteID   *string       `json:"from_quote_id,omitempty" db:"from_quote_id"`
	Subtotal      int64         `json:"subtotal" db:"subtotal"`
	Total         int64         `json:"total" db:"total"`
	AmountPaid    int64         `json:"amount_paid" db:"amount_paid"`
	Status        InvoiceStatus `json:"status" db:"status"`
	PaidAt        *time.Time    `json:"paid_at,omitempty" db:"paid_at"`
	PDFURL        *string       `json:"pdf_url,omitempty" db:"pdf_url"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     *time.Time    `json:"updated_at,omitempty" db:"updated_at"`
}

type Contract struct {
	ContractID     string         `json:"contract_id" db:"contract_id"`
	ContractNumber string         `json:"contract_number" db:"contract_number"`
	PartnerID      string         `json:"partner_id" db:"partner_id"`
	ContractType   ContractType   `json:"contract_type" db:"contract_type"`
	Title          string         `json:"title" db:"title"`
	Description    *string        `json:"description,omitempty" db:"description"`
	Clauses        ClauseList     `json:"clauses" db:"clauses"`
	StartDate      time.Time      `json:"start_date" db:"start_date"`
	EndDate        *time.Time     `json:"end_date,omitempty" db:"end_date"`
	Value          *int64         `json:"value,omitempty" db:"value"`
	Notes          *string        `json:"notes,omitempty" db:"notes"`
	Status         ContractStatus `json:"status" db:"status"`
	SignedAt       *time.Time     `json:"signed_at,omitempty" db:"signed_at"`
	PDFURL         *string        `json:"pdf_url,omitempty" db:"pdf_url"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty" db:"updated_at"`
}

// StatusCount is one bucket of a per-status aggregate.
type StatusCount struct {
	Status string `json:"status" db:"status"`
	Count  int    `json:"count" db:"count"`
}

// CommercialDashboard is the aggregate served to the back office. Sequences
// holds the last allocated document number per code for the current year.
type CommercialDashboard struct {
	Partners       int            `json:"partners"`
	Quotes         []StatusCount  `json:"quotes"`
	Invoices       []StatusCount  `json:"invoices"`
	Contracts      []StatusCount  `json:"contracts"`
	InvoicedTotal  int64          `json:"invoiced_total"`
	CollectedTotal int64          `json:"collected_total"`
	OutstandingDue int64          `json:"outstanding_due"`
	Sequences      map[string]int `json:"sequences"`
}

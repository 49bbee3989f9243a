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

type InvoiceRepository struct {
	db *sqlx.DB
}

func NewInvoiceRepository(db *sqlx.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(invoice *models.Invoice) error {
	invoice.CreatedAt = time.Now()

	query := `
		INSERT INTO invoices (invoice_id, invoice_number, partner_id, invoice_type,
			title, description, items, due_date, notes, payment_terms, from_quote_id,
			subtotal, total, amount_paid, status, created_at)
		VALUES (:invoice_id, :invoice_number, :partner_id, :invoice_type,
			:title, :description, :items, :due_date, :notes, :payment_terms, :from_quote_id,
			:subtotal, :total, :amount_paid, :status, :created_at)`

	if _, err := r.db.NamedExec(query, invoice); err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateNumber
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) GetByID(invoiceID string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.Get(&invoice, `SELECT * FROM invoices WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) List(status models.InvoiceStatus, invoiceType models.InvoiceType, partnerID string) ([]models.Invoice, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, status)
		argPos++
	}
	if invoiceType != "" {
		conditions = append(conditions, fmt.Sprintf("invoice_type = $%d", argPos))
		args = append(args, invoiceType)
		argPos++
	}
	if partnerID != "" {
		conditions = append(conditions, fmt.Sprintf("partner_id = $%d", argPos))
		args = append(args, partnerID)
		argPos++
	}

	query := fmt.Sprintf(`SELECT * FROM invoices WHERE %s ORDER BY created_at DESC`,
		strings.Join(conditions, " AND "))

	var invoices []models.Invoice
	if err := r.db.Select(&invoices, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// RecordPayment adds amount to amount_paid in one write. Status and paid_at
// are derived from the resulting balance inside the same statement, so the
// row is never observed in an inconsistent state.
func (r *InvoiceRepository) RecordPayment(invoiceID string, amount int64) (*models.Invoice, error) {
	query := `
		UPDATE invoices
		SET amount_paid = amount_paid + $2,
			status = CASE
				WHEN amount_paid + $2 >= total THEN 'paid'
				WHEN amount_paid + $2 > 0 THEN 'partial'
				ELSE 'unpaid'
			END,
			paid_at = CASE
				WHEN amount_paid + $2 >= total THEN COALESCE(paid_at, now())
				ELSE NULL
			END,
			updated_at = now()
		WHERE invoice_id = $1
		RETURNING *`

	var invoice models.Invoice
	err := r.db.Get(&invoice, query, invoiceID, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return &invoice, nil
}

// ResetPayments puts the invoice back to unpaid: amount_paid drops to zero
// and the paid timestamp is cleared, in one write.
func (r *InvoiceRepository) ResetPayments(invoiceID string) (*models.Invoice, error) {
	query := `
		UPDATE invoices
		SET amount_paid = 0,
			status = 'unpaid',
			paid_at = NULL,
			updated_at = now()
		WHERE invoice_id = $1
		RETURNING *`

	var invoice models.Invoice
	err := r.db.Get(&invoice, query, invoiceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to reset payments: %w", err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) SetPDFURL(invoiceID, url string) error {
	return setPDFURL(r.db, "invoices", "invoice_id", invoiceID, url)
}

func (r *InvoiceRepository) StatusCounts() ([]models.StatusCount, error) {
	return statusCounts(r.db, "invoices")
}

// RevenueTotals returns invoiced and collected sums over final invoices.
func (r *InvoiceRepository) RevenueTotals() (invoiced int64, collected int64, err error) {
	var totals struct {
		Invoiced  int64 `db:"invoiced"`
		Collected int64 `db:"collected"`
	}
	query := `
		SELECT COALESCE(SUM(total), 0) AS invoiced,
			COALESCE(SUM(amount_paid), 0) AS collected
		FROM invoices
		WHERE invoice_type = 'final'`

	if err := r.db.Get(&totals, query); err != nil {
		return 0, 0, fmt.Errorf("failed to get revenue totals: %w", err)
	}
	return totals.Invoiced, totals.Collected, nil
}

func (r *InvoiceRepository) Delete(invoiceID string) error {
	result, err := r.db.Exec(`DELETE FROM invoices WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
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

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

type QuoteRepository struct {
	db *sqlx.DB
}

func NewQuoteRepository(db *sqlx.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Create(quote *models.Quote) error {
	quote.CreatedAt = time.Now()

	query := `
		INSERT INTO quotes (quote_id, quote_number, partner_id, title, description,
			items, validity_days, notes, payment_terms, subtotal, total, status, created_at)
		VALUES (:quote_id, :quote_number, :partner_id, :title, :description,
			:items, :validity_days, :notes, :payment_terms, :subtotal, :total, :status, :created_at)`

	if _, err := r.db.NamedExec(query, quote); err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateNumber
		}
		return fmt.Errorf("failed to create quote: %w", err)
	}
	return nil
}

func (r *QuoteRepository) GetByID(quoteID string) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.Get(&quote, `SELECT * FROM quotes WHERE quote_id = $1`, quoteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &quote, nil
}

func (r *QuoteRepository) List(status models.QuoteStatus, partnerID string) ([]models.Quote, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, status)
		argPos++
	}
	if partnerID != "" {
		conditions = append(conditions, fmt.Sprintf("partner_id = $%d", argPos))
		args = append(args, partnerID)
		argPos++
	}

	query := fmt.Sprintf(`SELECT * FROM quotes WHERE %s ORDER BY created_at DESC`,
		strings.Join(conditions, " AND "))

	var quotes []models.Quote
	if err := r.db.Select(&quotes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

// UpdateContent rewrites the editable fields and recomputed totals of a
// pending quote.
func (r *QuoteRepository) UpdateContent(quote *models.Quote) error {
	now := time.Now()
	quote.UpdatedAt = &now

	query := `
		UPDATE quotes
		SET title = :title,
			description = :description,
			items = :items,
			validity_days = :validity_days,
			notes = :notes,
			payment_terms = :payment_terms,
			subtotal = :subtotal,
			total = :total,
			updated_at = :updated_at
		WHERE quote_id = :quote_id AND status = 'pending'`

	result, err := r.db.NamedExec(query, quote)
	if err != nil {
		return fmt.Errorf("failed to update quote: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		if _, gerr := r.GetByID(quote.QuoteID); gerr != nil {
			return gerr
		}
		return models.ErrInvalidTransition
	}
	return nil
}

// Accept marks the quote accepted. Accepting an already accepted quote keeps
// the original timestamp.
func (r *QuoteRepository) Accept(quoteID string) (*models.Quote, error) {
	query := `
		UPDATE quotes
		SET status = 'accepted',
			accepted_at = COALESCE(accepted_at, now()),
			updated_at = now()
		WHERE quote_id = $1 AND status IN ('pending', 'accepted')
		RETURNING *`

	return r.transition(query, quoteID)
}

func (r *QuoteRepository) Refuse(quoteID string) (*models.Quote, error) {
	query := `
		UPDATE quotes
		SET status = 'refused',
			refused_at = now(),
			updated_at = now()
		WHERE quote_id = $1 AND status = 'pending'
		RETURNING *`

	return r.transition(query, quoteID)
}

// MarkConverted links the quote to the invoice created from it. A quote can
// be converted exactly once.
func (r *QuoteRepository) MarkConverted(quoteID, invoiceID string) (*models.Quote, error) {
	query := `
		UPDATE quotes
		SET status = 'converted',
			converted_to_invoice_id = $2,
			updated_at = now()
		WHERE quote_id = $1 AND converted_to_invoice_id IS NULL AND status IN ('pending', 'accepted')
		RETURNING *`

	var quote models.Quote
	err := r.db.Get(&quote, query, quoteID, invoiceID)
	if err == nil {
		return &quote, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to convert quote: %w", err)
	}

	current, gerr := r.GetByID(quoteID)
	if gerr != nil {
		return nil, gerr
	}
	if current.ConvertedToInvoiceID != nil {
		return nil, models.ErrAlreadyConverted
	}
	return nil, models.ErrInvalidTransition
}

func (r *QuoteRepository) SetPDFURL(quoteID, url string) error {
	return setPDFURL(r.db, "quotes", "quote_id", quoteID, url)
}

func (r *QuoteRepository) StatusCounts() ([]models.StatusCount, error) {
	return statusCounts(r.db, "quotes")
}

func (r *QuoteRepository) Delete(quoteID string) error {
	result, err := r.db.Exec(`DELETE FROM quotes WHERE quote_id = $1`, quoteID)
	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
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

// transition runs a conditional status update and classifies an empty result
// as missing document or disallowed transition.
func (r *QuoteRepository) transition(query, quoteID string) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.Get(&quote, query, quoteID)
	if err == nil {
		return &quote, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to update quote status: %w", err)
	}

	if _, gerr := r.GetByID(quoteID); gerr != nil {
		return nil, gerr
	}
	return nil, models.ErrInvalidTransition
}

// ---------------------------------------------------------------------------
// Shared helpers for the three document tables
// ---------------------------------------------------------------------------

func setPDFURL(db *sqlx.DB, table, idColumn, id, url string) error {
	query := fmt.Sprintf(`UPDATE %s SET pdf_url = $2, updated_at = now() WHERE %s = $1`, table, idColumn)

	result, err := db.Exec(query, id, url)
	if err != nil {
		return fmt.Errorf("failed to set pdf url on %s: %w", table, err)
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

func statusCounts(db *sqlx.DB, table string) ([]models.StatusCount, error) {
	query := fmt.Sprintf(`SELECT status, COUNT(*) AS count FROM %s GROUP BY status ORDER BY status`, table)

	var counts []models.StatusCount
	if err := db.Select(&counts, query); err != nil {
		return nil, fmt.Errorf("failed to count %s by status: %w", table, err)
	}
	return counts, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/jmoiron/sqlx"
)

// SequenceRepository owns the per (doc_type, year) counters backing document
// numbering. The increment is a single upsert so concurrent allocations are
// serialized by the row lock; the counter never moves backwards and deleted
// documents never release their number.
type SequenceRepository struct {
	db *sqlx.DB
}

func NewSequenceRepository(db *sqlx.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// NextSequence atomically increments and returns the counter for the given
// document type and year. The first call for a pair returns 1.
func (r *SequenceRepository) NextSequence(ctx context.Context, docType models.DocType, year int) (int, error) {
	query := `
		INSERT INTO document_sequences (doc_type, year, last_sequence, updated_at)
		VALUES ($1, $2, 1, now())
		ON CONFLICT (doc_type, year)
		DO UPDATE SET last_sequence = document_sequences.last_sequence + 1, updated_at = now()
		RETURNING last_sequence`

	var seq int
	if err := r.db.GetContext(ctx, &seq, query, string(docType), year); err != nil {
		return 0, fmt.Errorf("failed to advance sequence for %s/%d: %w", docType, year, err)
	}

	return seq, nil
}

// CurrentSequence reads the counter without advancing it. Returns 0 when no
// document of that type has been numbered in that year yet.
func (r *SequenceRepository) CurrentSequence(ctx context.Context, docType models.DocType, year int) (int, error) {
	query := `SELECT COALESCE(
		(SELECT last_sequence FROM document_sequences WHERE doc_type = $1 AND year = $2), 0)`

	var seq int
	if err := r.db.GetContext(ctx, &seq, query, string(docType), year); err != nil {
		return 0, fmt.Errorf("failed to read sequence for %s/%d: %w", docType, year, err)
	}

	return seq, nil
}

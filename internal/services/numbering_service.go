package services

import (
	"context"
	"fmt"

	"github.com/Amadoujf/nouveauyama/internal/models"
)

// SequenceStore abstracts the counter table so numbering properties can be
// exercised against an in-memory implementation.
type SequenceStore interface {
	NextSequence(ctx context.Context, docType models.DocType, year int) (int, error)
}

// NumberingService hands out document numbers of the form
// PREFIX-TYPE-YEAR-NNNN, e.g. YMP-DEV-2025-0007. Numbers are monotonic per
// (type, year), unique under concurrent allocation and never reused, but the
// sequence is not gapless: a failed document creation burns its number.
type NumberingService struct {
	store  SequenceStore
	prefix string
}

func NewNumberingService(store SequenceStore, prefix string) *NumberingService {
	if prefix == "" {
		prefix = "YMP"
	}
	return &NumberingService{store: store, prefix: prefix}
}

func (s *NumberingService) AllocateNextNumber(ctx context.Context, docType models.DocType, year int) (string, error) {
	code := docType.Code()
	if code == "" {
		return "", fmt.Errorf("unknown document type: %s", docType)
	}

	seq, err := s.store.NextSequence(ctx, docType, year)
	if err != nil {
		return "", fmt.Errorf("failed to allocate number for %s/%d: %w", docType, year, err)
	}

	return fmt.Sprintf("%s-%s-%d-%04d", s.prefix, code, year, seq), nil
}

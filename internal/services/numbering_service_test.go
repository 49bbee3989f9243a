package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/stretchr/testify/assert"
)

// memorySequenceStore mimics the counter table with a mutex-guarded map.
type memorySequenceStore struct {
	mu       sync.Mutex
	counters map[string]int
	err      error
}

func newMemorySequenceStore() *memorySequenceStore {
	return &memorySequenceStore{counters: make(map[string]int)}
}

func (s *memorySequenceStore) NextSequence(_ context.Context, docType models.DocType, year int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return 0, s.err
	}
	key := fmt.Sprintf("%s/%d", docType, year)
	s.counters[key]++
	return s.counters[key], nil
}

func (s *memorySequenceStore) CurrentSequence(_ context.Context, docType models.DocType, year int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return 0, s.err
	}
	return s.counters[fmt.Sprintf("%s/%d", docType, year)], nil
}

func TestAllocateNextNumber_Format(t *testing.T) {
	svc := NewNumberingService(newMemorySequenceStore(), "YMP")

	number, err := svc.AllocateNextNumber(context.Background(), models.DocTypeQuote, 2025)

	assert.NoError(t, err)
	assert.Equal(t, "YMP-DEV-2025-0001", number)
}

func TestAllocateNextNumber_TypeCodes(t *testing.T) {
	svc := NewNumberingService(newMemorySequenceStore(), "YMP")
	ctx := context.Background()

	cases := map[models.DocType]string{
		models.DocTypeQuote:    "YMP-DEV-2025-0001",
		models.DocTypeProforma: "YMP-PRO-2025-0001",
		models.DocTypeInvoice:  "YMP-FAC-2025-0001",
		models.DocTypeContract: "YMP-CTR-2025-0001",
	}
	for docType, want := range cases {
		number, err := svc.AllocateNextNumber(ctx, docType, 2025)
		assert.NoError(t, err)
		assert.Equal(t, want, number)
	}
}

func TestAllocateNextNumber_MonotonicPerTypeAndYear(t *testing.T) {
	svc := NewNumberingService(newMemorySequenceStore(), "YMP")
	ctx := context.Background()

	first, _ := svc.AllocateNextNumber(ctx, models.DocTypeInvoice, 2025)
	second, _ := svc.AllocateNextNumber(ctx, models.DocTypeInvoice, 2025)
	otherYear, _ := svc.AllocateNextNumber(ctx, models.DocTypeInvoice, 2026)
	otherType, _ := svc.AllocateNextNumber(ctx, models.DocTypeQuote, 2025)

	assert.Equal(t, "YMP-FAC-2025-0001", first)
	assert.Equal(t, "YMP-FAC-2025-0002", second)
	assert.Equal(t, "YMP-FAC-2026-0001", otherYear, "each year restarts at 0001")
	assert.Equal(t, "YMP-DEV-2025-0001", otherType, "each type has its own counter")
}

func TestAllocateNextNumber_ConcurrentAllocationsAreUnique(t *testing.T) {
	svc := NewNumberingService(newMemorySequenceStore(), "YMP")
	ctx := context.Background()

	const workers = 50
	results := make(chan string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := svc.AllocateNextNumber(ctx, models.DocTypeQuote, 2025)
			assert.NoError(t, err)
			results <- number
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	for number := range results {
		assert.False(t, seen[number], "number %s allocated twice", number)
		seen[number] = true
	}
	assert.Len(t, seen, workers)
}

func TestAllocateNextNumber_SequenceAboveFourDigits(t *testing.T) {
	store := newMemorySequenceStore()
	store.counters["invoice/2025"] = 9999

	svc := NewNumberingService(store, "YMP")
	number, err := svc.AllocateNextNumber(context.Background(), models.DocTypeInvoice, 2025)

	assert.NoError(t, err)
	assert.Equal(t, "YMP-FAC-2025-10000", number, "padding grows past 9999 instead of wrapping")
}

func TestAllocateNextNumber_UnknownType(t *testing.T) {
	svc := NewNumberingService(newMemorySequenceStore(), "YMP")

	_, err := svc.AllocateNextNumber(context.Background(), models.DocType("bon_de_commande"), 2025)

	assert.Error(t, err)
}

func TestAllocateNextNumber_CustomPrefix(t *testing.T) {
	svc := NewNumberingService(newMemorySequenceStore(), "ACME")

	number, err := svc.AllocateNextNumber(context.Background(), models.DocTypeContract, 2025)

	assert.NoError(t, err)
	assert.Equal(t, "ACME-CTR-2025-0001", number)
}

func TestNewNumberingService_DefaultPrefix(t *testing.T) {
	svc := NewNumberingService(newMemorySequenceStore(), "")

	number, err := svc.AllocateNextNumber(context.Background(), models.DocTypeQuote, 2025)

	assert.NoError(t, err)
	assert.Equal(t, "YMP-DEV-2025-0001", number)
}

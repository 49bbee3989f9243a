package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/stretchr/testify/assert"
)

// fakeQuoteStore keeps quotes in memory and mirrors the repository's
// transition rules: Accept only from pending or accepted (keeping the first
// timestamp), UpdateContent only while pending.
type fakeQuoteStore struct {
	mu     sync.Mutex
	quotes map[string]*models.Quote
}

func newFakeQuoteStore() *fakeQuoteStore {
	return &fakeQuoteStore{quotes: make(map[string]*models.Quote)}
}

func (s *fakeQuoteStore) put(quote *models.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *quote
	s.quotes[quote.QuoteID] = &copied
}

func (s *fakeQuoteStore) Create(quote *models.Quote) error {
	s.put(quote)
	return nil
}

func (s *fakeQuoteStore) GetByID(quoteID string) (*models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quote, ok := s.quotes[quoteID]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *quote
	return &copied, nil
}

func (s *fakeQuoteStore) List(status models.QuoteStatus, partnerID string) ([]models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Quote
	for _, quote := range s.quotes {
		if status != "" && quote.Status != status {
			continue
		}
		if partnerID != "" && quote.PartnerID != partnerID {
			continue
		}
		out = append(out, *quote)
	}
	return out, nil
}

func (s *fakeQuoteStore) UpdateContent(quote *models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.quotes[quote.QuoteID]
	if !ok {
		return models.ErrNotFound
	}
	if stored.Status != models.QuotePending {
		return models.ErrInvalidTransition
	}
	copied := *quote
	s.quotes[quote.QuoteID] = &copied
	return nil
}

func (s *fakeQuoteStore) Accept(quoteID string) (*models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quote, ok := s.quotes[quoteID]
	if !ok {
		return nil, models.ErrNotFound
	}
	if quote.Status != models.QuotePending && quote.Status != models.QuoteAccepted {
		return nil, models.ErrInvalidTransition
	}
	quote.Status = models.QuoteAccepted
	if quote.AcceptedAt == nil {
		now := time.Now()
		quote.AcceptedAt = &now
	}
	copied := *quote
	return &copied, nil
}

func (s *fakeQuoteStore) Refuse(quoteID string) (*models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quote, ok := s.quotes[quoteID]
	if !ok {
		return nil, models.ErrNotFound
	}
	if quote.Status != models.QuotePending && quote.Status != models.QuoteRefused {
		return nil, models.ErrInvalidTransition
	}
	quote.Status = models.QuoteRefused
	if quote.RefusedAt == nil {
		now := time.Now()
		quote.RefusedAt = &now
	}
	copied := *quote
	return &copied, nil
}

func (s *fakeQuoteStore) MarkConverted(quoteID, invoiceID string) (*models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quote, ok := s.quotes[quoteID]
	if !ok {
		return nil, models.ErrNotFound
	}
	if quote.ConvertedToInvoiceID != nil {
		return nil, models.ErrInvalidTransition
	}
	quote.Status = models.QuoteConverted
	quote.ConvertedToInvoiceID = &invoiceID
	copied := *quote
	return &copied, nil
}

func (s *fakeQuoteStore) SetPDFURL(quoteID, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	quote, ok := s.quotes[quoteID]
	if !ok {
		return models.ErrNotFound
	}
	quote.PDFURL = &url
	return nil
}

func (s *fakeQuoteStore) Delete(quoteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quotes[quoteID]; !ok {
		return models.ErrNotFound
	}
	delete(s.quotes, quoteID)
	return nil
}

func pendingQuote(id string) *models.Quote {
	return &models.Quote{
		QuoteID:     id,
		QuoteNumber: "YAMA-DEV-2026-0001",
		PartnerID:   "prt_senegal01",
		Title:       "Campagne d'affichage",
		Items: models.LineItemList{
			{Description: "Panneau publicitaire", Quantity: 2, Unit: "unité", UnitPrice: 1000},
		},
		Subtotal: 2000,
		Total:    2000,
		Status:   models.QuotePending,
	}
}

func TestQuoteAccept_SetsTimestampOnce(t *testing.T) {
	store := newFakeQuoteStore()
	store.put(pendingQuote("qte_test01"))
	svc := NewQuoteService(store, nil, nil, nil, nil, nil, nil)

	first, err := svc.Accept("qte_test01")
	assert.NoError(t, err)
	assert.Equal(t, models.QuoteAccepted, first.Status)
	assert.NotNil(t, first.AcceptedAt)

	second, err := svc.Accept("qte_test01")
	assert.NoError(t, err, "accepting an accepted quote is a no-op")
	assert.Equal(t, first.AcceptedAt.UnixNano(), second.AcceptedAt.UnixNano(),
		"the first acceptance timestamp must survive a repeat accept")
}

func TestQuoteAccept_KeepsEarlierTimestamp(t *testing.T) {
	store := newFakeQuoteStore()
	quote := pendingQuote("qte_test02")
	acceptedAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	quote.Status = models.QuoteAccepted
	quote.AcceptedAt = &acceptedAt
	store.put(quote)
	svc := NewQuoteService(store, nil, nil, nil, nil, nil, nil)

	got, err := svc.Accept("qte_test02")
	assert.NoError(t, err)
	assert.True(t, got.AcceptedAt.Equal(acceptedAt))
}

func TestQuoteUpdate_RecomputesTotals(t *testing.T) {
	store := newFakeQuoteStore()
	store.put(pendingQuote("qte_test03"))
	svc := NewQuoteService(store, nil, nil, nil, nil, nil, nil)

	updated, err := svc.Update("qte_test03", models.CreateQuoteRequest{
		PartnerID: "prt_senegal01",
		Title:     "Campagne d'affichage",
		Items: []models.LineItem{
			{Description: "Conseil en communication", Quantity: 2.5, Unit: "heure", UnitPrice: 10000},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(25000), updated.Subtotal, "totals come from the new items, not the request")
	assert.Equal(t, int64(25000), updated.Total)

	stored, err := store.GetByID("qte_test03")
	assert.NoError(t, err)
	assert.Equal(t, int64(25000), stored.Subtotal, "recomputed totals must be persisted")
}

func TestQuoteUpdate_DefaultsUnitLabel(t *testing.T) {
	store := newFakeQuoteStore()
	store.put(pendingQuote("qte_test04"))
	svc := NewQuoteService(store, nil, nil, nil, nil, nil, nil)

	updated, err := svc.Update("qte_test04", models.CreateQuoteRequest{
		PartnerID: "prt_senegal01",
		Title:     "Campagne d'affichage",
		Items: []models.LineItem{
			{Description: "Panneau publicitaire", Quantity: 3, UnitPrice: 1000},
			{Description: "Conseil", Quantity: 1, Unit: "heure", UnitPrice: 5000},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "unité", updated.Items[0].Unit)
	assert.Equal(t, "heure", updated.Items[1].Unit, "an explicit unit is kept as is")
}

func TestQuoteUpdate_InvalidItemsLeaveQuoteUntouched(t *testing.T) {
	store := newFakeQuoteStore()
	store.put(pendingQuote("qte_test05"))
	svc := NewQuoteService(store, nil, nil, nil, nil, nil, nil)

	_, err := svc.Update("qte_test05", models.CreateQuoteRequest{
		PartnerID: "prt_senegal01",
		Title:     "Campagne d'affichage",
		Items: []models.LineItem{
			{Description: "KO", Quantity: -1, UnitPrice: 1000},
		},
	})

	var invalid *models.InvalidLineItemError
	assert.True(t, errors.As(err, &invalid))

	stored, err := store.GetByID("qte_test05")
	assert.NoError(t, err)
	assert.Equal(t, int64(2000), stored.Subtotal, "a rejected update must not change stored totals")
}

func TestQuoteUpdate_RejectedAfterAcceptance(t *testing.T) {
	store := newFakeQuoteStore()
	quote := pendingQuote("qte_test06")
	quote.Status = models.QuoteAccepted
	store.put(quote)
	svc := NewQuoteService(store, nil, nil, nil, nil, nil, nil)

	_, err := svc.Update("qte_test06", models.CreateQuoteRequest{
		PartnerID: "prt_senegal01",
		Title:     "Nouveau titre",
		Items: []models.LineItem{
			{Description: "Panneau publicitaire", Quantity: 1, UnitPrice: 1000},
		},
	})
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/stretchr/testify/assert"
)

// fakeInvoiceStore mirrors the repository's payment semantics: RecordPayment
// accumulates and derives the status from the balance, ResetPayments zeroes
// everything back to unpaid in one step.
type fakeInvoiceStore struct {
	mu       sync.Mutex
	invoices map[string]*models.Invoice
}

func newFakeInvoiceStore() *fakeInvoiceStore {
	return &fakeInvoiceStore{invoices: make(map[string]*models.Invoice)}
}

func (s *fakeInvoiceStore) put(invoice *models.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *invoice
	s.invoices[invoice.InvoiceID] = &copied
}

func (s *fakeInvoiceStore) Create(invoice *models.Invoice) error {
	s.put(invoice)
	return nil
}

func (s *fakeInvoiceStore) GetByID(invoiceID string) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	invoice, ok := s.invoices[invoiceID]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *invoice
	return &copied, nil
}

func (s *fakeInvoiceStore) List(status models.InvoiceStatus, invoiceType models.InvoiceType, partnerID string) ([]models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Invoice
	for _, invoice := range s.invoices {
		if status != "" && invoice.Status != status {
			continue
		}
		if invoiceType != "" && invoice.InvoiceType != invoiceType {
			continue
		}
		if partnerID != "" && invoice.PartnerID != partnerID {
			continue
		}
		out = append(out, *invoice)
	}
	return out, nil
}

func (s *fakeInvoiceStore) RecordPayment(invoiceID string, amount int64) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	invoice, ok := s.invoices[invoiceID]
	if !ok {
		return nil, models.ErrNotFound
	}
	invoice.AmountPaid += amount
	switch {
	case invoice.AmountPaid >= invoice.Total:
		invoice.Status = models.InvoicePaid
		if invoice.PaidAt == nil {
			now := time.Now()
			invoice.PaidAt = &now
		}
	case invoice.AmountPaid > 0:
		invoice.Status = models.InvoicePartial
	default:
		invoice.Status = models.InvoiceUnpaid
	}
	copied := *invoice
	return &copied, nil
}

func (s *fakeInvoiceStore) ResetPayments(invoiceID string) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	invoice, ok := s.invoices[invoiceID]
	if !ok {
		return nil, models.ErrNotFound
	}
	invoice.AmountPaid = 0
	invoice.Status = models.InvoiceUnpaid
	invoice.PaidAt = nil
	copied := *invoice
	return &copied, nil
}

func (s *fakeInvoiceStore) SetPDFURL(invoiceID, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	invoice, ok := s.invoices[invoiceID]
	if !ok {
		return models.ErrNotFound
	}
	invoice.PDFURL = &url
	return nil
}

func (s *fakeInvoiceStore) Delete(invoiceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.invoices[invoiceID]; !ok {
		return models.ErrNotFound
	}
	delete(s.invoices, invoiceID)
	return nil
}

type fakePartnerStore struct {
	partners map[string]*models.Partner
}

func (s *fakePartnerStore) GetByID(partnerID string) (*models.Partner, error) {
	partner, ok := s.partners[partnerID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return partner, nil
}

func unpaidInvoice(id string, total int64) *models.Invoice {
	return &models.Invoice{
		InvoiceID:     id,
		InvoiceNumber: "YAMA-FAC-2026-0001",
		PartnerID:     "prt_senegal01",
		InvoiceType:   models.InvoiceTypeFinal,
		Title:         "Campagne d'affichage",
		Total:         total,
		Subtotal:      total,
		Status:        models.InvoiceUnpaid,
	}
}

func TestInvoiceRecordPayment_FullAmountMarksPaid(t *testing.T) {
	store := newFakeInvoiceStore()
	store.put(unpaidInvoice("inv_test01", 50000))
	svc := NewInvoiceService(store, nil, nil, nil, nil, nil)

	invoice, err := svc.RecordPayment("inv_test01", models.RecordPaymentRequest{Amount: 50000})
	assert.NoError(t, err)
	assert.Equal(t, models.InvoicePaid, invoice.Status)
	assert.Equal(t, int64(50000), invoice.AmountPaid)
	assert.NotNil(t, invoice.PaidAt)
}

func TestInvoiceResetPayments_RevertsToUnpaid(t *testing.T) {
	store := newFakeInvoiceStore()
	store.put(unpaidInvoice("inv_test02", 50000))
	svc := NewInvoiceService(store, nil, nil, nil, nil, nil)

	_, err := svc.RecordPayment("inv_test02", models.RecordPaymentRequest{Amount: 50000})
	assert.NoError(t, err)

	invoice, err := svc.ResetPayments("inv_test02")
	assert.NoError(t, err)
	assert.Equal(t, models.InvoiceUnpaid, invoice.Status)
	assert.Equal(t, int64(0), invoice.AmountPaid)
	assert.Nil(t, invoice.PaidAt, "a reset clears the paid timestamp along with the amount")

	stored, err := store.GetByID("inv_test02")
	assert.NoError(t, err)
	assert.Equal(t, models.InvoiceUnpaid, stored.Status)
}

func TestInvoiceResetPayments_AfterPartialPayment(t *testing.T) {
	store := newFakeInvoiceStore()
	store.put(unpaidInvoice("inv_test03", 50000))
	svc := NewInvoiceService(store, nil, nil, nil, nil, nil)

	_, err := svc.RecordPayment("inv_test03", models.RecordPaymentRequest{Amount: 20000})
	assert.NoError(t, err)

	invoice, err := svc.ResetPayments("inv_test03")
	assert.NoError(t, err)
	assert.Equal(t, models.InvoiceUnpaid, invoice.Status)
	assert.Equal(t, int64(0), invoice.AmountPaid)
}

func TestInvoiceResetPayments_UnknownInvoice(t *testing.T) {
	store := newFakeInvoiceStore()
	svc := NewInvoiceService(store, nil, nil, nil, nil, nil)

	_, err := svc.ResetPayments("inv_absent")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestInvoiceCreate_ProformaSequenceAndUnitDefault(t *testing.T) {
	store := newFakeInvoiceStore()
	partners := &fakePartnerStore{partners: map[string]*models.Partner{
		"prt_senegal01": {PartnerID: "prt_senegal01", Name: "Baobab Media", City: "Dakar", Country: "Sénégal"},
	}}
	numbering := NewNumberingService(newMemorySequenceStore(), "YAMA")
	svc := NewInvoiceService(store, partners, numbering, nil, nil, nil)

	invoice, err := svc.Create(context.Background(), models.CreateInvoiceRequest{
		PartnerID:   "prt_senegal01",
		InvoiceType: models.InvoiceTypeProforma,
		Title:       "Campagne d'affichage",
		Items: []models.LineItem{
			{Description: "Panneau publicitaire", Quantity: 2, UnitPrice: 1000},
		},
	})
	assert.NoError(t, err)
	assert.Contains(t, invoice.InvoiceNumber, "-PRO-", "proforma invoices draw from their own sequence")
	assert.Equal(t, "unité", invoice.Items[0].Unit)
	assert.Equal(t, int64(2000), invoice.Total)
}

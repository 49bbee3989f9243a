package services

import (
	"context"

	"github.com/Amadoujf/nouveauyama/internal/database/minio"
	"github.com/Amadoujf/nouveauyama/internal/event"
	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/pdf"
	"github.com/Amadoujf/nouveauyama/utils"
)

// invoiceStore is the persistence surface behind InvoiceService, implemented
// by the repository and by in-memory fakes in tests.
type invoiceStore interface {
	Create(invoice *models.Invoice) error
	GetByID(invoiceID string) (*models.Invoice, error)
	List(status models.InvoiceStatus, invoiceType models.InvoiceType, partnerID string) ([]models.Invoice, error)
	RecordPayment(invoiceID string, amount int64) (*models.Invoice, error)
	ResetPayments(invoiceID string) (*models.Invoice, error)
	SetPDFURL(invoiceID, url string) error
	Delete(invoiceID string) error
}

type InvoiceService struct {
	invoices  invoiceStore
	partners  partnerStore
	numbering *NumberingService
	renderer  *pdf.Renderer
	storage   *minio.MinioClient
	publisher *event.EmailPublisher
}

func NewInvoiceService(
	invoices invoiceStore,
	partners partnerStore,
	numbering *NumberingService,
	renderer *pdf.Renderer,
	storage *minio.MinioClient,
	publisher *event.EmailPublisher,
) *InvoiceService {
	return &InvoiceService{
		invoices:  invoices,
		partners:  partners,
		numbering: numbering,
		renderer:  renderer,
		storage:   storage,
		publisher: publisher,
	}
}

func (s *InvoiceService) Create(ctx context.Context, req models.CreateInvoiceRequest) (*models.Invoice, error) {
	if _, err := s.partners.GetByID(req.PartnerID); err != nil {
		return nil, err
	}

	totals, err := ComputeTotals(req.Items)
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		InvoiceID:    utils.GenerateEntityID("inv_", 12, false),
		PartnerID:    req.PartnerID,
		InvoiceType:  req.InvoiceType,
		Title:        req.Title,
		Description:  req.Description,
		Items:        normalizeLineItems(req.Items),
		DueDate:      req.DueDate,
		Notes:        req.Notes,
		PaymentTerms: req.PaymentTerms,
		Subtotal:     totals.Subtotal,
		Total:        totals.Total,
		Status:       models.InvoiceUnpaid,
	}

	// Proforma and final invoices number from independent sequences.
	docType := models.DocTypeInvoice
	if req.InvoiceType == models.InvoiceTypeProforma {
		docType = models.DocTypeProforma
	}

	err = allocateAndInsert(ctx, s.numbering, docType, func(number string) error {
		invoice.InvoiceNumber = number
		return s.invoices.Create(invoice)
	})
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

func (s *InvoiceService) Get(invoiceID string) (*models.Invoice, error) {
	return s.invoices.GetByID(invoiceID)
}

func (s *InvoiceService) List(status models.InvoiceStatus, invoiceType models.InvoiceType, partnerID string) ([]models.Invoice, error) {
	return s.invoices.List(status, invoiceType, partnerID)
}

// RecordPayment books a received amount. The invoice status follows the
// balance: zero paid is unpaid, anything below total is partial, total or
// above is paid.
func (s *InvoiceService) RecordPayment(invoiceID string, req models.RecordPaymentRequest) (*models.Invoice, error) {
	return s.invoices.RecordPayment(invoiceID, req.Amount)
}

// ResetPayments reverts the invoice to unpaid, zeroing what was collected and
// clearing the paid timestamp. Used when a booking was recorded in error.
func (s *InvoiceService) ResetPayments(invoiceID string) (*models.Invoice, error) {
	return s.invoices.ResetPayments(invoiceID)
}

func (s *InvoiceService) Delete(invoiceID string) error {
	return s.invoices.Delete(invoiceID)
}

func (s *InvoiceService) GeneratePDF(ctx context.Context, invoiceID string) (string, error) {
	invoice, err := s.invoices.GetByID(invoiceID)
	if err != nil {
		return "", err
	}
	partner, err := s.partners.GetByID(invoice.PartnerID)
	if err != nil {
		return "", err
	}

	label := "Facture"
	if invoice.InvoiceType == models.InvoiceTypeProforma {
		label = "Facture proforma"
	}

	data := pdf.DocumentData{
		DocLabel:    label,
		Number:      invoice.InvoiceNumber,
		Date:        invoice.CreatedAt.Format("02/01/2006"),
		PartnerName: partner.Name,
		PartnerInfo: partnerInfoLines(partner),
		Title:       invoice.Title,
		Lines:       lineItemRows(invoice.Items),
		Subtotal:    &invoice.Subtotal,
		Total:       &invoice.Total,
		Footer:      "YAMA+ Dakar, Sénégal",
	}

	rendered, err := s.renderer.Render(data)
	if err != nil {
		return "", err
	}

	url, err := uploadDocumentPDF(ctx, s.storage, invoice.InvoiceNumber, rendered)
	if err != nil {
		return "", err
	}
	if err := s.invoices.SetPDFURL(invoiceID, url); err != nil {
		return "", err
	}

	return url, nil
}

func (s *InvoiceService) SendByEmail(ctx context.Context, invoiceID string) error {
	invoice, err := s.invoices.GetByID(invoiceID)
	if err != nil {
		return err
	}
	partner, err := s.partners.GetByID(invoice.PartnerID)
	if err != nil {
		return err
	}
	if partner.Email == nil || *partner.Email == "" {
		return models.ErrNotFound
	}

	url := ""
	if invoice.PDFURL != nil {
		url = *invoice.PDFURL
	} else {
		url, err = s.GeneratePDF(ctx, invoiceID)
		if err != nil {
			return err
		}
	}

	label := "facture"
	if invoice.InvoiceType == models.InvoiceTypeProforma {
		label = "facture proforma"
	}

	return s.publisher.PublishEmail(ctx, event.EmailEvent{
		To:       *partner.Email,
		Subject:  "Votre " + label + " " + invoice.InvoiceNumber,
		Template: event.TemplateDocument,
		Data: map[string]interface{}{
			"partner_name": partner.Name,
			"doc_label":    label,
			"doc_number":   invoice.InvoiceNumber,
		},
		AttachmentURL: url,
	})
}

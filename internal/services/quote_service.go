package services

import (
	"context"
	"log/slog"

	"github.com/Amadoujf/nouveauyama/internal/database/minio"
	"github.com/Amadoujf/nouveauyama/internal/event"
	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/pdf"
	"github.com/Amadoujf/nouveauyama/utils"
)

// quoteStore is the persistence surface behind QuoteService, implemented by
// the repository and by in-memory fakes in tests.
type quoteStore interface {
	Create(quote *models.Quote) error
	GetByID(quoteID string) (*models.Quote, error)
	List(status models.QuoteStatus, partnerID string) ([]models.Quote, error)
	UpdateContent(quote *models.Quote) error
	Accept(quoteID string) (*models.Quote, error)
	Refuse(quoteID string) (*models.Quote, error)
	MarkConverted(quoteID, invoiceID string) (*models.Quote, error)
	SetPDFURL(quoteID, url string) error
	Delete(quoteID string) error
}

type QuoteService struct {
	quotes    quoteStore
	invoices  invoiceStore
	partners  partnerStore
	numbering *NumberingService
	renderer  *pdf.Renderer
	storage   *minio.MinioClient
	publisher *event.EmailPublisher
}

func NewQuoteService(
	quotes quoteStore,
	invoices invoiceStore,
	partners partnerStore,
	numbering *NumberingService,
	renderer *pdf.Renderer,
	storage *minio.MinioClient,
	publisher *event.EmailPublisher,
) *QuoteService {
	return &QuoteService{
		quotes:    quotes,
		invoices:  invoices,
		partners:  partners,
		numbering: numbering,
		renderer:  renderer,
		storage:   storage,
		publisher: publisher,
	}
}

func (s *QuoteService) Create(ctx context.Context, req models.CreateQuoteRequest) (*models.Quote, error) {
	if _, err := s.partners.GetByID(req.PartnerID); err != nil {
		return nil, err
	}

	totals, err := ComputeTotals(req.Items)
	if err != nil {
		return nil, err
	}

	validityDays := req.ValidityDays
	if validityDays == 0 {
		validityDays = 30
	}

	quote := &models.Quote{
		QuoteID:      utils.GenerateEntityID("qte_", 12, false),
		PartnerID:    req.PartnerID,
		Title:        req.Title,
		Description:  req.Description,
		Items:        normalizeLineItems(req.Items),
		ValidityDays: validityDays,
		Notes:        req.Notes,
		PaymentTerms: req.PaymentTerms,
		Subtotal:     totals.Subtotal,
		Total:        totals.Total,
		Status:       models.QuotePending,
	}

	err = allocateAndInsert(ctx, s.numbering, models.DocTypeQuote, func(number string) error {
		quote.QuoteNumber = number
		return s.quotes.Create(quote)
	})
	if err != nil {
		return nil, err
	}

	return quote, nil
}

func (s *QuoteService) Get(quoteID string) (*models.Quote, error) {
	return s.quotes.GetByID(quoteID)
}

func (s *QuoteService) List(status models.QuoteStatus, partnerID string) ([]models.Quote, error) {
	return s.quotes.List(status, partnerID)
}

// Update rewrites a pending quote's content. Totals are recomputed from the
// new items, never patched.
func (s *QuoteService) Update(quoteID string, req models.CreateQuoteRequest) (*models.Quote, error) {
	quote, err := s.quotes.GetByID(quoteID)
	if err != nil {
		return nil, err
	}

	totals, err := ComputeTotals(req.Items)
	if err != nil {
		return nil, err
	}

	quote.Title = req.Title
	quote.Description = req.Description
	quote.Items = normalizeLineItems(req.Items)
	if req.ValidityDays > 0 {
		quote.ValidityDays = req.ValidityDays
	}
	quote.Notes = req.Notes
	quote.PaymentTerms = req.PaymentTerms
	quote.Subtotal = totals.Subtotal
	quote.Total = totals.Total

	if err := s.quotes.UpdateContent(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) Accept(quoteID string) (*models.Quote, error) {
	return s.quotes.Accept(quoteID)
}

func (s *QuoteService) Refuse(quoteID string) (*models.Quote, error) {
	return s.quotes.Refuse(quoteID)
}

func (s *QuoteService) Delete(quoteID string) error {
	return s.quotes.Delete(quoteID)
}

// ConvertToInvoice creates a final invoice carrying the quote's items and
// totals, then links the quote to it. The link is one-way and single-shot;
// if another conversion won the race, the freshly created invoice is removed
// again.
func (s *QuoteService) ConvertToInvoice(ctx context.Context, quoteID string) (*models.Invoice, error) {
	quote, err := s.quotes.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if quote.ConvertedToInvoiceID != nil {
		return nil, models.ErrAlreadyConverted
	}

	invoice := &models.Invoice{
		InvoiceID:    utils.GenerateEntityID("inv_", 12, false),
		PartnerID:    quote.PartnerID,
		InvoiceType:  models.InvoiceTypeFinal,
		Title:        quote.Title,
		Description:  quote.Description,
		Items:        quote.Items,
		Notes:        quote.Notes,
		PaymentTerms: quote.PaymentTerms,
		FromQuoteID:  &quote.QuoteID,
		Subtotal:     quote.Subtotal,
		Total:        quote.Total,
		Status:       models.InvoiceUnpaid,
	}

	err = allocateAndInsert(ctx, s.numbering, models.DocTypeInvoice, func(number string) error {
		invoice.InvoiceNumber = number
		return s.invoices.Create(invoice)
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.quotes.MarkConverted(quoteID, invoice.InvoiceID); err != nil {
		if delErr := s.invoices.Delete(invoice.InvoiceID); delErr != nil {
			slog.Error("failed to roll back invoice after conversion conflict",
				"invoice_id", invoice.InvoiceID, "error", delErr)
		}
		return nil, err
	}

	return invoice, nil
}

// GeneratePDF renders the quote, stores it and persists the URL.
func (s *QuoteService) GeneratePDF(ctx context.Context, quoteID string) (string, error) {
	quote, err := s.quotes.GetByID(quoteID)
	if err != nil {
		return "", err
	}
	partner, err := s.partners.GetByID(quote.PartnerID)
	if err != nil {
		return "", err
	}

	data := pdf.DocumentData{
		DocLabel:    "Devis",
		Number:      quote.QuoteNumber,
		Date:        quote.CreatedAt.Format("02/01/2006"),
		PartnerName: partner.Name,
		PartnerInfo: partnerInfoLines(partner),
		Title:       quote.Title,
		Lines:       lineItemRows(quote.Items),
		Subtotal:    &quote.Subtotal,
		Total:       &quote.Total,
		Footer:      "YAMA+ Dakar, Sénégal",
	}

	rendered, err := s.renderer.Render(data)
	if err != nil {
		return "", err
	}

	url, err := uploadDocumentPDF(ctx, s.storage, quote.QuoteNumber, rendered)
	if err != nil {
		return "", err
	}
	if err := s.quotes.SetPDFURL(quoteID, url); err != nil {
		return "", err
	}

	return url, nil
}

// SendByEmail publishes an email event carrying the quote PDF link; the
// email worker delivers it asynchronously.
func (s *QuoteService) SendByEmail(ctx context.Context, quoteID string) error {
	quote, err := s.quotes.GetByID(quoteID)
	if err != nil {
		return err
	}
	partner, err := s.partners.GetByID(quote.PartnerID)
	if err != nil {
		return err
	}
	if partner.Email == nil || *partner.Email == "" {
		return models.ErrNotFound
	}

	url := ""
	if quote.PDFURL != nil {
		url = *quote.PDFURL
	} else {
		url, err = s.GeneratePDF(ctx, quoteID)
		if err != nil {
			return err
		}
	}

	return s.publisher.PublishEmail(ctx, event.EmailEvent{
		To:       *partner.Email,
		Subject:  "Votre devis " + quote.QuoteNumber,
		Template: event.TemplateDocument,
		Data: map[string]interface{}{
			"partner_name": partner.Name,
			"doc_label":    "devis",
			"doc_number":   quote.QuoteNumber,
		},
		AttachmentURL: url,
	})
}

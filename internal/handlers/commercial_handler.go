package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/services"
	"github.com/Amadoujf/nouveauyama/utils"
	"github.com/gofiber/fiber/v3"
)

// CommercialHandler exposes the B2B back office: partners, quotes, invoices,
// contracts and the revenue dashboard. Everything here is admin-only.
type CommercialHandler struct {
	partnerService   *services.PartnerService
	quoteService     *services.QuoteService
	invoiceService   *services.InvoiceService
	contractService  *services.ContractService
	dashboardService *services.DashboardService
	middleware       *AuthMiddleware
}

func NewCommercialHandler(
	partnerService *services.PartnerService,
	quoteService *services.QuoteService,
	invoiceService *services.InvoiceService,
	contractService *services.ContractService,
	dashboardService *services.DashboardService,
	middleware *AuthMiddleware,
) *CommercialHandler {
	return &CommercialHandler{
		partnerService:   partnerService,
		quoteService:     quoteService,
		invoiceService:   invoiceService,
		contractService:  contractService,
		dashboardService: dashboardService,
		middleware:       middleware,
	}
}

func (h *CommercialHandler) Register(app *fiber.App) {
	commercialGr := app.Group("/api/commercial", h.middleware.RequireAdmin)

	commercialGr.Get("/dashboard", h.Dashboard)

	partnerGr := commercialGr.Group("/partners")
	partnerGr.Post("/", h.CreatePartner)
	partnerGr.Get("/", h.ListPartners)
	partnerGr.Get("/:id", h.GetPartner)
	partnerGr.Put("/:id", h.UpdatePartner)
	partnerGr.Delete("/:id", h.DeletePartner)

	quoteGr := commercialGr.Group("/quotes")
	quoteGr.Post("/", h.CreateQuote)
	quoteGr.Get("/", h.ListQuotes)
	quoteGr.Get("/:id", h.GetQuote)
	quoteGr.Put("/:id", h.UpdateQuote)
	quoteGr.Delete("/:id", h.DeleteQuote)
	quoteGr.Post("/:id/accept", h.AcceptQuote)
	quoteGr.Post("/:id/refuse", h.RefuseQuote)
	quoteGr.Post("/:id/convert-to-invoice", h.ConvertQuote)
	quoteGr.Post("/:id/pdf", h.GenerateQuotePDF)
	quoteGr.Post("/:id/send-email", h.SendQuoteEmail)

	invoiceGr := commercialGr.Group("/invoices")
	invoiceGr.Post("/", h.CreateInvoice)
	invoiceGr.Get("/", h.ListInvoices)
	invoiceGr.Get("/:id", h.GetInvoice)
	invoiceGr.Delete("/:id", h.DeleteInvoice)
	invoiceGr.Post("/:id/payments", h.RecordPayment)
	invoiceGr.Post("/:id/payments/reset", h.ResetPayments)
	invoiceGr.Post("/:id/pdf", h.GenerateInvoicePDF)
	invoiceGr.Post("/:id/send-email", h.SendInvoiceEmail)

	contractGr := commercialGr.Group("/contracts")
	contractGr.Post("/", h.CreateContract)
	contractGr.Get("/", h.ListContracts)
	contractGr.Get("/:id", h.GetContract)
	contractGr.Delete("/:id", h.DeleteContract)
	contractGr.Post("/:id/activate", h.ActivateContract)
	contractGr.Post("/:id/sign", h.SignContract)
	contractGr.Post("/:id/expire", h.ExpireContract)
	contractGr.Post("/:id/pdf", h.GenerateContractPDF)
	contractGr.Post("/:id/send-email", h.SendContractEmail)
}

func (h *CommercialHandler) Dashboard(c fiber.Ctx) error {
	dashboard, err := h.dashboardService.Commercial(c.Context())
	if err != nil {
		slog.Error("failed to build commercial dashboard", "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(dashboard))
}

// ---------------------------------------------------------------------------
// Partners
// ---------------------------------------------------------------------------

func (h *CommercialHandler) CreatePartner(c fiber.Ctx) error {
	var req models.PartnerRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	partner, err := h.partnerService.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(partner))
}

func (h *CommercialHandler) ListPartners(c fiber.Ctx) error {
	partners, err := h.partnerService.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(partners))
}

func (h *CommercialHandler) GetPartner(c fiber.Ctx) error {
	partner, err := h.partnerService.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(partner))
}

func (h *CommercialHandler) UpdatePartner(c fiber.Ctx) error {
	var req models.PartnerRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	partner, err := h.partnerService.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(partner))
}

func (h *CommercialHandler) DeletePartner(c fiber.Ctx) error {
	if err := h.partnerService.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"message": "Partenaire supprimé",
	}))
}

// ---------------------------------------------------------------------------
// Quotes
// ---------------------------------------------------------------------------

func (h *CommercialHandler) CreateQuote(c fiber.Ctx) error {
	var req models.CreateQuoteRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	quote, err := h.quoteService.Create(c.Context(), req)
	if err != nil {
		slog.Error("failed to create quote", "partner_id", req.PartnerID, "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(quote))
}

func (h *CommercialHandler) ListQuotes(c fiber.Ctx) error {
	quotes, err := h.quoteService.List(models.QuoteStatus(c.Query("status")), c.Query("partner_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(quotes))
}

func (h *CommercialHandler) GetQuote(c fiber.Ctx) error {
	quote, err := h.quoteService.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(quote))
}

func (h *CommercialHandler) UpdateQuote(c fiber.Ctx) error {
	var req models.CreateQuoteRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	quote, err := h.quoteService.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(quote))
}

func (h *CommercialHandler) DeleteQuote(c fiber.Ctx) error {
	if err := h.quoteService.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"message": "Devis supprimé",
	}))
}

func (h *CommercialHandler) AcceptQuote(c fiber.Ctx) error {
	quote, err := h.quoteService.Accept(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(quote))
}

func (h *CommercialHandler) RefuseQuote(c fiber.Ctx) error {
	quote, err := h.quoteService.Refuse(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(quote))
}

func (h *CommercialHandler) ConvertQuote(c fiber.Ctx) error {
	invoice, err := h.quoteService.ConvertToInvoice(c.Context(), c.Params("id"))
	if err != nil {
		slog.Error("quote conversion failed", "quote_id", c.Params("id"), "error", err)
		return respondError(c, err)
	}

	slog.Info("quote converted", "quote_id", c.Params("id"), "invoice_number", invoice.InvoiceNumber)
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(invoice))
}

func (h *CommercialHandler) GenerateQuotePDF(c fiber.Ctx) error {
	url, err := h.quoteService.GeneratePDF(c.Context(), c.Params("id"))
	if err != nil {
		slog.Error("quote pdf generation failed", "quote_id", c.Params("id"), "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"pdf_url": url,
	}))
}

func (h *CommercialHandler) SendQuoteEmail(c fiber.Ctx) error {
	if err := h.quoteService.SendByEmail(c.Context(), c.Params("id")); err != nil {
		slog.Error("failed to send quote email", "quote_id", c.Params("id"), "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"message": "Devis envoyé par email",
	}))
}

// ---------------------------------------------------------------------------
// Invoices
// ---------------------------------------------------------------------------

func (h *CommercialHandler) CreateInvoice(c fiber.Ctx) error {
	var req models.CreateInvoiceRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	invoice, err := h.invoiceService.Create(c.Context(), req)
	if err != nil {
		slog.Error("failed to create invoice", "partner_id", req.PartnerID, "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(invoice))
}

func (h *CommercialHandler) ListInvoices(c fiber.Ctx) error {
	invoices, err := h.invoiceService.List(
		models.InvoiceStatus(c.Query("status")),
		models.InvoiceType(c.Query("type")),
		c.Query("partner_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(invoices))
}

func (h *CommercialHandler) GetInvoice(c fiber.Ctx) error {
	invoice, err := h.invoiceService.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(invoice))
}

func (h *CommercialHandler) DeleteInvoice(c fiber.Ctx) error {
	if err := h.invoiceService.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"message": "Facture supprimée",
	}))
}

func (h *CommercialHandler) RecordPayment(c fiber.Ctx) error {
	var req models.RecordPaymentRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	invoice, err := h.invoiceService.RecordPayment(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}

	slog.Info("payment recorded", "invoice_id", invoice.InvoiceID, "amount", req.Amount, "status", invoice.Status)
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(invoice))
}

// ResetPayments puts an invoice back to unpaid after a booking mistake.
func (h *CommercialHandler) ResetPayments(c fiber.Ctx) error {
	invoice, err := h.invoiceService.ResetPayments(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	slog.Info("invoice payments reset", "invoice_id", invoice.InvoiceID)
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(invoice))
}

func (h *CommercialHandler) GenerateInvoicePDF(c fiber.Ctx) error {
	url, err := h.invoiceService.GeneratePDF(c.Context(), c.Params("id"))
	if err != nil {
		slog.Error("invoice pdf generation failed", "invoice_id", c.Params("id"), "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"pdf_url": url,
	}))
}

func (h *CommercialHandler) SendInvoiceEmail(c fiber.Ctx) error {
	if err := h.invoiceService.SendByEmail(c.Context(), c.Params("id")); err != nil {
		slog.Error("failed to send invoice email", "invoice_id", c.Params("id"), "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"message": "Facture envoyée par email",
	}))
}

// ---------------------------------------------------------------------------
// Contracts
// ---------------------------------------------------------------------------

func (h *CommercialHandler) CreateContract(c fiber.Ctx) error {
	var req models.CreateContractRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadRequest(c, "Corps de requête invalide")
	}
	if err := req.Validate(); err != nil {
		return respondValidation(c, err)
	}

	contract, err := h.contractService.Create(c.Context(), req)
	if err != nil {
		slog.Error("failed to create contract", "partner_id", req.PartnerID, "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(contract))
}

func (h *CommercialHandler) ListContracts(c fiber.Ctx) error {
	contracts, err := h.contractService.List(
		models.ContractStatus(c.Query("status")),
		models.ContractType(c.Query("type")),
		c.Query("partner_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(contracts))
}

func (h *CommercialHandler) GetContract(c fiber.Ctx) error {
	contract, err := h.contractService.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(contract))
}

func (h *CommercialHandler) DeleteContract(c fiber.Ctx) error {
	if err := h.contractService.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"message": "Contrat supprimé",
	}))
}

func (h *CommercialHandler) ActivateContract(c fiber.Ctx) error {
	contract, err := h.contractService.Activate(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(contract))
}

func (h *CommercialHandler) SignContract(c fiber.Ctx) error {
	contract, err := h.contractService.Sign(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(contract))
}

func (h *CommercialHandler) ExpireContract(c fiber.Ctx) error {
	contract, err := h.contractService.Expire(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(contract))
}

func (h *CommercialHandler) GenerateContractPDF(c fiber.Ctx) error {
	url, err := h.contractService.GeneratePDF(c.Context(), c.Params("id"))
	if err != nil {
		slog.Error("contract pdf generation failed", "contract_id", c.Params("id"), "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"pdf_url": url,
	}))
}

func (h *CommercialHandler) SendContractEmail(c fiber.Ctx) error {
	if err := h.contractService.SendByEmail(c.Context(), c.Params("id")); err != nil {
		slog.Error("failed to send contract email", "contract_id", c.Params("id"), "error", err)
		return respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(fiber.Map{
		"message": "Contrat envoyé par email",
	}))
}

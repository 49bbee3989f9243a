package email

import (
	"testing"

	"github.com/Amadoujf/nouveauyama/internal/event"
	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate_Welcome(t *testing.T) {
	body, err := renderTemplate(event.EmailEvent{
		Template: event.TemplateWelcome,
		Data: map[string]interface{}{
			"name":       "Awa",
			"promo_code": "WELCOME10-ABC123",
		},
	})

	assert.NoError(t, err)
	assert.Contains(t, body, "Awa")
	assert.Contains(t, body, "WELCOME10-ABC123")
}

func TestRenderTemplate_SpinPrize(t *testing.T) {
	body, err := renderTemplate(event.EmailEvent{
		Template: event.TemplateSpinPrize,
		Data: map[string]interface{}{
			"name":        "Moussa",
			"prize_label": "-10% sur votre commande",
			"promo_code":  "DISCOUNT_10-XYZ789",
		},
	})

	assert.NoError(t, err)
	assert.Contains(t, body, "-10% sur votre commande")
	assert.Contains(t, body, "DISCOUNT_10-XYZ789")
}

func TestRenderTemplate_DocumentWithAttachment(t *testing.T) {
	body, err := renderTemplate(event.EmailEvent{
		Template: event.TemplateDocument,
		Data: map[string]interface{}{
			"partner_name": "Sénégal Médias",
			"doc_label":    "Devis",
			"doc_number":   "YMP-DEV-2025-0042",
		},
		AttachmentURL: "https://files.yamaplus.sn/commercial-documents/YMP-DEV-2025-0042.pdf",
	})

	assert.NoError(t, err)
	assert.Contains(t, body, "YMP-DEV-2025-0042")
	assert.Contains(t, body, "Télécharger le document")
}

func TestRenderTemplate_OrderConfirmTotalFromJSON(t *testing.T) {
	// Numbers arrive as float64 after a JSON round trip through the queue.
	body, err := renderTemplate(event.EmailEvent{
		Template: event.TemplateOrderConfirm,
		Data: map[string]interface{}{
			"name":         "Fatou",
			"order_number": "ORD-9F86D081",
			"total":        float64(45500),
		},
	})

	assert.NoError(t, err)
	assert.Contains(t, body, "ORD-9F86D081")
	assert.Contains(t, body, "45500")
}

func TestRenderTemplate_UnknownTemplate(t *testing.T) {
	_, err := renderTemplate(event.EmailEvent{Template: "sms"})
	assert.Error(t, err)
}

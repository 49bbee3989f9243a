package event

// EmailEvent is one outbound email to be delivered by the consumer. Document
// sends attach the generated PDF by URL; campaign fan-out produces one event
// per subscriber.
type EmailEvent struct {
	To            string                 `json:"to"`
	Subject       string                 `json:"subject"`
	Template      string                 `json:"template"`
	Data          map[string]interface{} `json:"data,omitempty"`
	BodyHTML      string                 `json:"body_html,omitempty"`
	AttachmentURL string                 `json:"attachment_url,omitempty"`
}

const EmailQueue string = "email_events"
const EmailDLQ string = "email_events_dlq"

// Template names understood by the email sender.
const (
	TemplateWelcome      = "newsletter_welcome"
	TemplateSpinPrize    = "spin_prize"
	TemplateDocument     = "commercial_document"
	TemplateOrderConfirm = "order_confirmation"
	TemplateCampaign     = "campaign"
)

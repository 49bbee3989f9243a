package email

import (
	"fmt"

	"github.com/Amadoujf/nouveauyama/internal/config"
	"github.com/Amadoujf/nouveauyama/internal/event"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(cfg config.SMTPConfig) *EmailService {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &EmailService{dialer: d, from: from}
}

// Send delivers one email event. Template events render their HTML here;
// campaign events carry pre-rendered HTML.
func (e *EmailService) Send(ev event.EmailEvent) error {
	body := ev.BodyHTML
	if body == "" {
		rendered, err := renderTemplate(ev)
		if err != nil {
			return err
		}
		body = rendered
	}

	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", ev.To)
	m.SetHeader("Subject", ev.Subject)
	m.SetBody("text/html", body)

	if err := e.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", ev.To, err)
	}
	return nil
}

func renderTemplate(ev event.EmailEvent) (string, error) {
	str := func(key string) string {
		if v, ok := ev.Data[key].(string); ok {
			return v
		}
		return ""
	}

	switch ev.Template {
	case event.TemplateWelcome:
		return WelcomeTemplate(str("name"), str("promo_code")), nil
	case event.TemplateSpinPrize:
		return SpinPrizeTemplate(str("name"), str("prize_label"), str("promo_code")), nil
	case event.TemplateDocument:
		body := DocumentTemplate(str("partner_name"), str("doc_label"), str("doc_number"))
		if ev.AttachmentURL != "" {
			body += fmt.Sprintf(`<p><a href="%s">Télécharger le document</a></p>`, ev.AttachmentURL)
		}
		return body, nil
	case event.TemplateOrderConfirm:
		total := int64(0)
		if v, ok := ev.Data["total"].(float64); ok {
			total = int64(v)
		}
		return OrderConfirmationTemplate(str("name"), str("order_number"), total), nil
	default:
		return "", fmt.Errorf("unsupported email template: %s", ev.Template)
	}
}

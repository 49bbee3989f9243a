package services

import (
	"fmt"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/pdf"
)

// ReceiptService renders the customer-facing order receipt. Receipts are
// generated on demand and streamed, never stored.
type ReceiptService struct {
	renderer *pdf.Renderer
}

func NewReceiptService(renderer *pdf.Renderer) *ReceiptService {
	return &ReceiptService{renderer: renderer}
}

func (s *ReceiptService) Render(order *models.Order) ([]byte, error) {
	lines := make([]pdf.TableLine, 0, len(order.Items)+2)
	for _, item := range order.Items {
		lines = append(lines, pdf.TableLine{
			Left:  fmt.Sprintf("%s  x%d", item.Name, item.Quantity),
			Right: fmt.Sprintf("%d FCFA", item.Price*int64(item.Quantity)),
		})
	}
	lines = append(lines, pdf.TableLine{
		Left:  "Livraison",
		Right: fmt.Sprintf("%d FCFA", order.ShippingCost),
	})

	date := order.CreatedAt
	if date.IsZero() {
		date = time.Now()
	}

	subtotal := order.Subtotal
	total := order.Total

	return s.renderer.Render(pdf.DocumentData{
		DocLabel:    "Reçu de commande",
		Number:      order.OrderID,
		Date:        date.Format("02/01/2006"),
		PartnerName: order.Shipping.FullName,
		PartnerInfo: []string{
			order.Shipping.Address,
			fmt.Sprintf("%s, %s", order.Shipping.City, order.Shipping.Region),
			order.Shipping.Phone,
		},
		Title:    fmt.Sprintf("Commande %s", order.OrderID),
		Lines:    lines,
		Subtotal: &subtotal,
		Total:    &total,
		Footer:   "Merci pour votre confiance. YAMA+ Dakar, Sénégal.",
	})
}

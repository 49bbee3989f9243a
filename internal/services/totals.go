package services

import (
	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeTotals derives the monetary totals of a document from its line
// items. Each extension is qty x unit price x (1 - discount/100), rounded to
// whole FCFA with round-half-to-even, then summed. There is no tax layer, so
// Total always equals Subtotal. Callers recompute from scratch on every item
// change instead of patching stored totals.
func ComputeTotals(items []models.LineItem) (models.MonetaryTotal, error) {
	subtotal := decimal.Zero

	for i, item := range items {
		if item.Quantity <= 0 {
			return models.MonetaryTotal{}, &models.InvalidLineItemError{Index: i, Field: "quantity"}
		}
		if item.UnitPrice < 0 {
			return models.MonetaryTotal{}, &models.InvalidLineItemError{Index: i, Field: "unit_price"}
		}
		if item.Discount < 0 || item.Discount > 100 {
			return models.MonetaryTotal{}, &models.InvalidLineItemError{Index: i, Field: "discount"}
		}

		qty := decimal.NewFromFloat(item.Quantity)
		price := decimal.NewFromInt(item.UnitPrice)
		factor := oneHundred.Sub(decimal.NewFromFloat(item.Discount)).Div(oneHundred)

		extension := qty.Mul(price).Mul(factor).RoundBank(0)
		subtotal = subtotal.Add(extension)
	}

	total := subtotal.IntPart()
	return models.MonetaryTotal{Subtotal: total, Total: total}, nil
}

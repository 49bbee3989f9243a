package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineItemDecode_FractionalQuantity(t *testing.T) {
	payload := `{"description": "Conseil en communication", "quantity": 2.5, "unit": "heure", "unit_price": 10000}`

	var item LineItem
	assert.NoError(t, json.Unmarshal([]byte(payload), &item))
	assert.Equal(t, 2.5, item.Quantity, "services billed by the hour carry fractional quantities")
	assert.Equal(t, "heure", item.Unit)
}

func TestLineItemDecode_UnitOptional(t *testing.T) {
	payload := `{"description": "Panneau publicitaire", "quantity": 2, "unit_price": 150000}`

	var item LineItem
	assert.NoError(t, json.Unmarshal([]byte(payload), &item))
	assert.Empty(t, item.Unit, "the display label is filled in by the services, not the decoder")
}

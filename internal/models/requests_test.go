package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validOrderRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Items: []OrderItem{{ProductID: "prod_abc", Quantity: 2}},
		Shipping: ShippingInfo{
			FullName: "Awa Diop",
			Phone:    "+221771234567",
			Address:  "Cité Keur Gorgui, villa 12",
			City:     "Dakar",
			Region:   "Dakar",
		},
		PaymentMethod: PaymentWave,
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{Email: "awa@example.sn", Name: "Awa Diop", Password: "secret1"}
	assert.NoError(t, valid.Validate())

	badEmail := valid
	badEmail.Email = "pas-un-email"
	assert.Error(t, badEmail.Validate())

	shortPassword := valid
	shortPassword.Password = "abc"
	assert.Error(t, shortPassword.Validate())

	badPhone := valid
	phone := "12345"
	badPhone.Phone = &phone
	assert.Error(t, badPhone.Validate())

	localPhone := valid
	senegal := "771234567"
	localPhone.Phone = &senegal
	assert.NoError(t, localPhone.Validate())
}

func TestCreateOrderRequestValidate(t *testing.T) {
	assert.NoError(t, validOrderRequest().Validate())

	noItems := validOrderRequest()
	noItems.Items = nil
	assert.Error(t, noItems.Validate())

	zeroQuantity := validOrderRequest()
	zeroQuantity.Items[0].Quantity = 0
	assert.Error(t, zeroQuantity.Validate())

	noAddress := validOrderRequest()
	noAddress.Shipping.Address = "  "
	assert.Error(t, noAddress.Validate())

	badPhone := validOrderRequest()
	badPhone.Shipping.Phone = "0033123456"
	assert.Error(t, badPhone.Validate())

	badMethod := validOrderRequest()
	badMethod.PaymentMethod = PaymentMethod("cheque")
	assert.Error(t, badMethod.Validate())
}

func TestUpdateOrderStatusRequestValidate(t *testing.T) {
	empty := UpdateOrderStatusRequest{}
	assert.Error(t, empty.Validate(), "at least one field must be set")

	shipped := OrderShipped
	assert.NoError(t, UpdateOrderStatusRequest{OrderStatus: &shipped}.Validate())

	unknown := OrderStatus("lost")
	assert.Error(t, UpdateOrderStatusRequest{OrderStatus: &unknown}.Validate())
}

func TestCreateQuoteRequestValidate(t *testing.T) {
	valid := CreateQuoteRequest{
		PartnerID: "ptn_123",
		Title:     "Campagne d'affichage",
		Items:     LineItemList{{Description: "Panneau 4x3", Quantity: 2, UnitPrice: 150000}},
	}
	assert.NoError(t, valid.Validate())

	noPartner := valid
	noPartner.PartnerID = ""
	assert.Error(t, noPartner.Validate())

	noItems := valid
	noItems.Items = nil
	assert.Error(t, noItems.Validate())
}

func TestRecordPaymentRequestValidate(t *testing.T) {
	assert.NoError(t, RecordPaymentRequest{Amount: 50000}.Validate())
	assert.Error(t, RecordPaymentRequest{Amount: 0}.Validate())
	assert.Error(t, RecordPaymentRequest{Amount: -100}.Validate())
}

func TestValidatePromoRequestValidate(t *testing.T) {
	assert.NoError(t, ValidatePromoRequest{Code: "WELCOME10-ABC123", CartTotal: 10000}.Validate())
	assert.Error(t, ValidatePromoRequest{Code: " ", CartTotal: 10000}.Validate())
	assert.Error(t, ValidatePromoRequest{Code: "X", CartTotal: -1}.Validate())
}

func TestSpinRequestValidate(t *testing.T) {
	assert.NoError(t, SpinRequest{Email: "joueur@example.sn"}.Validate())
	assert.Error(t, SpinRequest{Email: "pas un email"}.Validate())
}

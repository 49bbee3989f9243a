package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Amadoujf/nouveauyama/internal/config"
	"github.com/Amadoujf/nouveauyama/internal/event"
	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/repository"
	"github.com/stretchr/testify/assert"
)

type fakeOrderStore struct {
	created  []*models.Order
	failWith error
}

func (s *fakeOrderStore) Create(order *models.Order) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.created = append(s.created, order)
	return nil
}

func (s *fakeOrderStore) GetByID(orderID string) (*models.Order, error) {
	for _, order := range s.created {
		if order.OrderID == orderID {
			return order, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *fakeOrderStore) ListByUser(string) ([]models.Order, error) { return nil, nil }

func (s *fakeOrderStore) List(models.OrderFilter) ([]models.Order, error) { return nil, nil }
func (s *fakeOrderStore) UpdateStatus(string, *models.OrderStatus, *models.PaymentStatus) error {
	return nil
}
func (s *fakeOrderStore) Stats() (*repository.OrderStats, error) { return &repository.OrderStats{}, nil }

type fakeCatalog struct {
	products map[string]*models.Product
}

func (c *fakeCatalog) GetByID(productID string) (*models.Product, error) {
	product, ok := c.products[productID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return product, nil
}

type fakePromos struct{}

func (p *fakePromos) GetPromoCode(string) (*models.PromoCode, error) { return nil, models.ErrNotFound }
func (p *fakePromos) MarkPromoCodeUsed(string) error                 { return nil }

type fakeCarts struct {
	cleared []CartOwner
}

func (c *fakeCarts) Clear(owner CartOwner) error {
	c.cleared = append(c.cleared, owner)
	return nil
}

type fakeUsers struct {
	users map[string]*models.User
}

func (u *fakeUsers) GetByID(userID string) (*models.User, error) {
	user, ok := u.users[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return user, nil
}

type fakePublisher struct {
	events   []event.EmailEvent
	failWith error
}

func (p *fakePublisher) PublishEmail(_ context.Context, ev event.EmailEvent) error {
	if p.failWith != nil {
		return p.failWith
	}
	p.events = append(p.events, ev)
	return nil
}

type orderFixture struct {
	orders    *fakeOrderStore
	carts     *fakeCarts
	publisher *fakePublisher
	svc       *OrderService
}

func newOrderFixture() *orderFixture {
	orders := &fakeOrderStore{}
	carts := &fakeCarts{}
	publisher := &fakePublisher{}
	catalog := &fakeCatalog{products: map[string]*models.Product{
		"prd_casque01": {ProductID: "prd_casque01", Name: "Casque audio", Price: 15000, Stock: 10},
		"prd_coque02":  {ProductID: "prd_coque02", Name: "Coque téléphone", Price: 3000, Stock: 2},
	}}
	users := &fakeUsers{users: map[string]*models.User{
		"usr_awa01": {UserID: "usr_awa01", Name: "Awa Diop", Email: "awa@example.sn"},
	}}
	shipping := NewShippingCalculator(config.ShippingConfig{
		DakarFee:   2500,
		RegionFee:  3500,
		DakarZones: []string{"dakar"},
	})

	return &orderFixture{
		orders:    orders,
		carts:     carts,
		publisher: publisher,
		svc:       NewOrderService(orders, catalog, carts, &fakePromos{}, users, shipping, publisher),
	}
}

func dakarOrderRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		Items: []models.OrderItem{
			{ProductID: "prd_casque01", Quantity: 2},
		},
		Shipping:      models.ShippingInfo{FullName: "Awa Diop", City: "Dakar"},
		PaymentMethod: models.PaymentWave,
	}
}

func TestOrderCreate_SnapshotsCatalogPrices(t *testing.T) {
	f := newOrderFixture()

	order, err := f.svc.Create(context.Background(), CartOwner{SessionID: "sess_guest01"}, dakarOrderRequest())
	assert.NoError(t, err)
	assert.Equal(t, "Casque audio", order.Items[0].Name, "name comes from the catalog, not the request")
	assert.Equal(t, int64(15000), order.Items[0].Price)
	assert.Equal(t, int64(30000), order.Subtotal)
	assert.Equal(t, int64(2500), order.ShippingCost)
	assert.Equal(t, int64(32500), order.Total)
	assert.Len(t, f.carts.cleared, 1, "the owner's cart is cleared after a successful order")
}

func TestOrderCreate_OutOfStockLeavesNoTrace(t *testing.T) {
	f := newOrderFixture()

	req := dakarOrderRequest()
	req.Items = []models.OrderItem{{ProductID: "prd_coque02", Quantity: 5}}

	_, err := f.svc.Create(context.Background(), CartOwner{SessionID: "sess_guest01"}, req)
	assert.ErrorIs(t, err, models.ErrOutOfStock)
	assert.Empty(t, f.orders.created)
	assert.Empty(t, f.carts.cleared)
	assert.Empty(t, f.publisher.events)
}

func TestOrderCreate_StoreFailureLeavesNoTrace(t *testing.T) {
	f := newOrderFixture()
	f.orders.failWith = models.ErrOutOfStock

	_, err := f.svc.Create(context.Background(), CartOwner{SessionID: "sess_guest01"}, dakarOrderRequest())
	assert.ErrorIs(t, err, models.ErrOutOfStock, "a stock conflict inside the insert surfaces unchanged")
	assert.Empty(t, f.carts.cleared, "no cart clear when the insert fails")
	assert.Empty(t, f.publisher.events, "no confirmation email when the insert fails")
}

func TestOrderCreate_QueuesConfirmationForAccountHolder(t *testing.T) {
	f := newOrderFixture()

	order, err := f.svc.Create(context.Background(), CartOwner{UserID: "usr_awa01"}, dakarOrderRequest())
	assert.NoError(t, err)

	assert.Len(t, f.publisher.events, 1)
	ev := f.publisher.events[0]
	assert.Equal(t, "awa@example.sn", ev.To)
	assert.Equal(t, event.TemplateOrderConfirm, ev.Template)
	assert.Equal(t, "Awa Diop", ev.Data["name"])
	assert.Equal(t, order.OrderID, ev.Data["order_number"])
	assert.Equal(t, order.Total, ev.Data["total"])
}

func TestOrderCreate_GuestGetsNoConfirmationEmail(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.Create(context.Background(), CartOwner{SessionID: "sess_guest01"}, dakarOrderRequest())
	assert.NoError(t, err)
	assert.Empty(t, f.publisher.events, "guest orders have no address to send to")
}

func TestOrderCreate_QueueFailureDoesNotFailOrder(t *testing.T) {
	f := newOrderFixture()
	f.publisher.failWith = errors.New("broker unavailable")

	order, err := f.svc.Create(context.Background(), CartOwner{UserID: "usr_awa01"}, dakarOrderRequest())
	assert.NoError(t, err, "confirmation delivery is best effort")
	assert.NotNil(t, order)
	assert.Len(t, f.orders.created, 1)
}

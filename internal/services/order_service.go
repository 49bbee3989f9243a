package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Amadoujf/nouveauyama/internal/event"
	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/repository"
	"github.com/Amadoujf/nouveauyama/utils"
)

// The store interfaces below are implemented by the repositories; tests
// substitute in-memory fakes.
type orderStore interface {
	Create(order *models.Order) error
	GetByID(orderID string) (*models.Order, error)
	ListByUser(userID string) ([]models.Order, error)
	List(filter models.OrderFilter) ([]models.Order, error)
	UpdateStatus(orderID string, orderStatus *models.OrderStatus, paymentStatus *models.PaymentStatus) error
	Stats() (*repository.OrderStats, error)
}

type productCatalog interface {
	GetByID(productID string) (*models.Product, error)
}

type promoStore interface {
	GetPromoCode(code string) (*models.PromoCode, error)
	MarkPromoCodeUsed(code string) error
}

type cartClearer interface {
	Clear(owner CartOwner) error
}

type userReader interface {
	GetByID(userID string) (*models.User, error)
}

type emailQueuer interface {
	PublishEmail(ctx context.Context, ev event.EmailEvent) error
}

type OrderService struct {
	orders    orderStore
	products  productCatalog
	carts     cartClearer
	promos    promoStore
	users     userReader
	shipping  *ShippingCalculator
	publisher emailQueuer
}

func NewOrderService(
	orders orderStore,
	products productCatalog,
	carts cartClearer,
	promos promoStore,
	users userReader,
	shipping *ShippingCalculator,
	publisher emailQueuer,
) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		carts:     carts,
		promos:    promos,
		users:     users,
		shipping:  shipping,
		publisher: publisher,
	}
}

// Create places an order. Item names and prices are snapshotted from the
// catalog rather than trusted from the request; the store decrements stock
// and inserts the order in one transaction, and the owner's cart is cleared
// on success.
func (s *OrderService) Create(ctx context.Context, owner CartOwner, req models.CreateOrderRequest) (*models.Order, error) {
	items := make(models.OrderItemList, 0, len(req.Items))
	var subtotal int64

	for _, reqItem := range req.Items {
		product, err := s.products.GetByID(reqItem.ProductID)
		if err != nil {
			return nil, err
		}
		if reqItem.Quantity > product.Stock {
			return nil, models.ErrOutOfStock
		}

		item := models.OrderItem{
			ProductID: product.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  reqItem.Quantity,
		}
		if len(product.Images) > 0 {
			item.Image = product.Images[0]
		}
		items = append(items, item)
		subtotal += product.Price * int64(reqItem.Quantity)
	}

	shippingCost := s.shipping.Cost(req.Shipping.City, req.Shipping.Region)

	if req.PromoCode != nil && *req.PromoCode != "" {
		applied, err := s.applyPromo(*req.PromoCode, &subtotal, &shippingCost)
		if err != nil {
			return nil, err
		}
		if !applied {
			slog.Warn("promo code not applicable at checkout", "code", *req.PromoCode)
		}
	}

	order := &models.Order{
		OrderID:       utils.GenerateEntityID("ORD-", 8, true),
		Items:         items,
		Shipping:      req.Shipping,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentPending,
		OrderStatus:   models.OrderPending,
		Subtotal:      subtotal,
		ShippingCost:  shippingCost,
		Total:         subtotal + shippingCost,
	}
	if owner.UserID != "" {
		order.UserID = &owner.UserID
	}

	if err := s.orders.Create(order); err != nil {
		return nil, err
	}

	if err := s.carts.Clear(owner); err != nil {
		slog.Warn("failed to clear cart after order", "order_id", order.OrderID, "error", err)
	}

	s.queueConfirmation(ctx, order)

	return order, nil
}

// queueConfirmation emails the order summary to account holders. Guest orders
// carry no email address, and a queue failure never fails the order.
func (s *OrderService) queueConfirmation(ctx context.Context, order *models.Order) {
	if order.UserID == nil {
		return
	}

	user, err := s.users.GetByID(*order.UserID)
	if err != nil {
		slog.Warn("failed to load user for order confirmation", "order_id", order.OrderID, "error", err)
		return
	}

	err = s.publisher.PublishEmail(ctx, event.EmailEvent{
		To:       user.Email,
		Subject:  "Votre commande " + order.OrderID,
		Template: event.TemplateOrderConfirm,
		Data: map[string]interface{}{
			"name":         user.Name,
			"order_number": order.OrderID,
			"total":        order.Total,
		},
	})
	if err != nil {
		slog.Warn("failed to queue order confirmation", "order_id", order.OrderID, "error", err)
	}
}

func (s *OrderService) applyPromo(code string, subtotal *int64, shippingCost *int64) (bool, error) {
	promo, err := s.promos.GetPromoCode(code)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if !promoUsable(promo, *subtotal) {
		return false, nil
	}

	if promo.FreeShipping {
		*shippingCost = 0
	}
	if promo.DiscountPercent > 0 {
		*subtotal -= *subtotal * int64(promo.DiscountPercent) / 100
	}
	if promo.DiscountAmount > 0 {
		*subtotal -= promo.DiscountAmount
		if *subtotal < 0 {
			*subtotal = 0
		}
	}

	if err := s.promos.MarkPromoCodeUsed(code); err != nil {
		return false, err
	}
	return true, nil
}

// GetForUser returns an order only to its owner or an admin.
func (s *OrderService) GetForUser(orderID string, user *models.User) (*models.Order, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleAdmin {
		if order.UserID == nil || *order.UserID != user.UserID {
			return nil, models.ErrNotFound
		}
	}
	return order, nil
}

func (s *OrderService) ListForUser(userID string) ([]models.Order, error) {
	return s.orders.ListByUser(userID)
}

// Track is the public lookup by order number. It strips the shipping block
// down to the city to avoid leaking the full address.
func (s *OrderService) Track(orderNumber string) (*models.Order, error) {
	order, err := s.orders.GetByID(orderNumber)
	if err != nil {
		return nil, err
	}

	order.UserID = nil
	order.Shipping = models.ShippingInfo{City: order.Shipping.City}
	return order, nil
}

// ---------------------------------------------------------------------------
// Admin
// ---------------------------------------------------------------------------

func (s *OrderService) List(filter models.OrderFilter) ([]models.Order, error) {
	return s.orders.List(filter)
}

func (s *OrderService) UpdateStatus(orderID string, req models.UpdateOrderStatusRequest) (*models.Order, error) {
	if err := s.orders.UpdateStatus(orderID, req.OrderStatus, req.PaymentStatus); err != nil {
		return nil, err
	}
	return s.orders.GetByID(orderID)
}

// MarkPaid is invoked by the payment gateway IPN callback.
func (s *OrderService) MarkPaid(orderID string) (*models.Order, error) {
	paid := models.PaymentPaid
	confirmed := models.OrderConfirmed
	if err := s.orders.UpdateStatus(orderID, &confirmed, &paid); err != nil {
		return nil, err
	}
	return s.orders.GetByID(orderID)
}

func (s *OrderService) Stats() (*repository.OrderStats, error) {
	return s.orders.Stats()
}

func (s *OrderService) Get(orderID string) (*models.Order, error) {
	return s.orders.GetByID(orderID)
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/jmoiron/sqlx"
)

type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order and decrements stock for every line inside one
// transaction. A line without enough stock rolls everything back, so the
// catalog never loses units to an order that was not persisted.
func (r *OrderRepository) Create(order *models.Order) error {
	order.CreatedAt = time.Now()

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin order transaction: %w", err)
	}
	defer tx.Rollback()

	stockQuery := `
		UPDATE products
		SET stock = stock - $2, updated_at = now()
		WHERE product_id = $1 AND stock >= $2`

	for _, item := range order.Items {
		result, err := tx.Exec(stockQuery, item.ProductID, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return models.ErrOutOfStock
		}
	}

	query := `
		INSERT INTO orders (order_id, user_id, items, shipping, payment_method,
			payment_status, order_status, subtotal, shipping_cost, total, created_at)
		VALUES (:order_id, :user_id, :items, :shipping, :payment_method,
			:payment_status, :order_status, :subtotal, :shipping_cost, :total, :created_at)`

	if _, err := tx.NamedExec(query, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return tx.Commit()
}

func (r *OrderRepository) GetByID(orderID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Get(&order, `SELECT * FROM orders WHERE order_id = $1`, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

func (r *OrderRepository) ListByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	query := `SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

	if err := r.db.Select(&orders, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list orders for user: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) List(filter models.OrderFilter) ([]models.Order, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("order_status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.PaymentStatus != "" {
		conditions = append(conditions, fmt.Sprintf("payment_status = $%d", argPos))
		args = append(args, filter.PaymentStatus)
		argPos++
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := fmt.Sprintf(`
		SELECT * FROM orders
		WHERE %s
		ORDER BY created_at DESC
		LIMIT %d OFFSET %d`, strings.Join(conditions, " AND "), limit, filter.Skip)

	var orders []models.Order
	if err := r.db.Select(&orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(orderID string, orderStatus *models.OrderStatus, paymentStatus *models.PaymentStatus) error {
	sets := []string{}
	args := []interface{}{orderID}
	argPos := 2

	if orderStatus != nil {
		sets = append(sets, fmt.Sprintf("order_status = $%d", argPos))
		args = append(args, *orderStatus)
		argPos++
	}
	if paymentStatus != nil {
		sets = append(sets, fmt.Sprintf("payment_status = $%d", argPos))
		args = append(args, *paymentStatus)
		argPos++
	}
	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE orders SET %s WHERE order_id = $1`, strings.Join(sets, ", "))

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// OrderStats is the admin dashboard aggregate over orders.
type OrderStats struct {
	TotalOrders   int   `db:"total_orders" json:"total_orders"`
	PendingOrders int   `db:"pending_orders" json:"pending_orders"`
	PaidRevenue   int64 `db:"paid_revenue" json:"paid_revenue"`
}

func (r *OrderRepository) Stats() (*OrderStats, error) {
	var stats OrderStats
	query := `
		SELECT COUNT(*) AS total_orders,
			COUNT(*) FILTER (WHERE order_status = 'pending') AS pending_orders,
			COALESCE(SUM(total) FILTER (WHERE payment_status = 'paid'), 0) AS paid_revenue
		FROM orders`

	if err := r.db.Get(&stats, query); err != nil {
		return nil, fmt.Errorf("failed to get order stats: %w", err)
	}
	return &stats, nil
}

// ---------------------------------------------------------------------------
// Contact messages
// ---------------------------------------------------------------------------

type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(message *models.ContactMessage) error {
	message.CreatedAt = time.Now()

	query := `
		INSERT INTO contact_messages (message_id, name, email, phone, subject, message, read, created_at)
		VALUES (:message_id, :name, :email, :phone, :subject, :message, :read, :created_at)`

	if _, err := r.db.NamedExec(query, message); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *ContactRepository) List(limit, skip int) ([]models.ContactMessage, error) {
	if limit <= 0 {
		limit = 50
	}

	var messages []models.ContactMessage
	query := `SELECT * FROM contact_messages ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	if err := r.db.Select(&messages, query, limit, skip); err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

func (r *ContactRepository) MarkRead(messageID string) error {
	result, err := r.db.Exec(`UPDATE contact_messages SET read = TRUE WHERE message_id = $1`, messageID)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

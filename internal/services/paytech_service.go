package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/config"
	"github.com/Amadoujf/nouveauyama/internal/models"
)

// PayTechService is a thin client for the PayTech payment gateway. Initiating
// a payment returns a hosted checkout URL; the gateway later confirms the
// payment through the IPN webhook.
type PayTechService struct {
	cfg    config.PayTechConfig
	client *http.Client
	orders *OrderService
}

func NewPayTechService(cfg config.PayTechConfig, orders *OrderService) *PayTechService {
	return &PayTechService{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
		orders: orders,
	}
}

type paytechInitiatePayload struct {
	ItemName    string `json:"item_name"`
	ItemPrice   int64  `json:"item_price"`
	Currency    string `json:"currency"`
	RefCommand  string `json:"ref_command"`
	CommandName string `json:"command_name"`
	IPNURL      string `json:"ipn_url"`
	SuccessURL  string `json:"success_url"`
	CancelURL   string `json:"cancel_url"`
}

type paytechInitiateResponse struct {
	Success     int    `json:"success"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// InitiatePayment registers the order with the gateway and returns the
// checkout URL the storefront redirects to.
func (s *PayTechService) InitiatePayment(ctx context.Context, orderID string) (string, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		return "", err
	}
	if order.PaymentStatus == models.PaymentPaid {
		return "", models.ErrInvalidTransition
	}

	payload := paytechInitiatePayload{
		ItemName:    fmt.Sprintf("Commande %s", order.OrderID),
		ItemPrice:   order.Total,
		Currency:    "XOF",
		RefCommand:  order.OrderID,
		CommandName: fmt.Sprintf("Commande YAMA+ %s", order.OrderID),
		IPNURL:      s.cfg.IPNURL,
		SuccessURL:  s.cfg.SuccessURL,
		CancelURL:   s.cfg.CancelURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payment payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.cfg.BaseURL+"/payment/request-payment", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("API_KEY", s.cfg.APIKey)
	req.Header.Set("API_SECRET", s.cfg.APISecret)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var result paytechInitiateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if result.Success != 1 || result.RedirectURL == "" {
		return "", fmt.Errorf("payment gateway rejected the request")
	}

	return result.RedirectURL, nil
}

// IPNEvent is the notification the gateway posts after a payment attempt.
type IPNEvent struct {
	TypeEvent  string `json:"type_event"`
	RefCommand string `json:"ref_command"`
	APIKeySHA  string `json:"api_key_sha256"`
}

// verifyIPN checks the event's api_key_sha256 field against the SHA-256 of
// the configured API key. The endpoint is unauthenticated, so this hash is
// the only thing tying a notification to the gateway.
func (s *PayTechService) verifyIPN(event IPNEvent) error {
	sum := sha256.Sum256([]byte(s.cfg.APIKey))
	expected := hex.EncodeToString(sum[:])
	received := strings.ToLower(strings.TrimSpace(event.APIKeySHA))

	if subtle.ConstantTimeCompare([]byte(expected), []byte(received)) != 1 {
		return models.ErrBadSignature
	}
	return nil
}

// HandleIPN flips the order's payment status according to the gateway event.
func (s *PayTechService) HandleIPN(event IPNEvent) (*models.Order, error) {
	if err := s.verifyIPN(event); err != nil {
		return nil, err
	}
	if event.RefCommand == "" {
		return nil, fmt.Errorf("ipn event missing ref_command")
	}

	switch event.TypeEvent {
	case "sale_complete":
		return s.orders.MarkPaid(event.RefCommand)
	case "sale_canceled":
		failed := models.PaymentFailed
		return s.orders.UpdateStatus(event.RefCommand, models.UpdateOrderStatusRequest{PaymentStatus: &failed})
	default:
		return nil, fmt.Errorf("unknown ipn event type: %s", event.TypeEvent)
	}
}

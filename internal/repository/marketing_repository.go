package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/jmoiron/sqlx"
)

type MarketingRepository struct {
	db *sqlx.DB
}

func NewMarketingRepository(db *sqlx.DB) *MarketingRepository {
	return &MarketingRepository{db: db}
}

// ---------------------------------------------------------------------------
// Newsletter
// ---------------------------------------------------------------------------

func (r *MarketingRepository) CreateSubscriber(sub *models.NewsletterSubscriber) error {
	sub.SubscribedAt = time.Now()

	query := `
		INSERT INTO newsletter_subscribers (email, name, promo_code, subscribed_at)
		VALUES (:email, :name, :promo_code, :subscribed_at)`

	if _, err := r.db.NamedExec(query, sub); err != nil {
		if isUniqueViolation(err) {
			return models.ErrEmailTaken
		}
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}

func (r *MarketingRepository) GetSubscriber(email string) (*models.NewsletterSubscriber, error) {
	var sub models.NewsletterSubscriber
	err := r.db.Get(&sub, `SELECT * FROM newsletter_subscribers WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}
	return &sub, nil
}

func (r *MarketingRepository) ListSubscribers() ([]models.NewsletterSubscriber, error) {
	var subs []models.NewsletterSubscriber
	query := `SELECT * FROM newsletter_subscribers ORDER BY subscribed_at DESC`

	if err := r.db.Select(&subs, query); err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subs, nil
}

// ---------------------------------------------------------------------------
// Promo codes
// ---------------------------------------------------------------------------

func (r *MarketingRepository) CreatePromoCode(code *models.PromoCode) error {
	code.CreatedAt = time.Now()

	query := `
		INSERT INTO promo_codes (code, discount_percent, discount_amount, free_shipping,
			min_cart_total, issued_to, used, expires_at, created_at)
		VALUES (:code, :discount_percent, :discount_amount, :free_shipping,
			:min_cart_total, :issued_to, :used, :expires_at, :created_at)`

	if _, err := r.db.NamedExec(query, code); err != nil {
		return fmt.Errorf("failed to create promo code: %w", err)
	}
	return nil
}

func (r *MarketingRepository) GetPromoCode(code string) (*models.PromoCode, error) {
	var promo models.PromoCode
	err := r.db.Get(&promo, `SELECT * FROM promo_codes WHERE code = $1`, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get promo code: %w", err)
	}
	return &promo, nil
}

// MarkPromoCodeUsed burns a single-use code. Returns ErrNotFound when the
// code does not exist or was already used.
func (r *MarketingRepository) MarkPromoCodeUsed(code string) error {
	result, err := r.db.Exec(
		`UPDATE promo_codes SET used = TRUE WHERE code = $1 AND used = FALSE`, code)
	if err != nil {
		return fmt.Errorf("failed to mark promo code used: %w", err)
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

// ---------------------------------------------------------------------------
// Spin wheel
// ---------------------------------------------------------------------------

func (r *MarketingRepository) GetSpinByEmail(email string) (*models.GameSpin, error) {
	var spin models.GameSpin
	err := r.db.Get(&spin, `SELECT * FROM game_spins WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get spin: %w", err)
	}
	return &spin, nil
}

// CreateSpin records the one allowed spin per email. The unique index on
// email turns a double spin into ErrAlreadyPlayed even under concurrency.
func (r *MarketingRepository) CreateSpin(spin *models.GameSpin) error {
	spin.CreatedAt = time.Now()

	query := `
		INSERT INTO game_spins (spin_id, email, name, prize_type, prize_code, created_at)
		VALUES (:spin_id, :email, :name, :prize_type, :prize_code, :created_at)`

	if _, err := r.db.NamedExec(query, spin); err != nil {
		if isUniqueViolation(err) {
			return models.ErrAlreadyPlayed
		}
		return fmt.Errorf("failed to create spin: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Campaigns
// ---------------------------------------------------------------------------

func (r *MarketingRepository) CreateCampaign(campaign *models.Campaign) error {
	campaign.CreatedAt = time.Now()

	query := `
		INSERT INTO campaigns (campaign_id, subject, body_html, status, recipient_count, created_at)
		VALUES (:campaign_id, :subject, :body_html, :status, :recipient_count, :created_at)`

	if _, err := r.db.NamedExec(query, campaign); err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

func (r *MarketingRepository) GetCampaign(campaignID string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Get(&campaign, `SELECT * FROM campaigns WHERE campaign_id = $1`, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return &campaign, nil
}

func (r *MarketingRepository) ListCampaigns() ([]models.Campaign, error) {
	var campaigns []models.Campaign
	query := `SELECT * FROM campaigns ORDER BY created_at DESC`

	if err := r.db.Select(&campaigns, query); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// MarkCampaignSent flips a draft campaign to sent. Sending twice is rejected.
func (r *MarketingRepository) MarkCampaignSent(campaignID string, recipientCount int) error {
	query := `
		UPDATE campaigns
		SET status = 'sent', recipient_count = $2, sent_at = now()
		WHERE campaign_id = $1 AND status = 'draft'`

	result, err := r.db.Exec(query, campaignID, recipientCount)
	if err != nil {
		return fmt.Errorf("failed to mark campaign sent: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		if _, gerr := r.GetCampaign(campaignID); gerr != nil {
			return gerr
		}
		return models.ErrInvalidTransition
	}
	return nil
}

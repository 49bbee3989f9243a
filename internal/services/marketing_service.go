package services

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/event"
	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/repository"
	"github.com/Amadoujf/nouveauyama/utils"
)

// WheelPrizes is the static bucket table of the spin wheel. Weights sum to
// 100.
var WheelPrizes = []models.WheelPrize{
	{Type: models.PrizeDiscount5, Label: "-5% sur votre commande", Weight: 35},
	{Type: models.PrizeDiscount10, Label: "-10% sur votre commande", Weight: 25},
	{Type: models.PrizeDiscount15, Label: "-15% sur votre commande", Weight: 15},
	{Type: models.PrizeFreeShipping, Label: "Livraison gratuite", Weight: 15},
	{Type: models.PrizeDiscount20, Label: "-20% sur votre commande", Weight: 10},
}

const promoValidityDays = 30

type MarketingService struct {
	marketing *repository.MarketingRepository
	publisher *event.EmailPublisher
}

func NewMarketingService(marketing *repository.MarketingRepository, publisher *event.EmailPublisher) *MarketingService {
	return &MarketingService{marketing: marketing, publisher: publisher}
}

// ---------------------------------------------------------------------------
// Newsletter
// ---------------------------------------------------------------------------

// Subscribe registers the email and issues a personal welcome code. The
// welcome email is delivered by the worker.
func (s *MarketingService) Subscribe(ctx context.Context, req models.NewsletterSubscribeRequest) (*models.NewsletterSubscriber, error) {
	code := "WELCOME10-" + utils.GenerateRandomStringWithLength(6)
	expires := time.Now().AddDate(0, 0, promoValidityDays)

	promo := &models.PromoCode{
		Code:            code,
		DiscountPercent: 10,
		IssuedTo:        &req.Email,
		ExpiresAt:       &expires,
	}
	if err := s.marketing.CreatePromoCode(promo); err != nil {
		return nil, err
	}

	sub := &models.NewsletterSubscriber{
		Email:     req.Email,
		Name:      req.Name,
		PromoCode: code,
	}
	if err := s.marketing.CreateSubscriber(sub); err != nil {
		return nil, err
	}

	name := ""
	if req.Name != nil {
		name = *req.Name
	}
	err := s.publisher.PublishEmail(ctx, event.EmailEvent{
		To:       req.Email,
		Subject:  "Bienvenue chez YAMA+ !",
		Template: event.TemplateWelcome,
		Data: map[string]interface{}{
			"name":       name,
			"promo_code": code,
		},
	})
	if err != nil {
		slog.Warn("failed to publish welcome email", "email", req.Email, "error", err)
	}

	return sub, nil
}

func (s *MarketingService) ListSubscribers() ([]models.NewsletterSubscriber, error) {
	return s.marketing.ListSubscribers()
}

// ---------------------------------------------------------------------------
// Promo codes
// ---------------------------------------------------------------------------

// PromoValidation is the storefront answer to a code check.
type PromoValidation struct {
	Valid           bool   `json:"valid"`
	Reason          string `json:"reason,omitempty"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
	DiscountAmount  int64  `json:"discount_amount,omitempty"`
	FreeShipping    bool   `json:"free_shipping,omitempty"`
}

func (s *MarketingService) ValidatePromo(req models.ValidatePromoRequest) (*PromoValidation, error) {
	promo, err := s.marketing.GetPromoCode(req.Code)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &PromoValidation{Valid: false, Reason: "Code promo introuvable"}, nil
		}
		return nil, err
	}

	switch {
	case promo.Used:
		return &PromoValidation{Valid: false, Reason: "Code promo déjà utilisé"}, nil
	case promo.ExpiresAt != nil && time.Now().After(*promo.ExpiresAt):
		return &PromoValidation{Valid: false, Reason: "Code promo expiré"}, nil
	case req.CartTotal < promo.MinCartTotal:
		return &PromoValidation{
			Valid:  false,
			Reason: fmt.Sprintf("Panier minimum de %d FCFA requis", promo.MinCartTotal),
		}, nil
	}

	return &PromoValidation{
		Valid:           true,
		DiscountPercent: promo.DiscountPercent,
		DiscountAmount:  promo.DiscountAmount,
		FreeShipping:    promo.FreeShipping,
	}, nil
}

// promoUsable reports whether a code can still be redeemed against the
// given cart subtotal.
func promoUsable(promo *models.PromoCode, cartTotal int64) bool {
	if promo.Used {
		return false
	}
	if promo.ExpiresAt != nil && time.Now().After(*promo.ExpiresAt) {
		return false
	}
	return cartTotal >= promo.MinCartTotal
}

// ---------------------------------------------------------------------------
// Spin wheel
// ---------------------------------------------------------------------------

func (s *MarketingService) WheelConfig() []models.WheelPrize {
	return WheelPrizes
}

// CheckEligibility reports whether the email still has its spin.
func (s *MarketingService) CheckEligibility(email string) (bool, error) {
	_, err := s.marketing.GetSpinByEmail(email)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, models.ErrNotFound) {
		return true, nil
	}
	return false, err
}

// Spin draws a prize for the email and issues the matching promo code. One
// spin per email, enforced by the store.
func (s *MarketingService) Spin(ctx context.Context, req models.SpinRequest) (*models.GameSpin, error) {
	prize := drawPrize()
	expires := time.Now().AddDate(0, 0, promoValidityDays)

	promo := &models.PromoCode{
		Code:      string(prize.Type) + "-" + utils.GenerateRandomStringWithLength(6),
		IssuedTo:  &req.Email,
		ExpiresAt: &expires,
	}
	switch prize.Type {
	case models.PrizeDiscount5:
		promo.DiscountPercent = 5
	case models.PrizeDiscount10:
		promo.DiscountPercent = 10
	case models.PrizeDiscount15:
		promo.DiscountPercent = 15
	case models.PrizeDiscount20:
		promo.DiscountPercent = 20
	case models.PrizeFreeShipping:
		promo.FreeShipping = true
	}

	spin := &models.GameSpin{
		SpinID:    utils.GenerateEntityID("spin_", 12, false),
		Email:     req.Email,
		Name:      req.Name,
		PrizeType: prize.Type,
		PrizeCode: promo.Code,
	}

	// Insert the spin first; the unique index is the eligibility gate.
	if err := s.marketing.CreateSpin(spin); err != nil {
		return nil, err
	}
	if err := s.marketing.CreatePromoCode(promo); err != nil {
		return nil, err
	}

	name := ""
	if req.Name != nil {
		name = *req.Name
	}
	err := s.publisher.PublishEmail(ctx, event.EmailEvent{
		To:       req.Email,
		Subject:  "Votre gain YAMA+ !",
		Template: event.TemplateSpinPrize,
		Data: map[string]interface{}{
			"name":        name,
			"prize_label": prize.Label,
			"promo_code":  promo.Code,
		},
	})
	if err != nil {
		slog.Warn("failed to publish prize email", "email", req.Email, "error", err)
	}

	return spin, nil
}

// drawPrize picks a bucket with probability proportional to its weight,
// seeded from crypto/rand.
func drawPrize() models.WheelPrize {
	totalWeight := 0
	for _, prize := range WheelPrizes {
		totalWeight += prize.Weight
	}

	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return WheelPrizes[0]
	}
	draw := int(binary.BigEndian.Uint64(buf[:]) % uint64(totalWeight))

	for _, prize := range WheelPrizes {
		if draw < prize.Weight {
			return prize
		}
		draw -= prize.Weight
	}
	return WheelPrizes[len(WheelPrizes)-1]
}

// ---------------------------------------------------------------------------
// Campaigns
// ---------------------------------------------------------------------------

func (s *MarketingService) CreateCampaign(req models.CampaignRequest) (*models.Campaign, error) {
	campaign := &models.Campaign{
		CampaignID: utils.GenerateEntityID("cmp_", 12, false),
		Subject:    req.Subject,
		BodyHTML:   req.BodyHTML,
		Status:     models.CampaignDraft,
	}
	if err := s.marketing.CreateCampaign(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *MarketingService) ListCampaigns() ([]models.Campaign, error) {
	return s.marketing.ListCampaigns()
}

// SendCampaign fans the campaign out to every subscriber, one queued email
// per recipient. The campaign flips to sent before the fan-out so a crash
// cannot double-send.
func (s *MarketingService) SendCampaign(ctx context.Context, campaignID string) (int, error) {
	campaign, err := s.marketing.GetCampaign(campaignID)
	if err != nil {
		return 0, err
	}

	subscribers, err := s.marketing.ListSubscribers()
	if err != nil {
		return 0, err
	}

	if err := s.marketing.MarkCampaignSent(campaignID, len(subscribers)); err != nil {
		return 0, err
	}

	queued := 0
	for _, sub := range subscribers {
		err := s.publisher.PublishEmail(ctx, event.EmailEvent{
			To:       sub.Email,
			Subject:  campaign.Subject,
			Template: event.TemplateCampaign,
			BodyHTML: campaign.BodyHTML,
		})
		if err != nil {
			slog.Error("failed to queue campaign email", "campaign_id", campaignID, "to", sub.Email, "error", err)
			continue
		}
		queued++
	}

	return queued, nil
}

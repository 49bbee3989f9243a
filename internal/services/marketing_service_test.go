package services

import (
	"testing"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPromoUsable(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	cases := []struct {
		name      string
		promo     models.PromoCode
		cartTotal int64
		want      bool
	}{
		{"fresh code", models.PromoCode{DiscountPercent: 10}, 5000, true},
		{"already used", models.PromoCode{DiscountPercent: 10, Used: true}, 5000, false},
		{"expired", models.PromoCode{DiscountPercent: 10, ExpiresAt: &past}, 5000, false},
		{"not yet expired", models.PromoCode{DiscountPercent: 10, ExpiresAt: &future}, 5000, true},
		{"below minimum cart", models.PromoCode{DiscountPercent: 10, MinCartTotal: 10000}, 5000, false},
		{"exactly at minimum cart", models.PromoCode{DiscountPercent: 10, MinCartTotal: 5000}, 5000, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, promoUsable(&tc.promo, tc.cartTotal))
		})
	}
}

func TestWheelPrizes_WeightsSumToOneHundred(t *testing.T) {
	total := 0
	for _, prize := range WheelPrizes {
		assert.Greater(t, prize.Weight, 0)
		total += prize.Weight
	}
	assert.Equal(t, 100, total)
}

func TestDrawPrize_AlwaysReturnsConfiguredPrize(t *testing.T) {
	valid := make(map[models.PrizeType]bool)
	for _, prize := range WheelPrizes {
		valid[prize.Type] = true
	}

	for i := 0; i < 200; i++ {
		prize := drawPrize()
		assert.True(t, valid[prize.Type], "drew unknown prize %s", prize.Type)
		assert.NotEmpty(t, prize.Label)
	}
}

func TestDrawPrize_EventuallyHitsEveryBucket(t *testing.T) {
	seen := make(map[models.PrizeType]bool)
	// The rarest bucket has probability 0.10; 2000 draws miss it with
	// probability well under 1e-80.
	for i := 0; i < 2000; i++ {
		seen[drawPrize().Type] = true
		if len(seen) == len(WheelPrizes) {
			break
		}
	}
	assert.Len(t, seen, len(WheelPrizes))
}

package services

import (
	"testing"

	"github.com/Amadoujf/nouveauyama/internal/config"
	"github.com/stretchr/testify/assert"
)

func testShippingCalculator() *ShippingCalculator {
	return NewShippingCalculator(config.ShippingConfig{
		DakarFee:   2500,
		RegionFee:  3500,
		DakarZones: []string{"dakar", "pikine", "guediawaye", "rufisque", "keur massar"},
	})
}

func TestShippingCost_DakarZones(t *testing.T) {
	calc := testShippingCalculator()

	assert.Equal(t, int64(2500), calc.Cost("Dakar", "Dakar"))
	assert.Equal(t, int64(2500), calc.Cost("Pikine", ""))
	assert.Equal(t, int64(2500), calc.Cost("Keur Massar", ""))
}

func TestShippingCost_Regions(t *testing.T) {
	calc := testShippingCalculator()

	assert.Equal(t, int64(3500), calc.Cost("Thiès", "Thiès"))
	assert.Equal(t, int64(3500), calc.Cost("Saint-Louis", "Saint-Louis"))
	assert.Equal(t, int64(3500), calc.Cost("Ziguinchor", ""))
}

func TestShippingCost_MatchesOnRegionWhenCityUnknown(t *testing.T) {
	calc := testShippingCalculator()

	assert.Equal(t, int64(2500), calc.Cost("Parcelles Assainies", "Dakar"))
}

func TestShippingCost_CaseAndSpacingInsensitive(t *testing.T) {
	calc := testShippingCalculator()

	assert.Equal(t, int64(2500), calc.Cost("  DAKAR Plateau ", ""))
	assert.Equal(t, int64(2500), calc.Cost("guediawaye", ""))
}

func TestShippingCost_EmptyLocationFallsBackToRegionFee(t *testing.T) {
	calc := testShippingCalculator()

	assert.Equal(t, int64(3500), calc.Cost("", ""))
}

package services

import (
	"strings"

	"github.com/Amadoujf/nouveauyama/internal/config"
)

// ShippingCalculator resolves delivery fees from the static zone table:
// greater Dakar gets the local fee, everywhere else in Senegal the regional
// fee.
type ShippingCalculator struct {
	cfg config.ShippingConfig
}

func NewShippingCalculator(cfg config.ShippingConfig) *ShippingCalculator {
	return &ShippingCalculator{cfg: cfg}
}

// Cost matches the city (then region) against the Dakar zone list with a
// case-insensitive substring check, mirroring how addresses are free-typed
// at checkout.
func (c *ShippingCalculator) Cost(city, region string) int64 {
	if c.inDakarZone(city) || c.inDakarZone(region) {
		return c.cfg.DakarFee
	}
	return c.cfg.RegionFee
}

func (c *ShippingCalculator) inDakarZone(location string) bool {
	location = strings.ToLower(strings.TrimSpace(location))
	if location == "" {
		return false
	}
	for _, zone := range c.cfg.DakarZones {
		if strings.Contains(location, zone) {
			return true
		}
	}
	return false
}

package pricing

import "fmt"

// applyCorporateDiscount applies the account's corporate tier rate to
// the running total. Rates are fractions, so tier1 at 0.10 cuts 10%.
func applyCorporateDiscount(b *PriceBreakdown, tier CorporateTier, cfg *PricingConfig, total float64) float64 {
	var rate float64
	switch tier {
	case CorporateTier1:
		rate = cfg.GeneralPolicies.CorporateDiscounts.Tier1
	case CorporateTier2:
		rate = cfg.GeneralPolicies.CorporateDiscounts.Tier2
	default:
		return total
	}
	if rate <= 0 {
		return total
	}

	discounted := total * (1 - rate)
	b.addDiscount("corporate_"+string(tier), fmt.Sprintf("Corporate discount (%s)", tier), discounted-total)
	return discounted
}

// fleetVolumeTier returns the best volume tier the vehicle count
// qualifies for. Tiers are checked ascending so the highest threshold
// met wins.
func fleetVolumeTier(settings FleetSettings, vehicleCount int) (FleetDiscountTier, bool) {
	var best FleetDiscountTier
	found := false
	for _, tier := range settings.Tiers() {
		if tier.MinVehicles > 0 && vehicleCount >= tier.MinVehicles && tier.DiscountRate > 0 {
			best = tier
			found = true
		}
	}
	return best, found
}

// applyFleetDiscount applies the qualifying volume tier to the running total
func applyFleetDiscount(b *PriceBreakdown, trip *TripSpec, cfg *PricingConfig, total float64) float64 {
	tier, ok := fleetVolumeTier(cfg.FleetSettings, trip.TotalVehicles())
	if !ok {
		return total
	}

	discounted := total * (1 - tier.DiscountRate)
	b.addDiscount("fleet_volume", fmt.Sprintf("Fleet volume discount (%d+ vehicles)", tier.MinVehicles), discounted-total)
	return discounted
}

// applyReturnDiscount applies the round-trip rate to the combined legs
func applyReturnDiscount(b *PriceBreakdown, cfg *PricingConfig, total float64) float64 {
	rate := cfg.ReturnSettings.DiscountRate
	if rate <= 0 {
		return total
	}

	discounted := total * (1 - rate)
	b.addDiscount("return_trip", "Return trip discount", discounted-total)
	return discounted
}

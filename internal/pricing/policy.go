package pricing

import "math"

// Commission rates are platform-wide constants, not per-config values
const (
	platformFeeRate        = 0.10
	operatorCommissionRate = 0.20
)

// applyMinimumFare lifts the total to the minimum fare floor. The floor
// runs after discounts so a discount can never drag a price below it.
func applyMinimumFare(b *PriceBreakdown, minimumFare, total float64) float64 {
	b.MinimumFare = minimumFare
	if total < minimumFare {
		b.MinimumFareApplied = true
		return minimumFare
	}
	return total
}

// roundPrice rounds v to the configured increment. A non-positive
// increment disables rounding. An unrecognized direction is fatal
// because it means the stored config is corrupt.
func roundPrice(v float64, policy RoundingPolicy) (float64, error) {
	if policy.To <= 0 {
		return v, nil
	}

	steps := v / policy.To
	switch policy.Direction {
	case RoundUp:
		return math.Ceil(steps) * policy.To, nil
	case RoundDown:
		return math.Floor(steps) * policy.To, nil
	case RoundNearest:
		return math.Round(steps) * policy.To, nil
	default:
		return 0, newError(KindInvalidRounding, "general_policies.rounding.direction", "unknown rounding direction %q", policy.Direction)
	}
}

// finishBreakdown applies the minimum fare floor, rounding and the
// commission split, then seals the final price.
func finishBreakdown(b *PriceBreakdown, cfg *PricingConfig, minimumFare, total float64) error {
	total = applyMinimumFare(b, minimumFare, total)

	rounded, err := roundPrice(total, cfg.GeneralPolicies.Rounding)
	if err != nil {
		return err
	}
	if rounded != total {
		b.RoundedFrom = total
	}

	b.FinalPrice = rounded
	b.Commission = splitCommission(rounded)
	return nil
}

// splitCommission divides the final price between platform, operator
// and driver. The platform takes its fee off the top and the operator
// commission comes out of the remainder.
func splitCommission(finalPrice float64) CommissionSplit {
	platformFee := finalPrice * platformFeeRate
	operatorNet := finalPrice - platformFee
	operatorCommission := operatorNet * operatorCommissionRate
	return CommissionSplit{
		PlatformFee:        platformFee,
		OperatorCommission: operatorCommission,
		DriverPayout:       operatorNet - operatorCommission,
	}
}

// CancellationFee computes the charge for cancelling a booked trip.
// Cancellation is free outside the charge window; inside it the fee is
// a fraction of the quoted final price.
func CancellationFee(cfg *PricingConfig, finalPrice, hoursUntilPickup float64) float64 {
	policy := cfg.GeneralPolicies.Cancellation
	if hoursUntilPickup >= policy.FreeHours {
		return 0
	}
	return finalPrice * policy.ChargeRate
}

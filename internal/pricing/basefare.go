package pricing

import "math"

// tierBoundaryMiles is where the per-mile rate switches bands
const tierBoundaryMiles = 6.0

// baseFareComponents computes the base fare, distance fee and time fee
// for one leg. Distance and duration floors from the service policies
// are applied before any rate math so a short hop is billed as if it
// met the minimums.
func baseFareComponents(rates VehicleTypeRates, distanceMiles, durationMinutes float64, policies ServicePolicies) (base, distanceFee, timeFee float64) {
	distance := math.Max(distanceMiles, policies.MinimumDistanceMiles)
	duration := math.Max(durationMinutes, policies.MinimumTimeMinutes)

	first := math.Min(distance, tierBoundaryMiles)
	after := math.Max(distance-tierBoundaryMiles, 0)

	base = rates.BaseFare
	distanceFee = first*rates.PerMileFirst6 + after*rates.PerMileAfter6
	timeFee = duration * rates.PerMinute
	return base, distanceFee, timeFee
}

package pricing

import (
	"fmt"
	"math"
	"sort"
)

// Calculate prices a trip against a configuration snapshot. It is a
// pure function: the same trip and config always produce the same
// breakdown, and neither input is mutated.
func Calculate(trip *TripSpec, cfg *PricingConfig) (*PriceBreakdown, error) {
	if err := trip.Validate(); err != nil {
		return nil, err
	}

	switch trip.TripType {
	case TripTypeOneWay:
		return calculateOneWay(trip, cfg)
	case TripTypeHourly:
		return calculateHourly(trip, cfg)
	case TripTypeReturn:
		return calculateReturn(trip, cfg)
	case TripTypeFleet:
		return calculateFleet(trip, cfg)
	default:
		return nil, fmt.Errorf("unsupported trip type %q", trip.TripType)
	}
}

// priceLeg runs one leg through base fare, fees and surge. Discounts,
// the minimum fare floor and rounding are left to the caller because
// they act on the combined total of multi-leg bookings.
func priceLeg(trip *TripSpec, cfg *PricingConfig) (*PriceBreakdown, error) {
	rates, ok := cfg.VehicleTypes[trip.Category]
	if !ok {
		return nil, newError(KindUnknownVehicleCategory, "category", "no rates configured for vehicle category %q", trip.Category)
	}

	b := newBreakdown(trip, cfg)
	b.BaseFare, b.DistanceFee, b.TimeFee = baseFareComponents(rates, trip.DistanceMiles, trip.DurationMinutes, cfg.ServicePolicies)

	applyFees(b, trip, cfg, 1)
	b.Subtotal = b.BaseFare + b.DistanceFee + b.TimeFee + b.FeesTotal

	applySurge(b, trip, cfg)
	return b, nil
}

func calculateOneWay(trip *TripSpec, cfg *PricingConfig) (*PriceBreakdown, error) {
	b, err := priceLeg(trip, cfg)
	if err != nil {
		return nil, err
	}

	total := applyCorporateDiscount(b, trip.CorporateTier, cfg, b.TotalAfterSurge)
	b.TotalAfterDiscounts = total

	minimumFare := cfg.VehicleTypes[trip.Category].MinimumFare
	if err := finishBreakdown(b, cfg, minimumFare, total); err != nil {
		return nil, err
	}
	return b, nil
}

// calculateHourly prices by-the-hour hire. Hours below the configured
// minimum are billed at the minimum; hours above the maximum are
// rejected. Distance beyond the included per-hour allowance is billed
// at the upper per-mile band.
func calculateHourly(trip *TripSpec, cfg *PricingConfig) (*PriceBreakdown, error) {
	hourlyRate, ok := cfg.HourlySettings.Rates[trip.Category]
	if !ok {
		return nil, newError(KindUnknownVehicleCategory, "category", "no hourly rate configured for vehicle category %q", trip.Category)
	}
	rates, ok := cfg.VehicleTypes[trip.Category]
	if !ok {
		return nil, newError(KindUnknownVehicleCategory, "category", "no rates configured for vehicle category %q", trip.Category)
	}

	hours := math.Max(trip.Hours, cfg.HourlySettings.MinimumHours)
	if limit := cfg.HourlySettings.MaximumHours; limit > 0 && trip.Hours > limit {
		return nil, newError(KindInvalidHours, "hours", "%v hours exceeds the hourly hire maximum of %v", trip.Hours, limit)
	}

	b := newBreakdown(trip, cfg)
	b.BaseFare = hourlyRate * hours

	included := hours * cfg.HourlySettings.DistanceLimitPerHour
	if excess := trip.DistanceMiles - included; excess > 0 {
		b.DistanceFee = excess * rates.PerMileAfter6
	}

	applyFees(b, trip, cfg, 1)
	b.Subtotal = b.BaseFare + b.DistanceFee + b.TimeFee + b.FeesTotal

	applySurge(b, trip, cfg)

	total := applyCorporateDiscount(b, trip.CorporateTier, cfg, b.TotalAfterSurge)
	b.TotalAfterDiscounts = total

	if err := finishBreakdown(b, cfg, rates.MinimumFare, total); err != nil {
		return nil, err
	}
	return b, nil
}

// calculateReturn prices both legs independently, then applies the
// corporate and return discounts to the combined total. The minimum
// fare floor uses the higher of the two legs' floors, and rounding
// happens once on the combined price.
func calculateReturn(trip *TripSpec, cfg *PricingConfig) (*PriceBreakdown, error) {
	gap := trip.ReturnLeg.ScheduledAt.Sub(trip.ScheduledAt).Hours()
	if gap < cfg.ReturnSettings.MinimumHoursBetween {
		return nil, newError(KindInvalidReturnSpacing, "return_leg.scheduled_at",
			"return leg is %.1f hours after the outbound leg, minimum is %v", gap, cfg.ReturnSettings.MinimumHoursBetween)
	}

	outbound := *trip
	outbound.TripType = TripTypeOneWay
	outbound.ReturnLeg = nil

	inbound := *trip.ReturnLeg
	inbound.TripType = TripTypeOneWay
	if inbound.Category == "" {
		inbound.Category = trip.Category
	}

	leg1, err := priceLeg(&outbound, cfg)
	if err != nil {
		return nil, err
	}
	leg2, err := priceLeg(&inbound, cfg)
	if err != nil {
		return nil, err
	}

	b := newBreakdown(trip, cfg)
	b.Legs = []*PriceBreakdown{leg1, leg2}
	b.BaseFare = leg1.BaseFare + leg2.BaseFare
	b.DistanceFee = leg1.DistanceFee + leg2.DistanceFee
	b.TimeFee = leg1.TimeFee + leg2.TimeFee
	b.FeesTotal = leg1.FeesTotal + leg2.FeesTotal
	b.Subtotal = leg1.Subtotal + leg2.Subtotal
	b.TotalAfterSurge = leg1.TotalAfterSurge + leg2.TotalAfterSurge
	b.Warnings = append(append(b.Warnings, leg1.Warnings...), leg2.Warnings...)

	total := applyCorporateDiscount(b, trip.CorporateTier, cfg, b.TotalAfterSurge)
	total = applyReturnDiscount(b, cfg, total)
	b.TotalAfterDiscounts = total

	minimumFare := math.Max(
		cfg.VehicleTypes[outbound.Category].MinimumFare,
		cfg.VehicleTypes[inbound.Category].MinimumFare,
	)
	if err := finishBreakdown(b, cfg, minimumFare, total); err != nil {
		return nil, err
	}
	return b, nil
}

// calculateFleet prices one shared route across several vehicles. Each
// category's per-vehicle fare multiplies by its count, route fees
// multiply by the whole fleet, and the volume discount applies after
// the corporate one. The floor is the sum of every vehicle's minimum
// fare.
func calculateFleet(trip *TripSpec, cfg *PricingConfig) (*PriceBreakdown, error) {
	categories := make([]Category, 0, len(trip.VehicleCounts))
	for category, count := range trip.VehicleCounts {
		if count > 0 {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	b := newBreakdown(trip, cfg)

	var minimumFare float64
	for _, category := range categories {
		rates, ok := cfg.VehicleTypes[category]
		if !ok {
			return nil, newError(KindUnknownVehicleCategory, "vehicle_counts", "no rates configured for vehicle category %q", category)
		}

		count := trip.VehicleCounts[category]
		base, distance, timeFee := baseFareComponents(rates, trip.DistanceMiles, trip.DurationMinutes, cfg.ServicePolicies)

		b.BaseFare += base * float64(count)
		b.DistanceFee += distance * float64(count)
		b.TimeFee += timeFee * float64(count)
		b.VehicleItems = append(b.VehicleItems, LineItem{
			Code:     "vehicle_" + string(category),
			Label:    fmt.Sprintf("%s x%d", category, count),
			Amount:   (base + distance + timeFee) * float64(count),
			Quantity: count,
		})
		minimumFare += rates.MinimumFare * float64(count)
	}

	applyFees(b, trip, cfg, trip.TotalVehicles())
	b.Subtotal = b.BaseFare + b.DistanceFee + b.TimeFee + b.FeesTotal

	applySurge(b, trip, cfg)

	total := applyCorporateDiscount(b, trip.CorporateTier, cfg, b.TotalAfterSurge)
	total = applyFleetDiscount(b, trip, cfg, total)
	b.TotalAfterDiscounts = total

	if err := finishBreakdown(b, cfg, minimumFare, total); err != nil {
		return nil, err
	}
	return b, nil
}

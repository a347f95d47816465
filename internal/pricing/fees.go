package pricing

import (
	"fmt"
	"math"
	"sort"
)

// applyFees appends all per-leg fee line items to the breakdown in a
// fixed order: airport pickup, airport dropoff, zone fees, waiting,
// multi-stop, premium services. Unknown airport, zone, service or
// option codes charge zero and record a warning instead of failing the
// quote.
func applyFees(b *PriceBreakdown, trip *TripSpec, cfg *PricingConfig, vehicleQuantity int) {
	if trip.PickupAirport != "" {
		if fee, ok := cfg.AirportFees[trip.PickupAirport]; ok {
			b.addFee("airport_pickup", fmt.Sprintf("Airport pickup (%s)", trip.PickupAirport), fee.PickupFee*float64(vehicleQuantity), vehicleQuantity)
		} else {
			b.addWarning(fmt.Sprintf("no airport fee configured for pickup code %q, charged zero", trip.PickupAirport))
		}
	}

	if trip.DropoffAirport != "" {
		if fee, ok := cfg.AirportFees[trip.DropoffAirport]; ok {
			b.addFee("airport_dropoff", fmt.Sprintf("Airport dropoff (%s)", trip.DropoffAirport), fee.DropoffFee*float64(vehicleQuantity), vehicleQuantity)
		} else {
			b.addWarning(fmt.Sprintf("no airport fee configured for dropoff code %q, charged zero", trip.DropoffAirport))
		}
	}

	for _, zone := range uniqueSorted(trip.ZonesCrossed) {
		if fee, ok := cfg.ZoneFees[zone]; ok {
			b.addFee("zone_"+zone, fmt.Sprintf("%s zone (%s)", fee.Type, zone), fee.Fee*float64(vehicleQuantity), vehicleQuantity)
		} else {
			b.addWarning(fmt.Sprintf("no zone fee configured for code %q, charged zero", zone))
		}
	}

	if waiting := waitingFee(trip, cfg); waiting > 0 {
		b.addFee("waiting", "Waiting time", waiting*float64(vehicleQuantity), vehicleQuantity)
	}

	if trip.StopCount > 0 {
		amount := float64(trip.StopCount) * cfg.ServicePolicies.MultiStopFee * float64(vehicleQuantity)
		b.addFee("multi_stop", fmt.Sprintf("Additional stops (%d)", trip.StopCount), amount, vehicleQuantity)
	}

	applyPremiumServices(b, trip, cfg)
}

// waitingFee charges waiting time beyond the free allowance at the
// hourly waiting rate, pro rata per minute. The airport allowance wins
// over the normal one when the wait happens at a pickup airport, and a
// per-airport allowance wins over the global airport policy.
func waitingFee(trip *TripSpec, cfg *PricingConfig) float64 {
	free := cfg.ServicePolicies.FreeWaitingNormalMinutes
	if trip.IsAirportWait {
		free = cfg.ServicePolicies.FreeWaitingAirportMinutes
		if trip.PickupAirport != "" {
			if airport, ok := cfg.AirportFees[trip.PickupAirport]; ok && airport.FreeWaitMinutes > 0 {
				free = airport.FreeWaitMinutes
			}
		}
	}

	billable := math.Max(0, trip.WaitingMinutes-free)
	return billable * cfg.ServicePolicies.WaitingRatePerHour / 60.0
}

// applyPremiumServices charges each selected add-on option. On fleet
// bookings with per-vehicle multiplication enabled, a selection scoped
// to a category multiplies by that category's vehicle count, and an
// unscoped selection multiplies by the whole fleet.
func applyPremiumServices(b *PriceBreakdown, trip *TripSpec, cfg *PricingConfig) {
	for _, sel := range trip.SelectedServices {
		service, ok := cfg.PremiumServices[sel.Service]
		if !ok {
			b.addWarning(fmt.Sprintf("no premium service configured for %q, charged zero", sel.Service))
			continue
		}
		option, ok := service.Options[sel.Option]
		if !ok {
			b.addWarning(fmt.Sprintf("premium service %q has no option %q, charged zero", sel.Service, sel.Option))
			continue
		}

		quantity := 1
		if trip.TripType == TripTypeFleet && cfg.FleetSettings.PremiumServicesMultiply {
			if sel.Category != "" {
				quantity = trip.VehicleCounts[sel.Category]
			} else {
				quantity = trip.TotalVehicles()
			}
			if quantity == 0 {
				continue
			}
		}

		code := "service_" + sel.Service + "_" + sel.Option
		b.addFee(code, fmt.Sprintf("%s: %s", service.Name, option.Label), option.Price*float64(quantity), quantity)
	}
}

// uniqueSorted deduplicates codes and sorts them so the same trip
// always produces fee lines in the same order.
func uniqueSorted(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

package pricing

import (
	"time"
)

// TripType identifies how a booking is priced
type TripType string

const (
	TripTypeOneWay TripType = "oneway"
	TripTypeReturn TripType = "return"
	TripTypeHourly TripType = "hourly"
	TripTypeFleet  TripType = "fleet"
)

// CorporateTier identifies a corporate discount tier
type CorporateTier string

const (
	CorporateTierNone CorporateTier = ""
	CorporateTier1    CorporateTier = "tier1"
	CorporateTier2    CorporateTier = "tier2"
)

// ServiceSelection is one selected premium service option. Category is
// only meaningful on fleet bookings, where it scopes the service to the
// vehicles of that category.
type ServiceSelection struct {
	Service  string   `json:"service" binding:"required"`
	Option   string   `json:"option" binding:"required"`
	Category Category `json:"category,omitempty"`
}

// TripSpec describes one trip to be priced. It is constructed by the
// caller (the booking form) and never mutated by the engine.
type TripSpec struct {
	TripType        TripType `json:"trip_type" binding:"required,oneof=oneway return hourly fleet"`
	Category        Category `json:"category"`
	DistanceMiles   float64  `json:"distance_miles"`
	DurationMinutes float64  `json:"duration_minutes"`

	// Hours applies to hourly trips only.
	Hours float64 `json:"hours,omitempty"`

	PickupAirport  string   `json:"pickup_airport,omitempty"`
	DropoffAirport string   `json:"dropoff_airport,omitempty"`
	ZonesCrossed   []string `json:"zones_crossed,omitempty"`

	// StopCount excludes the final destination.
	StopCount      int     `json:"stop_count"`
	WaitingMinutes float64 `json:"waiting_minutes"`
	IsAirportWait  bool    `json:"is_airport_wait"`

	SelectedServices []ServiceSelection `json:"selected_services,omitempty"`

	ScheduledAt  time.Time `json:"scheduled_at" binding:"required"`
	ActiveEvents []string  `json:"active_events,omitempty"`

	CorporateTier CorporateTier `json:"corporate_tier,omitempty" binding:"omitempty,oneof=tier1 tier2"`

	// VehicleCounts applies to fleet trips only.
	VehicleCounts map[Category]int `json:"vehicle_counts,omitempty"`

	// ReturnLeg is present only when TripType is return.
	ReturnLeg *TripSpec `json:"return_leg,omitempty"`
}

// Validate checks the trip for structurally invalid input. Fatal
// violations abort the calculation before any fare math runs.
func (t *TripSpec) Validate() error {
	if t.DistanceMiles < 0 {
		return newError(KindNegativeInput, "distance_miles", "distance cannot be negative: %v", t.DistanceMiles)
	}
	if t.DurationMinutes < 0 {
		return newError(KindNegativeInput, "duration_minutes", "duration cannot be negative: %v", t.DurationMinutes)
	}
	if t.WaitingMinutes < 0 {
		return newError(KindNegativeInput, "waiting_minutes", "waiting time cannot be negative: %v", t.WaitingMinutes)
	}
	if t.StopCount < 0 {
		return newError(KindNegativeInput, "stop_count", "stop count cannot be negative: %d", t.StopCount)
	}

	switch t.TripType {
	case TripTypeHourly:
		if t.Hours < 0 {
			return newError(KindNegativeInput, "hours", "hours cannot be negative: %v", t.Hours)
		}
	case TripTypeReturn:
		if t.ReturnLeg == nil {
			return newError(KindInvalidReturnSpacing, "return_leg", "return trip requires a return leg")
		}
		if err := t.ReturnLeg.Validate(); err != nil {
			return err
		}
	case TripTypeFleet:
		if t.TotalVehicles() == 0 {
			return newError(KindInvalidHours, "vehicle_counts", "fleet trip requires at least one vehicle")
		}
		for category, count := range t.VehicleCounts {
			if count < 0 {
				return newError(KindNegativeInput, "vehicle_counts", "vehicle count for %s cannot be negative: %d", category, count)
			}
		}
	}

	return nil
}

// TotalVehicles returns the vehicle count across all categories. A
// non-fleet trip counts as a single vehicle.
func (t *TripSpec) TotalVehicles() int {
	if t.TripType != TripTypeFleet {
		return 1
	}
	total := 0
	for _, count := range t.VehicleCounts {
		if count > 0 {
			total += count
		}
	}
	return total
}

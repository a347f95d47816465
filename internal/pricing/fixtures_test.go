package pricing

import (
	"time"

	"github.com/google/uuid"
)

// testConfig returns a fully populated configuration used across the
// engine tests. Values are chosen so expected prices work out to exact
// decimals.
func testConfig() *PricingConfig {
	return &PricingConfig{
		ID:      uuid.New(),
		Version: 7,
		VehicleTypes: map[Category]VehicleTypeRates{
			"executive": {
				BaseFare:      30,
				PerMileFirst6: 3,
				PerMileAfter6: 2.5,
				PerMinute:     0.5,
				MinimumFare:   45,
			},
			"luxury": {
				BaseFare:      50,
				PerMileFirst6: 4.5,
				PerMileAfter6: 4,
				PerMinute:     0.8,
				MinimumFare:   70,
			},
		},
		AirportFees: map[string]AirportFee{
			"LHR": {PickupFee: 15, DropoffFee: 25, FreeWaitMinutes: 45},
			"LGW": {PickupFee: 12, DropoffFee: 20},
		},
		ZoneFees: map[string]ZoneFee{
			"congestion_charge": {Fee: 15, Type: ZoneTypeCongestion},
			"dartford":          {Fee: 2.5, Type: ZoneTypeToll},
		},
		TimeMultipliers: map[string]TimeMultiplier{
			"night": {Label: "Night rate", Value: 1.2, StartTime: "22:00", EndTime: "06:00", Active: true},
			"peak":  {Label: "Peak hours", Value: 1.3, StartTime: "07:00", EndTime: "09:30", Active: false},
		},
		EventMultipliers: map[string]EventMultiplier{
			"nye":     {Label: "New Year's Eve", Value: 1.5, Active: true},
			"airshow": {Label: "Airshow weekend", Value: 1.25, Active: false},
		},
		PremiumServices: map[string]PremiumService{
			"refreshments": {
				Name: "Refreshments",
				Options: map[string]PremiumServiceOption{
					"standard": {Label: "Standard", Price: 10},
					"luxury":   {Label: "Luxury", Price: 25},
				},
			},
			"child_seat": {
				Name: "Child seat",
				Options: map[string]PremiumServiceOption{
					"infant": {Label: "Infant carrier", Price: 8},
				},
			},
		},
		ServicePolicies: ServicePolicies{
			FreeWaitingNormalMinutes:  15,
			FreeWaitingAirportMinutes: 30,
			WaitingRatePerHour:        30,
			MultiStopFee:              10,
			MinimumDistanceMiles:      1,
			MinimumTimeMinutes:        10,
		},
		GeneralPolicies: GeneralPolicies{
			Rounding:     RoundingPolicy{To: 0, Direction: RoundNearest},
			Cancellation: CancellationPolicy{FreeHours: 24, ChargeRate: 0.5},
			CorporateDiscounts: CorporateDiscounts{
				Tier1: 0.10,
				Tier2: 0.15,
			},
		},
		ReturnSettings: ReturnSettings{
			DiscountRate:        0.10,
			MinimumHoursBetween: 3,
		},
		HourlySettings: HourlySettings{
			Rates:                map[Category]float64{"executive": 55, "luxury": 80},
			MinimumHours:         3,
			MaximumHours:         12,
			DistanceLimitPerHour: 10,
			AreaRestriction:      "M25",
		},
		DailySettings: DailySettings{
			Rates:               map[Category]float64{"executive": 400, "luxury": 600},
			MinimumDays:         1,
			MaximumDays:         7,
			HoursPerDay:         10,
			DistanceLimitPerDay: 200,
		},
		FleetSettings: FleetSettings{
			Discounts: FleetDiscounts{
				Tier1: FleetDiscountTier{MinVehicles: 3, DiscountRate: 0.05},
				Tier2: FleetDiscountTier{MinVehicles: 5, DiscountRate: 0.10},
			},
			PremiumServicesMultiply: true,
		},
		IsActive:  true,
		UpdatedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}
}

// middayTrip returns a plain executive one-way trip scheduled outside
// every surge window.
func middayTrip() *TripSpec {
	return &TripSpec{
		TripType:        TripTypeOneWay,
		Category:        "executive",
		DistanceMiles:   15.5,
		DurationMinutes: 45,
		ScheduledAt:     time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC),
	}
}

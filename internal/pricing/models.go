package pricing

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Category identifies a vehicle category (executive, luxury, van, suv, ...)
type Category string

// Zone fee types
const (
	ZoneTypeCongestion = "congestion"
	ZoneTypeToll       = "toll"
)

// Rounding directions
const (
	RoundUp      = "up"
	RoundDown    = "down"
	RoundNearest = "nearest"
)

// VehicleTypeRates holds the per-category fare rates.
// Distance is billed in two bands: the first 6 miles and everything after.
type VehicleTypeRates struct {
	BaseFare      float64 `json:"base_fare"`
	PerMileFirst6 float64 `json:"per_mile_first_6"`
	PerMileAfter6 float64 `json:"per_mile_after_6"`
	PerMinute     float64 `json:"per_minute"`
	MinimumFare   float64 `json:"minimum_fare"`
}

// AirportFee holds pickup/dropoff surcharges for one airport
type AirportFee struct {
	PickupFee       float64 `json:"pickup_fee"`
	DropoffFee      float64 `json:"dropoff_fee"`
	FreeWaitMinutes float64 `json:"free_wait_minutes"`
}

// ZoneFee is a flat congestion or toll charge for crossing a zone
type ZoneFee struct {
	Fee  float64 `json:"fee"`
	Type string  `json:"type"`
}

// TimeMultiplier is a surge factor active inside a local clock window.
// An empty window means the multiplier applies whenever it is active.
// Windows may wrap midnight (e.g. 22:00-06:00).
type TimeMultiplier struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	StartTime string  `json:"start_time,omitempty"`
	EndTime   string  `json:"end_time,omitempty"`
	Active    bool    `json:"active"`
}

// EventMultiplier is an admin-toggled surge factor for a named event
type EventMultiplier struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Active bool    `json:"active"`
}

// PremiumServiceOption is a single selectable add-on with a flat price
type PremiumServiceOption struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// PremiumService groups add-on options under one service
type PremiumService struct {
	Name    string                          `json:"name"`
	Options map[string]PremiumServiceOption `json:"options"`
}

// ServicePolicies holds waiting, stop and minimum-trip rules
type ServicePolicies struct {
	FreeWaitingNormalMinutes  float64 `json:"free_waiting_normal_minutes"`
	FreeWaitingAirportMinutes float64 `json:"free_waiting_airport_minutes"`
	WaitingRatePerHour        float64 `json:"waiting_rate_per_hour"`
	MultiStopFee              float64 `json:"multi_stop_fee"`
	MinimumDistanceMiles      float64 `json:"minimum_distance_miles"`
	MinimumTimeMinutes        float64 `json:"minimum_time_minutes"`
}

// RoundingPolicy controls the final price rounding step
type RoundingPolicy struct {
	To        float64 `json:"to"`
	Direction string  `json:"direction"`
}

// CancellationPolicy holds the free-cancellation window and late charge rate
type CancellationPolicy struct {
	FreeHours  float64 `json:"free_hours"`
	ChargeRate float64 `json:"charge_rate"`
}

// CorporateDiscounts holds the two corporate tier rates as fractions 0-1
type CorporateDiscounts struct {
	Tier1 float64 `json:"tier1"`
	Tier2 float64 `json:"tier2"`
}

// GeneralPolicies holds rounding, cancellation and corporate discount rules
type GeneralPolicies struct {
	Rounding           RoundingPolicy     `json:"rounding"`
	Cancellation       CancellationPolicy `json:"cancellation"`
	CorporateDiscounts CorporateDiscounts `json:"corporate_discounts"`
}

// ReturnSettings holds the return-trip discount and leg spacing constraint
type ReturnSettings struct {
	DiscountRate        float64 `json:"discount_rate"`
	MinimumHoursBetween float64 `json:"minimum_hours_between"`
}

// HourlySettings holds hourly-hire rates and constraints
type HourlySettings struct {
	Rates                map[Category]float64 `json:"rates"`
	MinimumHours         float64              `json:"minimum_hours"`
	MaximumHours         float64              `json:"maximum_hours"`
	DistanceLimitPerHour float64              `json:"distance_limit_per_hour"`
	AreaRestriction      string               `json:"area_restriction"`
}

// DailySettings holds daily-hire rates and constraints. Daily hire is
// configurable through the admin API but has no quote path yet.
type DailySettings struct {
	Rates               map[Category]float64 `json:"rates"`
	MinimumDays         int                  `json:"minimum_days"`
	MaximumDays         int                  `json:"maximum_days"`
	HoursPerDay         int                  `json:"hours_per_day"`
	DistanceLimitPerDay float64              `json:"distance_limit_per_day"`
	AreaRestriction     string               `json:"area_restriction"`
}

// FleetDiscountTier is one volume discount step
type FleetDiscountTier struct {
	MinVehicles  int     `json:"min_vehicles"`
	DiscountRate float64 `json:"discount_rate"`
}

// FleetDiscounts holds the configured volume tiers
type FleetDiscounts struct {
	Tier1 FleetDiscountTier `json:"tier1"`
	Tier2 FleetDiscountTier `json:"tier2"`
}

// FleetSettings holds fleet booking discounts and service multiplication
type FleetSettings struct {
	Discounts               FleetDiscounts `json:"discounts"`
	PremiumServicesMultiply bool           `json:"premium_services_multiply"`
}

// Tiers returns the volume tiers ordered by ascending vehicle threshold
func (f FleetSettings) Tiers() []FleetDiscountTier {
	tiers := []FleetDiscountTier{f.Discounts.Tier1, f.Discounts.Tier2}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinVehicles < tiers[j].MinVehicles })
	return tiers
}

// PricingConfig is an immutable versioned snapshot of the full pricing
// configuration. The engine only reads it; admin edits produce a new
// version through the repository, never an in-place mutation.
type PricingConfig struct {
	ID               uuid.UUID                     `json:"id"`
	Version          int                           `json:"version"`
	VehicleTypes     map[Category]VehicleTypeRates `json:"vehicle_types"`
	AirportFees      map[string]AirportFee         `json:"airport_fees"`
	ZoneFees         map[string]ZoneFee            `json:"zone_fees"`
	TimeMultipliers  map[string]TimeMultiplier     `json:"time_multipliers"`
	EventMultipliers map[string]EventMultiplier    `json:"event_multipliers"`
	PremiumServices  map[string]PremiumService     `json:"premium_services"`
	ServicePolicies  ServicePolicies               `json:"service_policies"`
	GeneralPolicies  GeneralPolicies               `json:"general_policies"`
	ReturnSettings   ReturnSettings                `json:"return_settings"`
	HourlySettings   HourlySettings                `json:"hourly_settings"`
	DailySettings    DailySettings                 `json:"daily_settings"`
	FleetSettings    FleetSettings                 `json:"fleet_settings"`
	IsActive         bool                          `json:"is_active"`
	UpdatedAt        time.Time                     `json:"updated_at"`
}

// AuditLog records one admin configuration edit
type AuditLog struct {
	ID        uuid.UUID              `json:"id"`
	ConfigID  uuid.UUID              `json:"config_id"`
	Section   string                 `json:"section"`
	Action    string                 `json:"action"`
	Actor     string                 `json:"actor,omitempty"`
	NewValues map[string]interface{} `json:"new_values,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

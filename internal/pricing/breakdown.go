package pricing

// Currency is the quoting currency for all prices
const Currency = "GBP"

// LineItem is one itemized charge or discount. Discount amounts are
// negative. Quantity is set when the same charge applies per vehicle.
type LineItem struct {
	Code     string  `json:"code"`
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
	Quantity int     `json:"quantity,omitempty"`
}

// CommissionSplit is the revenue split of the final price
type CommissionSplit struct {
	PlatformFee        float64 `json:"platform_fee"`
	OperatorCommission float64 `json:"operator_commission"`
	DriverPayout       float64 `json:"driver_payout"`
}

// PriceBreakdown is the itemized result of a calculation. Every
// intermediate total is kept so the quote can be displayed and audited
// line by line.
type PriceBreakdown struct {
	TripType      TripType `json:"trip_type"`
	Category      Category `json:"category,omitempty"`
	Currency      string   `json:"currency"`
	ConfigVersion int      `json:"config_version"`

	BaseFare    float64    `json:"base_fare"`
	DistanceFee float64    `json:"distance_fee"`
	TimeFee     float64    `json:"time_fee"`
	Fees        []LineItem `json:"fees,omitempty"`
	FeesTotal   float64    `json:"fees_total"`

	// VehicleItems itemizes the per-category vehicle charges on fleet
	// bookings.
	VehicleItems []LineItem `json:"vehicle_items,omitempty"`

	// Legs holds the per-leg breakdowns of a return booking.
	Legs []*PriceBreakdown `json:"legs,omitempty"`

	// Subtotal is base fare plus distance, time and all fees, before
	// surge and discounts.
	Subtotal float64 `json:"subtotal"`

	SurgeMultiplier float64    `json:"surge_multiplier"`
	SurgeItems      []LineItem `json:"surge_items,omitempty"`
	TotalAfterSurge float64    `json:"total_after_surge"`

	Discounts           []LineItem `json:"discounts,omitempty"`
	TotalAfterDiscounts float64    `json:"total_after_discounts"`

	MinimumFare        float64 `json:"minimum_fare"`
	MinimumFareApplied bool    `json:"minimum_fare_applied"`

	// RoundedFrom holds the pre-rounding total when rounding changed it.
	RoundedFrom float64 `json:"rounded_from,omitempty"`
	FinalPrice  float64 `json:"final_price"`

	Commission CommissionSplit `json:"commission"`

	// Warnings lists non-fatal issues hit during calculation, such as
	// unrecognized airport or zone codes charged at zero.
	Warnings []string `json:"warnings,omitempty"`
}

func newBreakdown(trip *TripSpec, cfg *PricingConfig) *PriceBreakdown {
	return &PriceBreakdown{
		TripType:        trip.TripType,
		Category:        trip.Category,
		Currency:        Currency,
		ConfigVersion:   cfg.Version,
		SurgeMultiplier: 1.0,
	}
}

func (b *PriceBreakdown) addFee(code, label string, amount float64, quantity int) {
	b.Fees = append(b.Fees, LineItem{Code: code, Label: label, Amount: amount, Quantity: quantity})
	b.FeesTotal += amount
}

func (b *PriceBreakdown) addDiscount(code, label string, amount float64) {
	b.Discounts = append(b.Discounts, LineItem{Code: code, Label: label, Amount: amount})
}

func (b *PriceBreakdown) addWarning(msg string) {
	b.Warnings = append(b.Warnings, msg)
}

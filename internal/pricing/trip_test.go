package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripSpecValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*TripSpec)
		wantKind ErrorKind
	}{
		{"valid trip", func(trip *TripSpec) {}, ""},
		{"negative distance", func(trip *TripSpec) { trip.DistanceMiles = -0.1 }, KindNegativeInput},
		{"negative duration", func(trip *TripSpec) { trip.DurationMinutes = -5 }, KindNegativeInput},
		{"negative waiting", func(trip *TripSpec) { trip.WaitingMinutes = -1 }, KindNegativeInput},
		{"negative stops", func(trip *TripSpec) { trip.StopCount = -1 }, KindNegativeInput},
		{"negative hourly hours", func(trip *TripSpec) {
			trip.TripType = TripTypeHourly
			trip.Hours = -2
		}, KindNegativeInput},
		{"return without leg", func(trip *TripSpec) { trip.TripType = TripTypeReturn }, KindInvalidReturnSpacing},
		{"return leg with negative distance", func(trip *TripSpec) {
			trip.TripType = TripTypeReturn
			leg := middayTrip()
			leg.DistanceMiles = -3
			trip.ReturnLeg = leg
		}, KindNegativeInput},
		{"fleet without vehicles", func(trip *TripSpec) {
			trip.TripType = TripTypeFleet
			trip.VehicleCounts = nil
		}, KindInvalidHours},
		{"fleet with negative count", func(trip *TripSpec) {
			trip.TripType = TripTypeFleet
			trip.VehicleCounts = map[Category]int{"executive": 2, "luxury": -1}
		}, KindNegativeInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := middayTrip()
			tt.mutate(trip)

			err := trip.Validate()
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsKind(err, tt.wantKind))
		})
	}
}

func TestTotalVehicles(t *testing.T) {
	trip := middayTrip()
	assert.Equal(t, 1, trip.TotalVehicles())

	trip.TripType = TripTypeFleet
	trip.VehicleCounts = map[Category]int{"executive": 3, "luxury": 2, "van": 0}
	assert.Equal(t, 5, trip.TotalVehicles())
}

func TestErrorFormatting(t *testing.T) {
	err := newError(KindNegativeInput, "distance_miles", "distance cannot be negative: %v", -2.0)

	assert.Contains(t, err.Error(), "negative_input_value")
	assert.Contains(t, err.Error(), "distance_miles")
	assert.True(t, IsKind(err, KindNegativeInput))
	assert.False(t, IsKind(err, KindInvalidHours))
}

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundPrice(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		policy    RoundingPolicy
		want      float64
		wantError bool
	}{
		{"disabled when increment is zero", 94.25, RoundingPolicy{To: 0, Direction: RoundUp}, 94.25, false},
		{"up", 118, RoundingPolicy{To: 5, Direction: RoundUp}, 120, false},
		{"up on exact multiple is a no-op", 120, RoundingPolicy{To: 5, Direction: RoundUp}, 120, false},
		{"down", 118, RoundingPolicy{To: 5, Direction: RoundDown}, 115, false},
		{"nearest rounds down", 117.4, RoundingPolicy{To: 5, Direction: RoundNearest}, 115, false},
		{"nearest rounds up", 118.2, RoundingPolicy{To: 5, Direction: RoundNearest}, 120, false},
		{"pound increment", 94.25, RoundingPolicy{To: 1, Direction: RoundUp}, 95, false},
		{"invalid direction", 118, RoundingPolicy{To: 5, Direction: "out"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := roundPrice(tt.value, tt.policy)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, IsKind(err, KindInvalidRounding))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, priceDelta)
		})
	}
}

func TestRoundPrice_Idempotent(t *testing.T) {
	policy := RoundingPolicy{To: 5, Direction: RoundUp}

	once, err := roundPrice(94.25, policy)
	require.NoError(t, err)
	twice, err := roundPrice(once, policy)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestMinimumFareRunsAfterDiscounts(t *testing.T) {
	cfg := testConfig()
	trip := middayTrip()
	trip.DistanceMiles = 3
	trip.DurationMinutes = 15
	trip.CorporateTier = CorporateTier2

	// 30 + 9 + 7.5 = 46.5 clears the floor, but 15% off drags it to
	// 39.525, so the floor lifts the final price back to 45.
	b, err := Calculate(trip, cfg)
	require.NoError(t, err)

	assert.InDelta(t, 39.525, b.TotalAfterDiscounts, priceDelta)
	assert.True(t, b.MinimumFareApplied)
	assert.InDelta(t, 45.0, b.FinalPrice, priceDelta)
}

func TestSplitCommission(t *testing.T) {
	split := splitCommission(100)

	assert.InDelta(t, 10.0, split.PlatformFee, priceDelta)
	assert.InDelta(t, 18.0, split.OperatorCommission, priceDelta)
	assert.InDelta(t, 72.0, split.DriverPayout, priceDelta)

	// The three shares always reassemble the final price.
	total := split.PlatformFee + split.OperatorCommission + split.DriverPayout
	assert.InDelta(t, 100.0, total, priceDelta)
}

func TestCancellationFee(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name  string
		hours float64
		want  float64
	}{
		{"well before the window", 72, 0},
		{"exactly at the boundary is free", 24, 0},
		{"inside the window", 23, 50},
		{"last minute", 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CancellationFee(cfg, 100, tt.hours), priceDelta)
		})
	}
}

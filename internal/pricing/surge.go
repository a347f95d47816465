package pricing

import (
	"fmt"
	"sort"
	"time"
)

// applySurge multiplies the subtotal by every active time-window
// multiplier matching the scheduled local time and every active event
// multiplier named by the trip. Multipliers stack multiplicatively.
func applySurge(b *PriceBreakdown, trip *TripSpec, cfg *PricingConfig) {
	multiplier := 1.0

	for _, key := range sortedKeys(cfg.TimeMultipliers) {
		tm := cfg.TimeMultipliers[key]
		if !tm.Active || tm.Value <= 0 {
			continue
		}
		if !windowContains(tm.StartTime, tm.EndTime, trip.ScheduledAt) {
			continue
		}
		multiplier *= tm.Value
		b.SurgeItems = append(b.SurgeItems, LineItem{Code: "time_" + key, Label: tm.Label, Amount: tm.Value})
	}

	active := make(map[string]struct{}, len(trip.ActiveEvents))
	for _, event := range trip.ActiveEvents {
		active[event] = struct{}{}
	}
	for _, key := range sortedKeys(cfg.EventMultipliers) {
		em := cfg.EventMultipliers[key]
		if !em.Active || em.Value <= 0 {
			continue
		}
		if _, ok := active[key]; !ok {
			continue
		}
		multiplier *= em.Value
		b.SurgeItems = append(b.SurgeItems, LineItem{Code: "event_" + key, Label: em.Label, Amount: em.Value})
	}

	b.SurgeMultiplier = multiplier
	b.TotalAfterSurge = b.Subtotal * multiplier
}

// windowContains reports whether t's local clock time falls inside the
// half-open window [start, end). An empty window matches every time of
// day. Windows where end precedes start wrap midnight.
func windowContains(start, end string, t time.Time) bool {
	if start == "" || end == "" {
		return true
	}
	startMin, okStart := parseClock(start)
	endMin, okEnd := parseClock(end)
	if !okStart || !okEnd {
		return false
	}

	minute := t.Hour()*60 + t.Minute()

	if startMin <= endMin {
		return minute >= startMin && minute < endMin
	}
	// Wraps midnight, e.g. 22:00-06:00.
	return minute >= startMin || minute < endMin
}

// parseClock parses an HH:MM string into minutes since midnight
func parseClock(s string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

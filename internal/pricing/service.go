package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/vantage-lane/pricing-engine/pkg/logger"
)

var (
	quotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_quotes_total",
			Help: "Total quote calculations by trip type and outcome",
		},
		[]string{"trip_type", "status"},
	)

	quoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pricing_quote_duration_seconds",
			Help:    "Quote calculation latency including config resolution",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Service coordinates config resolution, calculation and admin edits
type Service struct {
	resolver ConfigResolver
	repo     RepositoryInterface
}

// NewService creates a new pricing service
func NewService(resolver ConfigResolver, repo RepositoryInterface) *Service {
	return &Service{resolver: resolver, repo: repo}
}

// Quote prices a trip against the active configuration
func (s *Service) Quote(ctx context.Context, trip *TripSpec) (*PriceBreakdown, error) {
	start := time.Now()

	cfg, err := s.resolver.Resolve(ctx)
	if err != nil {
		quotesTotal.WithLabelValues(string(trip.TripType), "config_error").Inc()
		return nil, err
	}

	breakdown, err := Calculate(trip, cfg)
	quoteDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		quotesTotal.WithLabelValues(string(trip.TripType), "rejected").Inc()
		return nil, err
	}

	log := logger.WithContext(ctx)
	for _, warning := range breakdown.Warnings {
		log.Warn("pricing quote warning",
			zap.String("trip_type", string(trip.TripType)),
			zap.Int("config_version", breakdown.ConfigVersion),
			zap.String("warning", warning),
		)
	}

	quotesTotal.WithLabelValues(string(trip.TripType), "ok").Inc()
	return breakdown, nil
}

// GetConfig returns the active configuration snapshot
func (s *Service) GetConfig(ctx context.Context) (*PricingConfig, error) {
	return s.resolver.Resolve(ctx)
}

// CancellationQuote computes the fee for cancelling a booking priced at
// finalPrice with the given hours remaining before pickup
func (s *Service) CancellationQuote(ctx context.Context, finalPrice, hoursUntilPickup float64) (float64, error) {
	if finalPrice < 0 {
		return 0, newError(KindNegativeInput, "final_price", "final price cannot be negative: %v", finalPrice)
	}
	if hoursUntilPickup < 0 {
		hoursUntilPickup = 0
	}

	cfg, err := s.resolver.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	return CancellationFee(cfg, finalPrice, hoursUntilPickup), nil
}

// UpdateSection applies an admin edit to one configuration section and
// invalidates the snapshot cache
func (s *Service) UpdateSection(ctx context.Context, section string, payload json.RawMessage, actor string) (*PricingConfig, error) {
	if !ValidSection(section) {
		return nil, fmt.Errorf("unknown pricing config section %q", section)
	}

	cfg, err := s.repo.UpdateSection(ctx, section, payload, actor)
	if err != nil {
		return nil, err
	}

	if err := s.resolver.Invalidate(ctx); err != nil {
		// The TTL bounds how long the stale snapshot can survive.
		logger.WithContext(ctx).Warn("config cache invalidation failed after update",
			zap.String("section", section), zap.Error(err))
	}

	logger.WithContext(ctx).Info("pricing config section updated",
		zap.String("section", section),
		zap.String("actor", actor),
		zap.Int("version", cfg.Version),
	)

	return cfg, nil
}

// InvalidateCache drops the cached configuration snapshot
func (s *Service) InvalidateCache(ctx context.Context) error {
	return s.resolver.Invalidate(ctx)
}

// ListAuditLogs returns configuration edit history, newest first
func (s *Service) ListAuditLogs(ctx context.Context, limit, offset int) ([]*AuditLog, int64, error) {
	return s.repo.ListAuditLogs(ctx, limit, offset)
}

package pricing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Section names accepted by the admin update API, mapped to their
// JSONB columns. Map-valued sections are merged key by key so an admin
// can edit one vehicle type or one airport without resending the rest.
var sectionColumns = map[string]struct {
	column string
	merge  bool
}{
	"vehicle_types":     {"vehicle_types", true},
	"airport_fees":      {"airport_fees", true},
	"zone_fees":         {"zone_fees", true},
	"time_multipliers":  {"time_multipliers", true},
	"event_multipliers": {"event_multipliers", true},
	"premium_services":  {"premium_services", true},
	"service_policies":  {"service_policies", false},
	"general_policies":  {"general_policies", false},
	"return_settings":   {"return_settings", false},
	"hourly_settings":   {"hourly_settings", false},
	"daily_settings":    {"daily_settings", false},
	"fleet_settings":    {"fleet_settings", false},
}

// ValidSection reports whether the admin API accepts the section name
func ValidSection(section string) bool {
	_, ok := sectionColumns[section]
	return ok
}

// Repository handles database operations for pricing configuration
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new pricing repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const configColumns = `
	id, version, vehicle_types, airport_fees, zone_fees,
	time_multipliers, event_multipliers, premium_services,
	service_policies, general_policies, return_settings,
	hourly_settings, daily_settings, fleet_settings,
	is_active, updated_at
`

// GetActiveConfig returns the active pricing configuration
func (r *Repository) GetActiveConfig(ctx context.Context) (*PricingConfig, error) {
	query := `
		SELECT ` + configColumns + `
		FROM pricing_config
		WHERE is_active = true
		ORDER BY updated_at DESC
		LIMIT 1
	`

	row := r.db.QueryRow(ctx, query)
	return scanConfig(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfig(row rowScanner) (*PricingConfig, error) {
	var (
		cfg      PricingConfig
		sections = make([][]byte, 12)
	)

	err := row.Scan(
		&cfg.ID, &cfg.Version,
		&sections[0], &sections[1], &sections[2], &sections[3],
		&sections[4], &sections[5], &sections[6], &sections[7],
		&sections[8], &sections[9], &sections[10], &sections[11],
		&cfg.IsActive, &cfg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get active pricing config: %w", err)
	}

	targets := []any{
		&cfg.VehicleTypes, &cfg.AirportFees, &cfg.ZoneFees,
		&cfg.TimeMultipliers, &cfg.EventMultipliers, &cfg.PremiumServices,
		&cfg.ServicePolicies, &cfg.GeneralPolicies, &cfg.ReturnSettings,
		&cfg.HourlySettings, &cfg.DailySettings, &cfg.FleetSettings,
	}
	for i, raw := range sections {
		if len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, targets[i]); err != nil {
			return nil, fmt.Errorf("failed to parse pricing config section: %w", err)
		}
	}

	return &cfg, nil
}

// UpdateSection writes one section of the active configuration, bumps
// the version and records an audit entry, all in one transaction. The
// full updated configuration is returned.
func (r *Repository) UpdateSection(ctx context.Context, section string, payload json.RawMessage, actor string) (*PricingConfig, error) {
	target, ok := sectionColumns[section]
	if !ok {
		return nil, fmt.Errorf("unknown pricing config section %q", section)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	assignment := target.column + ` = $1::jsonb`
	if target.merge {
		assignment = target.column + ` = ` + target.column + ` || $1::jsonb`
	}

	query := `
		UPDATE pricing_config
		SET ` + assignment + `,
		    version = version + 1,
		    updated_at = NOW()
		WHERE is_active = true
		RETURNING ` + configColumns

	cfg, err := scanConfig(tx.QueryRow(ctx, query, []byte(payload)))
	if err != nil {
		return nil, fmt.Errorf("failed to update pricing config section %s: %w", section, err)
	}

	auditQuery := `
		INSERT INTO pricing_audit_logs (id, config_id, section, action, actor, new_values, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	if _, err := tx.Exec(ctx, auditQuery, uuid.New(), cfg.ID, section, "update", actor, []byte(payload)); err != nil {
		return nil, fmt.Errorf("failed to insert audit log: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit config update: %w", err)
	}

	return cfg, nil
}

// ListAuditLogs returns configuration edit history, newest first
func (r *Repository) ListAuditLogs(ctx context.Context, limit, offset int) ([]*AuditLog, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM pricing_audit_logs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	query := `
		SELECT id, config_id, section, action, actor, new_values, created_at
		FROM pricing_audit_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*AuditLog, 0)
	for rows.Next() {
		log := &AuditLog{}
		var newValuesJSON []byte

		err := rows.Scan(&log.ID, &log.ConfigID, &log.Section, &log.Action, &log.Actor, &newValuesJSON, &log.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit log: %w", err)
		}

		if len(newValuesJSON) > 0 {
			if err := json.Unmarshal(newValuesJSON, &log.NewValues); err != nil {
				return nil, 0, fmt.Errorf("failed to parse audit log values: %w", err)
			}
		}

		logs = append(logs, log)
	}

	return logs, total, nil
}

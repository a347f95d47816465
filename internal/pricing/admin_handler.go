package pricing

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantage-lane/pricing-engine/pkg/common"
	"github.com/vantage-lane/pricing-engine/pkg/pagination"
)

// AdminHandler handles configuration management endpoints
type AdminHandler struct {
	service *Service
}

// NewAdminHandler creates a new pricing admin handler
func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes mounts the admin pricing routes on the router group
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/pricing/config/:section", h.UpdateSection)
	rg.GET("/pricing/audit-logs", h.GetAuditLogs)
}

// UpdateSection applies a partial edit to one configuration section.
// Map sections (vehicle types, airports, zones, multipliers, services)
// merge with the stored values; policy sections replace them whole.
func (h *AdminHandler) UpdateSection(c *gin.Context) {
	section := c.Param("section")
	if !ValidSection(section) {
		common.ErrorResponse(c, http.StatusNotFound, fmt.Sprintf("unknown pricing config section %q", section))
		return
	}

	payload, err := bindSection(c, section)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	actor := c.GetHeader("X-Admin-User")

	cfg, err := h.service.UpdateSection(c.Request.Context(), section, payload, actor)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to update pricing config")
		return
	}

	common.SuccessResponse(c, cfg)
}

// GetAuditLogs returns the configuration edit history, newest first
func (h *AdminHandler) GetAuditLogs(c *gin.Context) {
	params := pagination.ParseParams(c)

	logs, total, err := h.service.ListAuditLogs(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to list audit logs")
		return
	}

	meta := pagination.BuildMeta(params.Limit, params.Offset, total)
	common.SuccessResponseWithMeta(c, logs, meta)
}

// bindSection validates the request body against the section's typed
// shape, then returns the raw JSON for storage. Binding through the
// concrete types catches malformed payloads before they reach the
// database.
func bindSection(c *gin.Context, section string) (json.RawMessage, error) {
	var target any
	switch section {
	case "vehicle_types":
		target = &map[Category]VehicleTypeRates{}
	case "airport_fees":
		target = &map[string]AirportFee{}
	case "zone_fees":
		target = &map[string]ZoneFee{}
	case "time_multipliers":
		target = &map[string]TimeMultiplier{}
	case "event_multipliers":
		target = &map[string]EventMultiplier{}
	case "premium_services":
		target = &map[string]PremiumService{}
	case "service_policies":
		target = &ServicePolicies{}
	case "general_policies":
		target = &GeneralPolicies{}
	case "return_settings":
		target = &ReturnSettings{}
	case "hourly_settings":
		target = &HourlySettings{}
	case "daily_settings":
		target = &DailySettings{}
	case "fleet_settings":
		target = &FleetSettings{}
	default:
		return nil, fmt.Errorf("unknown pricing config section %q", section)
	}

	if err := c.ShouldBindJSON(target); err != nil {
		return nil, err
	}

	if section == "general_policies" {
		gp := target.(*GeneralPolicies)
		switch gp.Rounding.Direction {
		case RoundUp, RoundDown, RoundNearest:
		default:
			return nil, fmt.Errorf("rounding direction must be one of up, down, nearest")
		}
	}

	raw, err := json.Marshal(target)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize section payload: %w", err)
	}
	return raw, nil
}

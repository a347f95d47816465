package pricing

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vantage-lane/pricing-engine/pkg/common"
	"github.com/vantage-lane/pricing-engine/pkg/validation"
)

// Handler handles HTTP requests for pricing quotes
type Handler struct {
	service *Service
}

// NewHandler creates a new pricing handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public pricing routes on the router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/pricing/quote", h.Quote)
	rg.GET("/pricing/config", h.GetConfig)
	rg.POST("/pricing/cancellation-fee", h.CancellationFee)
	rg.POST("/cache/invalidate", h.InvalidateCache)
}

// Quote prices a trip and returns the itemized breakdown
func (h *Handler) Quote(c *gin.Context) {
	var trip TripSpec
	if err := c.ShouldBindJSON(&trip); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	breakdown, err := h.service.Quote(c.Request.Context(), &trip)
	if err != nil {
		common.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	common.SuccessResponse(c, breakdown)
}

// GetConfig returns the active pricing configuration
func (h *Handler) GetConfig(c *gin.Context) {
	cfg, err := h.service.GetConfig(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to load pricing config")
		return
	}

	common.SuccessResponse(c, cfg)
}

// CancellationFee returns the charge for cancelling a priced booking
func (h *Handler) CancellationFee(c *gin.Context) {
	var req struct {
		FinalPrice       float64 `json:"final_price" binding:"required,gt=0"`
		HoursUntilPickup float64 `json:"hours_until_pickup" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	fee, err := h.service.CancellationQuote(c.Request.Context(), req.FinalPrice, req.HoursUntilPickup)
	if err != nil {
		common.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	common.SuccessResponse(c, gin.H{
		"cancellation_fee": fee,
		"currency":         Currency,
	})
}

// InvalidateCache drops the cached configuration snapshot
func (h *Handler) InvalidateCache(c *gin.Context) {
	if err := h.service.InvalidateCache(c.Request.Context()); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to invalidate cache")
		return
	}

	common.SuccessResponse(c, gin.H{"invalidated": true})
}

// bindErrorMessage turns binding failures into field-level messages
// instead of the validator's raw struct paths
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return validation.NewValidationError(verrs).Error()
	}
	return err.Error()
}

// statusForError maps calculation errors to HTTP status codes. Input
// problems are unprocessable; a bad rounding direction means corrupt
// config, which is a server fault.
func statusForError(err error) int {
	var pe *Error
	if errors.As(err, &pe) {
		if pe.Kind == KindInvalidRounding {
			return http.StatusInternalServerError
		}
		return http.StatusUnprocessableEntity
	}
	return common.StatusFromError(err)
}

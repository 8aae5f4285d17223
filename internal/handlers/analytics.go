package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Stuti0916/SymMuse/internal/apierror"
	"github.com/Stuti0916/SymMuse/internal/logger"
	"github.com/Stuti0916/SymMuse/internal/service"
)

const dateOnly = "2006-01-02"

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetOverview handles GET /api/v1/analytics
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	resp, err := h.analyticsService.GetOverview(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAdvanced handles GET /api/v1/analytics/premium?months=N.
// A missing or non-numeric months falls back to the default window.
func (h *AnalyticsHandler) GetAdvanced(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	months, err := strconv.Atoi(c.Query("months"))
	if err != nil {
		months = 0
	}

	resp, err := h.analyticsService.GetAdvanced(c.Request.Context(), userID, months)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type cycleSummaryQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// GetCycleSummary handles GET /api/v1/periods/insights?limit=N
func (h *AnalyticsHandler) GetCycleSummary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var q cycleSummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierror.WriteProblem(c, apierror.FromValidationErrors(apierror.GetRequestID(c), err))
		return
	}

	summary, err := h.analyticsService.GetCycleSummary(c.Request.Context(), userID, q.Limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "insights": summary})
}

// GetMoodSummary handles GET /api/v1/mood/insights?start_date&end_date
func (h *AnalyticsHandler) GetMoodSummary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	start, err := parseDateParam(c.Query("start_date"), false)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c),
			"invalid start_date format", "Dates must look like 2025-01-31 or 2025-01-31T00:00:00Z"))
		return
	}
	end, err := parseDateParam(c.Query("end_date"), true)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c),
			"invalid end_date format", "Dates must look like 2025-01-31 or 2025-01-31T00:00:00Z"))
		return
	}

	summary, err := h.analyticsService.GetMoodSummary(c.Request.Context(), userID, start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "insights": summary})
}

// parseDateParam accepts RFC 3339 or a bare date. A bare end date covers
// the whole day.
func parseDateParam(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func requireUser(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return "", false
	}
	return userID, true
}

// writeServiceError maps service errors onto problem responses
func writeServiceError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)

	var featureErr *service.FeatureError
	switch {
	case errors.As(err, &featureErr):
		apierror.WriteProblem(c, apierror.NewPremiumRequiredError(requestID, string(featureErr.Feature)))
	case errors.Is(err, service.ErrPremiumRequired):
		apierror.WriteProblem(c, apierror.NewPremiumRequiredError(requestID, ""))
	case errors.Is(err, service.ErrInvalidDateRange):
		apierror.WriteProblem(c, apierror.NewInvalidDateRangeError(requestID, err.Error()))
	default:
		logger.Ctx(c.Request.Context()).Error("analytics request failed",
			logger.Err(err),
			logger.String("path", c.FullPath()),
		)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

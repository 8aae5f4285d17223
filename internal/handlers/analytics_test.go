package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stuti0916/SymMuse/internal/apierror"
	"github.com/Stuti0916/SymMuse/internal/models"
	"github.com/Stuti0916/SymMuse/internal/service"
)

type fakeAnalyticsService struct {
	err error

	gotMonths int
	gotLimit  int
	gotStart  *time.Time
	gotEnd    *time.Time
}

func (f *fakeAnalyticsService) GetOverview(_ context.Context, _ string) (*models.AnalyticsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.AnalyticsResponse{Success: true}, nil
}

func (f *fakeAnalyticsService) GetAdvanced(_ context.Context, _ string, months int) (*models.AdvancedAnalyticsResponse, error) {
	f.gotMonths = months
	if f.err != nil {
		return nil, f.err
	}
	return &models.AdvancedAnalyticsResponse{Success: true}, nil
}

func (f *fakeAnalyticsService) GetCycleSummary(_ context.Context, _ string, limit int) (*models.CycleSummary, error) {
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return &models.CycleSummary{CycleRegularity: models.RegularityRegular}, nil
}

func (f *fakeAnalyticsService) GetMoodSummary(_ context.Context, _ string, start, end *time.Time) (*models.MoodSummary, error) {
	f.gotStart, f.gotEnd = start, end
	if f.err != nil {
		return nil, f.err
	}
	return &models.MoodSummary{TotalEntries: 2}, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(svc service.AnalyticsService, userID string) *gin.Engine {
	h := NewAnalyticsHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("request_id", "req-test")
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	r.GET("/api/v1/analytics", h.GetOverview)
	r.GET("/api/v1/analytics/premium", h.GetAdvanced)
	r.GET("/api/v1/periods/insights", h.GetCycleSummary)
	r.GET("/api/v1/mood/insights", h.GetMoodSummary)
	return r
}

func serve(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) apierror.ProblemDetails {
	t.Helper()
	assert.Equal(t, apierror.ContentTypeProblemJSON, w.Header().Get("Content-Type"))
	var p apierror.ProblemDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestGetOverview(t *testing.T) {
	r := newTestRouter(&fakeAnalyticsService{}, "user-1")

	w := serve(r, "/api/v1/analytics")
	require.Equal(t, http.StatusOK, w.Code)

	var body models.AnalyticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestGetOverview_Unauthenticated(t *testing.T) {
	r := newTestRouter(&fakeAnalyticsService{}, "")

	w := serve(r, "/api/v1/analytics")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	p := decodeProblem(t, w)
	assert.Equal(t, apierror.TypeUnauthorized, p.Type)
	assert.Equal(t, "req-test", p.RequestID)
}

func TestGetOverview_InternalError(t *testing.T) {
	r := newTestRouter(&fakeAnalyticsService{err: errors.New("db down")}, "user-1")

	w := serve(r, "/api/v1/analytics")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	p := decodeProblem(t, w)
	assert.Equal(t, apierror.TypeInternal, p.Type)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestGetAdvanced_Months(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 0},
		{"?months=6", 6},
		{"?months=abc", 0},
		{"?months=-2", -2},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			svc := &fakeAnalyticsService{}
			r := newTestRouter(svc, "user-1")

			w := serve(r, "/api/v1/analytics/premium"+tt.query)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, svc.gotMonths)
		})
	}
}

func TestGetAdvanced_PremiumRequired(t *testing.T) {
	svc := &fakeAnalyticsService{err: &service.FeatureError{
		Feature: models.FeatureAdvancedAnalytics,
		Plan:    models.PlanFree,
	}}
	r := newTestRouter(svc, "user-1")

	w := serve(r, "/api/v1/analytics/premium")
	require.Equal(t, http.StatusForbidden, w.Code)
	p := decodeProblem(t, w)
	assert.Equal(t, apierror.TypePremiumRequired, p.Type)
	assert.Equal(t, string(models.FeatureAdvancedAnalytics), p.Feature)
	assert.True(t, p.UpgradeRequired)
}

func TestGetCycleSummary(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		svc := &fakeAnalyticsService{}
		r := newTestRouter(svc, "user-1")

		w := serve(r, "/api/v1/periods/insights")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, svc.gotLimit)

		var body struct {
			Success  bool                `json:"success"`
			Insights models.CycleSummary `json:"insights"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, models.RegularityRegular, body.Insights.CycleRegularity)
	})

	t.Run("explicit limit", func(t *testing.T) {
		svc := &fakeAnalyticsService{}
		r := newTestRouter(svc, "user-1")

		w := serve(r, "/api/v1/periods/insights?limit=6")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 6, svc.gotLimit)
	})

	t.Run("limit out of range", func(t *testing.T) {
		r := newTestRouter(&fakeAnalyticsService{}, "user-1")

		w := serve(r, "/api/v1/periods/insights?limit=500")
		require.Equal(t, http.StatusBadRequest, w.Code)
		p := decodeProblem(t, w)
		assert.Equal(t, apierror.TypeValidation, p.Type)
		require.Len(t, p.Errors, 1)
		assert.Equal(t, "Limit", p.Errors[0].Field)
		assert.Equal(t, "max", p.Errors[0].Code)
	})
}

func TestGetMoodSummary(t *testing.T) {
	t.Run("no bounds", func(t *testing.T) {
		svc := &fakeAnalyticsService{}
		r := newTestRouter(svc, "user-1")

		w := serve(r, "/api/v1/mood/insights")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, svc.gotStart)
		assert.Nil(t, svc.gotEnd)
	})

	t.Run("date only bounds", func(t *testing.T) {
		svc := &fakeAnalyticsService{}
		r := newTestRouter(svc, "user-1")

		w := serve(r, "/api/v1/mood/insights?start_date=2025-05-01&end_date=2025-05-31")
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.gotStart)
		require.NotNil(t, svc.gotEnd)
		assert.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), *svc.gotStart)
		assert.Equal(t, time.Date(2025, time.May, 31, 23, 59, 59, 999999999, time.UTC), *svc.gotEnd)
	})

	t.Run("rfc3339 bounds", func(t *testing.T) {
		svc := &fakeAnalyticsService{}
		r := newTestRouter(svc, "user-1")

		w := serve(r, "/api/v1/mood/insights?start_date=2025-05-01T08:00:00Z")
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.gotStart)
		assert.Equal(t, time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC), *svc.gotStart)
		assert.Nil(t, svc.gotEnd)
	})

	t.Run("malformed date", func(t *testing.T) {
		r := newTestRouter(&fakeAnalyticsService{}, "user-1")

		w := serve(r, "/api/v1/mood/insights?end_date=31-05-2025")
		require.Equal(t, http.StatusBadRequest, w.Code)
		p := decodeProblem(t, w)
		assert.Equal(t, apierror.TypeBadRequest, p.Type)
	})

	t.Run("inverted range", func(t *testing.T) {
		r := newTestRouter(&fakeAnalyticsService{err: service.ErrInvalidDateRange}, "user-1")

		w := serve(r, "/api/v1/mood/insights?start_date=2025-05-31&end_date=2025-05-01")
		require.Equal(t, http.StatusBadRequest, w.Code)
		p := decodeProblem(t, w)
		assert.Equal(t, apierror.TypeInvalidDateRange, p.Type)
	})
}

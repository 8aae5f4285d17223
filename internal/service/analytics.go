package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Stuti0916/SymMuse/internal/analytics"
	"github.com/Stuti0916/SymMuse/internal/logger"
	"github.com/Stuti0916/SymMuse/internal/models"
	"github.com/Stuti0916/SymMuse/internal/repository"
)

// AnalyticsOptions holds the windows and limits the service applies
type AnalyticsOptions struct {
	OverviewMonths     int
	PremiumMonths      int
	MaxPremiumMonths   int
	PeriodHistoryLimit int
	MoodWindowDays     int

	// Now defaults to time.Now
	Now func() time.Time
}

type analyticsService struct {
	store  *repository.Store
	engine *analytics.Engine
	opts   AnalyticsOptions
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(store *repository.Store, engine *analytics.Engine, opts AnalyticsOptions) AnalyticsService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &analyticsService{
		store:  store,
		engine: engine,
		opts:   opts,
	}
}

func (s *analyticsService) GetOverview(ctx context.Context, userID string) (*models.AnalyticsResponse, error) {
	end := s.opts.Now()
	start := end.AddDate(0, -s.opts.OverviewMonths, 0)

	dataset, err := s.fetch(ctx, userID, start, end, false)
	if err != nil {
		return nil, err
	}

	result := s.engine.Overview(dataset)

	logger.Ctx(ctx).Info("overview analytics computed",
		logger.Int("periods", len(dataset.Periods)),
		logger.Int("moods", len(dataset.Moods)),
		logger.String("cycle_status", string(result.CycleHealth.Status)),
		logger.Int("health_score", result.HealthScore.Score),
	)

	return &models.AnalyticsResponse{
		Success:   true,
		Analytics: result,
		DataRange: models.DataRange{
			StartDate:        start,
			EndDate:          end,
			PeriodsCount:     len(dataset.Periods),
			MoodEntriesCount: len(dataset.Moods),
		},
	}, nil
}

func (s *analyticsService) GetAdvanced(ctx context.Context, userID string, months int) (*models.AdvancedAnalyticsResponse, error) {
	if err := s.requireFeature(ctx, userID, models.FeatureAdvancedAnalytics); err != nil {
		return nil, err
	}

	months = s.clampMonths(months)
	end := s.opts.Now()
	start := end.AddDate(0, -months, 0)

	dataset, err := s.fetch(ctx, userID, start, end, true)
	if err != nil {
		return nil, err
	}

	result := s.engine.Advanced(dataset)

	logger.Ctx(ctx).Info("advanced analytics computed",
		logger.Int("months", months),
		logger.Int("periods", len(dataset.Periods)),
		logger.Int("moods", len(dataset.Moods)),
		logger.Int("consultations", len(dataset.Consultations)),
		logger.Bool("predictions_available", result.CyclePredictions.Available),
		logger.Int("insights", len(result.PersonalizedInsights)),
		logger.Int("risks", len(result.RiskAssessment)),
	)

	consultations := len(dataset.Consultations)
	return &models.AdvancedAnalyticsResponse{
		Success:   true,
		Analytics: result,
		DataRange: models.DataRange{
			StartDate:          start,
			EndDate:            end,
			PeriodsCount:       len(dataset.Periods),
			MoodEntriesCount:   len(dataset.Moods),
			ConsultationsCount: &consultations,
		},
	}, nil
}

func (s *analyticsService) GetCycleSummary(ctx context.Context, userID string, limit int) (*models.CycleSummary, error) {
	if limit <= 0 {
		limit = s.opts.PeriodHistoryLimit
	}

	periods, err := s.store.Periods.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get periods: %w", err)
	}

	summary := s.engine.CycleSummary(periods)
	logger.Ctx(ctx).Debug("cycle summary computed",
		logger.Int("periods", len(periods)),
		logger.String("regularity", string(summary.CycleRegularity)),
	)
	return &summary, nil
}

func (s *analyticsService) GetMoodSummary(ctx context.Context, userID string, start, end *time.Time) (*models.MoodSummary, error) {
	windowEnd := s.opts.Now()
	if end != nil {
		windowEnd = *end
	}
	windowStart := windowEnd.AddDate(0, 0, -s.opts.MoodWindowDays)
	if start != nil {
		windowStart = *start
	}
	if windowStart.After(windowEnd) {
		return nil, ErrInvalidDateRange
	}

	moods, err := s.store.Moods.ListByUser(ctx, userID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries: %w", err)
	}

	summary := s.engine.MoodSummary(moods)
	logger.Ctx(ctx).Debug("mood summary computed",
		append(logger.Window(windowStart, windowEnd), logger.Int("moods", len(moods)))...,
	)
	return &summary, nil
}

// requireFeature checks the user's plan. A user without a profile row is
// treated as being on the free plan.
func (s *analyticsService) requireFeature(ctx context.Context, userID string, feature models.Feature) error {
	plan := models.PlanFree

	user, err := s.store.Users.GetByID(ctx, userID)
	switch {
	case err == nil:
		plan = user.Plan
	case errors.Is(err, repository.ErrNotFound):
		logger.Ctx(ctx).Warn("no user profile, assuming free plan")
	default:
		return fmt.Errorf("failed to get user plan: %w", err)
	}

	if !plan.HasFeature(feature) {
		logger.Ctx(ctx).Info("feature denied by plan",
			logger.String("feature", string(feature)),
			logger.String("plan", string(plan)),
		)
		return &FeatureError{Feature: feature, Plan: plan}
	}
	return nil
}

// clampMonths maps the requested window onto [1, MaxPremiumMonths]
func (s *analyticsService) clampMonths(months int) int {
	switch {
	case months == 0:
		return s.opts.PremiumMonths
	case months < 1:
		return 1
	case months > s.opts.MaxPremiumMonths:
		return s.opts.MaxPremiumMonths
	}
	return months
}

// fetch loads the three collections for one window concurrently
func (s *analyticsService) fetch(ctx context.Context, userID string, start, end time.Time, withConsultations bool) (analytics.Dataset, error) {
	var dataset analytics.Dataset
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		periods, err := s.store.Periods.ListByUser(gctx, userID, start, end)
		if err != nil {
			return fmt.Errorf("failed to get periods: %w", err)
		}
		dataset.Periods = periods
		return nil
	})

	g.Go(func() error {
		moods, err := s.store.Moods.ListByUser(gctx, userID, start, end)
		if err != nil {
			return fmt.Errorf("failed to get mood entries: %w", err)
		}
		dataset.Moods = moods
		return nil
	})

	if withConsultations {
		g.Go(func() error {
			consultations, err := s.store.Consultations.ListByUser(gctx, userID, start, end)
			if err != nil {
				return fmt.Errorf("failed to get consultations: %w", err)
			}
			dataset.Consultations = consultations
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Ctx(ctx).Error("analytics fetch failed", logger.Err(err))
		return analytics.Dataset{}, err
	}
	return dataset, nil
}

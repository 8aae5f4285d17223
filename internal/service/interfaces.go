package service

import (
	"context"
	"time"

	"github.com/Stuti0916/SymMuse/internal/models"
)

// AnalyticsService defines the interface for the analytics surfaces
type AnalyticsService interface {
	// GetOverview analyzes the default overview window
	GetOverview(ctx context.Context, userID string) (*models.AnalyticsResponse, error)
	// GetAdvanced analyzes the last months months for users whose plan
	// includes advanced analytics. months <= 0 selects the default window.
	GetAdvanced(ctx context.Context, userID string, months int) (*models.AdvancedAnalyticsResponse, error)
	// GetCycleSummary summarizes the latest limit periods
	GetCycleSummary(ctx context.Context, userID string, limit int) (*models.CycleSummary, error)
	// GetMoodSummary summarizes mood entries in [start, end]; nil bounds use the default window
	GetMoodSummary(ctx context.Context, userID string, start, end *time.Time) (*models.MoodSummary, error)
}

// Package repository reads a user's tracking records from storage. Every
// method is read-only; writes belong to the tracking endpoints, not analytics.
package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/Stuti0916/SymMuse/internal/models"
)

// ErrNotFound is returned when a single record lookup matches nothing
var ErrNotFound = errors.New("not found")

// PeriodRepository defines the interface for period data access
type PeriodRepository interface {
	// ListByUser returns periods starting within [since, until], most recent first
	ListByUser(ctx context.Context, userID string, since, until time.Time) ([]models.PeriodRecord, error)
	// ListRecent returns the user's latest limit periods, most recent first
	ListRecent(ctx context.Context, userID string, limit int) ([]models.PeriodRecord, error)
}

// MoodRepository defines the interface for mood entry data access
type MoodRepository interface {
	// ListByUser returns mood entries dated within [since, until], most recent first
	ListByUser(ctx context.Context, userID string, since, until time.Time) ([]models.MoodRecord, error)
}

// ConsultationRepository defines the interface for consultation data access
type ConsultationRepository interface {
	// ListByUser returns consultations created within [since, until], most recent first
	ListByUser(ctx context.Context, userID string, since, until time.Time) ([]models.ConsultationRecord, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Store bundles the repositories a storage driver provides
type Store struct {
	Periods       PeriodRepository
	Moods         MoodRepository
	Consultations ConsultationRepository
	Users         UserRepository
}

package service

import (
	"errors"
	"fmt"

	"github.com/Stuti0916/SymMuse/internal/models"
)

var (
	// ErrPremiumRequired is returned when the user's plan lacks a gated feature
	ErrPremiumRequired = errors.New("premium subscription required")

	// ErrInvalidDateRange is returned when a window starts after it ends
	ErrInvalidDateRange = errors.New("start date is after end date")
)

// FeatureError names the feature a plan is missing
type FeatureError struct {
	Feature models.Feature
	Plan    models.Plan
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("%s: plan %q does not include %s", ErrPremiumRequired, e.Plan, e.Feature)
}

func (e *FeatureError) Unwrap() error {
	return ErrPremiumRequired
}

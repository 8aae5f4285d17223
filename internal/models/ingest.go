package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Ingestion defaults applied to records that arrive with missing sub-fields.
const (
	DefaultMoodLevel    = 5
	DefaultEnergy       = 5
	DefaultSleepHours   = 8.0
	DefaultSleepQuality = 5
	DefaultFlow         = FlowMedium
)

var validate = validator.New()

// Export is a user's raw record set as produced by a data export
type Export struct {
	Periods       []PeriodRecord       `json:"periods" validate:"dive"`
	Moods         []MoodRecord         `json:"moods" validate:"dive"`
	Consultations []ConsultationRecord `json:"consultations" validate:"dive"`
}

// Validate checks field ranges and the period end/start ordering
func (e *Export) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("invalid export: %w", err)
	}
	for i, p := range e.Periods {
		if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
			return fmt.Errorf("invalid export: periods[%d]: %w", i, ErrEndBeforeStart)
		}
	}
	return nil
}

// Normalize applies ingestion defaults to every record in place
func (e *Export) Normalize() {
	for i := range e.Periods {
		e.Periods[i] = NormalizePeriod(e.Periods[i])
	}
	for i := range e.Moods {
		e.Moods[i] = NormalizeMood(e.Moods[i])
	}
}

// ErrEndBeforeStart is returned when a period ends before it starts
var ErrEndBeforeStart = errors.New("endDate is before startDate")

// NormalizePeriod fills in the default flow and an empty symptom list
func NormalizePeriod(p PeriodRecord) PeriodRecord {
	if p.Flow == "" {
		p.Flow = DefaultFlow
	}
	if p.Symptoms == nil {
		p.Symptoms = []string{}
	}
	return p
}

// NormalizeMood fills in the defaults the mood log endpoint has always used
func NormalizeMood(m MoodRecord) MoodRecord {
	if m.Mood.Level == 0 {
		m.Mood.Level = DefaultMoodLevel
	}
	if m.Mood.Emotions == nil {
		m.Mood.Emotions = []string{}
	}
	if m.Symptoms.Physical == nil {
		m.Symptoms.Physical = []string{}
	}
	if m.Symptoms.Emotional == nil {
		m.Symptoms.Emotional = []string{}
	}
	if m.Energy == 0 {
		m.Energy = DefaultEnergy
	}
	if m.Sleep.Hours == 0 {
		m.Sleep.Hours = DefaultSleepHours
	}
	if m.Sleep.Quality == 0 {
		m.Sleep.Quality = DefaultSleepQuality
	}
	return m
}

package analytics

import (
	"time"

	"github.com/Stuti0916/SymMuse/internal/models"
)

// phaseBoundary closes a phase at maxDays days after the period start
type phaseBoundary struct {
	maxDays int
	phase   models.CyclePhase
}

// phaseTable segments an idealized 28-day cycle. It is a fixed heuristic and
// does not stretch or shrink with the user's own average cycle length.
var phaseTable = []phaseBoundary{
	{maxDays: 5, phase: models.PhaseMenstrual},
	{maxDays: 13, phase: models.PhaseFollicular},
	{maxDays: 16, phase: models.PhaseOvulation},
	{maxDays: 28, phase: models.PhaseLuteal},
}

// PhaseClassifier maps dates to cycle phases against one period history
type PhaseClassifier struct {
	periods []models.PeriodRecord
}

// NewPhaseClassifier sorts a copy of the history once for repeated lookups
func NewPhaseClassifier(periods []models.PeriodRecord) *PhaseClassifier {
	return &PhaseClassifier{periods: sortPeriodsDesc(periods)}
}

// Classify returns the phase of date relative to the most recent period
// starting on or before it
func (c *PhaseClassifier) Classify(date time.Time) models.CyclePhase {
	for _, p := range c.periods {
		if p.StartDate.After(date) {
			continue
		}
		return phaseForDay(DaysBetween(p.StartDate, date))
	}
	return models.PhaseUnknown
}

// ClassifyPhase is a one-shot Classify
func ClassifyPhase(date time.Time, periods []models.PeriodRecord) models.CyclePhase {
	return NewPhaseClassifier(periods).Classify(date)
}

func phaseForDay(daysSincePeriod int) models.CyclePhase {
	for _, b := range phaseTable {
		if daysSincePeriod <= b.maxDays {
			return b.phase
		}
	}
	return models.PhaseUnknown
}

package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/Stuti0916/SymMuse/internal/models"
)

const (
	// Minimum periods before regularity, health and prediction rules apply
	MinPeriodsForAnalysis = 3

	// Healthy average cycle length range, inclusive
	MinHealthyCycleLength = 21
	MaxHealthyCycleLength = 35

	msPerDay = 24 * 60 * 60 * 1000
)

// regularityBand maps an upper bound on cycle variation to a classification
type regularityBand struct {
	maxVariation int
	regularity   models.Regularity
	confidence   models.Confidence
}

// regularityBands is shared by cycle health, predictions and insights.
// Anything above the last bound is irregular with low confidence.
var regularityBands = []regularityBand{
	{maxVariation: 3, regularity: models.RegularityRegular, confidence: models.ConfidenceHigh},
	{maxVariation: 7, regularity: models.RegularitySomewhatIrregular, confidence: models.ConfidenceMedium},
}

// ClassifyVariation returns the regularity band for a cycle length spread
func ClassifyVariation(variation int) (models.Regularity, models.Confidence) {
	for _, band := range regularityBands {
		if variation <= band.maxVariation {
			return band.regularity, band.confidence
		}
	}
	return models.RegularityIrregular, models.ConfidenceLow
}

// DaysBetween returns whole days from one instant to another, floored
func DaysBetween(from, to time.Time) int {
	return int(math.Floor(float64(to.Sub(from).Milliseconds()) / msPerDay))
}

// CycleStats is derived once per request from a period history
type CycleStats struct {
	// Gaps between chronologically adjacent starts, most recent first
	CycleLengths []int
	// Unrounded mean of CycleLengths
	AverageCycleLength float64
	// max(CycleLengths) - min(CycleLengths)
	Variation int
	// Mean inclusive length of periods with an end date, nil if none
	AveragePeriodLength *float64
	PeriodCount         int
	LastPeriodStart     time.Time
}

// ComputeCycleStats derives cycle statistics. Input order does not matter.
// Fewer than two periods yields a zero CycleStats with only PeriodCount set.
func ComputeCycleStats(periods []models.PeriodRecord) CycleStats {
	stats := CycleStats{PeriodCount: len(periods)}
	if len(periods) < 2 {
		return stats
	}

	sorted := sortPeriodsDesc(periods)
	stats.LastPeriodStart = sorted[0].StartDate

	lengths := make([]int, 0, len(sorted)-1)
	for i := 0; i < len(sorted)-1; i++ {
		// magnitude only: callers must not read direction into it
		days := DaysBetween(sorted[i+1].StartDate, sorted[i].StartDate)
		if days < 0 {
			days = -days
		}
		lengths = append(lengths, days)
	}

	total := 0
	minLen, maxLen := lengths[0], lengths[0]
	for _, l := range lengths {
		total += l
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}

	stats.CycleLengths = lengths
	stats.AverageCycleLength = float64(total) / float64(len(lengths))
	stats.Variation = maxLen - minLen
	stats.AveragePeriodLength = averagePeriodLength(sorted)

	return stats
}

func averagePeriodLength(periods []models.PeriodRecord) *float64 {
	var sum float64
	count := 0
	for _, p := range periods {
		if !p.HasEnd() {
			continue
		}
		sum += float64(DaysBetween(p.StartDate, *p.EndDate) + 1)
		count++
	}
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}

// Available reports whether at least one cycle length was observed
func (s CycleStats) Available() bool {
	return len(s.CycleLengths) > 0
}

// RoundedAverage returns the average cycle length for display
func (s CycleStats) RoundedAverage() int {
	return int(math.Round(s.AverageCycleLength))
}

// Regularity returns the shared regularity band for the observed variation
func (s CycleStats) Regularity() (models.Regularity, models.Confidence) {
	if !s.Available() {
		return models.RegularityInsufficientData, models.ConfidenceLow
	}
	return ClassifyVariation(s.Variation)
}

// WithinHealthyRange reports whether the average falls in [21, 35]
func (s CycleStats) WithinHealthyRange() bool {
	return s.AverageCycleLength >= MinHealthyCycleLength && s.AverageCycleLength <= MaxHealthyCycleLength
}

// HasHistory reports whether there are enough periods for regularity rules
func (s CycleStats) HasHistory() bool {
	return s.PeriodCount >= MinPeriodsForAnalysis && s.Available()
}

// Irregular is the single regularity check shared by scoring and recommendations
func (s CycleStats) Irregular() bool {
	regularity, _ := s.Regularity()
	return s.HasHistory() && regularity == models.RegularityIrregular
}

// VeryRegular reports a history in the tightest regularity band
func (s CycleStats) VeryRegular() bool {
	regularity, _ := s.Regularity()
	return s.HasHistory() && regularity == models.RegularityRegular
}

// CycleHealth summarizes the history for the overview surface
func CycleHealth(stats CycleStats) models.CycleHealth {
	if !stats.HasHistory() {
		return models.CycleHealth{
			Status:  models.StatusInsufficientData,
			Message: "Need at least 3 cycles for analysis",
		}
	}

	status := models.StatusHealthy
	message := "Your cycles are regular and within normal range"
	switch {
	case !stats.WithinHealthyRange():
		status = models.StatusAttentionNeeded
		message = "Your average cycle length is outside the typical range (21-35 days)"
	case stats.Irregular():
		status = models.StatusIrregular
		message = "Your cycles show significant variation. Consider tracking more consistently"
	}

	avg := stats.RoundedAverage()
	variation := stats.Variation
	regularity, confidence := stats.Regularity()

	return models.CycleHealth{
		Status:        status,
		Message:       message,
		AverageLength: &avg,
		Variation:     &variation,
		TotalCycles:   len(stats.CycleLengths),
		Regularity:    regularity,
		Confidence:    confidence,
	}
}

// SummarizeCycles builds the summary shown alongside the period log
func SummarizeCycles(periods []models.PeriodRecord) models.CycleSummary {
	stats := ComputeCycleStats(periods)
	if !stats.Available() {
		return models.CycleSummary{CycleRegularity: models.RegularityInsufficientData}
	}

	avg := stats.RoundedAverage()
	next := stats.LastPeriodStart.AddDate(0, 0, avg)
	regularity, _ := stats.Regularity()

	summary := models.CycleSummary{
		AverageCycleLength:  &avg,
		NextPredictedPeriod: &next,
		CycleRegularity:     regularity,
		TotalCycles:         len(stats.CycleLengths),
	}
	if stats.AveragePeriodLength != nil {
		periodLength := int(math.Round(*stats.AveragePeriodLength))
		summary.AveragePeriodLength = &periodLength
	}
	return summary
}

// sortPeriodsDesc returns a copy ordered most recent first
func sortPeriodsDesc(periods []models.PeriodRecord) []models.PeriodRecord {
	sorted := make([]models.PeriodRecord, len(periods))
	copy(sorted, periods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.After(sorted[j].StartDate)
	})
	return sorted
}

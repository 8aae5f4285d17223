package analytics

import (
	"time"

	"github.com/Stuti0916/SymMuse/internal/models"
)

const (
	baseHealthScore = 100

	irregularCyclePenalty  = 15
	moodVariabilityPenalty = 10
	poorSleepPenalty       = 10

	maxMoodSpread = 5.0

	// DefaultPredictionCycles is how many cycle starts are projected by default
	DefaultPredictionCycles = 3
)

// healthLevelBands is evaluated top down, first match wins
var healthLevelBands = []struct {
	minScore int
	level    models.HealthLevel
}{
	{minScore: 80, level: models.HealthExcellent},
	{minScore: 60, level: models.HealthGood},
	{minScore: 40, level: models.HealthFair},
}

// ScoreHealth combines regularity, mood variability and sleep quality into [0, 100]
func ScoreHealth(stats CycleStats, moods []models.MoodRecord) models.HealthScore {
	score := baseHealthScore
	factors := []string{}

	if stats.Irregular() {
		score -= irregularCyclePenalty
		factors = append(factors, "Irregular cycles detected")
	}

	if len(moods) >= ShortMoodWindow {
		recent := sortMoodsDesc(moods)[:ShortMoodWindow]

		if spread, ok := rangeOf(recent, models.MoodRecord.MoodValue); ok && spread > maxMoodSpread {
			score -= moodVariabilityPenalty
			factors = append(factors, "High mood variability")
		}

		if quality, ok := meanOf(recent, models.MoodRecord.SleepQualityValue); ok && quality < poorSleepQualityBoundary {
			score -= poorSleepPenalty
			factors = append(factors, "Poor sleep quality")
		}
	}

	if score < 0 {
		score = 0
	}

	return models.HealthScore{
		Score:   score,
		Factors: factors,
		Level:   healthLevel(score),
	}
}

// HealthScore scores raw records directly
func HealthScore(periods []models.PeriodRecord, moods []models.MoodRecord) models.HealthScore {
	return ScoreHealth(ComputeCycleStats(periods), moods)
}

func healthLevel(score int) models.HealthLevel {
	for _, band := range healthLevelBands {
		if score >= band.minScore {
			return band.level
		}
	}
	return models.HealthNeedsAttention
}

// PredictCycles projects the next count cycle starts from the unrounded
// average length. Predictions are withheld with fewer than three periods.
func PredictCycles(stats CycleStats, count int) models.CyclePredictions {
	if !stats.HasHistory() {
		return models.CyclePredictions{
			Available: false,
			Message:   "Need more cycle data for predictions",
		}
	}
	if count <= 0 {
		count = DefaultPredictionCycles
	}

	_, confidence := stats.Regularity()
	cycleLength := time.Duration(stats.AverageCycleLength * float64(24*time.Hour))

	predictions := make([]models.CyclePrediction, 0, count)
	for i := 1; i <= count; i++ {
		predictions = append(predictions, models.CyclePrediction{
			Cycle:              i,
			PredictedStartDate: stats.LastPeriodStart.Add(time.Duration(i) * cycleLength),
			Confidence:         confidence,
		})
	}

	avg := stats.RoundedAverage()
	return models.CyclePredictions{
		Available:          true,
		Predictions:        predictions,
		AverageCycleLength: &avg,
	}
}

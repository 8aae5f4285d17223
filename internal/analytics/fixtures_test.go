package analytics

import (
	"time"

	"github.com/Stuti0916/SymMuse/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func period(start time.Time) models.PeriodRecord {
	return models.PeriodRecord{StartDate: start, Flow: models.FlowMedium}
}

func periodWithEnd(start time.Time, lengthDays int) models.PeriodRecord {
	end := start.AddDate(0, 0, lengthDays-1)
	return models.PeriodRecord{StartDate: start, EndDate: &end, Flow: models.FlowMedium}
}

// somewhatIrregularHistory yields cycle lengths 32, 28, 29 (most recent first)
func somewhatIrregularHistory() []models.PeriodRecord {
	return []models.PeriodRecord{
		period(day(2025, time.January, 1)),
		period(day(2025, time.January, 30)),
		period(day(2025, time.February, 27)),
		period(day(2025, time.March, 31)),
	}
}

// irregularHistory yields cycle lengths 35, 20
func irregularHistory() []models.PeriodRecord {
	return []models.PeriodRecord{
		period(day(2025, time.January, 1)),
		period(day(2025, time.January, 21)),
		period(day(2025, time.February, 25)),
	}
}

// longCycleHistory yields cycle lengths 45, 45
func longCycleHistory() []models.PeriodRecord {
	return []models.PeriodRecord{
		period(day(2025, time.January, 1)),
		period(day(2025, time.February, 15)),
		period(day(2025, time.April, 1)),
	}
}

func mood(date time.Time, level int) models.MoodRecord {
	return models.MoodRecord{
		Date:   date,
		Mood:   models.MoodLevel{Level: level},
		Energy: level,
		Sleep:  models.Sleep{Hours: 8, Quality: 8},
	}
}

// dailyMoods returns one entry per day starting at from, one per level
func dailyMoods(from time.Time, levels ...int) []models.MoodRecord {
	moods := make([]models.MoodRecord, 0, len(levels))
	for i, level := range levels {
		moods = append(moods, mood(from.AddDate(0, 0, i), level))
	}
	return moods
}

func repeat(level, n int) []int {
	levels := make([]int, n)
	for i := range levels {
		levels[i] = level
	}
	return levels
}

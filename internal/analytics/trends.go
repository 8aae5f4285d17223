package analytics

import (
	"sort"
	"time"

	"github.com/Stuti0916/SymMuse/internal/models"
)

const monthLayout = "2006-01"

// Trend metric names
const (
	MetricPeriods       = "periods"
	MetricMoods         = "moods"
	MetricConsultations = "consultations"
)

func monthKey(t time.Time) string {
	return t.UTC().Format(monthLayout)
}

// AnalyzeHealthTrends buckets record volume and mood by UTC month and compares
// the later months with the earlier ones
func AnalyzeHealthTrends(periods []models.PeriodRecord, moods []models.MoodRecord, consultations []models.ConsultationRecord) models.HealthTrends {
	monthly := make(map[string]models.MonthlyCounts)

	bump := func(t time.Time, add func(*models.MonthlyCounts)) {
		key := monthKey(t)
		counts := monthly[key]
		add(&counts)
		monthly[key] = counts
	}

	for _, p := range periods {
		bump(p.StartDate, func(c *models.MonthlyCounts) { c.Periods++ })
	}
	for _, m := range moods {
		bump(m.Date, func(c *models.MonthlyCounts) { c.Moods++ })
	}
	for _, c := range consultations {
		bump(c.CreatedAt, func(mc *models.MonthlyCounts) { mc.Consultations++ })
	}

	monthlyMood := GroupedAverage(moods,
		func(m models.MoodRecord) (string, bool) { return monthKey(m.Date), true },
		models.MoodRecord.MoodValue,
	)

	return models.HealthTrends{
		MonthlyData: monthly,
		MonthlyMood: monthlyMood,
		Trends:      monthlyTrends(monthly),
	}
}

// monthlyTrends needs at least two months of data
func monthlyTrends(monthly map[string]models.MonthlyCounts) map[string]models.Trend {
	trends := make(map[string]models.Trend)
	if len(monthly) < 2 {
		return trends
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)

	metrics := map[string]func(models.MonthlyCounts) int{
		MetricPeriods:       func(c models.MonthlyCounts) int { return c.Periods },
		MetricMoods:         func(c models.MonthlyCounts) int { return c.Moods },
		MetricConsultations: func(c models.MonthlyCounts) int { return c.Consultations },
	}

	for name, get := range metrics {
		values := make([]float64, len(months))
		for i, m := range months {
			values[i] = float64(get(monthly[m]))
		}
		trends[name] = HalfVsHalfTrend(values)
	}
	return trends
}

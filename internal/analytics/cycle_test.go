package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stuti0916/SymMuse/internal/models"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"same instant", day(2025, time.March, 1), day(2025, time.March, 1), 0},
		{"whole days", day(2025, time.March, 1), day(2025, time.March, 29), 28},
		{"partial day floors", day(2025, time.March, 1), day(2025, time.March, 2).Add(23 * time.Hour), 1},
		{"negative floors down", day(2025, time.March, 2), day(2025, time.March, 1).Add(12 * time.Hour), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.from, tt.to))
		})
	}
}

func TestComputeCycleStats(t *testing.T) {
	stats := ComputeCycleStats(somewhatIrregularHistory())

	assert.Equal(t, []int{32, 28, 29}, stats.CycleLengths)
	assert.InDelta(t, 29.667, stats.AverageCycleLength, 0.001)
	assert.Equal(t, 30, stats.RoundedAverage())
	assert.Equal(t, 4, stats.Variation)
	assert.Equal(t, 4, stats.PeriodCount)
	assert.Equal(t, day(2025, time.March, 31), stats.LastPeriodStart)
	assert.Nil(t, stats.AveragePeriodLength)
	assert.True(t, stats.HasHistory())
	assert.False(t, stats.Irregular())
	assert.False(t, stats.VeryRegular())

	regularity, confidence := stats.Regularity()
	assert.Equal(t, models.RegularitySomewhatIrregular, regularity)
	assert.Equal(t, models.ConfidenceMedium, confidence)
}

func TestComputeCycleStats_InputOrderIgnored(t *testing.T) {
	history := somewhatIrregularHistory()
	reversed := make([]models.PeriodRecord, len(history))
	for i, p := range history {
		reversed[len(history)-1-i] = p
	}
	shuffled := []models.PeriodRecord{history[2], history[0], history[3], history[1]}

	want := ComputeCycleStats(history)
	assert.Equal(t, want, ComputeCycleStats(reversed))
	assert.Equal(t, want, ComputeCycleStats(shuffled))

	// the caller's slice is left alone
	assert.Equal(t, day(2025, time.January, 1), history[0].StartDate)
}

func TestComputeCycleStats_ShortHistory(t *testing.T) {
	assert.False(t, ComputeCycleStats(nil).Available())

	one := ComputeCycleStats([]models.PeriodRecord{period(day(2025, time.March, 1))})
	assert.False(t, one.Available())
	assert.Equal(t, 1, one.PeriodCount)

	two := ComputeCycleStats([]models.PeriodRecord{
		period(day(2025, time.March, 1)),
		period(day(2025, time.March, 29)),
	})
	assert.True(t, two.Available())
	assert.False(t, two.HasHistory())
	assert.False(t, two.Irregular())
}

func TestComputeCycleStats_PeriodLength(t *testing.T) {
	stats := ComputeCycleStats([]models.PeriodRecord{
		periodWithEnd(day(2025, time.January, 1), 5),
		periodWithEnd(day(2025, time.January, 29), 6),
		period(day(2025, time.February, 26)),
	})

	require.NotNil(t, stats.AveragePeriodLength)
	assert.InDelta(t, 5.5, *stats.AveragePeriodLength, 0.0001)
}

func TestClassifyVariation(t *testing.T) {
	tests := []struct {
		variation      int
		wantRegularity models.Regularity
		wantConfidence models.Confidence
	}{
		{0, models.RegularityRegular, models.ConfidenceHigh},
		{3, models.RegularityRegular, models.ConfidenceHigh},
		{4, models.RegularitySomewhatIrregular, models.ConfidenceMedium},
		{7, models.RegularitySomewhatIrregular, models.ConfidenceMedium},
		{8, models.RegularityIrregular, models.ConfidenceLow},
		{30, models.RegularityIrregular, models.ConfidenceLow},
	}

	for _, tt := range tests {
		regularity, confidence := ClassifyVariation(tt.variation)
		assert.Equal(t, tt.wantRegularity, regularity, "variation %d", tt.variation)
		assert.Equal(t, tt.wantConfidence, confidence, "variation %d", tt.variation)
	}
}

func TestCycleHealth(t *testing.T) {
	t.Run("insufficient data", func(t *testing.T) {
		health := CycleHealth(ComputeCycleStats(somewhatIrregularHistory()[:2]))
		assert.Equal(t, models.StatusInsufficientData, health.Status)
		assert.Nil(t, health.AverageLength)
		assert.Nil(t, health.Variation)
	})

	t.Run("healthy", func(t *testing.T) {
		health := CycleHealth(ComputeCycleStats(somewhatIrregularHistory()))
		assert.Equal(t, models.StatusHealthy, health.Status)
		require.NotNil(t, health.AverageLength)
		assert.Equal(t, 30, *health.AverageLength)
		require.NotNil(t, health.Variation)
		assert.Equal(t, 4, *health.Variation)
		assert.Equal(t, 3, health.TotalCycles)
		assert.Equal(t, models.RegularitySomewhatIrregular, health.Regularity)
	})

	t.Run("irregular", func(t *testing.T) {
		health := CycleHealth(ComputeCycleStats(irregularHistory()))
		assert.Equal(t, models.StatusIrregular, health.Status)
		assert.Equal(t, models.ConfidenceLow, health.Confidence)
	})

	t.Run("out of range wins over regularity", func(t *testing.T) {
		health := CycleHealth(ComputeCycleStats(longCycleHistory()))
		assert.Equal(t, models.StatusAttentionNeeded, health.Status)
		assert.Equal(t, models.RegularityRegular, health.Regularity)
	})
}

func TestSummarizeCycles(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		summary := SummarizeCycles(nil)
		assert.Equal(t, models.RegularityInsufficientData, summary.CycleRegularity)
		assert.Nil(t, summary.AverageCycleLength)
		assert.Nil(t, summary.NextPredictedPeriod)
	})

	t.Run("with history", func(t *testing.T) {
		summary := SummarizeCycles([]models.PeriodRecord{
			periodWithEnd(day(2025, time.January, 1), 5),
			periodWithEnd(day(2025, time.January, 29), 5),
			periodWithEnd(day(2025, time.February, 26), 5),
		})

		require.NotNil(t, summary.AverageCycleLength)
		assert.Equal(t, 28, *summary.AverageCycleLength)
		require.NotNil(t, summary.AveragePeriodLength)
		assert.Equal(t, 5, *summary.AveragePeriodLength)
		require.NotNil(t, summary.NextPredictedPeriod)
		assert.Equal(t, day(2025, time.March, 26), *summary.NextPredictedPeriod)
		assert.Equal(t, models.RegularityRegular, summary.CycleRegularity)
		assert.Equal(t, 2, summary.TotalCycles)
	})
}

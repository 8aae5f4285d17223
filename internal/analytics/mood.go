package analytics

import (
	"sort"

	"github.com/Stuti0916/SymMuse/internal/models"
)

const (
	// Minimum mood entries before phase patterns are reported
	MinMoodsForPatterns = 10

	// Recent windows, counted in entries
	ShortMoodWindow = 7
	LongMoodWindow  = 14

	commonSymptomLimit  = 5
	moodTrendMinEntries = 3
	moodTrendThreshold  = 0.5
)

// PhaseMoodAverages averages mood level per known phase
func PhaseMoodAverages(moods []models.MoodRecord, classifier *PhaseClassifier) map[models.CyclePhase]float64 {
	grouped := GroupedAverage(moods,
		func(m models.MoodRecord) (string, bool) {
			phase := classifier.Classify(m.Date)
			return string(phase), phase != models.PhaseUnknown
		},
		models.MoodRecord.MoodValue,
	)

	averages := make(map[models.CyclePhase]float64, len(grouped))
	for phase, avg := range grouped {
		averages[models.CyclePhase(phase)] = avg
	}
	return averages
}

// AnalyzeMoodPatterns reports phase averages once there are enough entries
func AnalyzeMoodPatterns(moods []models.MoodRecord, classifier *PhaseClassifier) models.MoodPatterns {
	if len(moods) < MinMoodsForPatterns {
		return models.MoodPatterns{Status: models.StatusInsufficientData}
	}

	averages := PhaseMoodAverages(moods, classifier)
	return models.MoodPatterns{
		Status:        models.StatusAnalyzed,
		PhaseAverages: averages,
		Insights:      phaseInsightMessages(averages),
	}
}

// AnalyzeMoodCorrelations relates mood level to sleep, energy, phase and symptoms
func AnalyzeMoodCorrelations(moods []models.MoodRecord, classifier *PhaseClassifier) models.MoodCorrelations {
	return models.MoodCorrelations{
		SleepVsMood:      pairedPearson(moods, models.MoodRecord.SleepHoursValue, models.MoodRecord.MoodValue),
		EnergyVsMood:     pairedPearson(moods, models.MoodRecord.EnergyValue, models.MoodRecord.MoodValue),
		MoodVsCyclePhase: PhaseMoodAverages(moods, classifier),
		MoodVsSymptoms:   symptomMoodAverages(moods),
	}
}

// pairedPearson correlates two fields over records that have both
func pairedPearson(moods []models.MoodRecord, xf, yf func(models.MoodRecord) (float64, bool)) float64 {
	xs := make([]float64, 0, len(moods))
	ys := make([]float64, 0, len(moods))
	for _, m := range moods {
		x, okX := xf(m)
		y, okY := yf(m)
		if !okX || !okY {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return Pearson(xs, ys)
}

type symptomMood struct {
	symptom string
	level   float64
}

// symptomMoodAverages averages mood level over the days each symptom was logged
func symptomMoodAverages(moods []models.MoodRecord) map[string]float64 {
	var pairs []symptomMood
	for _, m := range moods {
		level, ok := m.MoodValue()
		if !ok {
			continue
		}
		for _, s := range m.AllSymptoms() {
			pairs = append(pairs, symptomMood{symptom: s, level: level})
		}
	}
	return GroupedAverage(pairs,
		func(p symptomMood) (string, bool) { return p.symptom, true },
		func(p symptomMood) (float64, bool) { return p.level, true },
	)
}

// SummarizeMoods builds the summary shown alongside the mood log
func SummarizeMoods(moods []models.MoodRecord) models.MoodSummary {
	summary := models.MoodSummary{
		CommonSymptoms: []models.SymptomCount{},
		MoodTrend:      models.MoodTrendStable,
		TotalEntries:   len(moods),
	}
	if len(moods) == 0 {
		return summary
	}

	summary.AverageMood = averageOf(moods, models.MoodRecord.MoodValue)
	summary.AverageEnergy = averageOf(moods, models.MoodRecord.EnergyValue)
	summary.AverageSleep = averageOf(moods, models.MoodRecord.SleepHoursValue)

	tally := newSymptomTally()
	for _, m := range moods {
		for _, s := range m.AllSymptoms() {
			tally.add(s)
		}
	}
	for _, sc := range tally.top(commonSymptomLimit) {
		pct := float64(sc.Count) / float64(len(moods)) * 100
		sc.Percentage = &pct
		summary.CommonSymptoms = append(summary.CommonSymptoms, sc)
	}

	sorted := sortMoodsDesc(moods)
	recent := window(sorted, 0, ShortMoodWindow)
	previous := window(sorted, ShortMoodWindow, 2*ShortMoodWindow)
	if len(recent) >= moodTrendMinEntries && len(previous) >= moodTrendMinEntries {
		recentAvg, okRecent := meanOf(recent, models.MoodRecord.MoodValue)
		previousAvg, okPrevious := meanOf(previous, models.MoodRecord.MoodValue)
		if okRecent && okPrevious {
			diff := recentAvg - previousAvg
			switch {
			case diff > moodTrendThreshold:
				summary.MoodTrend = models.MoodTrendImproving
			case diff < -moodTrendThreshold:
				summary.MoodTrend = models.MoodTrendDeclining
			}
		}
	}

	return summary
}

// averageOf returns the mean rounded to one decimal, nil if nothing was recorded
func averageOf(moods []models.MoodRecord, value func(models.MoodRecord) (float64, bool)) *float64 {
	avg, ok := meanOf(moods, value)
	if !ok {
		return nil
	}
	rounded := roundTo(avg, 1)
	return &rounded
}

// meanOf averages a field over the records that have it
func meanOf(moods []models.MoodRecord, value func(models.MoodRecord) (float64, bool)) (float64, bool) {
	var sum float64
	count := 0
	for _, m := range moods {
		v, ok := value(m)
		if !ok {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// rangeOf returns max - min of a field over the records that have it
func rangeOf(moods []models.MoodRecord, value func(models.MoodRecord) (float64, bool)) (float64, bool) {
	var lo, hi float64
	count := 0
	for _, m := range moods {
		v, ok := value(m)
		if !ok {
			continue
		}
		if count == 0 || v < lo {
			lo = v
		}
		if count == 0 || v > hi {
			hi = v
		}
		count++
	}
	if count == 0 {
		return 0, false
	}
	return hi - lo, true
}

// window returns sorted[from:to] clamped to the slice bounds
func window(sorted []models.MoodRecord, from, to int) []models.MoodRecord {
	if from > len(sorted) {
		from = len(sorted)
	}
	if to > len(sorted) {
		to = len(sorted)
	}
	return sorted[from:to]
}

// sortMoodsDesc returns a copy ordered most recent first
func sortMoodsDesc(moods []models.MoodRecord) []models.MoodRecord {
	sorted := make([]models.MoodRecord, len(moods))
	copy(sorted, moods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

package analytics

import (
	"sort"

	"github.com/Stuti0916/SymMuse/internal/models"
)

// MostCommonLimit caps the mostCommon list of symptom patterns
const MostCommonLimit = 10

// symptomTally counts symptoms and remembers first-seen order for tie breaks
type symptomTally struct {
	order  []string
	counts map[string]int
}

func newSymptomTally() *symptomTally {
	return &symptomTally{counts: make(map[string]int)}
}

func (t *symptomTally) add(symptom string) {
	if _, seen := t.counts[symptom]; !seen {
		t.order = append(t.order, symptom)
	}
	t.counts[symptom]++
}

// top returns up to n symptoms by descending count, ties in first-seen order
func (t *symptomTally) top(n int) []models.SymptomCount {
	ranked := make([]models.SymptomCount, 0, len(t.order))
	for _, s := range t.order {
		ranked = append(ranked, models.SymptomCount{Symptom: s, Count: t.counts[s]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// SymptomsByPhase counts merged symptoms per known phase. Records falling in
// the unknown phase are left out.
func SymptomsByPhase(moods []models.MoodRecord, classifier *PhaseClassifier) models.PhaseSymptomCounts {
	byPhase := make(models.PhaseSymptomCounts)
	for _, m := range moods {
		phase := classifier.Classify(m.Date)
		if phase == models.PhaseUnknown {
			continue
		}
		symptoms := m.AllSymptoms()
		if len(symptoms) == 0 {
			continue
		}
		if byPhase[phase] == nil {
			byPhase[phase] = make(map[string]int)
		}
		for _, s := range symptoms {
			byPhase[phase][s]++
		}
	}
	return byPhase
}

// AnalyzeSymptomPatterns builds phase buckets plus a flat frequency table.
// The flat table counts every record, including unknown-phase ones.
func AnalyzeSymptomPatterns(moods []models.MoodRecord, classifier *PhaseClassifier) models.SymptomPatterns {
	tally := newSymptomTally()
	for _, m := range moods {
		for _, s := range m.AllSymptoms() {
			tally.add(s)
		}
	}

	return models.SymptomPatterns{
		ByPhase:    SymptomsByPhase(moods, classifier),
		Frequency:  tally.counts,
		MostCommon: tally.top(MostCommonLimit),
	}
}

// Package analytics turns period, mood and consultation records into cycle
// statistics, phase classifications, correlations, trends, insights, risk
// flags, health scores and cycle predictions.
//
// Everything here is a pure function of its input. Nothing is cached between
// calls, nothing reads the clock and nothing performs I/O, so one Engine can
// serve concurrent requests.
package analytics

import (
	"github.com/Stuti0916/SymMuse/internal/models"
)

// Options tunes the engine
type Options struct {
	// PredictionCycles is how many future cycle starts to project
	PredictionCycles int
}

// Dataset is one user's records for one window, as handed over by storage
type Dataset struct {
	Periods       []models.PeriodRecord
	Moods         []models.MoodRecord
	Consultations []models.ConsultationRecord
}

// Engine composes the analytics stages into the two analytics surfaces
type Engine struct {
	opts Options
}

// NewEngine creates a new analytics engine
func NewEngine(opts Options) *Engine {
	if opts.PredictionCycles <= 0 {
		opts.PredictionCycles = DefaultPredictionCycles
	}
	return &Engine{opts: opts}
}

// frame is the temporal context every later stage consumes
type frame struct {
	stats      CycleStats
	classifier *PhaseClassifier
}

func newFrame(periods []models.PeriodRecord) frame {
	return frame{
		stats:      ComputeCycleStats(periods),
		classifier: NewPhaseClassifier(periods),
	}
}

// Overview builds the overview analytics payload
func (e *Engine) Overview(d Dataset) models.HealthAnalytics {
	f := newFrame(d.Periods)
	ctx := NewInsightContext(f.stats, d.Moods, f.classifier)

	return models.HealthAnalytics{
		CycleHealth:         CycleHealth(f.stats),
		MoodPatterns:        AnalyzeMoodPatterns(d.Moods, f.classifier),
		SymptomCorrelations: SymptomsByPhase(d.Moods, f.classifier),
		HealthScore:         ScoreHealth(f.stats, d.Moods),
		Recommendations:     Recommend(ctx),
	}
}

// Advanced builds the premium analytics payload
func (e *Engine) Advanced(d Dataset) models.AdvancedAnalytics {
	f := newFrame(d.Periods)
	ctx := NewInsightContext(f.stats, d.Moods, f.classifier)

	return models.AdvancedAnalytics{
		CyclePredictions:     PredictCycles(f.stats, e.opts.PredictionCycles),
		SymptomPatterns:      AnalyzeSymptomPatterns(d.Moods, f.classifier),
		MoodCorrelations:     AnalyzeMoodCorrelations(d.Moods, f.classifier),
		HealthTrends:         AnalyzeHealthTrends(d.Periods, d.Moods, d.Consultations),
		PersonalizedInsights: GenerateInsights(ctx),
		RiskAssessment:       AssessRisks(ctx),
		HealthScore:          ScoreHealth(f.stats, d.Moods),
	}
}

// CycleSummary summarizes a period history
func (e *Engine) CycleSummary(periods []models.PeriodRecord) models.CycleSummary {
	return SummarizeCycles(periods)
}

// MoodSummary summarizes a window of mood entries
func (e *Engine) MoodSummary(moods []models.MoodRecord) models.MoodSummary {
	return SummarizeMoods(moods)
}

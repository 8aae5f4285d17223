package analytics

import (
	"github.com/Stuti0916/SymMuse/internal/models"
)

const (
	goodMoodThreshold        = 7.0
	lowMoodThreshold         = 5.0
	moodSupportThreshold     = 6.0
	menstrualMoodThreshold   = 6.0
	premenstrualDipMargin    = 1.0
	poorSleepQualityBoundary = 6.0
)

// Phase comparison messages, shared by mood patterns and personalized insights
const (
	lutealDipMessage     = "You tend to experience lower mood during your luteal phase (PMS)"
	menstrualMoodMessage = "Your mood tends to be lower during menstruation"
)

// InsightContext is the computed input every insight and risk rule reads
type InsightContext struct {
	Cycle         CycleStats
	PhaseAverages map[models.CyclePhase]float64
	MoodCount     int

	// Means over the most recent entries; valid only when the Has flag is set
	LongMoodMean         float64
	HasLongMoodMean      bool
	ShortMoodMean        float64
	HasShortMoodMean     bool
	ShortSleepQuality    float64
	HasShortSleepQuality bool
}

// NewInsightContext computes the context from a cycle frame and mood records
func NewInsightContext(stats CycleStats, moods []models.MoodRecord, classifier *PhaseClassifier) InsightContext {
	sorted := sortMoodsDesc(moods)
	ctx := InsightContext{
		Cycle:         stats,
		PhaseAverages: PhaseMoodAverages(sorted, classifier),
		MoodCount:     len(sorted),
	}

	if len(sorted) >= LongMoodWindow {
		ctx.LongMoodMean, ctx.HasLongMoodMean = meanOf(sorted[:LongMoodWindow], models.MoodRecord.MoodValue)
	}
	if len(sorted) >= ShortMoodWindow {
		recent := sorted[:ShortMoodWindow]
		ctx.ShortMoodMean, ctx.HasShortMoodMean = meanOf(recent, models.MoodRecord.MoodValue)
		ctx.ShortSleepQuality, ctx.HasShortSleepQuality = meanOf(recent, models.MoodRecord.SleepQualityValue)
	}
	return ctx
}

// InsightRule returns at most one insight for a context
type InsightRule func(ctx InsightContext) (models.Insight, bool)

// insightRules run in order: cycle regularity, mood stability, phase comparison, sleep
var insightRules = []InsightRule{
	regularCyclesRule,
	moodStabilityRule,
	premenstrualDipRule,
	menstrualMoodRule,
	sleepQualityRule,
}

// GenerateInsights evaluates every rule and concatenates what fires
func GenerateInsights(ctx InsightContext) []models.Insight {
	insights := make([]models.Insight, 0, len(insightRules))
	for _, rule := range insightRules {
		if insight, ok := rule(ctx); ok {
			insights = append(insights, insight)
		}
	}
	return insights
}

func regularCyclesRule(ctx InsightContext) (models.Insight, bool) {
	if !ctx.Cycle.VeryRegular() {
		return models.Insight{}, false
	}
	return models.Insight{
		Type:    models.InsightPositive,
		Title:   "Regular Cycles",
		Message: "Your cycles are very regular, which is a good sign of hormonal health.",
	}, true
}

// moodStabilityRule is silent for means in [5, 7)
func moodStabilityRule(ctx InsightContext) (models.Insight, bool) {
	if !ctx.HasLongMoodMean {
		return models.Insight{}, false
	}
	switch {
	case ctx.LongMoodMean >= goodMoodThreshold:
		return models.Insight{
			Type:    models.InsightPositive,
			Title:   "Good Mood Stability",
			Message: "Your mood has been consistently positive over the past two weeks.",
		}, true
	case ctx.LongMoodMean < lowMoodThreshold:
		return models.Insight{
			Type:    models.InsightAttention,
			Title:   "Mood Support Needed",
			Message: "Consider speaking with a healthcare provider about mood support strategies.",
		}, true
	}
	return models.Insight{}, false
}

func premenstrualDipRule(ctx InsightContext) (models.Insight, bool) {
	if !hasPremenstrualDip(ctx.PhaseAverages) {
		return models.Insight{}, false
	}
	return models.Insight{
		Type:    models.InsightNeutral,
		Title:   "Premenstrual Mood Dip",
		Message: lutealDipMessage,
	}, true
}

func menstrualMoodRule(ctx InsightContext) (models.Insight, bool) {
	if !hasLowMenstrualMood(ctx.PhaseAverages) {
		return models.Insight{}, false
	}
	return models.Insight{
		Type:    models.InsightNeutral,
		Title:   "Lower Mood During Menstruation",
		Message: menstrualMoodMessage,
	}, true
}

func sleepQualityRule(ctx InsightContext) (models.Insight, bool) {
	if !ctx.HasShortSleepQuality || ctx.ShortSleepQuality >= poorSleepQualityBoundary {
		return models.Insight{}, false
	}
	return models.Insight{
		Type:    models.InsightAttention,
		Title:   "Sleep Quality",
		Message: "Your sleep quality has been low this past week. A consistent bedtime routine may help.",
	}, true
}

func hasPremenstrualDip(averages map[models.CyclePhase]float64) bool {
	luteal, okLuteal := averages[models.PhaseLuteal]
	follicular, okFollicular := averages[models.PhaseFollicular]
	return okLuteal && okFollicular && luteal < follicular-premenstrualDipMargin
}

func hasLowMenstrualMood(averages map[models.CyclePhase]float64) bool {
	menstrual, ok := averages[models.PhaseMenstrual]
	return ok && menstrual < menstrualMoodThreshold
}

// phaseInsightMessages returns the phase comparison findings as plain text
func phaseInsightMessages(averages map[models.CyclePhase]float64) []string {
	messages := []string{}
	if hasPremenstrualDip(averages) {
		messages = append(messages, lutealDipMessage)
	}
	if hasLowMenstrualMood(averages) {
		messages = append(messages, menstrualMoodMessage)
	}
	return messages
}

// AssessRisks flags an average cycle length outside the healthy range
func AssessRisks(ctx InsightContext) []models.Risk {
	risks := []models.Risk{}
	if ctx.Cycle.HasHistory() && !ctx.Cycle.WithinHealthyRange() {
		risks = append(risks, models.Risk{
			Level:    models.RiskMedium,
			Category: "cycle_health",
			Message:  "Cycle length outside normal range - consider consulting a healthcare provider",
		})
	}
	return risks
}

// Recommend returns actionable suggestions for irregular cycles and low mood
func Recommend(ctx InsightContext) []models.Recommendation {
	recommendations := []models.Recommendation{}

	if ctx.Cycle.Irregular() {
		recommendations = append(recommendations, models.Recommendation{
			Type:        "cycle_health",
			Priority:    "high",
			Title:       "Improve Cycle Regularity",
			Description: "Consider stress management techniques and maintaining consistent sleep patterns",
		})
	}

	if ctx.HasShortMoodMean && ctx.ShortMoodMean < moodSupportThreshold {
		recommendations = append(recommendations, models.Recommendation{
			Type:        "mental_health",
			Priority:    "medium",
			Title:       "Focus on Mood Support",
			Description: "Consider mindfulness practices, regular exercise, or speaking with a healthcare provider",
		})
	}

	return recommendations
}

package models

import "time"

// CyclePhase represents a coarse position within an idealized cycle
type CyclePhase string

const (
	PhaseMenstrual  CyclePhase = "menstrual"
	PhaseFollicular CyclePhase = "follicular"
	PhaseOvulation  CyclePhase = "ovulation"
	PhaseLuteal     CyclePhase = "luteal"
	PhaseUnknown    CyclePhase = "unknown"
)

// KnownPhases lists the phases that carry data, in cycle order
var KnownPhases = []CyclePhase{PhaseMenstrual, PhaseFollicular, PhaseOvulation, PhaseLuteal}

// Regularity represents how consistent observed cycle lengths are
type Regularity string

const (
	RegularityRegular           Regularity = "regular"
	RegularitySomewhatIrregular Regularity = "somewhat_irregular"
	RegularityIrregular         Regularity = "irregular"
	RegularityInsufficientData  Regularity = "insufficient_data"
)

// Confidence represents the confidence level of a regularity call or prediction
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Status represents the outcome of an analysis section
type Status string

const (
	StatusInsufficientData Status = "insufficient_data"
	StatusAnalyzed         Status = "analyzed"
	StatusHealthy          Status = "healthy"
	StatusAttentionNeeded  Status = "attention_needed"
	StatusIrregular        Status = "irregular"
)

// Direction represents the direction of a trend
type Direction string

const (
	DirectionIncreasing Direction = "increasing"
	DirectionDecreasing Direction = "decreasing"
	DirectionStable     Direction = "stable"
)

// MoodTrend represents the short-term movement of mood
type MoodTrend string

const (
	MoodTrendImproving MoodTrend = "improving"
	MoodTrendDeclining MoodTrend = "declining"
	MoodTrendStable    MoodTrend = "stable"
)

// InsightType represents the tone of an insight
type InsightType string

const (
	InsightPositive  InsightType = "positive"
	InsightAttention InsightType = "attention"
	InsightNeutral   InsightType = "neutral"
)

// RiskLevel represents the severity of a risk flag
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// HealthLevel represents the band a health score falls in
type HealthLevel string

const (
	HealthExcellent      HealthLevel = "excellent"
	HealthGood           HealthLevel = "good"
	HealthFair           HealthLevel = "fair"
	HealthNeedsAttention HealthLevel = "needs_attention"
)

// Insight is a human-readable observation
type Insight struct {
	Type    InsightType `json:"type"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// Risk is a flag the user may want to discuss with a provider
type Risk struct {
	Level    RiskLevel `json:"level"`
	Category string    `json:"category"`
	Message  string    `json:"message"`
}

// Recommendation is an actionable suggestion
type Recommendation struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CycleHealth summarizes cycle length and regularity.
// Numeric fields are omitted when Status is insufficient_data.
type CycleHealth struct {
	Status        Status     `json:"status"`
	Message       string     `json:"message"`
	AverageLength *int       `json:"averageLength,omitempty"`
	Variation     *int       `json:"variation,omitempty"`
	TotalCycles   int        `json:"totalCycles,omitempty"`
	Regularity    Regularity `json:"regularity,omitempty"`
	Confidence    Confidence `json:"confidence,omitempty"`
}

// MoodPatterns holds mood averages per cycle phase
type MoodPatterns struct {
	Status        Status                 `json:"status"`
	PhaseAverages map[CyclePhase]float64 `json:"phaseAverages,omitempty"`
	Insights      []string               `json:"insights,omitempty"`
}

// PhaseSymptomCounts maps phase to symptom to count
type PhaseSymptomCounts map[CyclePhase]map[string]int

// HealthScore is a bounded heuristic composite
type HealthScore struct {
	Score   int         `json:"score"`
	Factors []string    `json:"factors"`
	Level   HealthLevel `json:"level"`
}

// CyclePrediction is a single projected cycle start
type CyclePrediction struct {
	Cycle              int        `json:"cycle"`
	PredictedStartDate time.Time  `json:"predictedStartDate"`
	Confidence         Confidence `json:"confidence"`
}

// CyclePredictions holds projected cycle starts, withheld when history is short
type CyclePredictions struct {
	Available          bool              `json:"available"`
	Message            string            `json:"message,omitempty"`
	Predictions        []CyclePrediction `json:"predictions,omitempty"`
	AverageCycleLength *int              `json:"averageCycleLength,omitempty"`
}

// SymptomCount is a symptom with its number of occurrences
type SymptomCount struct {
	Symptom    string   `json:"symptom"`
	Count      int      `json:"count"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// SymptomPatterns holds symptom frequencies overall and per phase
type SymptomPatterns struct {
	ByPhase    PhaseSymptomCounts `json:"byPhase"`
	Frequency  map[string]int     `json:"frequency"`
	MostCommon []SymptomCount     `json:"mostCommon"`
}

// MoodCorrelations relates mood to sleep, energy, phase and symptoms.
// A coefficient of 0 means no relationship or not enough signal.
type MoodCorrelations struct {
	SleepVsMood      float64                `json:"sleepVsMood"`
	EnergyVsMood     float64                `json:"energyVsMood"`
	MoodVsCyclePhase map[CyclePhase]float64 `json:"moodVsCyclePhase"`
	MoodVsSymptoms   map[string]float64     `json:"moodVsSymptoms"`
}

// MonthlyCounts holds record volume for one calendar month
type MonthlyCounts struct {
	Periods       int `json:"periods"`
	Moods         int `json:"moods"`
	Consultations int `json:"consultations"`
}

// Trend compares the second half of a series to the first
type Trend struct {
	Direction  Direction `json:"direction"`
	Change     float64   `json:"change"`
	Percentage float64   `json:"percentage"`
}

// HealthTrends holds month-bucketed volume and mood with their trends
type HealthTrends struct {
	MonthlyData map[string]MonthlyCounts `json:"monthlyData"`
	MonthlyMood map[string]float64       `json:"monthlyMood"`
	Trends      map[string]Trend         `json:"trends"`
}

// HealthAnalytics is the overview analytics payload
type HealthAnalytics struct {
	CycleHealth         CycleHealth        `json:"cycleHealth"`
	MoodPatterns        MoodPatterns       `json:"moodPatterns"`
	SymptomCorrelations PhaseSymptomCounts `json:"symptomCorrelations"`
	HealthScore         HealthScore        `json:"healthScore"`
	Recommendations     []Recommendation   `json:"recommendations"`
}

// AdvancedAnalytics is the premium analytics payload
type AdvancedAnalytics struct {
	CyclePredictions     CyclePredictions `json:"cyclePredictions"`
	SymptomPatterns      SymptomPatterns  `json:"symptomPatterns"`
	MoodCorrelations     MoodCorrelations `json:"moodCorrelations"`
	HealthTrends         HealthTrends     `json:"healthTrends"`
	PersonalizedInsights []Insight        `json:"personalizedInsights"`
	RiskAssessment       []Risk           `json:"riskAssessment"`
	HealthScore          HealthScore      `json:"healthScore"`
}

// CycleSummary is the per-history summary shown next to the period log
type CycleSummary struct {
	AverageCycleLength  *int       `json:"averageCycleLength"`
	AveragePeriodLength *int       `json:"averagePeriodLength"`
	NextPredictedPeriod *time.Time `json:"nextPredictedPeriod"`
	CycleRegularity     Regularity `json:"cycleRegularity"`
	TotalCycles         int        `json:"totalCycles,omitempty"`
}

// MoodSummary is the per-window summary shown next to the mood log
type MoodSummary struct {
	AverageMood    *float64       `json:"averageMood"`
	AverageEnergy  *float64       `json:"averageEnergy"`
	AverageSleep   *float64       `json:"averageSleep"`
	CommonSymptoms []SymptomCount `json:"commonSymptoms"`
	MoodTrend      MoodTrend      `json:"moodTrend"`
	TotalEntries   int            `json:"totalEntries"`
}

// DataRange describes the window and volume an analytics payload was built from
type DataRange struct {
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	PeriodsCount       int       `json:"periodsCount"`
	MoodEntriesCount   int       `json:"moodEntriesCount"`
	ConsultationsCount *int      `json:"consultationsCount,omitempty"`
}

// AnalyticsResponse is the API response for the overview surface
type AnalyticsResponse struct {
	Success   bool            `json:"success"`
	Analytics HealthAnalytics `json:"analytics"`
	DataRange DataRange       `json:"dataRange"`
}

// AdvancedAnalyticsResponse is the API response for the premium surface
type AdvancedAnalyticsResponse struct {
	Success   bool              `json:"success"`
	Analytics AdvancedAnalytics `json:"analytics"`
	DataRange DataRange         `json:"dataRange"`
}

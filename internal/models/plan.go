package models

// Feature names a plan capability
type Feature string

const (
	FeaturePeriodTracking       Feature = "periodTracking"
	FeatureBasicMoodTracking    Feature = "basicMoodTracking"
	FeatureAdvancedMoodTracking Feature = "advancedMoodTracking"
	FeatureDataExport           Feature = "dataExport"
	FeatureAdvancedAnalytics    Feature = "advancedAnalytics"
	FeatureSymptomPredictions   Feature = "symptomPredictions"
	FeaturePersonalizedInsights Feature = "personalizedInsights"
)

// planFeatures lists what each plan unlocks. Unknown plans get the free set.
var planFeatures = map[Plan]map[Feature]bool{
	PlanFree: {
		FeaturePeriodTracking:    true,
		FeatureBasicMoodTracking: true,
	},
	PlanPremium: {
		FeaturePeriodTracking:       true,
		FeatureBasicMoodTracking:    true,
		FeatureAdvancedMoodTracking: true,
		FeatureDataExport:           true,
		FeatureAdvancedAnalytics:    true,
		FeatureSymptomPredictions:   true,
	},
	PlanPro: {
		FeaturePeriodTracking:       true,
		FeatureBasicMoodTracking:    true,
		FeatureAdvancedMoodTracking: true,
		FeatureDataExport:           true,
		FeatureAdvancedAnalytics:    true,
		FeatureSymptomPredictions:   true,
		FeaturePersonalizedInsights: true,
	},
}

// HasFeature reports whether the plan includes f
func (p Plan) HasFeature(f Feature) bool {
	features, ok := planFeatures[p]
	if !ok {
		features = planFeatures[PlanFree]
	}
	return features[f]
}

package models

import "time"

// Flow represents the recorded intensity of a period
type Flow string

const (
	FlowLight  Flow = "light"
	FlowMedium Flow = "medium"
	FlowHeavy  Flow = "heavy"
)

// ConsultationStatus represents the lifecycle state of a teleconsultation
type ConsultationStatus string

const (
	ConsultationScheduled  ConsultationStatus = "scheduled"
	ConsultationInProgress ConsultationStatus = "in_progress"
	ConsultationCompleted  ConsultationStatus = "completed"
	ConsultationCancelled  ConsultationStatus = "cancelled"
	ConsultationNoShow     ConsultationStatus = "no-show"
)

// Plan represents a subscription plan
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
	PlanPro     Plan = "pro"
)

// User represents a user as seen by the analytics surfaces
type User struct {
	ID    string `json:"id" bson:"_id"`
	Email string `json:"email" bson:"email"`
	Plan  Plan   `json:"plan" bson:"plan"`
}

// PeriodRecord represents a logged period
type PeriodRecord struct {
	ID        string     `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string     `json:"userId,omitempty" bson:"userId,omitempty"`
	StartDate time.Time  `json:"startDate" bson:"startDate" validate:"required"`
	EndDate   *time.Time `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Flow      Flow       `json:"flow" bson:"flow" validate:"omitempty,oneof=light medium heavy"`
	Symptoms  []string   `json:"symptoms" bson:"symptoms"`
	Notes     string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

// HasEnd reports whether the period has a usable end date
func (p PeriodRecord) HasEnd() bool {
	return p.EndDate != nil && !p.EndDate.Before(p.StartDate)
}

// MoodLevel holds the self-reported mood for a day
type MoodLevel struct {
	Level    int      `json:"level" bson:"level" validate:"omitempty,min=1,max=10"`
	Emotions []string `json:"emotions" bson:"emotions"`
}

// SymptomSet holds symptoms split the way they are stored
type SymptomSet struct {
	Physical  []string `json:"physical" bson:"physical"`
	Emotional []string `json:"emotional" bson:"emotional"`
}

// Sleep holds the previous night's sleep
type Sleep struct {
	Hours   float64 `json:"hours" bson:"hours" validate:"gte=0,lte=24"`
	Quality int     `json:"quality" bson:"quality" validate:"omitempty,min=1,max=10"`
}

// MoodRecord represents one day of mood and symptom tracking.
// Zero numeric values mean the value was not recorded.
type MoodRecord struct {
	ID       string     `json:"id,omitempty" bson:"_id,omitempty"`
	UserID   string     `json:"userId,omitempty" bson:"userId,omitempty"`
	Date     time.Time  `json:"date" bson:"date" validate:"required"`
	Mood     MoodLevel  `json:"mood" bson:"mood"`
	Symptoms SymptomSet `json:"symptoms" bson:"symptoms"`
	Energy   int        `json:"energy" bson:"energy" validate:"omitempty,min=1,max=10"`
	Sleep    Sleep      `json:"sleep" bson:"sleep"`
	Notes    string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

// MoodValue returns the mood level and whether it was recorded
func (m MoodRecord) MoodValue() (float64, bool) {
	return scale(m.Mood.Level)
}

// EnergyValue returns the energy level and whether it was recorded
func (m MoodRecord) EnergyValue() (float64, bool) {
	return scale(m.Energy)
}

// SleepQualityValue returns the sleep quality and whether it was recorded
func (m MoodRecord) SleepQualityValue() (float64, bool) {
	return scale(m.Sleep.Quality)
}

// SleepHoursValue returns the hours slept and whether they were recorded
func (m MoodRecord) SleepHoursValue() (float64, bool) {
	if m.Sleep.Hours <= 0 {
		return 0, false
	}
	return m.Sleep.Hours, true
}

// AllSymptoms merges physical and emotional symptoms, physical first
func (m MoodRecord) AllSymptoms() []string {
	all := make([]string, 0, len(m.Symptoms.Physical)+len(m.Symptoms.Emotional))
	all = append(all, m.Symptoms.Physical...)
	all = append(all, m.Symptoms.Emotional...)
	return all
}

func scale(v int) (float64, bool) {
	if v <= 0 {
		return 0, false
	}
	return float64(v), true
}

// ConsultationRecord represents a teleconsultation, used only for volume counting
type ConsultationRecord struct {
	ID        string             `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string             `json:"userId,omitempty" bson:"userId,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" validate:"required"`
	Status    ConsultationStatus `json:"status" bson:"status"`
	Rating    *int               `json:"rating,omitempty" bson:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

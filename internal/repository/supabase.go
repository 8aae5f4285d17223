package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Stuti0916/SymMuse/internal/models"
	"github.com/Stuti0916/SymMuse/pkg/supabase"
)

// PostgREST tables
const (
	tablePeriods       = "periods"
	tableMoodEntries   = "mood_entries"
	tableConsultations = "consultations"
	tableUsers         = "users"
)

// NewSupabaseStore wires every repository to one Supabase client
func NewSupabaseStore(client *supabase.Client) *Store {
	return &Store{
		Periods:       &supabasePeriodRepository{client: client},
		Moods:         &supabaseMoodRepository{client: client},
		Consultations: &supabaseConsultationRepository{client: client},
		Users:         &supabaseUserRepository{client: client},
	}
}

// rangeFilter builds a PostgREST filter for column within [since, until]
func rangeFilter(userID, column string, since, until time.Time) map[string]string {
	return map[string]string{
		"user_id": "eq." + userID,
		"and": fmt.Sprintf("(%s.gte.%s,%s.lte.%s)",
			column, since.UTC().Format(time.RFC3339),
			column, until.UTC().Format(time.RFC3339)),
		"order": column + ".desc",
	}
}

type periodRow struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Flow      string     `json:"flow"`
	Symptoms  []string   `json:"symptoms"`
	Notes     *string    `json:"notes"`
}

func (r periodRow) toModel() models.PeriodRecord {
	p := models.PeriodRecord{
		ID:        r.ID,
		UserID:    r.UserID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Flow:      models.Flow(r.Flow),
		Symptoms:  r.Symptoms,
	}
	if r.Notes != nil {
		p.Notes = *r.Notes
	}
	return p
}

type supabasePeriodRepository struct {
	client *supabase.Client
}

func (r *supabasePeriodRepository) ListByUser(ctx context.Context, userID string, since, until time.Time) ([]models.PeriodRecord, error) {
	return r.list(ctx, rangeFilter(userID, "start_date", since, until))
}

func (r *supabasePeriodRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.PeriodRecord, error) {
	return r.list(ctx, map[string]string{
		"user_id": "eq." + userID,
		"order":   "start_date.desc",
		"limit":   strconv.Itoa(limit),
	})
}

func (r *supabasePeriodRepository) list(ctx context.Context, query map[string]string) ([]models.PeriodRecord, error) {
	var rows []periodRow
	if err := r.client.QueryInto(ctx, tablePeriods, query, "", &rows); err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	periods := make([]models.PeriodRecord, 0, len(rows))
	for _, row := range rows {
		periods = append(periods, row.toModel())
	}
	return periods, nil
}

type moodRow struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Date              time.Time `json:"date"`
	MoodLevel         *int      `json:"mood_level"`
	Emotions          []string  `json:"emotions"`
	PhysicalSymptoms  []string  `json:"physical_symptoms"`
	EmotionalSymptoms []string  `json:"emotional_symptoms"`
	Energy            *int      `json:"energy"`
	SleepHours        *float64  `json:"sleep_hours"`
	SleepQuality      *int      `json:"sleep_quality"`
	Notes             *string   `json:"notes"`
}

func (r moodRow) toModel() models.MoodRecord {
	m := models.MoodRecord{
		ID:     r.ID,
		UserID: r.UserID,
		Date:   r.Date,
		Mood:   models.MoodLevel{Level: intOrZero(r.MoodLevel), Emotions: r.Emotions},
		Symptoms: models.SymptomSet{
			Physical:  r.PhysicalSymptoms,
			Emotional: r.EmotionalSymptoms,
		},
		Energy: intOrZero(r.Energy),
	}
	if r.SleepHours != nil {
		m.Sleep.Hours = *r.SleepHours
	}
	m.Sleep.Quality = intOrZero(r.SleepQuality)
	if r.Notes != nil {
		m.Notes = *r.Notes
	}
	return m
}

type supabaseMoodRepository struct {
	client *supabase.Client
}

func (r *supabaseMoodRepository) ListByUser(ctx context.Context, userID string, since, until time.Time) ([]models.MoodRecord, error) {
	var rows []moodRow
	if err := r.client.QueryInto(ctx, tableMoodEntries, rangeFilter(userID, "date", since, until), "", &rows); err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	moods := make([]models.MoodRecord, 0, len(rows))
	for _, row := range rows {
		moods = append(moods, row.toModel())
	}
	return moods, nil
}

type consultationRow struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
	Rating    *int      `json:"rating"`
}

type supabaseConsultationRepository struct {
	client *supabase.Client
}

func (r *supabaseConsultationRepository) ListByUser(ctx context.Context, userID string, since, until time.Time) ([]models.ConsultationRecord, error) {
	var rows []consultationRow
	if err := r.client.QueryInto(ctx, tableConsultations, rangeFilter(userID, "created_at", since, until), "", &rows); err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	consultations := make([]models.ConsultationRecord, 0, len(rows))
	for _, row := range rows {
		consultations = append(consultations, models.ConsultationRecord{
			ID:        row.ID,
			UserID:    row.UserID,
			CreatedAt: row.CreatedAt,
			Status:    models.ConsultationStatus(row.Status),
			Rating:    row.Rating,
		})
	}
	return consultations, nil
}

type userRow struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Plan  *string `json:"plan"`
}

type supabaseUserRepository struct {
	client *supabase.Client
}

func (r *supabaseUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var rows []userRow
	query := map[string]string{"id": "eq." + id, "select": "id,email,plan"}
	if err := r.client.QueryInto(ctx, tableUsers, query, "", &rows); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	user := &models.User{ID: rows[0].ID, Email: rows[0].Email, Plan: models.PlanFree}
	if rows[0].Plan != nil && *rows[0].Plan != "" {
		user.Plan = models.Plan(*rows[0].Plan)
	}
	return user, nil
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

package domain

import "time"

// SessionType classifies what a wellness entry reports on.
type SessionType string

const (
	SessionPractice SessionType = "practice"
	SessionGame     SessionType = "game"
)

// Valid reports whether s is one of the enumerated session types.
func (s SessionType) Valid() bool {
	return s == SessionPractice || s == SessionGame
}

// WellnessEntry is a player's self-report for one session. Entries are
// strictly owner-scoped: there is no admin mutate/delete path for them,
// only an admin read-all.
//
// Score fields are 1–10 self-assessments; InjuryPain and RPE allow 0.
type WellnessEntry struct {
	ID              string      `json:"id"`
	OwnerID         string      `json:"owner_id"`
	OwnerName       string      `json:"owner_name"`
	SessionType     SessionType `json:"session_type"`
	DurationMinutes int         `json:"duration_minutes,omitempty"`
	FatiguePre      int         `json:"fatigue_pre"`
	SleepQuality    int         `json:"sleep_quality"`
	SleepHours      float64     `json:"sleep_hours"`
	StressLevel     int         `json:"stress_level"`
	Mood            int         `json:"mood"`
	MuscleSoreness  int         `json:"muscle_soreness"`
	InjuryPain      int         `json:"injury_pain,omitempty"`
	MenstrualPeriod bool        `json:"menstrual_period"`
	NutritionQual   int         `json:"nutrition_quality"`
	FatiguePost     int         `json:"fatigue_post,omitempty"`
	RPE             int         `json:"rpe,omitempty"`
	Comments        string      `json:"comments,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

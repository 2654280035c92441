package models

import "time"

// Lifestyle captures activity context collected during onboarding.
type Lifestyle struct {
	PlaysSports   bool   `json:"plays_sports"`
	Sport         string `json:"sport,omitempty"`
	ActivityLevel string `json:"activity_level"`
	WorkingHours  int    `json:"working_hours"`
	SleepHours    int    `json:"sleep_hours"`
}

// UserProfile is the finished onboarding result. BMI and WHtR are computed
// once at profile creation.
type UserProfile struct {
	Height           float64    `json:"height"`
	Weight           float64    `json:"weight"`
	Age              int        `json:"age"`
	Gender           string     `json:"gender"`
	BMI              float64    `json:"bmi"`
	Waist            *float64   `json:"waist,omitempty"`
	WHtR             *float64   `json:"whtr,omitempty"`
	Experience       Experience `json:"experience"`
	Location         Location   `json:"location"`
	HomeEquipment    []string   `json:"home_equipment"`
	Goals            []string   `json:"goals"`
	Lifestyle        Lifestyle  `json:"lifestyle"`
	Diet             string     `json:"diet"`
	HealthConditions []string   `json:"health_conditions"`
}

// SelectedPlan is the user's plan position. CurrentDay advances by one on
// each recorded session, capped at the plan's final day.
type SelectedPlan struct {
	PlanID     string    `json:"plan_id"`
	StartDate  string    `json:"start_date"`
	CurrentDay int       `json:"current_day"`
	CreatedAt  time.Time `json:"created_at"`
}

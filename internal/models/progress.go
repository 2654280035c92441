package models

import "time"

// ExerciseSet is one recorded set. Weight is in kilograms.
type ExerciseSet struct {
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

// ExerciseProgress tracks one exercise through a session: one slot per
// prescribed set, filled in as the user completes them. Immutable once the
// session ends.
type ExerciseProgress struct {
	Name      string        `json:"name"`
	Completed bool          `json:"completed"`
	Sets      []ExerciseSet `json:"sets"`
}

// TotalVolume returns the sum of weight × reps over completed sets.
func (p ExerciseProgress) TotalVolume() float64 {
	var vol float64
	for _, s := range p.Sets {
		if s.Completed {
			vol += s.Weight * float64(s.Reps)
		}
	}
	return vol
}

// CompletedSets returns the number of sets marked completed.
func (p ExerciseProgress) CompletedSets() int {
	var n int
	for _, s := range p.Sets {
		if s.Completed {
			n++
		}
	}
	return n
}

// SessionResult is the outcome of a finished workout session, handed to the
// progress recorder at the terminal transition. Written once.
type SessionResult struct {
	Day            int                `json:"day"`
	Split          string             `json:"split"`
	Exercises      []ExerciseProgress `json:"exercises"`
	ElapsedSeconds int                `json:"elapsed_seconds"`
	TotalVolume    float64            `json:"total_volume"`
	CompletedSets  int                `json:"completed_sets"`
	CompletedAt    time.Time          `json:"completed_at"`
}

// DailyHabits are the per-day habit flags shown on the dashboard.
type DailyHabits struct {
	Workout       bool `json:"workout"`
	Sleep         bool `json:"sleep"`
	Protein       bool `json:"protein"`
	HealthyEating bool `json:"healthy_eating"`
	Water         bool `json:"water"`
}

// DailyProgress is the date-keyed daily record: the session outcome plus
// habit flags. DurationMin is the session duration rounded to minutes.
type DailyProgress struct {
	Date        string             `json:"date"`
	Day         int                `json:"day"`
	PlanDay     string             `json:"plan_day"`
	Completed   bool               `json:"completed"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	Exercises   []ExerciseProgress `json:"exercises"`
	Habits      DailyHabits        `json:"habits"`
	DurationMin int                `json:"duration"`
}

// PersonalRecord is the heaviest completed set recorded for an exercise.
type PersonalRecord struct {
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
}

// WorkoutHistory is the rolling all-time aggregate.
type WorkoutHistory struct {
	TotalWorkouts   int                       `json:"total_workouts"`
	TotalMissed     int                       `json:"total_missed"`
	CurrentStreak   int                       `json:"current_streak"`
	LongestStreak   int                       `json:"longest_streak"`
	TotalVolume     float64                   `json:"total_volume"`
	PersonalRecords map[string]PersonalRecord `json:"personal_records"`
}

// BodyMetric is a date-keyed body measurement snapshot.
type BodyMetric struct {
	Date    string   `json:"date"`
	Weight  float64  `json:"weight"`
	BodyFat *float64 `json:"body_fat,omitempty"`
	BMI     float64  `json:"bmi"`
	Chest   *float64 `json:"chest,omitempty"`
	Waist   *float64 `json:"waist,omitempty"`
	Arms    *float64 `json:"arms,omitempty"`
	Thighs  *float64 `json:"thighs,omitempty"`
}

// TodoItem is a tracked daily task (medicine, supplement, book, task, other).
type TodoItem struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	Category     string `json:"category"`
	Completed    bool   `json:"completed"`
	Recurring    bool   `json:"recurring"`
	ReminderTime string `json:"reminder_time,omitempty"`
}

package models

// Location is where the user trains.
type Location string

const (
	LocationGym  Location = "gym"
	LocationHome Location = "home"
)

// Experience is the user's training experience level.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Split identifies the muscle-group grouping strategy of a plan.
type Split string

const (
	SplitFullBody Split = "Full Body"
	SplitPPL      Split = "Push/Pull/Legs"
	SplitUpperLow Split = "Upper/Lower"
)

// Phase is a named sub-range of the 365-day plan with a training focus.
// Start and End are inclusive day numbers; a plan's phases are contiguous
// and cover 1..TotalDays.
type Phase struct {
	Name     string `json:"name"`
	StartDay int    `json:"start_day"`
	EndDay   int    `json:"end_day"`
	Focus    string `json:"focus"`
}

// WorkoutPlan is a 365-day periodized training plan.
type WorkoutPlan struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Location    Location   `json:"location"`
	Experience  Experience `json:"experience"`
	Goal        string     `json:"goal"`
	Split       Split      `json:"split"`
	DaysPerWeek int        `json:"days_per_week"`
	TotalDays   int        `json:"total_days"`
	Phases      []Phase    `json:"phases"`
}

// Alternative is a substitute exercise for a specific context
// (beginner, home, or a particular injury).
type Alternative struct {
	Name      string   `json:"name"`
	Equipment []string `json:"equipment,omitempty"`
	Reason    string   `json:"reason"`
}

// Exercise is an immutable exercise template. Reps is a range string like
// "8-10"; Rest is a duration string like "90s". Templates are never mutated
// at runtime — per-session state lives in ExerciseProgress.
type Exercise struct {
	Order            int                    `json:"order"`
	Name             string                 `json:"name"`
	Sets             int                    `json:"sets"`
	Reps             string                 `json:"reps"`
	Rest             string                 `json:"rest"`
	Intensity        string                 `json:"intensity"`
	Equipment        []string               `json:"equipment"`
	PrimaryMuscle    string                 `json:"primary_muscle"`
	SecondaryMuscles []string               `json:"secondary_muscles,omitempty"`
	Instructions     []string               `json:"instructions"`
	FormTips         []string               `json:"form_tips"`
	CommonMistakes   []string               `json:"common_mistakes"`
	Alternatives     map[string]Alternative `json:"alternatives,omitempty"`
}

// WarmupExercise is a single warm-up checklist item.
type WarmupExercise struct {
	Name         string `json:"name"`
	Sets         int    `json:"sets,omitempty"`
	Reps         int    `json:"reps,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions"`
}

// CooldownExercise is a single cooldown checklist item.
type CooldownExercise struct {
	Name         string `json:"name"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

// WarmupBlock is the warm-up section of a workout day.
type WarmupBlock struct {
	Duration  string           `json:"duration"`
	Exercises []WarmupExercise `json:"exercises"`
}

// CooldownBlock is the cooldown section of a workout day.
type CooldownBlock struct {
	Duration  string             `json:"duration"`
	Exercises []CooldownExercise `json:"exercises"`
}

// WorkoutTips is the daily advice bundle attached to a workout day.
type WorkoutTips struct {
	Motivation string `json:"motivation"`
	Nutrition  string `json:"nutrition"`
	Hydration  string `json:"hydration"`
	Recovery   string `json:"recovery"`
	Mindset    string `json:"mindset"`
	NextDay    string `json:"next_day"`
}

// SafetyNote is a condition-keyed safety reminder.
type SafetyNote struct {
	Condition string `json:"condition"`
	Note      string `json:"note"`
}

// DurationEstimate breaks down the expected session length in minutes.
type DurationEstimate struct {
	Warmup   int    `json:"warmup"`
	Workout  int    `json:"workout"`
	Cooldown int    `json:"cooldown"`
	Total    string `json:"total"`
}

// WorkoutDay is a fully materialized day program. It is derived purely from
// (plan id, day number) and regenerated on demand — never persisted.
type WorkoutDay struct {
	Day              int              `json:"day"`
	PlanID           string           `json:"plan_id"`
	Phase            string           `json:"phase"`
	Week             int              `json:"week"`
	Split            string           `json:"split"`
	TargetMuscles    []string         `json:"target_muscles"`
	Warmup           WarmupBlock      `json:"warmup"`
	MainWorkout      []Exercise       `json:"main_workout"`
	Cooldown         CooldownBlock    `json:"cooldown"`
	Tips             WorkoutTips      `json:"tips"`
	SafetyNotes      []SafetyNote     `json:"safety_notes"`
	EstimatedTime    DurationEstimate `json:"estimated_duration"`
	DifficultyRating int              `json:"difficulty_rating"`
	CaloriesBurned   string           `json:"calories_burned"`
	EquipmentNeeded  []string         `json:"equipment_needed"`
}

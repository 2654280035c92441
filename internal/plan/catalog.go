// Package plan holds the static workout plan catalog and the deterministic
// day generator that materializes a day's program from (plan id, day number).
package plan

import "github.com/claude/fit365/internal/models"

// Catalog is the static table of available 365-day plans. Phases are
// contiguous and cover 1..365 for every plan; VerifyCatalog checks this
// once at startup.
var Catalog = []models.WorkoutPlan{
	{
		ID:          "GYM_BEG_MUSCLE_FULL",
		Name:        "Gym Beginner - Full Body",
		Description: "Perfect for beginners. Full body workouts 3x per week.",
		Location:    models.LocationGym,
		Experience:  models.ExperienceBeginner,
		Goal:        "muscle_gain",
		Split:       models.SplitFullBody,
		DaysPerWeek: 3,
		TotalDays:   365,
		Phases: []models.Phase{
			{Name: "Foundation", StartDay: 1, EndDay: 30, Focus: "Learn proper form"},
			{Name: "Building", StartDay: 31, EndDay: 90, Focus: "Progressive overload"},
			{Name: "Strength", StartDay: 91, EndDay: 180, Focus: "Increase intensity"},
			{Name: "Advanced", StartDay: 181, EndDay: 365, Focus: "Peak performance"},
		},
	},
	{
		ID:          "GYM_INT_MUSCLE_PPL",
		Name:        "Gym Intermediate - Push/Pull/Legs",
		Description: "6-day PPL split for serious muscle gains.",
		Location:    models.LocationGym,
		Experience:  models.ExperienceIntermediate,
		Goal:        "muscle_gain",
		Split:       models.SplitPPL,
		DaysPerWeek: 6,
		TotalDays:   365,
		Phases: []models.Phase{
			{Name: "Foundation", StartDay: 1, EndDay: 45, Focus: "Volume accumulation"},
			{Name: "Intensification", StartDay: 46, EndDay: 120, Focus: "Increase weight"},
			{Name: "Peak", StartDay: 121, EndDay: 240, Focus: "Maximum intensity"},
			{Name: "Maintenance", StartDay: 241, EndDay: 365, Focus: "Sustain gains"},
		},
	},
	{
		ID:          "GYM_ADV_STRENGTH_POWER",
		Name:        "Gym Advanced - Powerlifting",
		Description: "Advanced powerlifting program for maximum strength.",
		Location:    models.LocationGym,
		Experience:  models.ExperienceAdvanced,
		Goal:        "strength",
		Split:       models.SplitUpperLow,
		DaysPerWeek: 4,
		TotalDays:   365,
		Phases: []models.Phase{
			{Name: "Hypertrophy", StartDay: 1, EndDay: 60, Focus: "Build muscle base"},
			{Name: "Strength", StartDay: 61, EndDay: 150, Focus: "Heavy compounds"},
			{Name: "Peaking", StartDay: 151, EndDay: 280, Focus: "Max attempts"},
			{Name: "Deload", StartDay: 281, EndDay: 365, Focus: "Recovery & maintain"},
		},
	},
	{
		ID:          "HOME_BEG_MUSCLE_BW",
		Name:        "Home Beginner - Bodyweight",
		Description: "Build muscle at home with no equipment.",
		Location:    models.LocationHome,
		Experience:  models.ExperienceBeginner,
		Goal:        "muscle_gain",
		Split:       models.SplitFullBody,
		DaysPerWeek: 3,
		TotalDays:   365,
		Phases: []models.Phase{
			{Name: "Foundation", StartDay: 1, EndDay: 45, Focus: "Master basics"},
			{Name: "Progression", StartDay: 46, EndDay: 120, Focus: "Add variations"},
			{Name: "Advanced", StartDay: 121, EndDay: 240, Focus: "Complex movements"},
			{Name: "Elite", StartDay: 241, EndDay: 365, Focus: "Peak calisthenics"},
		},
	},
	{
		ID:          "HOME_INT_MUSCLE_DB",
		Name:        "Home Intermediate - Dumbbell",
		Description: "Full home workout with dumbbells only.",
		Location:    models.LocationHome,
		Experience:  models.ExperienceIntermediate,
		Goal:        "muscle_gain",
		Split:       models.SplitUpperLow,
		DaysPerWeek: 4,
		TotalDays:   365,
		Phases: []models.Phase{
			{Name: "Foundation", StartDay: 1, EndDay: 60, Focus: "Build base"},
			{Name: "Growth", StartDay: 61, EndDay: 180, Focus: "Progressive overload"},
			{Name: "Peak", StartDay: 181, EndDay: 300, Focus: "Maximum effort"},
			{Name: "Maintain", StartDay: 301, EndDay: 365, Focus: "Sustain gains"},
		},
	},
	{
		ID:          "GYM_INT_FAT_UL",
		Name:        "Gym Intermediate - Fat Loss",
		Description: "Upper/Lower split optimized for fat loss.",
		Location:    models.LocationGym,
		Experience:  models.ExperienceIntermediate,
		Goal:        "fat_loss",
		Split:       models.SplitUpperLow,
		DaysPerWeek: 4,
		TotalDays:   365,
		Phases: []models.Phase{
			{Name: "Conditioning", StartDay: 1, EndDay: 45, Focus: "Build work capacity"},
			{Name: "Fat Burn", StartDay: 46, EndDay: 150, Focus: "High intensity"},
			{Name: "Shred", StartDay: 151, EndDay: 280, Focus: "Maximum definition"},
			{Name: "Maintain", StartDay: 281, EndDay: 365, Focus: "Sustain leanness"},
		},
	},
}

// FindPlan selects the best plan for a user. Exact match on (location,
// experience, primary goal) first, then (location, experience), then the
// catalog default. Deliberately lossy — never fails.
func FindPlan(location models.Location, experience models.Experience, goals []string) models.WorkoutPlan {
	primaryGoal := "muscle_gain"
	if len(goals) > 0 {
		primaryGoal = goals[0]
	}

	for _, p := range Catalog {
		if p.Location == location && p.Experience == experience && p.Goal == primaryGoal {
			return p
		}
	}
	for _, p := range Catalog {
		if p.Location == location && p.Experience == experience {
			return p
		}
	}
	return Catalog[0]
}

// FindByID resolves a plan by id, falling back to the catalog default for
// unknown ids.
func FindByID(planID string) models.WorkoutPlan {
	for _, p := range Catalog {
		if p.ID == planID {
			return p
		}
	}
	return Catalog[0]
}

// VerifyCatalog checks the phase contiguity invariant for every plan:
// phases must cover 1..TotalDays with no gaps or overlaps. Called once at
// startup; a malformed catalog is a build-time data error, not a runtime
// condition.
func VerifyCatalog() error {
	for _, p := range Catalog {
		next := 1
		for _, ph := range p.Phases {
			if ph.StartDay != next {
				return &CatalogError{Plan: p.ID, Phase: ph.Name}
			}
			if ph.EndDay < ph.StartDay {
				return &CatalogError{Plan: p.ID, Phase: ph.Name}
			}
			next = ph.EndDay + 1
		}
		if next != p.TotalDays+1 {
			return &CatalogError{Plan: p.ID, Phase: "coverage"}
		}
	}
	return nil
}

// CatalogError reports a phase layout violation in the static catalog.
type CatalogError struct {
	Plan  string
	Phase string
}

func (e *CatalogError) Error() string {
	return "plan " + e.Plan + ": phase layout invalid at " + e.Phase
}

package plan

import (
	"fmt"

	"github.com/claude/fit365/internal/models"
)

// GenerateDay materializes the full program for one day of a plan. Pure and
// deterministic: identical inputs always yield structurally identical output.
// Unknown plan ids fall back to the catalog default; out-of-range phase
// lookups fall back to the plan's first phase. Never fails.
func GenerateDay(planID string, dayNumber int) models.WorkoutDay {
	p := FindByID(planID)

	weekNumber := (dayNumber + 6) / 7
	dayInWeek := (dayNumber-1)%7 + 1

	var split string
	var targetMuscles []string
	var exercises []models.Exercise

	switch p.Split {
	case models.SplitPPL:
		switch (dayNumber - 1) % 6 {
		case 0, 3:
			split = "Push"
			targetMuscles = []string{"Chest", "Shoulders", "Triceps"}
			exercises = pushExercises()
		case 1, 4:
			split = "Pull"
			targetMuscles = []string{"Back", "Biceps", "Rear Delts"}
			exercises = pullExercises()
		default:
			split = "Legs"
			targetMuscles = []string{"Quads", "Hamstrings", "Glutes", "Calves"}
			exercises = legExercises()
		}
	case models.SplitUpperLow:
		switch (dayNumber - 1) % 4 {
		case 0, 2:
			split = "Upper Body"
			targetMuscles = []string{"Chest", "Back", "Shoulders", "Arms"}
			exercises = upperExercises()
		default:
			split = "Lower Body"
			targetMuscles = []string{"Quads", "Hamstrings", "Glutes", "Calves"}
			exercises = legExercises()
		}
	default:
		split = "Full Body"
		targetMuscles = []string{"Chest", "Back", "Legs", "Shoulders", "Arms"}
		exercises = fullBodyExercises()
	}

	phase := p.Phases[0]
	for _, ph := range p.Phases {
		if dayNumber >= ph.StartDay && dayNumber <= ph.EndDay {
			phase = ph
			break
		}
	}

	difficulty := 5 + dayNumber/50
	if difficulty > 10 {
		difficulty = 10
	}

	nextDay := "Keep the momentum going tomorrow!"
	if dayInWeek == 7 {
		nextDay = "Rest day tomorrow - recover well!"
	}

	// Equipment is derived from the plan's location, not from the selected
	// exercises. Known approximation, kept deliberately.
	equipment := []string{"Bodyweight", "Dumbbells"}
	if p.Location == models.LocationGym {
		equipment = []string{"Barbell", "Dumbbells", "Cables", "Machines"}
	}

	percent := int(float64(dayNumber)/365*100 + 0.5)

	return models.WorkoutDay{
		Day:           dayNumber,
		PlanID:        p.ID,
		Phase:         phase.Name,
		Week:          weekNumber,
		Split:         split,
		TargetMuscles: targetMuscles,
		Warmup: models.WarmupBlock{
			Duration:  "5-7 min",
			Exercises: append([]models.WarmupExercise(nil), warmupItems...),
		},
		MainWorkout: exercises,
		Cooldown: models.CooldownBlock{
			Duration:  "5-10 min",
			Exercises: append([]models.CooldownExercise(nil), cooldownItems...),
		},
		Tips: models.WorkoutTips{
			Motivation: fmt.Sprintf("Day %d of 365! You're %d%% through your journey!", dayNumber, percent),
			Nutrition:  "Aim for 1.6-2.2g protein per kg of bodyweight today.",
			Hydration:  "Drink at least 3 liters of water throughout the day.",
			Recovery:   "Get 7-9 hours of quality sleep tonight.",
			Mindset:    "Focus on progress, not perfection.",
			NextDay:    nextDay,
		},
		SafetyNotes: []models.SafetyNote{
			{Condition: "general", Note: "Listen to your body. Stop if you feel sharp pain."},
		},
		EstimatedTime: models.DurationEstimate{
			Warmup:   7,
			Workout:  55,
			Cooldown: 8,
			Total:    "70 minutes",
		},
		DifficultyRating: difficulty,
		CaloriesBurned:   "350-450",
		EquipmentNeeded:  equipment,
	}
}

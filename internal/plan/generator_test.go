package plan

import (
	"reflect"
	"testing"

	"github.com/claude/fit365/internal/models"
)

// TestGenerateDayAllPlansAllDays verifies the core generator contract over the
// whole input domain: every (plan, day) pair yields a non-empty main workout,
// a difficulty in [5,10], and week = ceil(day/7).
func TestGenerateDayAllPlansAllDays(t *testing.T) {
	for _, p := range Catalog {
		for day := 1; day <= 365; day++ {
			wd := GenerateDay(p.ID, day)
			if len(wd.MainWorkout) == 0 {
				t.Fatalf("%s day %d: empty main workout", p.ID, day)
			}
			if wd.DifficultyRating < 5 || wd.DifficultyRating > 10 {
				t.Fatalf("%s day %d: difficulty = %d, want 5..10", p.ID, day, wd.DifficultyRating)
			}
			wantWeek := (day + 6) / 7
			if wd.Week != wantWeek {
				t.Fatalf("%s day %d: week = %d, want %d", p.ID, day, wd.Week, wantWeek)
			}
			if wd.Day != day || wd.PlanID != p.ID {
				t.Fatalf("%s day %d: identity fields wrong: %+v", p.ID, day, wd)
			}
		}
	}
}

// TestGenerateDayPPLCycle verifies the six-day Push/Pull/Legs rotation starts
// on Push at day 1 and repeats Push,Pull,Legs,Push,Pull,Legs.
func TestGenerateDayPPLCycle(t *testing.T) {
	want := []string{"Push", "Pull", "Legs", "Push", "Pull", "Legs"}
	for day := 1; day <= 18; day++ {
		wd := GenerateDay("GYM_INT_MUSCLE_PPL", day)
		if got := wd.Split; got != want[(day-1)%6] {
			t.Errorf("day %d: split = %q, want %q", day, got, want[(day-1)%6])
		}
	}
}

// TestGenerateDayUpperLowerCycle verifies the four-day Upper/Lower rotation:
// positions 0 and 2 are Upper, 1 and 3 are Lower.
func TestGenerateDayUpperLowerCycle(t *testing.T) {
	want := []string{"Upper Body", "Lower Body", "Upper Body", "Lower Body"}
	for day := 1; day <= 12; day++ {
		wd := GenerateDay("GYM_ADV_STRENGTH_POWER", day)
		if got := wd.Split; got != want[(day-1)%4] {
			t.Errorf("day %d: split = %q, want %q", day, got, want[(day-1)%4])
		}
	}
}

// TestGenerateDayUpperComposition verifies an Upper day is exactly the first
// three push and first three pull templates, in order.
func TestGenerateDayUpperComposition(t *testing.T) {
	wd := GenerateDay("HOME_INT_MUSCLE_DB", 1)
	if wd.Split != "Upper Body" {
		t.Fatalf("split = %q, want Upper Body", wd.Split)
	}
	if len(wd.MainWorkout) != 6 {
		t.Fatalf("len(mainWorkout) = %d, want 6", len(wd.MainWorkout))
	}
	wantNames := []string{
		"Barbell Bench Press", "Incline Dumbbell Press", "Dumbbell Chest Flyes",
		"Barbell Rows", "Lat Pulldowns", "Seated Cable Rows",
	}
	for i, ex := range wd.MainWorkout {
		if ex.Name != wantNames[i] {
			t.Errorf("exercise %d = %q, want %q", i, ex.Name, wantNames[i])
		}
	}
}

// TestGenerateDayFullBodyComposition verifies the fixed six-exercise full body
// composite: one push, one pull, one leg compound plus three accessories.
func TestGenerateDayFullBodyComposition(t *testing.T) {
	wd := GenerateDay("GYM_BEG_MUSCLE_FULL", 5)
	wantNames := []string{
		"Barbell Bench Press", "Barbell Rows", "Barbell Squats",
		"Overhead Press", "Barbell Curls", "Standing Calf Raises",
	}
	if len(wd.MainWorkout) != len(wantNames) {
		t.Fatalf("len(mainWorkout) = %d, want %d", len(wd.MainWorkout), len(wantNames))
	}
	for i, ex := range wd.MainWorkout {
		if ex.Name != wantNames[i] {
			t.Errorf("exercise %d = %q, want %q", i, ex.Name, wantNames[i])
		}
	}
}

// TestGenerateDayIdempotent verifies determinism: two calls with identical
// inputs yield structurally identical output.
func TestGenerateDayIdempotent(t *testing.T) {
	a := GenerateDay("GYM_INT_MUSCLE_PPL", 123)
	b := GenerateDay("GYM_INT_MUSCLE_PPL", 123)
	if !reflect.DeepEqual(a, b) {
		t.Error("GenerateDay is not deterministic for identical inputs")
	}
}

// TestGenerateDayUnknownPlanFallsBack verifies an unknown plan id resolves to
// the catalog default instead of failing.
func TestGenerateDayUnknownPlanFallsBack(t *testing.T) {
	wd := GenerateDay("NO_SUCH_PLAN", 1)
	if wd.PlanID != Catalog[0].ID {
		t.Errorf("planID = %q, want catalog default %q", wd.PlanID, Catalog[0].ID)
	}
	if len(wd.MainWorkout) == 0 {
		t.Error("fallback plan produced empty workout")
	}
}

// TestGenerateDayPhaseResolution verifies phase boundaries are inclusive and
// out-of-range days fall back to the plan's first phase.
func TestGenerateDayPhaseResolution(t *testing.T) {
	cases := []struct {
		day  int
		want string
	}{
		{1, "Foundation"},
		{45, "Foundation"},
		{46, "Intensification"},
		{120, "Intensification"},
		{121, "Peak"},
		{241, "Maintenance"},
		{365, "Maintenance"},
		{400, "Foundation"}, // beyond the plan: first phase
	}
	for _, tc := range cases {
		wd := GenerateDay("GYM_INT_MUSCLE_PPL", tc.day)
		if wd.Phase != tc.want {
			t.Errorf("day %d: phase = %q, want %q", tc.day, wd.Phase, tc.want)
		}
	}
}

// TestGenerateDayDifficultyRamp verifies the monotonic difficulty ramp:
// 5 + day/50 capped at 10.
func TestGenerateDayDifficultyRamp(t *testing.T) {
	cases := []struct{ day, want int }{
		{1, 5}, {49, 5}, {50, 6}, {100, 7}, {249, 9}, {250, 10}, {365, 10},
	}
	for _, tc := range cases {
		if got := GenerateDay("GYM_BEG_MUSCLE_FULL", tc.day).DifficultyRating; got != tc.want {
			t.Errorf("day %d: difficulty = %d, want %d", tc.day, got, tc.want)
		}
	}
}

// TestGenerateDayEquipmentByLocation verifies equipment is derived from plan
// location regardless of the day's actual exercise selection.
func TestGenerateDayEquipmentByLocation(t *testing.T) {
	gym := GenerateDay("GYM_INT_MUSCLE_PPL", 3)
	wantGym := []string{"Barbell", "Dumbbells", "Cables", "Machines"}
	if !reflect.DeepEqual(gym.EquipmentNeeded, wantGym) {
		t.Errorf("gym equipment = %v, want %v", gym.EquipmentNeeded, wantGym)
	}

	home := GenerateDay("HOME_BEG_MUSCLE_BW", 3)
	wantHome := []string{"Bodyweight", "Dumbbells"}
	if !reflect.DeepEqual(home.EquipmentNeeded, wantHome) {
		t.Errorf("home equipment = %v, want %v", home.EquipmentNeeded, wantHome)
	}
}

// TestGenerateDayWarmupCooldownFixed verifies the warm-up and cooldown blocks
// are attached identically regardless of split.
func TestGenerateDayWarmupCooldownFixed(t *testing.T) {
	push := GenerateDay("GYM_INT_MUSCLE_PPL", 1)
	legs := GenerateDay("GYM_INT_MUSCLE_PPL", 3)
	if !reflect.DeepEqual(push.Warmup, legs.Warmup) {
		t.Error("warm-up block varies by split")
	}
	if !reflect.DeepEqual(push.Cooldown, legs.Cooldown) {
		t.Error("cooldown block varies by split")
	}
	if len(push.Warmup.Exercises) != 4 {
		t.Errorf("warm-up items = %d, want 4", len(push.Warmup.Exercises))
	}
	if len(push.Cooldown.Exercises) != 3 {
		t.Errorf("cooldown items = %d, want 3", len(push.Cooldown.Exercises))
	}
}

// TestGenerateDayRestDayTip verifies the next-day tip flips on the seventh day
// of each week.
func TestGenerateDayRestDayTip(t *testing.T) {
	if tip := GenerateDay("GYM_BEG_MUSCLE_FULL", 7).Tips.NextDay; tip != "Rest day tomorrow - recover well!" {
		t.Errorf("day 7 tip = %q", tip)
	}
	if tip := GenerateDay("GYM_BEG_MUSCLE_FULL", 8).Tips.NextDay; tip != "Keep the momentum going tomorrow!" {
		t.Errorf("day 8 tip = %q", tip)
	}
}

// TestFindPlanExactMatch verifies the three-key exact match picks the
// dedicated plan.
func TestFindPlanExactMatch(t *testing.T) {
	p := FindPlan(models.LocationGym, models.ExperienceIntermediate, []string{"fat_loss"})
	if p.ID != "GYM_INT_FAT_UL" {
		t.Errorf("plan = %q, want GYM_INT_FAT_UL", p.ID)
	}
}

// TestFindPlanGoalFallback verifies that with no goal match the selection
// degrades to (location, experience) only.
func TestFindPlanGoalFallback(t *testing.T) {
	p := FindPlan(models.LocationGym, models.ExperienceIntermediate, []string{"endurance"})
	if p.Location != models.LocationGym || p.Experience != models.ExperienceIntermediate {
		t.Errorf("fallback plan = %q, want a gym/intermediate plan", p.ID)
	}
}

// TestFindPlanDefault verifies the final fallback is the catalog's first plan
// when neither match succeeds.
func TestFindPlanDefault(t *testing.T) {
	p := FindPlan(models.LocationHome, models.ExperienceAdvanced, []string{"strength"})
	if p.ID != Catalog[0].ID {
		t.Errorf("plan = %q, want catalog default %q", p.ID, Catalog[0].ID)
	}
}

// TestFindPlanEmptyGoals verifies an empty goals list defaults the primary
// goal to muscle_gain rather than failing.
func TestFindPlanEmptyGoals(t *testing.T) {
	p := FindPlan(models.LocationGym, models.ExperienceBeginner, nil)
	if p.ID != "GYM_BEG_MUSCLE_FULL" {
		t.Errorf("plan = %q, want GYM_BEG_MUSCLE_FULL", p.ID)
	}
}

// TestVerifyCatalog verifies the shipped catalog satisfies the phase
// contiguity invariant checked at startup.
func TestVerifyCatalog(t *testing.T) {
	if err := VerifyCatalog(); err != nil {
		t.Fatalf("catalog invalid: %v", err)
	}
}

// TestVerifyCatalogDetectsGap verifies the startup check rejects a plan whose
// phases leave a gap.
func TestVerifyCatalogDetectsGap(t *testing.T) {
	orig := Catalog
	defer func() { Catalog = orig }()

	bad := make([]models.WorkoutPlan, len(orig))
	copy(bad, orig)
	bad[0].Phases = []models.Phase{
		{Name: "A", StartDay: 1, EndDay: 100},
		{Name: "B", StartDay: 102, EndDay: 365}, // gap at 101
	}
	Catalog = bad

	if err := VerifyCatalog(); err == nil {
		t.Fatal("expected error for phase gap")
	}
}

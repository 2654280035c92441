package importer

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/claude/fit365/internal/models"
	"github.com/google/uuid"
)

type fakeStore struct {
	profile  *models.UserProfile
	plan     *models.SelectedPlan
	progress map[string]models.DailyProgress
	history  *models.WorkoutHistory
	metrics  []models.BodyMetric
	todos    []models.TodoItem
	settings map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		progress: make(map[string]models.DailyProgress),
		settings: make(map[string]string),
	}
}

func (f *fakeStore) SaveProfile(_ context.Context, p models.UserProfile) error {
	f.profile = &p
	return nil
}

func (f *fakeStore) SaveSelectedPlan(_ context.Context, sp models.SelectedPlan) error {
	f.plan = &sp
	return nil
}

func (f *fakeStore) UpsertDailyProgress(_ context.Context, p models.DailyProgress) error {
	f.progress[p.Date] = p
	return nil
}

func (f *fakeStore) SaveHistory(_ context.Context, h models.WorkoutHistory) error {
	f.history = &h
	return nil
}

func (f *fakeStore) UpsertBodyMetric(_ context.Context, m models.BodyMetric) error {
	f.metrics = append(f.metrics, m)
	return nil
}

func (f *fakeStore) UpsertTodo(_ context.Context, t models.TodoItem) error {
	f.todos = append(f.todos, t)
	return nil
}

func (f *fakeStore) SetSetting(_ context.Context, key, value string) error {
	f.settings[key] = value
	return nil
}

func testLogger() *slog.Logger {
	return slog.Default()
}

const fullExport = `{
	"profile": {"height": 180, "weight": 82, "age": 30, "gender": "male", "bmi": 25.3,
		"experience": "intermediate", "location": "gym",
		"home_equipment": [], "goals": ["muscle_gain"],
		"lifestyle": {"activity_level": "moderate"}, "diet": "", "health_conditions": []},
	"selected_plan": {"plan_id": "GYM_INT_MUSCLE_PPL", "start_date": "2026-01-05", "current_day": 40},
	"daily_progress": {
		"2026-02-10": {"day": 36, "plan_day": "Push Day", "completed": true,
			"habits": {"workout": true, "water": true}},
		"2026-02-11": {"day": 37, "plan_day": "Pull Day", "completed": true,
			"habits": {"workout": true}}
	},
	"workout_history": {"total_workouts": 37, "current_streak": 5, "longest_streak": 12,
		"total_volume": 84000, "personal_records": {"Barbell Bench Press": {"weight": 90, "date": "2026-02-01"}}},
	"body_metrics": [{"date": "2026-02-01", "weight": 82.5, "bmi": 25.5}],
	"todos": [
		{"id": "1706900000000", "text": "Creatine", "category": "supplement", "recurring": true},
		{"id": "", "text": "", "category": "task"}
	],
	"theme": "light"
}`

// TestImportFullExport verifies every section of a complete export lands in
// the store and the stats reflect what was written.
func TestImportFullExport(t *testing.T) {
	store := newFakeStore()
	imp := New(store, testLogger())

	stats, err := imp.Import(context.Background(), strings.NewReader(fullExport))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if !stats.ProfileImported || store.profile == nil {
		t.Error("profile not imported")
	}
	if store.profile != nil && store.profile.Height != 180 {
		t.Errorf("profile height = %v, want 180", store.profile.Height)
	}
	if !stats.PlanImported || store.plan == nil {
		t.Fatal("plan not imported")
	}
	if store.plan.PlanID != "GYM_INT_MUSCLE_PPL" || store.plan.CurrentDay != 40 {
		t.Errorf("plan = %+v", store.plan)
	}
	if stats.ProgressDays != 2 || len(store.progress) != 2 {
		t.Errorf("ProgressDays = %d, stored %d, want 2", stats.ProgressDays, len(store.progress))
	}
	if !stats.HistoryImported || store.history == nil || store.history.TotalWorkouts != 37 {
		t.Errorf("history not imported: %+v", store.history)
	}
	if stats.BodyMetrics != 1 || len(store.metrics) != 1 {
		t.Errorf("BodyMetrics = %d, want 1", stats.BodyMetrics)
	}
	if stats.Todos != 1 || stats.TodosSkipped != 1 {
		t.Errorf("Todos = %d (skipped %d), want 1 imported 1 skipped", stats.Todos, stats.TodosSkipped)
	}
	if store.settings["theme"] != "light" {
		t.Errorf("theme = %q, want light", store.settings["theme"])
	}
}

// TestImportReplacesNonUUIDIDs verifies the browser app's timestamp todo ids
// are replaced with UUIDs while real UUIDs are kept.
func TestImportReplacesNonUUIDIDs(t *testing.T) {
	store := newFakeStore()
	imp := New(store, testLogger())

	keep := uuid.NewString()
	export := `{"todos": [
		{"id": "1706900000000", "text": "Creatine", "category": "supplement"},
		{"id": "` + keep + `", "text": "Read", "category": "book"}
	]}`
	if _, err := imp.Import(context.Background(), strings.NewReader(export)); err != nil {
		t.Fatalf("Import: %v", err)
	}

	if len(store.todos) != 2 {
		t.Fatalf("imported %d todos, want 2", len(store.todos))
	}
	if _, err := uuid.Parse(store.todos[0].ID); err != nil {
		t.Errorf("timestamp id not replaced: %q", store.todos[0].ID)
	}
	if store.todos[1].ID != keep {
		t.Errorf("valid UUID replaced: %q", store.todos[1].ID)
	}
}

// TestImportDateFromMapKey verifies the progress map key wins over any date
// field inside the record.
func TestImportDateFromMapKey(t *testing.T) {
	store := newFakeStore()
	imp := New(store, testLogger())

	export := `{"daily_progress": {"2026-03-01": {"date": "1999-01-01", "day": 10}}}`
	if _, err := imp.Import(context.Background(), strings.NewReader(export)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if _, ok := store.progress["2026-03-01"]; !ok {
		t.Fatalf("progress keyed by %v, want map key date", store.progress)
	}
}

// TestImportClampsPlanDay verifies out-of-range plan positions are clamped
// into the program's 1..365 range.
func TestImportClampsPlanDay(t *testing.T) {
	store := newFakeStore()
	imp := New(store, testLogger())

	export := `{"selected_plan": {"plan_id": "GYM_INT_MUSCLE_PPL", "start_date": "2024-01-01", "current_day": 999}}`
	if _, err := imp.Import(context.Background(), strings.NewReader(export)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if store.plan.CurrentDay != 365 {
		t.Errorf("CurrentDay = %d, want 365", store.plan.CurrentDay)
	}
}

// TestImportInvalidJSON verifies a malformed document fails without writes.
func TestImportInvalidJSON(t *testing.T) {
	store := newFakeStore()
	imp := New(store, testLogger())

	if _, err := imp.Import(context.Background(), strings.NewReader("{not json")); err == nil {
		t.Fatal("expected parse error")
	}
	if store.profile != nil || len(store.progress) != 0 {
		t.Error("store written despite parse error")
	}
}

// TestImportIgnoresUnknownTheme verifies themes outside dark/light are not
// written.
func TestImportIgnoresUnknownTheme(t *testing.T) {
	store := newFakeStore()
	imp := New(store, testLogger())

	if _, err := imp.Import(context.Background(), strings.NewReader(`{"theme": "neon"}`)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if _, ok := store.settings["theme"]; ok {
		t.Error("unknown theme written")
	}
}

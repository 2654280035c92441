package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/claude/fit365/internal/models"
)

// fakeStore is an in-memory Store capturing what the recorder writes.
type fakeStore struct {
	daily       map[string]models.DailyProgress
	history     models.WorkoutHistory
	advanced    int
	advancedMax int
	failHistory error
}

func newFakeStore() *fakeStore {
	return &fakeStore{daily: make(map[string]models.DailyProgress)}
}

func (f *fakeStore) GetDailyProgress(_ context.Context, date string) (*models.DailyProgress, error) {
	if p, ok := f.daily[date]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeStore) UpsertDailyProgress(_ context.Context, p models.DailyProgress) error {
	f.daily[p.Date] = p
	return nil
}

func (f *fakeStore) GetHistory(_ context.Context) (models.WorkoutHistory, error) {
	if f.failHistory != nil {
		return models.WorkoutHistory{}, f.failHistory
	}
	return f.history, nil
}

func (f *fakeStore) SaveHistory(_ context.Context, h models.WorkoutHistory) error {
	f.history = h
	return nil
}

func (f *fakeStore) AdvancePlanDay(_ context.Context, maxDay int) error {
	f.advanced++
	f.advancedMax = maxDay
	return nil
}

func fixedRecorder(store Store, at time.Time) *Recorder {
	r := New(store)
	r.now = func() time.Time { return at }
	return r
}

func sampleResult() models.SessionResult {
	return models.SessionResult{
		Day:   12,
		Split: "Push Day",
		Exercises: []models.ExerciseProgress{
			{
				Name:      "Barbell Bench Press",
				Completed: true,
				Sets: []models.ExerciseSet{
					{Weight: 60, Reps: 10, Completed: true},
					{Weight: 65, Reps: 8, Completed: true},
				},
			},
			{
				Name: "Overhead Press",
				Sets: []models.ExerciseSet{
					{Weight: 40, Reps: 8, Completed: true},
					{Weight: 0, Reps: 0, Completed: false},
				},
			},
		},
		ElapsedSeconds: 2750,
		TotalVolume:    60*10 + 65*8 + 40*8,
		CompletedSets:  3,
		CompletedAt:    time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
	}
}

// TestRecordSessionWritesDailyRecord verifies the daily record lands under
// today's date with the workout marked complete and the duration rounded
// down to whole minutes.
func TestRecordSessionWritesDailyRecord(t *testing.T) {
	store := newFakeStore()
	at := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	r := fixedRecorder(store, at)

	if err := r.RecordSession(context.Background(), sampleResult()); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	daily, ok := store.daily["2026-03-14"]
	if !ok {
		t.Fatal("no daily record written for 2026-03-14")
	}
	if !daily.Completed {
		t.Error("daily record not marked completed")
	}
	if !daily.Habits.Workout {
		t.Error("workout habit flag not set")
	}
	if daily.Day != 12 {
		t.Errorf("daily.Day = %d, want 12", daily.Day)
	}
	if daily.PlanDay != "Push Day" {
		t.Errorf("daily.PlanDay = %q, want %q", daily.PlanDay, "Push Day")
	}
	if daily.DurationMin != 45 {
		t.Errorf("DurationMin = %d, want 45 (2750s rounded down)", daily.DurationMin)
	}
	if daily.CompletedAt == nil || !daily.CompletedAt.Equal(at) {
		t.Errorf("CompletedAt = %v, want %v", daily.CompletedAt, at)
	}
}

// TestRecordSessionPreservesHabits verifies that habit flags checked off
// earlier in the day survive the workout being recorded on top of them.
func TestRecordSessionPreservesHabits(t *testing.T) {
	store := newFakeStore()
	store.daily["2026-03-14"] = models.DailyProgress{
		Date:   "2026-03-14",
		Habits: models.DailyHabits{Water: true, Protein: true},
	}
	r := fixedRecorder(store, time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC))

	if err := r.RecordSession(context.Background(), sampleResult()); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	habits := store.daily["2026-03-14"].Habits
	if !habits.Water || !habits.Protein {
		t.Errorf("earlier habit flags lost: %+v", habits)
	}
	if !habits.Workout {
		t.Error("workout habit flag not set")
	}
}

// TestRecordSessionUpdatesHistory verifies the aggregate counters: workout
// count and total volume increment, the current streak grows, and the
// longest streak is only raised when the current one passes it.
func TestRecordSessionUpdatesHistory(t *testing.T) {
	store := newFakeStore()
	store.history = models.WorkoutHistory{
		TotalWorkouts: 10,
		CurrentStreak: 3,
		LongestStreak: 8,
		TotalVolume:   5000,
	}
	r := fixedRecorder(store, time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC))

	if err := r.RecordSession(context.Background(), sampleResult()); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	h := store.history
	if h.TotalWorkouts != 11 {
		t.Errorf("TotalWorkouts = %d, want 11", h.TotalWorkouts)
	}
	if h.CurrentStreak != 4 {
		t.Errorf("CurrentStreak = %d, want 4", h.CurrentStreak)
	}
	if h.LongestStreak != 8 {
		t.Errorf("LongestStreak = %d, want 8 (not yet beaten)", h.LongestStreak)
	}
	want := 5000 + sampleResult().TotalVolume
	if h.TotalVolume != want {
		t.Errorf("TotalVolume = %v, want %v", h.TotalVolume, want)
	}
}

// TestRecordSessionExtendsLongestStreak verifies the longest streak follows
// the current streak once the current one overtakes it.
func TestRecordSessionExtendsLongestStreak(t *testing.T) {
	store := newFakeStore()
	store.history = models.WorkoutHistory{CurrentStreak: 5, LongestStreak: 5}
	r := fixedRecorder(store, time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC))

	if err := r.RecordSession(context.Background(), sampleResult()); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if store.history.LongestStreak != 6 {
		t.Errorf("LongestStreak = %d, want 6", store.history.LongestStreak)
	}
}

// TestRecordSessionPersonalRecords verifies that the heaviest completed set
// per exercise becomes a personal record, that existing heavier records
// survive, and that exercises with no completed weight set no record.
func TestRecordSessionPersonalRecords(t *testing.T) {
	store := newFakeStore()
	store.history = models.WorkoutHistory{
		PersonalRecords: map[string]models.PersonalRecord{
			"Overhead Press": {Weight: 50, Date: "2026-01-01"},
		},
	}
	r := fixedRecorder(store, time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC))

	result := sampleResult()
	result.Exercises = append(result.Exercises, models.ExerciseProgress{
		Name: "Lateral Raises",
		Sets: []models.ExerciseSet{{Weight: 12, Reps: 15, Completed: false}},
	})
	if err := r.RecordSession(context.Background(), result); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	records := store.history.PersonalRecords
	bench, ok := records["Barbell Bench Press"]
	if !ok || bench.Weight != 65 {
		t.Errorf("bench record = %+v, want weight 65", bench)
	}
	if bench.Date != "2026-03-14" {
		t.Errorf("bench record date = %q, want 2026-03-14", bench.Date)
	}
	if ohp := records["Overhead Press"]; ohp.Weight != 50 || ohp.Date != "2026-01-01" {
		t.Errorf("heavier existing record overwritten: %+v", ohp)
	}
	if _, ok := records["Lateral Raises"]; ok {
		t.Error("record set for exercise with no completed sets")
	}
}

// TestRecordSessionAdvancesPlanDay verifies the plan counter is advanced
// exactly once per recorded session, capped at the program length.
func TestRecordSessionAdvancesPlanDay(t *testing.T) {
	store := newFakeStore()
	r := fixedRecorder(store, time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC))

	if err := r.RecordSession(context.Background(), sampleResult()); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if store.advanced != 1 {
		t.Errorf("AdvancePlanDay called %d times, want 1", store.advanced)
	}
	if store.advancedMax != 365 {
		t.Errorf("AdvancePlanDay cap = %d, want 365", store.advancedMax)
	}
}

// TestRecordSessionStoreError verifies a storage failure is surfaced and the
// plan day is left untouched.
func TestRecordSessionStoreError(t *testing.T) {
	store := newFakeStore()
	store.failHistory = errors.New("disk full")
	r := fixedRecorder(store, time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC))

	err := r.RecordSession(context.Background(), sampleResult())
	if err == nil {
		t.Fatal("expected error from failing store")
	}
	if store.advanced != 0 {
		t.Errorf("plan day advanced despite history failure")
	}
}

// Package progress persists finished workout sessions: the daily record,
// the rolling history aggregate, and the plan day counter.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/fit365/internal/models"
)

// maxPlanDay is the last day of the 365-day program.
const maxPlanDay = 365

// Store is the slice of the storage layer the recorder needs.
type Store interface {
	GetDailyProgress(ctx context.Context, date string) (*models.DailyProgress, error)
	UpsertDailyProgress(ctx context.Context, p models.DailyProgress) error
	GetHistory(ctx context.Context) (models.WorkoutHistory, error)
	SaveHistory(ctx context.Context, h models.WorkoutHistory) error
	AdvancePlanDay(ctx context.Context, maxDay int) error
}

// Recorder writes a finished session to storage. It implements the session
// engine's Recorder contract.
type Recorder struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Recorder {
	return &Recorder{store: store, now: time.Now}
}

// RecordSession persists one finished workout. It upserts the daily record
// for today (keeping any habit flags already checked off), folds the session
// into the history aggregate, and advances the plan day.
func (r *Recorder) RecordSession(ctx context.Context, result models.SessionResult) error {
	now := r.now().UTC()
	date := now.Format("2006-01-02")

	daily := models.DailyProgress{
		Date:        date,
		Day:         result.Day,
		PlanDay:     result.Split,
		Completed:   true,
		CompletedAt: &now,
		Exercises:   result.Exercises,
		DurationMin: result.ElapsedSeconds / 60,
	}
	existing, err := r.store.GetDailyProgress(ctx, date)
	if err != nil {
		return fmt.Errorf("loading daily progress: %w", err)
	}
	if existing != nil {
		daily.Habits = existing.Habits
	}
	daily.Habits.Workout = true
	if err := r.store.UpsertDailyProgress(ctx, daily); err != nil {
		return fmt.Errorf("saving daily progress: %w", err)
	}

	history, err := r.store.GetHistory(ctx)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	history.TotalWorkouts++
	history.TotalVolume += result.TotalVolume
	history.CurrentStreak++
	if history.CurrentStreak > history.LongestStreak {
		history.LongestStreak = history.CurrentStreak
	}
	if history.PersonalRecords == nil {
		history.PersonalRecords = make(map[string]models.PersonalRecord)
	}
	for _, ex := range result.Exercises {
		best := maxCompletedWeight(ex)
		if best <= 0 {
			continue
		}
		if prev, ok := history.PersonalRecords[ex.Name]; !ok || best > prev.Weight {
			history.PersonalRecords[ex.Name] = models.PersonalRecord{Weight: best, Date: date}
		}
	}
	if err := r.store.SaveHistory(ctx, history); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}

	if err := r.store.AdvancePlanDay(ctx, maxPlanDay); err != nil {
		return fmt.Errorf("advancing plan day: %w", err)
	}
	return nil
}

func maxCompletedWeight(ex models.ExerciseProgress) float64 {
	var best float64
	for _, s := range ex.Sets {
		if s.Completed && s.Weight > best {
			best = s.Weight
		}
	}
	return best
}

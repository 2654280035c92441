package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/claude/fit365/internal/models"
)

// UpsertDailyProgress writes the record for one date, replacing any existing
// row. Last-write-wins; habit merging is the recorder's concern, not ours.
func (db *DB) UpsertDailyProgress(ctx context.Context, p models.DailyProgress) error {
	exercises, err := json.Marshal(p.Exercises)
	if err != nil {
		return fmt.Errorf("encoding exercises: %w", err)
	}

	var completedAt *string
	if p.CompletedAt != nil {
		s := p.CompletedAt.UTC().Format(time.RFC3339)
		completedAt = &s
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO daily_progress (user_id, date, day, plan_day, completed, completed_at,
		 duration_min, exercises, habit_workout, habit_sleep, habit_protein,
		 habit_healthy_eating, habit_water)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		   day=excluded.day, plan_day=excluded.plan_day, completed=excluded.completed,
		   completed_at=excluded.completed_at, duration_min=excluded.duration_min,
		   exercises=excluded.exercises, habit_workout=excluded.habit_workout,
		   habit_sleep=excluded.habit_sleep, habit_protein=excluded.habit_protein,
		   habit_healthy_eating=excluded.habit_healthy_eating, habit_water=excluded.habit_water`,
		defaultUserID, p.Date, p.Day, p.PlanDay, p.Completed, completedAt,
		p.DurationMin, string(exercises), p.Habits.Workout, p.Habits.Sleep,
		p.Habits.Protein, p.Habits.HealthyEating, p.Habits.Water)
	if err != nil {
		return fmt.Errorf("upserting daily progress: %w", err)
	}
	return nil
}

// GetDailyProgress retrieves the record for one date (YYYY-MM-DD).
// A date with no record yields (nil, nil); most days have none.
func (db *DB) GetDailyProgress(ctx context.Context, date string) (*models.DailyProgress, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT date, day, plan_day, completed, completed_at, duration_min, exercises,
		 habit_workout, habit_sleep, habit_protein, habit_healthy_eating, habit_water
		 FROM daily_progress WHERE user_id = $1 AND date = $2`,
		defaultUserID, date)

	p, err := scanDailyProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying daily progress: %w", err)
	}
	return p, nil
}

// QueryDailyProgress retrieves all records in a date range, inclusive,
// ordered by date.
func (db *DB) QueryDailyProgress(ctx context.Context, start, end string) ([]models.DailyProgress, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT date, day, plan_day, completed, completed_at, duration_min, exercises,
		 habit_workout, habit_sleep, habit_protein, habit_healthy_eating, habit_water
		 FROM daily_progress
		 WHERE user_id = $1 AND date >= $2 AND date <= $3
		 ORDER BY date ASC`,
		defaultUserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying daily progress range: %w", err)
	}
	defer rows.Close()

	var result []models.DailyProgress
	for rows.Next() {
		p, err := scanDailyProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning daily progress: %w", err)
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDailyProgress(row rowScanner) (*models.DailyProgress, error) {
	var p models.DailyProgress
	var completedAt *string
	var exercises string
	if err := row.Scan(&p.Date, &p.Day, &p.PlanDay, &p.Completed, &completedAt,
		&p.DurationMin, &exercises, &p.Habits.Workout, &p.Habits.Sleep,
		&p.Habits.Protein, &p.Habits.HealthyEating, &p.Habits.Water); err != nil {
		return nil, err
	}
	if completedAt != nil {
		if t, err := time.Parse(time.RFC3339, *completedAt); err == nil {
			p.CompletedAt = &t
		}
	}
	if err := json.Unmarshal([]byte(exercises), &p.Exercises); err != nil {
		return nil, fmt.Errorf("decoding exercises: %w", err)
	}
	return &p, nil
}

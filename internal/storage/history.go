package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/claude/fit365/internal/models"
)

// GetHistory retrieves the all-time workout aggregate. A missing row yields
// the zero aggregate rather than an error — every counter starts at zero.
func (db *DB) GetHistory(ctx context.Context) (models.WorkoutHistory, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT total_workouts, total_missed, current_streak, longest_streak,
		 total_volume, personal_records
		 FROM workout_history WHERE user_id = $1`, defaultUserID)

	var h models.WorkoutHistory
	var records string
	err := row.Scan(&h.TotalWorkouts, &h.TotalMissed, &h.CurrentStreak,
		&h.LongestStreak, &h.TotalVolume, &records)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WorkoutHistory{PersonalRecords: map[string]models.PersonalRecord{}}, nil
	}
	if err != nil {
		return h, fmt.Errorf("querying history: %w", err)
	}
	if err := json.Unmarshal([]byte(records), &h.PersonalRecords); err != nil {
		return h, fmt.Errorf("decoding personal records: %w", err)
	}
	if h.PersonalRecords == nil {
		h.PersonalRecords = map[string]models.PersonalRecord{}
	}
	return h, nil
}

// SaveHistory upserts the all-time workout aggregate.
func (db *DB) SaveHistory(ctx context.Context, h models.WorkoutHistory) error {
	records, err := json.Marshal(h.PersonalRecords)
	if err != nil {
		return fmt.Errorf("encoding personal records: %w", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO workout_history (user_id, total_workouts, total_missed,
		 current_streak, longest_streak, total_volume, personal_records)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (user_id) DO UPDATE SET
		   total_workouts=excluded.total_workouts, total_missed=excluded.total_missed,
		   current_streak=excluded.current_streak, longest_streak=excluded.longest_streak,
		   total_volume=excluded.total_volume, personal_records=excluded.personal_records`,
		defaultUserID, h.TotalWorkouts, h.TotalMissed, h.CurrentStreak,
		h.LongestStreak, h.TotalVolume, string(records))
	if err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

package storage

import (
	"context"
	"fmt"

	"github.com/claude/fit365/internal/models"
)

// UpsertBodyMetric writes one date-keyed body measurement snapshot.
func (db *DB) UpsertBodyMetric(ctx context.Context, m models.BodyMetric) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO body_metrics (user_id, date, weight, body_fat, bmi, chest, waist, arms, thighs)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		   weight=excluded.weight, body_fat=excluded.body_fat, bmi=excluded.bmi,
		   chest=excluded.chest, waist=excluded.waist, arms=excluded.arms,
		   thighs=excluded.thighs`,
		defaultUserID, m.Date, m.Weight, m.BodyFat, m.BMI, m.Chest, m.Waist, m.Arms, m.Thighs)
	if err != nil {
		return fmt.Errorf("upserting body metric: %w", err)
	}
	return nil
}

// QueryBodyMetrics retrieves all snapshots in a date range, oldest first.
func (db *DB) QueryBodyMetrics(ctx context.Context, start, end string) ([]models.BodyMetric, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT date, weight, body_fat, bmi, chest, waist, arms, thighs
		 FROM body_metrics
		 WHERE user_id = $1 AND date >= $2 AND date <= $3
		 ORDER BY date ASC`,
		defaultUserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying body metrics: %w", err)
	}
	defer rows.Close()

	var result []models.BodyMetric
	for rows.Next() {
		var m models.BodyMetric
		if err := rows.Scan(&m.Date, &m.Weight, &m.BodyFat, &m.BMI,
			&m.Chest, &m.Waist, &m.Arms, &m.Thighs); err != nil {
			return nil, fmt.Errorf("scanning body metric: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

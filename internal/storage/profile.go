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

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("storage: not found")

// SaveProfile upserts the user profile.
func (db *DB) SaveProfile(ctx context.Context, p models.UserProfile) error {
	equipment, _ := json.Marshal(p.HomeEquipment)
	goals, _ := json.Marshal(p.Goals)
	lifestyle, _ := json.Marshal(p.Lifestyle)
	conditions, _ := json.Marshal(p.HealthConditions)

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO profiles (user_id, height, weight, age, gender, bmi, waist, whtr,
		 experience, location, home_equipment, goals, lifestyle, diet, health_conditions, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		 ON CONFLICT (user_id) DO UPDATE SET
		   height=excluded.height, weight=excluded.weight, age=excluded.age,
		   gender=excluded.gender, bmi=excluded.bmi, waist=excluded.waist, whtr=excluded.whtr,
		   experience=excluded.experience, location=excluded.location,
		   home_equipment=excluded.home_equipment, goals=excluded.goals,
		   lifestyle=excluded.lifestyle, diet=excluded.diet,
		   health_conditions=excluded.health_conditions`,
		defaultUserID, p.Height, p.Weight, p.Age, p.Gender, p.BMI, p.Waist, p.WHtR,
		p.Experience, p.Location, string(equipment), string(goals), string(lifestyle),
		p.Diet, string(conditions), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the user profile. Returns ErrNotFound before
// onboarding has run.
func (db *DB) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT height, weight, age, gender, bmi, waist, whtr, experience, location,
		 home_equipment, goals, lifestyle, diet, health_conditions
		 FROM profiles WHERE user_id = $1`, defaultUserID)

	var p models.UserProfile
	var equipment, goals, lifestyle, conditions string
	err := row.Scan(&p.Height, &p.Weight, &p.Age, &p.Gender, &p.BMI, &p.Waist, &p.WHtR,
		&p.Experience, &p.Location, &equipment, &goals, &lifestyle, &p.Diet, &conditions)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	_ = json.Unmarshal([]byte(equipment), &p.HomeEquipment)
	_ = json.Unmarshal([]byte(goals), &p.Goals)
	_ = json.Unmarshal([]byte(lifestyle), &p.Lifestyle)
	_ = json.Unmarshal([]byte(conditions), &p.HealthConditions)
	return &p, nil
}

// SaveSelectedPlan upserts the user's plan position.
func (db *DB) SaveSelectedPlan(ctx context.Context, sp models.SelectedPlan) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO selected_plans (user_id, plan_id, start_date, current_day, created_at)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (user_id) DO UPDATE SET
		   plan_id=excluded.plan_id, start_date=excluded.start_date,
		   current_day=excluded.current_day`,
		defaultUserID, sp.PlanID, sp.StartDate, sp.CurrentDay,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving selected plan: %w", err)
	}
	return nil
}

// GetSelectedPlan retrieves the user's plan position.
func (db *DB) GetSelectedPlan(ctx context.Context) (*models.SelectedPlan, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT plan_id, start_date, current_day, created_at
		 FROM selected_plans WHERE user_id = $1`, defaultUserID)

	var sp models.SelectedPlan
	var created string
	err := row.Scan(&sp.PlanID, &sp.StartDate, &sp.CurrentDay, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying selected plan: %w", err)
	}
	sp.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &sp, nil
}

// AdvancePlanDay bumps current_day by one, capped at the given maximum.
func (db *DB) AdvancePlanDay(ctx context.Context, maxDay int) error {
	_, err := db.conn.ExecContext(ctx,
		`UPDATE selected_plans
		 SET current_day = CASE WHEN current_day + 1 > $1 THEN $1 ELSE current_day + 1 END
		 WHERE user_id = $2`, maxDay, defaultUserID)
	if err != nil {
		return fmt.Errorf("advancing plan day: %w", err)
	}
	return nil
}

// Package importer loads a JSON export produced by the original browser app
// into the database, so existing users keep their plan position and history.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/claude/fit365/internal/models"
	"github.com/google/uuid"
)

// Export is the JSON document the browser app produces: one key per
// localStorage entry.
type Export struct {
	Profile       *models.UserProfile             `json:"profile"`
	SelectedPlan  *models.SelectedPlan            `json:"selected_plan"`
	DailyProgress map[string]models.DailyProgress `json:"daily_progress"`
	History       *models.WorkoutHistory          `json:"workout_history"`
	BodyMetrics   []models.BodyMetric             `json:"body_metrics"`
	Todos         []models.TodoItem               `json:"todos"`
	Theme         string                          `json:"theme"`
}

// Store is the slice of the storage layer the importer writes through.
type Store interface {
	SaveProfile(ctx context.Context, p models.UserProfile) error
	SaveSelectedPlan(ctx context.Context, sp models.SelectedPlan) error
	UpsertDailyProgress(ctx context.Context, p models.DailyProgress) error
	SaveHistory(ctx context.Context, h models.WorkoutHistory) error
	UpsertBodyMetric(ctx context.Context, m models.BodyMetric) error
	UpsertTodo(ctx context.Context, t models.TodoItem) error
	SetSetting(ctx context.Context, key, value string) error
}

// Stats tracks what an import wrote.
type Stats struct {
	ProfileImported bool `json:"profile_imported"`
	PlanImported    bool `json:"plan_imported"`
	HistoryImported bool `json:"history_imported"`
	ProgressDays    int  `json:"progress_days"`
	BodyMetrics     int  `json:"body_metrics"`
	Todos           int  `json:"todos"`
	TodosSkipped    int  `json:"todos_skipped"`
}

// Importer reads an export document and writes it to the store.
type Importer struct {
	store Store
	log   *slog.Logger
}

// New creates a new Importer.
func New(store Store, log *slog.Logger) *Importer {
	return &Importer{store: store, log: log}
}

// Import reads one export document and writes every section it contains.
// Sections absent from the document are left untouched, so partial exports
// can be applied on top of existing data.
func (imp *Importer) Import(ctx context.Context, r io.Reader) (*Stats, error) {
	var export Export
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}

	stats := &Stats{}

	if export.Profile != nil {
		if err := imp.store.SaveProfile(ctx, *export.Profile); err != nil {
			return stats, fmt.Errorf("importing profile: %w", err)
		}
		stats.ProfileImported = true
	}

	if export.SelectedPlan != nil {
		sp := *export.SelectedPlan
		if sp.CurrentDay < 1 {
			sp.CurrentDay = 1
		}
		if sp.CurrentDay > 365 {
			sp.CurrentDay = 365
		}
		if err := imp.store.SaveSelectedPlan(ctx, sp); err != nil {
			return stats, fmt.Errorf("importing selected plan: %w", err)
		}
		stats.PlanImported = true
	}

	for date, p := range export.DailyProgress {
		// The map key is authoritative for the date
		p.Date = date
		if err := imp.store.UpsertDailyProgress(ctx, p); err != nil {
			return stats, fmt.Errorf("importing progress for %s: %w", date, err)
		}
		stats.ProgressDays++
	}

	if export.History != nil {
		if err := imp.store.SaveHistory(ctx, *export.History); err != nil {
			return stats, fmt.Errorf("importing history: %w", err)
		}
		stats.HistoryImported = true
	}

	for _, m := range export.BodyMetrics {
		if err := imp.store.UpsertBodyMetric(ctx, m); err != nil {
			return stats, fmt.Errorf("importing body metric for %s: %w", m.Date, err)
		}
		stats.BodyMetrics++
	}

	for _, t := range export.Todos {
		if t.Text == "" {
			stats.TodosSkipped++
			continue
		}
		// The browser app used timestamp ids; replace anything that is not
		// a UUID so the ids stay uniform.
		if _, err := uuid.Parse(t.ID); err != nil {
			t.ID = uuid.NewString()
		}
		if err := imp.store.UpsertTodo(ctx, t); err != nil {
			return stats, fmt.Errorf("importing todo %q: %w", t.Text, err)
		}
		stats.Todos++
	}

	if export.Theme == "dark" || export.Theme == "light" {
		if err := imp.store.SetSetting(ctx, "theme", export.Theme); err != nil {
			return stats, fmt.Errorf("importing theme: %w", err)
		}
	}

	imp.log.Info("import complete",
		"progress_days", stats.ProgressDays,
		"body_metrics", stats.BodyMetrics,
		"todos", stats.Todos,
	)
	return stats, nil
}

package mcp

import (
	"context"

	"github.com/claude/fit365/internal/models"
	"github.com/claude/fit365/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB (local)
// and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	GetSelectedPlan(ctx context.Context) (*models.SelectedPlan, error)
	GetDailyProgress(ctx context.Context, date string) (*models.DailyProgress, error)
	QueryDailyProgress(ctx context.Context, start, end string) ([]models.DailyProgress, error)
	GetHistory(ctx context.Context) (models.WorkoutHistory, error)
	QueryBodyMetrics(ctx context.Context, start, end string) ([]models.BodyMetric, error)
	ListTodos(ctx context.Context) ([]models.TodoItem, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/claude/fit365/internal/plan"
	"github.com/claude/fit365/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) today(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	date := time.Now().UTC().Format("2006-01-02")

	summary := map[string]any{"date": date}

	sp, err := h.ds.GetSelectedPlan(ctx)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if sp != nil {
		day := plan.GenerateDay(sp.PlanID, sp.CurrentDay)
		summary["workout_day"] = map[string]any{
			"day":        day.Day,
			"split":      day.Split,
			"phase":      day.Phase,
			"week":       day.Week,
			"difficulty": day.DifficultyRating,
			"exercises":  len(day.MainWorkout),
		}
	}

	progress, err := h.ds.GetDailyProgress(ctx, date)
	if err != nil {
		h.log.Warn("today: progress query failed", "error", err)
	}
	if progress != nil {
		summary["progress"] = progress
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) historyResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	history, err := h.ds.GetHistory(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(history)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) planCatalog(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(plan.Catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

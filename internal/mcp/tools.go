package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/claude/fit365/internal/health"
	"github.com/claude/fit365/internal/plan"
	"github.com/claude/fit365/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultDateRange returns start/end dates defaulting to the last 30 days.
func defaultDateRange(startStr, endStr string) (string, string, error) {
	now := time.Now().UTC()

	end := now.Format("2006-01-02")
	if endStr != "" {
		if _, err := time.Parse("2006-01-02", endStr); err != nil {
			return "", "", err
		}
		end = endStr
	}

	start := now.AddDate(0, 0, -30).Format("2006-01-02")
	if startStr != "" {
		if _, err := time.Parse("2006-01-02", startStr); err != nil {
			return "", "", err
		}
		start = startStr
	}

	return start, end, nil
}

// --- Tool definitions ---

var toolGetProfile = mcp.NewTool("get_profile",
	mcp.WithDescription("Get the user's profile: body stats, computed BMI and waist-to-height ratio with their risk assessment, experience level, training location, and goals."),
)

var toolGetPlan = mcp.NewTool("get_plan",
	mcp.WithDescription("Get the selected workout plan and the user's current position in the 365-day program."),
)

var toolGetWorkoutDay = mcp.NewTool("get_workout_day",
	mcp.WithDescription("Generate the full workout for a program day: warm-up checklist, main exercises with sets/reps/rest and form guidance, cooldown, and tips. Defaults to the user's current day."),
	mcp.WithNumber("day", mcp.Description("Program day (1-365). Defaults to the plan's current day.")),
)

var toolGetProgress = mcp.NewTool("get_progress",
	mcp.WithDescription("Query daily progress records: completed workouts with per-set weights and reps, plus the habit checklist for each day."),
	mcp.WithString("start", mcp.Description("Start date (YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (YYYY-MM-DD). Defaults to today.")),
)

var toolGetHistory = mcp.NewTool("get_history",
	mcp.WithDescription("Get all-time workout totals: workout count, current and longest streaks, total volume lifted, and personal records per exercise."),
)

var toolGetBodyMetrics = mcp.NewTool("get_body_metrics",
	mcp.WithDescription("Query body measurement snapshots: weight, BMI, body fat, and circumferences over time."),
	mcp.WithString("start", mcp.Description("Start date (YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (YYYY-MM-DD). Defaults to today.")),
)

var toolGetTodos = mcp.NewTool("get_todos",
	mcp.WithDescription("List the user's daily tasks (medicine, supplements, books, other tasks) with completion state."),
)

var toolListPlans = mcp.NewTool("list_plans",
	mcp.WithDescription("List every workout plan in the catalog with its split, difficulty, equipment, and phases."),
)

// --- Tool handlers ---

func (h *handlers) getProfile(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := h.ds.GetProfile(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return mcp.NewToolResultError("no profile: onboarding has not been completed"), nil
	}
	if err != nil {
		h.log.Error("mcp get_profile", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	var whtr float64
	if profile.WHtR != nil {
		whtr = *profile.WHtR
	}
	result, err := mcp.NewToolResultJSON(map[string]any{
		"profile":      profile,
		"bmi_category": health.BMICategory(profile.BMI),
		"risk":         health.RiskFor(profile.BMI, whtr),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlan(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sp, err := h.ds.GetSelectedPlan(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return mcp.NewToolResultError("no plan selected"), nil
	}
	if err != nil {
		h.log.Error("mcp get_plan", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"selected":     sp,
		"plan":         plan.FindByID(sp.PlanID),
		"calendar_day": health.CurrentDay(sp.StartDate, time.Now().UTC()),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sp, err := h.ds.GetSelectedPlan(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return mcp.NewToolResultError("no plan selected"), nil
	}
	if err != nil {
		h.log.Error("mcp get_workout_day", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	day := sp.CurrentDay
	if v := req.GetFloat("day", 0); v != 0 {
		day = int(v)
	}
	if day < 1 || day > 365 {
		return mcp.NewToolResultError("day must be between 1 and 365"), nil
	}

	result, err := mcp.NewToolResultJSON(plan.GenerateDay(sp.PlanID, day))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultDateRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	rows, err := h.ds.QueryDailyProgress(ctx, start, end)
	if err != nil {
		h.log.Error("mcp get_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(rows)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getHistory(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	history, err := h.ds.GetHistory(ctx)
	if err != nil {
		h.log.Error("mcp get_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(history)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getBodyMetrics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultDateRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	rows, err := h.ds.QueryBodyMetrics(ctx, start, end)
	if err != nil {
		h.log.Error("mcp get_body_metrics", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(rows)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTodos(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := h.ds.ListTodos(ctx)
	if err != nil {
		h.log.Error("mcp get_todos", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(items)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listPlans(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(plan.Catalog)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Fit365", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Fit365 workout tracker. Query the training plan, generated workout days, progress records, workout history, body measurements, and daily tasks."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetProfile, Handler: h.getProfile},
		server.ServerTool{Tool: toolGetPlan, Handler: h.getPlan},
		server.ServerTool{Tool: toolGetWorkoutDay, Handler: h.getWorkoutDay},
		server.ServerTool{Tool: toolGetProgress, Handler: h.getProgress},
		server.ServerTool{Tool: toolGetHistory, Handler: h.getHistory},
		server.ServerTool{Tool: toolGetBodyMetrics, Handler: h.getBodyMetrics},
		server.ServerTool{Tool: toolGetTodos, Handler: h.getTodos},
		server.ServerTool{Tool: toolListPlans, Handler: h.listPlans},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resToday, Handler: h.today},
		server.ServerResource{Resource: resHistory, Handler: h.historyResource},
		server.ServerResource{Resource: resPlanCatalog, Handler: h.planCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resToday = mcp.NewResource(
	"fit365://today",
	"Today",
	mcp.WithResourceDescription("Today's workout day, progress record, and habit checklist"),
	mcp.WithMIMEType("application/json"),
)

var resHistory = mcp.NewResource(
	"fit365://history",
	"Workout History",
	mcp.WithResourceDescription("All-time workout totals, streaks, and personal records"),
	mcp.WithMIMEType("application/json"),
)

var resPlanCatalog = mcp.NewResource(
	"fit365://plan_catalog",
	"Plan Catalog",
	mcp.WithResourceDescription("All available workout plans with phases, splits, and target audiences"),
	mcp.WithMIMEType("application/json"),
)

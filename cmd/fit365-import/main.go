package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/fit365/internal/config"
	"github.com/claude/fit365/internal/importer"
	"github.com/claude/fit365/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	exportPath := flag.String("path", "", "path to JSON export file (required)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exportPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: fit365-import -config config.yaml -path /path/to/export.json\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(*exportPath)
	if err != nil {
		log.Error("failed to open export file", "path", *exportPath, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Run migrations
	if err := storage.RunMigrations(cfg.Database.MigrateURL(), "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	// Connect database
	db, err := storage.Open(ctx, cfg.Database.DriverName(), cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	// Run import
	imp := importer.New(db, log)
	stats, err := imp.Import(ctx, f)
	if err != nil {
		log.Error("import failed", "error", err)
		if stats != nil {
			printStats(log, stats)
		}
		os.Exit(1)
	}

	printStats(log, stats)
}

func printStats(log *slog.Logger, stats *importer.Stats) {
	log.Info("import stats",
		"profile_imported", stats.ProfileImported,
		"plan_imported", stats.PlanImported,
		"history_imported", stats.HistoryImported,
		"progress_days", stats.ProgressDays,
		"body_metrics", stats.BodyMetrics,
		"todos", stats.Todos,
		"todos_skipped", stats.TodosSkipped,
	)
}

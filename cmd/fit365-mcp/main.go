package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/claude/fit365/internal/config"
	"github.com/claude/fit365/internal/mcp"
	"github.com/claude/fit365/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (local database mode)")
	serverURL := flag.String("server", "", "Fit365 server URL (remote mode, e.g. https://fit365.tail1234.ts.net)")
	flag.Parse()

	// Logs go to stderr; stdout carries the MCP protocol
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource

	switch {
	case *serverURL != "":
		ds = mcp.NewHTTPClient(*serverURL)
		log.Info("mcp server starting", "mode", "remote", "server", *serverURL)
	case *configPath != "":
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		db, err := storage.Open(context.Background(), cfg.Database.DriverName(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db
		log.Info("mcp server starting", "mode", "local", "driver", cfg.Database.DriverName())
	default:
		log.Error("either -config (local) or -server (remote) is required")
		os.Exit(1)
	}

	s := mcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

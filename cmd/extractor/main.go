package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dwextract/internal/config"
	"dwextract/internal/db"
	"dwextract/internal/extractor"
	"dwextract/internal/infrastructure"
)

func main() {
	settingsPath := flag.String("config", "", "settings file path (defaults to settings.yaml next to the executable)")
	outDir := flag.String("out", "", "output directory for extracted files (overrides data_extraction.output_directory)")
	viewList := flag.String("views", "", "comma-separated subset of configured views to extract")
	format := flag.String("format", "", "output format, csv or xlsx (overrides data_extraction.format)")
	flag.Parse()

	// Initialize paths first to resolve defaults relative to the executable
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *settingsPath == "" {
		*settingsPath = paths.SettingsFile
	}

	cfg, err := config.Load(*settingsPath)
	if err != nil {
		slog.Error("Configuration unavailable", "path", *settingsPath, "error", err)
		os.Exit(1)
	}

	// Flag overrides beat both file and environment values
	if *outDir != "" {
		cfg.Extraction.OutputDirectory = *outDir
	}
	if *format != "" {
		cfg.Extraction.Format = *format
	}

	requested := cfg.Extraction.Views
	if *viewList != "" {
		requested = splitViews(*viewList)
	}

	// Anchor a relative log file next to the executable, like the output dir
	if !filepath.IsAbs(cfg.Logging.FilePath) {
		cfg.Logging.FilePath = paths.GetRelativePath(cfg.Logging.FilePath)
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Warn("Failed to prepare default directories", "error", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	// Every log line of this run carries the same run_id
	ctx := infrastructure.EnsureRunID(context.Background())
	logger = infrastructure.LoggerFromContext(ctx)

	outputDir := paths.ResolveDir(cfg.Extraction.OutputDirectory)

	logger.Info("Starting warehouse extraction",
		slog.String("settings", *settingsPath),
		slog.String("driver", cfg.Database.Driver),
		slog.String("server", cfg.Database.Server),
		slog.String("database", cfg.Database.DatabaseName),
		slog.String("output_dir", outputDir),
		slog.String("format", cfg.Extraction.Format),
		slog.Int("chunk_size", cfg.Extraction.ChunkSize),
		slog.Int("view_count", len(requested)))

	password := cfg.Database.ResolvePassword()
	if password == "" && cfg.Database.PasswordEnvVar != "" {
		logger.Warn("Password environment variable is empty or unset",
			slog.String("env_var", cfg.Database.PasswordEnvVar))
	}

	conn, err := db.Open(ctx, db.Settings{
		Driver:   cfg.Database.Driver,
		Host:     cfg.Database.Server,
		Port:     cfg.Database.Port,
		Database: cfg.Database.DatabaseName,
		User:     cfg.Database.Username,
		Password: password,
		Params:   cfg.Database.Params,
	})
	if err != nil {
		logger.Error("Failed to connect to database",
			slog.String("driver", cfg.Database.Driver),
			slog.String("server", cfg.Database.Server),
			slog.String("database", cfg.Database.DatabaseName),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer conn.Close()

	ex, err := extractor.New(conn, extractor.Options{
		OutputDir: outputDir,
		ChunkSize: cfg.Extraction.ChunkSize,
		Format:    cfg.Extraction.Format,
		Views:     requested,
		Allowed:   cfg.Extraction.Views,
	}, logger)
	if err != nil {
		logger.Error("Invalid extraction options", slog.String("error", err.Error()))
		os.Exit(1)
	}

	summary, err := ex.Run(ctx)
	if err != nil {
		logger.Error("Extraction aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Per-view failures are contained; the process still exits zero
	logger.Info("Extraction finished",
		slog.Int("views", len(summary.Views)),
		slog.Int("failed", summary.Failed),
		slog.Int64("rows_total", summary.RowsTotal))
}

// splitViews parses the -views flag into a clean list of view names
func splitViews(raw string) []string {
	parts := strings.Split(raw, ",")
	views := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			views = append(views, name)
		}
	}
	return views
}

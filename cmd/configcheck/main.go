package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"dwextract/internal/config"
	"dwextract/internal/db"
)

func main() {
	settingsPath := flag.String("config", "", "settings file path (defaults to settings.yaml next to the executable)")
	flag.Parse()

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

	fmt.Printf("Settings file: %s\n", *settingsPath)
	fmt.Println("Configuration is valid.")
	fmt.Println()

	fmt.Println("Database:")
	fmt.Printf("  driver:       %s\n", cfg.Database.Driver)
	fmt.Printf("  server:       %s\n", cfg.Database.Server)
	fmt.Printf("  port:         %s\n", describePort(cfg.Database))
	fmt.Printf("  database:     %s\n", cfg.Database.DatabaseName)
	fmt.Printf("  username:     %s\n", cfg.Database.Username)
	fmt.Printf("  password env: %s\n", describePassword(cfg.Database))
	for key, value := range cfg.Database.Params {
		fmt.Printf("  param:        %s=%s\n", key, value)
	}
	fmt.Println()

	fmt.Println("Extraction:")
	fmt.Printf("  output dir:   %s\n", paths.ResolveDir(cfg.Extraction.OutputDirectory))
	fmt.Printf("  chunk size:   %d\n", cfg.Extraction.ChunkSize)
	fmt.Printf("  format:       %s\n", cfg.Extraction.Format)
	fmt.Println("  views:")
	for _, view := range cfg.Extraction.Views {
		fmt.Printf("    - %s\n", view)
	}
	fmt.Println()

	fmt.Println("Logging:")
	fmt.Printf("  level:        %s\n", cfg.Logging.Level)
	fmt.Printf("  output:       %s\n", cfg.Logging.Output)
	fmt.Printf("  file path:    %s\n", cfg.Logging.FilePath)
}

// describePort renders the configured port, falling back to the driver's
// default when the settings leave it unset.
func describePort(dbCfg config.DatabaseConfig) string {
	if dbCfg.Port != 0 {
		return fmt.Sprintf("%d", dbCfg.Port)
	}

	factory, err := db.GetDriverFactory(dbCfg.Driver)
	if err != nil {
		return "unknown"
	}
	return fmt.Sprintf("%d (driver default)", factory.DefaultPort())
}

// describePassword reports whether the configured password source resolves,
// without ever printing the credential itself.
func describePassword(dbCfg config.DatabaseConfig) string {
	if dbCfg.PasswordEnvVar == "" {
		return "(none configured)"
	}
	if dbCfg.ResolvePassword() == "" {
		return fmt.Sprintf("%s (NOT SET)", dbCfg.PasswordEnvVar)
	}
	return fmt.Sprintf("%s (set)", dbCfg.PasswordEnvVar)
}

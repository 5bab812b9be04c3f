// Package config provides centralized configuration management for the
// warehouse extraction tool. It handles loading the settings file,
// environment overrides, validation, and provides a type-safe API for
// accessing configuration values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. The settings.yaml file
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern EXTRACT_* for namespacing:
//
//	EXTRACT_DATABASE_SERVER=warehouse.internal
//	EXTRACT_DATABASE_PORT=1433
//	EXTRACT_EXTRACTION_CHUNK_SIZE=50000
//	EXTRACT_LOGGING_LEVEL=info
//
// # Settings File
//
// The settings file mirrors the configuration structure:
//
//	database:
//	  driver: sqlserver
//	  server: warehouse.internal
//	  database_name: DataWarehouse
//	  username: reader
//	  password_env_var: WAREHOUSE_PASSWORD
//	  port: 1433
//	data_extraction:
//	  output_directory: data/gold_tables
//	  chunk_size: 50000
//	  views:
//	    - gold.dim_customers
//	    - gold.dim_products
//	    - gold.fact_sales
//
// The password itself never appears in the file. The password_env_var key
// names the environment variable the password is read from at runtime.
//
// # Load Semantics
//
// Load returns a typed *LoadError when the file is missing, unreadable,
// unparseable, or fails validation, so callers decide how loudly to fail.
// An empty file is the one tolerated degenerate case: it logs a warning
// and yields an unset Config.
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    slog.Error("cannot load settings", "error", err)
//	    os.Exit(1)
//	}
//
// # Path Management
//
// The package provides centralized path management through the Paths type,
// which handles all file system paths relative to the executable location:
//
//	paths, err := config.GetPaths()
//	logPath := paths.GetLogPath("extract_data.log")
//	outDir := paths.ResolveDir(cfg.Extraction.OutputDirectory)
package config

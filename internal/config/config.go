package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete extraction configuration
type Config struct {
	Database   DatabaseConfig   `yaml:"database" envconfig:"DATABASE"`
	Extraction ExtractionConfig `yaml:"data_extraction" envconfig:"EXTRACTION"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
}

// DatabaseConfig contains warehouse connection settings. The password is
// never stored here; PasswordEnvVar names the environment variable that
// holds it, and ResolvePassword reads it on demand.
type DatabaseConfig struct {
	Driver         string            `yaml:"driver" envconfig:"DRIVER" validate:"required,oneof=mysql postgres sqlserver sqlite"`
	Server         string            `yaml:"server" envconfig:"SERVER" validate:"required"`
	DatabaseName   string            `yaml:"database_name" envconfig:"NAME"`
	Username       string            `yaml:"username" envconfig:"USERNAME"`
	PasswordEnvVar string            `yaml:"password_env_var" envconfig:"PASSWORD_ENV_VAR"`
	Port           int               `yaml:"port" envconfig:"PORT" validate:"gte=0,lte=65535"`
	Params         map[string]string `yaml:"params" ignored:"true"`
}

// ExtractionConfig controls which views are read and how output is written
type ExtractionConfig struct {
	OutputDirectory string   `yaml:"output_directory" envconfig:"OUTPUT_DIR" validate:"required"`
	ChunkSize       int      `yaml:"chunk_size" envconfig:"CHUNK_SIZE" validate:"required,gt=0"`
	Format          string   `yaml:"format" envconfig:"FORMAT" validate:"required,oneof=csv xlsx"`
	Views           []string `yaml:"views" envconfig:"VIEWS" validate:"min=1,dive,viewident"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"required,oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"required,oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required"`
}

// viewNamePattern admits bare or single-schema-qualified identifiers only.
// Anything else never reaches a SQL statement.
var viewNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Load reads the settings file at path and resolves the final configuration.
// Precedence is environment variables over file values over built-in
// defaults. An empty file is tolerated with a warning and yields an unset
// Config; a missing or unparseable file yields a *LoadError so callers can
// decide how loudly to fail.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		reason := ReasonUnreadable
		if os.IsNotExist(err) {
			reason = ReasonNotFound
		}
		slog.Error("Failed to read configuration file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, NewLoadError(reason, path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		slog.Warn("Configuration file is empty, continuing with unset configuration",
			slog.String("path", path))
		return &Config{}, nil
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Error("Failed to parse configuration file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, NewLoadError(ReasonMalformed, path, err)
	}

	// Environment overrides win over file values
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		slog.Error("Failed to apply environment overrides",
			slog.String("prefix", EnvPrefix),
			slog.String("error", err.Error()))
		return nil, NewLoadError(ReasonInvalid, path, err)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration failed validation",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, NewLoadError(ReasonInvalid, path, err)
	}

	return cfg, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// newValidator builds the validator with custom rules registered
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("viewident", isViewIdentifier)

	// Use YAML key names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// isViewIdentifier validates a schema-qualified view name
func isViewIdentifier(fl validator.FieldLevel) bool {
	return viewNamePattern.MatchString(fl.Field().String())
}

// formatFieldError formats validation error messages
func formatFieldError(err validator.FieldError) string {
	field := err.Field()
	param := err.Param()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Replace(param, " ", ", ", -1))
	case "min":
		return fmt.Sprintf("%s must contain at least %s entries", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "viewident":
		return fmt.Sprintf("%s entries must be plain or schema-qualified identifiers", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, err.Tag())
	}
}

// ResolvePassword reads the database password from the environment variable
// named in the configuration. An unset or empty variable yields an empty
// password, matching servers that accept trusted connections. The resolved
// value must never be logged.
func (d DatabaseConfig) ResolvePassword() string {
	if d.PasswordEnvVar == "" {
		return ""
	}
	return os.Getenv(d.PasswordEnvVar)
}

// Default returns default configuration
func Default() *Config {
	views := make([]string, len(DefaultViews))
	copy(views, DefaultViews)

	return &Config{
		Database: DatabaseConfig{
			Driver: DriverSQLServer,
			Server: "localhost",
			Port:   0,
		},
		Extraction: ExtractionConfig{
			OutputDirectory: DefaultOutputDirectory,
			ChunkSize:       DefaultChunkSize,
			Format:          DefaultFormat,
			Views:           views,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "both",
			FilePath: DefaultLogFile,
		},
	}
}

package config

// Application constants
const (
	// AppName is the application name
	AppName = "dwextract"

	// Version is the application version
	Version = "1.0.0"
)

// EnvPrefix is the prefix for environment variable overrides, so the
// database server becomes EXTRACT_DATABASE_SERVER and so on.
const EnvPrefix = "EXTRACT"

// Default file and directory names resolved relative to the executable.
const (
	// DefaultSettingsFile is the settings file name looked up next to the binary
	DefaultSettingsFile = "settings.yaml"

	// DefaultOutputDirectory receives one file per extracted view
	DefaultOutputDirectory = "data/gold_tables"

	// DefaultLogFile is where file logging goes when enabled
	DefaultLogFile = "logs/extract_data.log"
)

// Extraction defaults
const (
	// DefaultChunkSize is the number of rows fetched and written per batch
	DefaultChunkSize = 50000

	// DefaultFormat is the output file format
	DefaultFormat = "csv"
)

// Output formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Supported database drivers
const (
	DriverMySQL     = "mysql"
	DriverPostgres  = "postgres"
	DriverSQLServer = "sqlserver"
	DriverSQLite    = "sqlite"
)

// DefaultViews lists the reporting views extracted when the settings file
// does not name its own set.
var DefaultViews = []string{
	"gold.dim_customers",
	"gold.dim_products",
	"gold.fact_sales",
}

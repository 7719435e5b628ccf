// Package config provides configuration management for phenodb.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use PHENODB_ prefix with underscores for nesting:
//
//	PHENODB_PRIMARY_HOST=localhost
//	PHENODB_SECONDARY_DATABASE=pheno_new
//	PHENODB_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete phenodb configuration.
type Config struct {
	// Primary contains connection settings for the curated
	// observation database ("pheno").
	Primary DatabaseConfig `mapstructure:"primary" yaml:"primary"`

	// Secondary contains connection settings for the transcription
	// database ("pheno_new") that holds digitized historical tables.
	Secondary DatabaseConfig `mapstructure:"secondary" yaml:"secondary"`

	// Pipeline contains settings for the offline extract/merge pipeline.
	Pipeline PipelineConfig `mapstructure:"pipeline" yaml:"pipeline"`

	// Server contains settings for the HTTP API.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// operations. Defaults to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters for one source.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of records per batch for bulk inserts
	// during import.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// PipelineConfig contains settings for the document extraction pipeline.
type PipelineConfig struct {
	// SourceDir is the root of the transcription tree to scan.
	// Runtime-only, usually given as a CLI argument.
	SourceDir string `mapstructure:"source_dir" yaml:"source_dir"`

	// WorkDir is where per-table CSV files are written before merging.
	// Empty value means a "tables" directory next to the output file.
	WorkDir string `mapstructure:"work_dir" yaml:"work_dir"`

	// OutputFile is the path of the merged observation CSV.
	OutputFile string `mapstructure:"output_file" yaml:"output_file"`

	// SpeciesMappingFile is the csv_name -> db_species_id mapping
	// consumed by the import command.
	SpeciesMappingFile string `mapstructure:"species_mapping_file" yaml:"species_mapping_file"`
}

// ServerConfig contains HTTP API settings.
type ServerConfig struct {
	// Port the API listens on.
	Port int `mapstructure:"port" yaml:"port"`

	// CacheTTLHours is the freshness window of the aggregate result
	// cache. Entries older than this are recomputed.
	CacheTTLHours int `mapstructure:"cache_ttl_hours" yaml:"cache_ttl_hours"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Primary: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "pheno",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Secondary: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "pheno_new",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Pipeline: PipelineConfig{
			OutputFile:         "merged_phenology_data.csv",
			SpeciesMappingFile: "species_mapping_final.csv",
		},
		Server: ServerConfig{
			Port:          9090,
			CacheTTLHours: 6,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// Package config provides configuration management for protdb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > .env > config.yaml >
// defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: type, path, host, port, user, password, database, ssl_mode
//   - Sources: rcsb_url, uniprot_url, timeout
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use PROTDB_ prefix with underscores for nesting:
//
//	PROTDB_DATABASE_TYPE=postgres
//	PROTDB_DATABASE_HOST=localhost
//	PROTDB_SOURCES_TIMEOUT=60
//	PROTDB_LOG_LEVEL=info
//	PROTDB_JOBS_NUMBER=8
package config

// Database backends supported by the catalog store.
const (
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// Config represents the complete protdb configuration.
type Config struct {
	// Database contains catalog store connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Sources contains settings of remote structural and sequence services.
	Sources SourcesConfig `mapstructure:"sources" yaml:"sources"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of accessions fetched concurrently during
	// batch ingestion. Writes to the catalog are always serialized.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains catalog store connection parameters.
type DatabaseConfig struct {
	// Type is the storage backend: "sqlite" (default) or "postgres".
	Type string `mapstructure:"type" yaml:"type"`

	// Path is the SQLite database file. If empty, the file is kept in
	// the data directory (see DBFilePath).
	Path string `mapstructure:"path" yaml:"path"`

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
}

// SourcesConfig describes remote read-only data services.
type SourcesConfig struct {
	// RCSBURL is the base of the RCSB PDB core REST API. Structural
	// entries and polymer entities are requested relative to it.
	RCSBURL string `mapstructure:"rcsb_url" yaml:"rcsb_url"`

	// UniProtURL is the base of the UniProtKB REST API.
	UniProtURL string `mapstructure:"uniprot_url" yaml:"uniprot_url"`

	// Timeout is the HTTP timeout in seconds for a single remote call.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
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
		Database: DatabaseConfig{
			Type:     SQLite,
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "protdb",
			SSLMode:  "disable",
		},
		Sources: SourcesConfig{
			RCSBURL:    "https://data.rcsb.org/rest/v1/core",
			UniProtURL: "https://rest.uniprot.org/uniprotkb",
			Timeout:    30,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		// public services, keep the number of parallel calls modest
		JobsNumber: 4,
	}

	return res
}

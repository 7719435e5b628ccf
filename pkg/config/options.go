package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptPrimaryHost sets the primary PostgreSQL server hostname or IP address.
func OptPrimaryHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Primary Host", s) {
			c.Primary.Host = s
		}
	}
}

// OptPrimaryPort sets the primary PostgreSQL server port number.
func OptPrimaryPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Primary Port", i) {
			c.Primary.Port = i
		}
	}
}

// OptPrimaryUser sets the primary PostgreSQL database username.
func OptPrimaryUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Primary User", s) {
			c.Primary.User = s
		}
	}
}

// OptPrimaryPassword sets the primary PostgreSQL database password.
func OptPrimaryPassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Primary Password", s) {
			c.Primary.Password = s
		}
	}
}

// OptPrimaryDatabase sets the primary PostgreSQL database name.
func OptPrimaryDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Primary Database", s) {
			c.Primary.Database = s
		}
	}
}

// OptPrimarySSLMode sets the SSL connection mode of the primary source.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptPrimarySSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("SSLMode", s) {
			c.Primary.SSLMode = s
		}
	}
}

// OptSecondaryHost sets the secondary PostgreSQL server hostname or IP.
func OptSecondaryHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Secondary Host", s) {
			c.Secondary.Host = s
		}
	}
}

// OptSecondaryPort sets the secondary PostgreSQL server port number.
func OptSecondaryPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Secondary Port", i) {
			c.Secondary.Port = i
		}
	}
}

// OptSecondaryUser sets the secondary PostgreSQL database username.
func OptSecondaryUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Secondary User", s) {
			c.Secondary.User = s
		}
	}
}

// OptSecondaryPassword sets the secondary PostgreSQL database password.
func OptSecondaryPassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Secondary Password", s) {
			c.Secondary.Password = s
		}
	}
}

// OptSecondaryDatabase sets the secondary PostgreSQL database name.
func OptSecondaryDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Secondary Database", s) {
			c.Secondary.Database = s
		}
	}
}

// OptSecondarySSLMode sets the SSL connection mode of the secondary source.
func OptSecondarySSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("SSLMode", s) {
			c.Secondary.SSLMode = s
		}
	}
}

// OptSecondaryBatchSize sets the number of records per import batch.
func OptSecondaryBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Secondary.BatchSize = i
		}
	}
}

// OptPipelineSourceDir sets the transcription tree to scan.
// Runtime-only field - not in ToOptions().
func OptPipelineSourceDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Source Directory", s) {
			c.Pipeline.SourceDir = s
		}
	}
}

// OptPipelineWorkDir sets the directory for per-table CSV files.
func OptPipelineWorkDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Work Directory", s) {
			c.Pipeline.WorkDir = s
		}
	}
}

// OptPipelineOutputFile sets the path of the merged observation CSV.
func OptPipelineOutputFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output File", s) {
			c.Pipeline.OutputFile = s
		}
	}
}

// OptPipelineSpeciesMappingFile sets the species mapping CSV path.
func OptPipelineSpeciesMappingFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Species Mapping File", s) {
			c.Pipeline.SpeciesMappingFile = s
		}
	}
}

// OptServerPort sets the port the HTTP API listens on.
func OptServerPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Server Port", i) {
			c.Server.Port = i
		}
	}
}

// OptServerCacheTTLHours sets the freshness window of the result cache.
func OptServerCacheTTLHours(i int) Option {
	return func(c *Config) {
		if isValidInt("Cache TTL Hours", i) {
			c.Server.CacheTTLHours = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel
// operations. Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

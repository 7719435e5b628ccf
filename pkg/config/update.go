package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Pipeline.SourceDir).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option

	res = appendDBOptions(res, &c.Primary,
		OptPrimaryHost, OptPrimaryPort, OptPrimaryUser,
		OptPrimaryPassword, OptPrimaryDatabase, OptPrimarySSLMode)
	res = appendDBOptions(res, &c.Secondary,
		OptSecondaryHost, OptSecondaryPort, OptSecondaryUser,
		OptSecondaryPassword, OptSecondaryDatabase, OptSecondarySSLMode)

	if i := c.Secondary.BatchSize; i > 0 {
		res = append(res, OptSecondaryBatchSize(i))
	}

	if s := c.Pipeline.WorkDir; s != "" {
		res = append(res, OptPipelineWorkDir(s))
	}
	if s := c.Pipeline.OutputFile; s != "" {
		res = append(res, OptPipelineOutputFile(s))
	}
	if s := c.Pipeline.SpeciesMappingFile; s != "" {
		res = append(res, OptPipelineSpeciesMappingFile(s))
	}

	if i := c.Server.Port; i > 0 {
		res = append(res, OptServerPort(i))
	}
	if i := c.Server.CacheTTLHours; i > 0 {
		res = append(res, OptServerCacheTTLHours(i))
	}

	if s := c.Log.Format; s != "" {
		res = append(res, OptLogFormat(s))
	}
	if s := c.Log.Level; s != "" {
		res = append(res, OptLogLevel(s))
	}
	if s := c.Log.Destination; s != "" {
		res = append(res, OptLogDestination(s))
	}

	if i := c.JobsNumber; i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func appendDBOptions(
	res []Option,
	db *DatabaseConfig,
	host func(string) Option,
	port func(int) Option,
	user func(string) Option,
	password func(string) Option,
	database func(string) Option,
	sslMode func(string) Option,
) []Option {
	if db.Host != "" {
		res = append(res, host(db.Host))
	}
	if db.Port > 0 {
		res = append(res, port(db.Port))
	}
	if db.User != "" {
		res = append(res, user(db.User))
	}
	if db.Password != "" {
		res = append(res, password(db.Password))
	}
	if db.Database != "" {
		res = append(res, database(db.Database))
	}
	if db.SSLMode != "" {
		res = append(res, sslMode(db.SSLMode))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}

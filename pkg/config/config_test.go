package config_test

import (
	"testing"

	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg := config.New()

	require.NotNil(t, cfg)
	assert.Equal(t, "pheno", cfg.Primary.Database)
	assert.Equal(t, "pheno_new", cfg.Secondary.Database)
	assert.Equal(t, 5432, cfg.Primary.Port)
	assert.Equal(t, "disable", cfg.Primary.SSLMode)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 6, cfg.Server.CacheTTLHours)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Positive(t, cfg.JobsNumber)
}

func TestUpdate(t *testing.T) {
	cfg := config.New()

	cfg.Update([]config.Option{
		config.OptPrimaryHost("db.example.org"),
		config.OptSecondaryDatabase("pheno_hist"),
		config.OptSecondaryBatchSize(200),
		config.OptServerPort(8080),
		config.OptLogLevel("debug"),
	})

	assert.Equal(t, "db.example.org", cfg.Primary.Host)
	assert.Equal(t, "pheno_hist", cfg.Secondary.Database)
	assert.Equal(t, 200, cfg.Secondary.BatchSize)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestUpdateRejectsInvalid(t *testing.T) {
	cfg := config.New()

	cfg.Update([]config.Option{
		config.OptPrimaryHost("  "),
		config.OptPrimaryPort(-1),
		config.OptLogFormat("xml"),
	})

	// Invalid values are ignored; defaults survive.
	assert.Equal(t, "localhost", cfg.Primary.Host)
	assert.Equal(t, 5432, cfg.Primary.Port)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptSecondaryHost("hist.example.org"),
		config.OptServerCacheTTLHours(12),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Equal(t, cfg.Primary, clone.Primary)
	assert.Equal(t, cfg.Secondary, clone.Secondary)
	assert.Equal(t, cfg.Server, clone.Server)
	assert.Equal(t, cfg.Log, clone.Log)
}

func TestToOptionsExcludesRuntimeFields(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir("/home/observer"),
		config.OptPipelineSourceDir("/data/transcriptions"),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Empty(t, clone.HomeDir)
	assert.Empty(t, clone.Pipeline.SourceDir)
}

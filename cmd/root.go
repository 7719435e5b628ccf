/*
Copyright © 2025 phenodb authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/nitpicker55555/phenodb/internal/iofs"
	"github.com/nitpicker55555/phenodb/internal/iologger"
	"github.com/nitpicker55555/phenodb/internal/iorefdata"
	app "github.com/nitpicker55555/phenodb/pkg"
	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/nitpicker55555/phenodb/pkg/refdata"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
	rd      *refdata.RefData
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "phenodb",
	Short:   "Historical phenology transcription pipeline and query API",
	Long: `phenodb turns scanned 19th-century Bavarian phenology tables,
transcribed into ODT documents, into a queryable PostgreSQL database,
and reconciles it with the curated reference database.

Typical workflow:
  phenodb extract <dir>   extract ODT tables and merge them into one CSV
  phenodb create          create the transcription database schema
  phenodb import          bulk-load the merged CSV into the database
  phenodb serve           run the HTTP API over both databases`,
	PersistentPreRunE: bootstrap,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	err = iologger.Init(config.LogDir(homeDir), defaultLog, false)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureRefDataFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, appending to the log
	// started above.
	err = iologger.Init(config.LogDir(homeDir), cfg.Log, true)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if rd, err = iorefdata.Load(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "phenodb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.Flags().BoolP("version", "V", false, "version for phenodb")

	rootCmd.AddCommand(getExtractCmd())
	rootCmd.AddCommand(getCreateCmd())
	rootCmd.AddCommand(getMigrateCmd())
	rootCmd.AddCommand(getImportCmd())
	rootCmd.AddCommand(getServeCmd())
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are
	// allowed. These match the fields included in config.ToOptions(),
	// i.e. persistent configuration that can be stored in config.yaml.
	v.SetEnvPrefix("PHENODB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Reference database
	v.BindEnv("primary.host", "PRIMARY_HOST")
	v.BindEnv("primary.port", "PRIMARY_PORT")
	v.BindEnv("primary.user", "PRIMARY_USER")
	v.BindEnv("primary.password", "PRIMARY_PASSWORD")
	v.BindEnv("primary.database", "PRIMARY_DATABASE")
	v.BindEnv("primary.ssl_mode", "PRIMARY_SSL_MODE")

	// Transcription database
	v.BindEnv("secondary.host", "SECONDARY_HOST")
	v.BindEnv("secondary.port", "SECONDARY_PORT")
	v.BindEnv("secondary.user", "SECONDARY_USER")
	v.BindEnv("secondary.password", "SECONDARY_PASSWORD")
	v.BindEnv("secondary.database", "SECONDARY_DATABASE")
	v.BindEnv("secondary.ssl_mode", "SECONDARY_SSL_MODE")
	v.BindEnv("secondary.batch_size", "SECONDARY_BATCH_SIZE")

	// Pipeline configuration
	v.BindEnv("pipeline.work_dir", "PIPELINE_WORK_DIR")
	v.BindEnv("pipeline.output_file", "PIPELINE_OUTPUT_FILE")
	v.BindEnv("pipeline.species_mapping_file",
		"PIPELINE_SPECIES_MAPPING_FILE")

	// Server configuration
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.cache_ttl_hours", "SERVER_CACHE_TTL_HOURS")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "JOBS_NUMBER")

	v.AutomaticEnv()
}

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
	"context"

	"github.com/gnames/gn"
	"github.com/nitpicker55555/phenodb/internal/iodb"
	"github.com/nitpicker55555/phenodb/internal/ioschema"
	"github.com/spf13/cobra"
)

// getMigrateCmd returns the migrate command.
func getMigrateCmd() *cobra.Command {
	var recreateViews bool

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the transcription database schema",
		Long: `Update the transcription database schema to the latest
version using GORM AutoMigrate.

Existing data is preserved. Statistics views are dropped before the
migration because AutoMigrate may alter tables they depend on; pass
--views to recreate them afterwards.

Examples:
  phenodb migrate
  phenodb migrate --views`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, args, recreateViews)
		},
	}

	migrateCmd.Flags().BoolVar(&recreateViews, "views", false,
		"recreate statistics views after migration")

	return migrateCmd
}

func runMigrate(
	_ *cobra.Command,
	_ []string,
	recreateViews bool,
) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Secondary); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Secondary.User, cfg.Secondary.Host,
		cfg.Secondary.Port, cfg.Secondary.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if !hasTables {
		gn.Warn(`Warning: Database appears to be empty.
Run 'phenodb create' first to create the schema.`)
		return nil
	}

	sm := ioschema.NewManager(op)

	gn.Info("Migrating schema to latest version...")
	if err := sm.Migrate(ctx, recreateViews); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Schema is now up to date.")
	return nil
}

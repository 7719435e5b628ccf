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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/nitpicker55555/phenodb/internal/iodb"
	"github.com/nitpicker55555/phenodb/internal/ioimport"
	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/spf13/cobra"
)

// getImportCmd returns the import command.
func getImportCmd() *cobra.Command {
	var input, mapping string

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk-load the merged CSV into the transcription database",
		Long: `Load the merged observation CSV into the transcription
database.

Species names are resolved through the species mapping file
(csv_name,db_species_id); rows whose species has no mapping are
counted and skipped, never fatal. Stations get deterministic IDs
derived from their description, so re-running the import does not
duplicate them.

Examples:
  phenodb import
  phenodb import -i merged.csv -m species_mapping.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(input, mapping)
		},
	}

	importCmd.Flags().StringVarP(&input, "input", "i", "",
		"path of the merged observation CSV")
	importCmd.Flags().StringVarP(&mapping, "mapping", "m", "",
		"path of the species mapping CSV")

	return importCmd
}

func runImport(input, mapping string) error {
	ctx := context.Background()

	var cliOpts []config.Option
	if input != "" {
		cliOpts = append(cliOpts, config.OptPipelineOutputFile(input))
	}
	if mapping != "" {
		cliOpts = append(cliOpts,
			config.OptPipelineSpeciesMappingFile(mapping))
	}
	cfg.Update(cliOpts)

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Secondary); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Secondary.User, cfg.Secondary.Host,
		cfg.Secondary.Port, cfg.Secondary.Database)

	imp := ioimport.New(cfg, rd, op)
	stats, err := imp.Import(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(`Import complete:
  stations:     %s
  observations: %s
  skipped rows: %s`,
		humanize.Comma(int64(stats.Stations)),
		humanize.Comma(int64(stats.Observations)),
		humanize.Comma(int64(stats.SkippedRows)),
	)

	return nil
}

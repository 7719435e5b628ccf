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
	"github.com/nitpicker55555/phenodb/internal/ioextract"
	"github.com/nitpicker55555/phenodb/internal/iomerge"
	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/spf13/cobra"
)

// getExtractCmd returns the extract command.
func getExtractCmd() *cobra.Command {
	var output, workDir string

	extractCmd := &cobra.Command{
		Use:   "extract <source-dir>",
		Short: "Extract ODT tables and merge them into one CSV",
		Long: `Extract tables from the transcribed ODT documents and merge
them into a single observation CSV.

The source directory is scanned for subdirectories whose name contains
"tabelle" (case-insensitive), plus the extra directories listed in the
reference data file. Each document's tables are written as per-table
CSV files into the work directory; the merge step then keeps only the
16-column observation tables and prepends the table index, date and
location inferred from the folder name.

Examples:
  phenodb extract ~/transcriptions
  phenodb extract ~/transcriptions -o merged.csv --work-dir /tmp/tables`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args[0], output, workDir)
		},
	}

	extractCmd.Flags().StringVarP(&output, "output", "o", "",
		"path of the merged observation CSV")
	extractCmd.Flags().StringVar(&workDir, "work-dir", "",
		"directory for per-table CSV files")

	return extractCmd
}

func runExtract(sourceDir, output, workDir string) error {
	ctx := context.Background()

	var cliOpts []config.Option
	cliOpts = append(cliOpts, config.OptPipelineSourceDir(sourceDir))
	if output != "" {
		cliOpts = append(cliOpts, config.OptPipelineOutputFile(output))
	}
	if workDir != "" {
		cliOpts = append(cliOpts, config.OptPipelineWorkDir(workDir))
	}
	cfg.Update(cliOpts)

	ext := ioextract.New(cfg, rd)
	meta, err := ext.Run(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Extracted tables from <em>%s</em> folders",
		humanize.Comma(int64(len(meta))))

	mrg := iomerge.New(cfg)
	rows, err := mrg.Merge(ctx, meta)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Merged <em>%s</em> observation rows into <em>%s</em>",
		humanize.Comma(int64(rows)), cfg.Pipeline.OutputFile)
	return nil
}

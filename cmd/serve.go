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
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gnames/gn"
	"github.com/nitpicker55555/phenodb/internal/iocache"
	"github.com/nitpicker55555/phenodb/internal/ioquery"
	"github.com/nitpicker55555/phenodb/internal/ioserver"
	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/spf13/cobra"
)

// getServeCmd returns the serve command.
func getServeCmd() *cobra.Command {
	var port int

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API over both databases",
		Long: `Run the phenodb HTTP API.

Every endpoint accepts a ?source= selector: 'pheno' reads the curated
reference database, 'pheno_new' the transcription database, 'both'
queries both and reconciles the results. The spatial/temporal
distribution summary is served through a time-invalidated result
cache.

Examples:
  phenodb serve
  phenodb serve -p 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	serveCmd.Flags().IntVarP(&port, "port", "p", 0,
		"port the API listens on")

	return serveCmd
}

func runServe(port int) error {
	if port != 0 {
		cfg.Update([]config.Option{config.OptServerPort(port)})
	}

	ctx, stop := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	ttl := time.Duration(cfg.Server.CacheTTLHours) * time.Hour
	cache, err := iocache.New(config.ResultCachePath(cfg.HomeDir), ttl)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer cache.Close()

	rec := ioquery.New(cfg)
	srv := ioserver.New(cfg, rec, cache, slog.Default())

	gn.Info("Serving the phenology API on port <em>%d</em>",
		cfg.Server.Port)

	err = srv.Run(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}

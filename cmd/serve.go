package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/dashboard/server"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the dashboard API over HTTP" }
func (*serveCmd) Usage() string {
	return `dash serve [-addr <address>]

  Serves the dashboard JSON API and the markdown summary of the selected month.

  GET  /                    markdown summary of the selected month
  GET  /api/months          months and the selected one
  GET  /api/summary?month=  summary of a month
  PUT  /api/selected-month  select a month, body {"month": "..."}
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", ":8080", "Address to listen on.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := Logger(zap.InfoLevel)
	defer logger.Sync()

	data, pref, status := loadDataAndPreference()
	if status != subcommands.ExitSuccess {
		return status
	}

	srv := &http.Server{
		Addr:              c.addr,
		Handler:           server.New(data, pref, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", c.addr), zap.Int("months", data.Len()))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("shutdown", zap.Error(err))
		return subcommands.ExitFailure
	}
	logger.Info("stopped")
	return subcommands.ExitSuccess
}

// Command shop runs the bounded shelf simulation: one owner stocks numbered
// items onto a fixed-capacity shelf while customers buy them.
//
// Usage:
//
//	go run ./cmd/shop -capacity 20 -customers 2 -duration 20s
//	go run ./cmd/shop -config shop.toml -log-level debug
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/xyhelper/boundedqueue/internal/shop"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "shop: %v\n", err)
		return 2
	}

	logger := newLogger(stderr, opts)

	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug().Msgf(format, args...)
	}))
	defer undo()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to set GOMAXPROCS")
	}

	s, err := shop.New(opts.shop, logger)
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return 1
	}
	r, err := s.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("run failed")
		return 1
	}

	fmt.Fprintf(stdout, "produced=%d sold=%d leftover=%d high_water=%d elapsed=%s\n",
		r.Produced, r.SoldCount(), len(r.Leftover), r.Stats.HighWater, r.Elapsed.Round(time.Millisecond))
	for _, name := range r.Customers() {
		fmt.Fprintf(stdout, "  %s bought %d\n", name, len(r.Sold[name]))
	}
	return 0
}

func newLogger(w io.Writer, opts *options) zerolog.Logger {
	if !opts.json {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(opts.logLevel).With().Timestamp().Logger()
}

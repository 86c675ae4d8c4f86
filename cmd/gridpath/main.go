// Command gridpath loads a board, runs one search and replays its trace on a
// ticker, printing the board as ASCII.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/session"
	"github.com/katalvlaran/gridpath/trace"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, loads the board and replays one search to outW. Logs go
// to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	opts, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	log := newLogger(opts.logLevel, opts.logFormat, logW)

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	g, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "build grid")
	}
	alg, err := cfg.Algorithm()
	if err != nil {
		return err
	}
	log.Debug("Configuration loaded.", "path", opts.configPath, "rows", g.Rows(), "cols", g.Cols(),
		"algorithm", alg.String(), "speed", cfg.Playback.Speed)

	s := session.New(g, session.WithLogger(log))
	tr, err := s.Run(ctx, alg)
	if err != nil {
		return errors.Wrapf(err, "run %s", alg)
	}

	ticker := time.NewTicker(cfg.Interval())
	defer ticker.Stop()
	err = s.Drive(ctx, ticker.C, func(cs trace.CellState) error {
		if !opts.frames {
			return nil
		}
		_, werr := fmt.Fprintf(outW, "step %d %s %v\n%s\n\n", cs.Index, cs.Kind, cs.Pos, trace.Render(s.Frame()))
		return werr
	})
	if err != nil {
		return errors.Wrap(err, "playback")
	}

	if !opts.frames {
		if _, err = fmt.Fprintf(outW, "%s\n\n", trace.Render(s.Frame())); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(outW, "algorithm=%s explored=%d path=%d found=%t\n",
		tr.Algorithm(), tr.Explored(), tr.PathLen(), tr.Found())

	return err
}

// loadConfig reads the configured file, or the defaults, and applies the
// command-line overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}
	if opts.algo != "" {
		cfg.Playback.Algorithm = opts.algo
	}
	if opts.speed != 0 {
		cfg.Playback.Speed = opts.speed
	}

	return cfg, nil
}

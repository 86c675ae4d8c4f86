package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/trace"
)

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options is the parsed command line. Zero values of algo and speed defer
// to the configuration file.
type options struct {
	configPath string
	algo       string
	speed      int
	logLevel   string
	logFormat  string
	frames     bool
}

// parseArgs processes command-line arguments. It returns the options, a flag
// telling the caller to exit cleanly (help), or an ExitError.
func parseArgs(args []string, output io.Writer) (*options, bool, error) {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
gridpath - replay Dijkstra, BFS and DFS searches on a grid.

Usage:
  gridpath [options]

Options:
`)
		fs.PrintDefaults()
	}

	var o options
	fs.StringVar(&o.configPath, "config", "", "Path to an HCL board file. Empty uses the default 20x20 board.")
	fs.StringVar(&o.algo, "algo", "", "Algorithm: 'dijkstra', 'bfs' or 'dfs'. Overrides the config file.")
	fs.IntVar(&o.speed, "speed", 0, "Playback speed 1..100. Overrides the config file.")
	fs.StringVar(&o.logLevel, "log-level", "info", "Logging level: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&o.logFormat, "log-format", "text", "Log output format: 'text' or 'json'.")
	fs.BoolVar(&o.frames, "frames", false, "Print the board after every step instead of only the final one.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	o.logFormat = strings.ToLower(o.logFormat)
	if o.logFormat != "text" && o.logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	o.logLevel = strings.ToLower(o.logLevel)
	switch o.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if o.algo != "" {
		if _, err := search.ParseAlgorithm(o.algo); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}
	if o.speed != 0 && (o.speed < trace.MinSpeed || o.speed > trace.MaxSpeed) {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid speed %d: must be %d..%d", o.speed, trace.MinSpeed, trace.MaxSpeed)}
	}

	return &o, false, nil
}

// newLogger builds an isolated logger for the chosen level and format.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

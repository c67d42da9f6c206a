package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/ctxlog"
	"github.com/katalvlaran/roadnet/geom"
)

// ExitError carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string { return e.Message }

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// env is what every subcommand receives after the shared flags are parsed.
type env struct {
	out    io.Writer
	logger *slog.Logger
	cfg    config.File
	fs     *flag.FlagSet
}

type command struct {
	summary string
	flags   func(fs *flag.FlagSet) func(ctx context.Context, e *env) error
}

var commands = map[string]command{
	"generate": {"generate a road network and print a summary", generateCmd},
	"path":     {"search a path across the terrain", pathCmd},
	"serve":    {"serve the JSON API", serveCmd},
}

func usage(w io.Writer) {
	fmt.Fprint(w, "\nroadgen - procedural road networks and path search.\n\nUsage:\n  roadgen <command> [options]\n\nCommands:\n")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-9s %s\n", name, commands[name].summary)
	}
	fmt.Fprint(w, "\nRun 'roadgen <command> -h' for the options of a command.\n")
}

// run dispatches args to a subcommand.
func run(ctx context.Context, out, errOut io.Writer, args []string) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		usage(out)
		return nil
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage(errOut)
		return usageError("unknown command %q", args[0])
	}

	fs := flag.NewFlagSet("roadgen "+args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	configPath := fs.String("config", "", "Path to an HCL config file.")
	logLevel := fs.String("log-level", "info", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	logFormat := fs.String("log-format", "text", "Log output format: 'text' or 'json'.")
	action := cmd.flags(fs)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return usageError("%v", err)
	}
	if fs.NArg() > 0 {
		return usageError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	format := strings.ToLower(*logFormat)
	if format != "text" && format != "json" {
		return usageError("invalid log-format: must be 'text' or 'json'")
	}
	switch strings.ToLower(*logLevel) {
	case "debug", "info", "warn", "error":
	default:
		return usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	logger := ctxlog.New(*logLevel, format, errOut)
	ctx = ctxlog.WithLogger(ctx, logger)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(ctx, *configPath); err != nil {
			return &ExitError{Code: 1, Message: err.Error()}
		}
	}
	return action(ctx, &env{out: out, logger: logger, cfg: cfg, fs: fs})
}

// visited reports whether the named flag was set on the command line.
func (e *env) visited(name string) bool {
	found := false
	e.fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// parseVec reads "x,y,z".
func parseVec(s string) (geom.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Vec3{}, fmt.Errorf("%q: want x,y,z", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Vec3{}, fmt.Errorf("%q: %w", s, err)
		}
		v[i] = f
	}
	return geom.V(v[0], v[1], v[2]), nil
}

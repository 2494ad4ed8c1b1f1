package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/metricpush/internal/config"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// logger returns the shared logger, falling back to the process default.
func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"metricpush.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Push PushCmd `cmd:"" default:"withargs" help:"Push one metric value to the metrics gateway"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ConfigExplicit reports whether the config path was overridden on the
// command line. The default file may be absent; an explicit one must exist.
func (c *CLI) ConfigExplicit() bool {
	return c.Config != config.DefaultConfigFile
}

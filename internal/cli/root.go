package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vburojevic/logstat/internal/config"
	"github.com/vburojevic/logstat/internal/output"
)

// CLI is the root command structure for logstat
type CLI struct {
	// Global flags
	Format  string `short:"f" default:"${config_format}" enum:"table,ndjson,csv" help:"Output format"`
	Color   string `default:"${config_color}" enum:"auto,always,never" help:"Colorize table output"`
	Quiet   bool   `short:"q" negatable:"" default:"${config_quiet}" help:"Print only the report (no title or line summary)"`
	Verbose bool   `short:"v" negatable:"" default:"${config_verbose}" help:"Log per-line diagnostics to stderr"`

	// Commands
	Report  ReportCmd  `cmd:"" default:"withargs" help:"Aggregate a JSON access log into a report"`
	Config  ConfigCmd  `cmd:"" help:"Show or manage configuration"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// Vars exposes config values as kong defaults. Flags given on the command
// line still win.
func Vars(cfg *config.Config) kong.Vars {
	if cfg == nil {
		cfg = config.Default()
	}
	return kong.Vars{
		"config_format":  cfg.Format,
		"config_color":   cfg.Color,
		"config_report":  cfg.Report,
		"config_quiet":   strconv.FormatBool(cfg.Quiet),
		"config_verbose": strconv.FormatBool(cfg.Verbose),
		"config_strict":  strconv.FormatBool(cfg.Strict),
	}
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Color   string
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *zap.Logger
}

// NewGlobals creates a new Globals instance from CLI flags
func NewGlobals(cli *CLI) *Globals {
	return NewGlobalsWithConfig(cli, config.Default())
}

// NewGlobalsWithConfig creates a new Globals instance. Config values reach
// the flags through Vars, so cli is taken as already resolved.
func NewGlobalsWithConfig(cli *CLI, cfg *config.Config) *Globals {
	if cfg == nil {
		cfg = config.Default()
	}
	g := &Globals{
		Format:  cli.Format,
		Color:   cli.Color,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
	}
	g.Logger = NewLogger(g.Verbose, g.Stderr)
	return g
}

// NewLogger returns a debug-level console logger on w when verbose is set,
// and a no-op logger otherwise
func NewLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

// Debug prints a debug message if verbose mode is enabled
func (g *Globals) Debug(format string, args ...interface{}) {
	g.logger().Sugar().Debugf(format, args...)
}

func (g *Globals) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

// UseColor reports whether text output should carry ANSI styling
func (g *Globals) UseColor() bool {
	switch g.Color {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := g.Stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Emitter returns a writer for the selected output format
func (g *Globals) Emitter() *output.Emitter {
	format, err := output.ParseFormat(g.Format)
	if err != nil {
		format = output.FormatTable
	}
	return output.NewEmitter(format, g.Stdout, g.Stderr, g.UseColor(), g.Quiet)
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).WriteRaw(map[string]string{
			"type":    "version",
			"version": Version,
			"commit":  Commit,
		})
	}
	_, err := fmt.Fprintf(globals.Stdout, "logstat version %s (%s)\n", Version, Commit)
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)

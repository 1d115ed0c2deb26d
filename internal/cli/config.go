package cli

import (
	"fmt"

	"github.com/vburojevic/logstat/internal/config"
	"github.com/vburojevic/logstat/internal/output"
)

// ConfigCmd shows or manages configuration
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"withargs" help:"Show current configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show configuration file path"`
	Generate ConfigGenerateCmd `cmd:"" help:"Generate sample configuration file"`
}

// ConfigShowCmd shows current configuration
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).WriteRaw(map[string]interface{}{
			"type":    "config",
			"format":  cfg.Format,
			"color":   cfg.Color,
			"quiet":   cfg.Quiet,
			"verbose": cfg.Verbose,
			"report":  cfg.Report,
			"strict":  cfg.Strict,
			"fields":  cfg.Fields,
			"file":    config.ConfigFile(),
		})
	}

	out := globals.Stdout
	fmt.Fprintln(out, "Current Configuration:")
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "  format:  %s\n", cfg.Format)
	fmt.Fprintf(out, "  color:   %s\n", cfg.Color)
	fmt.Fprintf(out, "  quiet:   %v\n", cfg.Quiet)
	fmt.Fprintf(out, "  verbose: %v\n", cfg.Verbose)
	fmt.Fprintf(out, "  report:  %s\n", cfg.Report)
	fmt.Fprintf(out, "  strict:  %v\n", cfg.Strict)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Fields:")
	fmt.Fprintf(out, "  timestamp:     %s\n", cfg.Fields.Timestamp)
	fmt.Fprintf(out, "  url:           %s\n", cfg.Fields.URL)
	fmt.Fprintf(out, "  response_time: %s\n", cfg.Fields.ResponseTime)
	fmt.Fprintf(out, "  user_agent:    %s\n", cfg.Fields.UserAgent)

	if path := config.ConfigFile(); path != "" {
		fmt.Fprintln(out, "")
		fmt.Fprintf(out, "Loaded from: %s\n", path)
	}

	return nil
}

// ConfigPathCmd shows config file path
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if globals.Format == "ndjson" {
		return output.NewNDJSONWriter(globals.Stdout).WriteRaw(map[string]interface{}{
			"type": "config_path",
			"path": path,
		})
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Create one at:")
		fmt.Fprintln(globals.Stdout, "  ./.logstat.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.logstat.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.config/logstat/config.yaml")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}

	return nil
}

// ConfigGenerateCmd generates a sample configuration file
type ConfigGenerateCmd struct{}

const sampleConfig = `# logstat configuration file
# Place this file at ./.logstat.yaml, ~/.logstat.yaml or ~/.config/logstat/config.yaml

# Output format: "table" (default), "ndjson" or "csv"
format: table

# Colorize table output: auto, always, never
color: auto

# Print only the report table
quiet: false

# Log per-line diagnostics to stderr
verbose: false

# Default report: average, count or user_agent
report: average

# Fail on lines that are not valid JSON instead of skipping them
strict: false

# JSON keys read from each log line
fields:
  timestamp: "@timestamp"
  url: url
  response_time: response_time
  user_agent: http_user_agent
`

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	_, err := fmt.Fprint(globals.Stdout, sampleConfig)
	return err
}

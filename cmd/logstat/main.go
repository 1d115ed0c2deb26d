package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/vburojevic/logstat/internal/cli"
	"github.com/vburojevic/logstat/internal/config"
)

func main() {
	// Load configuration from files/environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Config values become flag defaults; explicit flags still win.
	ctx := kong.Parse(&c,
		kong.Name("logstat"),
		kong.Description("Aggregate a newline-delimited JSON access log into a report.\n\nExample: logstat --file access.log --report average --date 2025-06-22"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		cli.Vars(cfg),
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	defer func() {
		_ = globals.Logger.Sync()
	}()

	if err := ctx.Run(globals); err != nil {
		_ = globals.Logger.Sync()
		os.Exit(1)
	}
}

package cli

import (
	"github.com/vburojevic/logstat/internal/config"
	"github.com/vburojevic/logstat/internal/processor"
)

// ReportCmd aggregates a JSON access log and prints the report
type ReportCmd struct {
	File   string `required:"" help:"Newline-delimited JSON access log to read"`
	Report string `short:"r" default:"${config_report}" help:"Report type: average, count or user_agent"`
	Date   string `short:"d" help:"Only count entries on this date (YYYY-MM-DD or ISO date-time)"`
	Strict bool   `negatable:"" default:"${config_strict}" help:"Fail on lines that are not valid JSON instead of skipping them"`
}

// Run executes the report command
func (c *ReportCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	p, err := processor.New(c.File, c.Report, c.Date,
		processor.WithLogger(globals.Logger),
		processor.WithFields(cfg.Fields),
		processor.WithStrict(c.Strict),
	)
	if err != nil {
		return outputProcessingError(globals, err)
	}

	globals.Debug("reading %s (report=%s date=%q)", c.File, p.Kind(), c.Date)
	res, err := p.Run()
	if err != nil {
		return outputProcessingError(globals, err)
	}

	if err := globals.Emitter().Report(res); err != nil {
		return outputErrorCommon(globals, "OUTPUT_FAILED", err.Error(), "")
	}
	return nil
}

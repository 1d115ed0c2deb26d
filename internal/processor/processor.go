// Package processor reads a newline-delimited JSON access log and folds the
// accepted records into the aggregates a report is built from.
package processor

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/vburojevic/logstat/internal/domain"
	"github.com/vburojevic/logstat/internal/filter"
	"github.com/vburojevic/logstat/internal/report"
)

const maxLineSize = 1024 * 1024

var errInvalidJSON = errors.New("line is not valid JSON")

// Processor runs one ingestion pass over a log file
type Processor struct {
	path    string
	kind    report.Kind
	date    string
	fields  domain.Fields
	strict  bool
	filters *filter.Chain
	logger  *zap.Logger
	clock   clock.Clock
}

// Option configures a Processor
type Option func(*Processor)

// WithLogger sets the logger used for per-line diagnostics
func WithLogger(l *zap.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithClock sets the clock used to time a run
func WithClock(c clock.Clock) Option {
	return func(p *Processor) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithFields overrides the JSON keys records are read from
func WithFields(f domain.Fields) Option {
	return func(p *Processor) {
		p.fields = f
	}
}

// WithStrict makes malformed lines fail the run with a JSON decode error
// instead of being skipped
func WithStrict(strict bool) Option {
	return func(p *Processor) {
		p.strict = strict
	}
}

// New validates the report kind and prepares a run over path. date is an
// optional YYYY-MM-DD or ISO date-time; only its calendar date is used.
// No file I/O happens here.
func New(path, kind, date string, opts ...Option) (*Processor, error) {
	k, err := report.ParseKind(kind)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		path:   path,
		kind:   k,
		date:   date,
		fields: domain.DefaultFields(),
		logger: zap.NewNop(),
		clock:  clock.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.fields = p.fields.WithDefaults()

	p.filters = filter.NewChain()
	if date != "" {
		p.filters.Add(filter.NewDateFilter(p.fields.Timestamp, date))
	}
	return p, nil
}

// Kind returns the validated report kind
func (p *Processor) Kind() report.Kind {
	return p.kind
}

// Path returns the log file path
func (p *Processor) Path() string {
	return p.path
}

// Read scans the file once and returns the aggregates. Any validation
// error aborts the scan and no aggregates are returned.
func (p *Processor) Read() (*domain.Aggregates, error) {
	file, err := os.Open(p.path)
	if err != nil {
		return nil, domain.NewFileAccessError(p.path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.logger.Debug("failed to close log file", zap.String("path", p.path), zap.Error(err))
		}
	}()

	return p.scan(file)
}

func (p *Processor) scan(r io.Reader) (*domain.Aggregates, error) {
	agg := domain.NewAggregates()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		agg.Lines.Total++

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			agg.Lines.Blank++
			continue
		}

		if !gjson.ValidBytes(line) {
			if p.strict {
				return nil, domain.NewJSONDecodeError(lineNum, errInvalidJSON)
			}
			agg.Lines.Malformed++
			p.logger.Debug("skipping malformed line", zap.Int("line", lineNum))
			continue
		}

		rec := gjson.ParseBytes(line)
		if !rec.IsObject() {
			return nil, domain.NewValidationError(lineNum, "record is not a JSON object", nil)
		}
		for _, key := range []string{p.fields.Timestamp, p.fields.URL} {
			if !filter.Field(rec, key).Exists() {
				return nil, domain.NewValidationError(lineNum, fmt.Sprintf("missing required field %q", key), nil)
			}
		}

		ok, err := p.filters.Match(rec, lineNum)
		if err != nil {
			return nil, err
		}
		if !ok {
			agg.Lines.Filtered++
			continue
		}

		record, err := p.record(rec, lineNum)
		if err != nil {
			return nil, err
		}
		agg.Accept(record)
	}

	if err := scanner.Err(); err != nil {
		return nil, domain.NewFileAccessError(p.path, err)
	}

	p.logger.Debug("log file scanned",
		zap.String("path", p.path),
		zap.Int("lines", agg.Lines.Total),
		zap.Int("accepted", agg.Lines.Accepted),
		zap.Int("malformed", agg.Lines.Malformed),
		zap.Int("filtered", agg.Lines.Filtered),
	)
	return agg, nil
}

// record extracts the aggregated fields. url and response time are
// required here even though url was already checked before filtering.
func (p *Processor) record(rec gjson.Result, line int) (domain.LogRecord, error) {
	url := filter.Field(rec, p.fields.URL)
	rt := filter.Field(rec, p.fields.ResponseTime)
	if absent(url) || absent(rt) {
		return domain.LogRecord{}, domain.NewValidationError(line,
			fmt.Sprintf("missing %q or %q", p.fields.URL, p.fields.ResponseTime), nil)
	}
	if url.Type != gjson.String {
		return domain.LogRecord{}, domain.NewValidationError(line,
			fmt.Sprintf("field %q is not a string: %s", p.fields.URL, url.Raw), nil)
	}
	if rt.Type != gjson.Number {
		return domain.LogRecord{}, domain.NewValidationError(line,
			fmt.Sprintf("field %q is not a number: %s", p.fields.ResponseTime, rt.Raw), nil)
	}
	if rt.Num < 0 {
		return domain.LogRecord{}, domain.NewValidationError(line,
			fmt.Sprintf("field %q is negative: %s", p.fields.ResponseTime, rt.Raw), nil)
	}

	out := domain.LogRecord{
		Line:         line,
		Timestamp:    filter.Field(rec, p.fields.Timestamp).String(),
		URL:          url.Str,
		ResponseTime: rt.Num,
	}
	if ua := filter.Field(rec, p.fields.UserAgent); !absent(ua) {
		out.UserAgent = ua.String()
		out.HasUserAgent = true
	}
	return out, nil
}

func absent(r gjson.Result) bool {
	return !r.Exists() || r.Type == gjson.Null
}

// Report builds the report for the processor's kind from agg
func (p *Processor) Report(agg *domain.Aggregates) report.Report {
	return report.Generate(p.kind, agg)
}

// Result is the outcome of a complete run
type Result struct {
	Path        string           `json:"path"`
	Date        string           `json:"date,omitempty"`
	Report      report.Report    `json:"report"`
	Lines       domain.LineStats `json:"lines"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Elapsed     time.Duration    `json:"elapsed"`
}

// Run reads the file and generates the report
func (p *Processor) Run() (*Result, error) {
	start := p.clock.Now()

	agg, err := p.Read()
	if err != nil {
		return nil, err
	}
	rep := p.Report(agg)

	end := p.clock.Now()
	p.logger.Debug("report generated",
		zap.String("kind", string(p.kind)),
		zap.Int("rows", len(rep.Rows)),
		zap.Duration("elapsed", end.Sub(start)),
	)

	return &Result{
		Path:        p.path,
		Date:        p.date,
		Report:      rep,
		Lines:       agg.Lines,
		GeneratedAt: end,
		Elapsed:     end.Sub(start),
	}, nil
}

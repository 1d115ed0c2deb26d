package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/vburojevic/logstat/internal/domain"
	"github.com/vburojevic/logstat/internal/processor"
)

// NDJSONWriter writes one JSON object per line
type NDJSONWriter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // urls and user agents stay readable
	return &NDJSONWriter{
		w:       w,
		encoder: enc,
	}
}

// ReportOutput is the NDJSON form of a finished report
type ReportOutput struct {
	Type          string           `json:"type"` // Always "report"
	SchemaVersion int              `json:"schemaVersion"`
	Kind          string           `json:"kind"`
	Path          string           `json:"path"`
	Date          string           `json:"date,omitempty"`
	Headers       []string         `json:"headers"`
	Rows          [][]any          `json:"rows"`
	Lines         domain.LineStats `json:"lines"`
	GeneratedAt   string           `json:"generated_at"`
	ElapsedMs     int64            `json:"elapsed_ms"`
}

// NewReportOutput converts a run result to its NDJSON form
func NewReportOutput(res *processor.Result) *ReportOutput {
	rows := res.Report.Rows
	if rows == nil {
		rows = [][]any{}
	}
	return &ReportOutput{
		Type:          "report",
		SchemaVersion: SchemaVersion,
		Kind:          string(res.Report.Kind),
		Path:          res.Path,
		Date:          res.Date,
		Headers:       res.Report.Headers,
		Rows:          rows,
		Lines:         res.Lines,
		GeneratedAt:   res.GeneratedAt.Format(time.RFC3339Nano),
		ElapsedMs:     res.Elapsed.Milliseconds(),
	}
}

// WriteReport outputs the report as a single object
func (w *NDJSONWriter) WriteReport(res *processor.Result) error {
	return w.encoder.Encode(NewReportOutput(res))
}

// WriteError outputs an error
func (w *NDJSONWriter) WriteError(code, message, hint string) error {
	err := domain.NewErrorOutput(code, message)
	err.Hint = hint
	err.SchemaVersion = SchemaVersion
	return w.encoder.Encode(err)
}

// WriteRaw outputs raw JSON data
func (w *NDJSONWriter) WriteRaw(v interface{}) error {
	return w.encoder.Encode(v)
}

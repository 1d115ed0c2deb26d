package output

import (
	"fmt"
	"io"

	"github.com/vburojevic/logstat/internal/processor"
)

// Format selects how reports are rendered
type Format string

const (
	FormatTable  Format = "table"
	FormatNDJSON Format = "ndjson"
	FormatCSV    Format = "csv"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatNDJSON, FormatCSV:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (expected table, ndjson or csv)", s)
}

// Emitter routes reports and errors to the writer for one format.
// Reports go to out; in table and csv formats errors go to errOut.
type Emitter struct {
	format Format
	out    io.Writer
	errOut io.Writer
	ndjson *NDJSONWriter
	text   *TextWriter
	errTxt *TextWriter
}

// NewEmitter creates an emitter for format
func NewEmitter(format Format, out, errOut io.Writer, color, quiet bool) *Emitter {
	return &Emitter{
		format: format,
		out:    out,
		errOut: errOut,
		ndjson: NewNDJSONWriter(out),
		text:   NewTextWriter(out, color, quiet),
		errTxt: NewTextWriter(errOut, color, quiet),
	}
}

// Report writes a finished run
func (e *Emitter) Report(res *processor.Result) error {
	switch e.format {
	case FormatNDJSON:
		return e.ndjson.WriteReport(res)
	case FormatCSV:
		return WriteCSV(e.out, res.Report)
	default:
		return e.text.WriteReport(res)
	}
}

// Error writes a failure with an optional hint
func (e *Emitter) Error(code, msg, hint string) error {
	if e.format == FormatNDJSON {
		return e.ndjson.WriteError(code, msg, hint)
	}
	return e.errTxt.WriteError(code, msg, hint)
}

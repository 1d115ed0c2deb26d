package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/vburojevic/logstat/internal/processor"
	"github.com/vburojevic/logstat/internal/report"
)

// WriteTable renders r as a bordered grid
func WriteTable(w io.Writer, r report.Report) error {
	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))

	headers := make([]any, len(r.Headers))
	for i, h := range r.Headers {
		headers[i] = h
	}
	table.Header(headers...)

	if err := table.Bulk(r.Strings()); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

// TextWriter writes a titled table followed by a line summary
type TextWriter struct {
	w      io.Writer
	styles Styles
	quiet  bool
}

// NewTextWriter creates a text writer. quiet drops the title and footer.
func NewTextWriter(w io.Writer, color, quiet bool) *TextWriter {
	return &TextWriter{w: w, styles: NewStyles(w, color), quiet: quiet}
}

// WriteReport outputs the result table
func (t *TextWriter) WriteReport(res *processor.Result) error {
	if !t.quiet {
		title := t.styles.Title.Render(string(res.Report.Kind)+" report") + " " + t.styles.Label.Render(res.Path)
		if res.Date != "" {
			title += " " + t.styles.Label.Render("date="+res.Date)
		}
		if _, err := io.WriteString(t.w, title+"\n"); err != nil {
			return err
		}
	}

	if err := WriteTable(t.w, res.Report); err != nil {
		return err
	}

	if t.quiet {
		return nil
	}
	return t.writeLines(res)
}

func (t *TextWriter) writeLines(res *processor.Result) error {
	s := t.styles
	line := s.Label.Render("Lines: ") + s.Value.Render(strconv.Itoa(res.Lines.Total)) + " | " +
		s.Label.Render("Accepted: ") + s.Success.Render(strconv.Itoa(res.Lines.Accepted)) + " | "

	if res.Lines.Malformed > 0 {
		line += s.Warning.Render("Malformed: "+strconv.Itoa(res.Lines.Malformed)) + " | "
	} else {
		line += s.Label.Render("Malformed: ") + s.Value.Render("0") + " | "
	}
	line += s.Label.Render("Filtered: ") + s.Value.Render(strconv.Itoa(res.Lines.Filtered)) + "\n"

	_, err := io.WriteString(t.w, line)
	return err
}

// WriteError outputs a styled error
func (t *TextWriter) WriteError(code, message, hint string) error {
	line := t.styles.Danger.Render("Error") + " " + t.styles.Warning.Render("["+code+"]") + ": " + message + "\n"
	if hint != "" {
		line += t.styles.Label.Render("Hint: "+hint) + "\n"
	}
	_, err := io.WriteString(t.w, line)
	return err
}

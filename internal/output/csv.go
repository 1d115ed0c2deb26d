package output

import (
	"encoding/csv"
	"io"

	"github.com/vburojevic/logstat/internal/report"
)

// WriteCSV writes the header row followed by the data rows
func WriteCSV(w io.Writer, r report.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.Headers); err != nil {
		return err
	}
	if err := cw.WriteAll(r.Strings()); err != nil {
		return err
	}
	return cw.Error()
}

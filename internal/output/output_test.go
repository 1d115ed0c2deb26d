package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburojevic/logstat/internal/domain"
	"github.com/vburojevic/logstat/internal/processor"
	"github.com/vburojevic/logstat/internal/report"
)

func sampleResult() *processor.Result {
	return &processor.Result{
		Path: "access.log",
		Date: "2025-06-22",
		Report: report.Report{
			Kind:    report.KindAverage,
			Headers: []string{"Endpoint", "Number of Requests", "Average Response Time (s)"},
			Rows: [][]any{
				{"/api/v1/users", 2, "0.150"},
				{"/api/v1/orders", 1, "0.300"},
			},
		},
		Lines:       domain.LineStats{Total: 4, Malformed: 1, Accepted: 3},
		GeneratedAt: time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC),
		Elapsed:     1500 * time.Millisecond,
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sampleResult().Report))

	out := buf.String()
	assert.Contains(t, strings.ToLower(out), "endpoint")
	assert.Contains(t, strings.ToLower(out), "average response time (s)")
	assert.Contains(t, out, "/api/v1/users")
	assert.Contains(t, out, "0.150")
	assert.Contains(t, out, "/api/v1/orders")
	assert.Contains(t, out, "0.300")
	assert.Less(t, strings.Index(out, "/api/v1/users"), strings.Index(out, "/api/v1/orders"))
}

func TestWriteTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := report.Count(domain.NewEndpointStats())
	require.NoError(t, WriteTable(&buf, r))
	assert.Contains(t, strings.ToLower(buf.String()), "number of requests")
}

func TestTextWriter_WriteReport(t *testing.T) {
	t.Run("includes title and line summary", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewTextWriter(&buf, false, false)
		require.NoError(t, w.WriteReport(sampleResult()))

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "average report access.log date=2025-06-22\n"))
		assert.Contains(t, out, "Lines: 4")
		assert.Contains(t, out, "Accepted: 3")
		assert.Contains(t, out, "Malformed: 1")
		assert.NotContains(t, out, "\x1b[")
	})

	t.Run("quiet prints only the table", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewTextWriter(&buf, false, true)
		require.NoError(t, w.WriteReport(sampleResult()))

		out := buf.String()
		assert.NotContains(t, out, "average report")
		assert.NotContains(t, out, "Lines:")
		assert.Contains(t, out, "/api/v1/users")
	})

	t.Run("color adds escape sequences", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewTextWriter(&buf, true, false)
		require.NoError(t, w.WriteReport(sampleResult()))
		assert.Contains(t, buf.String(), "\x1b[")
	})
}

func TestTextWriter_WriteError(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, false, false)
	require.NoError(t, w.WriteError("FILE_ACCESS", "cannot read log file x.log", "check --file"))

	assert.Equal(t, "Error [FILE_ACCESS]: cannot read log file x.log\nHint: check --file\n", buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResult().Report))

	assert.Equal(t,
		"Endpoint,Number of Requests,Average Response Time (s)\n"+
			"/api/v1/users,2,0.150\n"+
			"/api/v1/orders,1,0.300\n",
		buf.String())
}

func TestNDJSONWriter_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)
	require.NoError(t, w.WriteReport(sampleResult()))

	var out ReportOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "report", out.Type)
	assert.Equal(t, SchemaVersion, out.SchemaVersion)
	assert.Equal(t, "average", out.Kind)
	assert.Equal(t, "access.log", out.Path)
	assert.Equal(t, "2025-06-22", out.Date)
	assert.Equal(t, []string{"Endpoint", "Number of Requests", "Average Response Time (s)"}, out.Headers)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, []any{"/api/v1/users", float64(2), "0.150"}, out.Rows[0])
	assert.Equal(t, 3, out.Lines.Accepted)
	assert.Equal(t, "2025-06-22T12:00:00Z", out.GeneratedAt)
	assert.Equal(t, int64(1500), out.ElapsedMs)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestNDJSONWriter_EmptyRowsEncodeAsArray(t *testing.T) {
	res := sampleResult()
	res.Report.Rows = nil

	var buf bytes.Buffer
	require.NoError(t, NewNDJSONWriter(&buf).WriteReport(res))
	assert.Contains(t, buf.String(), `"rows":[]`)
}

func TestNDJSONWriter_WriteError(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)
	require.NoError(t, w.WriteError("UNKNOWN_REPORT", `unknown report type: "bogus"`, "use average"))

	var out domain.ErrorOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "error", out.Type)
	assert.Equal(t, SchemaVersion, out.SchemaVersion)
	assert.Equal(t, "UNKNOWN_REPORT", out.Code)
	assert.Equal(t, `unknown report type: "bogus"`, out.Message)
	assert.Equal(t, "use average", out.Hint)
}

func TestParseFormat(t *testing.T) {
	for _, f := range []string{"table", "ndjson", "csv"} {
		got, err := ParseFormat(f)
		require.NoError(t, err)
		assert.Equal(t, Format(f), got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestEmitter(t *testing.T) {
	tests := []struct {
		format  Format
		contain string
	}{
		{FormatTable, "average report"},
		{FormatCSV, "/api/v1/users,2,0.150"},
		{FormatNDJSON, `"type":"report"`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var out, errOut bytes.Buffer
			e := NewEmitter(tt.format, &out, &errOut, false, false)
			require.NoError(t, e.Report(sampleResult()))
			assert.Contains(t, out.String(), tt.contain)
			assert.Empty(t, errOut.String())
		})
	}

	t.Run("text errors go to errOut", func(t *testing.T) {
		var out, errOut bytes.Buffer
		e := NewEmitter(FormatTable, &out, &errOut, false, false)
		require.NoError(t, e.Error("DATA_VALIDATION", "bad line", ""))
		assert.Empty(t, out.String())
		assert.Equal(t, "Error [DATA_VALIDATION]: bad line\n", errOut.String())
	})

	t.Run("ndjson errors go to out", func(t *testing.T) {
		var out, errOut bytes.Buffer
		e := NewEmitter(FormatNDJSON, &out, &errOut, false, false)
		require.NoError(t, e.Error("DATA_VALIDATION", "bad line", ""))
		assert.Contains(t, out.String(), `"code":"DATA_VALIDATION"`)
		assert.Empty(t, errOut.String())
	})
}

package report

import (
	"fmt"

	"github.com/vburojevic/logstat/internal/domain"
)

// Kind selects which report is produced
type Kind string

const (
	KindAverage   Kind = "average"
	KindCount     Kind = "count"
	KindUserAgent Kind = "user_agent"
)

// DefaultKind is used when no report is requested
const DefaultKind = KindAverage

// Kinds returns the supported report kinds
func Kinds() []Kind {
	return []Kind{KindAverage, KindCount, KindUserAgent}
}

// ParseKind validates a report name
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", domain.NewUnknownReportError(name)
}

// Report is a header row plus data rows; every row has len(Headers) cells
type Report struct {
	Kind    Kind     `json:"kind"`
	Headers []string `json:"headers"`
	Rows    [][]any  `json:"rows"`
}

// Strings renders every cell with fmt for text renderers
func (r Report) Strings() [][]string {
	out := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		out = append(out, cells)
	}
	return out
}

// Generate routes agg to the strategy for kind. A kind outside Kinds
// yields a report with no headers or rows.
func Generate(kind Kind, agg *domain.Aggregates) Report {
	switch kind {
	case KindUserAgent:
		return UserAgents(agg.Entries)
	case KindCount:
		return Count(agg.Stats)
	case KindAverage:
		return Average(agg.Stats)
	}
	return Report{Kind: kind}
}

// Average reports request count and mean response time per endpoint
func Average(stats *domain.EndpointStats) Report {
	rows := make([][]any, 0, stats.Len())
	for _, url := range stats.Endpoints() {
		st, _ := stats.Get(url)
		rows = append(rows, []any{url, st.Count, fmt.Sprintf("%.3f", st.Average())})
	}
	return Report{
		Kind:    KindAverage,
		Headers: []string{"Endpoint", "Number of Requests", "Average Response Time (s)"},
		Rows:    rows,
	}
}

// Count reports request count per endpoint
func Count(stats *domain.EndpointStats) Report {
	rows := make([][]any, 0, stats.Len())
	for _, url := range stats.Endpoints() {
		st, _ := stats.Get(url)
		rows = append(rows, []any{url, st.Count})
	}
	return Report{
		Kind:    KindCount,
		Headers: []string{"Endpoint", "Number of Requests"},
		Rows:    rows,
	}
}

// UserAgents reports request count per user agent, in first-sighting order
func UserAgents(entries []domain.LogRecord) Report {
	var order []string
	counts := make(map[string]int)
	for _, e := range entries {
		agent := e.Agent()
		if _, seen := counts[agent]; !seen {
			order = append(order, agent)
		}
		counts[agent]++
	}

	rows := make([][]any, 0, len(order))
	for _, agent := range order {
		rows = append(rows, []any{agent, counts[agent]})
	}
	return Report{
		Kind:    KindUserAgent,
		Headers: []string{"User-Agent", "Count"},
		Rows:    rows,
	}
}

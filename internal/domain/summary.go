package domain

// EndpointStat accumulates timings for a single endpoint
type EndpointStat struct {
	Count     int     `json:"count"`
	TotalTime float64 `json:"totalTime"`
}

// Average returns the mean response time, or 0 when nothing was counted
func (s *EndpointStat) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.TotalTime / float64(s.Count)
}

// EndpointStats maps url -> stats and remembers the order urls were first seen
type EndpointStats struct {
	order []string
	byURL map[string]*EndpointStat
}

// NewEndpointStats creates an empty aggregate
func NewEndpointStats() *EndpointStats {
	return &EndpointStats{byURL: make(map[string]*EndpointStat)}
}

// Upsert returns the entry for url, creating a zero entry on first sighting
func (s *EndpointStats) Upsert(url string) *EndpointStat {
	if st, ok := s.byURL[url]; ok {
		return st
	}
	st := &EndpointStat{}
	s.byURL[url] = st
	s.order = append(s.order, url)
	return st
}

// Add counts one request to url that took seconds
func (s *EndpointStats) Add(url string, seconds float64) {
	st := s.Upsert(url)
	st.Count++
	st.TotalTime += seconds
}

// Get looks up url without inserting
func (s *EndpointStats) Get(url string) (EndpointStat, bool) {
	st, ok := s.byURL[url]
	if !ok {
		return EndpointStat{}, false
	}
	return *st, true
}

// Endpoints returns urls in first-sighting order
func (s *EndpointStats) Endpoints() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of distinct endpoints
func (s *EndpointStats) Len() int {
	return len(s.order)
}

// LineStats counts how each input line was handled
type LineStats struct {
	Total     int `json:"total"`
	Blank     int `json:"blank"`
	Malformed int `json:"malformed"`
	Filtered  int `json:"filtered"`
	Accepted  int `json:"accepted"`
}

// Aggregates is the result of one ingestion pass.
// Every record in Entries was also folded into Stats.
type Aggregates struct {
	Stats   *EndpointStats
	Entries []LogRecord
	Lines   LineStats
}

// NewAggregates creates empty aggregates
func NewAggregates() *Aggregates {
	return &Aggregates{Stats: NewEndpointStats()}
}

// Accept appends rec to Entries and folds it into Stats
func (a *Aggregates) Accept(rec LogRecord) {
	a.Entries = append(a.Entries, rec)
	a.Stats.Add(rec.URL, rec.ResponseTime)
	a.Lines.Accepted++
}

// ErrorOutput represents a structured error for NDJSON output
type ErrorOutput struct {
	Type          string `json:"type"`          // Always "error"
	SchemaVersion int    `json:"schemaVersion"` // Schema version for compatibility
	Code          string `json:"code"`          // Machine-readable error code
	Message       string `json:"message"`       // Human-readable message
	Hint          string `json:"hint,omitempty"`
}

// NewErrorOutput creates a new error output
// Note: SchemaVersion should be set by the caller (output package)
func NewErrorOutput(code, message string) *ErrorOutput {
	return &ErrorOutput{
		Type:    "error",
		Code:    code,
		Message: message,
	}
}

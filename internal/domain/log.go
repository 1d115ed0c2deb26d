package domain

// UnknownUserAgent is reported for records that carry no user agent field
const UnknownUserAgent = "Unknown"

// LogRecord is one accepted line of an access log
type LogRecord struct {
	Line         int     `json:"line"`
	Timestamp    string  `json:"timestamp"`
	URL          string  `json:"url"`
	ResponseTime float64 `json:"responseTime"` // seconds
	UserAgent    string  `json:"userAgent,omitempty"`
	HasUserAgent bool    `json:"-"`
}

// Agent returns the record's user agent, or UnknownUserAgent when the field was absent
func (r LogRecord) Agent() string {
	if !r.HasUserAgent {
		return UnknownUserAgent
	}
	return r.UserAgent
}

// Fields names the JSON keys a log line is read from
type Fields struct {
	Timestamp    string `mapstructure:"timestamp" json:"timestamp"`
	URL          string `mapstructure:"url" json:"url"`
	ResponseTime string `mapstructure:"response_time" json:"response_time"`
	UserAgent    string `mapstructure:"user_agent" json:"user_agent"`
}

// DefaultFields returns the keys written by the nginx JSON access-log format
func DefaultFields() Fields {
	return Fields{
		Timestamp:    "@timestamp",
		URL:          "url",
		ResponseTime: "response_time",
		UserAgent:    "http_user_agent",
	}
}

// WithDefaults fills empty keys from DefaultFields
func (f Fields) WithDefaults() Fields {
	d := DefaultFields()
	if f.Timestamp == "" {
		f.Timestamp = d.Timestamp
	}
	if f.URL == "" {
		f.URL = d.URL
	}
	if f.ResponseTime == "" {
		f.ResponseTime = d.ResponseTime
	}
	if f.UserAgent == "" {
		f.UserAgent = d.UserAgent
	}
	return f
}

package filter

import (
	"github.com/tidwall/gjson"
)

// Filter determines if a decoded log line should be aggregated
type Filter interface {
	// Match returns true if the record passes the filter. line is 1-based
	// and only used to annotate errors.
	Match(rec gjson.Result, line int) (bool, error)
}

// Chain combines multiple filters (all must pass)
type Chain struct {
	filters []Filter
}

// NewChain creates a filter chain from multiple filters
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Match returns true only if all filters pass. The first error stops the chain.
func (c *Chain) Match(rec gjson.Result, line int) (bool, error) {
	if c == nil {
		return true, nil
	}
	for _, f := range c.filters {
		ok, err := f.Match(rec, line)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Add appends a filter to the chain
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Len returns the number of filters in the chain
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.filters)
}

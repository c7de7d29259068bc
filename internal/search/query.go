// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"strings"
	"time"
)

// Query holds the structured parameters for an API search.
type Query struct {
	Categories []string
	Keywords   []string
	Authors    []string
	From       time.Time
	To         time.Time
}

// IsEmpty reports whether the query contains no searchable clause. The
// remote service cannot be queried without at least one.
func (q Query) IsEmpty() bool {
	return len(q.Categories) == 0 && len(q.Keywords) == 0 && len(q.Authors) == 0 &&
		q.From.IsZero() && q.To.IsZero()
}

// stampFmt is the timestamp layout of submittedDate range bounds.
const stampFmt = "20060102150405"

// dateFloor is the range start used when only an end bound is given.
const dateFloor = "20000101000000"

// Build constructs the search_query expression: clause groups are joined
// with AND, alternatives within a group with OR. Multi-word keyword
// phrases are quoted so the service matches them as phrases.
func (q Query) Build() string {
	var parts []string

	if len(q.Categories) > 0 {
		cats := make([]string, len(q.Categories))
		for i, c := range q.Categories {
			cats[i] = "cat:" + c
		}
		parts = append(parts, "("+strings.Join(cats, " OR ")+")")
	}

	for _, kw := range q.Keywords {
		if strings.Contains(kw, " ") {
			kw = `"` + kw + `"`
		}
		parts = append(parts, fmt.Sprintf("(ti:%s OR abs:%s)", kw, kw))
	}

	for _, au := range q.Authors {
		parts = append(parts, fmt.Sprintf(`au:"%s"`, au))
	}

	if !q.From.IsZero() || !q.To.IsZero() {
		start := dateFloor
		if !q.From.IsZero() {
			start = q.From.Format(stampFmt)
		}
		end := time.Now().Format(stampFmt)
		if !q.To.IsZero() {
			end = q.To.Format(stampFmt)
		}
		parts = append(parts, fmt.Sprintf("submittedDate:[%s TO %s]", start, end))
	}

	return strings.Join(parts, " AND ")
}

// SortKey returns the result ordering requested from the service:
// relevance when keywords drive the query, submission date otherwise.
// Both are descending.
func (q Query) SortKey() string {
	if len(q.Keywords) > 0 {
		return "relevance"
	}
	return "submittedDate"
}

// ParseDate validates a YYYY-MM-DD bound. An empty string is a zero time,
// not an error; a malformed value is an input validation failure surfaced
// before any network call.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

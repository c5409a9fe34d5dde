package utils

import (
	"time"
)

// QueryDateFormat is the date layout accepted on query parameters.
const QueryDateFormat = "2006-01-02"

// ParseQueryDate parses a query-parameter date. An empty or malformed value
// yields the zero time; callers treat that as "not provided".
func ParseQueryDate(dateStr string) time.Time {
	if dateStr == "" {
		return time.Time{}
	}
	t, err := time.Parse(QueryDateFormat, dateStr)
	if err != nil {
		return time.Time{}
	}
	return t
}

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// FlexTime is the canonical timestamp type for ledger records.
//
// Records reach the engine in several shapes depending on where the sync
// layer picked them up: RFC3339 strings, plain "2006-01-02 15:04:05" strings,
// epoch seconds or milliseconds, or the lazily-materialized
// {seconds, nanoseconds} wrapper that has not been converted to a real date
// yet. All of them normalize here, once, at ingestion. Aggregation logic only
// ever sees the embedded time.Time.
//
// The zero value means the timestamp could not be resolved; such records are
// excluded from every interval-bucketed output but stay in the ledger.
type FlexTime struct {
	time.Time
}

// Accepted string layouts, tried in order.
var flexTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// tsWrapper is the not-yet-converted timestamp shape emitted by the sync
// layer (it exposes a conversion accessor client-side; over the wire only the
// two fields survive).
type tsWrapper struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

// NewFlexTime wraps an already-concrete time.
func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{Time: t}
}

// UnmarshalJSON accepts every supported timestamp representation. Unparseable
// input yields the zero value rather than an error; a malformed timestamp
// must never abort decoding of the whole ledger.
func (ft *FlexTime) UnmarshalJSON(data []byte) error {
	ft.Time = time.Time{}

	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		ft.Time = parseFlexString(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		ft.Time = fromEpoch(int64(n))
		return nil
	}

	var w tsWrapper
	if err := json.Unmarshal(data, &w); err == nil && (w.Seconds != 0 || w.Nanoseconds != 0) {
		ft.Time = time.Unix(w.Seconds, w.Nanoseconds)
		return nil
	}

	return nil
}

// Scan implements sql.Scanner so FlexTime columns read back from SQLite
// regardless of whether they were stored as TEXT or as epoch integers.
func (ft *FlexTime) Scan(value interface{}) error {
	ft.Time = time.Time{}
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		ft.Time = v
	case string:
		ft.Time = parseFlexString(v)
	case []byte:
		ft.Time = parseFlexString(string(v))
	case int64:
		ft.Time = fromEpoch(v)
	case float64:
		ft.Time = fromEpoch(int64(v))
	default:
		return fmt.Errorf("unsupported timestamp column type %T", value)
	}
	return nil
}

func parseFlexString(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range flexTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	// TEXT columns written by the older sync client hold bare epoch values.
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromEpoch(n)
	}
	return time.Time{}
}

// fromEpoch interprets values above ~March 2001 in milliseconds as
// milliseconds; everything else as seconds. Ledger data starts well after
// 2001, so the ranges cannot collide in practice.
func fromEpoch(v int64) time.Time {
	if v == 0 {
		return time.Time{}
	}
	if v > 1e12 {
		return time.UnixMilli(v)
	}
	return time.Unix(v, 0)
}

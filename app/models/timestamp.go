package models

import (
	"fmt"
	"time"
)

// timestampLayout is the serialized form of creation times: millisecond
// precision, always UTC.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is a time.Time that serializes as millisecond-precision
// ISO-8601 in UTC, matching the on-disk JSON layout.
type Timestamp struct {
	time.Time
}

// NewTimestamp converts t to storage precision (UTC, truncated to
// milliseconds).
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Millisecond)}
}

// Now returns the current time at storage precision.
func Now() Timestamp {
	return NewTimestamp(time.Now())
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(timestampLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts any RFC 3339
// timestamp, not only the canonical layout this package writes.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid timestamp %s", s)
	}
	parsed, err := time.Parse(time.RFC3339, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", s, err)
	}
	t.Time = parsed.UTC()
	return nil
}

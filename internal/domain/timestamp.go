package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// bittrexLayout is the zone-less UTC layout used by the v1.1 API.
const bittrexLayout = "2006-01-02T15:04:05.999999999"

// Timestamp decodes exchange times. The API omits the zone, values are UTC.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// UnmarshalJSON accepts the exchange layout, RFC 3339 and null.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decode timestamp")
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		parsed, err = time.ParseInLocation(bittrexLayout, raw, time.UTC)
		if err != nil {
			return errors.Wrapf(err, "decode timestamp %q", raw)
		}
	}
	t.Time = parsed.UTC()

	return nil
}

// MarshalJSON writes the exchange layout, or null for the zero time.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.UTC().Format(bittrexLayout))
}

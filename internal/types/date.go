package types

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date accepts "YYYY-MM-DD" or RFC3339 strings in request payloads and
// normalizes them to a time value.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
		}
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// NullableDate distinguishes three states a partial update needs to keep
// apart: field omitted (leave stored value), explicit null (clear the
// stored value), and a date (overwrite).
type NullableDate struct {
	Present bool
	Valid   bool
	Time    time.Time
}

func (d *NullableDate) UnmarshalJSON(b []byte) error {
	d.Present = true
	if string(b) == "null" {
		d.Valid = false
		return nil
	}
	var inner Date
	if err := inner.UnmarshalJSON(b); err != nil {
		return err
	}
	d.Valid = true
	d.Time = inner.Time
	return nil
}

func (d NullableDate) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(dateLayout))
}

package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// FlexTime is a time.Time that can be unmarshaled from either an RFC3339
// JSON string or a unix-seconds JSON number. Date-range filters and posted
// timestamps accept both forms.
type FlexTime time.Time

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexTime) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	// Try unmarshaling as a string first
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t, err := ParseFlexTime(s)
		if err != nil {
			return err
		}
		*f = FlexTime(t)
		return nil
	}

	// Try unmarshaling as unix seconds
	var secs int64
	if err := json.Unmarshal(data, &secs); err == nil {
		*f = FlexTime(time.Unix(secs, 0).UTC())
		return nil
	}

	return fmt.Errorf("FlexTime: unexpected type, expected RFC3339 string or unix seconds")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(f).UTC().Format(time.RFC3339))
}

// Time converts FlexTime back to time.Time.
func (f FlexTime) Time() time.Time {
	return time.Time(f)
}

// ParseFlexTime interprets a raw query value as RFC3339 or unix seconds.
func ParseFlexTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("FlexTime: invalid time value %q", s)
}

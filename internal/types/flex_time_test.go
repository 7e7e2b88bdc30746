package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/socialsync/socialdb/internal/types"
)

// TestFlexTimeUnmarshal tests both accepted wire forms.
func TestFlexTimeUnmarshal(t *testing.T) {
	want := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	var fromString types.FlexTime
	if err := json.Unmarshal([]byte(`"2026-08-01T12:00:00Z"`), &fromString); err != nil {
		t.Fatalf("Failed to unmarshal RFC3339: %v", err)
	}
	if !fromString.Time().Equal(want) {
		t.Errorf("Expected %v, got %v", want, fromString.Time())
	}

	var fromSecs types.FlexTime
	if err := json.Unmarshal([]byte(`1785585600`), &fromSecs); err != nil {
		t.Fatalf("Failed to unmarshal unix seconds: %v", err)
	}
	if !fromSecs.Time().Equal(time.Unix(1785585600, 0)) {
		t.Errorf("Unexpected unix conversion: %v", fromSecs.Time())
	}

	var fromNull types.FlexTime
	if err := json.Unmarshal([]byte(`null`), &fromNull); err != nil {
		t.Errorf("Expected null to be a no-op, got %v", err)
	}

	var bad types.FlexTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &bad); err == nil {
		t.Error("Expected unparseable string to fail")
	}
	if err := json.Unmarshal([]byte(`true`), &bad); err == nil {
		t.Error("Expected boolean to fail")
	}
}

// TestFlexTimeMarshal tests the RFC3339 output form.
func TestFlexTimeMarshal(t *testing.T) {
	f := types.FlexTime(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if string(data) != `"2026-08-01T12:00:00Z"` {
		t.Errorf("Unexpected output: %s", data)
	}
}

// TestParseFlexTime tests the query-parameter form.
func TestParseFlexTime(t *testing.T) {
	got, err := types.ParseFlexTime("2026-08-01T12:00:00Z")
	if err != nil {
		t.Fatalf("Failed to parse RFC3339: %v", err)
	}
	if !got.Equal(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected parse result: %v", got)
	}

	got, err = types.ParseFlexTime("1785585600")
	if err != nil {
		t.Fatalf("Failed to parse unix seconds: %v", err)
	}
	if !got.Equal(time.Unix(1785585600, 0)) {
		t.Errorf("Unexpected parse result: %v", got)
	}

	if _, err := types.ParseFlexTime("garbage"); err == nil {
		t.Error("Expected unparseable value to fail")
	}
}

package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"obsidianlist/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2026, 1, 15, 15, 30, 0, 0, time.UTC)
	d := response.Date(tm)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}

	if string(b) != `"2026-01-15"` {
		t.Errorf("unexpected Date JSON: %s", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2026, 1, 15, 15, 30, 45, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if string(b) != `"2026-01-15 15:30:45"` {
		t.Errorf("unexpected DateTime JSON: %s", b)
	}
}

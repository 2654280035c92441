package mcp

import (
	"testing"
	"time"
)

// TestDefaultDateRange verifies date range defaults (last 30 days) and parsing.
func TestDefaultDateRange(t *testing.T) {
	// Both empty → defaults to last 30 days ending today
	start, end, err := defaultDateRange("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := time.Parse("2006-01-02", start)
	e, _ := time.Parse("2006-01-02", end)
	if diff := e.Sub(s); diff != 30*24*time.Hour {
		t.Errorf("default range = %v, want 30 days", diff)
	}

	// Explicit dates pass through
	start, end, err = defaultDateRange("2026-01-01", "2026-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start != "2026-01-01" || end != "2026-01-31" {
		t.Errorf("range = %s..%s, want 2026-01-01..2026-01-31", start, end)
	}

	// Invalid
	if _, _, err = defaultDateRange("not-a-date", ""); err == nil {
		t.Error("expected error for invalid start date")
	}
	if _, _, err = defaultDateRange("", "31/01/2026"); err == nil {
		t.Error("expected error for invalid end date")
	}
}

package parser_test

import (
	"testing"
	"time"

	"github.com/aldawsari/shopdesk/internal/parser"
)

func TestParseRange(t *testing.T) {
	// A Monday, mid-afternoon.
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.Local)

	tests := []struct {
		input    string
		wantFrom time.Time
		wantTo   time.Time
	}{
		{"today",
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local),
			time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local)},
		{"", // empty defaults to today
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local),
			time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local)},
		{"yesterday",
			time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
			time.Date(2026, 8, 30, 23, 59, 59, 0, time.Local)},
		{"week",
			time.Date(2026, 8, 25, 0, 0, 0, 0, time.Local),
			time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local)},
		{"month",
			time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local),
			time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local)},
		{"3 days",
			time.Date(2026, 8, 29, 0, 0, 0, 0, time.Local),
			time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local)},
		{"15/08/2026",
			time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local),
			time.Date(2026, 8, 15, 23, 59, 59, 0, time.Local)},
		{"01/08/2026..15/08/2026",
			time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local),
			time.Date(2026, 8, 15, 23, 59, 59, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			from, to, err := parser.ParseRange(tt.input, now)
			if err != nil {
				t.Fatalf("ParseRange(%q): %v", tt.input, err)
			}
			if !from.Equal(tt.wantFrom) {
				t.Errorf("from = %v, want %v", from, tt.wantFrom)
			}
			if !to.Equal(tt.wantTo) {
				t.Errorf("to = %v, want %v", to, tt.wantTo)
			}
		})
	}
}

func TestParseRangeRejectsGarbage(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.Local)

	bad := []string{
		"someday",
		"32/01/2026",
		"15/13/2026",
		"29/02/2026", // not a leap year
		"0 days",
		"15/08/2026..01/08/2026", // end before start
	}
	for _, input := range bad {
		if _, _, err := parser.ParseRange(input, now); err == nil {
			t.Errorf("ParseRange(%q): expected an error", input)
		}
	}
}

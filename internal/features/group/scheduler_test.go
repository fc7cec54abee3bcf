package group

import (
	"testing"
	"time"
)

func TestNextStatus(t *testing.T) {
	now := time.Date(2025, 3, 18, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		current string
		start   string
		end     string
		want    string
		wantOK  bool
	}{
		{"upcoming stays upcoming", StatusUpcoming, "2025-04-01", "2025-04-08", "", false},
		{"upcoming becomes active", StatusUpcoming, "2025-03-15", "2025-03-22", StatusActive, true},
		{"active becomes completed", StatusActive, "2025-03-01", "2025-03-08", StatusCompleted, true},
		{"active on last day stays active", StatusActive, "2025-03-15", "2025-03-18", "", false},
		{"cancelled never transitions", StatusCancelled, "2025-03-15", "2025-03-22", "", false},
		{"completed rolls back if dates move", StatusCompleted, "2025-03-15", "2025-03-22", StatusActive, true},
		{"bad start date", StatusUpcoming, "not-a-date", "2025-03-22", "", false},
		{"bad end date", StatusUpcoming, "2025-03-15", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nextStatus(tt.current, tt.start, tt.end, now)
			if ok != tt.wantOK {
				t.Fatalf("nextStatus() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("nextStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

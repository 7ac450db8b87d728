package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2024-03-01 09:00:00", "2024-03-01 23:00:00", 0},
		{"adjacent days", "2024-03-01 23:59:59", "2024-03-02 00:00:01", 1},
		{"one week", "2024-03-01 12:00:00", "2024-03-08 08:00:00", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := time.Parse(TimestampLayout, tt.start)
			end, _ := time.Parse(TimestampLayout, tt.end)
			if got := DaysBetween(start, end); got != tt.want {
				t.Errorf("DaysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	ts, _ := time.Parse(TimestampLayout, "2024-01-31 10:15:00")
	got := EndOfDay(ts)
	if got.Format(TimestampLayout) != "2024-01-31 23:59:59" {
		t.Errorf("EndOfDay = %s", got.Format(TimestampLayout))
	}
}

func TestHumanNowLayout(t *testing.T) {
	if _, err := time.Parse(TimestampLayout, HumanNow()); err != nil {
		t.Errorf("HumanNow does not round-trip: %v", err)
	}
}

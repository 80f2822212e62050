package game

import (
	"testing"
	"time"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00.0"},
		{50 * time.Millisecond, "00:00.0"},
		{990 * time.Millisecond, "00:00.9"},
		{time.Second, "00:01.0"},
		{12340 * time.Millisecond, "00:12.3"},
		{59900 * time.Millisecond, "00:59.9"},
		{time.Minute, "01:00.0"},
		{61500 * time.Millisecond, "01:01.5"},
		{10 * time.Minute, "10:00.0"},
		{3599900 * time.Millisecond, "59:59.9"},
	}

	for _, tc := range tests {
		if got := FormatElapsed(tc.d); got != tc.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestFormatElapsedTruncatesTenths(t *testing.T) {
	// 0.99s shows as 0.9, never rounded up to 1.0
	if got := FormatElapsed(990 * time.Millisecond); got != "00:00.9" {
		t.Errorf("FormatElapsed(990ms) = %q, want %q", got, "00:00.9")
	}
	if got := FormatElapsed(999 * time.Millisecond); got != "00:00.9" {
		t.Errorf("FormatElapsed(999ms) = %q, want %q", got, "00:00.9")
	}
}

func TestFormatElapsedMinutesDoNotWrap(t *testing.T) {
	// An hour shows as 60 minutes; the clock has no hour field
	if got := FormatElapsed(time.Hour); got != "60:00.0" {
		t.Errorf("FormatElapsed(1h) = %q, want %q", got, "60:00.0")
	}

	d := 5999*time.Second + 900*time.Millisecond
	if got := FormatElapsed(d); got != "99:59.9" {
		t.Errorf("FormatElapsed(5999.9s) = %q, want %q", got, "99:59.9")
	}
}

func TestFormatElapsedNegative(t *testing.T) {
	if got := FormatElapsed(-5 * time.Second); got != "00:00.0" {
		t.Errorf("FormatElapsed(-5s) = %q, want %q", got, "00:00.0")
	}
}

package game

import (
	"fmt"
	"time"
)

// FormatElapsed renders a duration as MM:SS.T for the run clock. Tenths
// are truncated, not rounded, and minutes keep counting past 59 instead
// of rolling into hours. Negative durations render as zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	tenths := int64(d / (time.Second / 10))
	minutes := tenths / 600
	seconds := (tenths / 10) % 60

	return fmt.Sprintf("%02d:%02d.%d", minutes, seconds, tenths%10)
}

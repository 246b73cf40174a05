package rainbow

import (
	"fmt"
	"time"
)

// CountLabel renders the item-count line with its three pluralization cases.
func CountLabel(n int) string {
	switch {
	case n <= 0:
		return "There are no rainbows"
	case n == 1:
		return "There is one rainbow"
	}
	return fmt.Sprintf("There are %d rainbows", n)
}

// DurationLabel renders a wall-clock delta rounded to whole milliseconds.
// The reported value is never negative.
func DurationLabel(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Round(time.Millisecond).Milliseconds()
	return fmt.Sprintf("Drawing took %d milliseconds", ms)
}

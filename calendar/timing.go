package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatTiming renders a duration with the unit fitting its magnitude:
// hours above 1.5 h, minutes above 1.5 min, microseconds up to 100 μs,
// milliseconds up to 100 ms, seconds otherwise.
func FormatTiming(d time.Duration) string {
	seconds := d.Seconds()
	switch {
	case seconds >= 1.5*3600:
		return fmt.Sprintf("%.2f h", seconds/3600)
	case seconds >= 1.5*60:
		return fmt.Sprintf("%.2f min", seconds/60)
	case seconds <= 1e-4:
		return fmt.Sprintf("%.2f μs", seconds*1e6)
	case seconds <= 1e-1:
		return fmt.Sprintf("%.2f ms", seconds*1e3)
	default:
		return fmt.Sprintf("%.2f s", seconds)
	}
}

// ParseTiming converts a formatted timing cell back into a duration.
// The Blank placeholder parses as zero.
func ParseTiming(cell string) (time.Duration, error) {
	if cell == Blank {
		return 0, nil
	}
	value, unit, found := strings.Cut(cell, " ")
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrBadTiming, cell)
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadTiming, cell)
	}

	var seconds float64
	switch unit {
	case "h":
		seconds = amount * 3600
	case "min":
		seconds = amount * 60
	case "s":
		seconds = amount
	case "ms":
		seconds = amount / 1e3
	case "μs":
		seconds = amount / 1e6
	default:
		return 0, fmt.Errorf("%w: unknown unit in %q", ErrBadTiming, cell)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

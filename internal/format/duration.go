package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// A zero duration renders as "< 1µs" so timer-resolution artifacts never read
// as an instantaneous run.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatSeconds renders a duration as fractional seconds for the summation
// report line ("Summed arrays in: X seconds."). Six decimal places keep
// sub-millisecond runs distinguishable without drowning the report in noise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: The duration expressed in seconds, e.g. "0.004213".
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}

// FormatThroughput renders an items-per-second rate for report and dashboard
// display, scaling to K/M units above the respective thresholds.
//
// Parameters:
//   - items: The number of elements processed.
//   - d: The elapsed duration (zero yields "n/a").
//
// Returns:
//   - string: A human-readable rate such as "12.4M items/s".
func FormatThroughput(items int, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	rate := float64(items) / d.Seconds()
	switch {
	case rate >= 1e6:
		return fmt.Sprintf("%.1fM items/s", rate/1e6)
	case rate >= 1e3:
		return fmt.Sprintf("%.1fK items/s", rate/1e3)
	default:
		return fmt.Sprintf("%.0f items/s", rate)
	}
}

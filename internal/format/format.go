// Package format provides display and timecode formatting helpers.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	secondsPerHour   = decimal.NewFromInt(3600)
	secondsPerMinute = decimal.NewFromInt(60)
	milliFactor      = decimal.NewFromInt(1000)
)

// Timestamp converts a number of seconds to "HH:MM:SS" and
// "HH:MM:SS.mmm" strings. Equivalent to TimestampSep with a dot
// separator, which is what VTT and CSV exports use.
func Timestamp(seconds float64) (string, string) {
	return TimestampSep(seconds, ".")
}

// TimestampSep converts a number of seconds to "HH:MM:SS" and
// "HH:MM:SS<sep>mmm" strings, where sep is typically "." or ",".
//
// The arithmetic runs on exact decimals so that values like 0.1+0.2
// render without binary floating point drift. Milliseconds are
// truncated, never rounded. Hours are zero-padded to two digits and
// widen naturally past 99 hours.
func TimestampSep(seconds float64, sep string) (string, string) {
	t := decimal.NewFromFloat(seconds)

	hours := t.Div(secondsPerHour).Floor()
	remainder := t.Mod(secondsPerHour)
	minutes := remainder.Div(secondsPerMinute).Floor()
	secs := remainder.Mod(secondsPerMinute)
	whole := secs.Floor()
	millis := secs.Sub(whole).Mul(milliFactor).Floor()

	hms := fmt.Sprintf("%02d:%02d:%02d",
		hours.IntPart(), minutes.IntPart(), whole.IntPart())
	return hms, fmt.Sprintf("%s%s%03d", hms, sep, millis.IntPart())
}

// Duration formats a duration as HH:MM:SS or MM:SS.
func Duration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Size formats a size in bytes for human display.
// Uses MB for sizes >= 1MB, KB otherwise.
func Size(bytes int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	if bytes >= mb {
		return fmt.Sprintf("%d MB", bytes/mb)
	}
	if bytes >= kb {
		return fmt.Sprintf("%d KB", bytes/kb)
	}
	return fmt.Sprintf("%d bytes", bytes)
}

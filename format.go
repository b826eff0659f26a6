package listprops

import (
	"strconv"
	"strings"
	"time"
)

// NullText is the display string of an absent value.
const NullText = "(null)"

// ArraySeparator joins the items of an array value.
const ArraySeparator = "; "

// timestampLayout renders seven fractional digits, always.
const timestampLayout = "2006-01-02T15:04:05.0000000"

// FormatValue converts a raw property value into its display string.
//
// Rules, in order: absent values render as "(null)"; arrays join their
// items with "; "; timestamps render round-trippably, with local-zone
// timestamps stripped of their zone; UInt64 values of DurationKey render
// as a duration of 100ns ticks; everything else uses its default form.
func FormatValue(v Value, key Key) string {
	if arr, ok := v.(Array); ok {
		items := make([]string, len(arr))
		for i, item := range arr {
			items[i] = formatScalar(item)
		}
		return strings.Join(items, ArraySeparator)
	}

	if ticks, ok := v.(UInt64); ok && key == DurationKey {
		return FormatDuration(int64(ticks))
	}

	return formatScalar(v)
}

// formatScalar applies every rule that does not depend on the key.
func formatScalar(v Value) string {
	switch v := v.(type) {
	case nil, Null:
		return NullText
	case Array:
		return FormatValue(v, NullKey)
	case Timestamp:
		return FormatTimestamp(v)
	case Text:
		return string(v)
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case UInt64:
		return strconv.FormatUint(uint64(v), 10)
	case Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case Bool:
		return strconv.FormatBool(bool(v))
	default:
		return NullText
	}
}

// FormatTimestamp renders ts as "2006-01-02T15:04:05.0000000" plus a zone
// designator: "Z" for UTC, "±hh:mm" for other zoned values, nothing for
// unspecified ones. Local timestamps are treated as unspecified so the
// machine's offset never appears in the output.
func FormatTimestamp(ts Timestamp) string {
	switch ts.Kind {
	case TimeUTC:
		return ts.Time.UTC().Format(timestampLayout + "Z")
	case TimeUnspecified, TimeLocal:
		return ts.Time.Format(timestampLayout)
	default:
		return ts.Time.Format(timestampLayout + "Z07:00")
	}
}

// FormatTime renders a UTC time in the timestamp format.
func FormatTime(t time.Time) string {
	return FormatTimestamp(Timestamp{Time: t, Kind: TimeUTC})
}

const (
	ticksPerSecond = 10_000_000
	ticksPerMinute = 60 * ticksPerSecond
	ticksPerHour   = 60 * ticksPerMinute
	ticksPerDay    = 24 * ticksPerHour
)

// FormatDuration renders a count of 100ns ticks as "[-][d.]hh:mm:ss[.fffffff]".
// The day count is omitted when zero, the fraction when it is zero.
func FormatDuration(ticks int64) string {
	var b strings.Builder

	// Work on the magnitude as unsigned so the minimum int64 does not overflow.
	mag := uint64(ticks)
	if ticks < 0 {
		b.WriteByte('-')
		mag = -mag
	}

	days := mag / ticksPerDay
	hours := mag % ticksPerDay / ticksPerHour
	minutes := mag % ticksPerHour / ticksPerMinute
	seconds := mag % ticksPerMinute / ticksPerSecond
	fraction := mag % ticksPerSecond

	if days > 0 {
		b.WriteString(strconv.FormatUint(days, 10))
		b.WriteByte('.')
	}
	writePadded(&b, hours, 2)
	b.WriteByte(':')
	writePadded(&b, minutes, 2)
	b.WriteByte(':')
	writePadded(&b, seconds, 2)
	if fraction > 0 {
		b.WriteByte('.')
		writePadded(&b, fraction, 7)
	}

	return b.String()
}

func writePadded(b *strings.Builder, n uint64, width int) {
	s := strconv.FormatUint(n, 10)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

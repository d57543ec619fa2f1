package subrip

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

const (
	msPerSecond int64 = 1000
	msPerMinute int64 = 60 * msPerSecond
	msPerHour   int64 = 60 * msPerMinute
)

// timePattern is the canonical SubRip timecode: two-digit hours, minutes, and
// seconds, three-digit milliseconds, separated from the seconds by a comma or
// a period.
const timePattern = `\d{2}:\d{2}:\d{2}[,.]\d{3}`

var timeRegexp = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})[,.](\d{3})$`)

// Time is a subtitle timecode with millisecond precision.
//
// A Time is an immutable value: arithmetic returns a new Time and never goes
// below zero. Two Times are equal (==) exactly when they hold the same total
// millisecond count.
type Time struct {
	ordinal int64 // total elapsed milliseconds, never negative
}

// NewTime builds a Time from display components. Components are summed and
// normalized, so out-of-range values carry over (90 seconds becomes 1 minute
// 30 seconds) and a negative total clamps to zero.
func NewTime(hours, minutes, seconds, milliseconds int) Time {
	return TimeFromMilliseconds(
		int64(hours)*msPerHour +
			int64(minutes)*msPerMinute +
			int64(seconds)*msPerSecond +
			int64(milliseconds),
	)
}

// TimeFromMilliseconds builds a Time from a total millisecond count, clamping
// negative input to zero.
func TimeFromMilliseconds(ms int64) Time {
	if ms < 0 {
		ms = 0
	}
	return Time{ordinal: ms}
}

// TimeFromDuration converts a time.Duration to a Time, truncating toward zero
// to whole milliseconds.
func TimeFromDuration(d time.Duration) Time {
	return TimeFromMilliseconds(d.Milliseconds())
}

// ParseTime parses the canonical SubRip timecode form HH:MM:SS,mmm. A period
// is accepted in place of the comma. Anything else fails with
// *InvalidTimeError.
func ParseTime(text string) (Time, error) {
	match := timeRegexp.FindStringSubmatch(text)
	if match == nil {
		return Time{}, &InvalidTimeError{Input: text}
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	milliseconds, _ := strconv.Atoi(match[4])
	return NewTime(hours, minutes, seconds, milliseconds), nil
}

// Hours returns the hour component. Hours are not bounded above.
func (t Time) Hours() int {
	return int(t.ordinal / msPerHour)
}

// Minutes returns the minute component in [0,59].
func (t Time) Minutes() int {
	return int(t.ordinal % msPerHour / msPerMinute)
}

// Seconds returns the second component in [0,59].
func (t Time) Seconds() int {
	return int(t.ordinal % msPerMinute / msPerSecond)
}

// Milliseconds returns the millisecond component in [0,999].
func (t Time) Milliseconds() int {
	return int(t.ordinal % msPerSecond)
}

// Ordinal returns the total elapsed milliseconds.
func (t Time) Ordinal() int64 {
	return t.ordinal
}

// Duration returns the Time as a time.Duration.
func (t Time) Duration() time.Duration {
	return time.Duration(t.ordinal) * time.Millisecond
}

// String renders the canonical form HH:MM:SS,mmm. The separator is always a
// comma, even when the Time was parsed from the period variant.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d", t.Hours(), t.Minutes(), t.Seconds(), t.Milliseconds())
}

// Add returns the Time moved by d, truncated to whole milliseconds and
// clamped at zero.
func (t Time) Add(d time.Duration) Time {
	return TimeFromMilliseconds(t.ordinal + d.Milliseconds())
}

// Shift describes a retiming: a playback-rate ratio applied first, then a
// fixed offset built from the four component fields. The zero value is the
// identity transform; a Ratio of zero is treated as one so leaving it unset
// means no scaling.
type Shift struct {
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
	Ratio        float64
}

func (s Shift) offset() int64 {
	return int64(s.Hours)*msPerHour +
		int64(s.Minutes)*msPerMinute +
		int64(s.Seconds)*msPerSecond +
		int64(s.Milliseconds)
}

func (s Shift) ratio() float64 {
	if s.Ratio == 0 {
		return 1
	}
	return s.Ratio
}

// Shift returns the Time rescaled and offset by s: the ordinal is multiplied
// by the ratio, rounded to the nearest millisecond, moved by the offset, and
// clamped at zero.
func (t Time) Shift(by Shift) Time {
	scaled := int64(math.Round(float64(t.ordinal) * by.ratio()))
	return TimeFromMilliseconds(scaled + by.offset())
}

// Compare orders Times by their millisecond ordinal, returning -1, 0, or 1.
func (t Time) Compare(u Time) int {
	switch {
	case t.ordinal < u.ordinal:
		return -1
	case t.ordinal > u.ordinal:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is strictly earlier than u.
func (t Time) Before(u Time) bool {
	return t.ordinal < u.ordinal
}

// After reports whether t is strictly later than u.
func (t Time) After(u Time) bool {
	return t.ordinal > u.ordinal
}

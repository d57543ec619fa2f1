package subrip

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// itemRegexp matches one subtitle block: an index line holding only decimal
// digits, a timecode line, and a greedy text body running to the end of the
// block. Whitespace-separated annotation tokens of letters, digits, and
// colons (coordinate hints such as X1:167) may trail the end timecode; they
// are accepted and dropped, and do not survive re-serialization.
var itemRegexp = regexp.MustCompile(
	`^(\d+)\n(` + timePattern + `)\s-->\s(` + timePattern + `)[ \t:a-zA-Z0-9]*\n(?s:(.*))$`,
)

// Item is one subtitle entry: a cosmetic index, the time window the text is
// shown for, and the text itself (possibly spanning several lines).
//
// The index is not an identity: duplicates and out-of-order numbering are
// legal and preserved. No relation between Start and End is enforced; an End
// before its Start is kept as-is.
type Item struct {
	Index int
	Start Time
	End   Time
	Text  string
}

// ParseItem parses a single blank-line-delimited subtitle block. Carriage
// returns are discarded before matching and one trailing newline is
// tolerated, so a formatted Item parses back to an equal value. Any block
// that does not match the index/timecode/text structure fails with
// *InvalidItemError.
func ParseItem(block string) (*Item, error) {
	source := strings.ReplaceAll(block, "\r", "")
	source = strings.TrimSuffix(source, "\n")
	match := itemRegexp.FindStringSubmatch(source)
	if match == nil {
		return nil, &InvalidItemError{Block: block}
	}
	index, err := strconv.Atoi(match[1])
	if err != nil {
		// Digits only, so this is an index too large for int.
		return nil, &InvalidItemError{Block: block}
	}
	// The captures are constrained to the timecode pattern, so these cannot fail.
	start, _ := ParseTime(match[2])
	end, _ := ParseTime(match[3])
	return &Item{Index: index, Start: start, End: end, Text: match[4]}, nil
}

// String renders the block in canonical form: index line, timecode line with
// comma-separated milliseconds, text, and a single trailing newline.
func (i *Item) String() string {
	return fmt.Sprintf("%d\n%s --> %s\n%s\n", i.Index, i.Start, i.End, i.Text)
}

// Shift retimes the item by forwarding the same transform to its Start and
// End.
func (i *Item) Shift(by Shift) {
	i.Start = i.Start.Shift(by)
	i.End = i.End.Shift(by)
}

// Duration returns End minus Start. It is negative when the item ends before
// it starts.
func (i *Item) Duration() time.Duration {
	return i.End.Duration() - i.Start.Duration()
}

// Compare orders items by Start, then by End.
func (i *Item) Compare(other *Item) int {
	if c := i.Start.Compare(other.Start); c != 0 {
		return c
	}
	return i.End.Compare(other.End)
}

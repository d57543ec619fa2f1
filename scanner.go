package subrip

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// splitUniversalLines is a bufio.SplitFunc that terminates lines on "\n",
// "\r\n", or a lone "\r". A "\r" at the edge of the buffer requests more
// input so a following "\n" is not split into a spurious empty line.
func splitUniversalLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Scanner streams subtitle blocks out of decoded text one at a time, without
// holding the whole document. Blocks are runs of non-blank lines delimited by
// empty or whitespace-only lines; a final unterminated block is flushed at
// EOF. Each Scan yields exactly one block, well-formed or not, so callers
// decide per block what a parse failure means.
//
//	sc := subrip.NewScanner(r)
//	for sc.Scan() {
//		item, err := sc.Item()
//		...
//	}
//	if err := sc.Err(); err != nil { ... }
type Scanner struct {
	lines *bufio.Scanner
	item  *Item
	err   error
	block int
	done  bool
}

// NewScanner returns a Scanner reading decoded text from r. Byte-level
// decoding and BOM handling are the caller's concern.
func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lines.Split(splitUniversalLines)
	return &Scanner{lines: lines, block: -1}
}

// Scan advances to the next block. It returns false at end of input or on a
// reader failure, which Err reports. A partial block interrupted by a reader
// failure is discarded.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	var buffered []string
	for s.lines.Scan() {
		line := s.lines.Text()
		if strings.TrimSpace(line) != "" {
			buffered = append(buffered, line)
			continue
		}
		if len(buffered) == 0 {
			continue
		}
		s.take(buffered)
		return true
	}
	s.done = true
	if s.lines.Err() != nil || len(buffered) == 0 {
		return false
	}
	s.take(buffered)
	return true
}

func (s *Scanner) take(lines []string) {
	s.block++
	s.item, s.err = ParseItem(strings.Join(lines, "\n"))
}

// Item returns the current block parsed as an Item, or the parse failure for
// that block. Valid until the next call to Scan.
func (s *Scanner) Item() (*Item, error) {
	return s.item, s.err
}

// Block returns the zero-based ordinal of the current block.
func (s *Scanner) Block() int {
	return s.block
}

// Err returns the first reader failure encountered, if any. Parse failures
// are reported per block by Item, never here.
func (s *Scanner) Err() error {
	return s.lines.Err()
}

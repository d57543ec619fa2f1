package subrip

import "fmt"

// InvalidTimeError reports text that does not match the HH:MM:SS,mmm timecode
// pattern.
type InvalidTimeError struct {
	Input string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid timecode %q", e.Input)
}

// InvalidItemError reports a block that does not match the three-part
// index/timecode/text structure of a subtitle entry.
type InvalidItemError struct {
	Block string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid subtitle block %q", truncateForError(e.Block))
}

// BlockError annotates a parse failure with the source it came from and the
// zero-based index of the offending block. It is returned by reads running
// under ErrorRaise.
type BlockError struct {
	// Path is the source locator when known, empty otherwise.
	Path string
	// Block is the zero-based ordinal of the block that failed to parse.
	Block int
	Err   error
}

func (e *BlockError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("block %d: %v", e.Block, e.Err)
	}
	return fmt.Sprintf("%s: block %d: %v", e.Path, e.Block, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

// EncodingError reports an unusable character encoding: either a name that
// cannot be resolved or input bytes that cannot be decoded under it.
type EncodingError struct {
	// Name is the encoding the operation attempted to use.
	Name string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding %s: %v", e.Name, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// truncateForError keeps offending-block quotes in error strings readable.
func truncateForError(block string) string {
	const max = 80
	if len(block) <= max {
		return block
	}
	return block[:max] + "..."
}

package subrip

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"

	"subrip/internal/logging"
)

// File is an ordered collection of subtitle items plus the stream metadata
// needed to write them back out.
//
// Order is caller-controlled and significant: reads append in stream order,
// Write never re-sorts, and only Sort and CleanIndexes rearrange. Duplicate
// and out-of-order indexes are preserved. The zero value is an empty
// aggregate that writes UTF-8 with the platform terminator.
//
// A File is not safe for concurrent use.
type File struct {
	// Path is where Save writes when given no destination. It also serves
	// as the source locator in read diagnostics.
	Path string
	// Encoding names the charset used at write time. Empty means UTF-8.
	Encoding string
	// EOL is the line terminator used at write time. Empty means the
	// platform default.
	EOL string

	items []*Item
}

// New builds a File over the given items.
func New(items ...*Item) *File {
	return &File{items: append([]*Item(nil), items...)}
}

// Len reports the number of items.
func (f *File) Len() int { return len(f.items) }

// Items returns the items in collection order. The slice is a copy; the
// items themselves are shared with the File.
func (f *File) Items() []*Item {
	out := make([]*Item, len(f.items))
	copy(out, f.items)
	return out
}

// Append adds items at the end of the collection.
func (f *File) Append(items ...*Item) {
	f.items = append(f.items, items...)
}

// Sort stable-sorts the collection by (Start, End). Indexes are untouched.
func (f *File) Sort() {
	sort.SliceStable(f.items, func(i, j int) bool {
		return f.items[i].Compare(f.items[j]) < 0
	})
}

// Read parses decoded subtitle text from r and appends the items in stream
// order. Malformed blocks follow the WithErrorHandling choice: skipped,
// skipped with one diagnostic each on the WithLogger logger, or aborting
// with a *BlockError. An aborted or failed read appends nothing.
func (f *File) Read(r io.Reader, opts ...Option) error {
	o := applyOptions(opts)
	logger := o.logger
	if logger == nil {
		logger = logging.NewNop()
	}

	var batch []*Item
	sc := NewScanner(r)
	for sc.Scan() {
		item, err := sc.Item()
		if err == nil {
			batch = append(batch, item)
			continue
		}
		switch o.onError {
		case ErrorRaise:
			return &BlockError{Path: f.Path, Block: sc.Block(), Err: err}
		case ErrorLog:
			attrs := make([]logging.Attr, 0, 3)
			if f.Path != "" {
				attrs = append(attrs, logging.String("path", f.Path))
			}
			attrs = append(attrs, logging.Int("block", sc.Block()), logging.Error(err))
			logger.Error("skipping malformed subtitle block", logging.Args(attrs...)...)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read subtitle stream: %w", err)
	}
	f.items = append(f.items, batch...)
	return nil
}

// Open reads the subtitle file at path. Without a WithEncoding option the
// charset comes from a byte-order mark, defaulting to UTF-8; a leading BOM
// character is stripped after decoding. The line terminator is detected from
// the stream unless WithEOL overrides it. The returned File carries the
// resolved metadata, so a plain Save writes the file back the way it came.
func Open(path string, opts ...Option) (*File, error) {
	o := applyOptions(opts)

	handle, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open subtitle file: %w", err)
	}
	defer handle.Close()

	data, err := io.ReadAll(handle)
	if err != nil {
		return nil, fmt.Errorf("read subtitle file: %w", err)
	}

	name := o.encoding
	if name == "" {
		name = sniffEncoding(data[:min(len(data), maxBOMLen)])
	}
	cs, err := lookupCharset(name)
	if err != nil {
		return nil, err
	}
	text, err := cs.decode(data)
	if err != nil {
		return nil, err
	}
	if cs.unicodeFamily() {
		text = stripLeadingBOM(text)
	}

	eol := o.eol
	if eol == "" {
		eol = detectEOL(text)
	}

	file := &File{Path: path, Encoding: cs.name, EOL: eol}
	if err := file.Read(strings.NewReader(text), opts...); err != nil {
		return nil, err
	}
	return file, nil
}

// FromString builds a File from in-memory subtitle text. The text is taken
// as already-decoded content: no byte-order mark stripping and no terminator
// detection. Metadata comes from the WithEncoding and WithEOL options.
func FromString(text string, opts ...Option) (*File, error) {
	o := applyOptions(opts)
	file := &File{Encoding: o.encoding, EOL: o.eol}
	if err := file.Read(strings.NewReader(text), opts...); err != nil {
		return nil, err
	}
	return file, nil
}

// Write serializes the collection to w in current order, each block followed
// by a blank separator line. Every embedded newline is substituted with the
// target terminator before encoding. WithEncoding and WithEOL override the
// stored metadata for this write only.
func (f *File) Write(w io.Writer, opts ...Option) error {
	o := applyOptions(opts)

	name := o.encoding
	if name == "" {
		name = f.Encoding
	}
	if name == "" {
		name = DefaultEncoding
	}
	cs, err := lookupCharset(name)
	if err != nil {
		return err
	}

	eol := o.eol
	if eol == "" {
		eol = f.EOL
	}
	if eol == "" {
		eol = platformEOL()
	}

	for _, item := range f.items {
		rendered := item.String()
		if eol != "\n" {
			rendered = strings.ReplaceAll(rendered, "\n", eol)
		}
		if !strings.HasSuffix(rendered, eol+eol) {
			rendered += eol
		}
		encoded, err := cs.encode(rendered)
		if err != nil {
			return err
		}
		if _, err := w.Write(encoded); err != nil {
			return fmt.Errorf("write subtitle stream: %w", err)
		}
	}
	return nil
}

// Save writes the collection to path, or to File.Path when path is empty.
func (f *File) Save(path string, opts ...Option) error {
	if path == "" {
		path = f.Path
	}
	if path == "" {
		return errors.New("save: no destination path")
	}
	handle, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create subtitle file: %w", err)
	}
	if err := f.Write(handle, opts...); err != nil {
		handle.Close()
		return err
	}
	if err := handle.Close(); err != nil {
		return fmt.Errorf("close subtitle file: %w", err)
	}
	return nil
}

// A Bound is one time-window constraint for Slice. All comparisons are
// strict.
type Bound func(*Item) bool

// StartsBefore keeps items whose start is strictly before t.
func StartsBefore(t Time) Bound {
	return func(i *Item) bool { return i.Start.Before(t) }
}

// StartsAfter keeps items whose start is strictly after t.
func StartsAfter(t Time) Bound {
	return func(i *Item) bool { return i.Start.After(t) }
}

// EndsBefore keeps items whose end is strictly before t.
func EndsBefore(t Time) Bound {
	return func(i *Item) bool { return i.End.Before(t) }
}

// EndsAfter keeps items whose end is strictly after t.
func EndsAfter(t Time) Bound {
	return func(i *Item) bool { return i.End.After(t) }
}

// Slice returns a new File holding the items that satisfy every bound, in
// their original relative order. The source is not mutated. Metadata is
// duplicated while the items are shared, so retiming a sliced item shows
// through both aggregates.
func (f *File) Slice(bounds ...Bound) *File {
	clone := &File{Path: f.Path, Encoding: f.Encoding, EOL: f.EOL}
	for _, item := range f.items {
		keep := true
		for _, bound := range bounds {
			if bound != nil && !bound(item) {
				keep = false
				break
			}
		}
		if keep {
			clone.items = append(clone.items, item)
		}
	}
	return clone
}

// Shift retimes every item in place. Collection order is untouched even when
// the transform reorders start times.
func (f *File) Shift(by Shift) {
	for _, item := range f.items {
		item.Shift(by)
	}
}

// CleanIndexes sorts the collection by (Start, End) and renumbers the items
// 1..n in sorted order.
func (f *File) CleanIndexes() {
	f.Sort()
	for i, item := range f.items {
		item.Index = i + 1
	}
}

// detectEOL reports the first line terminator observed in text, or "" when
// it has none.
func detectEOL(text string) string {
	i := strings.IndexAny(text, "\r\n")
	if i < 0 {
		return ""
	}
	switch {
	case text[i] == '\n':
		return "\n"
	case i+1 < len(text) && text[i+1] == '\n':
		return "\r\n"
	default:
		return "\r"
	}
}

func platformEOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

package subrip

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// DefaultEncoding is assumed when no encoding is specified and no byte-order
// mark is found.
const DefaultEncoding = "utf-8"

// bomSignatures lists the five sniffable byte-order marks, longest first so
// a UTF-32LE mark is not mistaken for the UTF-16LE prefix it contains.
var bomSignatures = []struct {
	mark []byte
	name string
}{
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, "utf-32-le"},
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, "utf-32-be"},
	{[]byte{0xFF, 0xFE}, "utf-16-le"},
	{[]byte{0xFE, 0xFF}, "utf-16-be"},
	{[]byte{0xEF, 0xBB, 0xBF}, "utf-8"},
}

const maxBOMLen = 4

// sniffEncoding names the encoding whose byte-order mark opens prefix, or
// DefaultEncoding when none matches.
func sniffEncoding(prefix []byte) string {
	for _, sig := range bomSignatures {
		if bytes.HasPrefix(prefix, sig.mark) {
			return sig.name
		}
	}
	return DefaultEncoding
}

// charset couples a resolved character encoding with the canonical name
// stored on a File. unit is the code unit width in bytes for the Unicode
// family, 0 for everything else.
type charset struct {
	name string
	enc  encoding.Encoding
	unit int
}

// lookupCharset resolves an encoding name. The Unicode family is matched by
// table because the IANA index cannot instantiate its UTF-16/32 entries;
// every other name goes through ianaindex and then htmlindex, which accepts
// looser labels such as "latin1".
func lookupCharset(name string) (charset, error) {
	canonical := normalizeEncodingName(name)
	switch canonical {
	case "utf-8":
		return charset{name: canonical, enc: unicode.UTF8, unit: 1}, nil
	case "utf-16-le":
		return charset{name: canonical, enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), unit: 2}, nil
	case "utf-16-be":
		return charset{name: canonical, enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), unit: 2}, nil
	case "utf-32-le":
		return charset{name: canonical, enc: utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), unit: 4}, nil
	case "utf-32-be":
		return charset{name: canonical, enc: utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), unit: 4}, nil
	}
	if enc, err := ianaindex.IANA.Encoding(canonical); err == nil && enc != nil {
		return charset{name: canonical, enc: enc}, nil
	}
	if enc, err := htmlindex.Get(canonical); err == nil {
		return charset{name: canonical, enc: enc}, nil
	}
	return charset{}, &EncodingError{Name: name, Err: errors.New("unknown encoding")}
}

// normalizeEncodingName lowers case, turns underscores into hyphens, and
// collapses the common compact spellings of the Unicode family ("utf8",
// "utf_16_le", "UTF-16LE") onto the canonical names.
func normalizeEncodingName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	switch strings.ReplaceAll(normalized, "-", "") {
	case "utf8":
		return "utf-8"
	case "utf16le":
		return "utf-16-le"
	case "utf16be":
		return "utf-16-be"
	case "utf32le":
		return "utf-32-le"
	case "utf32be":
		return "utf-32-be"
	}
	return normalized
}

// unicodeFamily reports whether the charset is one of the five canonical
// Unicode encodings, the only ones whose streams may open with an encoded
// byte-order mark.
func (c charset) unicodeFamily() bool { return c.unit > 0 }

// decode converts raw bytes to text. UTF-8 is validated up front because the
// x/text UTF-8 decoder never reports an error, and the wider Unicode
// encodings reject ragged input that does not divide into whole code units.
func (c charset) decode(data []byte) (string, error) {
	switch {
	case c.name == "utf-8":
		if !utf8.Valid(data) {
			return "", &EncodingError{Name: c.name, Err: errors.New("invalid byte sequence")}
		}
		return string(data), nil
	case c.unit > 1 && len(data)%c.unit != 0:
		return "", &EncodingError{Name: c.name, Err: fmt.Errorf("input length %d is not a multiple of %d", len(data), c.unit)}
	}
	decoded, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", &EncodingError{Name: c.name, Err: err}
	}
	return string(decoded), nil
}

// encode converts text to bytes under the charset. Runes the target cannot
// represent surface the encoder's error.
func (c charset) encode(text string) ([]byte, error) {
	if c.name == "utf-8" {
		return []byte(text), nil
	}
	encoded, err := c.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, &EncodingError{Name: c.name, Err: err}
	}
	return encoded, nil
}

// stripLeadingBOM removes one leading U+FEFF, the decoded form of any
// byte-order mark. Further occurrences are content and stay.
func stripLeadingBOM(text string) string {
	return strings.TrimPrefix(text, "\uFEFF")
}

package subrip

import (
	"errors"
	"testing"
)

func TestSniffEncoding(t *testing.T) {
	tests := []struct {
		name   string
		prefix []byte
		want   string
	}{
		{"utf-32-le", []byte{0xFF, 0xFE, 0x00, 0x00}, "utf-32-le"},
		{"utf-32-be", []byte{0x00, 0x00, 0xFE, 0xFF}, "utf-32-be"},
		{"utf-16-le", []byte{0xFF, 0xFE, 0x31, 0x00}, "utf-16-le"},
		{"utf-16-be", []byte{0xFE, 0xFF, 0x00, 0x31}, "utf-16-be"},
		{"utf-8", []byte{0xEF, 0xBB, 0xBF, 0x31}, "utf-8"},
		{"no mark", []byte{0x31, 0x0A, 0x30, 0x30}, "utf-8"},
		{"empty", nil, "utf-8"},
		{"truncated mark", []byte{0xFF}, "utf-8"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sniffEncoding(tc.prefix); got != tc.want {
				t.Errorf("sniffEncoding(% x) = %q, want %q", tc.prefix, got, tc.want)
			}
		})
	}
}

func TestNormalizeEncodingName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"UTF8", "utf-8"},
		{"utf-8", "utf-8"},
		{"Utf_16_Le", "utf-16-le"},
		{"UTF-16BE", "utf-16-be"},
		{"utf32le", "utf-32-le"},
		{"UTF-32-BE", "utf-32-be"},
		{"  Latin1  ", "latin1"},
		{"ISO_8859-1", "iso-8859-1"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := normalizeEncodingName(tc.input); got != tc.want {
				t.Errorf("normalizeEncodingName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestLookupCharset(t *testing.T) {
	valid := []struct {
		input string
		name  string
		unit  int
	}{
		{"utf-8", "utf-8", 1},
		{"UTF8", "utf-8", 1},
		{"utf-16-le", "utf-16-le", 2},
		{"utf_16_be", "utf-16-be", 2},
		{"utf-32-le", "utf-32-le", 4},
		{"UTF-32BE", "utf-32-be", 4},
		{"latin1", "latin1", 0},
		{"windows-1252", "windows-1252", 0},
		{"iso-8859-1", "iso-8859-1", 0},
	}

	for _, tc := range valid {
		t.Run(tc.input, func(t *testing.T) {
			cs, err := lookupCharset(tc.input)
			if err != nil {
				t.Fatalf("lookupCharset(%q) returned error: %v", tc.input, err)
			}
			if cs.name != tc.name {
				t.Errorf("name = %q, want %q", cs.name, tc.name)
			}
			if cs.unit != tc.unit {
				t.Errorf("unit = %d, want %d", cs.unit, tc.unit)
			}
			if cs.unicodeFamily() != (tc.unit > 0) {
				t.Errorf("unicodeFamily() = %v, want %v", cs.unicodeFamily(), tc.unit > 0)
			}
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		_, err := lookupCharset("klingon")
		if err == nil {
			t.Fatal("lookupCharset succeeded, want error")
		}
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Fatalf("error type = %T, want *EncodingError", err)
		}
		if encErr.Name != "klingon" {
			t.Errorf("EncodingError.Name = %q, want %q", encErr.Name, "klingon")
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("utf-8 passthrough", func(t *testing.T) {
		cs, err := lookupCharset("utf-8")
		if err != nil {
			t.Fatal(err)
		}
		got, err := cs.decode([]byte("héllo"))
		if err != nil {
			t.Fatalf("decode returned error: %v", err)
		}
		if got != "héllo" {
			t.Errorf("decode = %q, want %q", got, "héllo")
		}
	})

	t.Run("utf-8 rejects invalid bytes", func(t *testing.T) {
		cs, err := lookupCharset("utf-8")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := cs.decode([]byte{0x31, 0xFF, 0xFE}); err == nil {
			t.Fatal("decode succeeded on invalid UTF-8, want error")
		}
	})

	t.Run("utf-16 rejects ragged input", func(t *testing.T) {
		cs, err := lookupCharset("utf-16-le")
		if err != nil {
			t.Fatal(err)
		}
		_, err = cs.decode([]byte{0x31, 0x00, 0x32})
		if err == nil {
			t.Fatal("decode succeeded on odd-length UTF-16, want error")
		}
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Fatalf("error type = %T, want *EncodingError", err)
		}
	})

	t.Run("utf-16-le decodes", func(t *testing.T) {
		cs, err := lookupCharset("utf-16-le")
		if err != nil {
			t.Fatal(err)
		}
		got, err := cs.decode([]byte{0x48, 0x00, 0x69, 0x00})
		if err != nil {
			t.Fatalf("decode returned error: %v", err)
		}
		if got != "Hi" {
			t.Errorf("decode = %q, want %q", got, "Hi")
		}
	})

	t.Run("latin1 maps high bytes", func(t *testing.T) {
		cs, err := lookupCharset("latin1")
		if err != nil {
			t.Fatal(err)
		}
		got, err := cs.decode([]byte{0x63, 0x61, 0x66, 0xE9})
		if err != nil {
			t.Fatalf("decode returned error: %v", err)
		}
		if got != "café" {
			t.Errorf("decode = %q, want %q", got, "café")
		}
	})
}

func TestEncode(t *testing.T) {
	t.Run("latin1", func(t *testing.T) {
		cs, err := lookupCharset("latin1")
		if err != nil {
			t.Fatal(err)
		}
		got, err := cs.encode("café")
		if err != nil {
			t.Fatalf("encode returned error: %v", err)
		}
		want := []byte{0x63, 0x61, 0x66, 0xE9}
		if string(got) != string(want) {
			t.Errorf("encode = % x, want % x", got, want)
		}
	})

	t.Run("unrepresentable rune fails", func(t *testing.T) {
		cs, err := lookupCharset("windows-1252")
		if err != nil {
			t.Fatal(err)
		}
		_, err = cs.encode("Ω")
		if err == nil {
			t.Fatal("encode succeeded on an unrepresentable rune, want error")
		}
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Fatalf("error type = %T, want *EncodingError", err)
		}
	})

	t.Run("utf-16-be", func(t *testing.T) {
		cs, err := lookupCharset("utf-16-be")
		if err != nil {
			t.Fatal(err)
		}
		got, err := cs.encode("Hi")
		if err != nil {
			t.Fatalf("encode returned error: %v", err)
		}
		want := []byte{0x00, 0x48, 0x00, 0x69}
		if string(got) != string(want) {
			t.Errorf("encode = % x, want % x", got, want)
		}
	})
}

func TestStripLeadingBOM(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading mark", "\uFEFFabc", "abc"},
		{"no mark", "abc", "abc"},
		{"interior mark stays", "a\uFEFFbc", "a\uFEFFbc"},
		{"only the first mark", "\uFEFF\uFEFFabc", "\uFEFFabc"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripLeadingBOM(tc.input); got != tc.want {
				t.Errorf("stripLeadingBOM(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

package subrip

import (
	"fmt"
	"log/slog"
)

// ErrorHandling selects what a read does with a block that fails to parse.
// Well-formed blocks are never affected by the choice.
type ErrorHandling int

const (
	// ErrorPass drops malformed blocks silently. The default.
	ErrorPass ErrorHandling = iota
	// ErrorLog drops malformed blocks and reports each one on the
	// configured logger.
	ErrorLog
	// ErrorRaise aborts on the first malformed block; the read keeps
	// nothing.
	ErrorRaise
)

func (h ErrorHandling) String() string {
	switch h {
	case ErrorPass:
		return "pass"
	case ErrorLog:
		return "log"
	case ErrorRaise:
		return "raise"
	default:
		return fmt.Sprintf("ErrorHandling(%d)", int(h))
	}
}

// Option adjusts how a File reads or writes its stream. Options that do not
// apply to an operation are ignored by it.
type Option func(*options)

type options struct {
	encoding string
	eol      string
	onError  ErrorHandling
	logger   *slog.Logger
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithEncoding names the character encoding to use, bypassing BOM sniffing
// on reads and the stored File.Encoding on writes. Names are matched
// case-insensitively; both IANA names and common aliases are accepted.
func WithEncoding(name string) Option {
	return func(o *options) { o.encoding = name }
}

// WithEOL sets the line terminator for writes, bypassing the stored
// File.EOL. On Open it overrides terminator detection.
func WithEOL(eol string) Option {
	return func(o *options) { o.eol = eol }
}

// WithErrorHandling selects the malformed-block policy for reads.
func WithErrorHandling(h ErrorHandling) Option {
	return func(o *options) { o.onError = h }
}

// WithLogger supplies the logger ErrorLog reads report on. Without one (or
// with nil) those reports are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

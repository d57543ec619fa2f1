// Package subrip reads, edits, and writes SubRip (.srt) subtitle files.
//
// A File is an ordered collection of Items, each pairing an index and a text
// body with Start/End Times carrying millisecond precision. Files can be
// opened from disk with byte-order-mark based encoding detection, built from
// strings, retimed with fixed offsets or playback-rate ratios, filtered by
// time window, renumbered, and serialized back out under a configurable
// character encoding and newline convention.
//
// Malformed blocks are skipped, logged, or turned into errors according to
// the ErrorHandling selected by the caller, so a single damaged cue never
// has to poison a whole file unless strictness is wanted.
package subrip

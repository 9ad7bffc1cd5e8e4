// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for the text reader.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters in order.
//
// Notes:
//   - Header policy: legacy files are read positionally, and the first two lines
//     lose their first five characters unchecked. We validate the
//     "rows=" / "cols=" prefixes by default; WithPositionalHeader restores the
//     positional behavior for legacy files.
//   - Bounds policy: Get never fails and out-of-extent coordinates read as 0.
//     WithBoundsCheck tightens ingestion only, rejecting tuples whose
//     coordinates fall outside the declared rows×cols extent.
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictHeader validates the "rows=" and "cols=" prefixes.
	DefaultStrictHeader = true

	// DefaultBoundsCheck leaves out-of-extent tuples unchecked, as the
	// legacy format does.
	DefaultBoundsCheck = false

	// DefaultMaxLineBytes caps a single input line (bufio.Scanner buffer).
	DefaultMaxLineBytes = 64 * 1024
)

const (
	rowsPrefix = "rows="
	colsPrefix = "cols="

	panicMaxLineInvalid = "sparse: WithMaxLineBytes: n must be > 0"
)

// Option mutates reader options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective reader configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	strictHeader bool // DefaultStrictHeader
	boundsCheck  bool // DefaultBoundsCheck
	maxLineBytes int  // DefaultMaxLineBytes
}

// WithStrictHeader requires the header lines to start with "rows=" and
// "cols=". This is the default.
func WithStrictHeader() Option {
	return func(o *Options) { o.strictHeader = true }
}

// WithPositionalHeader reads the header positionally for legacy files: the first
// five characters of lines one and two are discarded unchecked and the rest
// must be an integer.
func WithPositionalHeader() Option {
	return func(o *Options) { o.strictHeader = false }
}

// WithBoundsCheck rejects tuples whose row or column lies outside the
// declared extent. The error matches both ErrOutOfRange and ErrFormat.
func WithBoundsCheck() Option {
	return func(o *Options) { o.boundsCheck = true }
}

// WithMaxLineBytes sets the longest accepted input line.
// Panics if n <= 0.
func WithMaxLineBytes(n int) Option {
	if n <= 0 {
		panic(panicMaxLineInvalid)
	}

	return func(o *Options) { o.maxLineBytes = n }
}

// NewOptions resolves a set of options against the defaults.
// Exposed so callers (config loaders, tests) can inspect the effective policy.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// StrictHeader reports whether header prefixes are validated.
func (o Options) StrictHeader() bool { return o.strictHeader }

// BoundsCheck reports whether parsed coordinates are checked against the extent.
func (o Options) BoundsCheck() bool { return o.boundsCheck }

// MaxLineBytes reports the longest accepted input line.
func (o Options) MaxLineBytes() int { return o.maxLineBytes }

// gatherOptions applies user setters over the defaults in order;
// last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		strictHeader: DefaultStrictHeader,
		boundsCheck:  DefaultBoundsCheck,
		maxLineBytes: DefaultMaxLineBytes,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

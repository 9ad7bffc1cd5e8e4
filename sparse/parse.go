// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Read the line-oriented text format into a Matrix.
//   - Fail the whole read on the first malformed line; never return a
//     partially filled matrix.
//
// Format:
//   - line 1 "rows=<int>", line 2 "cols=<int>" (positional, prefixes
//     validated unless WithPositionalHeader);
//   - then one "(row, col, value)" tuple per non-blank line.

package sparse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	opParse     = "Parse"
	opReadFile  = "ReadFile"
	tupleArity  = 3
	scanInitBuf = 4096
)

// Parse reads a matrix in text format from r.
// Stage 1 (Header): read rows and cols from the first two lines.
// Stage 2 (Body): parse every non-blank line as a (row, col, value) tuple and
// store it through Set, so zero values are dropped and later duplicates win.
// Stage 3 (Finalize): return the matrix, or nil and the first error.
//
// Errors:
//   - ErrFormat for a missing/invalid header or a malformed tuple;
//   - ErrOutOfRange (also matching ErrFormat) under WithBoundsCheck;
//   - ErrNotFound when r fails mid-read.
//
// Complexity: O(L) for L input lines.
func Parse(r io.Reader, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(scanInitBuf, o.maxLineBytes)), o.maxLineBytes)

	rows, err := readHeader(sc, 1, rowsPrefix, o.strictHeader)
	if err != nil {
		return nil, err
	}
	cols, err := readHeader(sc, 2, colsPrefix, o.strictHeader)
	if err != nil {
		return nil, err
	}

	m := newMatrix(rows, cols, 0)
	for line := 3; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row, col, value, perr := parseTuple(text)
		if perr != nil {
			return nil, lineErrorf(opParse, line, ErrFormat, perr.Error())
		}
		if o.boundsCheck && (row < 0 || row >= rows || col < 0 || col >= cols) {
			return nil, lineErrorf(opParse, line, fmt.Errorf("%w: %w", ErrFormat, ErrOutOfRange),
				fmt.Sprintf("(%d, %d) outside %dx%d", row, col, rows, cols))
		}
		m.Set(row, col, value)
	}
	if err = sc.Err(); err != nil {
		return nil, scanErr(err)
	}

	return m, nil
}

// ReadFile opens path, parses it and closes it on every exit path.
// An unopenable path yields ErrNotFound; the underlying os error is kept in
// the chain so errors.Is(err, fs.ErrNotExist) also works.
func ReadFile(path string, opts ...Option) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w: %w", opReadFile, path, ErrNotFound, err)
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w", opReadFile, path, err)
	}

	return m, nil
}

// UnmarshalText implements encoding.TextUnmarshaler with default options.
// On error m is left untouched.
func (m *Matrix) UnmarshalText(text []byte) error {
	if m == nil {
		return sparseErrorf("UnmarshalText", ErrNilMatrix)
	}
	parsed, err := Parse(bytes.NewReader(text))
	if err != nil {
		return err
	}
	*m = *parsed

	return nil
}

// readHeader consumes one header line and returns its non-negative integer.
func readHeader(sc *bufio.Scanner, line int, prefix string, strict bool) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, scanErr(err)
		}
		return 0, lineErrorf(opParse, line, ErrFormat, "missing "+prefix+" header")
	}
	raw := sc.Text()

	var rest string
	switch {
	case strict:
		t := strings.TrimSpace(raw)
		if !strings.HasPrefix(t, prefix) {
			return 0, lineErrorf(opParse, line, ErrFormat, fmt.Sprintf("expected %q prefix", prefix))
		}
		rest = t[len(prefix):]
	case len(raw) >= len(prefix):
		rest = raw[len(prefix):]
	default:
		return 0, lineErrorf(opParse, line, ErrFormat, "header line too short")
	}

	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, lineErrorf(opParse, line, ErrFormat, fmt.Sprintf("dimension %q is not an integer", rest))
	}
	if n < 0 {
		return 0, lineErrorf(opParse, line, ErrFormat, fmt.Sprintf("negative dimension %d", n))
	}

	return n, nil
}

// parseTuple parses "(row, col, value)". Whitespace around parts is allowed,
// an optional sign is allowed; floats, other brackets and any arity other
// than three are rejected.
func parseTuple(s string) (row, col, value int, err error) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return 0, 0, 0, fmt.Errorf("%q is not a parenthesised tuple", s)
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != tupleArity {
		return 0, 0, 0, fmt.Errorf("%q has %d components, want %d", s, len(parts), tupleArity)
	}

	var vals [tupleArity]int
	for i, p := range parts {
		p = strings.TrimSpace(p)
		v, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%q: component %q is not an integer", s, p)
		}
		vals[i] = v
	}

	return vals[0], vals[1], vals[2], nil
}

// scanErr classifies reader failures. An over-long line is a format problem;
// anything else means the source could not be read.
func scanErr(err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return sparseErrorf(opParse, fmt.Errorf("%w: %w", ErrFormat, err))
	}

	return sparseErrorf(opParse, fmt.Errorf("%w: %w", ErrNotFound, err))
}

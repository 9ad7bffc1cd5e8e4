// SPDX-License-Identifier: MIT

package sparse

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	opWriteTo   = "WriteTo"
	opWriteFile = "WriteFile"

	// defaultFileMode is used when WriteFile creates a new destination.
	defaultFileMode = 0o644
)

// WriteTo implements io.WriterTo. It emits the header lines followed by one
// "(row, col, value)" line per stored element, sorted by (row, col), so equal
// matrices always serialize to identical bytes.
// Complexity: O(nnz·log nnz).
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	if m == nil {
		return 0, sparseErrorf(opWriteTo, ErrNilMatrix)
	}

	// Build each line in a reusable scratch buffer to avoid fmt per entry.
	cw := &countingWriter{w: w}
	buf := make([]byte, 0, 64)

	buf = append(buf, rowsPrefix...)
	buf = strconv.AppendInt(buf, int64(m.rows), 10)
	buf = append(buf, '\n')
	buf = append(buf, colsPrefix...)
	buf = strconv.AppendInt(buf, int64(m.cols), 10)
	buf = append(buf, '\n')
	if _, err := cw.Write(buf); err != nil {
		return cw.n, sparseErrorf(opWriteTo, fmt.Errorf("%w: %w", ErrIO, err))
	}

	for _, e := range m.Entries() {
		buf = appendEntry(buf[:0], e)
		if _, err := cw.Write(buf); err != nil {
			return cw.n, sparseErrorf(opWriteTo, fmt.Errorf("%w: %w", ErrIO, err))
		}
	}

	return cw.n, nil
}

// MarshalText implements encoding.TextMarshaler; output equals WriteTo's.
func (m *Matrix) MarshalText() ([]byte, error) {
	var b bytes.Buffer
	if _, err := m.WriteTo(&b); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// WriteFile writes m to path, creating or truncating it. The file is closed
// on every exit path; a failed flush or close is reported as ErrIO.
func (m *Matrix) WriteFile(path string) (err error) {
	if m == nil {
		return sparseErrorf(opWriteFile, ErrNilMatrix)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, defaultFileMode)
	if err != nil {
		return fmt.Errorf("%s(%q): %w: %w", opWriteFile, path, ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s(%q): %w: %w", opWriteFile, path, ErrIO, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if _, err = m.WriteTo(bw); err != nil {
		return fmt.Errorf("%s(%q): %w", opWriteFile, path, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%s(%q): %w: %w", opWriteFile, path, ErrIO, err)
	}

	return nil
}

// appendEntry renders "(row, col, value)\n" into dst.
func appendEntry(dst []byte, e Entry) []byte {
	dst = append(dst, '(')
	dst = strconv.AppendInt(dst, int64(e.Row), 10)
	dst = append(dst, ", "...)
	dst = strconv.AppendInt(dst, int64(e.Col), 10)
	dst = append(dst, ", "...)
	dst = strconv.AppendInt(dst, int64(e.Value), 10)

	return append(dst, ')', '\n')
}

// countingWriter tracks bytes written for io.WriterTo's return value.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

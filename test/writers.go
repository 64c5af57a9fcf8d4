// This file is part of nesrom.
//
// nesrom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nesrom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nesrom.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
)

// CompareWriter is an implementation of the io.Writer interface. It should be
// used to capture output and to compare with predefined strings.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	tw.buffer = append(tw.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (tw *CompareWriter) Clear() {
	tw.buffer = tw.buffer[:0]
}

// Compare buffered output with predefined/example string.
func (tw *CompareWriter) Compare(s string) bool {
	return s == string(tw.buffer)
}

// Bytes returns the buffered output.
func (tw *CompareWriter) Bytes() []byte {
	return tw.buffer
}

func (tw *CompareWriter) String() string {
	return string(tw.buffer)
}

// CappedWriter is an implementation of io.Writer that stops buffering once a
// predefined size is reached. Writes beyond the cap are short but do not
// return an error.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (r *CappedWriter) String() string {
	return string(r.buffer)
}

// Len returns the number of bytes accepted so far.
func (r *CappedWriter) Len() int {
	return len(r.buffer)
}

// Reset empties the buffer.
func (r *CappedWriter) Reset() {
	r.buffer = r.buffer[:0]
}

// Write implements the io.Writer interface.
func (r *CappedWriter) Write(p []byte) (n int, err error) {
	remaining := r.size - len(r.buffer)
	if remaining == 0 {
		return 0, nil
	}

	if len(p) <= remaining {
		r.buffer = append(r.buffer, p...)
		return len(p), nil
	}

	r.buffer = append(r.buffer, p[:remaining]...)
	return remaining, nil
}

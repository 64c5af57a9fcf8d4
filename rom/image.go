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

package rom

import (
	"io"

	"github.com/jetsetilly/nesrom/curated"
)

// Layout of the image, measured from the end of the header.
const (
	// size of the zero filled body
	BodySize = 0x600

	// offset of the trailer. the body, payload and padding together fill
	// the image up to this point
	TrailerOffset = 0xfffc - 0x8000

	// the largest payload that will fit before the trailer
	MaxPayload = TrailerOffset - BodySize
)

// Trailer is written at the end of every image. It occupies the reset and
// IRQ vectors of the 6502.
var Trailer = [4]byte{0x00, 0x86, 0x00, 0x00}

// Sentinal error patterns.
const (
	PayloadTooLarge = "rom: payload too large (%d bytes, maximum %d)"
	IoFailure       = "rom: io failure: %s %s: %v"
)

// Image describes a ROM image. The zero filled regions are not stored.
type Image struct {
	header  []byte
	payload []byte
}

// NewImage is the preferred method of initialisation for the Image type. The
// payload must not be longer than MaxPayload.
func NewImage(header []byte, payload []byte) (*Image, error) {
	if len(payload) > MaxPayload {
		return nil, curated.Errorf(PayloadTooLarge, len(payload), MaxPayload)
	}
	return &Image{
		header:  header,
		payload: payload,
	}, nil
}

// Len returns the number of bytes that will be written by WriteTo().
func (img *Image) Len() int {
	return len(img.header) + TrailerOffset + len(Trailer)
}

// Header returns the header bytes of the image.
func (img *Image) Header() []byte {
	return img.header
}

// Payload returns the payload bytes of the image.
func (img *Image) Payload() []byte {
	return img.payload
}

// WriteTo writes the image to w in region order. Implements the io.WriterTo
// interface.
//
// A writer that accepts fewer bytes than it is given without returning an
// error causes WriteTo() to return io.ErrShortWrite.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	var n int64

	padding := TrailerOffset - BodySize - len(img.payload)
	if padding < 0 {
		return 0, curated.Errorf(PayloadTooLarge, len(img.payload), MaxPayload)
	}

	regions := [][]byte{
		img.header,
		make([]byte, BodySize),
		img.payload,
		make([]byte, padding),
		Trailer[:],
	}

	for _, r := range regions {
		m, err := w.Write(r)
		n += int64(m)
		if err != nil {
			return n, err
		}
		if m != len(r) {
			return n, io.ErrShortWrite
		}
	}

	return n, nil
}

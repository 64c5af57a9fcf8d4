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
	"bytes"
	"io"

	"github.com/marcinbor85/gohex"
)

// Origin is the CPU address of the first byte after the header. The image
// fills the address space from here to $FFFF.
const Origin = 0x8000

// Entry is the address in the reset vector of the trailer.
const Entry = Origin + BodySize

// Mapped returns the bytes of the image as they appear in the CPU address
// space, ie. everything except the header.
func (img *Image) Mapped() []byte {
	var b bytes.Buffer
	b.Grow(img.Len())

	// writes to bytes.Buffer do not fail
	_, _ = img.WriteTo(&b)

	return b.Bytes()[len(img.header):]
}

// WriteHex writes the mapped region of the image in Intel HEX format. The
// start address record is set to the reset vector.
func (img *Image) WriteHex(w io.Writer) error {
	mem := gohex.NewMemory()
	mem.SetStartAddress(Entry)
	if err := mem.AddBinary(Origin, img.Mapped()); err != nil {
		return err
	}
	return mem.DumpIntelHex(w, 16)
}

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

// Package rom creates the fixed-size ROM images used to bootstrap a 6502
// based NES emulator. An image is made of five regions, written in order:
//
//	header   fixed bytes identifying or bootstrapping the image
//	body     0x600 zero bytes
//	payload  caller supplied code. normally empty
//	padding  zero bytes up to offset 0x7ffc, measured from the start of the body
//	trailer  00 86 00 00
//
// The total length of an image is therefore always len(header) + 0x8000.
//
// With the iNES header the 0x8000 bytes following the header are exactly the
// two 16KB PRG-ROM banks declared in the header. The trailer is at the CPU
// addresses $fffc to $ffff and so the reset vector points to $8600, which is
// where the payload begins.
//
// Images are described by the Image type but the bytes are only ever
// produced while writing. WriteFile() writes to a temporary file in the
// destination directory and renames it into place, so a failed write never
// leaves a partial image behind.
//
// The mapped region of an image can also be exported in Intel HEX format with
// WriteHex() or WriteHexFile().
package rom

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

// Package processortests downloads the single step test vectors for the 6502
// as used in the NES (the nes6502 set of the ProcessorTests project). There is
// one JSON file per opcode, each containing thousands of test cases. Only the
// first few cases of each file are kept.
//
// Files are stored in a directory per high nibble of the opcode:
//
//	<dir>/0x0/0x00.json
//	<dir>/0x0/0x01.json
//	...
//	<dir>/0xF/0xFF.json
//
// The remote filename for an opcode is the opcode in lower-case hex,
// eg. "a9.json".
package processortests

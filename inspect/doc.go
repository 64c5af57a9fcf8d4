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

// Package inspect reads ROM images back from disk and reports on their
// layout. It is used to check the output of the rom package but will report
// on any iNES file.
//
// Files beginning with the iNES magic number are loaded with the cartridge
// loader from github.com/fogleman/nes. Any other file is assumed to be a raw
// image: a prelude of unknown length followed by the 0x8000 bytes that make
// up the body, payload, padding and trailer.
//
// Problems with the layout are not errors. They are listed in the Problems
// field of the Report. Errors are returned only when the file cannot be read
// or an iNES file cannot be loaded.
package inspect

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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different flags
// for each mode.
//
// Arguments are first given to the Modes type with NewArgs() and then parsed
// with Parse(). Flags for the current mode are added before calling Parse().
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("WRITE", "INSPECT")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default mode and is selected when the first
// non-flag argument is not a sub-mode name. Sub-mode comparisons are case
// insensitive and Mode() always returns the sub-mode in upper case.
//
// Once a mode has been selected, NewMode() prepares the Modes type for the
// flags and sub-modes of that mode. The next call to Parse() continues from
// where the previous call finished.
//
//	switch md.Mode() {
//	case "WRITE":
//		md.NewMode()
//		variant := md.AddString("variant", "INES", "rom variant")
//		p, err := md.Parse()
//		...
//		write(*variant, md.GetArg(0))
//	}
//
// Path() returns all the modes encountered so far, separated by a forward
// slash. It is useful in error messages.
package modalflag

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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern of a curated error is retained and can be used to identify the
// error later with the Is() function:
//
//	const NotFound = "not found: %s"
//
//	e := curated.Errorf(NotFound, "foo.nes")
//	if curated.Is(e, NotFound) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// chain of wrapped curated errors.
//
//	f := curated.Errorf("rom: %v", e)
//	if curated.Has(f, NotFound) {
//		fmt.Println("true")
//	}
//
// Patterns intended for use with Is() and Has() should be declared as exported
// string constants in the package that creates the error.
//
// The Error() implementation normalises the message so that duplicate adjacent
// parts are removed. Parts are separated by the sub-string ": ". This means a
// function can wrap an error with its own prefix without worrying if the
// callee has done the same:
//
//	rom: rom: file too large
//
// is reported as:
//
//	rom: file too large
//
// Curated errors also implement Unwrap(). The unwrapped error is the first
// value that is itself an error, so the errors package in the standard library
// can see through curated errors:
//
//	e := curated.Errorf("rom: %v", io.ErrShortWrite)
//	errors.Is(e, io.ErrShortWrite) // true
package curated

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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and should be
// used when the remainder of the test relies on the value being correct.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type. A bool is successful if it is true and an error is successful if it
// is nil. The untyped nil value is considered a success because that's how
// a nil error arrives when passed as an interface.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison with an expected string. The CappedWriter type stops
// accepting data once its capacity is reached and is useful for provoking
// short writes.
package test

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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/nesrom/test"
)

func TestExpect(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectApproximate(t, 10, 10.5, 0.1)
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	tw.Write([]byte("abc"))
	tw.Write([]byte("def"))
	test.ExpectSuccess(t, tw.Compare("abcdef"))
	test.ExpectEquality(t, len(tw.Bytes()), 6)
	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestCappedWriter(t *testing.T) {
	_, err := test.NewCappedWriter(0)
	test.ExpectFailure(t, err)

	c, err := test.NewCappedWriter(5)
	test.DemandSuccess(t, err)

	n, err := c.Write([]byte("abc"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)

	// write that exactly fills the buffer
	n, err = c.Write([]byte("de"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)

	// no space remaining
	n, err = c.Write([]byte("f"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, c.String(), "abcde")

	c.Reset()
	n, _ = c.Write([]byte("1234567"))
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, c.Len(), 5)
	test.ExpectEquality(t, c.String(), "12345")
}

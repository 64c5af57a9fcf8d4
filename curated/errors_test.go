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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/nesrom/curated"
	"github.com/jetsetilly/nesrom/test"
)

const testError = "test error: %s"
const wrapError = "wrap: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, wrapError))

	f := curated.Errorf(wrapError, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, wrapError))

	// plain errors are not curated
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Has(errors.New("plain"), testError))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(wrapError, io.ErrShortWrite)
	test.ExpectSuccess(t, errors.Is(e, io.ErrShortWrite))
	test.ExpectEquality(t, e.Error(), "wrap: short write")

	// errors nested in more than one layer of curated errors
	f := curated.Errorf(wrapError, curated.Errorf(testError, io.EOF))
	test.ExpectSuccess(t, errors.Is(f, io.EOF))

	g := curated.Errorf(testError, "no error value")
	test.ExpectEquality(t, errors.Unwrap(g), nil)
}

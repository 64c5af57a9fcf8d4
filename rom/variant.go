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
	"strings"

	"github.com/jetsetilly/nesrom/curated"
)

// Variant pairs a fixed header with the filename used when no filename is
// given.
type Variant struct {
	Name     string
	Filename string
	Header   []byte
}

// The two variants of image. INES is the default.
var (
	INES = Variant{
		Name:     "INES",
		Filename: "fake.nes",
		Header:   inesHeader,
	}

	Prelude = Variant{
		Name:     "PRELUDE",
		Filename: "6502wave.nes",
		Header:   preludeHeader,
	}
)

// Variants lists all variants. The first entry is the default.
var Variants = []Variant{INES, Prelude}

// UnknownVariant is the error pattern returned by LookupVariant().
const UnknownVariant = "rom: unknown variant (%s)"

// LookupVariant returns the variant with the given name. Comparison is case
// insensitive. The empty string returns the default variant.
func LookupVariant(name string) (Variant, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return Variants[0], nil
	}
	for _, v := range Variants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, curated.Errorf(UnknownVariant, name)
}

// NewImage returns an image using the variant's header.
func (v Variant) NewImage(payload []byte) (*Image, error) {
	return NewImage(v.Header, payload)
}

func (v Variant) String() string {
	return v.Name
}

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

package inspect

import (
	"bytes"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/fogleman/nes/nes"
	"github.com/jetsetilly/nesrom/curated"
	"github.com/jetsetilly/nesrom/logger"
	"github.com/jetsetilly/nesrom/rom"
)

// Error patterns.
const (
	ReadError = "inspect: %v"
	LoadError = "inspect: ines: %v"
)

// Container identifies how an image is packaged.
type Container string

// List of valid Container values.
const (
	Raw  Container = "raw"
	INES Container = "iNES"
)

// size of the iNES header and of the optional trainer that follows it
const (
	inesHeaderLen = 16
	trainerLen    = 512
)

var inesMagic = []byte{0x4e, 0x45, 0x53, 0x1a}

// the number of bytes following the header in an image created by the rom
// package
const regionLen = rom.TrailerOffset + len(rom.Trailer)

// Vectors are the interrupt vectors at the end of the 6502 address space.
type Vectors struct {
	NMI   uint16
	Reset uint16
	IRQ   uint16
}

func (v Vectors) String() string {
	return fmt.Sprintf("NMI=$%04x RESET=$%04x IRQ=$%04x", v.NMI, v.Reset, v.IRQ)
}

// Report is the result of inspecting a file.
type Report struct {
	Filename  string
	Size      int
	SHA1      string
	Container Container

	// name of the rom.Variant whose header matches the file. empty if no
	// variant matches
	Variant string

	HeaderLen int

	// iNES fields. zero for raw containers
	PRGSize   int
	CHRSize   int
	Mapper    int
	Mirroring string
	Battery   bool

	Vectors Vectors

	// number of bytes from the start of the payload to the last non-zero byte
	// before the trailer
	PayloadLen int

	Problems []string
}

// Valid returns true if no problems were found.
func (r *Report) Valid() bool {
	return len(r.Problems) == 0
}

func (r *Report) problem(format string, args ...interface{}) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

// File inspects the named file.
func File(filename string) (*Report, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(ReadError, err)
	}

	r := &Report{
		Filename: filename,
		Size:     len(data),
		SHA1:     fmt.Sprintf("%x", sha1.Sum(data)),
	}

	if bytes.HasPrefix(data, inesMagic) {
		err = r.ines(filename, data)
	} else {
		r.raw(data)
	}
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "inspect", "%s: %s, %d problems", filename, r.Container, len(r.Problems))

	return r, nil
}

func (r *Report) ines(filename string, data []byte) error {
	r.Container = INES

	cart, err := nes.LoadNESFile(filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	flags6 := data[6]

	r.HeaderLen = inesHeaderLen
	if flags6&0x04 == 0x04 {
		r.HeaderLen += trainerLen
	}

	r.PRGSize = len(cart.PRG)
	r.CHRSize = int(data[5]) * 0x2000
	r.Mapper = int(cart.Mapper)
	r.Battery = cart.Battery != 0

	switch {
	case flags6&0x08 == 0x08:
		r.Mirroring = "four-screen"
	case flags6&0x01 == 0x01:
		r.Mirroring = "vertical"
	default:
		r.Mirroring = "horizontal"
	}

	if bytes.Equal(data[:inesHeaderLen], rom.INES.Header) {
		r.Variant = rom.INES.Name
	}

	if r.PRGSize != regionLen {
		r.problem("PRG-ROM is %d bytes, expected %d", r.PRGSize, regionLen)
	}

	// the final bank is mapped to the top of the address space
	r.Vectors = readVectors(cart.PRG)

	r.layout(data)

	return nil
}

func (r *Report) raw(data []byte) {
	r.Container = Raw

	r.HeaderLen = len(data) - regionLen
	if r.HeaderLen < 0 {
		r.HeaderLen = 0
		r.problem("file is too short for an image (%d bytes)", len(data))
		return
	}

	if bytes.Equal(data[:r.HeaderLen], rom.Prelude.Header) {
		r.Variant = rom.Prelude.Name
	} else {
		r.problem("prelude of %d bytes is not recognised", r.HeaderLen)
	}

	r.Vectors = readVectors(data)

	r.layout(data)
}

// layout checks the regions that follow the header.
func (r *Report) layout(data []byte) {
	expected := r.HeaderLen + regionLen
	if r.Size != expected {
		r.problem("file is %d bytes, expected %d", r.Size, expected)
	}

	if len(data) < expected {
		return
	}

	body := data[r.HeaderLen : r.HeaderLen+rom.BodySize]
	if bytes.Count(body, []byte{0x00}) != len(body) {
		r.problem("body is not zero filled")
	}

	payload := data[r.HeaderLen+rom.BodySize : r.HeaderLen+rom.TrailerOffset]
	r.PayloadLen = len(bytes.TrimRight(payload, "\x00"))

	trailer := data[r.HeaderLen+rom.TrailerOffset : expected]
	if !bytes.Equal(trailer, rom.Trailer[:]) {
		r.problem("trailer is % 02x, expected % 02x", trailer, rom.Trailer[:])
	}
}

// vectors are the last six bytes of the data
func readVectors(data []byte) Vectors {
	if len(data) < 6 {
		return Vectors{}
	}
	v := data[len(data)-6:]
	return Vectors{
		NMI:   binary.LittleEndian.Uint16(v[0:]),
		Reset: binary.LittleEndian.Uint16(v[2:]),
		IRQ:   binary.LittleEndian.Uint16(v[4:]),
	}
}

// Write the report to io.Writer.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintf(w, "file: %s\n", r.Filename)
	fmt.Fprintf(w, "size: %d bytes\n", r.Size)
	fmt.Fprintf(w, "sha1: %s\n", r.SHA1)

	if r.Variant != "" {
		fmt.Fprintf(w, "container: %s (%s variant)\n", r.Container, r.Variant)
	} else {
		fmt.Fprintf(w, "container: %s\n", r.Container)
	}

	fmt.Fprintf(w, "header: %d bytes\n", r.HeaderLen)

	if r.Container == INES {
		fmt.Fprintf(w, "PRG-ROM: %d bytes\n", r.PRGSize)
		if r.CHRSize == 0 {
			fmt.Fprintln(w, "CHR-ROM: none (CHR-RAM)")
		} else {
			fmt.Fprintf(w, "CHR-ROM: %d bytes\n", r.CHRSize)
		}
		fmt.Fprintf(w, "mapper: %d\n", r.Mapper)
		fmt.Fprintf(w, "mirroring: %s\n", r.Mirroring)
		fmt.Fprintf(w, "battery: %v\n", r.Battery)
	}

	fmt.Fprintf(w, "vectors: %s\n", r.Vectors)
	fmt.Fprintf(w, "payload: %d bytes\n", r.PayloadLen)

	if r.Valid() {
		fmt.Fprintln(w, "problems: none")
		return
	}
	fmt.Fprintf(w, "problems: %d\n", len(r.Problems))
	for _, p := range r.Problems {
		fmt.Fprintf(w, "  %s\n", p)
	}
}

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

package rom_test

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marcinbor85/gohex"

	"github.com/jetsetilly/nesrom/rom"
	"github.com/jetsetilly/nesrom/test"
)

func TestMapped(t *testing.T) {
	for _, v := range rom.Variants {
		img, err := v.NewImage(nil)
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, bytes.Equal(img.Header(), v.Header), v)
		test.ExpectEquality(t, len(img.Payload()), 0, v)
		m := img.Mapped()
		test.ExpectEquality(t, len(m), 0x8000, v)
		test.ExpectSuccess(t, bytes.Equal(m, image(t, v, nil)[len(v.Header):]), v)
	}
}

func TestWriteHex(t *testing.T) {
	payload := []byte{0x4c, 0x00, 0x86}
	img, err := rom.Prelude.NewImage(payload)
	test.DemandSuccess(t, err)

	var b bytes.Buffer
	test.DemandSuccess(t, img.WriteHex(&b))

	// every line is a record
	s := bufio.NewScanner(&b)
	for s.Scan() {
		test.ExpectSuccess(t, strings.HasPrefix(s.Text(), ":"), s.Text())
	}

	var again bytes.Buffer
	test.DemandSuccess(t, img.WriteHex(&again))

	mem := gohex.NewMemory()
	test.DemandSuccess(t, mem.ParseIntelHex(&again))

	start, ok := mem.GetStartAddress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, start, uint32(rom.Entry))

	data := mem.ToBinary(rom.Origin, 0x8000, 0xff)
	test.ExpectSuccess(t, bytes.Equal(data, img.Mapped()))
	test.ExpectSuccess(t, bytes.Equal(data[rom.BodySize:rom.BodySize+len(img.Payload())], payload))
	test.ExpectEquality(t, data[0x7ffd], byte(0x86))
}

func TestWriteHexFile(t *testing.T) {
	img, err := rom.INES.NewImage(nil)
	test.DemandSuccess(t, err)

	pth := filepath.Join(t.TempDir(), "fake.hex")
	test.DemandSuccess(t, rom.WriteHexFile(pth, img))

	f, err := os.Open(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	mem := gohex.NewMemory()
	test.DemandSuccess(t, mem.ParseIntelHex(f))
	test.ExpectSuccess(t, bytes.Equal(mem.ToBinary(rom.Origin, 0x8000, 0xff), img.Mapped()))
}

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
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/nesrom/curated"
	"github.com/jetsetilly/nesrom/rom"
	"github.com/jetsetilly/nesrom/test"
)

func image(t *testing.T, v rom.Variant, payload []byte) []byte {
	t.Helper()

	img, err := v.NewImage(payload)
	test.DemandSuccess(t, err)

	var b bytes.Buffer
	n, err := img.WriteTo(&b)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, n, int64(img.Len()))

	return b.Bytes()
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0x00 {
			return false
		}
	}
	return true
}

func TestLayoutConstants(t *testing.T) {
	test.ExpectEquality(t, rom.BodySize, 0x600)
	test.ExpectEquality(t, rom.TrailerOffset, 0x7ffc)
	test.ExpectEquality(t, rom.MaxPayload, 0x79fc)
}

func TestINES(t *testing.T) {
	test.DemandEquality(t, len(rom.INES.Header), 16)

	d := image(t, rom.INES, nil)
	test.ExpectEquality(t, len(d), 16+0x7ffc+4)
	test.ExpectEquality(t, len(d), 32784)

	test.ExpectSuccess(t, bytes.Equal(d[:4], []byte{0x4e, 0x45, 0x53, 0x1a}))
	test.ExpectSuccess(t, bytes.Equal(d[:16], rom.INES.Header))
	test.ExpectSuccess(t, isZero(d[16:16+0x600]))
	test.ExpectSuccess(t, isZero(d[16:len(d)-4]))
	test.ExpectSuccess(t, bytes.Equal(d[len(d)-4:], rom.Trailer[:]))
}

func TestPrelude(t *testing.T) {
	test.DemandEquality(t, len(rom.Prelude.Header), 899)

	d := image(t, rom.Prelude, nil)
	test.ExpectEquality(t, len(d), 899+0x7ffc+4)
	test.ExpectEquality(t, len(d), 33667)

	// the prelude begins with the instructions LDX #$00; STX $20
	test.ExpectSuccess(t, bytes.Equal(d[:4], []byte{0xa2, 0x00, 0x86, 0x20}))
	test.ExpectSuccess(t, bytes.Equal(d[:899], rom.Prelude.Header))
	test.ExpectSuccess(t, isZero(d[899:899+0x600]))
	test.ExpectSuccess(t, bytes.Equal(d[len(d)-4:], []byte{0x00, 0x86, 0x00, 0x00}))
}

func TestPayload(t *testing.T) {
	payload := []byte{0xa9, 0x01, 0x8d, 0x00, 0x02}
	d := image(t, rom.INES, payload)

	// payload does not change the length of the image
	test.ExpectEquality(t, len(d), 32784)

	p := 16 + rom.BodySize
	test.ExpectSuccess(t, isZero(d[16:p]))
	test.ExpectSuccess(t, bytes.Equal(d[p:p+len(payload)], payload))
	test.ExpectSuccess(t, isZero(d[p+len(payload):len(d)-4]))
	test.ExpectSuccess(t, bytes.Equal(d[len(d)-4:], rom.Trailer[:]))
}

func TestMaxPayload(t *testing.T) {
	payload := bytes.Repeat([]byte{0xea}, rom.MaxPayload)
	d := image(t, rom.INES, payload)
	test.ExpectEquality(t, len(d), 32784)
	test.ExpectSuccess(t, bytes.Equal(d[16+rom.BodySize:len(d)-4], payload))

	_, err := rom.INES.NewImage(append(payload, 0xea))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, rom.PayloadTooLarge))
}

func TestShortWrite(t *testing.T) {
	img, err := rom.INES.NewImage(nil)
	test.DemandSuccess(t, err)

	w, err := test.NewCappedWriter(100)
	test.DemandSuccess(t, err)

	n, err := img.WriteTo(w)
	test.ExpectSuccess(t, errors.Is(err, io.ErrShortWrite))
	test.ExpectEquality(t, n, int64(100))
}

type failingWriter struct{}

var errFailingWriter = errors.New("failing writer")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errFailingWriter
}

func TestWriterError(t *testing.T) {
	img, err := rom.Prelude.NewImage(nil)
	test.DemandSuccess(t, err)

	n, err := img.WriteTo(failingWriter{})
	test.ExpectSuccess(t, errors.Is(err, errFailingWriter))
	test.ExpectEquality(t, n, int64(0))
}

func TestLookupVariant(t *testing.T) {
	v, err := rom.LookupVariant("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Name, rom.INES.Name)

	v, err = rom.LookupVariant("prelude")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Name, "PRELUDE")
	test.ExpectEquality(t, v.Filename, "6502wave.nes")

	v, err = rom.LookupVariant(" ines ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.String(), "INES")

	_, err = rom.LookupVariant("unif")
	test.ExpectSuccess(t, curated.Is(err, rom.UnknownVariant))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, rom.INES.Filename)

	img, err := rom.INES.NewImage(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, rom.WriteFile(fn, img))

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), img.Len())
	test.ExpectSuccess(t, bytes.Equal(d, image(t, rom.INES, nil)))

	// writing again produces an identical file
	test.DemandSuccess(t, rom.WriteFile(fn, img))
	e, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(d, e))

	// no temporary files left behind
	entries, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)
}

func TestWriteFileReplace(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "rom.nes")
	test.DemandSuccess(t, os.WriteFile(fn, bytes.Repeat([]byte{0xff}, 40000), 0644))
	test.DemandSuccess(t, os.Chmod(fn, 0644))

	img, err := rom.Prelude.NewImage(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, rom.WriteFile(fn, img))

	info, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(33667))
	test.ExpectEquality(t, info.Mode().Perm(), fs.FileMode(0644))
}

func TestWriteFileKeepsMode(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "rom.nes")
	test.DemandSuccess(t, os.WriteFile(fn, nil, 0600))
	test.DemandSuccess(t, os.Chmod(fn, 0640))

	img, err := rom.INES.NewImage(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, rom.WriteFile(fn, img))

	info, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Mode().Perm(), fs.FileMode(0640))
	test.ExpectEquality(t, info.Size(), int64(32784))
}

func TestWriteFileNewMode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "rom.nes")

	img, err := rom.INES.NewImage(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, rom.WriteFile(fn, img))

	// never more permissive than 0644. the umask may remove bits
	info, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Mode().Perm()&^0644, fs.FileMode(0))
	test.ExpectEquality(t, info.Mode().Perm()&0600, fs.FileMode(0600))
}

func TestWriteFileMissingDirectory(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing", "rom.nes")

	img, err := rom.INES.NewImage(nil)
	test.DemandSuccess(t, err)

	err = rom.WriteFile(fn, img)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, rom.IoFailure))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))

	_, err = os.Stat(fn)
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
}

func TestWriteFileOverDirectory(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "rom.nes")
	test.DemandSuccess(t, os.Mkdir(fn, 0755))

	img, err := rom.INES.NewImage(nil)
	test.DemandSuccess(t, err)

	err = rom.WriteFile(fn, img)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, rom.IoFailure))

	// the directory is untouched and the temporary file has been removed
	info, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	entries, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)
}

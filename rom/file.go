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
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jetsetilly/nesrom/curated"
	"github.com/jetsetilly/nesrom/logger"
)

// WriteFile writes the image to the named file. An existing file is replaced.
//
// The image is first written to a temporary file in the same directory as the
// named file, synced to stable storage and then renamed. If any step fails
// the temporary file is removed and the named file is left untouched. Errors
// use the IoFailure pattern and name the operation and the path.
func WriteFile(filename string, img *Image) error {
	return writeAtomic(filename, func(w io.Writer) error {
		_, err := img.WriteTo(w)
		return err
	})
}

// WriteHexFile writes the CPU mapped region of the image to the named file in
// Intel HEX format. The file is replaced in the same way as WriteFile().
func WriteHexFile(filename string, img *Image) error {
	return writeAtomic(filename, img.WriteHex)
}

func writeAtomic(filename string, write func(io.Writer) error) (rerr error) {
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, fmt.Sprintf(".%s.*", base))
	if err != nil {
		return curated.Errorf(IoFailure, "create", filename, err)
	}
	tmp := f.Name()

	// remove temporary file on any error. the file will have already been
	// closed in most cases but the additional Close() is harmless
	defer func() {
		if rerr != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	// digest of the data as it is written. for the log entry
	hash := sha1.New()
	cw := &countingWriter{w: io.MultiWriter(f, hash)}

	if err := write(cw); err != nil {
		return curated.Errorf(IoFailure, "write", filename, err)
	}

	if err := f.Sync(); err != nil {
		return curated.Errorf(IoFailure, "sync", filename, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(IoFailure, "close", filename, err)
	}

	// CreateTemp() creates files readable only by the owner. an existing file
	// keeps its permissions
	mode := newFileMode()
	if info, err := os.Stat(filename); err == nil && info.Mode().IsRegular() {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmp, mode); err != nil {
		return curated.Errorf(IoFailure, "chmod", filename, err)
	}

	if err := os.Rename(tmp, filename); err != nil {
		return curated.Errorf(IoFailure, "rename", filename, err)
	}

	logger.Logf(logger.Allow, "rom", "%s: %d bytes (sha1 %x)", filename, cw.n, hash.Sum(nil))

	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

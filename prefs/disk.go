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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/jetsetilly/nesrom/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the first line of every preferences
// file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in a preferences file.
const KeySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile    = "prefs: no prefs file: %v"
	InvalidPrefs   = "prefs: not a valid prefs file (%s)"
	PrefsFileError = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(PrefsFileError, "empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the path of the file used by the Disk.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, KeySep) || strings.TrimSpace(key) != key || key == "" {
		return curated.Errorf(PrefsFileError, fmt.Errorf("illegal key %q", key))
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(PrefsFileError, fmt.Errorf("key %q already added", key))
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their defaults. The file on disk is not
// changed until Save() is called.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(PrefsFileError, err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file that are not
// known to this Disk instance are preserved.
func (dsk *Disk) Save() (rerr error) {
	data, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}
	if data == nil {
		data = make(map[string]string)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0700); err != nil {
		return curated.Errorf(PrefsFileError, err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(PrefsFileError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(PrefsFileError, err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, data[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(PrefsFileError, err)
	}

	return nil
}

// Load preference values from disk. Returns an error with the NoPrefsFile
// pattern if the file or its folder does not exist. The preference values are
// unchanged in that case.
func (dsk *Disk) Load() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range data {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileError, fmt.Errorf("%s: %w", k, err))
			}
		}
	}

	return nil
}

// read the key/value pairs in the prefs file.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		// a missing folder, or something other than a folder where the
		// folder should be, means there is no prefs file
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, curated.Errorf(NoPrefsFile, err)
		}
		return nil, curated.Errorf(PrefsFileError, err)
	}
	defer f.Close()

	data := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// an empty file is valid but a file with content must start with the
	// boiler plate warning
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidPrefs, dsk.path)
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), KeySep, 2)

		// ignore lines that haven't been split successfully
		if len(spt) != 2 {
			continue
		}

		data[spt[0]] = spt[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(PrefsFileError, err)
	}

	return data, nil
}

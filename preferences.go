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

package main

import (
	"github.com/jetsetilly/nesrom/curated"
	"github.com/jetsetilly/nesrom/prefs"
	"github.com/jetsetilly/nesrom/resources"
	"github.com/jetsetilly/nesrom/rom"
)

type writePreferences struct {
	dsk     *prefs.Disk
	variant *prefs.String
}

// newWritePreferences always returns usable preferences. If the preferences
// file could not be read the error is returned alongside the default values.
// A missing preferences file is not an error.
func newWritePreferences() (*writePreferences, error) {
	wp := &writePreferences{
		variant: prefs.NewString(rom.Variants[0].Name),
	}

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return wp, curated.Errorf(prefs.PrefsFileError, err)
	}

	wp.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return wp, err
	}

	if err := wp.dsk.Add("write.variant", wp.variant); err != nil {
		return wp, err
	}

	if err := wp.dsk.Load(); err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			_ = wp.variant.Reset()
			return wp, err
		}
	}

	return wp, nil
}

// save the current variant as the default.
func (wp *writePreferences) save() error {
	if wp.dsk == nil {
		return curated.Errorf(prefs.PrefsFileError, "preferences are not available")
	}
	return wp.dsk.Save()
}

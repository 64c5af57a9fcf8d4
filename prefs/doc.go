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

// Package prefs facilitates the storage of preferential values in the nesrom
// system. Values are typed (Bool, String and Int) and are associated with a
// key on an instance of the Disk type.
//
//	var server prefs.String
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("scrape.url", &server)
//	err = dsk.Load()
//
// The file on disk begins with a warning line (WarningBoilerPlate) and then
// contains one key/value pair per line, separated by KeySep:
//
//	scrape.count :: 25
//	scrape.url :: https://example.com/
//
// More than one Disk instance can use the same file. Saving a Disk preserves
// entries in the file that the instance does not know about.
package prefs

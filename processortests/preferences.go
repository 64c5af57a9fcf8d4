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

package processortests

import (
	"github.com/jetsetilly/nesrom/curated"
	"github.com/jetsetilly/nesrom/prefs"
	"github.com/jetsetilly/nesrom/resources"
)

// Preferences for the scraper.
type Preferences struct {
	dsk *prefs.Disk

	URL   *prefs.String
	Count *prefs.Int
	Dir   *prefs.String
}

// NewPreferences loads the scraper preferences from the global preferences
// file. A missing file is not an error.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf(ScrapeError, err)
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{
		URL:   prefs.NewString(DefaultURL),
		Count: prefs.NewInt(DefaultCount),
		Dir:   prefs.NewString("opcodes"),
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf(ScrapeError, err)
	}

	if err := p.dsk.Add("scrape.url", p.URL); err != nil {
		return nil, curated.Errorf(ScrapeError, err)
	}
	if err := p.dsk.Add("scrape.count", p.Count); err != nil {
		return nil, curated.Errorf(ScrapeError, err)
	}
	if err := p.dsk.Add("scrape.dir", p.Dir); err != nil {
		return nil, curated.Errorf(ScrapeError, err)
	}

	if err := p.dsk.Load(); err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf(ScrapeError, err)
		}
	}

	return p, nil
}

// Save the current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Scraper returns a Scraper configured with the preference values.
func (p *Preferences) Scraper() *Scraper {
	return &Scraper{
		URL:   p.URL.String(),
		Count: p.Count.Get().(int),
		Dir:   p.Dir.String(),
	}
}

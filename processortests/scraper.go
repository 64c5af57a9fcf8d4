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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/nesrom/curated"
	"github.com/jetsetilly/nesrom/logger"
)

// DefaultURL is the location of the nes6502 test vectors.
const DefaultURL = "https://raw.githubusercontent.com/TomHarte/ProcessorTests/main/nes6502/v1/"

// DefaultCount is the number of test cases kept for each opcode.
const DefaultCount = 25

// Error patterns.
const (
	ScrapeError = "processortests: %v"
	BadResponse = "processortests: unexpected response from %s [%d]"
	BadJSON     = "processortests: %s: %v"
)

// Scraper downloads test vectors.
type Scraper struct {
	// the base URL. the filename of each opcode is appended to this
	URL string

	// the directory to store the files in
	Dir string

	// the number of test cases to keep for each opcode. a value of zero or
	// less keeps all cases
	Count int

	// progress is written to Output if it is not nil
	Output io.Writer

	// the client to use for requests. http.DefaultClient is used if Client is
	// nil
	Client *http.Client
}

// URLFor returns the remote location of the tests for an opcode.
func (s *Scraper) URLFor(opcode uint8) string {
	u := s.URL
	if !strings.HasSuffix(u, "/") {
		u = u + "/"
	}
	return fmt.Sprintf("%s%02x.json", u, opcode)
}

// Filename returns the local path for the tests of an opcode.
func Filename(dir string, opcode uint8) string {
	name := fmt.Sprintf("0x%02X.json", opcode)
	return filepath.Join(dir, name[:3], name)
}

// Scrape downloads the tests for every opcode. Returns the first error
// encountered. Opcodes that were completed before the error are left on disk.
//
// The context is checked before every request.
func (s *Scraper) Scrape(ctx context.Context) error {
	for op := 0; op <= 0xff; op++ {
		if err := ctx.Err(); err != nil {
			return curated.Errorf(ScrapeError, err)
		}
		if _, err := s.Opcode(ctx, uint8(op)); err != nil {
			return err
		}
	}
	return nil
}

// Opcode downloads the tests for a single opcode. Returns the number of test
// cases written.
func (s *Scraper) Opcode(ctx context.Context, opcode uint8) (int, error) {
	url := s.URLFor(opcode)
	pth := Filename(s.Dir, opcode)

	if s.Output != nil {
		fmt.Fprintf(s.Output, "%s -> %s\n", url, pth)
	}

	cases, err := s.get(ctx, url)
	if err != nil {
		return 0, err
	}

	if s.Count > 0 && len(cases) > s.Count {
		cases = cases[:s.Count]
	}

	data, err := json.MarshalIndent(cases, "", "    ")
	if err != nil {
		return 0, curated.Errorf(BadJSON, url, err)
	}

	if err := os.MkdirAll(filepath.Dir(pth), 0755); err != nil {
		return 0, curated.Errorf(ScrapeError, err)
	}

	if err := os.WriteFile(pth, data, 0644); err != nil {
		return 0, curated.Errorf(ScrapeError, err)
	}

	logger.Logf(logger.Allow, "processortests", "%s: %d cases", pth, len(cases))

	return len(cases), nil
}

// get the test cases at url. the individual cases are not decoded
func (s *Scraper) get(ctx context.Context, url string) ([]json.RawMessage, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, curated.Errorf(ScrapeError, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, curated.Errorf(ScrapeError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, curated.Errorf(BadResponse, url, resp.StatusCode)
	}

	var cases []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&cases); err != nil {
		return nil, curated.Errorf(BadJSON, url, err)
	}

	return cases, nil
}

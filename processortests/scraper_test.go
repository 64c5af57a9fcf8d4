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

package processortests_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/nesrom/curated"
	"github.com/jetsetilly/nesrom/processortests"
	"github.com/jetsetilly/nesrom/test"
)

// serves a JSON array of n objects for every opcode file. the opcode file
// named in missing returns 404
func newServer(t *testing.T, n int, missing string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/tests/")
		if name == missing {
			http.NotFound(w, r)
			return
		}
		cases := make([]map[string]any, n)
		for i := range cases {
			cases[i] = map[string]any{"name": fmt.Sprintf("%s %d", name, i)}
		}
		_ = json.NewEncoder(w).Encode(cases)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFilename(t *testing.T) {
	test.ExpectEquality(t, processortests.Filename("d", 0x0a), filepath.Join("d", "0x0", "0x0A.json"))
	test.ExpectEquality(t, processortests.Filename("d", 0xff), filepath.Join("d", "0xF", "0xFF.json"))
	test.ExpectEquality(t, processortests.Filename("d", 0x00), filepath.Join("d", "0x0", "0x00.json"))
}

func TestURLFor(t *testing.T) {
	s := processortests.Scraper{URL: "http://example.com/v1"}
	test.ExpectEquality(t, s.URLFor(0xa9), "http://example.com/v1/a9.json")
	s.URL = processortests.DefaultURL
	test.ExpectEquality(t, s.URLFor(0x0b), processortests.DefaultURL+"0b.json")
}

func TestOpcode(t *testing.T) {
	srv := newServer(t, 40, "")
	dir := t.TempDir()

	var progress test.CompareWriter
	s := processortests.Scraper{
		URL:    srv.URL + "/tests/",
		Dir:    dir,
		Count:  processortests.DefaultCount,
		Output: &progress,
		Client: srv.Client(),
	}

	n, err := s.Opcode(context.Background(), 0xa9)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, processortests.DefaultCount)

	pth := processortests.Filename(dir, 0xa9)
	test.ExpectEquality(t, progress.String(), fmt.Sprintf("%s/tests/a9.json -> %s\n", srv.URL, pth))

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)

	var cases []map[string]any
	test.DemandSuccess(t, json.Unmarshal(data, &cases))
	test.ExpectEquality(t, len(cases), processortests.DefaultCount)
	test.ExpectEquality(t, cases[0]["name"], any("a9.json 0"))

	// four space indentation with no trailing newline
	test.ExpectSuccess(t, strings.HasPrefix(string(data), "[\n    {\n        \"name\""))
	test.ExpectSuccess(t, strings.HasSuffix(string(data), "]"))
}

func TestFewerThanCount(t *testing.T) {
	srv := newServer(t, 3, "")
	s := processortests.Scraper{
		URL:    srv.URL + "/tests/",
		Dir:    t.TempDir(),
		Count:  processortests.DefaultCount,
		Client: srv.Client(),
	}
	n, err := s.Opcode(context.Background(), 0x00)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 3)
}

func TestBadResponse(t *testing.T) {
	srv := newServer(t, 1, "02.json")
	dir := t.TempDir()
	s := processortests.Scraper{
		URL:    srv.URL + "/tests/",
		Dir:    dir,
		Count:  1,
		Client: srv.Client(),
	}

	err := s.Scrape(context.Background())
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, processortests.BadResponse))

	// the opcodes before the failure are on disk. the failed one is not
	_, err = os.Stat(processortests.Filename(dir, 0x01))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(processortests.Filename(dir, 0x02))
	test.ExpectFailure(t, err)
}

func TestBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	s := processortests.Scraper{URL: srv.URL, Dir: t.TempDir(), Client: srv.Client()}
	_, err := s.Opcode(context.Background(), 0x10)
	test.ExpectSuccess(t, curated.Is(err, processortests.BadJSON))
}

func TestScrape(t *testing.T) {
	srv := newServer(t, 2, "")
	dir := t.TempDir()
	s := processortests.Scraper{
		URL:    srv.URL + "/tests/",
		Dir:    dir,
		Count:  1,
		Client: srv.Client(),
	}
	test.DemandSuccess(t, s.Scrape(context.Background()))

	groups, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(groups), 16)

	files, err := os.ReadDir(filepath.Join(dir, "0xC"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(files), 16)
	test.ExpectEquality(t, files[0].Name(), "0xC0.json")
}

func TestCancelled(t *testing.T) {
	srv := newServer(t, 1, "")
	dir := t.TempDir()
	s := processortests.Scraper{URL: srv.URL + "/tests/", Dir: dir, Client: srv.Client()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Scrape(ctx)
	test.ExpectSuccess(t, curated.Is(err, processortests.ScrapeError))

	entries, err := os.ReadDir(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 0)
}

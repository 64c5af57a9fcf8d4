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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/nesrom/curated"
	"github.com/jetsetilly/nesrom/inspect"
	"github.com/jetsetilly/nesrom/logger"
	"github.com/jetsetilly/nesrom/modalflag"
	"github.com/jetsetilly/nesrom/processortests"
	"github.com/jetsetilly/nesrom/rom"
	"github.com/jetsetilly/nesrom/statsview"
	"github.com/jetsetilly/nesrom/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("WRITE", "INSPECT", "SCRAPE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "WRITE":
		err = write(md)

	case "INSPECT":
		err = inspectFile(md)

	case "SCRAPE":
		err = scrape(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

func write(md *modalflag.Modes) error {
	md.NewMode()

	// unreadable preferences do not prevent the image being written
	wp, err := newWritePreferences()
	if err != nil {
		logger.Logf(logger.Allow, "nesrom", "using default variant: %v", err)
	}

	names := make([]string, 0, len(rom.Variants))
	for _, v := range rom.Variants {
		names = append(names, v.Name)
	}

	variant := md.AddString("variant", wp.variant.String(), fmt.Sprintf("header variant: %s", strings.Join(names, ", ")))
	payload := md.AddString("payload", "", "file to place after the zero body")
	hex := md.AddString("hex", "", "also write the CPU mapped region as an Intel HEX file")
	save := md.AddBool("save", false, "save the variant as the default")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp("the filename argument is optional. the default filename depends on the variant")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output, false)
		defer logger.SetEcho(nil, false)
	}

	v, err := rom.LookupVariant(*variant)
	if err != nil {
		return err
	}

	if *save {
		if err := wp.variant.Set(v.Name); err != nil {
			return err
		}
		if err := wp.save(); err != nil {
			return err
		}
	}

	filename := v.Filename
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var data []byte
	if *payload != "" {
		data, err = os.ReadFile(*payload)
		if err != nil {
			return curated.Errorf(rom.IoFailure, "read", *payload, err)
		}
	}

	img, err := v.NewImage(data)
	if err != nil {
		return err
	}

	if err := rom.WriteFile(filename, img); err != nil {
		return err
	}

	if *hex != "" {
		return rom.WriteHexFile(*hex, img)
	}

	return nil
}

func inspectFile(md *modalflag.Modes) error {
	md.NewMode()

	graph := md.AddString("memviz", "", "write report structure as a graphviz dot file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output, false)
		defer logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	r, err := inspect.File(md.GetArg(0))
	if err != nil {
		return err
	}

	r.Write(md.Output)

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			return err
		}
		memviz.Map(f, r)
		if err := f.Close(); err != nil {
			return err
		}
	}

	if !r.Valid() {
		return fmt.Errorf("%s: %d problems found", r.Filename, len(r.Problems))
	}

	return nil
}

func scrape(md *modalflag.Modes) error {
	md.NewMode()

	pref, err := processortests.NewPreferences()
	if err != nil {
		return err
	}

	url := md.AddString("url", pref.URL.String(), "location of the test vectors")
	count := md.AddInt("count", pref.Count.Get().(int), "number of test cases to keep for each opcode")
	save := md.AddBool("save", false, "save url, count and directory as the defaults")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp(fmt.Sprintf("the directory argument is optional. the default directory is %q", pref.Dir.String()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output, false)
		defer logger.SetEcho(nil, false)
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		if err := pref.Dir.Set(md.GetArg(0)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if err := pref.URL.Set(*url); err != nil {
		return err
	}
	if err := pref.Count.Set(*count); err != nil {
		return err
	}

	if *save {
		if err := pref.Save(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := pref.Scraper()
	s.Output = md.Output

	return s.Scrape(ctx)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}

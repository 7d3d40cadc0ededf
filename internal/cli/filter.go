package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/logsift/logsift/internal/filter"
	"github.com/logsift/logsift/internal/highlight"
	"github.com/logsift/logsift/internal/window"
	"go.uber.org/zap"
)

// FilterCmd prints the lines of a log file that match the enabled
// filters, with matched spans highlighted.
type FilterCmd struct {
	// First and Last are pointers so an explicit 0 is distinguishable
	// from the flag being absent; both demand a positive count.
	First      *int   `short:"f" placeholder:"NUM" help:"Print the first NUM lines."`
	Last       *int   `short:"l" placeholder:"NUM" help:"Print the last NUM lines."`
	Timestamps bool   `short:"t" help:"Print lines that contain a timestamp in HH:MM:SS format."`
	IPv4       bool   `short:"i" name:"ipv4" help:"Print lines that contain an IPv4 address, matching IPs are highlighted."`
	IPv6       bool   `short:"I" name:"ipv6" help:"Print lines that contain an IPv6 address, matching IPs are highlighted."`
	File       string `arg:"" optional:"" default:"-" help:"Log file to read; '-' or omitted reads standard input."`
}

// Run executes the filter command
func (c *FilterCmd) Run(globals *Globals) error {
	if c.First != nil && *c.First <= 0 {
		return outputError(globals, "BAD_WINDOW", "--first must be positive")
	}
	if c.Last != nil && *c.Last <= 0 {
		return outputError(globals, "BAD_WINDOW", "--last must be positive")
	}

	in, closeIn, err := c.openInput(globals)
	if err != nil {
		return outputError(globals, "FILE_NOT_FOUND", fmt.Sprintf("cannot open file: %s", err))
	}
	defer closeIn()

	lf := c.buildFilter(globals)

	read, kept := 0, 0

	// emit applies the active filter and prints the line when it
	// survives. An unmatched line is dropped, not passed through.
	emit := func(line string) error {
		if lf != nil {
			out, matched, err := lf.Apply(line)
			if err != nil {
				return err
			}
			if !matched {
				return nil
			}
			line = out
		}
		kept++
		fmt.Fprintln(globals.Stdout, line)
		return nil
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// The first window passes its lines straight through; the last
	// window buffers the lines that remain AFTER the first window took
	// its share, so "--first 3 --last 2" on ten lines yields lines
	// 1, 2, 3, 9 and 10.
	windowed := c.First != nil || c.Last != nil
	firstLeft := 0
	if c.First != nil {
		firstLeft = *c.First
	}

	var ring *window.Ring
	if c.Last != nil {
		ring = window.NewRing(*c.Last)
	}

	for scanner.Scan() {
		line := scanner.Text()
		read++

		if !windowed {
			if err := emit(line); err != nil {
				return outputError(globals, "PATTERN_ERROR", err.Error())
			}
			continue
		}

		if firstLeft > 0 {
			firstLeft--
			if err := emit(line); err != nil {
				return outputError(globals, "PATTERN_ERROR", err.Error())
			}
			continue
		}

		if ring == nil {
			// Only a first window is active and it is exhausted.
			break
		}
		ring.Push(line)
	}

	if err := scanner.Err(); err != nil {
		return outputError(globals, "READ_ERROR", fmt.Sprintf("error reading input: %s", err))
	}

	if ring != nil {
		for _, line := range ring.Values() {
			if err := emit(line); err != nil {
				return outputError(globals, "PATTERN_ERROR", err.Error())
			}
		}
	}

	globals.Log.Debug("filtering finished",
		zap.Int("read", read),
		zap.Int("kept", kept))

	return nil
}

// buildFilter composes the enabled filters into a single-pass composite,
// or returns nil when no filter flags are set (pass-through).
func (c *FilterCmd) buildFilter(globals *Globals) filter.Filter {
	var filters []*filter.RegexFilter
	var names []string

	if c.Timestamps {
		filters = append(filters, highlight.Timestamp())
		names = append(names, "timestamps")
	}
	if c.IPv4 {
		filters = append(filters, highlight.IPv4())
		names = append(names, "ipv4")
	}
	if c.IPv6 {
		filters = append(filters, highlight.IPv6())
		names = append(names, "ipv6")
	}

	if len(filters) == 0 {
		return nil
	}

	composite := filter.NewComposite(filters...)
	globals.Log.Debug("composite filter built",
		zap.Strings("filters", names),
		zap.String("pattern", composite.Pattern()))

	return composite
}

// openInput opens the FILE argument, or falls back to standard input for
// "-" or an empty argument.
func (c *FilterCmd) openInput(globals *Globals) (io.Reader, func(), error) {
	if c.File == "" || c.File == "-" {
		return globals.Stdin, func() {}, nil
	}

	f, err := os.Open(c.File)
	if err != nil {
		return nil, nil, err
	}
	closeIn := func() {
		if err := f.Close(); err != nil {
			globals.Log.Debug("failed to close input file", zap.Error(err))
		}
	}
	return f, closeIn, nil
}

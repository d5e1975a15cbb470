// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/pdiddy/yt-url/internal/search"
)

var (
	errColor  = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
)

// isTerminal reports whether w is a terminal. color.NoColor only reflects
// stdout, so stderr needs its own check.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printLine writes msg and a newline to w. msg is colored only when w is a
// terminal; the newline is always outside the colored span.
func printLine(w io.Writer, c *color.Color, msg string) {
	if isTerminal(w) {
		c.Fprint(w, msg)
	} else {
		io.WriteString(w, msg)
	}
	fmt.Fprintln(w)
}

// info writes a diagnostic line to w.
func info(w io.Writer, format string, a ...any) {
	printLine(w, infoColor, fmt.Sprintf(format, a...))
}

// report writes err to w in the form matching its kind.
func report(w io.Writer, err error) {
	var se *search.Error
	if !errors.As(err, &se) || se.Kind == search.KindUnexpected {
		printLine(w, errColor, "Unexpected error: "+err.Error())
		return
	}
	if se.Kind == search.KindCancelled {
		fmt.Fprintln(w)
		printLine(w, errColor, "Search cancelled by user")
		return
	}
	printLine(w, errColor, "Error: "+se.Error())
}

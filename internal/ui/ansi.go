package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	strike = "\033[9m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"

	// combining long stroke overlay, for struck text without escape codes
	overlay = '̶'
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// SetColorMode maps "always", "never" and "auto" onto SetColorForcing.
func SetColorMode(mode string) {
	switch strings.ToLower(mode) {
	case "always":
		SetColorForcing(true, false)
	case "never":
		SetColorForcing(false, true)
	default:
		SetColorForcing(false, false)
	}
}

func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func ColorEnabled() bool {
	if disableColor {
		return false
	}
	return forceColor || isTTY()
}

func C(color, s string) string {
	if color == "" || !ColorEnabled() {
		return s
	}
	return color + s + reset
}

// Strike renders s struck through. Without colour it overlays every rune
// with U+0336 so the marking survives plain text output.
func Strike(s string) string {
	if ColorEnabled() {
		return strike + s + reset
	}
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(r)
		b.WriteRune(overlay)
	}
	return b.String()
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, C(fgGreen, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(fgRed, symCross+" "+msg)) }

// Hint prints a muted follow-up line, usually after Fail.
func Hint(w io.Writer, msg string) { fmt.Fprintln(w, C(dim, "Hint: "+msg)) }

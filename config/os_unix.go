//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ExeSuffix is appended to names of produced programs.
const ExeSuffix = ""

// CleanFileName drops characters which cannot be part of a file name. Leading
// dots are removed too, so result never names hidden file. Empty result is
// replaced with fallback.
func CleanFileName(in, fallback string) string {
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if sym == 0 || sym == os.PathSeparator || sym == os.PathListSeparator {
			return -1
		}
		return sym
	}, in), ".")
	if len(strings.TrimSpace(out)) == 0 {
		return fallback
	}
	return out
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}

// Package debug has helpers producing human readable dumps of internal
// structures.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// defaultTextLimit is a number of runes of a text block kept in the dump,
// long code listings are cut.
const defaultTextLimit = 120

type TreeWriter struct {
	w     *strings.Builder
	limit int
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w:     &strings.Builder{},
		limit: defaultTextLimit,
	}
}

// WithTextLimit changes maximum number of runes of text blocks, 0 means no
// limit.
func (tw *TreeWriter) WithTextLimit(limit int) *TreeWriter {
	tw.limit = max(limit, 0)
	return tw
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value, tw.limit))
	tw.w.WriteByte('\n')
}

func (tw *TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func encodeText(raw string, limit int) string {
	if raw == "" {
		return raw
	}
	if limit > 0 {
		if runes := []rune(raw); len(runes) > limit {
			return strconv.Quote(string(runes[:limit])) + fmt.Sprintf("... (%d more)", len(runes)-limit)
		}
	}
	return strconv.Quote(raw)
}

package standalone

import (
	"embed"
	"fmt"
	"maps"
	"slices"
	"strings"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Fragments of generated program, in the order they are assembled.
const (
	tmplPrologue    = "prologue"
	tmplShell1      = "shell1"
	tmplResources   = "resources"
	tmplNoResources = "noresources"
	tmplShell2      = "shell2"
	tmplEpilogue    = "epilogue"
	tmplGoMod       = "gomod"
)

// tokens maps token names to replacement text. Token [[[name]]] in a
// template is replaced literally, nothing is escaped.
type tokens map[string]string

func placeholder(name string) string {
	return "[[[" + name + "]]]"
}

// expand loads named template and replaces all known tokens in a single
// pass, so replacement text is never scanned for tokens again.
func expand(name string, values tokens) (string, error) {
	data, err := templates.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		return "", fmt.Errorf("unable to load template '%s': %w", name, err)
	}
	return substitute(string(data), values), nil
}

func substitute(text string, values tokens) string {
	pairs := make([]string, 0, 2*len(values))
	for _, k := range slices.Sorted(maps.Keys(values)) {
		pairs = append(pairs, placeholder(k), values[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

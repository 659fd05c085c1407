package standalone

import (
	"fmt"
	"runtime/debug"
	"slices"
	"strings"
)

// pinned versions of modules the drawing surface depends on. They are used
// when program was built without module information.
var pinned = map[string]string{
	"github.com/disintegration/imaging": "v1.6.2",
	"github.com/h2non/filetype":         "v1.1.3",
	"github.com/hajimehoshi/ebiten/v2":  "v2.9.8",
	"github.com/srwiley/oksvg":          "v0.0.0-20221011165216-be6e8873101c",
	"github.com/srwiley/rasterx":        "v0.0.0-20220730225603-2ab79fcdd4ef",
	"golang.org/x/image":                "v0.39.0",
}

type requirement struct {
	path    string
	version string
}

// knownModules returns versions of modules this program itself was built
// with, falling back to pinned ones.
func knownModules() map[string]string {
	known := make(map[string]string, len(pinned))
	for p, v := range pinned {
		known[p] = v
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, d := range bi.Deps {
			if d.Replace != nil {
				d = d.Replace
			}
			if len(d.Version) > 0 {
				known[d.Path] = d.Version
			}
		}
	}
	return known
}

// requirements finds modules providing third party imports.
func requirements(imports []importSpec, known map[string]string) ([]requirement, error) {
	var res []requirement
	for _, is := range imports {
		if !thirdParty(is.path) {
			continue
		}
		mod := ""
		for m := range known {
			if (is.path == m || strings.HasPrefix(is.path, m+"/")) && len(m) > len(mod) {
				mod = m
			}
		}
		if len(mod) == 0 {
			return nil, fmt.Errorf("unknown module version for import '%s'", is.path)
		}
		r := requirement{path: mod, version: known[mod]}
		if !slices.Contains(res, r) {
			res = append(res, r)
		}
	}
	slices.SortFunc(res, func(a, b requirement) int { return strings.Compare(a.path, b.path) })
	return res, nil
}

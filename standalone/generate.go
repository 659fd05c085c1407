package standalone

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/h2non/filetype"

	"deck/deck"
	"deck/document"
	"deck/misc"
	"deck/render"
	"deck/surface"
)

// assetsDir is directory of embedded images relative to generated main.go.
const assetsDir = "assets"

// Options describe generated program.
type Options struct {
	// Name is program name, used as module name of generated project.
	Name       string
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	Theme      string
	FontSize   float64
	GoVersion  string
}

// Asset is an image embedded into generated program.
type Asset struct {
	// Key is image key as referenced by document.
	Key string
	// Source is resolved location of the image file.
	Source string
	// File is path relative to generated main.go.
	File string
	Data []byte
}

// Project is the generated source of a standalone program.
type Project struct {
	Main   []byte
	GoMod  []byte
	Assets []Asset
	// Scenes is total number of scenes, program moves in [0, Scenes).
	Scenes int
}

// Generate produces source of a program showing doc. Image keys are resolved
// relative to baseDir and images are read, so missing images are reported
// here.
func Generate(doc *document.Document, baseDir string, opts Options) (*Project, error) {
	assets, err := collectAssets(doc, baseDir)
	if err != nil {
		return nil, err
	}

	rt, err := bundle(surface.Sources)
	if err != nil {
		return nil, err
	}
	own := []importSpec{{path: "fmt"}, {path: "os"}, {path: "github.com/hajimehoshi/ebiten/v2"}}
	if len(assets) > 0 {
		own = append(own, importSpec{path: "embed"})
	}
	imports := mergeImports(rt.imports, own)

	entries := deck.Flatten(doc)
	ranges, scenes := deck.Scenes(entries)

	var src strings.Builder
	for _, part := range []struct {
		name   string
		values tokens
	}{
		{tmplPrologue, tokens{
			"generator": misc.GetAppName(),
			"imports":   importLines(imports),
			"runtime":   string(rt.decls),
		}},
		{tmplShell1, tokens{
			"name":       strconv.Quote(opts.Name),
			"title":      strconv.Quote(opts.Title),
			"width":      strconv.Itoa(opts.Width),
			"height":     strconv.Itoa(opts.Height),
			"fullscreen": strconv.FormatBool(opts.Fullscreen),
			"theme":      strconv.Quote(opts.Theme),
			"font_size":  number(opts.FontSize),
		}},
		{resourcesTemplate(assets), tokens{"resources": resourceLines(assets)}},
		{tmplShell2, nil},
	} {
		text, err := expand(part.name, part.values)
		if err != nil {
			return nil, err
		}
		src.WriteString(text)
	}

	e := &emitter{}
	for i, entry := range entries {
		e.beginPage(i, ranges[i])
		render.Walk(entry.Page, e)
		e.endPage()
	}
	src.WriteString(e.String())

	text, err := expand(tmplEpilogue, tokens{"max_scene": strconv.Itoa(scenes)})
	if err != nil {
		return nil, err
	}
	src.WriteString(text)

	code, err := format.Source([]byte(src.String()))
	if err != nil {
		return nil, fmt.Errorf("generated program is malformed: %w", err)
	}

	reqs, err := requirements(imports, knownModules())
	if err != nil {
		return nil, err
	}
	gomod, err := expand(tmplGoMod, tokens{
		"module":     moduleName(opts.Name),
		"go_version": opts.GoVersion,
		"requires":   requireLines(reqs),
	})
	if err != nil {
		return nil, err
	}

	return &Project{Main: code, GoMod: []byte(gomod), Assets: assets, Scenes: scenes}, nil
}

// collectAssets reads every distinct image of doc and assigns it a file name
// inside generated project.
func collectAssets(doc *document.Document, baseDir string) ([]Asset, error) {
	keys := doc.ImageKeys()
	assets := make([]Asset, 0, len(keys))
	for i, key := range keys {
		path := document.ResolveKey(baseDir, key)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read image '%s' (%s): %w", key, path, err)
		}
		assets = append(assets, Asset{
			Key:    key,
			Source: path,
			File:   fmt.Sprintf("%s/res%03d%s", assetsDir, i, assetExt(key, data)),
			Data:   data,
		})
	}
	return assets, nil
}

// assetExt prefers extension matching actual image content.
func assetExt(key string, data []byte) string {
	if surface.IsSVG(data) {
		return ".svg"
	}
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return "." + kind.Extension
	}
	return strings.ToLower(filepath.Ext(key))
}

func resourcesTemplate(assets []Asset) string {
	if len(assets) == 0 {
		return tmplNoResources
	}
	return tmplResources
}

func resourceLines(assets []Asset) string {
	var b strings.Builder
	for _, a := range assets {
		fmt.Fprintf(&b, "\t{key: %s, file: %s},\n", strconv.Quote(a.Key), strconv.Quote(a.File))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func importLines(imports []importSpec) string {
	lines := make([]string, 0, len(imports))
	for _, is := range imports {
		lines = append(lines, "\t"+is.String())
	}
	return strings.Join(lines, "\n")
}

func requireLines(reqs []requirement) string {
	lines := make([]string, 0, len(reqs))
	for _, r := range reqs {
		lines = append(lines, "\t"+r.path+" "+r.version)
	}
	return strings.Join(lines, "\n")
}

// moduleName makes module path of generated project from program name.
func moduleName(name string) string {
	if m := slug.Make(name); len(m) > 0 {
		return m
	}
	return defaultName
}

package standalone

import (
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"deck/surface"
)

func TestPlaceholder(t *testing.T) {
	if got := placeholder("max_scene"); got != "[[[max_scene]]]" {
		t.Errorf("placeholder() = %q", got)
	}
	for _, name := range []string{tmplPrologue, tmplShell1, tmplResources, tmplEpilogue, tmplGoMod} {
		data, err := templates.ReadFile("templates/" + name + ".tmpl")
		if err != nil {
			t.Fatalf("unable to read template %s: %v", name, err)
		}
		if !strings.Contains(string(data), "[[[") {
			t.Errorf("template %s has no placeholders", name)
		}
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		values tokens
		want   string
	}{
		{"plain", "a [[[x]]] b", tokens{"x": "1"}, "a 1 b"},
		{"repeated", "[[[x]]][[[x]]]", tokens{"x": "ab"}, "abab"},
		{"unknown kept", "[[[y]]] [[x]]", tokens{"x": "1"}, "[[[y]]] [[x]]"},
		{"single pass", "[[[a]]] [[[b]]]", tokens{"a": "[[[b]]]", "b": "x"}, "[[[b]]] x"},
		{"no values", "[[[a]]]", nil, "[[[a]]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := substitute(tt.text, tt.values); got != tt.want {
				t.Errorf("substitute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	for _, name := range []string{tmplPrologue, tmplShell1, tmplResources, tmplNoResources, tmplShell2, tmplEpilogue, tmplGoMod} {
		if _, err := expand(name, nil); err != nil {
			t.Errorf("expand(%s) error = %v", name, err)
		}
	}
	if _, err := expand("missing", nil); err == nil {
		t.Error("expected error for unknown template")
	}
	got, err := expand(tmplEpilogue, tokens{"max_scene": "7"})
	if err != nil {
		t.Fatalf("expand() error = %v", err)
	}
	if !strings.HasPrefix(got, "}\n") || !strings.Contains(got, "const maxScene = 7") {
		t.Errorf("unexpected epilogue:\n%s", got)
	}
}

func TestBundle(t *testing.T) {
	fsys := fstest.MapFS{
		"a.go":      {Data: []byte("package x\n\nimport (\n\t\"fmt\"\n\t_ \"image/png\"\n)\n\n// Hello says hello.\nfunc Hello() { fmt.Println(\"hello\") }\n")},
		"b.go":      {Data: []byte("package x\n\nimport \"image/png\"\n\nvar enc = png.Encoder{}\n")},
		"a_test.go": {Data: []byte("package x\n\nfunc broken(\n")},
		"embed.go":  {Data: []byte("package x\n\nimport \"embed\"\n\n//go:embed *.go\nvar Sources embed.FS\n")},
	}
	rt, err := bundle(fsys)
	if err != nil {
		t.Fatalf("bundle() error = %v", err)
	}
	decls := string(rt.decls)
	for _, want := range []string{"func Hello()", "var enc = png.Encoder{}"} {
		if !strings.Contains(decls, want) {
			t.Errorf("bundle lacks %q:\n%s", want, decls)
		}
	}
	for _, unwanted := range []string{"package", "import", "Sources", "says hello"} {
		if strings.Contains(decls, unwanted) {
			t.Errorf("bundle must not contain %q:\n%s", unwanted, decls)
		}
	}

	got := mergeImports(rt.imports)
	want := []importSpec{{path: "fmt"}, {path: "image/png"}}
	if !slices.Equal(got, want) {
		t.Errorf("imports = %v, want %v", got, want)
	}
}

func TestBundle_Malformed(t *testing.T) {
	fsys := fstest.MapFS{"a.go": {Data: []byte("package x\n\nfunc (\n")}}
	if _, err := bundle(fsys); err == nil || !strings.Contains(err.Error(), "a.go") {
		t.Errorf("expected parse error naming file, got %v", err)
	}
}

func TestBundle_Surface(t *testing.T) {
	rt, err := bundle(surface.Sources)
	if err != nil {
		t.Fatalf("bundle() error = %v", err)
	}
	for _, want := range []string{"func NewFrame(", "func LoadTexture(", "func PollAction()", "type Ui struct"} {
		if !strings.Contains(string(rt.decls), want) {
			t.Errorf("runtime lacks %q", want)
		}
	}
	for _, is := range rt.imports {
		if is.path == "embed" || is.path == "testing" {
			t.Errorf("runtime must not import %s", is.path)
		}
	}
}

func TestMergeImports(t *testing.T) {
	got := mergeImports(
		[]importSpec{{path: "os"}, {name: "_", path: "image/gif"}, {path: "fmt"}},
		[]importSpec{{path: "fmt"}, {name: "_", path: "image/gif"}, {name: "_", path: "os"}, {name: "sprig", path: "github.com/go-task/slim-sprig/v3"}},
	)
	want := []importSpec{
		{path: "fmt"},
		{name: "sprig", path: "github.com/go-task/slim-sprig/v3"},
		{name: "_", path: "image/gif"},
		{path: "os"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("mergeImports() = %v, want %v", got, want)
	}
	if lines := importLines(want); !strings.Contains(lines, "\tsprig \"github.com/go-task/slim-sprig/v3\"") || !strings.Contains(lines, "\t_ \"image/gif\"") {
		t.Errorf("unexpected import lines:\n%s", lines)
	}
}

func TestRequirements(t *testing.T) {
	known := map[string]string{
		"github.com/hajimehoshi/ebiten/v2": "v2.9.8",
		"golang.org/x/image":               "v0.39.0",
		"golang.org/x/image/extra":         "v1.0.0",
	}
	got, err := requirements([]importSpec{
		{path: "fmt"},
		{path: "github.com/hajimehoshi/ebiten/v2/text/v2"},
		{path: "github.com/hajimehoshi/ebiten/v2"},
		{name: "_", path: "golang.org/x/image/webp"},
		{path: "golang.org/x/image/extra/thing"},
	}, known)
	if err != nil {
		t.Fatalf("requirements() error = %v", err)
	}
	want := []requirement{
		{"github.com/hajimehoshi/ebiten/v2", "v2.9.8"},
		{"golang.org/x/image", "v0.39.0"},
		{"golang.org/x/image/extra", "v1.0.0"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("requirements() = %v, want %v", got, want)
	}

	if _, err := requirements([]importSpec{{path: "example.com/unknown"}}, known); err == nil {
		t.Error("expected error for unknown module")
	}
}

func TestKnownModules(t *testing.T) {
	known := knownModules()
	for p := range pinned {
		if len(known[p]) == 0 {
			t.Errorf("no version for %s", p)
		}
	}
}

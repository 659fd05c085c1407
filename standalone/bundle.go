package standalone

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"io/fs"
	"slices"
	"strconv"
	"strings"
)

// importSpec is a single import of the generated file.
type importSpec struct {
	name string
	path string
}

func (s importSpec) String() string {
	if len(s.name) > 0 {
		return s.name + " " + strconv.Quote(s.path)
	}
	return strconv.Quote(s.path)
}

// surfaceRuntime is a drawing surface package flattened into declarations
// which can be placed into generated main package.
type surfaceRuntime struct {
	imports []importSpec
	decls   []byte
}

// bundle flattens Go package sources found in fsys. Test files and files
// relying on embedding are skipped, as directives are lost during printing.
func bundle(fsys fs.FS) (*surfaceRuntime, error) {
	names, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return nil, fmt.Errorf("unable to list runtime sources: %w", err)
	}
	slices.Sort(names)

	fset := token.NewFileSet()
	rt := &surfaceRuntime{}
	var out bytes.Buffer
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("unable to read runtime source '%s': %w", name, err)
		}
		f, err := parser.ParseFile(fset, name, data, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("unable to parse runtime source '%s': %w", name, err)
		}
		specs := fileImports(f)
		if slices.ContainsFunc(specs, func(s importSpec) bool { return s.path == "embed" }) {
			continue
		}
		rt.imports = append(rt.imports, specs...)
		for _, d := range f.Decls {
			if g, ok := d.(*ast.GenDecl); ok && g.Tok == token.IMPORT {
				continue
			}
			if err := printer.Fprint(&out, fset, d); err != nil {
				return nil, fmt.Errorf("unable to print declaration from '%s': %w", name, err)
			}
			out.WriteString("\n\n")
		}
	}
	rt.decls = out.Bytes()
	return rt, nil
}

func fileImports(f *ast.File) []importSpec {
	specs := make([]importSpec, 0, len(f.Imports))
	for _, is := range f.Imports {
		p, err := strconv.Unquote(is.Path.Value)
		if err != nil {
			continue
		}
		s := importSpec{path: p}
		if is.Name != nil {
			s.name = is.Name.Name
		}
		specs = append(specs, s)
	}
	return specs
}

// mergeImports removes duplicates and orders imports by path. Blank import is
// dropped when the same package is imported for use anyway.
func mergeImports(specs ...[]importSpec) []importSpec {
	var all []importSpec
	for _, s := range specs {
		all = append(all, s...)
	}
	used := make(map[string]bool)
	for _, s := range all {
		if s.name != "_" {
			used[s.path] = true
		}
	}
	var res []importSpec
	for _, s := range all {
		if s.name == "_" && used[s.path] {
			continue
		}
		if !slices.Contains(res, s) {
			res = append(res, s)
		}
	}
	slices.SortFunc(res, func(a, b importSpec) int {
		if c := strings.Compare(a.path, b.path); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	return res
}

// thirdParty reports whether import path belongs to a downloadable module.
func thirdParty(p string) bool {
	first, _, _ := strings.Cut(p, "/")
	return strings.Contains(first, ".")
}

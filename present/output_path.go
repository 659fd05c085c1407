package present

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"deck/config"
	"deck/document"
)

// defaultName is used when document has no title.
const defaultName = "slides"

// Values holds variables available for output name template expansion.
type Values struct {
	Context string
	Title   string
	Source  string
	Pages   int
}

// buildOutputPath returns path of a standalone program. When dst is an
// existing directory (or looks like one) program name is built from the
// output name template or document title, otherwise dst names the program.
func buildOutputPath(doc *document.Document, src, dst string, cfg *config.StandaloneConfig, log *zap.Logger) string {
	if !isDir(dst) {
		return dst
	}
	name := ""
	if len(cfg.OutputNameTemplate) > 0 {
		expanded, err := expandTemplate(doc, src, config.OutputNameTemplateFieldName, cfg.OutputNameTemplate)
		if err != nil {
			log.Warn("Unable to prepare output filename", zap.Error(err))
		}
		name = filepath.FromSlash(expanded)
	}
	if len(strings.TrimSpace(name)) == 0 {
		name = doc.Meta.Title
	}
	return assemblePath(dst, name, cfg.Transliterate)
}

func isDir(dst string) bool {
	if strings.HasSuffix(dst, string(os.PathSeparator)) || strings.HasSuffix(dst, "/") {
		return true
	}
	fi, err := os.Stat(dst)
	return err == nil && fi.IsDir()
}

// assemblePath places name (which may contain subdirectories) under dir.
// Every path segment is cleaned and, if requested, transliterated.
func assemblePath(dir, name string, transliterate bool) string {
	var parts []string
	for _, segment := range strings.Split(name, string(os.PathSeparator)) {
		if len(strings.TrimSpace(segment)) == 0 || segment == "." || segment == ".." {
			continue
		}
		parts = append(parts, segment)
	}
	if len(parts) == 0 {
		parts = []string{defaultName}
	}

	elems := make([]string, 0, len(parts)+1)
	elems = append(elems, dir)
	for i, segment := range parts {
		if transliterate {
			segment = slug.Make(segment)
		}
		fallback := "_"
		if i == len(parts)-1 {
			fallback = defaultName
		}
		elems = append(elems, config.CleanFileName(segment, fallback))
	}
	elems[len(elems)-1] += config.ExeSuffix
	return filepath.Join(elems...)
}

func expandTemplate(doc *document.Document, src string, name config.TemplateFieldName, field string) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context: string(name),
		Title:   doc.Meta.Title,
		Source:  strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Pages:   len(doc.Pages),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", name, err)
	}
	return buf.String(), nil
}

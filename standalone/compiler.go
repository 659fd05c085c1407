// Package standalone compiles documents into self-contained programs. The
// program source is generated from templates, built with Go toolchain in a
// scratch workspace and moved to destination.
package standalone

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"deck/config"
	"deck/document"
	"deck/utils/workspace"
)

const (
	// defaultName is used when nothing better could be derived.
	defaultName = "slides"
	// appDir is package directory of generated program inside workspace.
	appDir = "app"
	binDir = "bin"
)

// Compiler builds standalone programs.
type Compiler struct {
	cfg   *config.StandaloneConfig
	look  *config.PresentationConfig
	rpt   *config.Report
	build *builder
	log   *zap.Logger
}

func New(cfg *config.Config, rpt *config.Report, log *zap.Logger) *Compiler {
	return &Compiler{
		cfg:  &cfg.Standalone,
		look: &cfg.Presentation,
		rpt:  rpt,
		build: &builder{
			tool: cfg.Standalone.Tool,
			args: cfg.Standalone.BuildArgs,
			env:  cfg.Standalone.Env,
			log:  log.Named("build"),
		},
		log: log,
	}
}

// Options returns description of a program named name showing doc.
func (c *Compiler) Options(doc *document.Document, name string) Options {
	return Options{
		Name:       name,
		Title:      c.look.WindowTitle(doc.Meta.Title),
		Width:      c.look.Window.Width,
		Height:     c.look.Window.Height,
		Fullscreen: doc.Meta.Fullscreen || c.look.Fullscreen,
		Theme:      c.look.Theme.String(),
		FontSize:   c.look.FontSize,
		GoVersion:  c.cfg.GoVersion,
	}
}

// Compile produces executable showing doc at output. Scratch workspace is
// always removed before return unless configured otherwise.
func (c *Compiler) Compile(ctx context.Context, doc *document.Document, baseDir, output string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer func(start time.Time) {
		c.log.Debug("Compilation finished", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
	}(time.Now())

	name := programName(output)
	proj, err := Generate(doc, baseDir, c.Options(doc, name))
	if err != nil {
		return fmt.Errorf("unable to generate program: %w", err)
	}
	c.rpt.StoreData(path.Join("standalone", appDir, "main.go"), proj.Main)
	c.rpt.StoreData(path.Join("standalone", "go.mod"), proj.GoMod)
	c.log.Debug("Program generated", zap.String("name", name), zap.Int("scenes", proj.Scenes), zap.Int("images", len(proj.Assets)))

	ws, err := workspace.Acquire(c.cfg.WorkDir, c.cfg.WorkspacePrefix)
	if err != nil {
		return fmt.Errorf("unable to prepare workspace: %w", err)
	}
	defer func() {
		if cerr := c.rpt.StoreCopy("standalone/workspace", ws.Path()); cerr != nil {
			c.log.Warn("Unable to store workspace in the report", zap.Error(cerr))
		}
		if c.cfg.KeepWorkspace {
			c.log.Info("Workspace kept", zap.String("path", ws.Path()))
			return
		}
		err = multierr.Append(err, ws.Release())
	}()

	if err := populate(ws, proj); err != nil {
		return err
	}

	bin := ws.Join(binDir, name)
	if err := c.build.build(ctx, ws.Path(), bin, "./"+appDir); err != nil {
		return err
	}
	if err := workspace.Move(bin, output); err != nil {
		return fmt.Errorf("unable to deliver program: %w", err)
	}
	c.log.Info("Program created", zap.String("path", output))
	return nil
}

// populate writes generated project into workspace.
func populate(ws *workspace.Scratch, proj *Project) error {
	if _, err := ws.WriteFile(proj.GoMod, "go.mod"); err != nil {
		return err
	}
	if _, err := ws.MakeDir(appDir); err != nil {
		return err
	}
	if _, err := ws.MakeDir(binDir); err != nil {
		return err
	}
	if _, err := ws.WriteFile(proj.Main, appDir, "main.go"); err != nil {
		return err
	}
	if len(proj.Assets) == 0 {
		return nil
	}
	if _, err := ws.MakeDir(appDir, assetsDir); err != nil {
		return err
	}
	for _, a := range proj.Assets {
		if _, err := ws.WriteFile(a.Data, appDir, filepath.FromSlash(a.File)); err != nil {
			return err
		}
	}
	return nil
}

// programName derives program name from output file name.
func programName(output string) string {
	name := filepath.Base(output)
	if runtime.GOOS == "windows" {
		name = strings.TrimSuffix(name, ".exe")
	}
	if len(name) == 0 || name == "." || name == string(filepath.Separator) {
		return defaultName
	}
	return name
}

// Package present implements run command: shows presentation or compiles it
// into a standalone program.
package present

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"deck/document"
	"deck/live"
	"deck/standalone"
	"deck/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Named("present")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		src = env.Cfg.Presentation.DefaultSource
		log.Debug("No source specified, using default", zap.String("source", src))
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	env.Standalone, env.Overwrite = cmd.Bool("standalone"), cmd.Bool("overwrite")
	if cmd.Args().Len() > 2 || (!env.Standalone && cmd.Args().Len() > 1) {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", extraArgs(cmd, env.Standalone)))
	}

	doc, err := document.LoadFile(src)
	if err != nil {
		return err
	}
	env.Rpt.Store("source/"+filepath.Base(src), src)
	env.Rpt.StoreData("document.txt", []byte(doc.String()))

	log.Info("Processing starting", zap.String("source", src), zap.Int("pages", len(doc.Pages)), zap.Bool("standalone", env.Standalone))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	if !env.Standalone {
		return live.Run(ctx, doc, filepath.Dir(src), &env.Cfg.Presentation, env.Named("live"))
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	output, err := prepareOutput(buildOutputPath(doc, src, dst+trailer(cmd.Args().Get(1)), &env.Cfg.Standalone, log), env.Overwrite)
	if err != nil {
		return err
	}
	return standalone.New(env.Cfg, env.Rpt, env.Named("standalone")).Compile(ctx, doc, filepath.Dir(src), output)
}

// trailer keeps explicit directory marker which filepath.Abs removes.
func trailer(arg string) string {
	if len(arg) == 0 || os.IsPathSeparator(arg[len(arg)-1]) {
		return string(os.PathSeparator)
	}
	return ""
}

// prepareOutput makes sure program could be written to output.
func prepareOutput(output string, overwrite bool) (string, error) {
	fi, err := os.Stat(output)
	switch {
	case err == nil && fi.IsDir():
		return "", fmt.Errorf("output path is a directory: %s", output)
	case err == nil && !overwrite:
		return "", fmt.Errorf("output file already exists: %s", output)
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("unable to check output path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return "", fmt.Errorf("unable to create output directory: %w", err)
	}
	return output, nil
}

func extraArgs(cmd *cli.Command, standalone bool) []string {
	keep := 1
	if standalone {
		keep = 2
	}
	if cmd.Args().Len() <= keep {
		return nil
	}
	return cmd.Args().Slice()[keep:]
}

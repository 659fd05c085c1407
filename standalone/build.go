package standalone

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// stderrTail is how many last lines of build tool error output are kept for
// the error message.
const stderrTail = 20

// builder runs native build tool in a project directory.
type builder struct {
	tool string
	args []string
	env  []string
	log  *zap.Logger
}

// build runs tool with args followed by "-o out pkg" in dir. Tool output is
// relayed to the log line by line.
func (b *builder) build(ctx context.Context, dir, out, pkg string) error {
	args := append(append([]string{}, b.args...), "-o", out, pkg)
	cmd := exec.CommandContext(ctx, b.tool, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), b.env...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("unable to connect build tool output: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("unable to connect build tool output: %w", err)
	}

	b.log.Debug("Running build tool", zap.String("tool", b.tool), zap.Strings("args", args), zap.String("dir", dir))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("unable to start build tool '%s': %w", b.tool, err)
	}

	var (
		wg   sync.WaitGroup
		tail []string
	)
	wg.Go(func() {
		relay(stdout, func(line string) { b.log.Info(line) })
	})
	wg.Go(func() {
		relay(stderr, func(line string) {
			b.log.Info(line)
			if tail = append(tail, line); len(tail) > stderrTail {
				tail = tail[1:]
			}
		})
	})
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("build interrupted: %w", multierr.Combine(ctxErr, err))
		}
		if len(tail) > 0 {
			return fmt.Errorf("build tool '%s' failed: %w\n%s", b.tool, err, strings.Join(tail, "\n"))
		}
		return fmt.Errorf("build tool '%s' failed: %w", b.tool, err)
	}
	return nil
}

func relay(r io.Reader, fn func(string)) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r"); len(line) > 0 {
			fn(line)
		}
	}
	// draining is needed for the process to finish
	_, _ = io.Copy(io.Discard, r)
}

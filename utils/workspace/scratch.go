package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Scratch is a transient uniquely named directory. Name is derived from a
// nanosecond time stamp, so concurrent runs in the same location are very
// unlikely (but not guaranteed) to collide.
type Scratch struct {
	path     string
	released bool
}

// Acquire creates new scratch directory under dir. Stale directory with the
// same name is replaced.
func Acquire(dir, prefix string) (*Scratch, error) {
	if len(dir) == 0 {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve workspace location '%s': %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("unable to create workspace location '%s': %w", abs, err)
	}
	path := filepath.Join(abs, prefix+strconv.FormatInt(time.Now().UnixNano(), 10))
	if err := MakeDir(path); err != nil {
		return nil, err
	}
	return &Scratch{path: path}, nil
}

// Path returns absolute path of the scratch directory.
func (s *Scratch) Path() string {
	return s.path
}

// Join returns path of elem inside scratch directory.
func (s *Scratch) Join(elem ...string) string {
	return filepath.Join(append([]string{s.path}, elem...)...)
}

// MakeDir creates (destructively) directory inside scratch directory and
// returns its path.
func (s *Scratch) MakeDir(elem ...string) (string, error) {
	path := s.Join(elem...)
	if err := MakeDir(path); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile writes (destructively) file inside scratch directory and returns
// its path.
func (s *Scratch) WriteFile(data []byte, elem ...string) (string, error) {
	path := s.Join(elem...)
	if err := WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// Release removes scratch directory with everything in it. It is safe to call
// more than once.
func (s *Scratch) Release() error {
	if s == nil || s.released {
		return nil
	}
	if err := Remove(s.path); err != nil {
		return err
	}
	s.released = true
	return nil
}

// Package workspace contains destructive file system helpers used to manage
// transient build projects.
package workspace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// MakeDir creates directory at path. Anything already present there (file or
// directory) is removed first.
func MakeDir(path string) error {
	if err := Remove(path); err != nil {
		return err
	}
	if err := os.Mkdir(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", path, err)
	}
	return nil
}

// WriteFile removes anything present at path and writes data into a new file.
func WriteFile(path string, data []byte) error {
	if err := Remove(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file '%s': %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write to file '%s': %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write to file '%s': %w", path, err)
	}
	return nil
}

// Move renames file. When rename is impossible because source and destination
// are on different devices file is copied (keeping permissions) and source is
// removed.
func Move(from, to string) error {
	err := os.Rename(from, to)
	if err == nil {
		return nil
	}
	var le *os.LinkError
	if !errors.As(err, &le) || !errors.Is(le.Err, syscall.EXDEV) {
		return fmt.Errorf("failed to rename '%s' to '%s': %w", from, to, err)
	}
	if err := copyFile(from, to); err != nil {
		return fmt.Errorf("failed to move '%s' to '%s': %w", from, to, err)
	}
	if err := os.Remove(from); err != nil {
		return fmt.Errorf("failed to remove file '%s': %w", from, err)
	}
	return nil
}

// Remove deletes directory with all its content or a single file. Absent path
// is not an error.
func Remove(path string) error {
	fi, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to access '%s': %w", path, err)
	}
	if fi.IsDir() {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove directory '%s': %w", path, err)
		}
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove file '%s': %w", path, err)
	}
	return nil
}

func copyFile(from, to string) error {
	in, err := os.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return err
	}
	if err := Remove(to); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(to), 0755); err != nil {
		return err
	}

	out, err := os.OpenFile(to, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

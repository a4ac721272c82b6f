// Package ctxfs mirrors the errfs surface with context.Context parameters.
//
// Each function checks the context before issuing the blocking call; a
// context that is already done yields its own error, bare — cancellation
// is not a filesystem failure and gets no operation/path context.
// Otherwise the call delegates to errfs and returns its result unchanged.
package ctxfs

import (
	"context"
	"io/fs"
	"time"

	"github.com/gobeaver/errfs"
)

func ready(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// ReadFile reads the named file and returns its contents.
func ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	return errfs.ReadFile(name)
}

// ReadFileString reads the named file and returns its contents as a
// string.
func ReadFileString(ctx context.Context, name string) (string, error) {
	if err := ready(ctx); err != nil {
		return "", err
	}
	return errfs.ReadFileString(name)
}

// WriteFile writes data to the named file, creating it if necessary.
func WriteFile(ctx context.Context, name string, data []byte, perm fs.FileMode) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return errfs.WriteFile(name, data, perm)
}

// Mkdir creates a new directory with the specified name and permission bits.
func Mkdir(ctx context.Context, name string, perm fs.FileMode) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return errfs.Mkdir(name, perm)
}

// MkdirAll creates the named directory along with any missing parents.
func MkdirAll(ctx context.Context, path string, perm fs.FileMode) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return errfs.MkdirAll(path, perm)
}

// MkdirTemp creates a new temporary directory in dir and returns its path.
func MkdirTemp(ctx context.Context, dir, pattern string) (string, error) {
	if err := ready(ctx); err != nil {
		return "", err
	}
	return errfs.MkdirTemp(dir, pattern)
}

// Remove removes the named file or empty directory.
func Remove(ctx context.Context, name string) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return errfs.Remove(name)
}

// RemoveAll removes path and any children it contains.
func RemoveAll(ctx context.Context, path string) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return errfs.RemoveAll(path)
}

// Rename renames (moves) oldpath to newpath.
func Rename(ctx context.Context, oldpath, newpath string) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return errfs.Rename(oldpath, newpath)
}

// Link creates newname as a hard link to the oldname file.
func Link(ctx context.Context, oldname, newname string) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return errfs.Link(oldname, newname)
}

// Symlink creates newname as a symbolic link to oldname.
func Symlink(ctx context.Context, oldname, newname string) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return errfs.Symlink(oldname, newname)
}

// Readlink returns the destination of the named symbolic link.
func Readlink(ctx context.Context, name string) (string, error) {
	if err := ready(ctx); err != nil {
		return "", err
	}
	return errfs.Readlink(name)
}

// Stat returns a FileInfo describing the named file.
func Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	return errfs.Stat(name)
}

// Lstat returns a FileInfo describing the named file without following
// symbolic links.
func Lstat(ctx context.Context, name string) (fs.FileInfo, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	return errfs.Lstat(name)
}

// Chmod changes the mode of the named file to mode.
func Chmod(ctx context.Context, name string, mode fs.FileMode) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return errfs.Chmod(name, mode)
}

// Chtimes changes the access and modification times of the named file.
func Chtimes(ctx context.Context, name string, atime, mtime time.Time) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return errfs.Chtimes(name, atime, mtime)
}

// Truncate changes the size of the named file.
func Truncate(ctx context.Context, name string, size int64) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return errfs.Truncate(name, size)
}

// Canonicalize returns the absolute form of path with all symbolic links
// resolved.
func Canonicalize(ctx context.Context, path string) (string, error) {
	if err := ready(ctx); err != nil {
		return "", err
	}
	return errfs.Canonicalize(path)
}

// Exists reports whether the named file or directory exists.
func Exists(ctx context.Context, name string) (bool, error) {
	if err := ready(ctx); err != nil {
		return false, err
	}
	return errfs.Exists(name)
}

// Copy copies the file named src to dst and returns the number of bytes
// copied.
func Copy(ctx context.Context, src, dst string) (int64, error) {
	if err := ready(ctx); err != nil {
		return 0, err
	}
	return errfs.Copy(src, dst)
}

// ReadDir reads the named directory and returns all its entries sorted
// by filename.
func ReadDir(ctx context.Context, name string) ([]errfs.DirEntry, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	return errfs.ReadDir(name)
}

// Checksum reads the named file and calculates its checksum using the
// specified algorithm.
func Checksum(ctx context.Context, name string, algorithm errfs.ChecksumAlgorithm) (string, error) {
	if err := ready(ctx); err != nil {
		return "", err
	}
	return errfs.Checksum(name, algorithm)
}

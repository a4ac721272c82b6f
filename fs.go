package errfs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// The functions below mirror their os counterparts name-for-name: same
// arguments, same success values, same side effects. The only difference
// is the error, which carries the attempted operation and the path(s).

// ReadFile reads the named file and returns its contents.
func ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, wrapPath(OpReadFile, name, err)
	}
	return data, nil
}

// ReadFileString reads the named file and returns its contents as a
// string.
func ReadFileString(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", wrapPath(OpReadFile, name, err)
	}
	return string(data), nil
}

// WriteFile writes data to the named file, creating it if necessary.
func WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := os.WriteFile(name, data, perm); err != nil {
		return wrapPath(OpWriteFile, name, err)
	}
	return nil
}

// Mkdir creates a new directory with the specified name and permission bits.
func Mkdir(name string, perm fs.FileMode) error {
	if err := os.Mkdir(name, perm); err != nil {
		return wrapPath(OpMkdir, name, err)
	}
	return nil
}

// MkdirAll creates the named directory along with any missing parents.
func MkdirAll(path string, perm fs.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return wrapPath(OpMkdir, path, err)
	}
	return nil
}

// MkdirTemp creates a new temporary directory in dir and returns its path.
func MkdirTemp(dir, pattern string) (string, error) {
	name, err := os.MkdirTemp(dir, pattern)
	if err != nil {
		return "", wrapPath(OpMkdirTemp, dir, err)
	}
	return name, nil
}

// Remove removes the named file or empty directory.
func Remove(name string) error {
	if err := os.Remove(name); err != nil {
		return wrapPath(OpRemove, name, err)
	}
	return nil
}

// RemoveAll removes path and any children it contains.
func RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return wrapPath(OpRemoveAll, path, err)
	}
	return nil
}

// Rename renames (moves) oldpath to newpath.
func Rename(oldpath, newpath string) error {
	if err := os.Rename(oldpath, newpath); err != nil {
		return wrapPaths(OpRename, oldpath, newpath, err)
	}
	return nil
}

// Link creates newname as a hard link to the oldname file.
func Link(oldname, newname string) error {
	if err := os.Link(oldname, newname); err != nil {
		return wrapPaths(OpLink, oldname, newname, err)
	}
	return nil
}

// Symlink creates newname as a symbolic link to oldname.
func Symlink(oldname, newname string) error {
	if err := os.Symlink(oldname, newname); err != nil {
		return wrapPaths(OpSymlink, oldname, newname, err)
	}
	return nil
}

// Readlink returns the destination of the named symbolic link.
func Readlink(name string) (string, error) {
	dest, err := os.Readlink(name)
	if err != nil {
		return "", wrapPath(OpReadlink, name, err)
	}
	return dest, nil
}

// Stat returns a FileInfo describing the named file.
func Stat(name string) (fs.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, wrapPath(OpStat, name, err)
	}
	return info, nil
}

// Lstat returns a FileInfo describing the named file without following
// symbolic links.
func Lstat(name string) (fs.FileInfo, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return nil, wrapPath(OpLstat, name, err)
	}
	return info, nil
}

// Chmod changes the mode of the named file to mode.
func Chmod(name string, mode fs.FileMode) error {
	if err := os.Chmod(name, mode); err != nil {
		return wrapPath(OpChmod, name, err)
	}
	return nil
}

// Chtimes changes the access and modification times of the named file.
func Chtimes(name string, atime, mtime time.Time) error {
	if err := os.Chtimes(name, atime, mtime); err != nil {
		return wrapPath(OpChtimes, name, err)
	}
	return nil
}

// Truncate changes the size of the named file.
func Truncate(name string, size int64) error {
	if err := os.Truncate(name, size); err != nil {
		return wrapPath(OpTruncate, name, err)
	}
	return nil
}

// Canonicalize returns the absolute form of path with all symbolic links
// resolved.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", wrapPath(OpCanonicalize, path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", wrapPath(OpCanonicalize, path, err)
	}
	return resolved, nil
}

// Exists reports whether the named file or directory exists. Symbolic
// links are followed, so a dangling link reports false.
func Exists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, wrapPath(OpExists, name, err)
}

// Copy copies the contents and permission bits of the file named src to
// the file named dst, creating or truncating dst. It returns the number
// of bytes copied.
func Copy(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, wrapPaths(OpCopy, src, dst, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, wrapPaths(OpCopy, src, dst, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, wrapPaths(OpCopy, src, dst, err)
	}

	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return written, wrapPaths(OpCopy, src, dst, err)
	}
	if err := out.Close(); err != nil {
		return written, wrapPaths(OpCopy, src, dst, err)
	}
	return written, nil
}

package errfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Op names a wrapped filesystem operation. The same set of operations
// drives both the blocking surface and the ctxfs mirror.
type Op string

const (
	OpOpenFile     Op = "open file"
	OpCreateFile   Op = "create file"
	OpReadFile     Op = "read file"
	OpWriteFile    Op = "write file"
	OpRead         Op = "read from file"
	OpReadAt       Op = "read with offset from file"
	OpWrite        Op = "write to file"
	OpWriteAt      Op = "write with offset to file"
	OpSeek         Op = "seek in file"
	OpClose        Op = "close file"
	OpSync         Op = "sync file"
	OpTruncate     Op = "truncate file"
	OpStat         Op = "query metadata of file"
	OpLstat        Op = "query metadata of symlink"
	OpChmod        Op = "set permissions of file"
	OpChtimes      Op = "set timestamps of file"
	OpMkdir        Op = "create directory"
	OpMkdirTemp    Op = "create temporary directory"
	OpCreateTemp   Op = "create temporary file"
	OpRemove       Op = "remove file"
	OpRemoveAll    Op = "remove directory"
	OpReadDir      Op = "read directory"
	OpReadDirEnt   Op = "read directory entry"
	OpEntryInfo    Op = "read entry metadata"
	OpCanonicalize Op = "canonicalize path"
	OpReadlink     Op = "read symbolic link"
	OpExists       Op = "check existence of"
	OpCopy         Op = "copy file"
	OpRename       Op = "rename file"
	OpLink         Op = "hardlink file"
	OpSymlink      Op = "symlink file"
	OpChecksum     Op = "checksum file"
	OpWatch        Op = "watch path"
)

// Error records a failed filesystem operation together with the path(s)
// it was attempted on. Dest is set only for operations that take a source
// and a destination (rename, copy, hardlink, symlink).
//
// Err holds the bare cause of the failure. Classification helpers like
// errors.Is(err, fs.ErrNotExist) behave exactly as they would on the error
// returned by the os package directly.
type Error struct {
	Op   Op
	Path string
	Dest string
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if exposeOriginalError.Load() {
		if e.Dest != "" {
			return fmt.Sprintf("failed to %s '%s' to '%s'", e.Op, e.Path, e.Dest)
		}
		return fmt.Sprintf("failed to %s '%s'", e.Op, e.Path)
	}
	if e.Dest != "" {
		return fmt.Sprintf("failed to %s '%s' to '%s': %v", e.Op, e.Path, e.Dest, e.Err)
	}
	return fmt.Sprintf("failed to %s '%s': %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Underlying returns the bare cause of the failure, exactly as the os
// package classified it.
func (e *Error) Underlying() error {
	return e.Err
}

// Underlying extracts the bare cause from err if it carries operation/path
// context added by this package, and returns err itself otherwise.
func Underlying(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Err
	}
	return err
}

// wrapPath wraps a failure from a single-path operation.
func wrapPath(op Op, path string, err error) error {
	return &Error{Op: op, Path: path, Err: cause(err)}
}

// wrapPaths wraps a failure from a source/destination operation. Both
// paths are always recorded; probing to find the faulty side would add
// extra system calls and race exposure.
func wrapPaths(op Op, path, dest string, err error) error {
	return &Error{Op: op, Path: path, Dest: dest, Err: cause(err)}
}

// cause peels the op/path context the os package already attached so the
// rendered message does not repeat the path. The bare cause (usually a
// syscall.Errno or an io/fs sentinel) is what classification matches on.
func cause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) && pe.Err != nil {
		return pe.Err
	}
	var le *os.LinkError
	if errors.As(err, &le) && le.Err != nil {
		return le.Err
	}
	return err
}

// IsNotExist reports whether an error indicates that a file or directory
// does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsExist reports whether an error indicates that a file or directory
// already exists
func IsExist(err error) bool {
	return errors.Is(err, fs.ErrExist)
}

// IsPermission reports whether an error indicates that permission is denied
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

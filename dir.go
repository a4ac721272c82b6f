package errfs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DirEntry wraps an fs.DirEntry together with the directory it was read
// from, so metadata failures can name the entry's own path.
type DirEntry struct {
	dir   string
	entry fs.DirEntry
}

// Name returns the name of the entry without any leading path components.
func (e DirEntry) Name() string { return e.entry.Name() }

// IsDir reports whether the entry describes a directory.
func (e DirEntry) IsDir() bool { return e.entry.IsDir() }

// Type returns the type bits for the entry.
func (e DirEntry) Type() fs.FileMode { return e.entry.Type() }

// Path returns the full path of the entry: the directory it was read
// from joined with its name.
func (e DirEntry) Path() string { return filepath.Join(e.dir, e.entry.Name()) }

// Info returns the FileInfo for the file or subdirectory described by
// the entry.
func (e DirEntry) Info() (fs.FileInfo, error) {
	info, err := e.entry.Info()
	if err != nil {
		return nil, wrapPath(OpEntryInfo, e.Path(), err)
	}
	return info, nil
}

// Sys returns the underlying fs.DirEntry.
func (e DirEntry) Sys() fs.DirEntry { return e.entry }

func wrapEntries(dir string, entries []fs.DirEntry) []DirEntry {
	if entries == nil {
		return nil
	}
	wrapped := make([]DirEntry, len(entries))
	for i, entry := range entries {
		wrapped[i] = DirEntry{dir: dir, entry: entry}
	}
	return wrapped
}

// ReadDir reads the named directory and returns all its entries sorted
// by filename, mirroring os.ReadDir. On error it returns the entries
// read before the error along with the wrapped error.
func ReadDir(name string) ([]DirEntry, error) {
	entries, err := os.ReadDir(name)
	wrapped := wrapEntries(name, entries)
	if err != nil {
		return wrapped, wrapPath(OpReadDir, name, err)
	}
	return wrapped, nil
}

// Dir is a lazy iterator over the entries of a directory. It is finite
// and not restartable: entries are consumed from the underlying handle
// as Next is called. After Next returns an error, whether further calls
// make progress follows the underlying directory handle's own contract;
// no stronger guarantee is made.
type Dir struct {
	file *os.File
	path string
}

// OpenDir opens the named directory for iteration.
func OpenDir(name string) (*Dir, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, wrapPath(OpReadDir, name, err)
	}
	return &Dir{file: f, path: name}, nil
}

// Path returns the path the directory was opened with.
func (d *Dir) Path() string { return d.path }

// Next returns the next entry of the directory. At the end of the
// directory it returns io.EOF; any other failure to advance is wrapped
// with the directory's own path.
func (d *Dir) Next() (DirEntry, error) {
	entries, err := d.file.ReadDir(1)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return DirEntry{}, io.EOF
		}
		return DirEntry{}, wrapPath(OpReadDirEnt, d.path, err)
	}
	return DirEntry{dir: d.path, entry: entries[0]}, nil
}

// Close releases the directory handle.
func (d *Dir) Close() error {
	if err := d.file.Close(); err != nil {
		return wrapPath(OpClose, d.path, err)
	}
	return nil
}

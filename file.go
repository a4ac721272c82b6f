package errfs

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// File wraps an *os.File together with the path it was opened with, so
// every failure on the handle can name both the operation and the path.
// File implements io.Reader, io.Writer, io.Seeker, io.ReaderAt,
// io.WriterAt and io.Closer, and owns the handle exclusively: Close
// releases it exactly once, as the underlying handle would.
type File struct {
	file *os.File
	path string
}

// Open opens the named file for reading.
func Open(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, wrapPath(OpOpenFile, name, err)
	}
	return &File{file: f, path: name}, nil
}

// Create creates or truncates the named file.
func Create(name string) (*File, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, wrapPath(OpCreateFile, name, err)
	}
	return &File{file: f, path: name}, nil
}

// OpenFile is the generalized open call, mirroring os.OpenFile.
func OpenFile(name string, flag int, perm fs.FileMode) (*File, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, wrapPath(OpOpenFile, name, err)
	}
	return &File{file: f, path: name}, nil
}

// CreateTemp creates a new temporary file in dir and opens it for reading
// and writing. The failure context carries dir; the success path of the
// returned File is the generated file name.
func CreateTemp(dir, pattern string) (*File, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, wrapPath(OpCreateTemp, dir, err)
	}
	return &File{file: f, path: f.Name()}, nil
}

// FromFile adopts an already-open handle. When the handle carries no name,
// future errors fall back to the unknown-path label rather than failing;
// losing context is deliberate, losing the handle is not.
func FromFile(f *os.File) *File {
	path := f.Name()
	if path == "" {
		path = UnknownPathLabel()
	}
	return &File{file: f, path: path}
}

// Name returns the name of the file as presented to Open.
func (f *File) Name() string { return f.file.Name() }

// Path returns the path captured when the File was constructed.
func (f *File) Path() string { return f.path }

// Sys returns the underlying *os.File. Calls made directly on it bypass
// the error context added by this package.
func (f *File) Sys() *os.File { return f.file }

func (f *File) wrap(op Op, err error) error {
	return wrapPath(op, f.path, err)
}

// Read reads up to len(p) bytes from the File. io.EOF passes through
// untouched; it is a sentinel, not a failure.
func (f *File) Read(p []byte) (int, error) {
	n, err := f.file.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, f.wrap(OpRead, err)
	}
	return n, err
}

// ReadAt reads len(p) bytes from the File starting at byte offset off.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	n, err := f.file.ReadAt(p, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, f.wrap(OpReadAt, err)
	}
	return n, err
}

// Write writes len(p) bytes from p to the File.
func (f *File) Write(p []byte) (int, error) {
	n, err := f.file.Write(p)
	if err != nil {
		return n, f.wrap(OpWrite, err)
	}
	return n, nil
}

// WriteAt writes len(p) bytes to the File starting at byte offset off.
func (f *File) WriteAt(p []byte, off int64) (int, error) {
	n, err := f.file.WriteAt(p, off)
	if err != nil {
		return n, f.wrap(OpWriteAt, err)
	}
	return n, nil
}

// WriteString writes the contents of s to the File.
func (f *File) WriteString(s string) (int, error) {
	n, err := f.file.WriteString(s)
	if err != nil {
		return n, f.wrap(OpWrite, err)
	}
	return n, nil
}

// Seek sets the offset for the next Read or Write on the File.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	pos, err := f.file.Seek(offset, whence)
	if err != nil {
		return pos, f.wrap(OpSeek, err)
	}
	return pos, nil
}

// Close closes the File, rendering it unusable for I/O.
func (f *File) Close() error {
	if err := f.file.Close(); err != nil {
		return f.wrap(OpClose, err)
	}
	return nil
}

// Sync commits the current contents of the File to stable storage.
func (f *File) Sync() error {
	if err := f.file.Sync(); err != nil {
		return f.wrap(OpSync, err)
	}
	return nil
}

// Truncate changes the size of the File.
func (f *File) Truncate(size int64) error {
	if err := f.file.Truncate(size); err != nil {
		return f.wrap(OpTruncate, err)
	}
	return nil
}

// Stat returns the FileInfo structure describing the File.
func (f *File) Stat() (fs.FileInfo, error) {
	info, err := f.file.Stat()
	if err != nil {
		return nil, f.wrap(OpStat, err)
	}
	return info, nil
}

// Chmod changes the mode of the File.
func (f *File) Chmod(mode fs.FileMode) error {
	if err := f.file.Chmod(mode); err != nil {
		return f.wrap(OpChmod, err)
	}
	return nil
}

// ReadDir reads the contents of the directory associated with the File
// and returns up to n entries, mirroring the batching and io.EOF contract
// of (*os.File).ReadDir.
func (f *File) ReadDir(n int) ([]DirEntry, error) {
	entries, err := f.file.ReadDir(n)
	wrapped := wrapEntries(f.path, entries)
	if err != nil && !errors.Is(err, io.EOF) {
		return wrapped, f.wrap(OpReadDirEnt, err)
	}
	return wrapped, err
}

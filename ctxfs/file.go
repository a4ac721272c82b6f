package ctxfs

import (
	"context"
	"io/fs"

	"github.com/gobeaver/errfs"
)

// File mirrors errfs.File with context-taking methods. It owns the
// underlying handle exclusively; Close releases it exactly once.
type File struct {
	f *errfs.File
}

// Open opens the named file for reading.
func Open(ctx context.Context, name string) (*File, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	f, err := errfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// Create creates or truncates the named file.
func Create(ctx context.Context, name string) (*File, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	f, err := errfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// CreateTemp creates a new temporary file in dir and opens it for
// reading and writing.
func CreateTemp(ctx context.Context, dir, pattern string) (*File, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	f, err := errfs.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// OpenFile is the generalized open call, mirroring errfs.OpenFile.
func OpenFile(ctx context.Context, name string, flag int, perm fs.FileMode) (*File, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	f, err := errfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// Name returns the name of the file as presented to Open.
func (f *File) Name() string { return f.f.Name() }

// Path returns the path captured when the File was constructed.
func (f *File) Path() string { return f.f.Path() }

// Sys returns the underlying errfs.File.
func (f *File) Sys() *errfs.File { return f.f }

// Read reads up to len(p) bytes from the File.
func (f *File) Read(ctx context.Context, p []byte) (int, error) {
	if err := ready(ctx); err != nil {
		return 0, err
	}
	return f.f.Read(p)
}

// ReadAt reads len(p) bytes starting at byte offset off.
func (f *File) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := ready(ctx); err != nil {
		return 0, err
	}
	return f.f.ReadAt(p, off)
}

// Write writes len(p) bytes from p to the File.
func (f *File) Write(ctx context.Context, p []byte) (int, error) {
	if err := ready(ctx); err != nil {
		return 0, err
	}
	return f.f.Write(p)
}

// WriteAt writes len(p) bytes starting at byte offset off.
func (f *File) WriteAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := ready(ctx); err != nil {
		return 0, err
	}
	return f.f.WriteAt(p, off)
}

// WriteString writes the contents of s to the File.
func (f *File) WriteString(ctx context.Context, s string) (int, error) {
	if err := ready(ctx); err != nil {
		return 0, err
	}
	return f.f.WriteString(s)
}

// Seek sets the offset for the next Read or Write on the File.
func (f *File) Seek(ctx context.Context, offset int64, whence int) (int64, error) {
	if err := ready(ctx); err != nil {
		return 0, err
	}
	return f.f.Seek(offset, whence)
}

// Sync commits the current contents of the File to stable storage.
func (f *File) Sync(ctx context.Context) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return f.f.Sync()
}

// Truncate changes the size of the File.
func (f *File) Truncate(ctx context.Context, size int64) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return f.f.Truncate(size)
}

// Stat returns the FileInfo structure describing the File.
func (f *File) Stat(ctx context.Context) (fs.FileInfo, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	return f.f.Stat()
}

// Chmod changes the mode of the File.
func (f *File) Chmod(ctx context.Context, mode fs.FileMode) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return f.f.Chmod(mode)
}

// ReadDir reads the contents of the directory associated with the File
// and returns up to n entries, mirroring the batching and io.EOF
// contract of (*errfs.File).ReadDir.
func (f *File) ReadDir(ctx context.Context, n int) ([]errfs.DirEntry, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	return f.f.ReadDir(n)
}

// Close closes the File. It takes no context: releasing the handle must
// happen regardless of cancellation.
func (f *File) Close() error {
	return f.f.Close()
}

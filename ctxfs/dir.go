package ctxfs

import (
	"context"

	"github.com/gobeaver/errfs"
)

// Dir mirrors errfs.Dir with a context-taking Next.
type Dir struct {
	d *errfs.Dir
}

// OpenDir opens the named directory for iteration.
func OpenDir(ctx context.Context, name string) (*Dir, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	d, err := errfs.OpenDir(name)
	if err != nil {
		return nil, err
	}
	return &Dir{d: d}, nil
}

// Path returns the path the directory was opened with.
func (d *Dir) Path() string { return d.d.Path() }

// Next returns the next entry of the directory, io.EOF at the end.
func (d *Dir) Next(ctx context.Context) (errfs.DirEntry, error) {
	if err := ready(ctx); err != nil {
		return errfs.DirEntry{}, err
	}
	return d.d.Next()
}

// Close releases the directory handle. It takes no context: releasing
// the handle must happen regardless of cancellation.
func (d *Dir) Close() error {
	return d.d.Close()
}

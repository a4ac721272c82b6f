package ctxfs

import (
	"context"
	"io/fs"

	"github.com/gobeaver/errfs"
)

// OpenOptions mirrors errfs.OpenOptions with a context-taking terminal
// Open.
type OpenOptions struct {
	o *errfs.OpenOptions
}

// NewOpenOptions returns a builder with read access and mode 0o666.
func NewOpenOptions() *OpenOptions {
	return &OpenOptions{o: errfs.NewOpenOptions()}
}

func (o *OpenOptions) Read(read bool) *OpenOptions           { o.o.Read(read); return o }
func (o *OpenOptions) Write(write bool) *OpenOptions         { o.o.Write(write); return o }
func (o *OpenOptions) Append(append bool) *OpenOptions       { o.o.Append(append); return o }
func (o *OpenOptions) Create(create bool) *OpenOptions       { o.o.Create(create); return o }
func (o *OpenOptions) CreateNew(createNew bool) *OpenOptions { o.o.CreateNew(createNew); return o }
func (o *OpenOptions) Truncate(truncate bool) *OpenOptions   { o.o.Truncate(truncate); return o }

// Perm sets the permission bits used when the open creates the file.
func (o *OpenOptions) Perm(perm fs.FileMode) *OpenOptions {
	o.o.Perm(perm)
	return o
}

// Open opens the named file with the configured options.
func (o *OpenOptions) Open(ctx context.Context, name string) (*File, error) {
	if err := ready(ctx); err != nil {
		return nil, err
	}
	f, err := o.o.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// DirBuilder mirrors errfs.DirBuilder with a context-taking terminal
// Create.
type DirBuilder struct {
	b *errfs.DirBuilder
}

// NewDirBuilder returns a builder that creates a single directory with
// mode 0o755.
func NewDirBuilder() *DirBuilder {
	return &DirBuilder{b: errfs.NewDirBuilder()}
}

func (b *DirBuilder) Recursive(recursive bool) *DirBuilder { b.b.Recursive(recursive); return b }

// Mode sets the permission bits for created directories.
func (b *DirBuilder) Mode(mode fs.FileMode) *DirBuilder {
	b.b.Mode(mode)
	return b
}

// Create creates the directory described by path.
func (b *DirBuilder) Create(ctx context.Context, path string) error {
	if err := ready(ctx); err != nil {
		return err
	}
	return b.b.Create(path)
}

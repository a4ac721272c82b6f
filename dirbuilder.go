package errfs

import (
	"io/fs"
	"os"
)

// DirBuilder is a builder for creating directories, mirroring the
// recursive/non-recursive knob of os.Mkdir versus os.MkdirAll.
type DirBuilder struct {
	recursive bool
	mode      fs.FileMode
}

// NewDirBuilder returns a builder that creates a single directory with
// mode 0o755.
func NewDirBuilder() *DirBuilder {
	return &DirBuilder{mode: 0o755}
}

// Recursive sets whether missing parent directories are created as well.
func (b *DirBuilder) Recursive(recursive bool) *DirBuilder {
	b.recursive = recursive
	return b
}

// Mode sets the permission bits for created directories.
func (b *DirBuilder) Mode(mode fs.FileMode) *DirBuilder {
	b.mode = mode
	return b
}

// Create creates the directory described by path.
func (b *DirBuilder) Create(path string) error {
	var err error
	if b.recursive {
		err = os.MkdirAll(path, b.mode)
	} else {
		err = os.Mkdir(path, b.mode)
	}
	if err != nil {
		return wrapPath(OpMkdir, path, err)
	}
	return nil
}

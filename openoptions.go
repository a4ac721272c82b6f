package errfs

import (
	"io/fs"
	"os"
)

// OpenOptions is a builder for opening a file, mirroring the flag surface
// of os.OpenFile. The zero value opens for reading with mode 0o666; each
// setter takes the desired state and returns the builder for chaining.
type OpenOptions struct {
	read      bool
	write     bool
	append    bool
	create    bool
	createNew bool
	truncate  bool
	perm      fs.FileMode
}

// NewOpenOptions returns a builder with read access and mode 0o666.
func NewOpenOptions() *OpenOptions {
	return &OpenOptions{read: true, perm: 0o666}
}

// Read sets the option for read access.
func (o *OpenOptions) Read(read bool) *OpenOptions {
	o.read = read
	return o
}

// Write sets the option for write access.
func (o *OpenOptions) Write(write bool) *OpenOptions {
	o.write = write
	return o
}

// Append sets the option for append mode. Append implies write access.
func (o *OpenOptions) Append(append bool) *OpenOptions {
	o.append = append
	return o
}

// Create sets the option to create the file if it does not exist.
func (o *OpenOptions) Create(create bool) *OpenOptions {
	o.create = create
	return o
}

// CreateNew sets the option to create the file, failing if it already
// exists.
func (o *OpenOptions) CreateNew(createNew bool) *OpenOptions {
	o.createNew = createNew
	return o
}

// Truncate sets the option to truncate the file to zero length on open.
func (o *OpenOptions) Truncate(truncate bool) *OpenOptions {
	o.truncate = truncate
	return o
}

// Perm sets the permission bits used when the open creates the file.
func (o *OpenOptions) Perm(perm fs.FileMode) *OpenOptions {
	o.perm = perm
	return o
}

// Flag returns the os.OpenFile flag the builder currently describes.
func (o *OpenOptions) Flag() int {
	var flag int
	switch {
	case o.read && (o.write || o.append):
		flag = os.O_RDWR
	case o.write || o.append:
		flag = os.O_WRONLY
	default:
		flag = os.O_RDONLY
	}
	if o.append {
		flag |= os.O_APPEND
	}
	if o.create {
		flag |= os.O_CREATE
	}
	if o.createNew {
		flag |= os.O_CREATE | os.O_EXCL
	}
	if o.truncate {
		flag |= os.O_TRUNC
	}
	return flag
}

// Open opens the named file with the configured options.
func (o *OpenOptions) Open(name string) (*File, error) {
	return OpenFile(name, o.Flag(), o.perm)
}

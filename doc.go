// Package errfs is a drop-in layer over the os package that attaches the
// attempted operation and the involved path(s) to every filesystem error.
//
// The error the os package gives you for a failed open is terse:
//
//	open config.json: no such file or directory
//
// Going through errfs instead, the same failure names what was being done
// and to what:
//
//	failed to open file 'config.json': no such file or directory
//
// Two-path operations always name both sides:
//
//	failed to rename file 'missing.txt' to 'dest.txt': no such file or directory
//
// # Usage
//
// Every wrapper keeps the signature of its os counterpart, so switching
// is a matter of substituting the entry points:
//
//	// data, err := os.ReadFile("foo.txt")
//	data, err := errfs.ReadFile("foo.txt")
//
//	f, err := errfs.Open("my-config.json")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
// [File] implements io.Reader, io.Writer and io.Seeker, so it composes
// with everything that consumes those, and failures surfacing through
// such consumers still carry the file's path.
//
// # Error classification
//
// Success values, side effects and error classification are exactly those
// of the wrapped primitive. Matching with the errors package behaves as
// if os had been called directly:
//
//	err := errfs.Rename("missing.txt", "dest.txt")
//	errors.Is(err, fs.ErrNotExist) // true, same as with os.Rename
//
// The bare cause is always recoverable via [Underlying]. Setting
// BEAVER_ERRFS_EXPOSE_ORIGINAL_ERROR (or calling
// [SetExposeOriginalError]) drops the cause from rendered messages for
// consumers that already print the error chain.
//
// # Context-aware mirror
//
// The ctxfs subpackage mirrors the whole surface with context.Context
// parameters; a context cancelled before the call starts is returned
// bare, never wrapped.
package errfs

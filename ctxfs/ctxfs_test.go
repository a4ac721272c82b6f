package ctxfs

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/gobeaver/errfs"
)

func TestCancelledContextReturnsBareError(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "present.txt")
	if err := WriteFile(context.Background(), name, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		call func() error
	}{
		{"ReadFile", func() error { _, err := ReadFile(ctx, name); return err }},
		{"WriteFile", func() error { return WriteFile(ctx, name, nil, 0o644) }},
		{"Stat", func() error { _, err := Stat(ctx, name); return err }},
		{"Rename", func() error { return Rename(ctx, name, name+".new") }},
		{"Remove", func() error { return Remove(ctx, name) }},
		{"ReadDir", func() error { _, err := ReadDir(ctx, dir); return err }},
		{"Open", func() error { _, err := Open(ctx, name); return err }},
		{"CreateTemp", func() error { _, err := CreateTemp(ctx, dir, "tmp-*"); return err }},
		{"OpenDir", func() error { _, err := OpenDir(ctx, dir); return err }},
		{"Checksum", func() error { _, err := Checksum(ctx, name, errfs.ChecksumSHA256); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, context.Canceled) {
				t.Fatalf("error = %v, want context.Canceled", err)
			}
			// Cancellation is not a wrapped failure: no operation/path
			// context may be attached.
			var e *errfs.Error
			if errors.As(err, &e) {
				t.Errorf("cancellation was wrapped: %v", err)
			}
		})
	}

	// The file must be untouched: a done context means the operation
	// never started.
	got, err := ReadFile(context.Background(), name)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "x" {
		t.Errorf("contents = %q, want %q", got, "x")
	}
}

func TestSuccessMatchesBlockingSurface(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	name := filepath.Join(dir, "data.txt")
	payload := []byte("mirrored")

	if err := WriteFile(ctx, name, payload, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(ctx, name)
	if err != nil {
		t.Fatal(err)
	}
	want, err := errfs.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Error("ctxfs result diverges from errfs")
	}
}

func TestFailureContextMatchesBlockingSurface(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	src := filepath.Join(dir, "missing.txt")
	dst := filepath.Join(dir, "dest.txt")

	err := Rename(ctx, src, dst)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("classification = %v, want fs.ErrNotExist", err)
	}
	var e *errfs.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %T is not *errfs.Error", err)
	}
	if e.Op != errfs.OpRename || e.Path != src || e.Dest != dst {
		t.Errorf("context = %+v, want rename %q -> %q", e, src, dst)
	}
}

func TestFileMirror(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	name := filepath.Join(dir, "file.txt")

	f, err := Create(ctx, name)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != name {
		t.Errorf("Name = %q, want %q", f.Name(), name)
	}
	if _, err := f.WriteString(ctx, "hello"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Seek(ctx, 0, 0); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 5)
	if _, err := f.Read(ctx, buf); err != nil {
		t.Fatal(err)
	}
	if string(buf) != "hello" {
		t.Errorf("read back %q", buf)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := f.Read(cancelled, buf); !errors.Is(err, context.Canceled) {
		t.Errorf("Read with done context = %v, want context.Canceled", err)
	}

	// Close ignores cancellation: the handle must be released exactly once.
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDirMirror(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	for _, name := range []string{"a", "b"} {
		if err := WriteFile(ctx, filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	d, err := OpenDir(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	count := 0
	for {
		_, err := d.Next(ctx)
		if err != nil {
			break
		}
		count++
	}
	if count != 2 {
		t.Errorf("iterated %d entries, want 2", count)
	}
}

func TestFileReadDirMirror(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		if err := WriteFile(ctx, filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	f, err := Open(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	total := 0
	for {
		batch, err := f.ReadDir(ctx, 2)
		total += len(batch)
		if err != nil {
			break
		}
	}
	if total != 3 {
		t.Errorf("read %d entries, want 3", total)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := f.ReadDir(cancelled, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadDir with done context = %v, want context.Canceled", err)
	}
}

func TestBuilders(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	nested := filepath.Join(dir, "p", "q")
	if err := NewDirBuilder().Recursive(true).Mode(0o755).Create(ctx, nested); err != nil {
		t.Fatal(err)
	}

	name := filepath.Join(nested, "built.txt")
	f, err := NewOpenOptions().Write(true).Create(true).Open(ctx, name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString(ctx, "ok"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := NewDirBuilder().Create(cancelled, filepath.Join(dir, "never")); !errors.Is(err, context.Canceled) {
		t.Errorf("Create with done context = %v, want context.Canceled", err)
	}
}

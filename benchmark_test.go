package errfs

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func BenchmarkWrapError(b *testing.B) {
	for i := 0; i < b.N; i++ {
		err := wrapPath(OpOpenFile, "bench.txt", syscall.ENOENT)
		_ = err.Error()
	}
}

func BenchmarkReadFile(b *testing.B) {
	dir := b.TempDir()
	name := filepath.Join(dir, "bench.bin")
	if err := os.WriteFile(name, make([]byte, 4096), 0o644); err != nil {
		b.Fatal(err)
	}

	b.Run("os", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := os.ReadFile(name); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("errfs", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := ReadFile(name); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkStatMissing(b *testing.B) {
	dir := b.TempDir()
	name := filepath.Join(dir, "missing")

	for i := 0; i < b.N; i++ {
		if _, err := Stat(name); err == nil {
			b.Fatal("expected error")
		}
	}
}

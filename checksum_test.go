package errfs

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestChecksum(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "hello.txt")
	if err := WriteFile(name, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		algorithm ChecksumAlgorithm
		want      string
	}{
		{ChecksumMD5, "5d41402abc4b2a76b9719d911017c592"},
		{ChecksumSHA1, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
		{ChecksumSHA256, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			got, err := Checksum(name, tt.algorithm)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Checksum = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestChecksumsSinglePass(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "multi.txt")
	if err := WriteFile(name, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	algos := []ChecksumAlgorithm{ChecksumSHA256, ChecksumCRC32, ChecksumXXHash}
	got, err := Checksums(name, algos...)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(algos) {
		t.Fatalf("len(results) = %d, want %d", len(got), len(algos))
	}
	for _, algo := range algos {
		single, err := Checksum(name, algo)
		if err != nil {
			t.Fatal(err)
		}
		if got[algo] != single {
			t.Errorf("%s: single-pass %s != %s", algo, got[algo], single)
		}
	}
}

func TestChecksumErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Checksum(filepath.Join(dir, "missing.bin"), ChecksumSHA256)
	if !IsNotExist(err) {
		t.Errorf("missing file = %v, want not-exist classification", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Op != OpChecksum {
		t.Errorf("missing file = %v, want checksum context", err)
	}

	name := filepath.Join(dir, "data.bin")
	if err := WriteFile(name, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Checksum(name, ChecksumAlgorithm("whirlpool")); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("unknown algorithm = %v, want ErrUnsupportedAlgorithm", err)
	}
}

func TestVerifyChecksum(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "verify.txt")
	if err := WriteFile(name, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	ok, err := VerifyChecksum(name, "5d41402abc4b2a76b9719d911017c592", ChecksumMD5)
	if err != nil || !ok {
		t.Errorf("VerifyChecksum(match) = %v, %v", ok, err)
	}
	ok, err = VerifyChecksum(name, "deadbeef", ChecksumMD5)
	if err != nil || ok {
		t.Errorf("VerifyChecksum(mismatch) = %v, %v", ok, err)
	}
}

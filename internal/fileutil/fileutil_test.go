package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReplaceOverwritesDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "007_override.bm")
	dst := filepath.Join(dir, "007.bm")
	writeFile(t, src, "override bytes")
	writeFile(t, dst, "canonical bytes")

	if err := Replace(src, dst); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "override bytes" {
		t.Fatalf("content mismatch: got %q", got)
	}
	if _, err := os.Stat(src); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected source to be gone, stat err=%v", err)
	}
}

func TestReplaceMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := Replace(filepath.Join(dir, "007_new.bd"), filepath.Join(dir, "007.bd"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestReplacePropagatesOtherRenameErrors(t *testing.T) {
	orig := renameFunc
	t.Cleanup(func() { renameFunc = orig })
	boom := errors.New("permission denied")
	renameFunc = func(string, string) error { return boom }

	if err := Replace("a", "b"); !errors.Is(err, boom) {
		t.Fatalf("expected rename error, got %v", err)
	}
}

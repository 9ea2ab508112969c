package testsupport

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// WriteContent creates name inside dir with the given content.
func WriteContent(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadContent returns the content of name inside dir.
func ReadContent(t testing.TB, dir, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

// AssertMissing fails the test when name exists inside dir.
func AssertMissing(t testing.TB, dir, name string) {
	t.Helper()

	if _, err := os.Stat(filepath.Join(dir, name)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected %s to be absent (stat err=%v)", name, err)
	}
}

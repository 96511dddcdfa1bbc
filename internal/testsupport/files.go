package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to root/rel, creating parent directories. rel is
// slash separated.
func WriteFile(t testing.TB, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// RemovePath deletes root/rel and everything below it.
func RemovePath(t testing.TB, root, rel string) {
	t.Helper()

	if err := os.RemoveAll(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
		t.Fatalf("remove %s: %v", rel, err)
	}
}

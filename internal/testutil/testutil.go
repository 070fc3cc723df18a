// Package testutil provides testing utilities shared across kanri tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupProjectsRoot creates a temporary projects root containing the given
// project directories. The root is automatically cleaned up when the test
// completes.
func SetupProjectsRoot(t *testing.T, projects ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, name := range projects {
		if err := os.Mkdir(filepath.Join(root, name), 0755); err != nil {
			t.Fatalf("failed to create project %q: %v", name, err)
		}
	}
	return root
}

// WriteFile writes a file under root, failing the test on error.
func WriteFile(t *testing.T, root, name, content string) string {
	t.Helper()

	path := filepath.Join(root, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %q: %v", name, err)
	}
	return path
}

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"buildprint/internal/config"
)

// isolateCLI points HOME and the working directory at temp dirs and clears
// BUILDPRINT_* overrides so user configuration cannot leak into tests.
func isolateCLI(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, key := range []string{"THEME_ROOT", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE"} {
		t.Setenv(config.EnvPrefix+key, "")
		os.Unsetenv(config.EnvPrefix + key)
	}
}

func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}

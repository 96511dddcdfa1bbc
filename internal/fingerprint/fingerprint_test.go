package fingerprint_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"buildprint/internal/fingerprint"
	"buildprint/internal/testsupport"
)

func TestComputeKnownVector(t *testing.T) {
	root := testsupport.NewTheme(t)

	got, err := fingerprint.Compute(context.Background(), root)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	sum := sha256.Sum256([]byte("A" + "" + "B" + "1" + "2"))
	if want := hex.EncodeToString(sum[:]); got != want {
		t.Fatalf("unexpected fingerprint: got %s want %s", got, want)
	}
	const want = "8e14c15eb357ca7beca7453abc73634187484300c58c10b002b24e5180757461"
	if got != want {
		t.Fatalf("unexpected fingerprint: %s", got)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	root := testsupport.NewTheme(t, testsupport.WithTemplates(map[string]string{
		"z.html":          "z",
		"a/b.html":        "ab",
		"pages/home.html": "home",
		"m.html":          "m",
	}))

	first, err := fingerprint.Compute(context.Background(), root)
	if err != nil {
		t.Fatalf("first Compute: %v", err)
	}
	second, err := fingerprint.Compute(context.Background(), root)
	if err != nil {
		t.Fatalf("second Compute: %v", err)
	}
	if first != second {
		t.Fatalf("fingerprints differ: %s vs %s", first, second)
	}
}

func TestComputeFormat(t *testing.T) {
	root := testsupport.NewTheme(t, testsupport.WithPostCSSConfig("module.exports = {}"))

	got, err := fingerprint.Compute(context.Background(), root)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 characters, got %d (%q)", len(got), got)
	}
	if strings.ToLower(got) != got {
		t.Fatalf("expected lowercase hex, got %q", got)
	}
	if !fingerprint.Valid(got) {
		t.Fatalf("Valid(%q) = false", got)
	}
}

func TestComputeSwappedTemplateContentChangesDigest(t *testing.T) {
	ordered := testsupport.NewTheme(t)
	swapped := testsupport.NewTheme(t, testsupport.WithTemplates(map[string]string{
		"a.html": "2",
		"b.html": "1",
	}))

	a, err := fingerprint.Compute(context.Background(), ordered)
	if err != nil {
		t.Fatalf("Compute ordered: %v", err)
	}
	b, err := fingerprint.Compute(context.Background(), swapped)
	if err != nil {
		t.Fatalf("Compute swapped: %v", err)
	}
	if a == b {
		t.Fatalf("expected swapped template content to change the fingerprint, both %s", a)
	}
	const wantSwapped = "4e6f005fb16dee2dda007e2c07454dddded52e110bed974f2c2f777d2e46b195"
	if b != wantSwapped {
		t.Fatalf("unexpected swapped fingerprint: %s", b)
	}
}

func TestComputeRenameChangingSortOrderChangesDigest(t *testing.T) {
	original := testsupport.NewTheme(t)
	renamed := testsupport.NewTheme(t, testsupport.WithTemplates(map[string]string{
		"c.html": "1",
		"b.html": "2",
	}))

	a, err := fingerprint.Compute(context.Background(), original)
	if err != nil {
		t.Fatalf("Compute original: %v", err)
	}
	b, err := fingerprint.Compute(context.Background(), renamed)
	if err != nil {
		t.Fatalf("Compute renamed: %v", err)
	}
	if a == b {
		t.Fatalf("expected rename to change the fingerprint, both %s", a)
	}
}

func TestComputeOptionalAbsentEqualsEmpty(t *testing.T) {
	absent := testsupport.NewTheme(t)
	empty := testsupport.NewTheme(t, testsupport.WithPostCSSConfig(""))
	filled := testsupport.NewTheme(t, testsupport.WithPostCSSConfig("plugins"))

	a, err := fingerprint.Compute(context.Background(), absent)
	if err != nil {
		t.Fatalf("Compute absent: %v", err)
	}
	e, err := fingerprint.Compute(context.Background(), empty)
	if err != nil {
		t.Fatalf("Compute empty: %v", err)
	}
	f, err := fingerprint.Compute(context.Background(), filled)
	if err != nil {
		t.Fatalf("Compute filled: %v", err)
	}
	if a != e {
		t.Fatalf("absent postcss config should equal empty one: %s vs %s", a, e)
	}
	if a == f {
		t.Fatal("non-empty postcss config should change the fingerprint")
	}
}

func TestComputeNestedTemplatesSortedByPath(t *testing.T) {
	root := testsupport.NewTheme(t, testsupport.WithTemplates(map[string]string{
		"b.html":          "4",
		"a/z.html":        "2",
		"a/b/c.html":      "1",
		"a-b/a.html":      "3",
		"ignored.txt":     "x",
		"partials/x.htm":  "y",
		"partials/y.html": "5",
	}))

	got, err := fingerprint.Compute(context.Background(), root)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	sum := sha256.Sum256([]byte("AB" + "12345"))
	if want := hex.EncodeToString(sum[:]); got != want {
		t.Fatalf("unexpected fingerprint: got %s want %s", got, want)
	}
}

func TestComputeMissingRequiredInputs(t *testing.T) {
	tests := []struct {
		name     string
		remove   string
		mutate   func(t *testing.T, root string)
		wantPath string
		wantMsg  string
	}{
		{
			name:     "tailwind config",
			remove:   testsupport.TailwindConfig,
			wantPath: testsupport.TailwindConfig,
			wantMsg:  "required file not found",
		},
		{
			name:     "input css",
			remove:   testsupport.InputCSS,
			wantPath: testsupport.InputCSS,
			wantMsg:  "required file not found",
		},
		{
			name:     "templates directory",
			remove:   testsupport.TemplatesDir,
			wantPath: testsupport.TemplatesDir,
			wantMsg:  "templates directory not found",
		},
		{
			name: "templates without matches",
			mutate: func(t *testing.T, root string) {
				testsupport.RemovePath(t, root, testsupport.TemplatesDir)
				testsupport.WriteFile(t, root, testsupport.TemplatesDir+"/notes.txt", "not a template")
			},
			wantPath: testsupport.TemplatesDir,
			wantMsg:  "no .html templates found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testsupport.NewTheme(t)
			if tt.remove != "" {
				testsupport.RemovePath(t, root, tt.remove)
			}
			if tt.mutate != nil {
				tt.mutate(t, root)
			}

			got, err := fingerprint.Compute(context.Background(), root)
			if err == nil {
				t.Fatalf("expected error, got fingerprint %s", got)
			}
			if got != "" {
				t.Fatalf("expected no fingerprint on failure, got %s", got)
			}
			if !errors.Is(err, fingerprint.ErrMissingInput) {
				t.Fatalf("expected ErrMissingInput, got %v", err)
			}
			var missing *fingerprint.MissingInputError
			if !errors.As(err, &missing) {
				t.Fatalf("expected *MissingInputError, got %T", err)
			}
			wantPath := filepath.Join(root, filepath.FromSlash(tt.wantPath))
			if missing.Path != wantPath {
				t.Fatalf("unexpected path: got %q want %q", missing.Path, wantPath)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("expected %q in error, got %q", tt.wantMsg, err.Error())
			}
			if missing.Hint() == "" {
				t.Fatal("expected a corrective hint")
			}
		})
	}
}

func TestComputeDoesNotWrite(t *testing.T) {
	root := testsupport.NewTheme(t)
	before := snapshotTree(t, root)

	if _, err := fingerprint.Compute(context.Background(), root); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	after := snapshotTree(t, root)
	if len(before) != len(after) {
		t.Fatalf("tree changed: %v vs %v", before, after)
	}
	for path, content := range before {
		if after[path] != content {
			t.Fatalf("file %s changed", path)
		}
	}
}

func TestComputeUnreadableTemplateIsUnexpected(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	root := testsupport.NewTheme(t)
	path := filepath.Join(root, "templates", "a.html")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })

	got, err := fingerprint.Compute(context.Background(), root)
	if err == nil {
		t.Fatalf("expected error, got %s", got)
	}
	if errors.Is(err, fingerprint.ErrMissingInput) {
		t.Fatalf("permission failure should not be a missing input: %v", err)
	}
}

func TestComputeCanceled(t *testing.T) {
	root := testsupport.NewTheme(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := fingerprint.Compute(ctx, root); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestResolveManifestOrder(t *testing.T) {
	root := testsupport.NewTheme(t, testsupport.WithTemplates(map[string]string{
		"b.html":   "b",
		"a/z.html": "z",
	}))

	manifest, err := fingerprint.Resolve(context.Background(), root)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []struct {
		rel     string
		role    fingerprint.Role
		present bool
	}{
		{"tailwind/tailwind.config.js", fingerprint.RoleBuildConfig, true},
		{"tailwind/postcss.config.js", fingerprint.RolePostCSSConfig, false},
		{"static/theme_a/css/input.css", fingerprint.RoleStylesheet, true},
		{"templates/a/z.html", fingerprint.RoleTemplates, true},
		{"templates/b.html", fingerprint.RoleTemplates, true},
	}
	if len(manifest.Entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(manifest.Entries))
	}
	for i, w := range want {
		got := manifest.Entries[i]
		if got.Rel != w.rel || got.Input.Role != w.role || got.Present != w.present {
			t.Fatalf("entry %d: got {%s %s %v} want {%s %s %v}", i, got.Rel, got.Input.Role, got.Present, w.rel, w.role, w.present)
		}
	}
	if manifest.Entries[3].Size != 1 {
		t.Fatalf("unexpected template size: %d", manifest.Entries[3].Size)
	}
}

func TestValid(t *testing.T) {
	tests := map[string]bool{
		strings.Repeat("a", 64):        true,
		strings.Repeat("0", 63) + "f":  true,
		strings.Repeat("A", 64):        false,
		strings.Repeat("a", 63):        false,
		strings.Repeat("a", 63) + "g":  false,
		strings.Repeat("a", 64) + "\n": false,
		"":                             false,
	}
	for value, want := range tests {
		if got := fingerprint.Valid(value); got != want {
			t.Fatalf("Valid(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestContentAbsentIsEmpty(t *testing.T) {
	absent := fingerprint.Absent()
	if absent.IsPresent() {
		t.Fatal("absent content reports present")
	}
	if b := absent.Bytes(); b == nil || len(b) != 0 {
		t.Fatalf("expected empty non-nil bytes, got %#v", b)
	}
	present := fingerprint.Present([]byte("x"))
	if !present.IsPresent() || string(present.Bytes()) != "x" {
		t.Fatalf("unexpected present content: %#v", present)
	}
}

func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[path] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	return out
}

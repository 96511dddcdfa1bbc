package testsupport

import (
	"testing"
)

const (
	TailwindConfig = "tailwind/tailwind.config.js"
	PostCSSConfig  = "tailwind/postcss.config.js"
	InputCSS       = "static/theme_a/css/input.css"
	TemplatesDir   = "templates"
)

// ThemeOption customizes the generated theme tree.
type ThemeOption func(*themeBuilder)

type themeBuilder struct {
	tailwind  string
	postcss   *string
	inputCSS  string
	templates map[string]string
}

// NewTheme lays out a minimal, valid theme root under a fresh temp directory
// and returns its path. Without options it writes tailwind.config.js = "A",
// input.css = "B" and templates a.html = "1", b.html = "2", with no postcss
// config.
func NewTheme(t testing.TB, opts ...ThemeOption) string {
	t.Helper()

	b := &themeBuilder{
		tailwind:  "A",
		inputCSS:  "B",
		templates: map[string]string{"a.html": "1", "b.html": "2"},
	}
	for _, opt := range opts {
		opt(b)
	}

	root := t.TempDir()
	WriteFile(t, root, TailwindConfig, b.tailwind)
	if b.postcss != nil {
		WriteFile(t, root, PostCSSConfig, *b.postcss)
	}
	WriteFile(t, root, InputCSS, b.inputCSS)
	for rel, content := range b.templates {
		WriteFile(t, root, TemplatesDir+"/"+rel, content)
	}
	return root
}

// WithTailwindConfig sets the tailwind.config.js content.
func WithTailwindConfig(content string) ThemeOption {
	return func(b *themeBuilder) {
		b.tailwind = content
	}
}

// WithPostCSSConfig writes a postcss.config.js with the given content.
func WithPostCSSConfig(content string) ThemeOption {
	return func(b *themeBuilder) {
		b.postcss = &content
	}
}

// WithInputCSS sets the input.css content.
func WithInputCSS(content string) ThemeOption {
	return func(b *themeBuilder) {
		b.inputCSS = content
	}
}

// WithTemplates replaces the template set. Keys are paths relative to the
// templates directory.
func WithTemplates(templates map[string]string) ThemeOption {
	return func(b *themeBuilder) {
		b.templates = templates
	}
}

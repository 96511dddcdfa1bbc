package fingerprint

import "path"

// Role describes what a declared input contributes to the build.
type Role string

const (
	RoleBuildConfig   Role = "primary build config"
	RolePostCSSConfig Role = "secondary config"
	RoleStylesheet    Role = "primary stylesheet"
	RoleTemplates     Role = "template sources"
)

// Kind controls how an input is resolved and which absences are fatal.
type Kind int

const (
	// KindRequired is a single file that must exist.
	KindRequired Kind = iota
	// KindOptional is a single file whose absence contributes zero bytes.
	KindOptional
	// KindCollection is a directory searched recursively for files with Ext.
	// The directory must exist and hold at least one match.
	KindCollection
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindOptional:
		return "optional"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// Input is one entry of the ordered input set. Path is slash separated and
// relative to the theme root.
type Input struct {
	Role Role
	Path string
	Kind Kind
	Ext  string
	// Hint is shown to the operator when a required input is missing.
	Hint string
}

// Pattern returns the display form of the input, e.g. "templates/**/*.html".
func (in Input) Pattern() string {
	if in.Kind != KindCollection {
		return in.Path
	}
	return path.Join(in.Path, "**", "*"+in.Ext)
}

// Hashing order is part of the fingerprint contract. Reordering this list
// changes every fingerprint.
var inputs = []Input{
	{
		Role: RoleBuildConfig,
		Path: "tailwind/tailwind.config.js",
		Kind: KindRequired,
		Hint: "Cannot generate fingerprint without Tailwind configuration.",
	},
	{
		Role: RolePostCSSConfig,
		Path: "tailwind/postcss.config.js",
		Kind: KindOptional,
	},
	{
		Role: RoleStylesheet,
		Path: "static/theme_a/css/input.css",
		Kind: KindRequired,
		Hint: "Cannot generate fingerprint without Tailwind input CSS.",
	},
	{
		Role: RoleTemplates,
		Path: "templates",
		Kind: KindCollection,
		Ext:  ".html",
		Hint: "Cannot generate fingerprint without template files.",
	},
}

// Inputs returns a copy of the ordered input set.
func Inputs() []Input {
	out := make([]Input, len(inputs))
	copy(out, inputs)
	return out
}

package fingerprint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Content is the byte contribution of a single resolved file. An absent
// optional input is represented explicitly and hashes as zero bytes.
type Content struct {
	data    []byte
	present bool
}

// Present wraps the bytes of a file that exists.
func Present(data []byte) Content {
	return Content{data: data, present: true}
}

// Absent is the contribution of an optional input that does not exist.
func Absent() Content {
	return Content{}
}

// IsPresent reports whether the content came from an existing file.
func (c Content) IsPresent() bool {
	return c.present
}

// Bytes returns the bytes to feed to the accumulator. Absent content resolves
// to an empty slice.
func (c Content) Bytes() []byte {
	if !c.present {
		return []byte{}
	}
	return c.data
}

// Entry is one concrete file in hashing order.
type Entry struct {
	Input Input
	// Rel is the slash-separated path relative to the theme root.
	Rel string
	// Path is the absolute path on disk.
	Path    string
	Present bool
	Size    int64
}

// Manifest is the ordered list of files that make up a fingerprint.
type Manifest struct {
	Root    string
	Entries []Entry
}

// Compute returns the fingerprint for the theme rooted at themeRoot. No digest
// is returned when any required input is missing or unreadable.
func Compute(ctx context.Context, themeRoot string) (string, error) {
	manifest, err := Resolve(ctx, themeRoot)
	if err != nil {
		return "", err
	}
	return Hash(ctx, manifest)
}

// Resolve walks the declared input set and returns the files Compute would
// hash, in hashing order. Template files are fully sorted before they are
// appended.
func Resolve(ctx context.Context, themeRoot string) (Manifest, error) {
	root, err := filepath.Abs(themeRoot)
	if err != nil {
		return Manifest{}, fmt.Errorf("resolve theme root: %w", err)
	}

	manifest := Manifest{Root: root}
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return Manifest{}, err
		}

		var entries []Entry
		switch in.Kind {
		case KindRequired, KindOptional:
			entry, err := resolveFile(root, in)
			if err != nil {
				return Manifest{}, err
			}
			entries = []Entry{entry}
		case KindCollection:
			entries, err = resolveCollection(ctx, root, in)
			if err != nil {
				return Manifest{}, err
			}
		default:
			return Manifest{}, fmt.Errorf("input %s: unsupported kind %d", in.Path, in.Kind)
		}
		manifest.Entries = append(manifest.Entries, entries...)
	}
	return manifest, nil
}

// Hash feeds every manifest entry into a SHA-256 accumulator in order and
// returns the lowercase hex digest.
func Hash(ctx context.Context, manifest Manifest) (string, error) {
	h := sha256.New()
	for _, entry := range manifest.Entries {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		content, err := load(entry)
		if err != nil {
			return "", err
		}
		_, _ = h.Write(content.Bytes())
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Valid reports whether value has the shape of a fingerprint: 64 lowercase
// hex characters.
func Valid(value string) bool {
	if len(value) != hex.EncodedLen(sha256.Size) {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func resolveFile(root string, in Input) (Entry, error) {
	abs := filepath.Join(root, filepath.FromSlash(in.Path))
	entry := Entry{Input: in, Rel: in.Path, Path: abs}

	info, err := os.Stat(abs)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		if in.Kind == KindOptional {
			return entry, nil
		}
		return Entry{}, missingFile(in, abs)
	default:
		return Entry{}, fmt.Errorf("stat %s: %w", in.Path, err)
	}
	if info.IsDir() {
		return Entry{}, fmt.Errorf("input %s is a directory", abs)
	}

	entry.Present = true
	entry.Size = info.Size()
	return entry, nil
}

func resolveCollection(ctx context.Context, root string, in Input) ([]Entry, error) {
	dir := filepath.Join(root, filepath.FromSlash(in.Path))
	info, err := os.Stat(dir)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		return nil, missingDir(in, dir)
	default:
		return nil, fmt.Errorf("stat %s: %w", in.Path, err)
	}
	if !info.IsDir() {
		return nil, noMatches(in, dir)
	}

	var entries []Entry
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), in.Ext) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, Entry{
			Input:   in,
			Rel:     filepath.ToSlash(relativePath(root, p)),
			Path:    p,
			Present: true,
			Size:    fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", in.Path, err)
	}
	if len(entries) == 0 {
		return nil, noMatches(in, dir)
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return comparePaths(a.Rel, b.Rel)
	})
	return entries, nil
}

// comparePaths orders slash-separated paths segment by segment, so
// "a/z.html" sorts before "a-b/a.html".
func comparePaths(a, b string) int {
	return slices.Compare(strings.Split(a, "/"), strings.Split(b, "/"))
}

func load(entry Entry) (Content, error) {
	if !entry.Present {
		return Absent(), nil
	}
	data, err := os.ReadFile(entry.Path)
	if err != nil {
		return Content{}, fmt.Errorf("read %s: %w", entry.Rel, err)
	}
	return Present(data), nil
}

func relativePath(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return target
	}
	return rel
}

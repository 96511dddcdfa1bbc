package sentinel

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"buildprint/internal/fileutil"
	"buildprint/internal/fingerprint"
)

// RelPath is the record location relative to the theme root.
const RelPath = "static/theme_a/css/.build_fingerprint"

const lockRetryDelay = 50 * time.Millisecond

var (
	// ErrNoRecord is returned by Read when no record has been written yet.
	ErrNoRecord = errors.New("no build fingerprint record")
	// ErrMalformed marks a record or fingerprint that is not 64 lowercase hex
	// characters.
	ErrMalformed = errors.New("malformed build fingerprint")
)

// Path returns the absolute record path for themeRoot.
func Path(themeRoot string) (string, error) {
	root, err := filepath.Abs(themeRoot)
	if err != nil {
		return "", fmt.Errorf("resolve theme root: %w", err)
	}
	return filepath.Join(root, filepath.FromSlash(RelPath)), nil
}

// Persist writes fp plus a trailing newline to the record, creating parent
// directories as needed and replacing any existing content. It returns the
// record path.
func Persist(ctx context.Context, themeRoot, fp string) (string, error) {
	if !fingerprint.Valid(fp) {
		return "", fmt.Errorf("%w: %q", ErrMalformed, fp)
	}
	path, err := Path(themeRoot)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create record directory: %w", err)
	}

	lock := flock.New(lockPath(path))
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return "", fmt.Errorf("acquire record lock: %w", err)
	}
	if !ok {
		return "", errors.New("acquire record lock: lock is held by another process")
	}
	defer lock.Unlock() //nolint:errcheck

	if err := fileutil.WriteFileVerified(path, []byte(fp+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write record %s: %w", path, err)
	}
	return path, nil
}

// Read returns the stored fingerprint without its trailing newline.
func Read(themeRoot string) (string, error) {
	path, err := Path(themeRoot)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w at %s", ErrNoRecord, path)
		}
		return "", fmt.Errorf("read record: %w", err)
	}
	value := strings.TrimSuffix(string(data), "\n")
	if !fingerprint.Valid(value) {
		return "", fmt.Errorf("%w in %s", ErrMalformed, path)
	}
	return value, nil
}

// lockPath keeps the advisory lock outside the theme tree so no stray files
// end up next to compiled assets.
func lockPath(recordPath string) string {
	sum := sha256.Sum256([]byte(recordPath))
	return filepath.Join(os.TempDir(), "buildprint-"+hex.EncodeToString(sum[:8])+".lock")
}

// Package guardrail compares a theme's current build fingerprint against the
// stored record to detect compiled CSS that no longer matches its inputs.
package guardrail

import (
	"context"
	"fmt"

	"buildprint/internal/fingerprint"
	"buildprint/internal/sentinel"
)

// Result is the outcome of a drift check.
type Result struct {
	Current  string
	Recorded string
	Path     string
}

// Stale reports whether the inputs changed since the record was written.
func (r Result) Stale() bool {
	return r.Current != r.Recorded
}

// Check recomputes the fingerprint for themeRoot and compares it to the
// stored record. A missing record is returned as sentinel.ErrNoRecord.
func Check(ctx context.Context, themeRoot string) (Result, error) {
	current, err := fingerprint.Compute(ctx, themeRoot)
	if err != nil {
		return Result{}, err
	}
	path, err := sentinel.Path(themeRoot)
	if err != nil {
		return Result{}, err
	}
	recorded, err := sentinel.Read(themeRoot)
	if err != nil {
		return Result{}, fmt.Errorf("read recorded fingerprint: %w", err)
	}
	return Result{Current: current, Recorded: recorded, Path: path}, nil
}

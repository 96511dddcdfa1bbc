package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"buildprint/internal/fingerprint"
	"buildprint/internal/sentinel"
)

var errStale = errors.New("build fingerprint is stale")

// usageError marks command-line mistakes so they are reported like other
// operator errors rather than as unexpected failures.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err: err}
	}
	return nil
}

func flagError(_ *cobra.Command, err error) error {
	return usageError{err: err}
}

// reportError writes the failure to w. Missing inputs and other operator
// errors get a short message and hint; everything else is reported as an
// unexpected error. Both map to the same exit status.
func reportError(w io.Writer, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	colorize := shouldColorize(w)

	var missing *fingerprint.MissingInputError
	var usage usageError
	fmt.Fprintln(w)
	switch {
	case errors.As(err, &missing):
		fmt.Fprintln(w, renderMark(statusError, "Error: "+missing.Error(), colorize))
		if hint := missing.Hint(); hint != "" {
			fmt.Fprintln(w, statusIndent+hint)
		}
	case errors.As(err, &usage):
		fmt.Fprintln(w, renderMark(statusError, "Error: "+usage.Error(), colorize))
		fmt.Fprintln(w, statusIndent+"Run 'buildprint --help' for usage.")
	case errors.Is(err, errStale), errors.Is(err, sentinel.ErrNoRecord), errors.Is(err, sentinel.ErrMalformed):
		fmt.Fprintln(w, renderMark(statusError, "Error: "+err.Error(), colorize))
	default:
		fmt.Fprintln(w, renderMark(statusError, "Unexpected error: "+err.Error(), colorize))
	}
}

// eventType classifies err for structured logs.
func eventType(err error) string {
	switch {
	case errors.Is(err, fingerprint.ErrMissingInput):
		return "missing_input"
	case errors.Is(err, sentinel.ErrNoRecord):
		return "no_record"
	case errors.Is(err, errStale):
		return "stale"
	default:
		return "unexpected"
	}
}

package errors

// Package errors provides sentinel errors for summary generation.
// These enable consistent classification of failures between the fatal
// top-level cases and the per-subtree cases the walker tolerates.

import "errors"

var (
	// ErrSourceRootMissing indicates the src directory does not exist.
	ErrSourceRootMissing = errors.New("source root does not exist")

	// ErrDirListFailed indicates a directory could not be listed.
	ErrDirListFailed = errors.New("directory listing failed")

	// ErrSummaryWriteFailed indicates the summary file could not be written.
	ErrSummaryWriteFailed = errors.New("summary write failed")

	// ErrPathOutsideBase indicates relativizing an entry against the source
	// root failed. Entries are always discovered under the root, so this is
	// a logic error and is never swallowed.
	ErrPathOutsideBase = errors.New("path outside source root")

	// ErrSummaryStale indicates the on-disk summary does not match the tree.
	ErrSummaryStale = errors.New("summary out of date")
)

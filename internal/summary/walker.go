// Package summary regenerates the SUMMARY.md navigation index for an
// mdBook-style documentation tree. The walker turns one directory into
// navigation lines; the generator in this package drives it once per
// top-level section and assembles the final document.
package summary

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/mdsummary/internal/logfields"
	serrors "git.home.luguber.info/inful/mdsummary/internal/summary/errors"
)

// Fixed filename conventions of the documentation tree.
const (
	// SourceRoot is the documentation source directory, relative to the
	// working directory.
	SourceRoot = "src"

	// SummaryFileName is the generated index; it is never listed itself.
	SummaryFileName = "SUMMARY.md"

	// IndexFileName is a directory's representative page. It is linked
	// from the directory's own line instead of getting a line of its own.
	IndexFileName = "README.md"

	// AboutFileName gets a hard-coded entry at the top of the document
	// when present directly under the source root.
	AboutFileName = "aboutMe.md"
)

const (
	markdownExt = ".md"
	indentUnit  = "  "
)

// Walk lists dirPath and renders one navigation line per markdown file and
// subdirectory, recursing depth-first so a subdirectory's whole subtree
// appears before its sibling files. Lines are indented two spaces per depth
// level. basePath anchors the relative link targets.
//
// A listing failure for dirPath itself is returned; listing failures inside
// nested subdirectories are swallowed so one unreadable subtree cannot take
// down the rest of the index.
func Walk(basePath, dirPath string, depth int) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", serrors.ErrDirListFailed, dirPath, err)
	}

	var subdirs, mdFiles []string
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case entry.IsDir():
			subdirs = append(subdirs, name)
		case strings.HasSuffix(name, markdownExt) && name != SummaryFileName:
			mdFiles = append(mdFiles, name)
		}
	}
	sort.Strings(subdirs)
	sort.Strings(mdFiles)

	indent := strings.Repeat(indentUnit, depth)
	var lines []string

	for _, name := range subdirs {
		subPath := filepath.Join(dirPath, name)
		readmePath := filepath.Join(subPath, IndexFileName)

		if _, err := os.Stat(readmePath); err == nil {
			rel, err := relativeTo(basePath, readmePath)
			if err != nil {
				return nil, err
			}
			lines = append(lines, fmt.Sprintf("%s- [%s](./%s)", indent, name, rel))
		} else {
			// No index page: emit a label-only placeholder so the
			// directory still parents its children in the list.
			lines = append(lines, fmt.Sprintf("%s- [%s]", indent, name))
		}

		subLines, err := Walk(basePath, subPath, depth+1)
		if err != nil {
			if !errors.Is(err, serrors.ErrDirListFailed) {
				return nil, err
			}
			slog.Warn("Skipping unreadable subtree", logfields.Path(subPath), logfields.Error(err))
			continue
		}
		lines = append(lines, subLines...)
	}

	for _, name := range mdFiles {
		if name == IndexFileName {
			continue
		}
		display := strings.TrimSuffix(name, markdownExt)
		if display == "README" {
			continue
		}
		rel, err := relativeTo(basePath, filepath.Join(dirPath, name))
		if err != nil {
			return nil, err
		}
		lines = append(lines, fmt.Sprintf("%s- [%s](./%s)", indent, display, rel))
	}

	return lines, nil
}

// relativeTo returns path relative to basePath with forward-slash separators.
// Walked entries always live under basePath, so a failure here is a logic
// error, classified so callers never swallow it.
func relativeTo(basePath, path string) (string, error) {
	rel, err := filepath.Rel(basePath, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s not under %s: %w", serrors.ErrPathOutsideBase, path, basePath, err)
	}
	return filepath.ToSlash(rel), nil
}

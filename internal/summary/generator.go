package summary

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"git.home.luguber.info/inful/mdsummary/internal/logfields"
	serrors "git.home.luguber.info/inful/mdsummary/internal/summary/errors"
)

// Generate assembles the full summary document for the tree rooted at
// srcPath. It fails only if srcPath itself cannot be listed; a section whose
// directory cannot be walked contributes no lines but keeps its heading.
func Generate(srcPath string) (string, error) {
	lines := []string{"# Summary", ""}

	if _, err := os.Stat(filepath.Join(srcPath, AboutFileName)); err == nil {
		lines = append(lines, fmt.Sprintf("- [about me](./%s)", AboutFileName), "")
	}

	entries, err := os.ReadDir(srcPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", serrors.ErrDirListFailed, srcPath, err)
	}

	var sections []string
	for _, entry := range entries {
		if entry.IsDir() {
			sections = append(sections, entry.Name())
		}
	}
	sort.Strings(sections)

	for _, name := range sections {
		lines = append(lines, "# "+capitalizeFirst(name), "")

		sectionLines, err := Walk(srcPath, filepath.Join(srcPath, name), 0)
		switch {
		case err == nil:
			lines = append(lines, sectionLines...)
			slog.Debug("Section assembled", logfields.Section(name), logfields.Count(len(sectionLines)))
		case errors.Is(err, serrors.ErrDirListFailed):
			// Best-effort policy: an unreadable section stays in the
			// document as a bare heading.
			slog.Warn("Section skipped", logfields.Section(name), logfields.Error(err))
		default:
			return "", err
		}

		lines = append(lines, "")
	}

	return strings.Join(lines, "\n"), nil
}

// Write regenerates the summary and overwrites srcPath/SUMMARY.md with it,
// returning the written path. The write truncates in place; there is no
// temp-file staging since nothing reads the file concurrently.
func Write(srcPath string) (string, error) {
	content, err := Generate(srcPath)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(srcPath, SummaryFileName)
	// #nosec G306 -- the summary is public site content
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("%w: %s: %w", serrors.ErrSummaryWriteFailed, outPath, err)
	}

	slog.Debug("Summary written", logfields.Path(outPath), logfields.Count(len(content)))
	return outPath, nil
}

// Check regenerates the summary in memory and compares it against the
// on-disk srcPath/SUMMARY.md. It returns ErrSummaryStale when the file is
// missing or differs, and writes nothing. Intended for CI freshness gates.
func Check(srcPath string) error {
	want, err := Generate(srcPath)
	if err != nil {
		return err
	}

	outPath := filepath.Join(srcPath, SummaryFileName)
	got, err := os.ReadFile(outPath)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s does not exist", serrors.ErrSummaryStale, outPath)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", serrors.ErrDirListFailed, outPath, err)
	}

	if string(got) != want {
		return fmt.Errorf("%w: %s (run mdsummary generate)", serrors.ErrSummaryStale, outPath)
	}
	return nil
}

// capitalizeFirst upper-cases the first rune only; the remainder is kept
// verbatim so names like "aboutMe" keep their casing.
func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

package integration

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/mdsummary/internal/summary"
	serrors "git.home.luguber.info/inful/mdsummary/internal/summary/errors"
)

var updateGolden = flag.Bool("update-golden", false, "Update golden files")

// runGoldenTest generates the summary for a fixture tree and compares it
// byte-for-byte against the committed golden document.
func runGoldenTest(t *testing.T, fixture string) {
	t.Helper()

	srcPath := filepath.Join("testdata", "fixtures", fixture)
	goldenPath := filepath.Join("testdata", "golden", fixture+".md")

	doc, err := summary.Generate(srcPath)
	require.NoError(t, err)

	if *updateGolden {
		require.NoError(t, os.WriteFile(goldenPath, []byte(doc), 0o644))
		t.Logf("updated %s", goldenPath)
		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "golden file missing; run with -update-golden")
	require.Equal(t, string(want), doc)
}

// TestGolden_BasicTree covers the full surface in one tree: the about-me
// entry, section heading capitalization, directory index folding, a
// label-only directory, nested indentation, and exclusion of a stray
// SUMMARY.md inside a section.
func TestGolden_BasicTree(t *testing.T) {
	runGoldenTest(t, "basic")
}

// TestGolden_BareSection covers a section directory with no content at all:
// the heading survives with nothing under it. The tree is built here since
// version control cannot carry an empty directory in testdata.
func TestGolden_BareSection(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0o755))

	doc, err := summary.Generate(root)
	require.NoError(t, err)

	goldenPath := filepath.Join("testdata", "golden", "bare.md")
	if *updateGolden {
		require.NoError(t, os.WriteFile(goldenPath, []byte(doc), 0o644))
		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "golden file missing; run with -update-golden")
	require.Equal(t, string(want), doc)
}

// TestGolden_Idempotence runs the generator twice over an unchanged tree,
// with its own output present on disk in between.
func TestGolden_Idempotence(t *testing.T) {
	root := t.TempDir()
	copyTree(t, filepath.Join("testdata", "fixtures", "basic"), root)

	outPath, err := summary.Write(root)
	require.NoError(t, err)
	first, err := os.ReadFile(outPath)
	require.NoError(t, err)

	_, err = summary.Write(root)
	require.NoError(t, err)
	second, err := os.ReadFile(outPath)
	require.NoError(t, err)

	require.Equal(t, string(first), string(second))
}

// TestWriteThenCheck exercises the generate/check pairing the way CI would:
// a fresh write passes check, a tree change after it fails with staleness.
func TestWriteThenCheck(t *testing.T) {
	root := t.TempDir()
	copyTree(t, filepath.Join("testdata", "fixtures", "basic"), root)

	_, err := summary.Write(root)
	require.NoError(t, err)
	require.NoError(t, summary.Check(root))

	require.NoError(t, os.WriteFile(filepath.Join(root, "blog", "post-c.md"), []byte("# Post C\n"), 0o644))
	require.ErrorIs(t, summary.Check(root), serrors.ErrSummaryStale)
}

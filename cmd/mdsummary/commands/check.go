package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/mdsummary/internal/summary"
	serrors "git.home.luguber.info/inful/mdsummary/internal/summary/errors"
)

// CheckCmd implements the 'check' command: regenerate the summary in memory
// and fail when the on-disk file is missing or stale. Nothing is written.
type CheckCmd struct{}

func (c *CheckCmd) Run(_ *Global) error {
	if _, err := os.Stat(summary.SourceRoot); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", serrors.ErrSourceRootMissing, summary.SourceRoot)
	}

	if err := summary.Check(summary.SourceRoot); err != nil {
		return err
	}

	fmt.Printf("%s is up to date\n", filepath.Join(summary.SourceRoot, summary.SummaryFileName))
	return nil
}

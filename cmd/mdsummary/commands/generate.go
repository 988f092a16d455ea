package commands

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/mdsummary/internal/logfields"
	"git.home.luguber.info/inful/mdsummary/internal/summary"
	serrors "git.home.luguber.info/inful/mdsummary/internal/summary/errors"
)

// GenerateCmd implements the 'generate' command: walk the source tree and
// overwrite the summary file.
type GenerateCmd struct{}

func (g *GenerateCmd) Run(_ *Global) error {
	if _, err := os.Stat(summary.SourceRoot); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", serrors.ErrSourceRootMissing, summary.SourceRoot)
	}

	slog.Debug("Generating summary", logfields.Path(summary.SourceRoot))

	outPath, err := summary.Write(summary.SourceRoot)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully updated %s\n", outPath)
	return nil
}

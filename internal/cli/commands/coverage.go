package commands

import (
	"context"

	"covproc/internal/coverage"
	"covproc/internal/domain"
	"covproc/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const coverageStage = coverage.Stage

// CoverageCommand handles the coverage command
type CoverageCommand struct {
	merger    *coverage.Merger
	formatter *ui.Formatter
}

// NewCoverageCommand creates a new CoverageCommand
func NewCoverageCommand(merger *coverage.Merger, formatter *ui.Formatter) *CoverageCommand {
	return &CoverageCommand{
		merger:    merger,
		formatter: formatter,
	}
}

// Execute runs the command. Tool failures do not fail the command.
func (cc *CoverageCommand) Execute(cmd *cobra.Command, args []string) error {
	cc.formatter.PrintStageResults([]domain.StageResult{cc.run(cmd.Context())})
	return nil
}

func (cc *CoverageCommand) run(ctx context.Context) domain.StageResult {
	if ctx == nil {
		ctx = context.Background()
	}
	result := cc.merger.Merge(ctx)
	if !result.OK() {
		log.Warn("coverage report not produced", "reason", result.Message)
	}
	return result
}

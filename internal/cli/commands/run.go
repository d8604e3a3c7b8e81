package commands

import (
	"fmt"

	"covproc/internal/domain"
	"covproc/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand runs every stage in order: coverage, collect, tests
type RunCommand struct {
	coverage  *CoverageCommand
	collect   *CollectCommand
	tests     *TestsCommand
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	coverage *CoverageCommand,
	collect *CollectCommand,
	tests *TestsCommand,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		coverage:  coverage,
		collect:   collect,
		tests:     tests,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	var results []domain.StageResult
	results = append(results, rc.coverage.run(cmd.Context()))
	results = append(results, rc.collect.run(nil)...)
	results = append(results, rc.tests.run())

	rc.formatter.PrintStageResults(results)
	return fatal(results)
}

// fatal turns filesystem failures into a command error. Coverage tool
// failures only show up in the results and coverage.log.
func fatal(results []domain.StageResult) error {
	for _, r := range results {
		if r.OK() || r.Stage == coverageStage {
			continue
		}
		return fmt.Errorf("%s: %w", r.Stage, r.Err)
	}
	return nil
}

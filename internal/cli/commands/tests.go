package commands

import (
	"covproc/internal/aggregate"
	"covproc/internal/domain"
	"covproc/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// TestsCommand handles the tests command
type TestsCommand struct {
	aggregator *aggregate.Aggregator
	formatter  *ui.Formatter
}

// NewTestsCommand creates a new TestsCommand
func NewTestsCommand(aggregator *aggregate.Aggregator, formatter *ui.Formatter) *TestsCommand {
	return &TestsCommand{
		aggregator: aggregator,
		formatter:  formatter,
	}
}

// Execute runs the command
func (tc *TestsCommand) Execute(cmd *cobra.Command, args []string) error {
	results := []domain.StageResult{tc.run()}
	tc.formatter.PrintStageResults(results)
	return fatal(results)
}

func (tc *TestsCommand) run() domain.StageResult {
	// Create and set progress bar
	completions, err := tc.aggregator.CompletionFiles()
	if err != nil {
		log.Debugf("no progress bar: %v", err)
	}
	if len(completions) > 0 {
		tc.aggregator.SetProgress(ui.NewProgressBar("Reading completion logs", len(completions)))
	}

	return tc.aggregator.Aggregate()
}

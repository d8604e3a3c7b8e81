package commands

import (
	"covproc/internal/collect"
	"covproc/internal/config"
	"covproc/internal/domain"
	"covproc/internal/ui"

	"github.com/spf13/cobra"
)

// CollectCommand handles the collect command
type CollectCommand struct {
	config    *config.Config
	collector *collect.Collector
	formatter *ui.Formatter
}

// NewCollectCommand creates a new CollectCommand
func NewCollectCommand(cfg *config.Config, collector *collect.Collector, formatter *ui.Formatter) *CollectCommand {
	return &CollectCommand{
		config:    cfg,
		collector: collector,
		formatter: formatter,
	}
}

// Execute runs the command; args name the directories to collect
func (cc *CollectCommand) Execute(cmd *cobra.Command, args []string) error {
	results := cc.run(args)
	cc.formatter.PrintStageResults(results)
	return fatal(results)
}

// run collects names, or the configured defaults when names is empty
func (cc *CollectCommand) run(names []string) []domain.StageResult {
	if len(names) == 0 {
		names = cc.config.CollectDirs
	}
	results := make([]domain.StageResult, 0, len(names))
	for _, name := range names {
		results = append(results, cc.collector.Collect(cc.config.OutputDir(), name))
	}
	return results
}

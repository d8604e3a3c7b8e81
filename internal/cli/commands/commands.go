package commands

import (
	"fmt"
	"os"

	"covproc/internal/aggregate"
	"covproc/internal/cli"
	"covproc/internal/collect"
	"covproc/internal/config"
	"covproc/internal/coverage"
	"covproc/internal/discovery"
	"covproc/internal/execution"
	"covproc/internal/storage"
	"covproc/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	Coverage *CoverageCommand
	Collect  *CollectCommand
	Tests    *TestsCommand
	List     *ListCommand
	View     *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(append([]string{config.CoverageReportDir}, config.DefaultCollectDirs...))
	runner := execution.NewRunner()
	merger := coverage.NewMerger(cfg, scanner, runner)
	collector := collect.NewCollector(scanner)
	summaryStorage := storage.NewSummaryStorage(cfg)
	aggregator := aggregate.NewAggregator(cfg, scanner, summaryStorage, os.Stdout)
	formatter := ui.NewFormatter(os.Stdout)
	viewer := ui.NewSummaryViewer()

	coverageCmd := NewCoverageCommand(merger, formatter)
	collectCmd := NewCollectCommand(cfg, collector, formatter)
	testsCmd := NewTestsCommand(aggregator, formatter)

	return &Commands{
		Run:      NewRunCommand(coverageCmd, collectCmd, testsCmd, formatter),
		Coverage: coverageCmd,
		Collect:  collectCmd,
		Tests:    testsCmd,
		List:     NewListCommand(cfg, scanner, formatter),
		View:     NewViewCommand(summaryStorage, viewer),
	}
}

// Register registers all commands with cobra. The root command runs every stage.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVarP(&flags.DirectoryLocation, "directory_location", "d", "", "The location of your build's output directory")
	rootCmd.PersistentFlags().StringVarP(&flags.RepoDirectory, "repo_directory", "r", "", "The location of your spdk repository")
	_ = rootCmd.MarkPersistentFlagRequired("directory_location")
	_ = rootCmd.MarkPersistentFlagRequired("repo_directory")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded

		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		log.SetLevel(level)
		return nil
	}
	rootCmd.RunE = c.Run.Execute

	// Coverage command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "coverage",
		Short: "Merge per-job coverage and render the HTML report",
		Long:  "Merge every cov_total.info with lcov, rewrite source paths to the repository and run genhtml",
		Args:  cobra.NoArgs,
		RunE:  c.Coverage.Execute,
	})

	// Collect command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "collect [name...]",
		Short: "Keep one copy of per-job directories at the top level",
		Long:  "Move the first <output>/*/<name> to <output>/<name> and delete the other copies (default: doc ut_coverage)",
		Args: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if err := collect.ValidateName(name); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: c.Collect.Execute,
	})

	// Tests command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tests",
		Short: "Aggregate declared and completed tests",
		Long:  "Cross-reference all_tests.txt manifests with test_completions.txt logs and write test_execution.log",
		Args:  cobra.NoArgs,
		RunE:  c.Tests.Execute,
	})

	// List command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List discovered job artifacts",
		Long:  "Scan the output directory and list tracefiles, manifests and completion logs without processing them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	})

	// View command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "view",
		Short: "View the last test summary interactively",
		Long:  "Display test_execution.json from the last aggregation in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.View.Execute,
	})
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"covproc/internal/cli"
	"covproc/internal/cli/commands"
	"covproc/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "covproc",
		Short:         "SPDK coverage processor",
		Long:          `Post-process a CI run's build output: merge per-job coverage into one HTML report, keep one copy of per-job documentation directories, and report which declared tests ran and under which sanitizers.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

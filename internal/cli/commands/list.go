package commands

import (
	"fmt"

	"covproc/internal/config"
	"covproc/internal/discovery"
	"covproc/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	root := lc.config.OutputDir()
	artifacts := []struct {
		title    string
		fileName string
	}{
		{"tracefiles", config.CoverageFileName},
		{"manifests", config.ManifestFileName},
		{"completion logs", config.CompletionFileName},
	}

	for i, a := range artifacts {
		files, err := lc.scanner.Scan(root, a.fileName)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		lc.formatter.PrintFileList(a.title, root, files)
	}

	for _, name := range lc.config.CollectDirs {
		dirs, err := lc.scanner.Children(root, name)
		if err != nil {
			return err
		}
		fmt.Println()
		lc.formatter.PrintFileList(name+" directories", root, dirs)
	}
	return nil
}

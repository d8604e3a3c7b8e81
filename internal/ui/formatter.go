package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"covproc/internal/domain"

	"github.com/fatih/color"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintStageResults prints one row per stage, colored by status
func (f *Formatter) PrintStageResults(results []domain.StageResult) {
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, "┌──────────────────────┬───────────┬──────────────────────────────────────────")
	for i, r := range results {
		fmt.Fprintf(f.out, "│ %-20s │ ", r.Stage)
		statusColor(r.Status).Fprintf(f.out, "%-9s", r.Status)
		fmt.Fprintf(f.out, " │ %s\n", r.Message)
		if i < len(results)-1 {
			fmt.Fprintln(f.out, "├──────────────────────┼───────────┼──────────────────────────────────────────")
		}
	}
	fmt.Fprintln(f.out, "└──────────────────────┴───────────┴──────────────────────────────────────────")

	var failed int
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	fmt.Fprintln(f.out)
	if failed == 0 {
		color.New(color.FgGreen).Fprintln(f.out, "✓ All stages finished")
		return
	}
	color.New(color.FgRed).Fprintf(f.out, "✗ %d stage(s) failed\n", failed)
	for _, r := range results {
		if r.Err != nil {
			color.New(color.FgRed).Fprintf(f.out, "  %s: %v\n", r.Stage, r.Err)
		}
	}
}

func statusColor(s domain.StageStatus) *color.Color {
	switch s {
	case domain.StageCompleted:
		return color.New(color.FgGreen)
	case domain.StageSkipped:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// PrintFileList prints discovered artifact files relative to root as a tree
func (f *Formatter) PrintFileList(title, root string, files []string) {
	if len(files) == 0 {
		color.New(color.FgYellow).Fprintf(f.out, "No %s found\n", title)
		return
	}

	color.New(color.FgGreen).Fprintf(f.out, "Found %d %s:\n", len(files), title)
	for i, file := range files {
		relPath, err := filepath.Rel(root, file)
		if err != nil {
			relPath = file
		}
		if i == len(files)-1 {
			color.New(color.FgCyan).Fprintf(f.out, "└── %s\n", relPath)
		} else {
			color.New(color.FgCyan).Fprintf(f.out, "├── %s\n", relPath)
		}
	}
}

package collect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"covproc/internal/discovery"
	"covproc/internal/domain"

	"github.com/charmbracelet/log"
)

// Collector keeps one copy of a per-job directory at the top of the output tree
type Collector struct {
	scanner *discovery.Scanner
}

// NewCollector creates a new Collector
func NewCollector(scanner *discovery.Scanner) *Collector {
	return &Collector{scanner: scanner}
}

// Stage returns the result name used for collecting name
func Stage(name string) string {
	return "collect " + name
}

// Collect moves the lexically first outputDir/*/name to outputDir/name and
// deletes the others. Contents are never merged.
func (c *Collector) Collect(outputDir, name string) domain.StageResult {
	stage := Stage(name)
	if err := ValidateName(name); err != nil {
		return domain.Failed(stage, err, "refusing to collect %q", name)
	}

	target := filepath.Join(filepath.Clean(outputDir), name)
	found, err := c.scanner.Children(outputDir, name)
	if err != nil {
		return domain.Failed(stage, err, "cannot search for %s", name)
	}

	// target/name is a leftover inside the previous copy, not a job's directory.
	var matches []string
	for _, m := range found {
		if filepath.Dir(m) != target {
			matches = append(matches, m)
		}
	}
	if len(matches) == 0 {
		return domain.Skipped(stage, "no %s directories found", name)
	}

	keep, discard := matches[0], matches[1:]

	// A previous run's copy is replaced.
	if err := os.RemoveAll(target); err != nil {
		return domain.Failed(stage, err, "cannot replace %s", target)
	}
	if err := os.Rename(keep, target); err != nil {
		return domain.Failed(stage, fmt.Errorf("move %s: %w", keep, err), "cannot move %s", keep)
	}
	log.Debugf("collected %s from %s", name, keep)

	for _, d := range discard {
		if err := os.RemoveAll(d); err != nil {
			return domain.Failed(stage, fmt.Errorf("remove %s: %w", d, err), "cannot remove duplicate %s", d)
		}
	}

	return domain.Completed(stage, "kept %s, removed %d duplicates", keep, len(discard))
}

// ValidateName rejects names that do not denote a single directory entry
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("invalid directory name %q", name)
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("directory name %q must not contain a path separator", name)
	}
	return nil
}

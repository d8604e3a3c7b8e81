package coverage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"covproc/internal/config"
	"covproc/internal/discovery"
	"covproc/internal/domain"
	"covproc/internal/execution"

	"github.com/charmbracelet/log"
)

// Stage is the name reported in results
const Stage = "coverage"

// Merger combines per-job lcov tracefiles into one HTML report
type Merger struct {
	config   *config.Config
	scanner  *discovery.Scanner
	executor execution.Executor
}

// NewMerger creates a new Merger
func NewMerger(cfg *config.Config, scanner *discovery.Scanner, executor execution.Executor) *Merger {
	return &Merger{
		config:   cfg,
		scanner:  scanner,
		executor: executor,
	}
}

// Merge runs lcov over every per-job tracefile, fixes source paths and runs genhtml.
// Tool failures are written to coverage.log and reported in the result, never returned.
// Per-job tracefiles are removed once lcov has succeeded.
func (m *Merger) Merge(ctx context.Context) domain.StageResult {
	logPath := m.config.CoverageLogPath()
	logFile, err := os.Create(logPath)
	if err != nil {
		return domain.Failed(Stage, err, "cannot open %s", logPath)
	}
	defer logFile.Close()

	files, err := m.discover()
	if err != nil {
		fmt.Fprintln(logFile, err)
		return domain.Failed(Stage, err, "cannot scan for %s", config.CoverageFileName)
	}
	for _, f := range files {
		fmt.Fprintln(logFile, f)
	}
	if len(files) == 0 {
		return domain.Skipped(Stage, "no %s files found", config.CoverageFileName)
	}
	log.Debugf("merging %d tracefiles", len(files))

	merged := m.config.MergedCoveragePath()
	if err := m.executor.Execute(ctx, m.lcovCommand(files, merged), logFile); err != nil {
		toolFailed(logFile, "lcov", err)
		return domain.Failed(Stage, err, "lcov failed, see %s", logPath)
	}

	rewriter := NewRewriter(m.config.CheckoutDir, m.config.RepoDir())
	rewritten, err := rewriter.RewriteFile(merged)
	if err != nil {
		fmt.Fprintln(logFile, err)
		return domain.Failed(Stage, err, "cannot rewrite source paths")
	}
	log.Debugf("rewrote %d source paths in %s", rewritten, merged)

	result := domain.Completed(Stage, "merged %d tracefiles into %s", len(files), m.config.ReportDir())
	if err := m.executor.Execute(ctx, m.genhtmlCommand(merged), logFile); err != nil {
		toolFailed(logFile, "genhtml", err)
		result = domain.Failed(Stage, err, "genhtml failed, see %s", logPath)
	}

	if err := removeAll(files); err != nil {
		fmt.Fprintln(logFile, err)
		if result.OK() {
			result = domain.Failed(Stage, err, "cannot remove per-job tracefiles")
		}
	}
	return result
}

// discover returns absolute paths of per-job tracefiles, leaving out a previous merge result
func (m *Merger) discover() ([]string, error) {
	found, err := m.scanner.Scan(m.config.OutputDir(), config.CoverageFileName)
	if err != nil {
		return nil, err
	}

	merged := m.config.MergedCoveragePath()
	files := make([]string, 0, len(found))
	for _, f := range found {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", f, err)
		}
		if abs == merged {
			continue
		}
		files = append(files, abs)
	}
	return files, nil
}

func (m *Merger) lcovCommand(files []string, merged string) domain.Command {
	args := append([]string{}, config.CoverageOptions...)
	args = append(args, "-q")
	for _, f := range files {
		args = append(args, "-a", f)
	}
	args = append(args, "-o", merged)
	return domain.Command{Name: m.config.LcovPath, Args: args}
}

func (m *Merger) genhtmlCommand(merged string) domain.Command {
	args := append([]string{}, config.CoverageOptions...)
	args = append(args,
		"-q", merged,
		"--legend",
		"-t", config.ReportTitle,
		"--show-details",
		"-o", m.config.ReportDir(),
	)
	return domain.Command{Name: m.config.GenhtmlPath, Args: args}
}

func toolFailed(w io.Writer, tool string, err error) {
	fmt.Fprintf(w, "%s failed\n", tool)
	fmt.Fprintln(w, err)
	log.Warnf("%s failed: %v", tool, err)
}

func removeAll(files []string) error {
	var errs []error
	for _, f := range files {
		if err := os.Remove(f); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", f, err))
		}
	}
	return errors.Join(errs...)
}

package aggregate

import (
	"fmt"
	"io"
	"os"
	"time"

	"covproc/internal/config"
	"covproc/internal/discovery"
	"covproc/internal/domain"
	"covproc/internal/parser"
	"covproc/internal/storage"

	"github.com/charmbracelet/log"
)

// Stage is the name reported in results
const Stage = "tests"

// NoInputMessage is printed when no manifest exists under the output directory
const NoInputMessage = "Unable to perform test completion aggregator. No input files."

// Progress receives one update per processed completion log
type Progress interface {
	Update(done int)
	Finish()
}

// Aggregator cross-references declared tests with completion logs
type Aggregator struct {
	config   *config.Config
	scanner  *discovery.Scanner
	storage  storage.Storage
	out      io.Writer
	progress Progress
}

// NewAggregator creates a new Aggregator that echoes the summary to out
func NewAggregator(cfg *config.Config, scanner *discovery.Scanner, st storage.Storage, out io.Writer) *Aggregator {
	return &Aggregator{
		config:  cfg,
		scanner: scanner,
		storage: st,
		out:     out,
	}
}

// SetProgress sets the progress reporter for completion logs
func (a *Aggregator) SetProgress(progress Progress) {
	a.progress = progress
}

// CompletionFiles lists the completion logs under the output directory
func (a *Aggregator) CompletionFiles() ([]string, error) {
	return a.scanner.Scan(a.config.OutputDir(), config.CompletionFileName)
}

// Aggregate writes test_execution.log (and its JSON copy) and echoes the log to out.
// The repository directory takes no part in aggregation.
func (a *Aggregator) Aggregate() domain.StageResult {
	outputDir := a.config.OutputDir()

	manifests, err := a.scanner.Scan(outputDir, config.ManifestFileName)
	if err != nil {
		return domain.Failed(Stage, err, "cannot scan for %s", config.ManifestFileName)
	}
	if len(manifests) == 0 {
		fmt.Fprintln(a.out, NoInputMessage)
		return domain.Skipped(Stage, "no %s files found", config.ManifestFileName)
	}

	completions, err := a.CompletionFiles()
	if err != nil {
		return domain.Failed(Stage, err, "cannot scan for %s", config.CompletionFileName)
	}

	reconciler := NewReconciler(a.config.StrictUBSan)
	for _, path := range manifests {
		names, err := parser.ParseManifestFile(path)
		if err != nil {
			return domain.Failed(Stage, err, "cannot read manifest")
		}
		reconciler.Declare(names)
	}

	// Completion logs are applied in lexical path order; the legacy UBSan
	// derivation makes the result depend on it.
	for i, path := range completions {
		completion, err := parser.ParseCompletionFile(path)
		if err != nil {
			return domain.Failed(Stage, err, "cannot read completion log")
		}
		reconciler.Apply(completion)
		if a.progress != nil {
			a.progress.Update(i + 1)
		}
	}
	if a.progress != nil {
		a.progress.Finish()
	}

	summary := BuildSummary(reconciler, len(manifests), len(completions))
	if err := a.storage.Save(summary); err != nil {
		return domain.Failed(Stage, err, "cannot write summary")
	}
	log.Debugf("wrote %s", a.config.SummaryPath())

	if err := a.echo(); err != nil {
		return domain.Failed(Stage, err, "cannot echo summary")
	}

	return domain.Completed(Stage, "%d of %d declared tests executed", summary.Meta.ExecutedTests, summary.Meta.DeclaredTests)
}

// BuildSummary turns reconciled statuses into the persisted summary
func BuildSummary(r *Reconciler, manifestFiles, completionFiles int) *domain.Summary {
	tests := r.Tests()
	executed := tests.Executed()
	return &domain.Summary{
		Meta: domain.SummaryMeta{
			DeclaredTests:        len(tests),
			ExecutedTests:        len(executed),
			ManifestFiles:        manifestFiles,
			CompletionFiles:      completionFiles,
			UnitTestWithValgrind: r.UnitTestWithValgrind(),
			Timestamp:            time.Now().Format(time.RFC3339),
		},
		Executed:     executed,
		NotExecuted:  tests.NotExecuted(),
		MissingASan:  tests.MissingASan(),
		MissingUBSan: tests.MissingUBSan(),
	}
}

// echo prints the written summary file followed by a newline
func (a *Aggregator) echo() error {
	data, err := os.ReadFile(a.config.SummaryPath())
	if err != nil {
		return fmt.Errorf("read summary: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

package storage

import (
	"fmt"
	"os"
	"strings"

	"covproc/internal/domain"
)

// Section headers of test_execution.log
const (
	HeaderExecuted     = "-----Tests Executed in Build------"
	HeaderNotExecuted  = "-----Tests Missing From Build------"
	HeaderMissingASan  = "-----Tests Missing ASAN------"
	HeaderMissingUBSan = "-----Tests Missing UBSAN------"

	// UnitTestWithValgrindSentinel is listed as missing when no job ran unit tests under valgrind
	UnitTestWithValgrindSentinel = "UNITTEST_WITH_VALGRIND"
)

// FormatSummary renders the human-readable summary
func FormatSummary(summary *domain.Summary) string {
	var b strings.Builder

	section := func(header string, names []string) {
		b.WriteString("\n\n" + header + "\n")
		for _, name := range names {
			b.WriteString(name + "\n")
		}
	}

	section(HeaderExecuted, summary.Executed)

	notExecuted := summary.NotExecuted
	if !summary.Meta.UnitTestWithValgrind {
		notExecuted = append([]string{UnitTestWithValgrindSentinel}, notExecuted...)
	}
	section(HeaderNotExecuted, notExecuted)

	section(HeaderMissingASan, summary.MissingASan)
	section(HeaderMissingUBSan, summary.MissingUBSan)

	return b.String()
}

func (s *SummaryStorage) saveText(summary *domain.Summary) error {
	path := s.cfg.SummaryPath()
	if err := os.WriteFile(path, []byte(FormatSummary(summary)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package storage

import (
	"os"
	"testing"

	"covproc/internal/config"
	"covproc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSummary(t *testing.T) {
	summary := &domain.Summary{
		Executed:     []string{"testA"},
		NotExecuted:  []string{"testB"},
		MissingASan:  []string{"testB"},
		MissingUBSan: []string{"testA", "testB"},
	}

	expected := "\n\n-----Tests Executed in Build------\n" +
		"testA\n" +
		"\n\n-----Tests Missing From Build------\n" +
		"UNITTEST_WITH_VALGRIND\n" +
		"testB\n" +
		"\n\n-----Tests Missing ASAN------\n" +
		"testB\n" +
		"\n\n-----Tests Missing UBSAN------\n" +
		"testA\n" +
		"testB\n"

	assert.Equal(t, expected, FormatSummary(summary))

	t.Run("sentinel omitted when valgrind unit tests ran", func(t *testing.T) {
		summary.Meta.UnitTestWithValgrind = true
		assert.NotContains(t, FormatSummary(summary), UnitTestWithValgrindSentinel)
	})
}

func TestFormatSummary_DoesNotAliasNotExecuted(t *testing.T) {
	notExecuted := make([]string, 1, 4)
	notExecuted[0] = "x"
	summary := &domain.Summary{NotExecuted: notExecuted}

	FormatSummary(summary)

	assert.Equal(t, []string{"x"}, summary.NotExecuted)
}

func TestSummaryStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.Flags = config.Flags{OutputDir: t.TempDir()}
	st := NewSummaryStorage(cfg)

	summary := &domain.Summary{
		Meta:        domain.SummaryMeta{DeclaredTests: 2, ExecutedTests: 1, ManifestFiles: 1},
		Executed:    []string{"a"},
		NotExecuted: []string{"b"},
	}
	require.NoError(t, st.Save(summary))

	text, err := os.ReadFile(cfg.SummaryPath())
	require.NoError(t, err)
	assert.Equal(t, FormatSummary(summary), string(text))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, summary, loaded)
}

func TestSummaryStorage_LoadMissing(t *testing.T) {
	cfg := config.New()
	cfg.Flags = config.Flags{OutputDir: t.TempDir()}

	_, err := NewSummaryStorage(cfg).Load()
	assert.Error(t, err)
}

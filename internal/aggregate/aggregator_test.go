package aggregate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"covproc/internal/config"
	"covproc/internal/discovery"
	"covproc/internal/domain"
	"covproc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProgress struct {
	updates  []int
	finished bool
}

func (p *countingProgress) Update(done int) { p.updates = append(p.updates, done) }
func (p *countingProgress) Finish()         { p.finished = true }

func newAggregator(t *testing.T, files map[string]string) (*Aggregator, *config.Config, *bytes.Buffer) {
	t.Helper()
	out := t.TempDir()
	for name, content := range files {
		path := filepath.Join(out, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	cfg := config.New()
	cfg.Flags = config.Flags{OutputDir: out, RepoDir: "/src"}
	var stdout bytes.Buffer
	return NewAggregator(cfg, discovery.NewScanner(nil), storage.NewSummaryStorage(cfg), &stdout), cfg, &stdout
}

func TestAggregator_NoManifests(t *testing.T) {
	agg, cfg, stdout := newAggregator(t, map[string]string{
		"job/test_completions.txt": "testA\n",
	})

	result := agg.Aggregate()

	assert.Equal(t, domain.StageSkipped, result.Status)
	assert.Equal(t, NoInputMessage+"\n", stdout.String())
	assert.NoFileExists(t, cfg.SummaryPath())
	assert.NoFileExists(t, cfg.SummaryJSONPath())
}

func TestAggregator_Summary(t *testing.T) {
	agg, cfg, stdout := newAggregator(t, map[string]string{
		"build/all_tests.txt":           "testA\ntestB\n",
		"asan-job/test_completions.txt": "testA\nnot_declared\nconfig: asan\n",
	})
	progress := &countingProgress{}
	agg.SetProgress(progress)

	result := agg.Aggregate()
	require.Equal(t, domain.StageCompleted, result.Status, result.String())

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

	data, err := os.ReadFile(cfg.SummaryPath())
	require.NoError(t, err)
	assert.Equal(t, expected, string(data))
	assert.Equal(t, expected+"\n", stdout.String())
	assert.NotContains(t, string(data), "not_declared")

	assert.Equal(t, []int{1}, progress.updates)
	assert.True(t, progress.finished)

	loaded, err := storage.NewSummaryStorage(cfg).Load()
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Meta.DeclaredTests)
	assert.Equal(t, 1, loaded.Meta.ExecutedTests)
	assert.Equal(t, 1, loaded.Meta.ManifestFiles)
	assert.Equal(t, 1, loaded.Meta.CompletionFiles)
	assert.Equal(t, []string{"testA"}, loaded.Executed)
}

func TestAggregator_ValgrindUnitTests(t *testing.T) {
	agg, cfg, _ := newAggregator(t, map[string]string{
		"a/all_tests.txt":           "unittest_nvme\n",
		"b/all_tests.txt":           "unittest_nvme\nunittest_blob\n",
		"vg/test_completions.txt":   "unittest_nvme\nvalgrind enabled\n",
		"ub/test_completions.txt":   "unittest_blob\nubsan\n",
		".tmp/test_completions.txt": "unittest_blob\nasan\n",
	})

	result := agg.Aggregate()
	require.Equal(t, domain.StageCompleted, result.Status)

	data, err := os.ReadFile(cfg.SummaryPath())
	require.NoError(t, err)
	summary := string(data)

	assert.NotContains(t, summary, "UNITTEST_WITH_VALGRIND")
	assert.Contains(t, summary, "-----Tests Executed in Build------\nunittest_blob\nunittest_nvme\n")
	assert.Contains(t, summary, "-----Tests Missing ASAN------\nunittest_blob\nunittest_nvme\n", "hidden directories are not scanned")
	assert.Contains(t, summary, "-----Tests Missing UBSAN------\nunittest_nvme\n")
}

func TestAggregator_NoCompletionLogs(t *testing.T) {
	agg, cfg, _ := newAggregator(t, map[string]string{
		"all_tests.txt": "b\na\n",
	})

	result := agg.Aggregate()
	require.Equal(t, domain.StageCompleted, result.Status)

	data, err := os.ReadFile(cfg.SummaryPath())
	require.NoError(t, err)
	assert.Equal(t, "\n\n-----Tests Executed in Build------\n"+
		"\n\n-----Tests Missing From Build------\nUNITTEST_WITH_VALGRIND\na\nb\n"+
		"\n\n-----Tests Missing ASAN------\na\nb\n"+
		"\n\n-----Tests Missing UBSAN------\na\nb\n", string(data))
}

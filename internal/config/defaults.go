package config

const (
	// DefaultLcovPath is the lcov binary used to merge tracefiles
	DefaultLcovPath = "lcov"
	// DefaultGenhtmlPath is the genhtml binary used to render the report
	DefaultGenhtmlPath = "genhtml"
	// DefaultCheckoutDir is the directory name the CI jobs checked the repository out into
	DefaultCheckoutDir = "repo"
	// DefaultLogLevel is the diagnostics level
	DefaultLogLevel = "info"

	// CoverageFileName is the per-job tracefile name, also used for the merged output
	CoverageFileName = "cov_total.info"
	// CoverageLogFileName receives discovered files and tool output
	CoverageLogFileName = "coverage.log"
	// CoverageReportDir is the HTML report directory
	CoverageReportDir = "coverage"
	// ReportTitle is passed to genhtml -t
	ReportTitle = "Combined"

	// ManifestFileName lists the tests a job declares
	ManifestFileName = "all_tests.txt"
	// CompletionFileName lists the tests a job ran
	CompletionFileName = "test_completions.txt"
	// SummaryFileName is the human-readable aggregation result
	SummaryFileName = "test_execution.log"
	// SummaryJSONFileName is the machine-readable aggregation result
	SummaryJSONFileName = "test_execution.json"

	// EnvFile is loaded from the working directory when present
	EnvFile = ".env"
)

// DefaultCollectDirs are the per-job directories collected to the top level
var DefaultCollectDirs = []string{"doc", "ut_coverage"}

// CoverageOptions enable branch and function accounting in lcov and genhtml
var CoverageOptions = []string{
	"--rc", "lcov_branch_coverage=1",
	"--rc", "lcov_function_coverage=1",
	"--rc", "genhtml_branch_coverage=1",
	"--rc", "genhtml_function_coverage=1",
	"--rc", "genhtml_legend=1",
	"--rc", "geninfo_all_blocks=1",
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Tool settings
	LcovPath    string `env:"COVPROC_LCOV" env-default:"lcov" env-description:"lcov binary"`
	GenhtmlPath string `env:"COVPROC_GENHTML" env-default:"genhtml" env-description:"genhtml binary"`

	// Directory name CI jobs checked the repository out into; SF: prefixes up to it are rewritten
	CheckoutDir string `env:"COVPROC_CHECKOUT_DIR" env-default:"repo"`

	// Derive UBSan from the test's own prior UBSan status instead of its ASan status
	StrictUBSan bool `env:"COVPROC_STRICT_UBSAN" env-default:"false"`

	LogLevel string `env:"COVPROC_LOG_LEVEL" env-default:"info"`

	// Directories collected to the top level by default
	CollectDirs []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	OutputDir string
	RepoDir   string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		LcovPath:    DefaultLcovPath,
		GenhtmlPath: DefaultGenhtmlPath,
		CheckoutDir: DefaultCheckoutDir,
		LogLevel:    DefaultLogLevel,
	}
	cfg.CollectDirs = make([]string, len(DefaultCollectDirs))
	copy(cfg.CollectDirs, DefaultCollectDirs)
	return cfg
}

// Load creates a config, applies the environment (and .env when present) and the flags
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.ReadEnv(EnvFile); err != nil {
		return nil, err
	}
	cfg.Flags = flags
	return cfg, nil
}

// ReadEnv loads envFile if it exists and overrides settings from the environment
func (c *Config) ReadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if err := cleanenv.ReadEnv(c); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}

// OutputDir returns the build output root
func (c *Config) OutputDir() string {
	return filepath.Clean(c.Flags.OutputDir)
}

// RepoDir returns the repository root
func (c *Config) RepoDir() string {
	return filepath.Clean(c.Flags.RepoDir)
}

// CoverageLogPath returns the path of the coverage diagnostic log
func (c *Config) CoverageLogPath() string {
	return filepath.Join(c.OutputDir(), CoverageLogFileName)
}

// MergedCoveragePath returns the absolute path of the merged tracefile.
// lcov is handed absolute paths so the result does not depend on cwd.
func (c *Config) MergedCoveragePath() string {
	p := filepath.Join(c.OutputDir(), CoverageFileName)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// ReportDir returns the HTML report directory
func (c *Config) ReportDir() string {
	return filepath.Join(c.OutputDir(), CoverageReportDir)
}

// SummaryPath returns the path of test_execution.log
func (c *Config) SummaryPath() string {
	return filepath.Join(c.OutputDir(), SummaryFileName)
}

// SummaryJSONPath returns the path of test_execution.json
func (c *Config) SummaryJSONPath() string {
	return filepath.Join(c.OutputDir(), SummaryJSONFileName)
}

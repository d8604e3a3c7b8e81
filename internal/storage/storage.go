package storage

import (
	"covproc/internal/config"
	"covproc/internal/domain"
)

// Storage persists and loads aggregation summaries (e.g. for the view command).
type Storage interface {
	Save(summary *domain.Summary) error
	Load() (*domain.Summary, error)
}

// SummaryStorage writes test_execution.log and test_execution.json under the output directory.
// Load reads the JSON copy.
type SummaryStorage struct {
	cfg *config.Config
}

// NewSummaryStorage returns a Storage for the config's output directory.
func NewSummaryStorage(cfg *config.Config) *SummaryStorage {
	return &SummaryStorage{cfg: cfg}
}

// Save writes both summary files.
func (s *SummaryStorage) Save(summary *domain.Summary) error {
	if err := s.saveText(summary); err != nil {
		return err
	}
	return s.saveJSON(summary)
}

// Load reads the last summary from test_execution.json.
func (s *SummaryStorage) Load() (*domain.Summary, error) {
	return s.loadJSON()
}

package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"covproc/internal/domain"
)

func (s *SummaryStorage) saveJSON(summary *domain.Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(s.cfg.SummaryJSONPath(), data, 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func (s *SummaryStorage) loadJSON() (*domain.Summary, error) {
	path := s.cfg.SummaryJSONPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read summary file: %w", err)
	}
	var summary domain.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("parse summary: %w", err)
	}
	return &summary, nil
}

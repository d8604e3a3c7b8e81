package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"covproc/internal/domain"
)

// Marker substrings searched for anywhere in a completion log
const (
	MarkerASan     = "asan"
	MarkerUBSan    = "ubsan"
	MarkerValgrind = "valgrind"
	MarkerUnitTest = "unittest"
)

// ParseManifest reads declared test names, one per line. Lines are trimmed and blank lines dropped.
func ParseManifest(r io.Reader) ([]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(string(content), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// ParseManifestFile reads the manifest at path
func ParseManifestFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest %s: %w", path, err)
	}
	defer f.Close()

	names, err := ParseManifest(f)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest %s: %w", path, err)
	}
	return names, nil
}

// ParseCompletion splits a completion log into trimmed lines and detects its markers.
// Markers apply to the whole file, not to individual lines.
func ParseCompletion(path, content string) domain.CompletionLog {
	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return domain.CompletionLog{
		Path: path,
		Markers: domain.CompletionMarkers{
			ASan:     strings.Contains(content, MarkerASan),
			UBSan:    strings.Contains(content, MarkerUBSan),
			Valgrind: strings.Contains(content, MarkerValgrind),
			UnitTest: strings.Contains(content, MarkerUnitTest),
		},
		Lines: lines,
	}
}

// ParseCompletionFile reads the completion log at path
func ParseCompletionFile(path string) (domain.CompletionLog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.CompletionLog{}, fmt.Errorf("error reading completion log %s: %w", path, err)
	}
	return ParseCompletion(path, string(content)), nil
}

package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner scans build output directories for job artifacts
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner. skipDirs name top-level directories of the
// output tree that hold generated results rather than job artifacts.
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds every file called fileName under root, at any depth including
// root itself. Hidden directories and top-level skip directories are not
// descended into. Results are sorted.
func (s *Scanner) Scan(root, fileName string) ([]string, error) {
	var found []string

	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("output path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if isHidden(name) || (filepath.Dir(path) == root && s.skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Name() == fileName {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.Strings(found)
	return found, nil
}

// Children returns every root/*/name entry whose parent is neither hidden nor
// a skip directory, sorted lexically
func (s *Scanner) Children(root, name string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(filepath.Clean(root), "*", name))
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", name, err)
	}

	var children []string
	for _, m := range matches {
		parent := filepath.Base(filepath.Dir(m))
		if isHidden(parent) || s.skipDirs[parent] {
			continue
		}
		children = append(children, m)
	}

	sort.Strings(children)
	return children, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

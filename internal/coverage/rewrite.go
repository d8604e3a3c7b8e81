package coverage

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// SourceFileMarker starts every lcov line naming an instrumented source file
const SourceFileMarker = "SF:"

// Rewriter maps SF: paths recorded inside a CI checkout onto a local repository
type Rewriter struct {
	pattern *regexp.Regexp
	repoDir string
}

// NewRewriter replaces everything from SF: up to the last path component
// equal to checkoutDir with repoDir.
func NewRewriter(checkoutDir, repoDir string) *Rewriter {
	expr := `(?m)^` + regexp.QuoteMeta(SourceFileMarker) + `.*/` + regexp.QuoteMeta(checkoutDir) + `(/|$)`
	return &Rewriter{
		pattern: regexp.MustCompile(expr),
		repoDir: strings.TrimSuffix(repoDir, "/"),
	}
}

// Rewrite returns content with SF: prefixes replaced and the number of lines changed
func (r *Rewriter) Rewrite(content string) (string, int) {
	count := 0
	out := r.pattern.ReplaceAllStringFunc(content, func(match string) string {
		count++
		if strings.HasSuffix(match, "/") {
			return SourceFileMarker + r.repoDir + "/"
		}
		return SourceFileMarker + r.repoDir
	})
	return out, count
}

// RewriteFile rewrites path in place
func (r *Rewriter) RewriteFile(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	out, count := r.Rewrite(string(data))
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return count, nil
}

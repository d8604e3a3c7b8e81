package coverage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriter_Rewrite(t *testing.T) {
	rewriter := NewRewriter("repo", "/home/ci/spdk")

	tests := []struct {
		name     string
		input    string
		expected string
		count    int
	}{
		{
			name:     "rewrites prefix up to checkout dir",
			input:    "SF:/var/jenkins/workspace/job/repo/lib/nvme/nvme.c\n",
			expected: "SF:/home/ci/spdk/lib/nvme/nvme.c\n",
			count:    1,
		},
		{
			name:     "uses last checkout component",
			input:    "SF:/a/repo/build/repo/include/x.h\n",
			expected: "SF:/home/ci/spdk/include/x.h\n",
			count:    1,
		},
		{
			name:     "leaves other records alone",
			input:    "TN:\nSF:/w/repo/lib/a.c\nDA:1,1\nend_of_record\n",
			expected: "TN:\nSF:/home/ci/spdk/lib/a.c\nDA:1,1\nend_of_record\n",
			count:    1,
		},
		{
			name:     "marker must start the line",
			input:    "TN: SF:/w/repo/lib/a.c\n",
			expected: "TN: SF:/w/repo/lib/a.c\n",
		},
		{
			name:     "checkout dir must be a whole component",
			input:    "SF:/w/repository/lib/a.c\n",
			expected: "SF:/w/repository/lib/a.c\n",
		},
		{
			name:     "paths outside the checkout are kept",
			input:    "SF:/usr/include/stdio.h\n",
			expected: "SF:/usr/include/stdio.h\n",
		},
		{
			name:     "several files",
			input:    "SF:/x/repo/a.c\nend_of_record\nSF:/y/repo/b.c\nend_of_record",
			expected: "SF:/home/ci/spdk/a.c\nend_of_record\nSF:/home/ci/spdk/b.c\nend_of_record",
			count:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, count := rewriter.Rewrite(tt.input)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, tt.count, count)
		})
	}
}

func TestRewriter_TrailingSlashAndDollar(t *testing.T) {
	rewriter := NewRewriter("repo", "/opt/$HOME/spdk/")

	out, _ := rewriter.Rewrite("SF:/w/repo/lib/a.c")
	assert.Equal(t, "SF:/opt/$HOME/spdk/lib/a.c", out)
}

func TestRewriter_RewriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cov_total.info")
	require.NoError(t, os.WriteFile(path, []byte("SF:/w/repo/lib/a.c\nDA:3,0\n"), 0640))

	count, err := NewRewriter("repo", "/src").RewriteFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SF:/src/lib/a.c\nDA:3,0\n", string(data))

	_, err = NewRewriter("repo", "/src").RewriteFile(filepath.Join(t.TempDir(), "missing.info"))
	assert.Error(t, err)
}

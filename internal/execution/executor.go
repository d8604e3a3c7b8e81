package execution

import (
	"context"
	"io"

	"covproc/internal/domain"
)

// Executor runs external tools, writing their stdout and stderr to out
type Executor interface {
	Execute(ctx context.Context, cmd domain.Command, out io.Writer) error
}

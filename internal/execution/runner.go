package execution

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"covproc/internal/domain"
)

// Runner executes a single external tool synchronously
type Runner struct{}

// NewRunner creates a new Runner
func NewRunner() *Runner {
	return &Runner{}
}

// Execute runs cmd to completion. A non-zero exit is returned as an error naming the command line.
func (r *Runner) Execute(ctx context.Context, cmd domain.Command, out io.Writer) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Env = os.Environ()
	c.Stdout = out
	c.Stderr = out

	if err := c.Run(); err != nil {
		return fmt.Errorf("command %q: %w", CommandLine(cmd), err)
	}
	return nil
}

// CommandLine renders cmd the way it would be typed in a shell, for logs
func CommandLine(cmd domain.Command) string {
	parts := make([]string, 0, len(cmd.Args)+1)
	parts = append(parts, cmd.Name)
	for _, a := range cmd.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// internal/executor/executor.go
package executor

import (
	"context"
	"os"
)

// Executor runs external tools and reads/writes files on the target host.
// Commands are argument vectors, never shell strings, so operator input is
// only ever a single argv element and cannot grow into extra commands.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
	WriteFile(ctx context.Context, path string, content []byte, mode os.FileMode) error
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

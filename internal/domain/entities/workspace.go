package entities

import "context"

// Workspace abstracts file access scoped to one project checkout root.
// Implementations serve at most one in-flight request at a time from the
// fix engine; paths are relative to the checkout root.
type Workspace interface {
	ReadFile(ctx context.Context, path string) (string, error)
	WriteFile(ctx context.Context, path, content string) error
}

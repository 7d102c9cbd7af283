//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/remediate/internal/domain/repositories"
)

// WriteCall records a single invocation of WriteFile.
type WriteCall struct {
	Path    string
	Content string
}

// SpyWorkspaceRepository implements repositories.WorkspaceRepository as a
// configurable in-memory spy. Writes are applied to the file map, so a
// later read observes the rewritten content, just like a real workspace.
type SpyWorkspaceRepository struct {
	// --- ReadFile ---
	Files    map[string]string // path -> content
	ReadErrs map[string]error  // per-path error injection
	// spy: paths that were read
	ReadPaths []string

	// --- WriteFile ---
	WriteErr error
	// spy: writes received
	Writes []WriteCall
}

var _ repositories.WorkspaceRepository = (*SpyWorkspaceRepository)(nil)

func (w *SpyWorkspaceRepository) ReadFile(_ context.Context, path string) (string, error) {
	w.ReadPaths = append(w.ReadPaths, path)

	if w.ReadErrs != nil {
		if err, ok := w.ReadErrs[path]; ok {
			return "", err
		}
	}
	if w.Files != nil {
		if content, ok := w.Files[path]; ok {
			return content, nil
		}
	}
	return "", fmt.Errorf("file not found: %s", path)
}

func (w *SpyWorkspaceRepository) WriteFile(_ context.Context, path, content string) error {
	w.Writes = append(w.Writes, WriteCall{Path: path, Content: content})
	if w.WriteErr != nil {
		return w.WriteErr
	}
	if w.Files == nil {
		w.Files = make(map[string]string)
	}
	w.Files[path] = content
	return nil
}

// DummyWorkspaceRepository is a no-op implementation of
// repositories.WorkspaceRepository.
type DummyWorkspaceRepository struct{}

var _ repositories.WorkspaceRepository = (*DummyWorkspaceRepository)(nil)

func (d *DummyWorkspaceRepository) ReadFile(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (d *DummyWorkspaceRepository) WriteFile(_ context.Context, _, _ string) error {
	return nil
}

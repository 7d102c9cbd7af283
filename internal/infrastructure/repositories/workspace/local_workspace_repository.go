package workspace

import (
	"context"

	"github.com/spf13/afero"

	"github.com/rios0rios0/remediate/internal/domain/repositories"
)

const manifestFileMode = 0o644

// LocalWorkspaceRepository implements repositories.WorkspaceRepository on
// top of an afero filesystem rooted at one project checkout. Every path it
// accepts is relative to that root, so the engine can never write outside
// the checkout.
type LocalWorkspaceRepository struct {
	fs afero.Fs
}

// NewLocalWorkspaceRepository creates a workspace scoped to the given
// checkout root on the host filesystem.
func NewLocalWorkspaceRepository(root string) *LocalWorkspaceRepository {
	return &LocalWorkspaceRepository{
		fs: afero.NewBasePathFs(afero.NewOsFs(), root),
	}
}

// NewWorkspaceRepositoryWithFs creates a workspace over an arbitrary
// filesystem. Tests use this with afero.NewMemMapFs.
func NewWorkspaceRepositoryWithFs(fs afero.Fs) *LocalWorkspaceRepository {
	return &LocalWorkspaceRepository{fs: fs}
}

var _ repositories.WorkspaceRepository = (*LocalWorkspaceRepository)(nil)

// ReadFile returns the content of one file below the checkout root.
func (it *LocalWorkspaceRepository) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := afero.ReadFile(it.fs, path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// WriteFile overwrites one file below the checkout root.
func (it *LocalWorkspaceRepository) WriteFile(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return afero.WriteFile(it.fs, path, []byte(content), manifestFileMode)
}

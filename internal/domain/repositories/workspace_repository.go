package repositories

import (
	"github.com/rios0rios0/remediate/internal/domain/entities"
)

// WorkspaceRepository is an alias for the workspace entity interface.
// It abstracts read/write file access scoped to one project checkout root.
type WorkspaceRepository = entities.Workspace

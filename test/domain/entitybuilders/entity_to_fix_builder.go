//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/remediate/internal/domain/entities"
)

// EntityToFixBuilder helps create test entities with a fluent interface.
type EntityToFixBuilder struct {
	*testkit.BaseBuilder
	manifestPath string
	remediation  *entities.RemediationChanges
	workspace    entities.Workspace
}

// NewEntityToFixBuilder creates a new entity builder with sensible defaults.
func NewEntityToFixBuilder() *EntityToFixBuilder {
	return &EntityToFixBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		manifestPath: "requirements.txt",
		remediation: &entities.RemediationChanges{
			Pin: map[string]entities.VersionInfo{
				"django@1.6.1": {UpgradeTo: "1.9.0"},
			},
		},
	}
}

// WithManifestPath sets the entry manifest path.
func (b *EntityToFixBuilder) WithManifestPath(path string) *EntityToFixBuilder {
	b.manifestPath = path
	return b
}

// WithRemediation sets the remediation plan.
func (b *EntityToFixBuilder) WithRemediation(changes *entities.RemediationChanges) *EntityToFixBuilder {
	b.remediation = changes
	return b
}

// WithWorkspace binds the entity to a workspace.
func (b *EntityToFixBuilder) WithWorkspace(workspace entities.Workspace) *EntityToFixBuilder {
	b.workspace = workspace
	return b
}

// Build creates the entity (satisfies testkit.Builder interface).
func (b *EntityToFixBuilder) Build() interface{} {
	return b.BuildEntityToFix()
}

// BuildEntityToFix creates the entity with a concrete return type.
func (b *EntityToFixBuilder) BuildEntityToFix() entities.EntityToFix {
	return entities.EntityToFix{
		ManifestPath: b.manifestPath,
		Remediation:  b.remediation,
		Workspace:    b.workspace,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *EntityToFixBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.manifestPath = "requirements.txt"
	b.remediation = &entities.RemediationChanges{
		Pin: map[string]entities.VersionInfo{
			"django@1.6.1": {UpgradeTo: "1.9.0"},
		},
	}
	b.workspace = nil
	return b
}

// Clone creates a deep copy of the EntityToFixBuilder.
func (b *EntityToFixBuilder) Clone() testkit.Builder {
	return &EntityToFixBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		manifestPath: b.manifestPath,
		remediation:  b.remediation,
		workspace:    b.workspace,
	}
}

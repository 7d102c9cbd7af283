package requirements

import (
	"strings"

	"github.com/rios0rios0/remediate/internal/domain/repositories"
)

// ManifestRepository implements repositories.ManifestRepository for
// requirements.txt-style Python manifests: line parsing, provenance
// resolution, and single-file mutation.
type ManifestRepository struct{}

// NewManifestRepository creates a new requirements manifest repository.
func NewManifestRepository() *ManifestRepository {
	return &ManifestRepository{}
}

var _ repositories.ManifestRepository = (*ManifestRepository)(nil)

// Supported reports whether the manifest is a requirements-style text file.
// Other Python manifest formats (pyproject.toml, Pipfile) are not fixable
// by this engine.
func (it *ManifestRepository) Supported(manifestPath string) bool {
	return strings.HasSuffix(strings.ToLower(manifestPath), ".txt")
}

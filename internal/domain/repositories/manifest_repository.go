package repositories

import (
	"context"

	"github.com/rios0rios0/remediate/internal/domain/entities"
)

// ManifestRepository abstracts the requirements-manifest collaborators:
// the line parser, the provenance resolver, and the single-file mutator.
// The fix engine never assumes anything about matching heuristics beyond
// this contract.
type ManifestRepository interface {
	// Supported reports whether the given manifest can be fixed by this
	// engine.
	Supported(manifestPath string) bool

	// Parse converts raw manifest text into an ordered sequence of typed
	// line records. It never fails: unparseable lines are preserved
	// verbatim and never rewritten.
	Parse(fileName, content string) *entities.ParsedRequirements

	// ResolveProvenance computes the closure of physical files reachable
	// from the entry manifest via include directives, each parsed. File
	// names in the result are relative to dir.
	ResolveProvenance(
		ctx context.Context,
		workspace WorkspaceRepository,
		dir, entryName string,
	) (*entities.ProvenanceMap, error)

	// ApplyChanges applies a remediation subset to one parsed file and
	// returns the updated text, per-change summaries, and the keys
	// actually applied. Re-applying the same subset to already-patched
	// text yields an empty change list.
	ApplyChanges(
		parsed *entities.ParsedRequirements,
		changes *entities.RemediationChanges,
		opts entities.MutationOptions,
	) *entities.MutationResult
}

package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/remediate/internal/domain/entities"
	"github.com/rios0rios0/remediate/internal/domain/repositories"
)

// FixSetApplier orchestrates one entity's fix: the upgrade pass across the
// provenance closure, then the pin pass over a fresh read of that closure.
type FixSetApplier struct {
	manifests repositories.ManifestRepository
}

// NewFixSetApplier creates a new applier backed by the given manifest
// repository.
func NewFixSetApplier(manifests repositories.ManifestRepository) *FixSetApplier {
	return &FixSetApplier{manifests: manifests}
}

// Apply runs the full fix for one entity and returns the concatenated
// change summaries plus the canonical paths of every file actually
// rewritten. Upgrade changes are computed and applied strictly before pin
// changes, and a pin is never applied for a key already handled by a
// successful upgrade.
func (it *FixSetApplier) Apply(
	ctx context.Context,
	entity entities.EntityToFix,
	opts entities.FixOptions,
) ([]entities.FixChangesSummary, []string, error) {
	if err := validateEntity(entity); err != nil {
		return nil, nil, err
	}

	dir := filepath.Dir(entity.ManifestPath)
	entryName := filepath.Base(entity.ManifestPath)

	provenance, err := it.manifests.ResolveProvenance(ctx, entity.Workspace, dir, entryName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve provenance of %q: %w", entity.ManifestPath, err)
	}

	summaries, touched, appliedKeys, err := it.applyUpgrades(ctx, entity, dir, provenance, opts)
	if err != nil {
		return nil, nil, err
	}

	leftover := LeftoverChanges(entity.Remediation, appliedKeys)
	pinSummaries, pinTouched, err := it.applyPins(ctx, entity, dir, entryName, leftover, opts)
	if err != nil {
		return nil, nil, err
	}

	summaries = append(summaries, pinSummaries...)
	touched = appendUnique(touched, pinTouched...)
	return summaries, touched, nil
}

// applyUpgrades applies only the upgrade-class entries, restricted to
// direct dependency lines, to every file in the provenance closure. A file
// is recorded as touched only if a write occurred.
func (it *FixSetApplier) applyUpgrades(
	ctx context.Context,
	entity entities.EntityToFix,
	dir string,
	provenance *entities.ProvenanceMap,
	opts entities.FixOptions,
) ([]entities.FixChangesSummary, []string, map[string]struct{}, error) {
	var summaries []entities.FixChangesSummary
	var touched []string
	appliedKeys := make(map[string]struct{})

	upgradeSubset := entity.Remediation.UpgradeOnly()

	for _, name := range provenance.Names() {
		result := it.manifests.ApplyChanges(
			provenance.File(name),
			upgradeSubset,
			entities.MutationOptions{DirectOnly: true},
		)

		summaries = append(summaries, result.Summaries...)
		for _, key := range result.AppliedKeys {
			appliedKeys[entities.NormalizeKey(key)] = struct{}{}
		}

		if !result.Changed {
			continue
		}

		if err := it.writeFile(ctx, entity, filepath.Join(dir, name), result.UpdatedText, opts); err != nil {
			return nil, nil, nil, err
		}
		touched = appendUnique(touched, entities.CanonicalPath(dir, name))
	}

	return summaries, touched, appliedKeys, nil
}

// applyPins re-resolves the provenance closure from the workspace (the
// parses from the upgrade pass are stale by now) and applies the leftover
// pin set to every file in it, without restricting to direct dependencies.
func (it *FixSetApplier) applyPins(
	ctx context.Context,
	entity entities.EntityToFix,
	dir, entryName string,
	leftover *entities.RemediationChanges,
	opts entities.FixOptions,
) ([]entities.FixChangesSummary, []string, error) {
	if leftover.IsEmpty() {
		return nil, nil, nil
	}

	provenance, err := it.manifests.ResolveProvenance(ctx, entity.Workspace, dir, entryName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to re-read manifests under %q: %w", entity.ManifestPath, err)
	}

	var summaries []entities.FixChangesSummary
	var touched []string

	for _, name := range provenance.Names() {
		result := it.manifests.ApplyChanges(provenance.File(name), leftover, entities.MutationOptions{})

		summaries = append(summaries, result.Summaries...)
		if !result.Changed {
			continue
		}

		if writeErr := it.writeFile(ctx, entity, filepath.Join(dir, name), result.UpdatedText, opts); writeErr != nil {
			return nil, nil, writeErr
		}
		touched = appendUnique(touched, entities.CanonicalPath(dir, name))
	}

	return summaries, touched, nil
}

// writeFile overwrites one manifest through the workspace, unless the run
// is a dry run.
func (it *FixSetApplier) writeFile(
	ctx context.Context,
	entity entities.EntityToFix,
	path, content string,
	opts entities.FixOptions,
) error {
	if opts.DryRun {
		logger.Infof("[fix] [DRY RUN] Would rewrite %s", path)
		return nil
	}

	if err := entity.Workspace.WriteFile(ctx, path, content); err != nil {
		return fmt.Errorf("failed to write manifest %q: %w", path, err)
	}
	return nil
}

// validateEntity fails with a distinct condition for each missing piece,
// before any I/O happens.
func validateEntity(entity entities.EntityToFix) error {
	if entity.Remediation.IsEmpty() {
		return entities.ErrMissingRemediationPlan
	}
	if entity.ManifestPath == "" {
		return entities.ErrMissingTargetFile
	}
	if entity.Workspace == nil {
		return entities.ErrNoWorkspace
	}
	return nil
}

// appendUnique appends paths preserving order and dropping duplicates.
func appendUnique(paths []string, extra ...string) []string {
	for _, candidate := range extra {
		duplicate := false
		for _, existing := range paths {
			if existing == candidate {
				duplicate = true
				break
			}
		}
		if !duplicate {
			paths = append(paths, candidate)
		}
	}
	return paths
}

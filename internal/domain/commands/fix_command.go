package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/remediate/internal/domain/entities"
	"github.com/rios0rios0/remediate/internal/domain/repositories"
)

// Fix is the interface for the batch fix command.
type Fix interface {
	Execute(
		ctx context.Context,
		toFix []entities.EntityToFix,
		opts entities.FixOptions,
	) *entities.FixSummary
}

// FixCommand orchestrates a batch fix run: partition fixable entities,
// group them by manifest directory, and fix each entity with one shared
// fixed-files cache across all groups. Execution is strictly sequential;
// the cache invariant and the upgrade-before-pin ordering depend on it.
type FixCommand struct {
	manifests repositories.ManifestRepository
	applier   *FixSetApplier
}

// NewFixCommand creates a new FixCommand.
func NewFixCommand(
	manifests repositories.ManifestRepository,
	applier *FixSetApplier,
) *FixCommand {
	return &FixCommand{manifests: manifests, applier: applier}
}

// Execute runs the whole batch and always returns a fully partitioned
// result: every outcome, including every failure, is represented in the
// summary and nothing escapes as an error.
func (it *FixCommand) Execute(
	ctx context.Context,
	toFix []entities.EntityToFix,
	opts entities.FixOptions,
) *entities.FixSummary {
	summary := &entities.FixSummary{}

	fixable := it.partitionFixable(toFix, summary)

	groups, dirs := groupByDirectory(fixable)
	cache := entities.NewFixedFilesCache()

	for _, dir := range dirs {
		it.fixEntitiesInDirectory(ctx, groups[dir], cache, opts, summary)
	}

	logger.Infof(
		"[fix] Run complete: %d succeeded, %d failed, %d skipped",
		len(summary.Succeeded), len(summary.Failed), len(summary.Skipped),
	)
	return summary
}

// partitionFixable splits the input into fixable entities and skipped
// records for unsupported manifests.
func (it *FixCommand) partitionFixable(
	toFix []entities.EntityToFix,
	summary *entities.FixSummary,
) []entities.EntityToFix {
	fixable := make([]entities.EntityToFix, 0, len(toFix))

	for _, entity := range toFix {
		if entity.ManifestPath != "" && !it.manifests.Supported(entity.ManifestPath) {
			summary.Skipped = append(summary.Skipped, entities.SkippedEntity{
				Original: entity,
				Reason: fmt.Sprintf(
					"unsupported manifest %q: only requirements-style .txt manifests can be fixed",
					entity.ManifestPath,
				),
			})
			continue
		}
		fixable = append(fixable, entity)
	}

	return fixable
}

// fixEntitiesInDirectory fixes one directory group, entity by entity in
// encounter order. Any error raised inside one entity's fix path is caught
// here and converted into a failure record; it never stops the loop.
func (it *FixCommand) fixEntitiesInDirectory(
	ctx context.Context,
	group []entities.EntityToFix,
	cache *entities.FixedFilesCache,
	opts entities.FixOptions,
	summary *entities.FixSummary,
) {
	for _, entity := range group {
		canonical := filepath.Clean(entity.ManifestPath)

		if entity.ManifestPath != "" && cache.Contains(canonical) {
			summary.Succeeded = append(summary.Succeeded, entities.FixedEntity{
				Original: entity,
				Changes:  []entities.FixChangesSummary{previouslyFixedChange(canonical)},
			})
			continue
		}

		changes, touched, err := it.applier.Apply(ctx, entity, opts)
		if err != nil {
			logger.Errorf("[fix] Failed to fix %q: %v", entity.ManifestPath, err)
			summary.Failed = append(summary.Failed, entities.FailedEntity{
				Original: entity,
				Err:      err,
			})
			continue
		}

		if len(changes) == 0 {
			logger.Warnf("[fix] No fixes could be applied for %q", entity.ManifestPath)
			summary.Failed = append(summary.Failed, entities.FailedEntity{
				Original: entity,
				Err:      entities.ErrNoFixesApplied,
			})
			continue
		}

		for _, path := range touched {
			cache.Add(path)
		}
		summary.Succeeded = append(summary.Succeeded, entities.FixedEntity{
			Original: entity,
			Changes:  changes,
		})
	}
}

// previouslyFixedChange is the synthetic change recorded when an entity's
// manifest was already rewritten earlier in the same run.
func previouslyFixedChange(path string) entities.FixChangesSummary {
	return entities.FixChangesSummary{
		Success:     true,
		UserMessage: fmt.Sprintf("%s was already fixed earlier in this run", path),
		FileName:    filepath.Base(path),
	}
}

// groupByDirectory groups entities by the directory component of their
// manifest path and returns the directory keys in ascending lexicographic
// order, for deterministic output.
func groupByDirectory(
	toFix []entities.EntityToFix,
) (map[string][]entities.EntityToFix, []string) {
	groups := make(map[string][]entities.EntityToFix)

	for _, entity := range toFix {
		dir := filepath.Dir(entity.ManifestPath)
		groups[dir] = append(groups[dir], entity)
	}

	dirs := make([]string, 0, len(groups))
	for dir := range groups {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	return groups, dirs
}

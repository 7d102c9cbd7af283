package requirements

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/remediate/internal/domain/entities"
)

// lookupEntry pairs a remediation entry with its original-case key, which
// is kept for display in change summaries.
type lookupEntry struct {
	key  string
	info entities.VersionInfo
}

// ApplyChanges applies a remediation subset to one parsed file. Matching is
// by normalized "name@declaredVersion" key, so a line that was already
// rewritten no longer matches and re-applying the same subset is a no-op.
func (it *ManifestRepository) ApplyChanges(
	parsed *entities.ParsedRequirements,
	changes *entities.RemediationChanges,
	opts entities.MutationOptions,
) *entities.MutationResult {
	result := &entities.MutationResult{}

	if opts.FileFilter != "" && opts.FileFilter != parsed.FileName {
		result.UpdatedText = parsed.Render()
		return result
	}

	upgrades := normalizeLookup(changes.Upgrade)
	pins := normalizeLookup(changes.Pin)

	for i := range parsed.Lines {
		line := &parsed.Lines[i]
		if line.Kind != entities.LineRequirement {
			continue
		}

		if entry, ok := upgrades[line.Key()]; ok {
			if applyUpgrade(line, entry, parsed.FileName, opts, result) {
				continue // an upgraded line is never also pinned
			}
		}

		if entry, ok := pins[line.Key()]; ok {
			applyPin(line, entry, parsed.FileName, result)
		}
	}

	result.UpdatedText = parsed.Render()
	return result
}

// applyUpgrade raises the declared version of a direct dependency line to
// the target minimum. Targets that are not newer than the declared version
// are left alone.
func applyUpgrade(
	line *entities.RequirementLine,
	entry lookupEntry,
	fileName string,
	opts entities.MutationOptions,
	result *entities.MutationResult,
) bool {
	if opts.DirectOnly && line.IsTransitive() {
		return false
	}

	target := entry.info.TargetVersion()
	if target == "" || !IsNewerVersion(line.Version, target) {
		return false
	}

	from := line.Version
	rewriteLine(line, target)
	result.Changed = true
	result.AppliedKeys = append(result.AppliedKeys, entry.key)
	result.Summaries = append(result.Summaries, entities.FixChangesSummary{
		Success:     true,
		UserMessage: fmt.Sprintf("Upgraded %s from %s to %s in %s", line.Name, from, target, fileName),
		PackageKey:  entry.key,
		From:        from,
		To:          target,
		FileName:    fileName,
		IssueIDs:    entry.info.Vulns,
	})
	return true
}

// applyPin rewrites the declared version to the exact safe target.
func applyPin(
	line *entities.RequirementLine,
	entry lookupEntry,
	fileName string,
	result *entities.MutationResult,
) {
	target := entry.info.TargetVersion()
	if target == "" || target == line.Version {
		return
	}

	from := line.Version
	rewriteLine(line, target)
	result.Changed = true
	result.AppliedKeys = append(result.AppliedKeys, entry.key)
	result.Summaries = append(result.Summaries, entities.FixChangesSummary{
		Success:     true,
		UserMessage: fmt.Sprintf("Pinned %s from %s to %s in %s", line.Name, from, target, fileName),
		PackageKey:  entry.key,
		From:        from,
		To:          target,
		FileName:    fileName,
		IssueIDs:    entry.info.Vulns,
	})
}

// rewriteLine replaces only the version token of the requirement line,
// preserving every other byte of the original text.
func rewriteLine(line *entities.RequirementLine, target string) {
	at := strings.Index(line.Raw, line.Comparator)
	if at < 0 {
		return
	}
	head := line.Raw[:at+len(line.Comparator)]
	tail := strings.Replace(line.Raw[at+len(line.Comparator):], line.Version, target, 1)
	line.Raw = head + tail
	line.Version = target
}

// normalizeLookup indexes a remediation mapping by normalized key while
// retaining the original-case key for summaries.
func normalizeLookup(entries map[string]entities.VersionInfo) map[string]lookupEntry {
	lookup := make(map[string]lookupEntry, len(entries))
	for key, info := range entries {
		lookup[entities.NormalizeKey(key)] = lookupEntry{key: key, info: info}
	}
	return lookup
}

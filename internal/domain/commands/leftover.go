package commands

import (
	"github.com/rios0rios0/remediate/internal/domain/entities"
)

// LeftoverChanges returns a remediation value whose pin map contains exactly
// the original pin entries not present in the applied-upgrade key set
// (compared case-insensitively), and whose upgrade map is empty: the
// upgrades were already disposed of by the upgrade pass.
func LeftoverChanges(
	remediation *entities.RemediationChanges,
	appliedUpgrades map[string]struct{},
) *entities.RemediationChanges {
	leftover := &entities.RemediationChanges{
		Pin: make(map[string]entities.VersionInfo, len(remediation.Pin)),
	}

	for _, key := range entities.SortedKeys(remediation.Pin) {
		if _, applied := appliedUpgrades[entities.NormalizeKey(key)]; applied {
			continue
		}
		leftover.Pin[key] = remediation.Pin[key]
	}

	return leftover
}

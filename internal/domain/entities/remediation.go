package entities

import (
	"sort"
	"strings"
)

// VersionInfo describes the target of a single remediation entry. For pins
// the target is the exact safe version; for upgrades it is the minimum
// version the declaration should be raised to.
type VersionInfo struct {
	// UpgradeTo is either a bare version ("1.9.0") or a package-qualified
	// one ("django@1.9.0").
	UpgradeTo string   `yaml:"upgradeTo"`
	Vulns     []string `yaml:"vulns,omitempty"`
}

// TargetVersion extracts the version component of UpgradeTo.
func (it VersionInfo) TargetVersion() string {
	if at := strings.LastIndex(it.UpgradeTo, "@"); at >= 0 {
		return it.UpgradeTo[at+1:]
	}
	return it.UpgradeTo
}

// RemediationChanges is the remediation plan for one entity: two mappings
// keyed by the "name@declaredVersion" package-identity composite, compared
// case-insensitively. A key may appear in both mappings.
type RemediationChanges struct {
	Pin     map[string]VersionInfo `yaml:"pin,omitempty"`
	Upgrade map[string]VersionInfo `yaml:"upgrade,omitempty"`
}

// IsEmpty reports whether the plan contains no entries at all.
func (it *RemediationChanges) IsEmpty() bool {
	return it == nil || (len(it.Pin) == 0 && len(it.Upgrade) == 0)
}

// UpgradeOnly returns a subset plan containing only the upgrade entries.
// The pin entries are withheld until the upgrade pass has completed.
func (it *RemediationChanges) UpgradeOnly() *RemediationChanges {
	return &RemediationChanges{Upgrade: it.Upgrade}
}

// NormalizeKey lower-cases a package-identity key so that lookups are
// case-insensitive. The original-case key is retained by callers for
// display in change summaries.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// SortedKeys returns the original-case keys of a remediation mapping in
// ascending order of their normalized form, for deterministic iteration.
func SortedKeys(entries map[string]VersionInfo) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return NormalizeKey(keys[i]) < NormalizeKey(keys[j])
	})
	return keys
}

//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/remediate/internal/domain/entities"
)

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	t.Run("should lower-case and trim keys", func(t *testing.T) {
		t.Parallel()

		// when
		key := entities.NormalizeKey("  Flask@1.0 ")

		// then
		assert.Equal(t, "flask@1.0", key)
	})

	t.Run("should treat differently cased keys as identical", func(t *testing.T) {
		t.Parallel()

		// then
		assert.Equal(t,
			entities.NormalizeKey("Django@1.6.1"),
			entities.NormalizeKey("django@1.6.1"),
		)
	})
}

func TestSortedKeys(t *testing.T) {
	t.Parallel()

	t.Run("should order keys by their normalized form", func(t *testing.T) {
		t.Parallel()

		// given
		entries := map[string]entities.VersionInfo{
			"Zope@2.0":   {UpgradeTo: "2.1"},
			"django@1.6": {UpgradeTo: "1.9"},
			"Flask@0.10": {UpgradeTo: "0.12"},
		}

		// when
		keys := entities.SortedKeys(entries)

		// then
		assert.Equal(t, []string{"django@1.6", "Flask@0.10", "Zope@2.0"}, keys)
	})
}

func TestVersionInfoTargetVersion(t *testing.T) {
	t.Parallel()

	t.Run("should strip the package qualifier", func(t *testing.T) {
		t.Parallel()

		// given
		info := entities.VersionInfo{UpgradeTo: "django@1.9.0"}

		// then
		assert.Equal(t, "1.9.0", info.TargetVersion())
	})

	t.Run("should return a bare version unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		info := entities.VersionInfo{UpgradeTo: "1.9.0"}

		// then
		assert.Equal(t, "1.9.0", info.TargetVersion())
	})
}

func TestRemediationChanges(t *testing.T) {
	t.Parallel()

	t.Run("should report nil and empty plans as empty", func(t *testing.T) {
		t.Parallel()

		// given
		var nilPlan *entities.RemediationChanges
		emptyPlan := &entities.RemediationChanges{}

		// then
		assert.True(t, nilPlan.IsEmpty())
		assert.True(t, emptyPlan.IsEmpty())
	})

	t.Run("should withhold pins in the upgrade-only subset", func(t *testing.T) {
		t.Parallel()

		// given
		plan := &entities.RemediationChanges{
			Pin:     map[string]entities.VersionInfo{"django@1.6.1": {UpgradeTo: "1.9.0"}},
			Upgrade: map[string]entities.VersionInfo{"flask@0.10": {UpgradeTo: "0.12"}},
		}

		// when
		subset := plan.UpgradeOnly()

		// then
		assert.Empty(t, subset.Pin)
		assert.Len(t, subset.Upgrade, 1)
	})
}

//go:build unit

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/remediate/internal/domain/commands"
	"github.com/rios0rios0/remediate/internal/domain/entities"
)

func TestLeftoverChanges(t *testing.T) {
	t.Parallel()

	t.Run("should subtract applied upgrade keys case-insensitively", func(t *testing.T) {
		t.Parallel()

		// given
		remediation := &entities.RemediationChanges{
			Pin: map[string]entities.VersionInfo{
				"Flask@1.0":    {UpgradeTo: "1.1.0"},
				"django@1.6.1": {UpgradeTo: "1.9.0"},
			},
			Upgrade: map[string]entities.VersionInfo{
				"flask@1.0": {UpgradeTo: "1.1.0"},
			},
		}
		applied := map[string]struct{}{"flask@1.0": {}}

		// when
		leftover := commands.LeftoverChanges(remediation, applied)

		// then
		assert.Empty(t, leftover.Upgrade)
		assert.Len(t, leftover.Pin, 1)
		assert.Contains(t, leftover.Pin, "django@1.6.1")
	})

	t.Run("should keep every pin when no upgrades were applied", func(t *testing.T) {
		t.Parallel()

		// given
		remediation := &entities.RemediationChanges{
			Pin: map[string]entities.VersionInfo{
				"django@1.6.1": {UpgradeTo: "1.9.0"},
			},
		}

		// when
		leftover := commands.LeftoverChanges(remediation, map[string]struct{}{})

		// then
		assert.Len(t, leftover.Pin, 1)
	})

	t.Run("should return an empty remediation when every pin was upgraded", func(t *testing.T) {
		t.Parallel()

		// given
		remediation := &entities.RemediationChanges{
			Pin: map[string]entities.VersionInfo{
				"django@1.6.1": {UpgradeTo: "1.9.0"},
			},
			Upgrade: map[string]entities.VersionInfo{
				"django@1.6.1": {UpgradeTo: "1.9.0"},
			},
		}
		applied := map[string]struct{}{"django@1.6.1": {}}

		// when
		leftover := commands.LeftoverChanges(remediation, applied)

		// then
		assert.True(t, leftover.IsEmpty())
	})
}

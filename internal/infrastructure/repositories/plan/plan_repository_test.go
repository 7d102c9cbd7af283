//go:build unit

package plan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/remediate/internal/infrastructure/repositories/plan"
	"github.com/rios0rios0/remediate/test/infrastructure/repositorydoubles"
)

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "remediation-plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPlanLoad(t *testing.T) {
	t.Parallel()

	t.Run("should load entities with their pin and upgrade mappings", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePlanFile(t, `
entities:
  - manifest: requirements.txt
    remediation:
      pin:
        django@1.6.1:
          upgradeTo: "1.9.0"
          vulns:
            - CVE-2016-2512
      upgrade:
        flask@0.10:
          upgradeTo: flask@0.12.3
`)

		// when
		doc, err := plan.Load(path)

		// then
		require.NoError(t, err)
		require.Len(t, doc.Entities, 1)
		entry := doc.Entities[0]
		assert.Equal(t, "requirements.txt", entry.Manifest)
		require.Contains(t, entry.Remediation.Pin, "django@1.6.1")
		assert.Equal(t, "1.9.0", entry.Remediation.Pin["django@1.6.1"].TargetVersion())
		assert.Equal(t, []string{"CVE-2016-2512"}, entry.Remediation.Pin["django@1.6.1"].Vulns)
		require.Contains(t, entry.Remediation.Upgrade, "flask@0.10")
		assert.Equal(t, "0.12.3", entry.Remediation.Upgrade["flask@0.10"].TargetVersion())
	})

	t.Run("should fail on a plan with no entities", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePlanFile(t, "entities: []\n")

		// when
		doc, err := plan.Load(path)

		// then
		require.Error(t, err)
		assert.Nil(t, doc)
		assert.ErrorContains(t, err, "no entities")
	})

	t.Run("should fail on malformed yaml", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePlanFile(t, "entities: [unclosed\n")

		// when
		_, err := plan.Load(path)

		// then
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to parse plan file")
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := plan.Load(filepath.Join(t.TempDir(), "nope.yaml"))

		// then
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to read plan file")
	})
}

func TestDocumentToEntities(t *testing.T) {
	t.Parallel()

	t.Run("should bind every entry to the workspace in order", func(t *testing.T) {
		t.Parallel()

		// given
		workspace := &repositorydoubles.DummyWorkspaceRepository{}
		doc := &plan.Document{
			Entities: []plan.Entry{
				{Manifest: "a/requirements.txt"},
				{Manifest: "b/requirements.txt"},
			},
		}

		// when
		toFix := doc.ToEntities(workspace)

		// then
		require.Len(t, toFix, 2)
		assert.Equal(t, "a/requirements.txt", toFix[0].ManifestPath)
		assert.Equal(t, "b/requirements.txt", toFix[1].ManifestPath)
		assert.Same(t, workspace, toFix[0].Workspace)
	})
}

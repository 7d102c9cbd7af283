//go:build unit

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/remediate/config"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	t.Run("should default the plan file name", func(t *testing.T) {
		t.Parallel()

		// when
		settings := config.Defaults()

		// then
		assert.Equal(t, "remediation-plan.yaml", settings.PlanFile)
		assert.False(t, settings.Verbose)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("should load settings from a yaml file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), ".remediate.yaml")
		require.NoError(t, os.WriteFile(path, []byte("plan_file: custom-plan.yaml\nverbose: true\n"), 0o644))

		// when
		settings, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "custom-plan.yaml", settings.PlanFile)
		assert.True(t, settings.Verbose)
	})

	t.Run("should fall back to the default plan file when unset", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), ".remediate.yaml")
		require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o644))

		// when
		settings, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "remediation-plan.yaml", settings.PlanFile)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))

		// then
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to read config file")
	})
}

// No t.Parallel here: t.Setenv forbids it.
func TestExpandEnv(t *testing.T) {
	t.Run("should expand a set environment variable", func(t *testing.T) {
		// given
		t.Setenv("REMEDIATE_PLAN_DIR", "/tmp/plans")

		// when
		expanded := config.ExpandEnv("${REMEDIATE_PLAN_DIR}/plan.yaml")

		// then
		assert.Equal(t, "/tmp/plans/plan.yaml", expanded)
	})

	t.Run("should replace an unset variable with an empty string", func(t *testing.T) {
		// when
		expanded := config.ExpandEnv("${REMEDIATE_UNSET_VAR}/plan.yaml")

		// then
		assert.Equal(t, "/plan.yaml", expanded)
	})

	t.Run("should pass through values without placeholders", func(t *testing.T) {
		// when
		expanded := config.ExpandEnv("plan.yaml")

		// then
		assert.Equal(t, "plan.yaml", expanded)
	})
}

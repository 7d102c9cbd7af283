//go:build unit

package requirements_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/remediate/internal/infrastructure/repositories/requirements"
	"github.com/rios0rios0/remediate/test/infrastructure/repositorydoubles"
)

func TestManifestRepositoryResolveProvenance(t *testing.T) {
	t.Parallel()

	repo := requirements.NewManifestRepository()

	t.Run("should resolve the include closure entry first", func(t *testing.T) {
		t.Parallel()

		// given
		workspace := &repositorydoubles.SpyWorkspaceRepository{
			Files: map[string]string{
				"proj/requirements.txt": "-r base.txt\nflask==0.10\n",
				"proj/base.txt":         "django==1.6.1\n",
			},
		}

		// when
		prov, err := repo.ResolveProvenance(context.Background(), workspace, "proj", "requirements.txt")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"requirements.txt", "base.txt"}, prov.Names())
		require.NotNil(t, prov.File("base.txt"))
		assert.Equal(t, "django==1.6.1\n", prov.File("base.txt").Render())
	})

	t.Run("should resolve includes relative to the including file", func(t *testing.T) {
		t.Parallel()

		// given
		workspace := &repositorydoubles.SpyWorkspaceRepository{
			Files: map[string]string{
				"proj/requirements.txt":  "-r deps/base.txt\n",
				"proj/deps/base.txt":     "-r ../shared/common.txt\n",
				"proj/shared/common.txt": "django==1.6.1\n",
			},
		}

		// when
		prov, err := repo.ResolveProvenance(context.Background(), workspace, "proj", "requirements.txt")

		// then
		require.NoError(t, err)
		assert.Equal(
			t,
			[]string{"requirements.txt", "deps/base.txt", "shared/common.txt"},
			prov.Names(),
		)
	})

	t.Run("should terminate on cyclic includes", func(t *testing.T) {
		t.Parallel()

		// given
		workspace := &repositorydoubles.SpyWorkspaceRepository{
			Files: map[string]string{
				"proj/requirements.txt": "-r base.txt\n",
				"proj/base.txt":         "-r requirements.txt\ndjango==1.6.1\n",
			},
		}

		// when
		prov, err := repo.ResolveProvenance(context.Background(), workspace, "proj", "requirements.txt")

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, prov.Len())
	})

	t.Run("should fail when an included file cannot be read", func(t *testing.T) {
		t.Parallel()

		// given
		readErr := errors.New("permission denied")
		workspace := &repositorydoubles.SpyWorkspaceRepository{
			Files: map[string]string{
				"proj/requirements.txt": "-r base.txt\n",
			},
			ReadErrs: map[string]error{
				"proj/base.txt": readErr,
			},
		}

		// when
		prov, err := repo.ResolveProvenance(context.Background(), workspace, "proj", "requirements.txt")

		// then
		require.Error(t, err)
		assert.Nil(t, prov)
		assert.ErrorIs(t, err, readErr)
		assert.ErrorContains(t, err, "base.txt")
	})
}

package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/remediate/internal/domain/repositories"
	"github.com/rios0rios0/remediate/internal/infrastructure/repositories/requirements"
)

// RegisterProviders registers all infrastructure repository providers with
// the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(requirements.NewManifestRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *requirements.ManifestRepository) domainRepos.ManifestRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}

package internal

import (
	"github.com/rios0rios0/remediate/internal/domain/commands"
	"github.com/rios0rios0/remediate/internal/domain/entities"
	"github.com/rios0rios0/remediate/internal/infrastructure/controllers"
	"github.com/rios0rios0/remediate/internal/infrastructure/repositories"
	"go.uber.org/dig"
)

// AppInternal aggregates the application's controllers.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application aggregate.
func NewAppInternal(ctrl *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: ctrl}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure repos -> domain entities -> domain commands -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app internal
	if err := container.Provide(NewAppInternal); err != nil {
		return err
	}

	return nil
}

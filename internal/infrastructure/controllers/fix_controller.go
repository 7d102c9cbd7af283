package controllers

import (
	"context"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/remediate/config"
	"github.com/rios0rios0/remediate/internal/domain/commands"
	"github.com/rios0rios0/remediate/internal/domain/entities"
	"github.com/rios0rios0/remediate/internal/infrastructure/repositories/plan"
	"github.com/rios0rios0/remediate/internal/infrastructure/repositories/project"
	"github.com/rios0rios0/remediate/internal/infrastructure/repositories/workspace"
)

// FixController handles the root command with a path argument: apply a
// remediation plan to the manifests of a local project checkout.
type FixController struct {
	command commands.Fix
}

// NewFixController creates a new FixController.
func NewFixController(command commands.Fix) *FixController {
	return &FixController{command: command}
}

// GetBind returns the Cobra command metadata for the fix controller.
func (it *FixController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "fix",
		Short: "Apply a remediation plan to a local project",
		Long: `Apply a remediation plan to the requirements manifests of a
local project checkout. Upgrades are applied before pins, every file is
rewritten at most once, and a failing entity never stops the rest of the
batch.`,
	}
}

// Execute runs the fix mode.
func (it *FixController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	planPath, _ := cmd.Flags().GetString("plan")
	configPath, _ := cmd.Flags().GetString("config")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	settings := loadSettings(configPath)
	if settings.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	inspectCheckout(path, dryRun)

	if planPath == "" {
		planPath = filepath.Join(path, settings.PlanFile)
	}

	doc, err := plan.Load(planPath)
	if err != nil {
		logger.Errorf("Failed to load remediation plan: %v", err)
		return
	}

	toFix := doc.ToEntities(workspace.NewLocalWorkspaceRepository(path))
	logger.Infof("Applying remediation plan %q to %d entities in %s", planPath, len(toFix), path)

	summary := it.command.Execute(ctx, toFix, entities.FixOptions{DryRun: dryRun})
	reportSummary(summary)
}

// loadSettings loads the named config file, or falls back to discovery and
// finally to defaults. A missing config file is not an error.
func loadSettings(configPath string) *config.Settings {
	if configPath == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			return config.Defaults()
		}
		configPath = found
	}

	settings, err := config.Load(configPath)
	if err != nil {
		logger.Warnf("Failed to load config %q: %v (using defaults)", configPath, err)
		return config.Defaults()
	}

	logger.Debugf("Using config file: %s", configPath)
	return settings
}

// inspectCheckout warns when fixes are about to be written into a dirty
// Git worktree.
func inspectCheckout(path string, dryRun bool) {
	checkout, err := project.DetectCheckout(path)
	if err != nil {
		logger.Warnf("Failed to inspect checkout at %q: %v", path, err)
		return
	}

	if !checkout.IsGit {
		logger.Debugf("No Git checkout found at %q, operating on the plain directory", path)
		return
	}

	logger.Infof("Checkout: %s (branch %s)", checkout.Root, checkout.Branch)
	if !checkout.Clean && !dryRun {
		logger.Warnf("Worktree has uncommitted changes; fixes will be mixed with them")
	}
}

// reportSummary logs the tri-partitioned outcome of a fix run.
func reportSummary(summary *entities.FixSummary) {
	for _, fixed := range summary.Succeeded {
		logger.Infof("Fixed %s:", fixed.Original.ManifestPath)
		for _, change := range fixed.Changes {
			logger.Infof("  %s", change.UserMessage)
		}
	}

	for _, failed := range summary.Failed {
		logger.Errorf("Failed %s: %v", failed.Original.ManifestPath, failed.Err)
	}

	for _, skipped := range summary.Skipped {
		logger.Infof("Skipped %s: %s", skipped.Original.ManifestPath, skipped.Reason)
	}

	logger.Infof(
		"Done: %d fixed, %d failed, %d skipped",
		len(summary.Succeeded), len(summary.Failed), len(summary.Skipped),
	)
}

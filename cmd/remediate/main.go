package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/remediate/internal"
	"github.com/rios0rios0/remediate/internal/infrastructure/controllers"
)

func buildRootCommand(fixController *controllers.FixController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "remediate [path]",
		Short: "Python requirements remediation engine",
		Long: `Apply a remediation plan (version pins and upgrades computed by a
vulnerability scanner) to the requirements manifests of a local project.

The engine resolves every file an entry manifest transitively includes,
applies upgrades before pins, rewrites each physical file at most once,
and reports success or failure per entity without ever aborting the batch.

Usage modes:
  remediate .              Fix the current project checkout
  remediate /path/to/repo  Fix a specific project checkout
  remediate plan           Validate and summarize a remediation plan`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			fixController.Execute(command, args)
			return nil
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("plan", "p", "",
		"Path to the remediation-plan file (default: <path>/remediation-plan.yaml)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Compute and report changes without writing anything")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	fixController := injectFixController()
	cobraRoot := buildRootCommand(fixController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'remediate': %s", err)
	}
}

package controllers

import (
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/remediate/internal/domain/entities"
	"github.com/rios0rios0/remediate/internal/infrastructure/repositories/plan"
)

// PlanController handles the "plan" subcommand: validate a remediation
// plan and show what it would touch, without reading any manifest.
type PlanController struct{}

// NewPlanController creates a new PlanController.
func NewPlanController() *PlanController {
	return &PlanController{}
}

// GetBind returns the Cobra command metadata for the plan controller.
func (it *PlanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "plan",
		Short: "Validate and summarize a remediation plan",
		Long: `Validate a remediation-plan file and print, per entity, the
pin and upgrade entries it declares. No manifest is read or modified.`,
	}
}

// Execute runs the plan inspection mode.
func (it *PlanController) Execute(cmd *cobra.Command, args []string) {
	planPath, _ := cmd.Flags().GetString("plan")
	if planPath == "" && len(args) > 0 {
		planPath = args[0]
	}
	if planPath == "" {
		planPath = filepath.Join(".", "remediation-plan.yaml")
	}

	doc, err := plan.Load(planPath)
	if err != nil {
		logger.Errorf("Invalid remediation plan: %v", err)
		return
	}

	logger.Infof("Plan %q declares %d entities", planPath, len(doc.Entities))
	for _, entry := range doc.Entities {
		logger.Infof("  %s:", entry.Manifest)
		if entry.Remediation.IsEmpty() {
			logger.Warnf("    no remediation entries")
			continue
		}
		for _, key := range entities.SortedKeys(entry.Remediation.Upgrade) {
			info := entry.Remediation.Upgrade[key]
			logger.Infof("    upgrade %s -> %s", key, info.TargetVersion())
		}
		for _, key := range entities.SortedKeys(entry.Remediation.Pin) {
			info := entry.Remediation.Pin[key]
			logger.Infof("    pin %s -> %s", key, info.TargetVersion())
		}
	}
}

package entities

import "errors"

// Error conditions raised during a fix run. Each one is raised at the point
// of detection and caught exactly once, at the per-entity boundary; none of
// them ever aborts the batch.
var (
	// ErrMissingRemediationPlan means the entity carries no remediation plan.
	ErrMissingRemediationPlan = errors.New("entity has no remediation plan")

	// ErrMissingTargetFile means the entity names no target manifest.
	ErrMissingTargetFile = errors.New("entity has no target file name")

	// ErrNoWorkspace means the entity is not bound to a workspace.
	ErrNoWorkspace = errors.New("entity has no workspace reference")

	// ErrNoFixesApplied means applying the full plan across the entity's
	// provenance closure produced zero textual changes.
	ErrNoFixesApplied = errors.New("no fixes could be applied")
)

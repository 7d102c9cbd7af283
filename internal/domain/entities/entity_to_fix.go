package entities

// EntityToFix is one remediation unit: a target manifest path, its
// remediation plan, and a reference to the owning workspace. It is created
// upstream and immutable for the duration of a fix run.
type EntityToFix struct {
	// ManifestPath is the workspace-relative path of the entry manifest.
	ManifestPath string
	Remediation  *RemediationChanges
	Workspace    Workspace
}

// FixOptions holds runtime options for a fix run.
type FixOptions struct {
	// DryRun suppresses writes and reports would-be changes only.
	DryRun bool
}

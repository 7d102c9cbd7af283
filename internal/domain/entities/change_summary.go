package entities

// FixChangesSummary is one record per applied or failed textual change.
type FixChangesSummary struct {
	Success     bool
	UserMessage string
	PackageKey  string // original-case package-identity key
	From        string
	To          string
	FileName    string
	IssueIDs    []string
}

// MutationOptions controls how a remediation subset is applied to one
// parsed manifest file.
type MutationOptions struct {
	// DirectOnly restricts matching to direct dependency lines.
	DirectOnly bool
	// FileFilter, when set, applies the subset only to the file with this
	// exact name.
	FileFilter string
}

// MutationResult is the outcome of applying a remediation subset to one
// parsed manifest file.
type MutationResult struct {
	UpdatedText string
	Changed     bool
	Summaries   []FixChangesSummary
	// AppliedKeys lists the original-case remediation keys actually applied.
	AppliedKeys []string
}

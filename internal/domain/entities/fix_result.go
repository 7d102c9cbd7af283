package entities

// FixedEntity is one entity whose remediation succeeded, with every change
// applied on its behalf.
type FixedEntity struct {
	Original EntityToFix
	Changes  []FixChangesSummary
}

// FailedEntity is one entity whose remediation failed. The failure is final
// for this run; the batch itself always completes.
type FailedEntity struct {
	Original EntityToFix
	Err      error
}

// SkippedEntity is one entity the engine does not support.
type SkippedEntity struct {
	Original EntityToFix
	Reason   string
}

// FixSummary is the tri-partitioned result of a batch fix run. Every input
// entity appears in exactly one partition.
type FixSummary struct {
	Succeeded []FixedEntity
	Failed    []FailedEntity
	Skipped   []SkippedEntity
}

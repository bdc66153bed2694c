package jira

// Test-only accessors for the upstream error classification
var (
	Classify   = classify
	IsConflict = isConflict
)

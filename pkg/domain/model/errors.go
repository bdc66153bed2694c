package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for categorization
var (
	// ErrTagConfig marks missing or invalid configuration. Fatal before
	// any row is processed.
	ErrTagConfig = goerr.NewTag("config")

	// ErrTagInput marks an unreadable or malformed CSV/mapping file.
	// Fatal for the run.
	ErrTagInput = goerr.NewTag("input")

	// ErrTagConflict marks an upstream "already exists" response. Recovered
	// per row and counted as already satisfied.
	ErrTagConflict = goerr.NewTag("conflict")

	// ErrTagUpstream marks any other upstream API failure. Recovered per
	// row; the row is counted as failed and the run continues.
	ErrTagUpstream = goerr.NewTag("upstream")
)

// Sentinel errors for batch runs
var (
	ErrRowsFailed = goerr.New("one or more rows failed")
)

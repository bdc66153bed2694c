package model

import "fmt"

// Plan is the dry-run buffer: an append-only, ordered list of descriptions
// of actions that would have been taken. Entries keep CSV row order and are
// flushed to a file once, at the end of the run.
type Plan struct {
	entries []string
}

// Describe appends one entry for the given record
func (p *Plan) Describe(rec *UserRecord) {
	p.entries = append(p.entries,
		fmt.Sprintf("row %d: would create user %q and add to group %q",
			rec.Row, rec.Username, rec.Group))
}

// Entries returns the accumulated entries in insertion order
func (p *Plan) Entries() []string {
	return p.entries
}

// Len returns the number of accumulated entries
func (p *Plan) Len() int {
	return len(p.entries)
}

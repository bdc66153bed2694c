package model

// RunMode selects between live execution and dry-run for an entire
// invocation. It is fixed before the first row is read and passed into the
// dispatcher explicitly; there is no per-record override.
type RunMode int

const (
	RunModeLive RunMode = iota
	RunModeDryRun
)

// String returns the string representation
func (m RunMode) String() string {
	switch m {
	case RunModeDryRun:
		return "dry-run"
	default:
		return "live"
	}
}

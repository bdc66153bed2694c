package model

// OutcomeStatus classifies the result of dispatching one record
type OutcomeStatus string

const (
	// OutcomeCreated means both upstream calls succeeded
	OutcomeCreated OutcomeStatus = "created"

	// OutcomeAlreadySatisfied means the upstream reported the requested
	// state already holds (user exists and/or is already a group member)
	OutcomeAlreadySatisfied OutcomeStatus = "already-satisfied"

	// OutcomeFailed means an upstream call failed with a non-conflict error
	OutcomeFailed OutcomeStatus = "failed"

	// OutcomePlanned means dry-run recorded the action instead of calling
	// the upstream
	OutcomePlanned OutcomeStatus = "planned"
)

// Stage names for failed outcomes, so a partial failure (user created but
// group membership not) is distinguishable from a total one.
const (
	StageCreateUser = "create-user"
	StageAddToGroup = "add-to-group"
)

// Outcome is the per-row result used for console reporting
type Outcome struct {
	Record *UserRecord
	Status OutcomeStatus
	Stage  string // set only when Status is OutcomeFailed
	Error  string // upstream error message, if any
}

// Summary accumulates per-row outcomes for the final report
type Summary struct {
	Processed        int
	Created          int
	AlreadySatisfied int
	Failed           int
	Planned          int
}

// Add folds one outcome into the summary
func (s *Summary) Add(o *Outcome) {
	s.Processed++
	switch o.Status {
	case OutcomeCreated:
		s.Created++
	case OutcomeAlreadySatisfied:
		s.AlreadySatisfied++
	case OutcomeFailed:
		s.Failed++
	case OutcomePlanned:
		s.Planned++
	}
}

// HasFailure reports whether any row hard-failed
func (s *Summary) HasFailure() bool {
	return s.Failed > 0
}

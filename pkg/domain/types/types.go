package types

import (
	"fmt"

	"github.com/google/uuid"
)

// Username represents a Jira account username (or account email)
type Username string

// String returns the string representation
func (u Username) String() string {
	return string(u)
}

// GroupName represents a Jira group name
type GroupName string

// String returns the string representation
func (g GroupName) String() string {
	return string(g)
}

// RunID identifies a single batch invocation in logs and reports
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID
func NewRunID() RunID {
	return RunID(fmt.Sprintf("run-%s", uuid.New().String()))
}

package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/types"
)

// UserRecord represents one data row of the input CSV. It is built once by
// the row source and consumed exactly once by the dispatcher.
type UserRecord struct {
	Username    types.Username
	Email       string
	DisplayName string
	Group       types.GroupName

	// Extra holds columns that are present in the file but not part of the
	// canonical schema, keyed by canonical header name.
	Extra map[string]string

	// Row is the 1-based data row number (header excluded)
	Row int
}

// Validate checks the fields the dispatcher depends on
func (r *UserRecord) Validate() error {
	if r.Username == "" {
		return goerr.New("username is required",
			goerr.V("row", r.Row),
			goerr.T(ErrTagInput))
	}
	if r.Group == "" {
		return goerr.New("group is required",
			goerr.V("row", r.Row),
			goerr.V("username", r.Username),
			goerr.T(ErrTagInput))
	}
	return nil
}

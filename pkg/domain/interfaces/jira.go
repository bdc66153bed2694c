package interfaces

//go:generate moq -out mocks/jira_mock.go -pkg mocks . JiraClient

import (
	"context"

	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
)

// JiraClient defines the two upstream operations the dispatcher needs, plus
// an auth check run once before a live batch.
type JiraClient interface {
	// Verify checks that the configured credentials are accepted
	Verify(ctx context.Context) error

	// CreateUser creates the user described by the record
	CreateUser(ctx context.Context, rec *model.UserRecord) error

	// AddUserToGroup adds an existing user to a group
	AddUserToGroup(ctx context.Context, username types.Username, group types.GroupName) error
}

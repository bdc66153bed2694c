package jira

import (
	"context"
	"net/http"
	"strings"

	jira "github.com/andygrunwald/go-jira"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/interfaces"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
)

// Service provides the user provisioning operations against a Jira site
type Service struct {
	client *jira.Client
}

var _ interfaces.JiraClient = (*Service)(nil)

// New creates a new Jira service authenticated with basic auth (account
// email + API token).
func New(baseURL, username, apiToken string) (*Service, error) {
	tp := jira.BasicAuthTransport{
		Username: username,
		Password: apiToken,
	}
	client, err := jira.NewClient(tp.Client(), baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Jira client",
			goerr.V("base_url", baseURL),
			goerr.T(model.ErrTagConfig))
	}
	return &Service{client: client}, nil
}

// Verify checks the credentials against the current-user endpoint so a bad
// token fails before any row is processed.
func (s *Service) Verify(ctx context.Context) error {
	if _, resp, err := s.client.User.GetSelfWithContext(ctx); err != nil {
		return classify(ctx, err, resp, "failed to authenticate with Jira")
	}
	return nil
}

// CreateUser creates the user described by the record
func (s *Service) CreateUser(ctx context.Context, rec *model.UserRecord) error {
	user := &jira.User{
		Name:         rec.Username.String(),
		EmailAddress: rec.Email,
		DisplayName:  rec.DisplayName,
	}
	if _, resp, err := s.client.User.CreateWithContext(ctx, user); err != nil {
		return classify(ctx, err, resp, "failed to create Jira user",
			goerr.V("username", rec.Username),
			goerr.V("row", rec.Row))
	}
	return nil
}

// AddUserToGroup adds an existing user to a group
func (s *Service) AddUserToGroup(ctx context.Context, username types.Username, group types.GroupName) error {
	if _, resp, err := s.client.Group.AddWithContext(ctx, group.String(), username.String()); err != nil {
		return classify(ctx, err, resp, "failed to add Jira user to group",
			goerr.V("username", username),
			goerr.V("group", group))
	}
	return nil
}

// classify wraps an upstream error with the tag the dispatcher's per-row
// recovery keys on. Cancellation is passed through untouched so an
// interrupt is never mistaken for a row failure.
func classify(ctx context.Context, err error, resp *jira.Response, msg string, options ...goerr.Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	tag := model.ErrTagUpstream
	if isConflict(err, resp) {
		tag = model.ErrTagConflict
	}

	options = append(options, goerr.T(tag))
	if resp != nil && resp.Response != nil {
		options = append(options, goerr.V("status", resp.StatusCode))
	}
	return goerr.Wrap(err, msg, options...)
}

// isConflict detects the "already exists" family of responses. Jira Cloud
// reports an existing user or membership as 400 with an "already ..."
// message rather than 409, so both shapes are matched.
func isConflict(err error, resp *jira.Response) bool {
	if resp == nil || resp.Response == nil {
		return false
	}
	switch resp.StatusCode {
	case http.StatusConflict:
		return true
	case http.StatusBadRequest:
		return err != nil && strings.Contains(strings.ToLower(err.Error()), "already")
	}
	return false
}

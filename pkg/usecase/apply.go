package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/interfaces"
	"github.com/secmon-lab/roster/pkg/domain/model"
)

// RowSource yields records one at a time, io.EOF terminated
type RowSource interface {
	Next() (*model.UserRecord, error)
}

// RowReporter receives each outcome as it is produced
type RowReporter interface {
	Row(o *model.Outcome)
}

// Apply dispatches CSV records against the upstream tracker, or into the
// dry-run plan. The mode is fixed at construction for the whole run.
type Apply struct {
	jiraClient interfaces.JiraClient
	mode       model.RunMode
	plan       model.Plan
}

// NewApply creates the batch use case
func NewApply(jiraClient interfaces.JiraClient, mode model.RunMode) *Apply {
	return &Apply{
		jiraClient: jiraClient,
		mode:       mode,
	}
}

// Plan returns the dry-run buffer accumulated so far
func (u *Apply) Plan() *model.Plan {
	return &u.plan
}

// Run processes every record in source order, strictly one at a time. The
// returned summary is valid even when an error is returned, so the caller
// can still flush the report for the rows processed before an abort.
func (u *Apply) Run(ctx context.Context, src RowSource, rep RowReporter) (*model.Summary, error) {
	logger := ctxlog.From(ctx)
	logger.Info("Starting batch run", "mode", u.mode.String())

	var summary model.Summary
	for {
		if err := ctx.Err(); err != nil {
			return &summary, err
		}

		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &summary, err
		}

		outcome, err := u.Dispatch(ctx, rec)
		if err != nil {
			return &summary, err
		}

		summary.Add(outcome)
		rep.Row(outcome)
		logger.Debug("Row dispatched",
			"row", rec.Row,
			"username", rec.Username,
			"status", outcome.Status)
	}

	logger.Info("Batch run finished",
		"processed", summary.Processed,
		"created", summary.Created,
		"already_satisfied", summary.AlreadySatisfied,
		"failed", summary.Failed,
		"planned", summary.Planned)

	if summary.HasFailure() {
		return &summary, goerr.Wrap(model.ErrRowsFailed, "batch completed with failures",
			goerr.V("failed", summary.Failed),
			goerr.V("processed", summary.Processed))
	}
	return &summary, nil
}

// Dispatch handles exactly one record: in dry-run it appends one plan entry
// and never touches the network; live it calls create-user then
// add-to-group, in that order. Only conflict- and upstream-tagged errors
// are recovered into an outcome; anything else (notably cancellation)
// propagates.
func (u *Apply) Dispatch(ctx context.Context, rec *model.UserRecord) (*model.Outcome, error) {
	if u.mode == model.RunModeDryRun {
		u.plan.Describe(rec)
		return &model.Outcome{Record: rec, Status: model.OutcomePlanned}, nil
	}

	conflict := false

	if err := u.jiraClient.CreateUser(ctx, rec); err != nil {
		switch {
		case goerr.HasTag(err, model.ErrTagConflict):
			// User exists; membership may still be missing, keep going
			conflict = true
		case goerr.HasTag(err, model.ErrTagUpstream):
			return &model.Outcome{
				Record: rec,
				Status: model.OutcomeFailed,
				Stage:  model.StageCreateUser,
				Error:  err.Error(),
			}, nil
		default:
			return nil, err
		}
	}

	if err := u.jiraClient.AddUserToGroup(ctx, rec.Username, rec.Group); err != nil {
		switch {
		case goerr.HasTag(err, model.ErrTagConflict):
			conflict = true
		case goerr.HasTag(err, model.ErrTagUpstream):
			return &model.Outcome{
				Record: rec,
				Status: model.OutcomeFailed,
				Stage:  model.StageAddToGroup,
				Error:  err.Error(),
			}, nil
		default:
			return nil, err
		}
	}

	status := model.OutcomeCreated
	if conflict {
		status = model.OutcomeAlreadySatisfied
	}
	return &model.Outcome{Record: rec, Status: status}, nil
}

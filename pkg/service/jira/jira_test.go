package jira_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	gojira "github.com/andygrunwald/go-jira"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roster/pkg/domain/model"
	jiraSvc "github.com/secmon-lab/roster/pkg/service/jira"
)

func response(status int) *gojira.Response {
	return &gojira.Response{Response: &http.Response{StatusCode: status}}
}

func TestClassifyConflict(t *testing.T) {
	ctx := context.Background()

	t.Run("409 is a conflict", func(t *testing.T) {
		err := jiraSvc.Classify(ctx, errors.New("conflict"), response(http.StatusConflict), "failed")
		gt.B(t, goerr.HasTag(err, model.ErrTagConflict)).True()
		gt.B(t, goerr.HasTag(err, model.ErrTagUpstream)).False()
	})

	t.Run("400 with already-exists message is a conflict", func(t *testing.T) {
		cause := errors.New("A user with that username already exists")
		err := jiraSvc.Classify(ctx, cause, response(http.StatusBadRequest), "failed")
		gt.B(t, goerr.HasTag(err, model.ErrTagConflict)).True()
	})

	t.Run("other 400 is upstream", func(t *testing.T) {
		cause := errors.New("username is invalid")
		err := jiraSvc.Classify(ctx, cause, response(http.StatusBadRequest), "failed")
		gt.B(t, goerr.HasTag(err, model.ErrTagUpstream)).True()
		gt.B(t, goerr.HasTag(err, model.ErrTagConflict)).False()
	})

	t.Run("500 is upstream", func(t *testing.T) {
		err := jiraSvc.Classify(ctx, errors.New("internal error"), response(http.StatusInternalServerError), "failed")
		gt.B(t, goerr.HasTag(err, model.ErrTagUpstream)).True()
	})

	t.Run("no response is upstream", func(t *testing.T) {
		err := jiraSvc.Classify(ctx, errors.New("connection refused"), nil, "failed")
		gt.B(t, goerr.HasTag(err, model.ErrTagUpstream)).True()
	})
}

func TestClassifyCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := jiraSvc.Classify(ctx, errors.New("request aborted"), nil, "failed")
	gt.B(t, errors.Is(err, context.Canceled)).True()
	gt.B(t, goerr.HasTag(err, model.ErrTagUpstream)).False()
	gt.B(t, goerr.HasTag(err, model.ErrTagConflict)).False()
}

func TestIsConflict(t *testing.T) {
	gt.B(t, jiraSvc.IsConflict(errors.New("x"), nil)).False()
	gt.B(t, jiraSvc.IsConflict(nil, response(http.StatusConflict))).True()
	gt.B(t, jiraSvc.IsConflict(nil, response(http.StatusBadRequest))).False()
}

package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roster/pkg/domain/model"
)

func TestUserRecordValidate(t *testing.T) {
	t.Run("accepts complete record", func(t *testing.T) {
		rec := &model.UserRecord{
			Username: "alice",
			Email:    "alice@example.com",
			Group:    "admin",
			Row:      1,
		}
		gt.NoError(t, rec.Validate())
	})

	t.Run("rejects missing username", func(t *testing.T) {
		rec := &model.UserRecord{
			Group: "admin",
			Row:   3,
		}
		err := rec.Validate()
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInput)).True()
		gt.S(t, err.Error()).Contains("username is required")
	})

	t.Run("rejects missing group", func(t *testing.T) {
		rec := &model.UserRecord{
			Username: "alice",
			Row:      2,
		}
		err := rec.Validate()
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInput)).True()
		gt.S(t, err.Error()).Contains("group is required")
	})
}

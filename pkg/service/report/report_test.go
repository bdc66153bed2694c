package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/service/report"
)

func TestReporterRows(t *testing.T) {
	var buf bytes.Buffer
	rep := report.New(&buf)

	alice := &model.UserRecord{Username: "alice", Group: "admin", Row: 1}
	bob := &model.UserRecord{Username: "bob", Group: "admin", Row: 2}

	rep.Row(&model.Outcome{Record: alice, Status: model.OutcomeCreated})
	rep.Row(&model.Outcome{Record: bob, Status: model.OutcomeAlreadySatisfied})
	rep.Row(&model.Outcome{
		Record: &model.UserRecord{Username: "carol", Group: "admin", Row: 3},
		Status: model.OutcomeFailed,
		Stage:  model.StageAddToGroup,
		Error:  "group not found",
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	gt.Equal(t, len(lines), 3)
	gt.S(t, lines[0]).Contains(`created user "alice"`)
	gt.S(t, lines[1]).Contains(`already satisfied`)
	gt.S(t, lines[2]).Contains("add-to-group")
	gt.S(t, lines[2]).Contains("group not found")
}

func TestReporterSummary(t *testing.T) {
	t.Run("live summary", func(t *testing.T) {
		var buf bytes.Buffer
		rep := report.New(&buf)
		rep.Summary(&model.Summary{
			Processed:        3,
			Created:          1,
			AlreadySatisfied: 1,
			Failed:           1,
		}, model.RunModeLive)
		gt.S(t, buf.String()).Contains("1 created, 1 already satisfied, 1 failed (3 rows)")
	})

	t.Run("dry-run summary", func(t *testing.T) {
		var buf bytes.Buffer
		rep := report.New(&buf)
		rep.Summary(&model.Summary{Processed: 2, Planned: 2}, model.RunModeDryRun)
		gt.S(t, buf.String()).Contains("2 rows planned")
	})
}

func TestReporterWritePlan(t *testing.T) {
	var plan model.Plan
	plan.Describe(&model.UserRecord{Username: "alice", Group: "admin", Row: 1})
	plan.Describe(&model.UserRecord{Username: "bob", Group: "admin", Row: 2})

	path := filepath.Join(t.TempDir(), "plan.log")
	rep := report.New(&bytes.Buffer{})
	gt.NoError(t, rep.WritePlan(path, &plan))

	data, err := os.ReadFile(path)
	gt.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	gt.Equal(t, len(lines), 2)
	gt.S(t, lines[0]).Contains(`"alice"`)
	gt.S(t, lines[1]).Contains(`"bob"`)
}

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/model"
)

// Reporter writes per-row status lines and the final summary. This is the
// program's user-facing output, separate from structured logging.
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to w
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Row prints one status line for a dispatched record
func (r *Reporter) Row(o *model.Outcome) {
	switch o.Status {
	case model.OutcomeCreated:
		fmt.Fprintf(r.w, "row %d: created user %q in group %q\n",
			o.Record.Row, o.Record.Username, o.Record.Group)
	case model.OutcomeAlreadySatisfied:
		fmt.Fprintf(r.w, "row %d: user %q already satisfied in group %q\n",
			o.Record.Row, o.Record.Username, o.Record.Group)
	case model.OutcomeFailed:
		fmt.Fprintf(r.w, "row %d: user %q failed at %s: %s\n",
			o.Record.Row, o.Record.Username, o.Stage, o.Error)
	case model.OutcomePlanned:
		fmt.Fprintf(r.w, "row %d: planned user %q for group %q\n",
			o.Record.Row, o.Record.Username, o.Record.Group)
	}
}

// Summary prints the final counts
func (r *Reporter) Summary(s *model.Summary, mode model.RunMode) {
	if mode == model.RunModeDryRun {
		fmt.Fprintf(r.w, "dry-run complete: %d rows planned\n", s.Planned)
		return
	}
	fmt.Fprintf(r.w, "run complete: %d created, %d already satisfied, %d failed (%d rows)\n",
		s.Created, s.AlreadySatisfied, s.Failed, s.Processed)
}

// WritePlan flushes the dry-run plan to path in one pass, one line per
// entry, in input order.
func (r *Reporter) WritePlan(path string, plan *model.Plan) error {
	var b strings.Builder
	for _, entry := range plan.Entries() {
		b.WriteString(entry)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return goerr.Wrap(err, "failed to write plan file",
			goerr.V("path", path))
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/roster/pkg/cli/config"
	"github.com/secmon-lab/roster/pkg/service/source"
	"github.com/secmon-lab/roster/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// cmdValidate parses the CSV and mapping without credentials or network
// access, so a roster can be checked before a live run.
func cmdValidate() *cli.Command {
	var inputCfg config.Input

	return &cli.Command{
		Name:  "validate",
		Usage: "Check the CSV and mapping without calling the Jira API",
		Flags: inputCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			mapping, err := inputCfg.LoadMapping()
			if err != nil {
				apperr.Handle(ctx, err)
				return err
			}

			src, err := source.Open(inputCfg.Path, mapping)
			if err != nil {
				apperr.Handle(ctx, err)
				return err
			}
			defer src.Close()

			rows := 0
			for {
				rec, err := src.Next()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					apperr.Handle(ctx, err)
					return err
				}
				rows++
				logger.Debug("Row parsed", "row", rec.Row, "username", rec.Username)
			}

			fmt.Fprintf(os.Stdout, "%s: %d rows OK\n", inputCfg.Path, rows)
			return nil
		},
	}
}

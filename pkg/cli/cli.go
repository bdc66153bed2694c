package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/cli/config"
	"github.com/secmon-lab/roster/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger

	app := &cli.Command{
		Name:    "roster",
		Usage:   "Batch user provisioning for Jira from a CSV roster",
		Version: "0.1.0",
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			logger = logger.With(slog.String("run_id", types.NewRunID().String()))

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdApply(),
			cmdValidate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}

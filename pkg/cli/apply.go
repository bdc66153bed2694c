package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/roster/pkg/cli/config"
	"github.com/secmon-lab/roster/pkg/domain/interfaces"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/service/report"
	"github.com/secmon-lab/roster/pkg/service/source"
	"github.com/secmon-lab/roster/pkg/usecase"
	"github.com/secmon-lab/roster/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

func cmdApply() *cli.Command {
	var (
		jiraCfg  config.Jira
		inputCfg config.Input
		dryRun   bool
		planPath string
	)

	flags := joinFlags(
		inputCfg.Flags(),
		jiraCfg.Flags(),
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Log planned actions to a file instead of calling the Jira API",
				Sources:     cli.EnvVars("ROSTER_DRY_RUN"),
				Destination: &dryRun,
			},
			&cli.StringFlag{
				Name:        "plan-output",
				Usage:       "Path of the dry-run plan file",
				Value:       "roster-plan.log",
				Sources:     cli.EnvVars("ROSTER_PLAN_OUTPUT"),
				Destination: &planPath,
			},
		},
	)

	return &cli.Command{
		Name:  "apply",
		Usage: "Create the users listed in the CSV and add them to their groups",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			mode := model.RunModeLive
			if dryRun {
				mode = model.RunModeDryRun
			}

			logger.Info("Starting apply",
				slog.String("mode", mode.String()),
				slog.Any("input", inputCfg),
				slog.Any("jira", jiraCfg),
			)

			// Credentials are read and checked before any row is touched,
			// in dry-run as well.
			if err := jiraCfg.Validate(); err != nil {
				apperr.Handle(ctx, err)
				return err
			}

			var jiraClient interfaces.JiraClient
			if mode == model.RunModeLive {
				client, err := jiraCfg.Configure()
				if err != nil {
					apperr.Handle(ctx, err)
					return err
				}
				jiraClient = client
			}

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

			// An interrupt cancels the in-flight API call and the loop;
			// the plan and summary collected so far are still flushed.
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if mode == model.RunModeLive {
				if err := jiraClient.Verify(ctx); err != nil {
					apperr.Handle(ctx, err)
					return err
				}
			}

			uc := usecase.NewApply(jiraClient, mode)
			rep := report.New(os.Stdout)

			summary, runErr := uc.Run(ctx, src, rep)
			rep.Summary(summary, mode)

			if mode == model.RunModeDryRun {
				if err := rep.WritePlan(planPath, uc.Plan()); err != nil {
					apperr.Handle(ctx, err)
					return err
				}
				logger.Info("Plan written",
					slog.String("path", planPath),
					slog.Int("entries", uc.Plan().Len()))
			}

			if runErr != nil {
				apperr.Handle(ctx, runErr)
				return runErr
			}
			return nil
		},
	}
}

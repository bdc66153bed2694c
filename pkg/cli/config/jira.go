package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/model"
	jiraSvc "github.com/secmon-lab/roster/pkg/service/jira"
	"github.com/urfave/cli/v3"
)

// Jira holds the upstream tracker configuration. The API token is a secret:
// it is read from the environment (or flag), held for the process lifetime,
// and never logged or written to disk.
type Jira struct {
	BaseURL  string
	Username string
	APIToken string
}

// Flags returns CLI flags for Jira configuration
func (j *Jira) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jira-url",
			Usage:       "Base URL of the Jira site (e.g. https://example.atlassian.net)",
			Category:    "Jira",
			Sources:     cli.EnvVars("ROSTER_JIRA_URL"),
			Destination: &j.BaseURL,
		},
		&cli.StringFlag{
			Name:        "jira-user",
			Usage:       "Jira account email used for API authentication",
			Category:    "Jira",
			Sources:     cli.EnvVars("ROSTER_JIRA_USER"),
			Destination: &j.Username,
		},
		&cli.StringFlag{
			Name:        "jira-api-token",
			Usage:       "Jira API token",
			Category:    "Jira",
			Sources:     cli.EnvVars("ROSTER_JIRA_API_TOKEN"),
			Destination: &j.APIToken,
		},
	}
}

// Validate fails fast when a required value is missing, before any row is
// processed.
func (j *Jira) Validate() error {
	if j.BaseURL == "" {
		return goerr.New("Jira base URL is required (ROSTER_JIRA_URL)",
			goerr.T(model.ErrTagConfig))
	}
	if j.Username == "" {
		return goerr.New("Jira account is required (ROSTER_JIRA_USER)",
			goerr.T(model.ErrTagConfig))
	}
	if j.APIToken == "" {
		return goerr.New("Jira API token is required (ROSTER_JIRA_API_TOKEN)",
			goerr.T(model.ErrTagConfig))
	}
	return nil
}

// Configure creates the Jira service
func (j *Jira) Configure() (*jiraSvc.Service, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return jiraSvc.New(j.BaseURL, j.Username, j.APIToken)
}

// LogValue returns structured log value; the token itself is redacted
func (j Jira) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", j.BaseURL),
		slog.String("user", j.Username),
		slog.Bool("has_api_token", j.APIToken != ""),
	)
}

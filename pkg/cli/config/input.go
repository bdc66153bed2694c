package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Input holds the CSV input configuration
type Input struct {
	Path        string
	MappingPath string
}

// Flags returns CLI flags for Input configuration
func (c *Input) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path of the input CSV file",
			Category:    "Input",
			Required:    true,
			Sources:     cli.EnvVars("ROSTER_INPUT"),
			Destination: &c.Path,
		},
		&cli.StringFlag{
			Name:        "mapping",
			Usage:       "Path of an optional YAML column mapping file",
			Category:    "Input",
			Sources:     cli.EnvVars("ROSTER_MAPPING"),
			Destination: &c.MappingPath,
		},
	}
}

// LoadMapping loads and validates the column mapping, or returns the
// identity mapping when no file is configured.
func (c *Input) LoadMapping() (*model.Mapping, error) {
	if c.MappingPath == "" {
		return model.DefaultMapping(), nil
	}

	data, err := os.ReadFile(c.MappingPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "mapping file not found",
				goerr.V("path", c.MappingPath),
				goerr.T(model.ErrTagInput))
		}
		return nil, goerr.Wrap(err, "failed to read mapping file",
			goerr.V("path", c.MappingPath),
			goerr.T(model.ErrTagInput))
	}

	var mapping model.Mapping
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, goerr.Wrap(err, "failed to parse mapping YAML",
			goerr.V("path", c.MappingPath),
			goerr.T(model.ErrTagInput))
	}

	if err := mapping.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid mapping",
			goerr.V("path", c.MappingPath))
	}

	return &mapping, nil
}

// LogValue returns structured log value
func (c Input) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", c.Path),
		slog.String("mapping", c.MappingPath),
	)
}

package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/gotobot/pkg/domain/model"
	"github.com/secmon-lab/gotobot/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Move holds the tuning of the /goto flow
type Move struct {
	PacingDelay      time.Duration `validate:"min=0s,max=5s"`
	SelectionTimeout time.Duration `validate:"min=5s,max=10m"`
	IncludeBots      bool
}

// Flags returns CLI flags for Move configuration
func (m *Move) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "pacing-delay",
			Usage:       "Pause between two member moves",
			Category:    "Move",
			Value:       usecase.DefaultPacingDelay,
			Sources:     cli.EnvVars("GOTOBOT_PACING_DELAY"),
			Destination: &m.PacingDelay,
		},
		&cli.DurationFlag{
			Name:        "selection-timeout",
			Usage:       "How long the destination picker stays usable (at most 10m, interaction tokens expire after 15m)",
			Category:    "Move",
			Value:       usecase.DefaultSelectionTimeout,
			Sources:     cli.EnvVars("GOTOBOT_SELECTION_TIMEOUT"),
			Destination: &m.SelectionTimeout,
		},
		&cli.BoolFlag{
			Name:        "include-bots",
			Usage:       "Move automated accounts along with members",
			Category:    "Move",
			Sources:     cli.EnvVars("GOTOBOT_INCLUDE_BOTS"),
			Destination: &m.IncludeBots,
		},
	}
}

// Validate validates the Move configuration
func (m *Move) Validate() error {
	return validateStruct("move", m)
}

// Policy returns the occupant policy selected by the flags
func (m *Move) Policy() model.OccupantPolicy {
	if m.IncludeBots {
		return model.IncludeBots
	}
	return model.ExcludeBots
}

// LogValue returns structured log value
func (m Move) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("pacing_delay", m.PacingDelay),
		slog.Duration("selection_timeout", m.SelectionTimeout),
		slog.String("policy", m.Policy().String()),
	)
}

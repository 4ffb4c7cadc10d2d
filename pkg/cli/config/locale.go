package config

import (
	"log/slog"

	"github.com/secmon-lab/gotobot/pkg/i18n"
	"github.com/urfave/cli/v3"
)

// Locale holds the language of operator-facing messages
type Locale struct {
	Locale       string `validate:"required,locale"`
	MessagesFile string `validate:"omitempty,file"`
}

// Flags returns CLI flags for Locale configuration
func (l *Locale) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "locale",
			Usage:       "Language of replies (en, ro)",
			Category:    "Messages",
			Value:       i18n.BaseLocale,
			Sources:     cli.EnvVars("GOTOBOT_LOCALE"),
			Destination: &l.Locale,
		},
		&cli.StringFlag{
			Name:        "messages-file",
			Usage:       "YAML file overriding some replies of the selected locale",
			Category:    "Messages",
			Sources:     cli.EnvVars("GOTOBOT_MESSAGES_FILE"),
			Destination: &l.MessagesFile,
		},
	}
}

// Validate validates the Locale configuration
func (l *Locale) Validate() error {
	return validateStruct("locale", l)
}

// Configure loads the message catalog
func (l *Locale) Configure() (*i18n.Catalog, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return i18n.Load(l.Locale, l.MessagesFile)
}

// LogValue returns structured log value
func (l Locale) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("locale", l.Locale),
		slog.String("messages_file", l.MessagesFile),
	)
}

package config

import (
	"log/slog"

	"github.com/secmon-lab/gotobot/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/gotobot/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds the optional audit sink configuration
type Slack struct {
	OAuthToken   string
	AuditChannel string `validate:"required_with=OAuthToken"`
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token used to post move audits",
			Category:    "Slack",
			Sources:     cli.EnvVars("GOTOBOT_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-audit-channel",
			Usage:       "Slack channel ID receiving one message per completed move",
			Category:    "Slack",
			Sources:     cli.EnvVars("GOTOBOT_SLACK_AUDIT_CHANNEL"),
			Destination: &s.AuditChannel,
		},
	}
}

// IsConfigured checks if the audit sink is enabled
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != ""
}

// Validate validates the Slack configuration
func (s *Slack) Validate() error {
	return validateStruct("slack", s)
}

// ConfigureOptional creates the audit notifier if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) interfaces.MoveNotifier {
	if !s.IsConfigured() {
		logger.Debug("Slack audit not configured")
		return nil
	}

	logger.Info("Configuring Slack audit", slog.String("channel", s.AuditChannel))
	return slackSvc.New(s.OAuthToken, s.AuditChannel)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("audit_channel", s.AuditChannel),
	)
}

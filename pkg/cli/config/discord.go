package config

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Intents needed to see voice channels, their members and voice presence
const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildVoiceStates

// Discord holds Discord bot configuration
type Discord struct {
	Token   string `validate:"required"`
	GuildID string `validate:"omitempty,snowflake"`
}

// Flags returns CLI flags for Discord configuration
func (d *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "discord-token",
			Usage:       "Discord bot token",
			Category:    "Discord",
			Sources:     cli.EnvVars("GOTOBOT_DISCORD_TOKEN", "DISCORD_TOKEN"),
			Destination: &d.Token,
		},
		&cli.StringFlag{
			Name:        "discord-guild-id",
			Usage:       "Register /goto on this guild only (propagates immediately); global when empty",
			Category:    "Discord",
			Sources:     cli.EnvVars("GOTOBOT_DISCORD_GUILD_ID", "GUILD_ID"),
			Destination: &d.GuildID,
		},
	}
}

// Validate validates the Discord configuration
func (d *Discord) Validate() error {
	return validateStruct("discord", d)
}

// Configure creates a gateway session. The session is not opened.
func (d *Discord) Configure() (*discordgo.Session, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	s, err := discordgo.New("Bot " + d.Token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Discord session")
	}
	s.Identify.Intents = Intents
	s.StateEnabled = true
	s.State.TrackVoice = true
	s.State.TrackChannels = true
	s.State.TrackMembers = true
	return s, nil
}

// LogValue returns structured log value
func (d Discord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_token", d.Token != ""),
		slog.String("guild_id", d.GuildID),
	)
}

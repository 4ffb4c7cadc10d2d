package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gotobot/pkg/i18n"
)

// CommandName is the name of the slash command
const CommandName = "goto"

// CommandRegistrar is the part of the session that publishes application commands
type CommandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Commands returns the application commands of the bot. The description is taken
// from the base locale and localized for every other embedded locale.
func Commands() ([]*discordgo.ApplicationCommand, error) {
	base, err := i18n.Load(i18n.BaseLocale, "")
	if err != nil {
		return nil, err
	}

	localizations := map[discordgo.Locale]string{}
	for _, locale := range i18n.SupportedLocales() {
		if locale == i18n.BaseLocale {
			continue
		}
		c, err := i18n.Load(locale, "")
		if err != nil {
			return nil, err
		}
		localizations[discordgo.Locale(locale)] = c.Text(i18n.KeyCommandDescription)
	}

	dmPermission := false
	return []*discordgo.ApplicationCommand{
		{
			Name:                     CommandName,
			Description:              base.Text(i18n.KeyCommandDescription),
			DescriptionLocalizations: &localizations,
			DMPermission:             &dmPermission,
		},
	}, nil
}

// RegisterCommands replaces the published commands of the application.
// An empty guildID publishes them globally, which takes longer to propagate.
func RegisterCommands(ctx context.Context, registrar CommandRegistrar, appID, guildID string) error {
	cmds, err := Commands()
	if err != nil {
		return goerr.Wrap(err, "failed to build commands")
	}

	created, err := registrar.ApplicationCommandBulkOverwrite(appID, guildID, cmds, discordgo.WithContext(ctx))
	if err != nil {
		return goerr.Wrap(err, "failed to register commands",
			goerr.V("app_id", appID),
			goerr.V("guild_id", guildID))
	}

	scope := "global"
	if guildID != "" {
		scope = "guild"
	}
	ctxlog.From(ctx).Info("Commands registered",
		slog.String("scope", scope),
		slog.String("guildID", guildID),
		slog.Int("count", len(created)),
	)
	return nil
}

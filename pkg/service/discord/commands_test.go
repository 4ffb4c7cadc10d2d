package discord_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gotobot/pkg/service/discord"
)

type fakeRegistrar struct {
	appID    string
	guildID  string
	commands []*discordgo.ApplicationCommand
	err      error
}

func (f *fakeRegistrar) ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.appID, f.guildID, f.commands = appID, guildID, commands
	return commands, f.err
}

func TestCommands(t *testing.T) {
	cmds, err := discord.Commands()
	gt.NoError(t, err).Required()
	gt.Equal(t, 1, len(cmds))

	cmd := cmds[0]
	gt.Equal(t, "goto", cmd.Name)
	gt.Equal(t, 0, len(cmd.Options))
	gt.True(t, len(cmd.Description) <= 100)
	gt.False(t, *cmd.DMPermission)

	ro, ok := (*cmd.DescriptionLocalizations)[discordgo.Romanian]
	gt.True(t, ok)
	gt.True(t, len([]rune(ro)) <= 100)
}

func TestRegisterCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("guild scoped", func(t *testing.T) {
		r := &fakeRegistrar{}
		gt.NoError(t, discord.RegisterCommands(ctx, r, "app", "123"))
		gt.Equal(t, "app", r.appID)
		gt.Equal(t, "123", r.guildID)
		gt.Equal(t, 1, len(r.commands))
	})

	t.Run("global", func(t *testing.T) {
		r := &fakeRegistrar{}
		gt.NoError(t, discord.RegisterCommands(ctx, r, "app", ""))
		gt.Equal(t, "", r.guildID)
	})

	t.Run("failure", func(t *testing.T) {
		r := &fakeRegistrar{err: errors.New("401 Unauthorized")}
		gt.Error(t, discord.RegisterCommands(ctx, r, "app", ""))
	})
}

package model

import "github.com/secmon-lab/gotobot/pkg/domain/types"

// Invocation is a triggering /goto command.
// AppID and Token address the ephemeral reply for edits.
type Invocation struct {
	ID        string
	AppID     string
	Token     string
	GuildID   types.GuildID // empty outside of a guild
	ChannelID types.ChannelID
	UserID    types.UserID
	UserName  string
}

// InGuild reports whether the command was invoked inside a guild
func (i *Invocation) InGuild() bool {
	return i.GuildID != ""
}

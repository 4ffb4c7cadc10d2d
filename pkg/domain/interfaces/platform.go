package interfaces

//go:generate moq -out mocks/platform_mock.go -pkg mocks . Platform MoveNotifier

import (
	"context"

	"github.com/secmon-lab/gotobot/pkg/domain/model"
	"github.com/secmon-lab/gotobot/pkg/domain/types"
)

// VoiceCatalog is a read-only view of the voice channels of a guild
type VoiceCatalog interface {
	// ListVoiceChannels returns voice channels in catalog order with an occupant snapshot each
	ListVoiceChannels(ctx context.Context, guildID types.GuildID) ([]*model.VoiceChannel, error)

	// GetVoiceChannel resolves a channel against current state.
	// Returns model.ErrChannelNotFound if the ID does not resolve to a voice channel.
	GetVoiceChannel(ctx context.Context, guildID types.GuildID, channelID types.ChannelID) (*model.VoiceChannel, error)

	// GetUserVoiceChannel returns the voice channel the user is connected to, or "" if none
	GetUserVoiceChannel(ctx context.Context, guildID types.GuildID, userID types.UserID) (types.ChannelID, error)
}

// MemberMover relocates a single occupant. Each call may fail independently.
type MemberMover interface {
	MoveMember(ctx context.Context, guildID types.GuildID, userID types.UserID, channelID types.ChannelID, reason string) error
}

// Responder edits the ephemeral reply of an invocation
type Responder interface {
	// ShowPicker replaces the reply with text and the destination select control
	ShowPicker(ctx context.Context, inv *model.Invocation, text string, req *model.SelectionRequest) error

	// Reply replaces the reply text and removes any interactive control
	Reply(ctx context.Context, inv *model.Invocation, text string) error

	// ClosePicker removes the interactive control and keeps the text as is
	ClosePicker(ctx context.Context, inv *model.Invocation) error
}

// Platform bundles the collaborator calls consumed by the /goto flow
type Platform interface {
	VoiceCatalog
	MemberMover
	Responder
}

// MoveNotifier publishes completed batches to an audit destination
type MoveNotifier interface {
	NotifyMoveOutcome(ctx context.Context, outcome *model.MoveOutcome) error
}

package discord

import (
	"context"
	"errors"
	"sort"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gotobot/pkg/domain/interfaces"
	"github.com/secmon-lab/gotobot/pkg/domain/model"
	"github.com/secmon-lab/gotobot/pkg/domain/types"
	"github.com/secmon-lab/gotobot/pkg/i18n"
)

// Session is the subset of *discordgo.Session REST calls used by Service
type Session interface {
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildMemberMove(guildID string, userID string, channelID *string, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Service implements interfaces.Platform on top of a discordgo session.
// Reads are served from the gateway state cache, writes go through REST.
type Service struct {
	session Session
	state   *discordgo.State
	catalog *i18n.Catalog
}

var _ interfaces.Platform = (*Service)(nil)

// New creates a new Service
func New(session Session, state *discordgo.State, catalog *i18n.Catalog) *Service {
	return &Service{
		session: session,
		state:   state,
		catalog: catalog,
	}
}

// NewFromSession creates a Service bound to an opened discordgo session
func NewFromSession(s *discordgo.Session, catalog *i18n.Catalog) *Service {
	return New(s, s.State, catalog)
}

// ListVoiceChannels implements interfaces.VoiceCatalog
func (s *Service) ListVoiceChannels(ctx context.Context, guildID types.GuildID) ([]*model.VoiceChannel, error) {
	guild, err := s.state.Guild(guildID.String())
	if err != nil {
		return nil, goerr.Wrap(err, "guild is not in state", goerr.V("guild_id", guildID))
	}

	s.state.RLock()
	var voice []*discordgo.Channel
	for _, ch := range guild.Channels {
		if isVoice(ch) {
			voice = append(voice, ch)
		}
	}
	voiceStates := append([]*discordgo.VoiceState(nil), guild.VoiceStates...)
	s.state.RUnlock()

	sortChannels(voice)

	result := make([]*model.VoiceChannel, 0, len(voice))
	for _, ch := range voice {
		result = append(result, &model.VoiceChannel{
			ID:        types.ChannelID(ch.ID),
			Name:      ch.Name,
			Occupants: s.occupants(ctx, guildID, ch.ID, voiceStates),
		})
	}
	return result, nil
}

// GetVoiceChannel implements interfaces.VoiceCatalog
func (s *Service) GetVoiceChannel(ctx context.Context, guildID types.GuildID, channelID types.ChannelID) (*model.VoiceChannel, error) {
	ch, err := s.state.Channel(channelID.String())
	if err != nil {
		if errors.Is(err, discordgo.ErrStateNotFound) {
			return nil, goerr.Wrap(model.ErrChannelNotFound, "channel is not in state",
				goerr.V("guild_id", guildID),
				goerr.V("channel_id", channelID))
		}
		return nil, goerr.Wrap(err, "failed to read channel state", goerr.V("channel_id", channelID))
	}

	s.state.RLock()
	name, inGuild, voice := ch.Name, ch.GuildID == guildID.String(), isVoice(ch)
	s.state.RUnlock()

	if !inGuild || !voice {
		return nil, goerr.Wrap(model.ErrChannelNotFound, "not a voice channel of the guild",
			goerr.V("guild_id", guildID),
			goerr.V("channel_id", channelID))
	}

	guild, err := s.state.Guild(guildID.String())
	if err != nil {
		return nil, goerr.Wrap(err, "guild is not in state", goerr.V("guild_id", guildID))
	}
	s.state.RLock()
	voiceStates := append([]*discordgo.VoiceState(nil), guild.VoiceStates...)
	s.state.RUnlock()

	return &model.VoiceChannel{
		ID:        channelID,
		Name:      name,
		Occupants: s.occupants(ctx, guildID, channelID.String(), voiceStates),
	}, nil
}

// GetUserVoiceChannel implements interfaces.VoiceCatalog
func (s *Service) GetUserVoiceChannel(ctx context.Context, guildID types.GuildID, userID types.UserID) (types.ChannelID, error) {
	vs, err := s.state.VoiceState(guildID.String(), userID.String())
	if err != nil {
		if errors.Is(err, discordgo.ErrStateNotFound) {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to read voice state",
			goerr.V("guild_id", guildID),
			goerr.V("user_id", userID))
	}
	return types.ChannelID(vs.ChannelID), nil
}

// MoveMember implements interfaces.MemberMover
func (s *Service) MoveMember(ctx context.Context, guildID types.GuildID, userID types.UserID, channelID types.ChannelID, reason string) error {
	dst := channelID.String()
	opts := []discordgo.RequestOption{discordgo.WithContext(ctx)}
	if reason != "" {
		opts = append(opts, discordgo.WithAuditLogReason(reason))
	}

	if err := s.session.GuildMemberMove(guildID.String(), userID.String(), &dst, opts...); err != nil {
		return goerr.Wrap(err, "failed to move member",
			goerr.V("guild_id", guildID),
			goerr.V("user_id", userID),
			goerr.V("channel_id", channelID))
	}
	return nil
}

// ShowPicker implements interfaces.Responder
func (s *Service) ShowPicker(ctx context.Context, inv *model.Invocation, text string, req *model.SelectionRequest) error {
	components := BuildPickerComponents(req, s.catalog)
	return s.editReply(ctx, inv, &discordgo.WebhookEdit{
		Content:    &text,
		Components: &components,
	})
}

// Reply implements interfaces.Responder
func (s *Service) Reply(ctx context.Context, inv *model.Invocation, text string) error {
	components := []discordgo.MessageComponent{}
	return s.editReply(ctx, inv, &discordgo.WebhookEdit{
		Content:    &text,
		Components: &components,
	})
}

// ClosePicker implements interfaces.Responder
func (s *Service) ClosePicker(ctx context.Context, inv *model.Invocation) error {
	components := []discordgo.MessageComponent{}
	return s.editReply(ctx, inv, &discordgo.WebhookEdit{
		Components: &components,
	})
}

func (s *Service) editReply(ctx context.Context, inv *model.Invocation, edit *discordgo.WebhookEdit) error {
	interaction := &discordgo.Interaction{
		ID:    inv.ID,
		AppID: inv.AppID,
		Token: inv.Token,
	}
	if _, err := s.session.InteractionResponseEdit(interaction, edit, discordgo.WithContext(ctx)); err != nil {
		return goerr.Wrap(err, "failed to edit interaction response",
			goerr.V("interaction_id", inv.ID))
	}
	return nil
}

// occupants resolves the members connected to channelID. Members missing from the
// state cache are fetched once through REST; if that fails too the occupant is kept
// with what the voice state tells.
func (s *Service) occupants(ctx context.Context, guildID types.GuildID, channelID string, voiceStates []*discordgo.VoiceState) []model.Occupant {
	var result []model.Occupant
	for _, vs := range voiceStates {
		if vs.ChannelID != channelID {
			continue
		}

		member := vs.Member
		if member == nil || member.User == nil {
			member = s.member(ctx, guildID, vs.UserID)
		}

		occupant := model.Occupant{UserID: types.UserID(vs.UserID)}
		if member != nil && member.User != nil {
			occupant.Name = displayName(member)
			occupant.Bot = member.User.Bot
		}
		result = append(result, occupant)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return snowflakeLess(result[i].UserID.String(), result[j].UserID.String())
	})
	return result
}

func (s *Service) member(ctx context.Context, guildID types.GuildID, userID string) *discordgo.Member {
	if m, err := s.state.Member(guildID.String(), userID); err == nil {
		return m
	}

	m, err := s.session.GuildMember(guildID.String(), userID, discordgo.WithContext(ctx))
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to fetch voice member",
			"error", err,
			"guildID", guildID,
			"userID", userID,
		)
		return nil
	}
	if err := s.state.MemberAdd(m); err != nil {
		ctxlog.From(ctx).Debug("Failed to cache member", "error", err, "userID", userID)
	}
	return m
}

func isVoice(ch *discordgo.Channel) bool {
	return ch.Type == discordgo.ChannelTypeGuildVoice
}

// sortChannels orders channels the way the client lists them: by position, then by ID
func sortChannels(channels []*discordgo.Channel) {
	sort.SliceStable(channels, func(i, j int) bool {
		if channels[i].Position != channels[j].Position {
			return channels[i].Position < channels[j].Position
		}
		return snowflakeLess(channels[i].ID, channels[j].ID)
	})
}

func snowflakeLess(a, b string) bool {
	ia, errA := snowflake.Parse(a)
	ib, errB := snowflake.Parse(b)
	if errA != nil || errB != nil {
		return a < b
	}
	return ia < ib
}

func displayName(m *discordgo.Member) string {
	switch {
	case m.Nick != "":
		return m.Nick
	case m.User.GlobalName != "":
		return m.User.GlobalName
	default:
		return m.User.Username
	}
}

package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gotobot/pkg/domain/interfaces"
	"github.com/secmon-lab/gotobot/pkg/domain/model"
	"github.com/secmon-lab/gotobot/pkg/domain/types"
	discordSvc "github.com/secmon-lab/gotobot/pkg/service/discord"
	"github.com/secmon-lab/gotobot/pkg/utils/async"
)

// Responder acknowledges interactions
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Option configures a Handler
type Option func(*Handler)

// WithDispatcher runs command handlers on d instead of the process-wide dispatcher
func WithDispatcher(d *async.Dispatcher) Option {
	return func(h *Handler) {
		h.dispatch = d.Dispatch
	}
}

// Handler routes gateway interactions to the /goto use case
type Handler struct {
	ctx       context.Context
	gotoUC    interfaces.Goto
	responder Responder
	dispatch  func(ctx context.Context, handler func(ctx context.Context) error)
}

// NewHandler creates a new interaction handler. ctx carries the logger used for every interaction.
func NewHandler(ctx context.Context, gotoUC interfaces.Goto, responder Responder, opts ...Option) *Handler {
	h := &Handler{
		ctx:       ctx,
		gotoUC:    gotoUC,
		responder: responder,
		dispatch:  async.Dispatch,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// OnInteractionCreate is the discordgo event handler
func (h *Handler) OnInteractionCreate(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	if err := h.HandleInteraction(h.ctx, ic.Interaction); err != nil {
		ctxlog.From(h.ctx).Error("Failed to handle interaction",
			"error", err,
			"interactionID", ic.ID,
			"type", ic.Type.String(),
		)
	}
}

// HandleInteraction acknowledges the interaction and routes it
func (h *Handler) HandleInteraction(ctx context.Context, i *discordgo.Interaction) error {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		return h.handleCommand(ctx, i)
	case discordgo.InteractionMessageComponent:
		return h.handleComponent(ctx, i)
	default:
		ctxlog.From(ctx).Debug("Unhandled interaction type", "type", i.Type.String())
		return nil
	}
}

func (h *Handler) handleCommand(ctx context.Context, i *discordgo.Interaction) error {
	data := i.ApplicationCommandData()
	if data.Name != discordSvc.CommandName {
		ctxlog.From(ctx).Debug("Unknown command", "name", data.Name)
		return nil
	}

	// The platform expects an answer within three seconds; the flow takes longer
	if err := h.responder.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx)); err != nil {
		return goerr.Wrap(err, "failed to acknowledge command", goerr.V("interactionID", i.ID))
	}

	inv := toInvocation(i)
	h.dispatch(ctx, func(ctx context.Context) error {
		return h.gotoUC.HandleCommand(ctx, inv)
	})
	return nil
}

func (h *Handler) handleComponent(ctx context.Context, i *discordgo.Interaction) error {
	data := i.MessageComponentData()
	action, requestID, err := discordSvc.ParseCustomID(data.CustomID)
	if err != nil {
		ctxlog.From(ctx).Debug("Ignoring foreign component", "customID", data.CustomID)
		return nil
	}

	if err := h.responder.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}, discordgo.WithContext(ctx)); err != nil {
		return goerr.Wrap(err, "failed to acknowledge component", goerr.V("interactionID", i.ID))
	}

	event := &model.SelectionEvent{
		RequestID: requestID,
		UserID:    interactionUser(i).ID,
		Values:    data.Values,
	}

	switch action {
	case discordSvc.ActionSelect:
		err = h.gotoUC.HandleSelection(ctx, event)
	case discordSvc.ActionCancel:
		err = h.gotoUC.HandleCancel(ctx, event)
	}

	if errors.Is(err, model.ErrSelectionRequestNotFound) {
		ctxlog.From(ctx).Info("Interaction on a finished selection", "requestID", requestID)
		return nil
	}
	return err
}

func toInvocation(i *discordgo.Interaction) *model.Invocation {
	user := interactionUser(i)
	return &model.Invocation{
		ID:        i.ID,
		AppID:     i.AppID,
		Token:     i.Token,
		GuildID:   types.GuildID(i.GuildID),
		ChannelID: types.ChannelID(i.ChannelID),
		UserID:    user.ID,
		UserName:  user.Name,
	}
}

type invoker struct {
	ID   types.UserID
	Name string
}

// interactionUser returns the member in guilds and the user in direct messages
func interactionUser(i *discordgo.Interaction) invoker {
	var u *discordgo.User
	switch {
	case i.Member != nil && i.Member.User != nil:
		u = i.Member.User
	case i.User != nil:
		u = i.User
	default:
		return invoker{}
	}
	return invoker{ID: types.UserID(u.ID), Name: u.Username}
}

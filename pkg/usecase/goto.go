package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gotobot/pkg/domain/interfaces"
	"github.com/secmon-lab/gotobot/pkg/domain/model"
	"github.com/secmon-lab/gotobot/pkg/domain/types"
	"github.com/secmon-lab/gotobot/pkg/i18n"
	"github.com/secmon-lab/gotobot/pkg/utils/apperr"
)

// sourceNameKey carries the source channel name on validation errors so the reply can name it
const sourceNameKey = "source_name"

// DefaultNotifyTimeout bounds the audit notification sent after each batch
const DefaultNotifyTimeout = 10 * time.Second

// GotoOption is a functional option for configuring Goto
type GotoOption func(*Goto)

// WithOccupantPolicy sets which occupants are moved
func WithOccupantPolicy(policy model.OccupantPolicy) GotoOption {
	return func(u *Goto) {
		u.policy = policy
	}
}

// WithMoveNotifier publishes every completed batch to notifier
func WithMoveNotifier(notifier interfaces.MoveNotifier) GotoOption {
	return func(u *Goto) {
		u.notifier = notifier
	}
}

// WithNotifyTimeout sets how long the audit notification may take
func WithNotifyTimeout(d time.Duration) GotoOption {
	return func(u *Goto) {
		if d > 0 {
			u.notifyTimeout = d
		}
	}
}

// Goto implements interfaces.Goto
type Goto struct {
	platform     interfaces.Platform
	repo         interfaces.Repository
	picker       *ChannelPicker
	orchestrator *MoveOrchestrator
	reporter     *ResultReporter
	catalog      *i18n.Catalog
	policy       model.OccupantPolicy
	notifier     interfaces.MoveNotifier

	notifyTimeout time.Duration
}

var _ interfaces.Goto = (*Goto)(nil)

// NewGoto creates a new Goto use case
func NewGoto(platform interfaces.Platform, repo interfaces.Repository, catalog *i18n.Catalog, picker *ChannelPicker, orchestrator *MoveOrchestrator, opts ...GotoOption) *Goto {
	u := &Goto{
		platform:     platform,
		repo:         repo,
		picker:       picker,
		orchestrator: orchestrator,
		reporter:     NewResultReporter(catalog),
		catalog:      catalog,
		policy:       model.ExcludeBots,

		notifyTimeout: DefaultNotifyTimeout,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// HandleCommand runs the /goto flow for one invocation. Validation failures and
// unexpected errors are reported to the operator; the returned error only tells
// that the reply itself could not be delivered.
func (u *Goto) HandleCommand(ctx context.Context, inv *model.Invocation) error {
	logger := ctxlog.From(ctx).With(
		"invocationID", inv.ID,
		"guildID", inv.GuildID,
		"userID", inv.UserID,
	)
	ctx = ctxlog.With(ctx, logger)

	logger.Info("Goto command received", "userName", inv.UserName)

	if err := u.run(ctx, inv); err != nil {
		return u.replyError(ctx, inv, err)
	}
	return nil
}

func (u *Goto) run(ctx context.Context, inv *model.Invocation) error {
	if !inv.InGuild() {
		return goerr.Wrap(model.ErrNotInGuild, "command invoked outside of a guild")
	}

	sourceID, err := u.platform.GetUserVoiceChannel(ctx, inv.GuildID, inv.UserID)
	if err != nil {
		return goerr.Wrap(err, "failed to get operator voice state")
	}
	if sourceID == "" {
		return goerr.Wrap(model.ErrNotInVoiceChannel, "operator is not connected to voice")
	}

	source, err := u.platform.GetVoiceChannel(ctx, inv.GuildID, sourceID)
	if err != nil {
		if errors.Is(err, model.ErrChannelNotFound) {
			return goerr.Wrap(model.ErrNotInVoiceChannel, "operator voice channel does not resolve",
				goerr.V("channel_id", sourceID))
		}
		return goerr.Wrap(err, "failed to get source channel", goerr.V("channel_id", sourceID))
	}

	if len(source.Eligible(u.policy)) == 0 {
		return goerr.Wrap(model.ErrNoEligibleOccupants, "nobody to move",
			goerr.V("channel_id", source.ID),
			goerr.V("policy", u.policy.String()),
			goerr.V(sourceNameKey, source.DisplayName()))
	}

	channels, err := u.platform.ListVoiceChannels(ctx, inv.GuildID)
	if err != nil {
		return goerr.Wrap(err, "failed to list voice channels")
	}
	if len(channels) == 0 {
		return goerr.Wrap(model.ErrNoVoiceChannels, "guild has no voice channels")
	}

	req, err := u.picker.Open(inv, source, channels)
	if err != nil {
		return goerr.Wrap(err, "failed to open destination picker",
			goerr.V(sourceNameKey, source.DisplayName()))
	}

	if err := u.repo.PutSelectionRequest(ctx, req); err != nil {
		return goerr.Wrap(err, "failed to store selection request")
	}
	defer func() {
		if err := u.repo.DeleteSelectionRequest(context.WithoutCancel(ctx), req.ID); err != nil {
			ctxlog.From(ctx).Warn("Failed to delete selection request", "error", err, "requestID", req.ID)
		}
	}()

	prompt := u.catalog.Text(i18n.KeyPickerPrompt, source.DisplayName())
	if err := u.platform.ShowPicker(ctx, inv, prompt, req); err != nil {
		return goerr.Wrap(err, "failed to show destination picker")
	}

	outcome, err := u.picker.Await(ctx, req)
	if err != nil {
		return goerr.Wrap(err, "failed to await destination selection", goerr.V("requestID", req.ID))
	}

	ctxlog.From(ctx).Info("Selection finished", "requestID", req.ID, "status", outcome.Status.String())

	// Selection side effects run even if the caller gave up waiting
	ctx = context.WithoutCancel(ctx)

	switch outcome.Status {
	case model.SelectionExpired:
		return u.platform.ClosePicker(ctx, inv)
	case model.SelectionCancelled:
		return u.platform.Reply(ctx, inv, u.catalog.Text(i18n.KeyCancelled))
	case model.SelectionInvalid:
		return u.platform.Reply(ctx, inv, u.catalog.Text(i18n.KeyInvalidSelection))
	case model.SelectionIdentical:
		return u.platform.Reply(ctx, inv, u.catalog.Text(i18n.KeyIdenticalChannel))
	case model.SelectionSelected:
		return u.move(ctx, inv, req, outcome.Destination)
	default:
		return goerr.New("unknown selection status", goerr.V("status", outcome.Status))
	}
}

// move re-reads the source once, snapshots it and runs the batch
func (u *Goto) move(ctx context.Context, inv *model.Invocation, req *model.SelectionRequest, destination *model.VoiceChannel) error {
	logger := ctxlog.From(ctx)

	current, err := u.platform.GetVoiceChannel(ctx, req.GuildID, req.Source.ID)
	if err != nil {
		if errors.Is(err, model.ErrChannelNotFound) {
			return goerr.Wrap(model.ErrNoEligibleOccupants, "source channel disappeared",
				goerr.V("channel_id", req.Source.ID),
				goerr.V(sourceNameKey, req.Source.DisplayName()))
		}
		return goerr.Wrap(err, "failed to re-read source channel", goerr.V("channel_id", req.Source.ID))
	}

	occupants := current.Eligible(u.policy)
	if len(occupants) == 0 {
		return goerr.Wrap(model.ErrNoEligibleOccupants, "source emptied during selection",
			goerr.V("channel_id", current.ID),
			goerr.V(sourceNameKey, current.DisplayName()))
	}

	batch, err := model.NewMoveBatch(
		req.GuildID,
		req.RequestedBy,
		model.ChannelRef{ID: current.ID, Name: current.Name},
		model.ChannelRef{ID: destination.ID, Name: destination.Name},
		occupants,
		auditReason(inv),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to build move batch")
	}

	progress := u.catalog.Text(i18n.KeyMoving, batch.Size(), current.DisplayName(), destination.DisplayName())
	if err := u.platform.Reply(ctx, inv, progress); err != nil {
		// The batch still runs, only the progress note is lost
		logger.Warn("Failed to post progress", "error", err)
	}

	result := u.orchestrator.Execute(ctx, batch)

	if err := u.repo.SaveMoveOutcome(ctx, result); err != nil {
		logger.Warn("Failed to record move outcome", "error", err)
	}

	// The operator hears back before the audit sink is called
	replyErr := u.platform.Reply(ctx, inv, u.reporter.Report(result, current.DisplayName(), destination.DisplayName()))
	u.notify(ctx, result)
	return replyErr
}

func (u *Goto) notify(ctx context.Context, result *model.MoveOutcome) {
	if u.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, u.notifyTimeout)
	defer cancel()
	if err := u.notifier.NotifyMoveOutcome(ctx, result); err != nil {
		ctxlog.From(ctx).Warn("Failed to notify move outcome", "error", err)
	}
}

func (u *Goto) replyError(ctx context.Context, inv *model.Invocation, err error) error {
	sourceName, _ := goerr.Values(err)[sourceNameKey].(string)

	var text string
	switch {
	case errors.Is(err, model.ErrNotInGuild):
		text = u.catalog.Text(i18n.KeyNotInGuild)
	case errors.Is(err, model.ErrNotInVoiceChannel):
		text = u.catalog.Text(i18n.KeyNotInVoice)
	case errors.Is(err, model.ErrNoEligibleOccupants):
		text = u.catalog.Text(i18n.KeyNoOccupants, sourceName)
	case errors.Is(err, model.ErrNoVoiceChannels):
		text = u.catalog.Text(i18n.KeyNoVoiceChannels)
	case errors.Is(err, model.ErrNoDestinations):
		text = u.catalog.Text(i18n.KeyNoDestinations, sourceName)
	default:
		apperr.Handle(ctx, err)
		text = u.catalog.Text(i18n.KeyError)
	}

	ctxlog.From(ctx).Info("Goto command finished without moving", "reason", err.Error())

	if replyErr := u.platform.Reply(context.WithoutCancel(ctx), inv, text); replyErr != nil {
		return goerr.Wrap(replyErr, "failed to reply to operator")
	}
	return nil
}

// HandleSelection delivers a destination choice to the pending selection
func (u *Goto) HandleSelection(ctx context.Context, event *model.SelectionEvent) error {
	req, err := u.pendingRequest(ctx, event)
	if err != nil || req == nil {
		return err
	}

	if len(event.Values) == 0 {
		return goerr.New("selection carries no value", goerr.V("requestID", event.RequestID))
	}

	if !req.Choose(types.ChannelID(event.Values[0])) {
		ctxlog.From(ctx).Debug("Selection already made", "requestID", req.ID)
	}
	return nil
}

// HandleCancel cancels the pending selection
func (u *Goto) HandleCancel(ctx context.Context, event *model.SelectionEvent) error {
	req, err := u.pendingRequest(ctx, event)
	if err != nil || req == nil {
		return err
	}
	req.Cancel()
	return nil
}

// pendingRequest returns the addressed request, or nil if the event comes from someone else
func (u *Goto) pendingRequest(ctx context.Context, event *model.SelectionEvent) (*model.SelectionRequest, error) {
	req, err := u.repo.GetSelectionRequest(ctx, event.RequestID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get selection request", goerr.V("requestID", event.RequestID))
	}

	if req.RequestedBy != event.UserID {
		ctxlog.From(ctx).Warn("Ignoring interaction from another user",
			"requestID", req.ID,
			"requestedBy", req.RequestedBy,
			"userID", event.UserID,
		)
		return nil, nil
	}
	return req, nil
}

func auditReason(inv *model.Invocation) string {
	name := inv.UserName
	if name == "" {
		name = inv.UserID.String()
	}
	return fmt.Sprintf("/goto by %s", name)
}

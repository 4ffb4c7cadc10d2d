package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gotobot/pkg/domain/interfaces"
	"github.com/secmon-lab/gotobot/pkg/domain/model"
	"github.com/secmon-lab/gotobot/pkg/domain/types"
)

// DefaultSelectionTimeout is how long the destination picker stays usable
const DefaultSelectionTimeout = 120 * time.Second

// ChannelPicker builds destination selections and validates the operator's choice
type ChannelPicker struct {
	catalog interfaces.VoiceCatalog
	timeout time.Duration
	now     func() time.Time
}

// PickerOption configures a ChannelPicker
type PickerOption func(*ChannelPicker)

// WithSelectionTimeout sets the picker expiry
func WithSelectionTimeout(d time.Duration) PickerOption {
	return func(p *ChannelPicker) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithClock replaces the time source, for tests
func WithClock(now func() time.Time) PickerOption {
	return func(p *ChannelPicker) {
		p.now = now
	}
}

// NewChannelPicker creates a new ChannelPicker
func NewChannelPicker(catalog interfaces.VoiceCatalog, opts ...PickerOption) *ChannelPicker {
	p := &ChannelPicker{
		catalog: catalog,
		timeout: DefaultSelectionTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Timeout returns the picker expiry
func (p *ChannelPicker) Timeout() time.Duration {
	return p.timeout
}

// Open creates a selection request for the source over the guild's voice channels.
// It fails with model.ErrNoDestinations when the source is the only voice channel.
func (p *ChannelPicker) Open(inv *model.Invocation, source *model.VoiceChannel, channels []*model.VoiceChannel) (*model.SelectionRequest, error) {
	hasDestination := false
	for _, ch := range channels {
		if ch.ID != source.ID {
			hasDestination = true
			break
		}
	}
	if !hasDestination {
		return nil, goerr.Wrap(model.ErrNoDestinations, "cannot open picker",
			goerr.V("source", source.ID),
			goerr.V("channels", len(channels)))
	}

	return model.NewSelectionRequest(inv.GuildID, inv.UserID, source, channels, p.timeout, p.now()), nil
}

// Await suspends until the operator chooses, cancels, the request expires or ctx ends.
// A choice is resolved against current channel state before it is returned.
func (p *ChannelPicker) Await(ctx context.Context, req *model.SelectionRequest) (*model.SelectionOutcome, error) {
	timer := time.NewTimer(req.ExpiresAt.Sub(p.now()))
	defer timer.Stop()

	select {
	case id := <-req.Choice():
		return p.Resolve(ctx, req, id)

	case <-req.Cancelled():
		return &model.SelectionOutcome{Status: model.SelectionCancelled}, nil

	case <-timer.C:
		ctxlog.From(ctx).Info("Selection expired",
			"requestID", req.ID,
			"source", req.Source.ID,
		)
		return &model.SelectionOutcome{Status: model.SelectionExpired}, nil

	case <-ctx.Done():
		return &model.SelectionOutcome{Status: model.SelectionCancelled}, nil
	}
}

// Resolve validates a chosen channel against current state.
// A stale or unknown channel yields SelectionInvalid and the source itself yields
// SelectionIdentical; neither is an error.
func (p *ChannelPicker) Resolve(ctx context.Context, req *model.SelectionRequest, chosen types.ChannelID) (*model.SelectionOutcome, error) {
	logger := ctxlog.From(ctx)
	invalid := &model.SelectionOutcome{Status: model.SelectionInvalid}

	id, err := types.ParseChannelID(chosen.String())
	if err != nil {
		logger.Warn("Malformed channel selection", "requestID", req.ID, "value", chosen)
		return invalid, nil
	}
	if !req.HasCandidate(id) {
		logger.Warn("Selected channel was not offered", "requestID", req.ID, "channelID", id)
		return invalid, nil
	}

	destination, err := p.catalog.GetVoiceChannel(ctx, req.GuildID, id)
	if err != nil {
		if errors.Is(err, model.ErrChannelNotFound) {
			logger.Info("Selected channel no longer resolves", "requestID", req.ID, "channelID", id)
			return invalid, nil
		}
		return nil, goerr.Wrap(err, "failed to resolve selected channel",
			goerr.V("guild_id", req.GuildID),
			goerr.V("channel_id", id))
	}

	if destination.ID == req.Source.ID {
		return &model.SelectionOutcome{Status: model.SelectionIdentical}, nil
	}

	return &model.SelectionOutcome{
		Status:      model.SelectionSelected,
		Destination: destination,
	}, nil
}

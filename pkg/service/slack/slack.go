package slack

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gotobot/pkg/domain/interfaces"
	"github.com/secmon-lab/gotobot/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Poster is the part of *slack.Client used to publish messages
type Poster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Service publishes move outcomes to a Slack channel for auditing
type Service struct {
	client    Poster
	channelID string
}

var _ interfaces.MoveNotifier = (*Service)(nil)

// New creates a new Slack audit service
func New(token, channelID string) *Service {
	return NewWithClient(slack.New(token), channelID)
}

// NewWithClient creates a Slack audit service on top of an existing client
func NewWithClient(client Poster, channelID string) *Service {
	return &Service{
		client:    client,
		channelID: channelID,
	}
}

// PostMessage sends a message to the audit channel
func (s *Service) PostMessage(ctx context.Context, options ...slack.MsgOption) (string, string, error) {
	channel, timestamp, err := s.client.PostMessageContext(ctx, s.channelID, options...)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to post message to Slack", goerr.V("channel", s.channelID))
	}
	return channel, timestamp, nil
}

// NotifyMoveOutcome implements interfaces.MoveNotifier
func (s *Service) NotifyMoveOutcome(ctx context.Context, outcome *model.MoveOutcome) error {
	blocks := BuildMoveOutcomeBlocks(outcome)
	_, _, err := s.PostMessage(ctx,
		slack.MsgOptionText(summary(outcome), false),
		slack.MsgOptionBlocks(blocks...),
	)
	return err
}

func summary(outcome *model.MoveOutcome) string {
	return fmt.Sprintf("/goto moved %d of %d members from %s to %s",
		outcome.Moved(), outcome.Total(), outcome.Source.Name, outcome.Destination.Name)
}

// BuildMoveOutcomeBlocks renders an audit entry for one batch
func BuildMoveOutcomeBlocks(outcome *model.MoveOutcome) []slack.Block {
	header := slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "🔀 Voice move", false, false))

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*From:*\n%s", outcome.Source.Name), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*To:*\n%s", outcome.Destination.Name), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Moved:*\n%d", outcome.Moved()), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Failed:*\n%d", outcome.Failed()), false, false),
	}
	section := slack.NewSectionBlock(nil, fields, nil)

	footer := slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("Requested by Discord user `%s` in guild `%s` · %s",
				outcome.RequestedBy, outcome.GuildID,
				outcome.FinishedAt.Sub(outcome.StartedAt).Round(time.Millisecond)),
			false, false),
	)

	return []slack.Block{header, section, footer}
}

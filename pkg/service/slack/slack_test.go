package slack_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gotobot/pkg/domain/model"
	slackSvc "github.com/secmon-lab/gotobot/pkg/service/slack"
	"github.com/slack-go/slack"
)

type fakePoster struct {
	channelID string
	options   []slack.MsgOption
	err       error
}

func (f *fakePoster) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	f.channelID = channelID
	f.options = options
	return channelID, "1700000000.000100", f.err
}

func testOutcome() *model.MoveOutcome {
	started := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)
	return &model.MoveOutcome{
		GuildID:     "G1",
		RequestedBy: "U1",
		Source:      model.ChannelRef{ID: "10", Name: "Lounge"},
		Destination: model.ChannelRef{ID: "20", Name: "Arena"},
		Results: []model.MoveResult{
			{UserID: "u1", Moved: true},
			{UserID: "u2", Moved: true},
			{UserID: "u3", Moved: false},
		},
		StartedAt:  started,
		FinishedAt: started.Add(150 * time.Millisecond),
	}
}

func TestBuildMoveOutcomeBlocks(t *testing.T) {
	blocks := slackSvc.BuildMoveOutcomeBlocks(testOutcome())
	gt.Equal(t, 3, len(blocks))

	section, ok := blocks[1].(*slack.SectionBlock)
	gt.True(t, ok)
	gt.Equal(t, 4, len(section.Fields))
	gt.Equal(t, "*From:*\nLounge", section.Fields[0].Text)
	gt.Equal(t, "*To:*\nArena", section.Fields[1].Text)
	gt.Equal(t, "*Moved:*\n2", section.Fields[2].Text)
	gt.Equal(t, "*Failed:*\n1", section.Fields[3].Text)
}

func TestNotifyMoveOutcome(t *testing.T) {
	ctx := context.Background()

	t.Run("posts to the audit channel", func(t *testing.T) {
		poster := &fakePoster{}
		svc := slackSvc.NewWithClient(poster, "C_AUDIT")

		gt.NoError(t, svc.NotifyMoveOutcome(ctx, testOutcome()))
		gt.Equal(t, "C_AUDIT", poster.channelID)

		_, values, err := slack.UnsafeApplyMsgOptions("token", poster.channelID, "https://slack.com/api/", poster.options...)
		gt.NoError(t, err).Required()
		gt.Equal(t, "/goto moved 2 of 3 members from Lounge to Arena", values.Get("text"))

		var blocks []map[string]any
		gt.NoError(t, json.Unmarshal([]byte(values.Get("blocks")), &blocks)).Required()
		gt.Equal(t, 3, len(blocks))
	})

	t.Run("post failure is returned", func(t *testing.T) {
		svc := slackSvc.NewWithClient(&fakePoster{err: errors.New("channel_not_found")}, "C_AUDIT")
		gt.Error(t, svc.NotifyMoveOutcome(ctx, testOutcome()))
	})
}

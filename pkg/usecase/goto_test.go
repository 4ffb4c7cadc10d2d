package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gotobot/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/gotobot/pkg/domain/model"
	"github.com/secmon-lab/gotobot/pkg/domain/types"
	"github.com/secmon-lab/gotobot/pkg/i18n"
	"github.com/secmon-lab/gotobot/pkg/repository"
	"github.com/secmon-lab/gotobot/pkg/usecase"
)

var (
	loungeID = channelID(10)
	arenaID  = channelID(20)
	studioID = channelID(30)
)

// fakeGuild is a mutable guild behind a PlatformMock
type fakeGuild struct {
	mu       sync.Mutex
	channels []*model.VoiceChannel
	voice    map[types.UserID]types.ChannelID
	failing  map[types.UserID]bool
}

func newFakeGuild() *fakeGuild {
	return &fakeGuild{
		channels: []*model.VoiceChannel{
			{
				ID:   loungeID,
				Name: "Lounge",
				Occupants: []model.Occupant{
					{UserID: "operator", Name: "alice"},
					{UserID: "u2", Name: "bogdan"},
					{UserID: "u3", Name: "carmen"},
					{UserID: "b1", Name: "music", Bot: true},
				},
			},
			{ID: arenaID, Name: "Arena"},
			{ID: studioID, Name: "Studio", Occupants: []model.Occupant{{UserID: "u9"}}},
		},
		voice:   map[types.UserID]types.ChannelID{"operator": loungeID},
		failing: map[types.UserID]bool{},
	}
}

func (g *fakeGuild) setChannels(channels ...*model.VoiceChannel) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.channels = channels
}

func (g *fakeGuild) channel(id types.ChannelID) *model.VoiceChannel {
	for _, ch := range g.channels {
		if ch.ID == id {
			return ch
		}
	}
	return nil
}

func (g *fakeGuild) platform() *mocks.PlatformMock {
	return &mocks.PlatformMock{
		GetUserVoiceChannelFunc: func(ctx context.Context, guildID types.GuildID, userID types.UserID) (types.ChannelID, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			return g.voice[userID], nil
		},
		GetVoiceChannelFunc: func(ctx context.Context, guildID types.GuildID, id types.ChannelID) (*model.VoiceChannel, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			ch := g.channel(id)
			if ch == nil {
				return nil, goerr.Wrap(model.ErrChannelNotFound, "no such voice channel", goerr.V("channel_id", id))
			}
			copied := *ch
			copied.Occupants = append([]model.Occupant(nil), ch.Occupants...)
			return &copied, nil
		},
		ListVoiceChannelsFunc: func(ctx context.Context, guildID types.GuildID) ([]*model.VoiceChannel, error) {
			g.mu.Lock()
			defer g.mu.Unlock()
			return append([]*model.VoiceChannel(nil), g.channels...), nil
		},
		MoveMemberFunc: func(ctx context.Context, guildID types.GuildID, userID types.UserID, id types.ChannelID, reason string) error {
			g.mu.Lock()
			defer g.mu.Unlock()
			if g.failing[userID] {
				return errors.New("missing permissions")
			}
			g.voice[userID] = id
			return nil
		},
		ReplyFunc: func(ctx context.Context, inv *model.Invocation, text string) error {
			return nil
		},
		ClosePickerFunc: func(ctx context.Context, inv *model.Invocation) error {
			return nil
		},
	}
}

type gotoFixture struct {
	guild    *fakeGuild
	platform *mocks.PlatformMock
	notifier *mocks.MoveNotifierMock
	uc       *usecase.Goto
	repo     interface {
		ListMoveOutcomes(ctx context.Context, limit int) ([]*model.MoveOutcome, error)
		GetSelectionRequest(ctx context.Context, id types.SelectionID) (*model.SelectionRequest, error)
	}
}

func newGotoFixture(t *testing.T, pickerOpts []usecase.PickerOption, opts ...usecase.GotoOption) *gotoFixture {
	t.Helper()
	guild := newFakeGuild()
	platform := guild.platform()
	repo := repository.NewMemory()
	notifier := &mocks.MoveNotifierMock{
		NotifyMoveOutcomeFunc: func(ctx context.Context, outcome *model.MoveOutcome) error {
			return nil
		},
	}

	picker := usecase.NewChannelPicker(platform, pickerOpts...)
	orchestrator := usecase.NewMoveOrchestrator(platform, usecase.WithSleeper(func(time.Duration) {}))
	opts = append([]usecase.GotoOption{usecase.WithMoveNotifier(notifier)}, opts...)
	uc := usecase.NewGoto(platform, repo, i18n.MustLoad("en"), picker, orchestrator, opts...)

	return &gotoFixture{
		guild:    guild,
		platform: platform,
		notifier: notifier,
		uc:       uc,
		repo:     repo,
	}
}

// selectOnShow makes the operator pick dst as soon as the picker is rendered
func (f *gotoFixture) selectOnShow(t *testing.T, dst types.ChannelID) {
	f.platform.ShowPickerFunc = func(ctx context.Context, inv *model.Invocation, text string, req *model.SelectionRequest) error {
		gt.NoError(t, f.uc.HandleSelection(ctx, &model.SelectionEvent{
			RequestID: req.ID,
			UserID:    inv.UserID,
			Values:    []string{dst.String()},
		}))
		return nil
	}
}

func (f *gotoFixture) replies() []string {
	var texts []string
	for _, c := range f.platform.ReplyCalls() {
		texts = append(texts, c.Text)
	}
	return texts
}

func (f *gotoFixture) lastReply(t *testing.T) string {
	t.Helper()
	texts := f.replies()
	if len(texts) == 0 {
		t.Fatal("no reply was posted")
	}
	return texts[len(texts)-1]
}

func requireLen[T any](t *testing.T, s []T, n int) {
	t.Helper()
	if len(s) != n {
		t.Fatalf("expected %d elements, got %d", n, len(s))
	}
}

func newInvocation() *model.Invocation {
	return &model.Invocation{
		ID:       "inv-1",
		AppID:    "app",
		Token:    "token",
		GuildID:  "G1",
		UserID:   "operator",
		UserName: "alice",
	}
}

func TestGotoMovesEveryone(t *testing.T) {
	f := newGotoFixture(t, nil, usecase.WithOccupantPolicy(model.IncludeBots))
	f.guild.failing["u3"] = true
	f.guild.failing["b1"] = true
	f.selectOnShow(t, arenaID)

	ctx := context.Background()
	gt.NoError(t, f.uc.HandleCommand(ctx, newInvocation()))

	showCalls := f.platform.ShowPickerCalls()
	requireLen(t, showCalls, 1)
	gt.S(t, showCalls[0].Text).Contains("**Lounge**")
	gt.A(t, showCalls[0].Req.Candidates).Length(3)

	moveCalls := f.platform.MoveMemberCalls()
	requireLen(t, moveCalls, 4)
	for _, c := range moveCalls {
		gt.Equal(t, arenaID, c.ChannelID)
		gt.Equal(t, "/goto by alice", c.Reason)
	}

	gt.Equal(t,
		"✅ Moved **2** members from **Lounge** to **Arena**. (⚠️ 2 not moved due to permissions or errors.)",
		f.lastReply(t))

	outcomes, err := f.repo.ListMoveOutcomes(ctx, 10)
	gt.NoError(t, err).Required()
	requireLen(t, outcomes, 1)
	gt.Equal(t, 2, outcomes[0].Moved())
	gt.Equal(t, 2, outcomes[0].Failed())

	gt.A(t, f.notifier.NotifyMoveOutcomeCalls()).Length(1)

	_, err = f.repo.GetSelectionRequest(ctx, showCalls[0].Req.ID)
	gt.True(t, errors.Is(err, model.ErrSelectionRequestNotFound))
}

func TestGotoRepliesBeforeSlowAudit(t *testing.T) {
	f := newGotoFixture(t, nil, usecase.WithNotifyTimeout(20*time.Millisecond))
	f.selectOnShow(t, arenaID)

	var repliesAtNotify []string
	var deadlineSet bool
	f.notifier.NotifyMoveOutcomeFunc = func(ctx context.Context, outcome *model.MoveOutcome) error {
		repliesAtNotify = f.replies()
		_, deadlineSet = ctx.Deadline()
		<-ctx.Done()
		return ctx.Err()
	}

	start := time.Now()
	gt.NoError(t, f.uc.HandleCommand(context.Background(), newInvocation()))
	gt.True(t, time.Since(start) < 5*time.Second)

	gt.A(t, f.notifier.NotifyMoveOutcomeCalls()).Length(1)
	gt.True(t, deadlineSet)
	requireLen(t, repliesAtNotify, 2)
	gt.S(t, repliesAtNotify[1]).Contains("✅ Moved **3** members")
	gt.Equal(t, repliesAtNotify[1], f.lastReply(t))
}

func TestGotoExcludesBotsByDefault(t *testing.T) {
	f := newGotoFixture(t, nil)
	f.selectOnShow(t, arenaID)

	gt.NoError(t, f.uc.HandleCommand(context.Background(), newInvocation()))

	moveCalls := f.platform.MoveMemberCalls()
	requireLen(t, moveCalls, 3)
	for _, c := range moveCalls {
		gt.NotEqual(t, types.UserID("b1"), c.UserID)
	}
	gt.Equal(t, "✅ Moved **3** members from **Lounge** to **Arena**.", f.lastReply(t))
}

func TestGotoValidation(t *testing.T) {
	t.Run("outside of a guild", func(t *testing.T) {
		f := newGotoFixture(t, nil)
		inv := newInvocation()
		inv.GuildID = ""

		gt.NoError(t, f.uc.HandleCommand(context.Background(), inv))
		gt.Equal(t, "❌ Use this command inside a server.", f.lastReply(t))
		gt.A(t, f.platform.GetUserVoiceChannelCalls()).Length(0)
	})

	t.Run("operator not in voice", func(t *testing.T) {
		f := newGotoFixture(t, nil)
		delete(f.guild.voice, "operator")

		gt.NoError(t, f.uc.HandleCommand(context.Background(), newInvocation()))
		gt.Equal(t, "❌ You are not connected to any voice channel.", f.lastReply(t))
		gt.A(t, f.platform.ListVoiceChannelsCalls()).Length(0)
	})

	t.Run("only automated occupants under the default policy", func(t *testing.T) {
		f := newGotoFixture(t, nil)
		f.guild.voice["operator"] = studioID
		f.guild.setChannels(
			&model.VoiceChannel{ID: studioID, Name: "Studio", Occupants: []model.Occupant{{UserID: "b1", Bot: true}}},
			&model.VoiceChannel{ID: arenaID, Name: "Arena"},
		)

		gt.NoError(t, f.uc.HandleCommand(context.Background(), newInvocation()))
		gt.Equal(t, "ℹ️ Nobody to move in **Studio**.", f.lastReply(t))
		gt.A(t, f.platform.ListVoiceChannelsCalls()).Length(0)
		gt.A(t, f.platform.ShowPickerCalls()).Length(0)
	})

	t.Run("source is the only voice channel", func(t *testing.T) {
		f := newGotoFixture(t, nil)
		f.guild.setChannels(f.guild.channels[0])

		gt.NoError(t, f.uc.HandleCommand(context.Background(), newInvocation()))
		gt.Equal(t, "ℹ️ There is no other voice channel to move **Lounge** to.", f.lastReply(t))
		gt.A(t, f.platform.ShowPickerCalls()).Length(0)
	})

	t.Run("unexpected failure gets a generic message", func(t *testing.T) {
		f := newGotoFixture(t, nil)
		f.platform.ListVoiceChannelsFunc = func(ctx context.Context, guildID types.GuildID) ([]*model.VoiceChannel, error) {
			return nil, errors.New("gateway unavailable")
		}

		gt.NoError(t, f.uc.HandleCommand(context.Background(), newInvocation()))
		gt.Equal(t, "❌ Something went wrong. Please try again.", f.lastReply(t))
	})

	t.Run("reply failure is returned", func(t *testing.T) {
		f := newGotoFixture(t, nil)
		delete(f.guild.voice, "operator")
		f.platform.ReplyFunc = func(ctx context.Context, inv *model.Invocation, text string) error {
			return errors.New("unknown interaction")
		}

		gt.Error(t, f.uc.HandleCommand(context.Background(), newInvocation()))
	})
}

func TestGotoSelectionOutcomes(t *testing.T) {
	t.Run("destination deleted before the choice", func(t *testing.T) {
		f := newGotoFixture(t, nil)
		f.platform.ShowPickerFunc = func(ctx context.Context, inv *model.Invocation, text string, req *model.SelectionRequest) error {
			f.guild.setChannels(f.guild.channels[0], f.guild.channels[2])
			return f.uc.HandleSelection(ctx, &model.SelectionEvent{
				RequestID: req.ID,
				UserID:    inv.UserID,
				Values:    []string{arenaID.String()},
			})
		}

		gt.NoError(t, f.uc.HandleCommand(context.Background(), newInvocation()))
		gt.Equal(t, "❌ The selected channel is no longer valid.", f.lastReply(t))
		gt.A(t, f.platform.MoveMemberCalls()).Length(0)
	})

	t.Run("source chosen as destination", func(t *testing.T) {
		f := newGotoFixture(t, nil)
		f.selectOnShow(t, loungeID)

		gt.NoError(t, f.uc.HandleCommand(context.Background(), newInvocation()))
		gt.Equal(t, "ℹ️ Source and destination are the same channel.", f.lastReply(t))
		gt.A(t, f.platform.MoveMemberCalls()).Length(0)
	})

	t.Run("source emptied during selection", func(t *testing.T) {
		f := newGotoFixture(t, nil)
		f.platform.ShowPickerFunc = func(ctx context.Context, inv *model.Invocation, text string, req *model.SelectionRequest) error {
			f.guild.setChannels(
				&model.VoiceChannel{ID: loungeID, Name: "Lounge"},
				f.guild.channels[1],
				f.guild.channels[2],
			)
			return f.uc.HandleSelection(ctx, &model.SelectionEvent{
				RequestID: req.ID,
				UserID:    inv.UserID,
				Values:    []string{arenaID.String()},
			})
		}

		gt.NoError(t, f.uc.HandleCommand(context.Background(), newInvocation()))
		gt.Equal(t, "ℹ️ Nobody to move in **Lounge**.", f.lastReply(t))
		gt.A(t, f.platform.MoveMemberCalls()).Length(0)
		gt.A(t, f.notifier.NotifyMoveOutcomeCalls()).Length(0)
	})

	t.Run("operator cancels", func(t *testing.T) {
		f := newGotoFixture(t, nil)
		f.platform.ShowPickerFunc = func(ctx context.Context, inv *model.Invocation, text string, req *model.SelectionRequest) error {
			return f.uc.HandleCancel(ctx, &model.SelectionEvent{RequestID: req.ID, UserID: inv.UserID})
		}

		gt.NoError(t, f.uc.HandleCommand(context.Background(), newInvocation()))
		gt.Equal(t, "Cancelled. Nobody was moved.", f.lastReply(t))
		gt.A(t, f.platform.MoveMemberCalls()).Length(0)
	})

	t.Run("selection expires", func(t *testing.T) {
		f := newGotoFixture(t, []usecase.PickerOption{usecase.WithSelectionTimeout(20 * time.Millisecond)})
		f.platform.ShowPickerFunc = func(ctx context.Context, inv *model.Invocation, text string, req *model.SelectionRequest) error {
			return nil
		}

		gt.NoError(t, f.uc.HandleCommand(context.Background(), newInvocation()))
		gt.A(t, f.platform.ClosePickerCalls()).Length(1)
		gt.A(t, f.platform.ReplyCalls()).Length(0)
		gt.A(t, f.platform.MoveMemberCalls()).Length(0)
	})

	t.Run("interactions from another user are ignored", func(t *testing.T) {
		f := newGotoFixture(t, nil)
		f.platform.ShowPickerFunc = func(ctx context.Context, inv *model.Invocation, text string, req *model.SelectionRequest) error {
			gt.NoError(t, f.uc.HandleSelection(ctx, &model.SelectionEvent{
				RequestID: req.ID,
				UserID:    "intruder",
				Values:    []string{arenaID.String()},
			}))
			return f.uc.HandleCancel(ctx, &model.SelectionEvent{RequestID: req.ID, UserID: inv.UserID})
		}

		gt.NoError(t, f.uc.HandleCommand(context.Background(), newInvocation()))
		gt.Equal(t, "Cancelled. Nobody was moved.", f.lastReply(t))
		gt.A(t, f.platform.MoveMemberCalls()).Length(0)
	})
}

func TestGotoUnknownSelection(t *testing.T) {
	f := newGotoFixture(t, nil)

	err := f.uc.HandleSelection(context.Background(), &model.SelectionEvent{
		RequestID: types.NewSelectionID(),
		UserID:    "operator",
		Values:    []string{arenaID.String()},
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrSelectionRequestNotFound))
}

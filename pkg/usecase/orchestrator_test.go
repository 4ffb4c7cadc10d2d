package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gotobot/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/gotobot/pkg/domain/model"
	"github.com/secmon-lab/gotobot/pkg/domain/types"
	"github.com/secmon-lab/gotobot/pkg/usecase"
)

type countingSleeper struct {
	mu    sync.Mutex
	calls []time.Duration
}

func (s *countingSleeper) Sleep(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, d)
}

func (s *countingSleeper) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func loungeBatch(t *testing.T, occupants []model.Occupant) *model.MoveBatch {
	t.Helper()
	batch, err := model.NewMoveBatch("G1", "operator",
		model.ChannelRef{ID: channelID(1), Name: "Lounge"},
		model.ChannelRef{ID: channelID(2), Name: "Arena"},
		occupants,
		"/goto by alice",
	)
	gt.NoError(t, err).Required()
	return batch
}

func TestMoveOrchestratorExecute(t *testing.T) {
	occupants := []model.Occupant{
		{UserID: "u1", Name: "ana"},
		{UserID: "u2", Name: "bogdan"},
		{UserID: "u3", Name: "carmen"},
		{UserID: "b1", Name: "music", Bot: true},
	}

	t.Run("every occupant is attempted once and failures are isolated", func(t *testing.T) {
		var inFlight, maxInFlight int32
		mover := &mocks.PlatformMock{
			MoveMemberFunc: func(ctx context.Context, guildID types.GuildID, userID types.UserID, channel types.ChannelID, reason string) error {
				n := atomic.AddInt32(&inFlight, 1)
				defer atomic.AddInt32(&inFlight, -1)
				if n > atomic.LoadInt32(&maxInFlight) {
					atomic.StoreInt32(&maxInFlight, n)
				}
				if userID == "u2" || userID == "b1" {
					return errors.New("missing permissions")
				}
				return nil
			},
		}
		sleeper := &countingSleeper{}
		orchestrator := usecase.NewMoveOrchestrator(mover, usecase.WithSleeper(sleeper.Sleep))

		outcome := orchestrator.Execute(context.Background(), loungeBatch(t, occupants))

		gt.Equal(t, 2, outcome.Moved())
		gt.Equal(t, 2, outcome.Failed())
		gt.Equal(t, 4, outcome.Total())
		gt.Equal(t, int32(1), maxInFlight)

		calls := mover.MoveMemberCalls()
		gt.A(t, calls).Length(4)
		for i, call := range calls {
			gt.Equal(t, occupants[i].UserID, call.UserID)
			gt.Equal(t, channelID(2), call.ChannelID)
			gt.Equal(t, types.GuildID("G1"), call.GuildID)
			gt.Equal(t, "/goto by alice", call.Reason)
		}
		gt.Equal(t, types.UserID("b1"), outcome.Results[3].UserID)
		gt.True(t, outcome.Results[3].Bot)
		gt.False(t, outcome.Results[3].Moved)
	})

	t.Run("pacing delay only between attempts", func(t *testing.T) {
		mover := &mocks.PlatformMock{
			MoveMemberFunc: func(ctx context.Context, guildID types.GuildID, userID types.UserID, channel types.ChannelID, reason string) error {
				return nil
			},
		}
		sleeper := &countingSleeper{}
		orchestrator := usecase.NewMoveOrchestrator(mover, usecase.WithSleeper(sleeper.Sleep))
		gt.Equal(t, 50*time.Millisecond, orchestrator.PacingDelay())

		orchestrator.Execute(context.Background(), loungeBatch(t, occupants))
		gt.Equal(t, 3, sleeper.Count())
		for _, d := range sleeper.calls {
			gt.Equal(t, 50*time.Millisecond, d)
		}
	})

	t.Run("single occupant is moved without sleeping", func(t *testing.T) {
		mover := &mocks.PlatformMock{
			MoveMemberFunc: func(ctx context.Context, guildID types.GuildID, userID types.UserID, channel types.ChannelID, reason string) error {
				return nil
			},
		}
		sleeper := &countingSleeper{}
		orchestrator := usecase.NewMoveOrchestrator(mover, usecase.WithSleeper(sleeper.Sleep))

		outcome := orchestrator.Execute(context.Background(), loungeBatch(t, occupants[:1]))
		gt.Equal(t, 1, outcome.Moved())
		gt.A(t, mover.MoveMemberCalls()).Length(1)
		gt.Equal(t, 0, sleeper.Count())
	})

	t.Run("two occupants sleep exactly once", func(t *testing.T) {
		var sleptBeforeSecond bool
		sleeper := &countingSleeper{}
		mover := &mocks.PlatformMock{
			MoveMemberFunc: func(ctx context.Context, guildID types.GuildID, userID types.UserID, channel types.ChannelID, reason string) error {
				if userID == "u2" {
					sleptBeforeSecond = sleeper.Count() == 1
				}
				return nil
			},
		}
		orchestrator := usecase.NewMoveOrchestrator(mover,
			usecase.WithPacingDelay(10*time.Millisecond),
			usecase.WithSleeper(sleeper.Sleep),
		)

		outcome := orchestrator.Execute(context.Background(), loungeBatch(t, occupants[:2]))
		gt.Equal(t, 2, outcome.Moved())
		gt.Equal(t, 1, sleeper.Count())
		gt.Equal(t, 10*time.Millisecond, sleeper.calls[0])
		gt.True(t, sleptBeforeSecond)
	})

	t.Run("zero pacing does not sleep", func(t *testing.T) {
		mover := &mocks.PlatformMock{
			MoveMemberFunc: func(ctx context.Context, guildID types.GuildID, userID types.UserID, channel types.ChannelID, reason string) error {
				return nil
			},
		}
		sleeper := &countingSleeper{}
		orchestrator := usecase.NewMoveOrchestrator(mover,
			usecase.WithPacingDelay(0),
			usecase.WithSleeper(sleeper.Sleep),
		)

		outcome := orchestrator.Execute(context.Background(), loungeBatch(t, occupants))
		gt.Equal(t, 4, outcome.Moved())
		gt.Equal(t, 0, sleeper.Count())
	})

	t.Run("empty snapshot makes no call", func(t *testing.T) {
		mover := &mocks.PlatformMock{}
		sleeper := &countingSleeper{}
		orchestrator := usecase.NewMoveOrchestrator(mover, usecase.WithSleeper(sleeper.Sleep))

		outcome := orchestrator.Execute(context.Background(), loungeBatch(t, nil))
		gt.Equal(t, 0, outcome.Moved())
		gt.Equal(t, 0, outcome.Failed())
		gt.A(t, mover.MoveMemberCalls()).Length(0)
		gt.Equal(t, 0, sleeper.Count())
	})

	t.Run("cancelled context does not stop the batch", func(t *testing.T) {
		mover := &mocks.PlatformMock{
			MoveMemberFunc: func(ctx context.Context, guildID types.GuildID, userID types.UserID, channel types.ChannelID, reason string) error {
				return ctx.Err()
			},
		}
		orchestrator := usecase.NewMoveOrchestrator(mover, usecase.WithSleeper(func(time.Duration) {}))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		outcome := orchestrator.Execute(ctx, loungeBatch(t, occupants))
		gt.Equal(t, 4, outcome.Moved())
	})
}

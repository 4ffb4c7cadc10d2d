package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/gotobot/pkg/domain/interfaces"
	"github.com/secmon-lab/gotobot/pkg/domain/model"
)

// DefaultPacingDelay is the pause between two relocation calls
const DefaultPacingDelay = 50 * time.Millisecond

// MoveOrchestrator relocates the occupants of a batch one at a time
type MoveOrchestrator struct {
	mover  interfaces.MemberMover
	pacing time.Duration
	sleep  func(time.Duration)
	now    func() time.Time
}

// MoveOption configures a MoveOrchestrator
type MoveOption func(*MoveOrchestrator)

// WithPacingDelay sets the pause between consecutive relocation attempts
func WithPacingDelay(d time.Duration) MoveOption {
	return func(o *MoveOrchestrator) {
		if d >= 0 {
			o.pacing = d
		}
	}
}

// WithSleeper replaces the pacing sleep, for tests
func WithSleeper(sleep func(time.Duration)) MoveOption {
	return func(o *MoveOrchestrator) {
		o.sleep = sleep
	}
}

// NewMoveOrchestrator creates a new MoveOrchestrator
func NewMoveOrchestrator(mover interfaces.MemberMover, opts ...MoveOption) *MoveOrchestrator {
	o := &MoveOrchestrator{
		mover:  mover,
		pacing: DefaultPacingDelay,
		sleep:  time.Sleep,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// PacingDelay returns the pause between consecutive attempts
func (o *MoveOrchestrator) PacingDelay() time.Duration {
	return o.pacing
}

// Execute moves every occupant of the batch snapshot, in order, to the destination.
// Attempts never run concurrently and a failed attempt never stops the batch: it is
// counted and the next occupant is tried. The batch always runs to completion, even
// if ctx is cancelled meanwhile.
func (o *MoveOrchestrator) Execute(ctx context.Context, batch *model.MoveBatch) *model.MoveOutcome {
	logger := ctxlog.From(ctx)
	ctx = context.WithoutCancel(ctx)

	outcome := &model.MoveOutcome{
		GuildID:     batch.GuildID,
		RequestedBy: batch.RequestedBy,
		Source:      batch.Source,
		Destination: batch.Destination,
		Results:     make([]model.MoveResult, 0, batch.Size()),
		StartedAt:   o.now(),
	}

	for i, occupant := range batch.Occupants {
		if i > 0 && o.pacing > 0 {
			o.sleep(o.pacing)
		}

		result := model.MoveResult{UserID: occupant.UserID, Bot: occupant.Bot}
		if err := o.mover.MoveMember(ctx, batch.GuildID, occupant.UserID, batch.Destination.ID, batch.Reason); err != nil {
			logger.Warn("Failed to move occupant",
				"error", err,
				"userID", occupant.UserID,
				"source", batch.Source.ID,
				"destination", batch.Destination.ID,
			)
		} else {
			result.Moved = true
		}
		outcome.Results = append(outcome.Results, result)
	}

	outcome.FinishedAt = o.now()

	logger.Info("Move batch finished",
		"guildID", batch.GuildID,
		"source", batch.Source.ID,
		"destination", batch.Destination.ID,
		"moved", outcome.Moved(),
		"failed", outcome.Failed(),
		"elapsed", outcome.FinishedAt.Sub(outcome.StartedAt),
	)

	return outcome
}

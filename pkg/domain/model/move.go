package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gotobot/pkg/domain/types"
)

// ChannelRef identifies a channel by ID and name
type ChannelRef struct {
	ID   types.ChannelID `json:"id"`
	Name string          `json:"name"`
}

// MoveBatch is the unit of work of the orchestrator.
// Occupants is a snapshot taken once at construction; joins and leaves after that
// point are not reflected while the batch runs.
type MoveBatch struct {
	GuildID     types.GuildID
	RequestedBy types.UserID
	Source      ChannelRef
	Destination ChannelRef
	Occupants   []Occupant
	Reason      string
}

// NewMoveBatch creates a batch moving the given occupants from source to destination
func NewMoveBatch(guildID types.GuildID, requestedBy types.UserID, source, destination ChannelRef, occupants []Occupant, reason string) (*MoveBatch, error) {
	if source.ID == destination.ID {
		return nil, goerr.Wrap(ErrIdenticalChannel, "cannot build move batch",
			goerr.V("channel_id", source.ID))
	}

	return &MoveBatch{
		GuildID:     guildID,
		RequestedBy: requestedBy,
		Source:      source,
		Destination: destination,
		Occupants:   append([]Occupant(nil), occupants...),
		Reason:      reason,
	}, nil
}

// Size returns the number of occupants in the snapshot
func (b *MoveBatch) Size() int {
	return len(b.Occupants)
}

// MoveResult is the outcome of one relocation attempt
type MoveResult struct {
	UserID types.UserID `json:"user_id"`
	Bot    bool         `json:"bot"`
	Moved  bool         `json:"moved"`
}

// MoveOutcome aggregates the results of a batch
type MoveOutcome struct {
	GuildID     types.GuildID `json:"guild_id"`
	RequestedBy types.UserID  `json:"requested_by"`
	Source      ChannelRef    `json:"source"`
	Destination ChannelRef    `json:"destination"`
	Results     []MoveResult  `json:"results"`
	StartedAt   time.Time     `json:"started_at"`
	FinishedAt  time.Time     `json:"finished_at"`
}

// Moved returns the number of occupants relocated
func (o *MoveOutcome) Moved() int {
	n := 0
	for _, r := range o.Results {
		if r.Moved {
			n++
		}
	}
	return n
}

// Failed returns the number of occupants not relocated
func (o *MoveOutcome) Failed() int {
	return len(o.Results) - o.Moved()
}

// Total returns the number of attempts, which equals the batch size
func (o *MoveOutcome) Total() int {
	return len(o.Results)
}

package model

import (
	"sync"
	"time"

	"github.com/secmon-lab/gotobot/pkg/domain/types"
)

// MaxSelectionCandidates is the platform limit of options in a single select menu
const MaxSelectionCandidates = 25

// Candidate is a destination offered to the operator, annotated at render time
type Candidate struct {
	ID            types.ChannelID
	Name          string
	OccupantCount int
}

// SelectionRequest represents one pending destination selection.
// It lives until a choice is made, it is cancelled or its deadline elapses.
type SelectionRequest struct {
	ID          types.SelectionID
	GuildID     types.GuildID
	RequestedBy types.UserID
	Source      VoiceChannel
	Candidates  []Candidate
	CreatedAt   time.Time
	ExpiresAt   time.Time

	choice     chan types.ChannelID
	cancel     chan struct{}
	cancelOnce *sync.Once
}

// NewSelectionRequest creates a selection request over the given channels.
// Only the first MaxSelectionCandidates channels in catalog order are offered.
func NewSelectionRequest(guildID types.GuildID, requestedBy types.UserID, source *VoiceChannel, channels []*VoiceChannel, timeout time.Duration, now time.Time) *SelectionRequest {
	offered := channels
	if len(offered) > MaxSelectionCandidates {
		offered = offered[:MaxSelectionCandidates]
	}

	candidates := make([]Candidate, 0, len(offered))
	for _, ch := range offered {
		candidates = append(candidates, Candidate{
			ID:            ch.ID,
			Name:          ch.DisplayName(),
			OccupantCount: ch.OccupantCount(),
		})
	}

	return &SelectionRequest{
		ID:          types.NewSelectionID(),
		GuildID:     guildID,
		RequestedBy: requestedBy,
		Source: VoiceChannel{
			ID:        source.ID,
			Name:      source.Name,
			Occupants: append([]Occupant(nil), source.Occupants...),
		},
		Candidates: candidates,
		CreatedAt:  now,
		ExpiresAt:  now.Add(timeout),
		choice:     make(chan types.ChannelID, 1),
		cancel:     make(chan struct{}),
		cancelOnce: &sync.Once{},
	}
}

// IsExpired checks if the request deadline has passed
func (r *SelectionRequest) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// HasCandidate reports whether the channel was offered to the operator
func (r *SelectionRequest) HasCandidate(id types.ChannelID) bool {
	for _, c := range r.Candidates {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Choose submits the operator's choice. Only the first choice is accepted.
func (r *SelectionRequest) Choose(id types.ChannelID) bool {
	select {
	case r.choice <- id:
		return true
	default:
		return false
	}
}

// Choice returns the channel delivering the operator's choice
func (r *SelectionRequest) Choice() <-chan types.ChannelID {
	return r.choice
}

// Cancel aborts the selection. Safe to call more than once.
func (r *SelectionRequest) Cancel() {
	r.cancelOnce.Do(func() { close(r.cancel) })
}

// Cancelled is closed once the selection has been cancelled
func (r *SelectionRequest) Cancelled() <-chan struct{} {
	return r.cancel
}

// SelectionStatus is the terminal state of a selection
type SelectionStatus int

const (
	SelectionSelected SelectionStatus = iota
	SelectionExpired
	SelectionCancelled
	SelectionInvalid
	SelectionIdentical
)

// String returns the string representation
func (s SelectionStatus) String() string {
	switch s {
	case SelectionSelected:
		return "selected"
	case SelectionExpired:
		return "expired"
	case SelectionCancelled:
		return "cancelled"
	case SelectionInvalid:
		return "invalid"
	case SelectionIdentical:
		return "identical"
	default:
		return "unknown"
	}
}

// SelectionOutcome is the result of a selection. Destination is set only when Status is SelectionSelected.
type SelectionOutcome struct {
	Status      SelectionStatus
	Destination *VoiceChannel
}

// SelectionEvent is a component interaction addressed to a pending selection
type SelectionEvent struct {
	RequestID types.SelectionID
	UserID    types.UserID
	Values    []string
}

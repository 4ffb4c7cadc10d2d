package model

import (
	"github.com/secmon-lab/gotobot/pkg/domain/types"
)

// MaxOptionLabelLength is the platform limit for a select option label
const MaxOptionLabelLength = 100

// Occupant is an account currently connected to a voice channel
type Occupant struct {
	UserID types.UserID
	Name   string
	Bot    bool // automated account
}

// VoiceChannel is a read-only snapshot of a voice channel and its occupants
type VoiceChannel struct {
	ID        types.ChannelID
	Name      string
	Occupants []Occupant
}

// DisplayName returns the channel name truncated to the option label limit
func (c *VoiceChannel) DisplayName() string {
	return truncate(c.Name, MaxOptionLabelLength)
}

// OccupantCount returns the number of occupants at snapshot time, automated accounts included
func (c *VoiceChannel) OccupantCount() int {
	return len(c.Occupants)
}

// Eligible returns a copy of the occupants that the policy allows to be moved
func (c *VoiceChannel) Eligible(policy OccupantPolicy) []Occupant {
	result := make([]Occupant, 0, len(c.Occupants))
	for _, o := range c.Occupants {
		if policy.Allows(o) {
			result = append(result, o)
		}
	}
	return result
}

// OccupantPolicy decides which occupants take part in a move.
// The same policy drives both the "anyone to move?" check and the move snapshot.
type OccupantPolicy int

const (
	// ExcludeBots leaves automated accounts where they are
	ExcludeBots OccupantPolicy = iota
	// IncludeBots moves automated accounts along with everybody else
	IncludeBots
)

// Allows reports whether the occupant is eligible under the policy
func (p OccupantPolicy) Allows(o Occupant) bool {
	if p == IncludeBots {
		return true
	}
	return !o.Bot
}

// String returns the string representation
func (p OccupantPolicy) String() string {
	if p == IncludeBots {
		return "include-bots"
	}
	return "exclude-bots"
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

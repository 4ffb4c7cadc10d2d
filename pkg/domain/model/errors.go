package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the /goto flow.
// The first group is surfaced to the operator as validation messages.
var (
	ErrNotInGuild          = goerr.New("command used outside of a guild")
	ErrNotInVoiceChannel   = goerr.New("operator is not connected to a voice channel")
	ErrNoEligibleOccupants = goerr.New("source channel has no eligible occupants")
	ErrNoVoiceChannels     = goerr.New("guild has no voice channels")
	ErrNoDestinations      = goerr.New("no destination voice channel besides the source")

	ErrChannelNotFound          = goerr.New("voice channel not found")
	ErrIdenticalChannel         = goerr.New("source and destination are the same channel")
	ErrSelectionRequestNotFound = goerr.New("selection request not found")
)

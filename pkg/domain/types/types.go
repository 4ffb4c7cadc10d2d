package types

import (
	"github.com/disgoorg/snowflake/v2"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// GuildID represents a Discord guild (server) identifier
type GuildID string

// String returns the string representation
func (id GuildID) String() string {
	return string(id)
}

// ChannelID represents a Discord channel identifier
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}

// ParseChannelID parses a raw value (e.g. a select menu value) into a ChannelID.
// The value must be a valid snowflake.
func ParseChannelID(raw string) (ChannelID, error) {
	id, err := snowflake.Parse(raw)
	if err != nil {
		return "", goerr.Wrap(err, "invalid channel ID", goerr.V("raw", raw))
	}
	if id == 0 {
		return "", goerr.New("invalid channel ID", goerr.V("raw", raw))
	}
	return ChannelID(id.String()), nil
}

// UserID represents a Discord user identifier
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// SelectionID identifies a pending destination selection
type SelectionID string

// String returns the string representation
func (id SelectionID) String() string {
	return string(id)
}

// NewSelectionID creates a new SelectionID
func NewSelectionID() SelectionID {
	return SelectionID(uuid.New().String())
}

// ParseSelectionID validates a raw selection identifier taken from a component custom ID
func ParseSelectionID(raw string) (SelectionID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", goerr.Wrap(err, "invalid selection ID", goerr.V("raw", raw))
	}
	return SelectionID(id.String()), nil
}

package model_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gotobot/pkg/domain/model"
)

func loungeChannel() *model.VoiceChannel {
	return &model.VoiceChannel{
		ID:   "100",
		Name: "Lounge",
		Occupants: []model.Occupant{
			{UserID: "1", Name: "alice"},
			{UserID: "2", Name: "bob"},
			{UserID: "3", Name: "music", Bot: true},
			{UserID: "4", Name: "carol"},
		},
	}
}

func TestVoiceChannelDisplayName(t *testing.T) {
	t.Run("short names are kept", func(t *testing.T) {
		ch := &model.VoiceChannel{Name: "Arena"}
		gt.Equal(t, "Arena", ch.DisplayName())
	})

	t.Run("long names are truncated to the label limit", func(t *testing.T) {
		ch := &model.VoiceChannel{Name: strings.Repeat("x", 150)}
		gt.Equal(t, model.MaxOptionLabelLength, len(ch.DisplayName()))
	})

	t.Run("truncation counts runes", func(t *testing.T) {
		ch := &model.VoiceChannel{Name: strings.Repeat("ș", 120)}
		gt.Equal(t, model.MaxOptionLabelLength, len([]rune(ch.DisplayName())))
	})
}

func TestVoiceChannelEligible(t *testing.T) {
	t.Run("ExcludeBots drops automated accounts", func(t *testing.T) {
		eligible := loungeChannel().Eligible(model.ExcludeBots)
		gt.Equal(t, 3, len(eligible))
		for _, o := range eligible {
			gt.False(t, o.Bot)
		}
	})

	t.Run("IncludeBots keeps everybody in order", func(t *testing.T) {
		eligible := loungeChannel().Eligible(model.IncludeBots)
		gt.Equal(t, 4, len(eligible))
		gt.Equal(t, "1", eligible[0].UserID.String())
		gt.Equal(t, "4", eligible[3].UserID.String())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		ch := loungeChannel()
		eligible := ch.Eligible(model.IncludeBots)
		eligible[0].Name = "changed"
		gt.Equal(t, "alice", ch.Occupants[0].Name)
	})

	t.Run("count includes automated accounts", func(t *testing.T) {
		gt.Equal(t, 4, loungeChannel().OccupantCount())
	})
}

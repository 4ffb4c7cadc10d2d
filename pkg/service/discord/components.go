package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gotobot/pkg/domain/model"
	"github.com/secmon-lab/gotobot/pkg/domain/types"
	"github.com/secmon-lab/gotobot/pkg/i18n"
)

// Custom ID prefixes of the picker components. The selection ID follows the colon.
const (
	CustomIDSelect = "goto_select"
	CustomIDCancel = "goto_cancel"
)

// ComponentAction is what a picker component asks for
type ComponentAction int

const (
	ActionSelect ComponentAction = iota + 1
	ActionCancel
)

// SelectCustomID returns the custom ID of the destination select menu
func SelectCustomID(id types.SelectionID) string {
	return CustomIDSelect + ":" + id.String()
}

// CancelCustomID returns the custom ID of the cancel button
func CancelCustomID(id types.SelectionID) string {
	return CustomIDCancel + ":" + id.String()
}

// ParseCustomID splits a picker custom ID into its action and selection ID
func ParseCustomID(customID string) (ComponentAction, types.SelectionID, error) {
	prefix, raw, ok := strings.Cut(customID, ":")
	if !ok {
		return 0, "", goerr.New("malformed custom ID", goerr.V("custom_id", customID))
	}

	var action ComponentAction
	switch prefix {
	case CustomIDSelect:
		action = ActionSelect
	case CustomIDCancel:
		action = ActionCancel
	default:
		return 0, "", goerr.New("unknown custom ID", goerr.V("custom_id", customID))
	}

	id, err := types.ParseSelectionID(raw)
	if err != nil {
		return 0, "", goerr.Wrap(err, "invalid selection in custom ID", goerr.V("custom_id", customID))
	}
	return action, id, nil
}

// BuildPickerComponents renders the destination select menu and the cancel button.
// Each option carries the channel ID as value and the occupant count as description.
func BuildPickerComponents(req *model.SelectionRequest, catalog *i18n.Catalog) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(req.Candidates))
	for _, c := range req.Candidates {
		options = append(options, discordgo.SelectMenuOption{
			Label:       c.Name,
			Value:       c.ID.String(),
			Description: catalog.Text(i18n.KeyPickerOption, c.OccupantCount),
		})
	}

	minValues := 1
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    SelectCustomID(req.ID),
					Placeholder: catalog.Text(i18n.KeyPickerPlaceholder),
					MinValues:   &minValues,
					MaxValues:   1,
					Options:     options,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    catalog.Text(i18n.KeyPickerCancel),
					Style:    discordgo.SecondaryButton,
					CustomID: CancelCustomID(req.ID),
				},
			},
		},
	}
}

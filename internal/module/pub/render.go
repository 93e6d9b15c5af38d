package pub

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/domain"
)

// pubButtons builds the Map/Menu link buttons shown under venue
// announcements.
func pubButtons(pub *domain.Pub) []discordgo.MessageComponent {
	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label: "Map",
			Style: discordgo.LinkButton,
			URL:   pub.MapURL,
		},
	}
	if pub.MenuURL != nil && *pub.MenuURL != "" {
		buttons = append(buttons, discordgo.Button{
			Label: "Menu",
			Style: discordgo.LinkButton,
			URL:   *pub.MenuURL,
		})
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

func (m *Module) formattedPubName(pub *domain.Pub) string {
	return fmt.Sprintf("%s **%s** %s", pub.Emoji, pub.Name, m.cfg.Pub.SupplementalEmoji)
}

// respondEphemeral sends an ephemeral first response to an interaction.
func (m *Module) respondEphemeral(ic *discordgo.InteractionCreate, content string) {
	err := m.resp.Respond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		m.log.Error("failed to respond to interaction", logger.String("error", err.Error()))
	}
}

// respondUpdate replaces the message a component interaction came from,
// clearing its components.
func (m *Module) respondUpdate(ic *discordgo.InteractionCreate, content string) {
	err := m.resp.Respond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		m.log.Error("failed to update interaction message", logger.String("error", err.Error()))
	}
}

// apologise is the generic interactive-path failure reply; detail stays in
// the logs.
func (m *Module) apologise(ic *discordgo.InteractionCreate) {
	m.respondEphemeral(ic, "Something went wrong, sorry.")
}

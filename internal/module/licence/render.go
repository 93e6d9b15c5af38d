package licence

import (
	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"
)

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

func (m *Module) apologise(ic *discordgo.InteractionCreate) {
	m.respondEphemeral(ic, "Something went wrong, sorry.")
}

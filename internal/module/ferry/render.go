package ferry

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"
)

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

func (m *Module) apologise(ic *discordgo.InteractionCreate) {
	m.respondEphemeral(ic, "Something went wrong, sorry.")
}

// leaderboard renders the current standings, one train per person.
func (m *Module) leaderboard(ctx context.Context) (string, error) {
	people, err := m.people.Leaderboard(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch leaderboard: %w", err)
	}

	lines := []string{"Bad people:"}
	for _, person := range people {
		lines = append(lines, fmt.Sprintf("%s %s",
			person.Mention(),
			Ferrify(person.CurrentScore, SeedForPerson(person.ID)),
		))
	}
	return strings.Join(lines, "\n"), nil
}

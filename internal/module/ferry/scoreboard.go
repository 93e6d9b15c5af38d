package ferry

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/module"
)

func (m *Module) handleScoreboard(ctx context.Context, ic *discordgo.InteractionCreate) {
	board, err := m.leaderboard(ctx)
	if err != nil {
		m.log.Error("failed to render leaderboard", logger.String("error", err.Error()))
		m.apologise(ic)
		return
	}
	m.respondEphemeral(ic, board)
}

func (m *Module) handleFact(ctx context.Context, ic *discordgo.InteractionCreate) {
	invoker := module.InteractionUser(ic)
	person, err := m.resolveParty(ctx, accusedParty{id: invoker.ID, displayName: module.DisplayName(invoker)})
	if err != nil {
		m.log.Error("failed to resolve person for fact", logger.String("error", err.Error()))
		m.respondEphemeral(ic, "Unable to get FACT")
		return
	}

	fact, err := m.people.FactForPerson(ctx, person.ID)
	if err != nil {
		m.log.Error("failed to fetch fact", logger.String("error", err.Error()))
		m.respondEphemeral(ic, "Unable to get FACT")
		return
	}

	if fact.LinkToken == nil {
		m.respondEphemeral(ic, "Sorry, no FACT is currently available.")
		return
	}
	m.respondEphemeral(ic, fmt.Sprintf("Your FACT is `%s`.", *fact.LinkToken))
}

package ferry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/domain"
	"github.com/sown/kmibot/internal/module"
)

// checkRatifier enforces who may ratify an accusation. The accuser and the
// accused are both excluded.
func checkRatifier(acc *domain.Accusation, ratifier uuid.UUID) error {
	if acc.CreatedBy.ID == ratifier {
		return domain.ErrOwnAccusation
	}
	if acc.Suspect.ID == ratifier {
		return domain.ErrAccusedRatifier
	}
	return nil
}

// handleRatify processes a press of the Ratify button under a published
// accusation.
func (m *Module) handleRatify(ctx context.Context, ic *discordgo.InteractionCreate, rawID string) {
	accusationID, err := uuid.Parse(rawID)
	if err != nil {
		m.log.Error("malformed ratify custom id", logger.String("custom_id", rawID))
		m.apologise(ic)
		return
	}

	accusation, err := m.court.Accusation(ctx, accusationID)
	if err != nil {
		m.log.Error("failed to fetch accusation", logger.String("error", err.Error()))
		m.respondEphemeral(ic, "An error occurred during ratification")
		return
	}
	if accusation.Ratified() {
		// The record already carries a verdict, so the button is stale.
		m.acknowledgeAndClearButton(ic)
		if err := m.resp.FollowUp(ic.Interaction, "That accusation has already been ratified.", true); err != nil {
			m.log.Error("failed to send ratify follow-up", logger.String("error", err.Error()))
		}
		return
	}
	suspect, err := m.people.Person(ctx, accusation.Suspect.ID)
	if err != nil {
		m.log.Error("failed to fetch suspect", logger.String("error", err.Error()))
		m.respondEphemeral(ic, "An error occurred during ratification")
		return
	}

	invoker := module.InteractionUser(ic)
	ratifier, err := m.resolveParty(ctx, accusedParty{id: invoker.ID, displayName: module.DisplayName(invoker)})
	if err != nil {
		m.log.Error("failed to resolve ratifier", logger.String("error", err.Error()))
		m.respondEphemeral(ic, "An error occurred during ratification")
		return
	}

	switch checkRatifier(accusation, ratifier.ID) {
	case domain.ErrOwnAccusation:
		m.respondEphemeral(ic, "You cannot ratify an accusation that you made!")
		return
	case domain.ErrAccusedRatifier:
		m.respondEphemeral(ic, "You cannot ratify an accusation made against you!")
		return
	}

	ratification, err := m.court.CreateRatification(ctx, accusationID, ratifier.ID)
	if errors.Is(err, domain.ErrAlreadyRatified) {
		// Somebody else won the race. Clear the stale button and tell only
		// this clicker.
		m.acknowledgeAndClearButton(ic)
		if err := m.resp.FollowUp(ic.Interaction, "That accusation has already been ratified.", true); err != nil {
			m.log.Error("failed to send ratify follow-up", logger.String("error", err.Error()))
		}
		return
	}
	if err != nil {
		m.log.Error("failed to create ratification", logger.String("error", err.Error()))
		m.respondEphemeral(ic, "An error occurred during ratification")
		return
	}

	m.acknowledgeAndClearButton(ic)

	verdict := strings.Join([]string{
		fmt.Sprintf("The accusation has been ratified by %s", invoker.Mention()),
		"",
		fmt.Sprintf("%s has been sentenced to %s", suspect.Mention(), ratification.Consequence.Content),
	}, "\n")
	if err := m.resp.FollowUp(ic.Interaction, verdict, false); err != nil {
		m.log.Error("failed to publish verdict", logger.String("error", err.Error()))
	}

	board, err := m.leaderboard(ctx)
	if err != nil {
		m.log.Error("failed to render leaderboard", logger.String("error", err.Error()))
		return
	}
	if err := m.msg.Send(m.cfg.Ferry.ChannelID, board); err != nil {
		m.log.Error("failed to post leaderboard", logger.String("error", err.Error()))
	}
}

// acknowledgeAndClearButton defers the component interaction and strips the
// Ratify button from the accusation message so it cannot be pressed again.
func (m *Module) acknowledgeAndClearButton(ic *discordgo.InteractionCreate) {
	err := m.resp.Respond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		m.log.Error("failed to acknowledge ratify press", logger.String("error", err.Error()))
		return
	}
	if ic.Message == nil {
		return
	}
	if err := m.resp.RemoveComponents(ic.ChannelID, ic.Message.ID); err != nil {
		m.log.Error("failed to remove ratify button", logger.String("error", err.Error()))
	}
}

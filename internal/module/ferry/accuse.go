package ferry

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/domain"
	"github.com/sown/kmibot/internal/module"
)

// handleAccuse is the /ferry accuse entry point. Self-accusation is refused
// before anything touches the ferry service.
func (m *Module) handleAccuse(ic *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	if len(opts) == 0 {
		return
	}
	suspectID, _ := opts[0].Value.(string)
	m.handleAccuseTarget(ic, suspectID)
}

// handleAccuseTarget opens the evidence modal for both the slash command and
// the user context menu.
func (m *Module) handleAccuseTarget(ic *discordgo.InteractionCreate, suspectID string) {
	invoker := module.InteractionUser(ic)
	if invoker.ID == suspectID {
		m.respondEphemeral(ic, "Who watches the watchman?")
		return
	}

	err := m.resp.Respond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: accusePrefix + suspectID,
			Title:    "Accuse of Ferrying",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "quote",
							Label:       "Quote as Evidence of Ferrying",
							Style:       discordgo.TextInputParagraph,
							Placeholder: "I like trains",
							Required:    true,
						},
					},
				},
			},
		},
	})
	if err != nil {
		m.log.Error("failed to open accuse modal", logger.String("error", err.Error()))
	}
}

// handleAccuseSubmit receives the completed evidence modal.
func (m *Module) handleAccuseSubmit(ctx context.Context, ic *discordgo.InteractionCreate, suspectID string, data discordgo.ModalSubmitInteractionData) {
	quote := modalTextValue(data, "quote")

	m.respondEphemeral(ic, "The crime has been submitted for a public trial. You are not allowed to ratify it.")

	invoker := module.InteractionUser(ic)
	m.publishAccusation(ctx,
		accusedParty{id: suspectID, displayName: ""},
		accusedParty{id: invoker.ID, displayName: module.DisplayName(invoker)},
		quote,
	)
}

// accusedParty identifies one side of an accusation by Discord id. The
// display name is used only when the ferry service has to create the person.
type accusedParty struct {
	id          string
	displayName string
}

// publishAccusation persists the accusation and posts the public trial
// message with its single Ratify button. Failures are logged and swallowed:
// the submitter has already had their ephemeral confirmation, and the
// watcher path has no response channel at all.
func (m *Module) publishAccusation(ctx context.Context, suspect, accuser accusedParty, quote string) {
	suspectPerson, err := m.resolveParty(ctx, suspect)
	if err != nil {
		m.log.Error("failed to resolve suspect", logger.String("error", err.Error()))
		return
	}
	accuserPerson, err := m.resolveParty(ctx, accuser)
	if err != nil {
		m.log.Error("failed to resolve accuser", logger.String("error", err.Error()))
		return
	}

	accusation, err := m.court.CreateAccusation(ctx, accuserPerson.ID, suspectPerson.ID, quote)
	if err != nil {
		m.log.Error("failed to create accusation", logger.String("error", err.Error()))
		return
	}

	lines := []string{
		fmt.Sprintf("%s has been accused of a heinous crime by %s", suspectPerson.Mention(), accuserPerson.Mention()),
	}
	if quote != "" {
		lines = append(lines, "", fmt.Sprintf("> %s", quote))
	}
	lines = append(lines, "", fmt.Sprintf("If you agree that %s is guilty please ratify the accusation.", suspectPerson.Mention()))

	_, err = m.msg.SendComplex(m.cfg.Ferry.ChannelID, &discordgo.MessageSend{
		Content: strings.Join(lines, "\n"),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Ratify",
						Style:    discordgo.PrimaryButton,
						CustomID: ratifyPrefix + accusation.ID.String(),
					},
				},
			},
		},
	})
	if err != nil {
		m.log.Error("failed to publish accusation", logger.String("error", err.Error()))
	}
}

func (m *Module) resolveParty(ctx context.Context, party accusedParty) (*domain.Person, error) {
	discordID, err := module.ParseSnowflake(party.id)
	if err != nil {
		return nil, err
	}
	name := party.displayName
	if name == "" {
		if member, err := m.members.Member(party.id); err == nil {
			name = module.MemberDisplayName(member)
		}
	}
	return m.people.PersonForDiscordID(ctx, discordID, name)
}

func modalTextValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

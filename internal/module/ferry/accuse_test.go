package ferry

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sown/kmibot/internal/domain"
)

func commandInteraction(userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:   discordgo.InteractionApplicationCommand,
			Member: &discordgo.Member{User: &discordgo.User{ID: userID, Username: "alice"}},
		},
	}
}

func TestHandleAccuseTarget_SelfRefused(t *testing.T) {
	m, fm := newTestModule(t)

	// The refusal happens before anything reaches the ferry service.
	fm.resp.EXPECT().Respond(mock.Anything, ephemeralContaining("Who watches the watchman?")).Return(nil)

	m.handleAccuseTarget(commandInteraction("100"), "100")
}

func TestHandleAccuseTarget_OpensModal(t *testing.T) {
	m, fm := newTestModule(t)

	fm.resp.EXPECT().Respond(mock.Anything, mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return r.Type == discordgo.InteractionResponseModal &&
			r.Data != nil &&
			r.Data.CustomID == accusePrefix+"200"
	})).Return(nil)

	m.handleAccuseTarget(commandInteraction("100"), "200")
}

func TestHandleAccuseSubmit_PublishesAccusation(t *testing.T) {
	m, fm := newTestModule(t)

	accuser := uuid.New()
	suspect := uuid.New()
	accusationID := uuid.New()

	fm.resp.EXPECT().Respond(mock.Anything, ephemeralContaining("submitted for a public trial")).Return(nil)

	// The suspect arrives as a bare id, so their guild nickname backs the
	// lazy person creation.
	fm.members.EXPECT().Member("200").Return(&discordgo.Member{
		Nick: "bob",
		User: &discordgo.User{ID: "200", Username: "bob2000"},
	}, nil)
	suspectDiscord := int64(200)
	fm.people.EXPECT().PersonForDiscordID(mock.Anything, int64(200), "bob").
		Return(&domain.Person{ID: suspect, DisplayName: "bob", DiscordID: &suspectDiscord}, nil)
	accuserDiscord := int64(100)
	fm.people.EXPECT().PersonForDiscordID(mock.Anything, int64(100), "alice").
		Return(&domain.Person{ID: accuser, DisplayName: "alice", DiscordID: &accuserDiscord}, nil)

	fm.court.EXPECT().CreateAccusation(mock.Anything, accuser, suspect, "I like trains").
		Return(&domain.Accusation{ID: accusationID}, nil)

	fm.msg.EXPECT().SendComplex("ferry-channel", mock.MatchedBy(func(msg *discordgo.MessageSend) bool {
		if !strings.Contains(msg.Content, "<@200> has been accused of a heinous crime by <@100>") {
			return false
		}
		if !strings.Contains(msg.Content, "> I like trains") {
			return false
		}
		row, ok := msg.Components[0].(discordgo.ActionsRow)
		if !ok {
			return false
		}
		button, ok := row.Components[0].(discordgo.Button)
		return ok && button.CustomID == ratifyPrefix+accusationID.String()
	})).Return(&discordgo.Message{ID: "trial-msg"}, nil)

	data := discordgo.ModalSubmitInteractionData{
		CustomID: accusePrefix + "200",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "quote", Value: "I like trains"},
				},
			},
		},
	}

	ic := commandInteraction("100")
	ic.Type = discordgo.InteractionModalSubmit

	m.handleAccuseSubmit(context.Background(), ic, "200", data)
}

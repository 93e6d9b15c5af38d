package ferry

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sown/kmibot/internal/domain"
)

func guildMessage(authorID, content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "msg-1",
			ChannelID: "general",
			Content:   content,
			Author:    &discordgo.User{ID: authorID, Username: "carol"},
			Member:    &discordgo.Member{Nick: "carol"},
		},
	}
}

func TestOnMessage_IgnoresOwnMessages(t *testing.T) {
	m, fm := newTestModule(t)

	fm.bot.EXPECT().BotUser().Return(&discordgo.User{ID: "1", Username: "kmibot"})

	m.OnMessage(context.Background(), guildMessage("1", "ferry ferry ferry"))
}

func TestOnMessage_IgnoresMidSentenceWord(t *testing.T) {
	m, fm := newTestModule(t)

	fm.bot.EXPECT().BotUser().Return(&discordgo.User{ID: "1", Username: "kmibot"})

	// The watcher only fires on messages that open with the banned word.
	m.OnMessage(context.Background(), guildMessage("300", "I rode the ferry today"))
}

func TestOnMessage_ProsecutesBannedWord(t *testing.T) {
	m, fm := newTestModule(t)

	author := uuid.New()
	botPerson := uuid.New()
	authorDiscord := int64(300)

	fm.bot.EXPECT().BotUser().Return(&discordgo.User{ID: "1", Username: "kmibot"})

	fm.react.EXPECT().React("general", "msg-1", "⛴️").Return(nil)
	fm.react.EXPECT().React("general", "msg-1", "🚂").Return(nil)

	fm.people.EXPECT().PersonForDiscordID(mock.Anything, int64(300), "carol").
		Return(&domain.Person{ID: author, DisplayName: "carol", DiscordID: &authorDiscord}, nil)
	fm.people.EXPECT().PersonForDiscordID(mock.Anything, int64(1), "kmibot").
		Return(&domain.Person{ID: botPerson, DisplayName: "kmibot"}, nil)

	fm.court.EXPECT().CreateAccusation(mock.Anything, botPerson, author, "Ferry is my favourite boat").
		Return(&domain.Accusation{ID: uuid.New()}, nil)
	fm.msg.EXPECT().SendComplex("ferry-channel", mock.Anything).
		Return(&discordgo.Message{ID: "trial-msg"}, nil)

	m.OnMessage(context.Background(), guildMessage("300", "Ferry is my favourite boat"))

	time.Sleep(50 * time.Millisecond) // goroutine reacts
}

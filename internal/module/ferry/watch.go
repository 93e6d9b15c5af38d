package ferry

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"
)

// OnMessage watches the guild for messages opening with the banned word and
// prosecutes them on behalf of the bot.
func (m *Module) OnMessage(ctx context.Context, msg *discordgo.MessageCreate) {
	bot := m.bot.BotUser()
	if bot == nil || msg.Author == nil || msg.Author.ID == bot.ID {
		return
	}
	if !m.bannedWord.MatchString(msg.Content) {
		return
	}

	m.log.Info("banned word spotted",
		logger.String("author", msg.Author.Username),
		logger.String("channel", msg.ChannelID),
	)

	for _, emoji := range m.cfg.Ferry.EmojiReacts {
		go func(emoji string) {
			if err := m.react.React(msg.ChannelID, msg.ID, emoji); err != nil {
				m.log.Error("failed to react", logger.String("error", err.Error()))
			}
		}(emoji)
	}

	m.publishAccusation(ctx,
		accusedParty{id: msg.Author.ID, displayName: authorDisplayName(msg)},
		accusedParty{id: bot.ID, displayName: bot.Username},
		msg.Content,
	)
}

func authorDisplayName(msg *discordgo.MessageCreate) string {
	if msg.Member != nil && msg.Member.Nick != "" {
		return msg.Member.Nick
	}
	if msg.Author.GlobalName != "" {
		return msg.Author.GlobalName
	}
	return msg.Author.Username
}

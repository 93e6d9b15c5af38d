// Package ferry handles rule-violation accusations and their social
// ratification: the accuse command, the banned-word watcher, the ratify
// button, the scoreboard and the FACT command.
package ferry

import (
	"context"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/config"
	"github.com/sown/kmibot/internal/module"
	"github.com/sown/kmibot/internal/module/ports"
)

const (
	ratifyPrefix = "ferry:ratify:"
	accusePrefix = "ferry:accuse:"

	contextMenuName = "Accuse of Ferrying"
)

type Module struct {
	cfg      *config.Config
	log      logger.Logger
	identity ports.IdentityAPI
	people   ports.PeopleAPI
	court    ports.CourtAPI
	msg      ports.Messenger
	resp     ports.Responder
	react    ports.Reactor
	members  ports.MemberDirectory
	bot      ports.BotIdentity

	bannedWord *regexp.Regexp
}

func New(
	cfg *config.Config,
	log logger.Logger,
	identity ports.IdentityAPI,
	people ports.PeopleAPI,
	court ports.CourtAPI,
	msg ports.Messenger,
	resp ports.Responder,
	react ports.Reactor,
	members ports.MemberDirectory,
	bot ports.BotIdentity,
) *Module {
	// The original rule only fires on messages that open with the banned
	// word, so the pattern is anchored.
	pattern := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(cfg.Ferry.BannedWord) + `\b`)

	return &Module{
		cfg:        cfg,
		log:        log,
		identity:   identity,
		people:     people,
		court:      court,
		msg:        msg,
		resp:       resp,
		react:      react,
		members:    members,
		bot:        bot,
		bannedWord: pattern,
	}
}

func (m *Module) Name() string { return "ferry" }

func (m *Module) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ferry",
			Description: "Interact with ferries.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "accuse",
					Description: "Accuse somebody of ferrying.",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "member",
							Description: "The criminal you are accusing.",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "scoreboard",
					Description: "Get the current scoreboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "fact",
					Description: "Get a FACT",
				},
			},
		},
		{
			Name: contextMenuName,
			Type: discordgo.UserApplicationCommand,
		},
	}
}

// OnReady verifies the ferry service credentials once the session is up.
func (m *Module) OnReady(ctx context.Context) {
	user, err := m.identity.CurrentUser(ctx)
	if err != nil {
		m.log.Warn("failed to authenticate to the ferry api", logger.String("error", err.Error()))
		return
	}
	m.log.Info("authenticated to ferry api", logger.String("username", user.Username))
}

func (m *Module) HandleInteraction(ctx context.Context, ic *discordgo.InteractionCreate) bool {
	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		data := ic.ApplicationCommandData()
		switch data.Name {
		case contextMenuName:
			m.handleAccuseTarget(ic, data.TargetID)
			return true
		case "ferry":
			if len(data.Options) == 0 {
				return false
			}
			sub := data.Options[0]
			m.log.Info("ferry command invoked",
				logger.String("subcommand", sub.Name),
				logger.String("user", module.InteractionUser(ic).ID),
			)
			switch sub.Name {
			case "accuse":
				m.handleAccuse(ic, sub.Options)
			case "scoreboard":
				m.handleScoreboard(ctx, ic)
			case "fact":
				m.handleFact(ctx, ic)
			default:
				return false
			}
			return true
		}
		return false

	case discordgo.InteractionMessageComponent:
		data := ic.MessageComponentData()
		if id, ok := strings.CutPrefix(data.CustomID, ratifyPrefix); ok {
			m.handleRatify(ctx, ic, id)
			return true
		}
		return false

	case discordgo.InteractionModalSubmit:
		data := ic.ModalSubmitData()
		if suspectID, ok := strings.CutPrefix(data.CustomID, accusePrefix); ok {
			m.handleAccuseSubmit(ctx, ic, suspectID, data)
			return true
		}
		return false
	}
	return false
}

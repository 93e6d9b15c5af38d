// Package pub coordinates the recurring pub night: scheduling it, announcing
// it, mirroring attendance, and handling table and booking assignment.
package pub

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/config"
	"github.com/sown/kmibot/internal/module"
	"github.com/sown/kmibot/internal/module/ports"
)

const selectPrefix = "pub:select:"

const selectionTimeout = 2 * time.Minute

type Module struct {
	cfg     *config.Config
	log     logger.Logger
	people  ports.PeopleAPI
	pubs    ports.PubAPI
	msg     ports.Messenger
	events  ports.EventManager
	resp    ports.Responder
	members ports.MemberDirectory

	selections *selections
	clock      func() time.Time
}

func New(
	cfg *config.Config,
	log logger.Logger,
	people ports.PeopleAPI,
	pubs ports.PubAPI,
	msg ports.Messenger,
	events ports.EventManager,
	resp ports.Responder,
	members ports.MemberDirectory,
) *Module {
	return &Module{
		cfg:        cfg,
		log:        log,
		people:     people,
		pubs:       pubs,
		msg:        msg,
		events:     events,
		resp:       resp,
		members:    members,
		selections: newSelections(),
		clock:      time.Now,
	}
}

func (m *Module) Name() string { return "pub" }

func (m *Module) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "pub",
			Description: "Manage the pub event",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "next",
					Description: "Select the pub for next week.",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "now",
					Description: "Announce a spontaneous pub event.",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "info",
					Description: "Get information about the upcoming pub.",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "change",
					Description: "Change the venue or start time for the upcoming pub.",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "start",
							Description: "The new start time (YYYY-MM-DD HH:MM)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "attendees",
					Description: "List who is coming to the upcoming pub.",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "table",
					Description: "Record the table we are sitting at.",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "number",
							Description: "The table number",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "book",
					Description: "Book a table for the upcoming pub.",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "table_size",
							Description: "How many people the table should seat",
							Required:    true,
						},
					},
				},
			},
		},
	}
}

func (m *Module) HandleInteraction(ctx context.Context, ic *discordgo.InteractionCreate) bool {
	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		data := ic.ApplicationCommandData()
		if data.Name != "pub" || len(data.Options) == 0 {
			return false
		}
		sub := data.Options[0]
		m.log.Info("pub command invoked",
			logger.String("subcommand", sub.Name),
			logger.String("user", module.InteractionUser(ic).ID),
		)
		switch sub.Name {
		case "next":
			m.handleNext(ctx, ic)
		case "now":
			m.handleNow(ctx, ic)
		case "info":
			m.handleInfo(ctx, ic)
		case "change":
			m.handleChange(ctx, ic, sub.Options)
		case "attendees":
			m.handleAttendees(ctx, ic)
		case "table":
			m.handleTable(ctx, ic, sub.Options)
		case "book":
			m.handleBook(ctx, ic, sub.Options)
		default:
			return false
		}
		return true

	case discordgo.InteractionMessageComponent:
		data := ic.MessageComponentData()
		if !strings.HasPrefix(data.CustomID, selectPrefix) {
			return false
		}
		m.handleSelection(ic, data)
		return true
	}
	return false
}

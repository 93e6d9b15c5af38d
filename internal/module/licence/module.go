// Package licence manages amateur-radio licence roles: it creates the
// configured roles on startup and lets members inspect or change their own.
package licence

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/config"
	"github.com/sown/kmibot/internal/module"
	"github.com/sown/kmibot/internal/module/ports"
)

const selectID = "licence:select"

type Module struct {
	cfg   *config.Config
	log   logger.Logger
	resp  ports.Responder
	roles ports.RoleManager
}

func New(cfg *config.Config, log logger.Logger, resp ports.Responder, roles ports.RoleManager) *Module {
	return &Module{cfg: cfg, log: log, resp: resp, roles: roles}
}

func (m *Module) Name() string { return "licence" }

func (m *Module) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "licence",
			Description: "Manage your HAM radio licence",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "info",
					Description: "Get information about your HAM radio licence.",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Set your HAM radio licence.",
				},
			},
		},
	}
}

// OnReady creates any configured licence role that is missing from the
// guild.
func (m *Module) OnReady(ctx context.Context) {
	existing, err := m.roles.Roles()
	if err != nil {
		m.log.Error("failed to list guild roles", logger.String("error", err.Error()))
		return
	}
	byName := make(map[string]*discordgo.Role, len(existing))
	for _, role := range existing {
		byName[role.Name] = role
	}

	for _, lt := range m.cfg.Licence.Types {
		if lt.Role == nil {
			continue
		}
		if _, ok := byName[lt.Role.Name]; ok {
			continue
		}
		m.log.Info("creating licence role", logger.String("role", lt.Role.Name))
		colour := lt.Role.Colour
		_, err := m.roles.CreateRole(&discordgo.RoleParams{
			Name:  lt.Role.Name,
			Color: &colour,
		})
		if err != nil {
			m.log.Error("failed to create licence role",
				logger.String("role", lt.Role.Name),
				logger.String("error", err.Error()),
			)
		}
	}
}

func (m *Module) HandleInteraction(ctx context.Context, ic *discordgo.InteractionCreate) bool {
	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		data := ic.ApplicationCommandData()
		if data.Name != "licence" || len(data.Options) == 0 {
			return false
		}
		sub := data.Options[0]
		m.log.Info("licence command invoked",
			logger.String("subcommand", sub.Name),
			logger.String("user", module.InteractionUser(ic).ID),
		)
		switch sub.Name {
		case "info":
			m.handleInfo(ic)
		case "set":
			m.handleSet(ic)
		default:
			return false
		}
		return true

	case discordgo.InteractionMessageComponent:
		data := ic.MessageComponentData()
		if data.CustomID != selectID {
			return false
		}
		m.handleSelect(ic, data)
		return true
	}
	return false
}

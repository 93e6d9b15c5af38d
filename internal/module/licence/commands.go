package licence

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/config"
)

// memberLicence matches the member's roles against the configured licence
// types. Roles are compared by name; licence types without a role never
// match.
func (m *Module) memberLicence(member *discordgo.Member) (*config.LicenceType, error) {
	guildRoles, err := m.roles.Roles()
	if err != nil {
		return nil, fmt.Errorf("list guild roles: %w", err)
	}
	nameByID := make(map[string]string, len(guildRoles))
	for _, role := range guildRoles {
		nameByID[role.ID] = role.Name
	}

	held := make(map[string]bool, len(member.Roles))
	for _, roleID := range member.Roles {
		held[nameByID[roleID]] = true
	}

	for i, lt := range m.cfg.Licence.Types {
		if lt.Role != nil && held[lt.Role.Name] {
			return &m.cfg.Licence.Types[i], nil
		}
	}
	return nil, nil
}

func (m *Module) handleInfo(ic *discordgo.InteractionCreate) {
	if ic.Member == nil {
		return
	}

	licence, err := m.memberLicence(ic.Member)
	if err != nil {
		m.log.Error("failed to determine licence", logger.String("error", err.Error()))
		m.apologise(ic)
		return
	}

	if licence == nil {
		m.respondEphemeral(ic, "You do not have a HAM Radio Licence set.\nUse /licence set to set it.")
		return
	}
	m.respondEphemeral(ic, fmt.Sprintf(
		"You have a %s %s %s licence.\nIf this is wrong, you can change it using /licence set",
		licence.Emoji, licence.Name, licence.Emoji,
	))
}

func (m *Module) handleSet(ic *discordgo.InteractionCreate) {
	if ic.Member == nil {
		return
	}

	options := make([]discordgo.SelectMenuOption, 0, len(m.cfg.Licence.Types))
	for _, lt := range m.cfg.Licence.Types {
		opt := discordgo.SelectMenuOption{
			Label: lt.Name,
			Value: lt.Name,
		}
		if lt.Emoji != "" {
			opt.Emoji = &discordgo.ComponentEmoji{Name: lt.Emoji}
		}
		options = append(options, opt)
	}

	err := m.resp.Respond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Please select your HAM Radio Licence",
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    selectID,
							Placeholder: "Select your HAM Radio Licence...",
							Options:     options,
						},
					},
				},
			},
		},
	})
	if err != nil {
		m.log.Error("failed to send licence selector", logger.String("error", err.Error()))
	}
}

// handleSelect applies the chosen licence: the matching role is granted and
// every other configured licence role is removed.
func (m *Module) handleSelect(ic *discordgo.InteractionCreate, data discordgo.MessageComponentInteractionData) {
	if ic.Member == nil || len(data.Values) == 0 {
		return
	}

	var chosen *config.LicenceType
	for i, lt := range m.cfg.Licence.Types {
		if lt.Name == data.Values[0] {
			chosen = &m.cfg.Licence.Types[i]
			break
		}
	}
	if chosen == nil {
		m.respondUpdate(ic, "That licence is not available.")
		return
	}

	guildRoles, err := m.roles.Roles()
	if err != nil {
		m.log.Error("failed to list guild roles", logger.String("error", err.Error()))
		m.respondUpdate(ic, "Something went wrong, sorry.")
		return
	}
	idByName := make(map[string]string, len(guildRoles))
	for _, role := range guildRoles {
		idByName[role.Name] = role.ID
	}

	userID := ic.Member.User.ID
	for _, lt := range m.cfg.Licence.Types {
		if lt.Role == nil || lt.Name == chosen.Name {
			continue
		}
		roleID, ok := idByName[lt.Role.Name]
		if !ok {
			continue
		}
		if err := m.roles.RemoveMemberRole(userID, roleID); err != nil {
			m.log.Error("failed to remove licence role",
				logger.String("role", lt.Role.Name),
				logger.String("error", err.Error()),
			)
		}
	}

	if chosen.Role != nil {
		roleID, ok := idByName[chosen.Role.Name]
		if !ok {
			m.log.Error("licence role missing from guild", logger.String("role", chosen.Role.Name))
			m.respondUpdate(ic, "Something went wrong, sorry.")
			return
		}
		if err := m.roles.AddMemberRole(userID, roleID); err != nil {
			m.log.Error("failed to grant licence role",
				logger.String("role", chosen.Role.Name),
				logger.String("error", err.Error()),
			)
			m.respondUpdate(ic, "Something went wrong, sorry.")
			return
		}
	}

	m.respondUpdate(ic, fmt.Sprintf("%s %s has been selected", chosen.Emoji, chosen.Name))
}

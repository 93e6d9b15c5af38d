package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// GuildSession adapts a discordgo session to the narrow port interfaces the
// modules consume, with the guild id baked in. One bot serves one guild.
type GuildSession struct {
	session *discordgo.Session
	guildID string
}

func NewGuildSession(session *discordgo.Session, guildID string) *GuildSession {
	return &GuildSession{session: session, guildID: guildID}
}

func (g *GuildSession) Send(channelID, content string) error {
	_, err := g.session.ChannelMessageSend(channelID, content)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func (g *GuildSession) SendComplex(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	sent, err := g.session.ChannelMessageSendComplex(channelID, msg)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}
	return sent, nil
}

func (g *GuildSession) SendDM(userID, content string) error {
	channel, err := g.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("open dm channel: %w", err)
	}
	if _, err := g.session.ChannelMessageSend(channel.ID, content); err != nil {
		return fmt.Errorf("send dm: %w", err)
	}
	return nil
}

func (g *GuildSession) ScheduledEvents() ([]*discordgo.GuildScheduledEvent, error) {
	events, err := g.session.GuildScheduledEvents(g.guildID, false)
	if err != nil {
		return nil, fmt.Errorf("list scheduled events: %w", err)
	}
	return events, nil
}

func (g *GuildSession) CreateScheduledEvent(params *discordgo.GuildScheduledEventParams) (*discordgo.GuildScheduledEvent, error) {
	ev, err := g.session.GuildScheduledEventCreate(g.guildID, params)
	if err != nil {
		return nil, fmt.Errorf("create scheduled event: %w", err)
	}
	return ev, nil
}

func (g *GuildSession) EditScheduledEvent(eventID string, params *discordgo.GuildScheduledEventParams) (*discordgo.GuildScheduledEvent, error) {
	ev, err := g.session.GuildScheduledEventEdit(g.guildID, eventID, params)
	if err != nil {
		return nil, fmt.Errorf("edit scheduled event: %w", err)
	}
	return ev, nil
}

func (g *GuildSession) Respond(i *discordgo.Interaction, r *discordgo.InteractionResponse) error {
	if err := g.session.InteractionRespond(i, r); err != nil {
		return fmt.Errorf("respond to interaction: %w", err)
	}
	return nil
}

func (g *GuildSession) FollowUp(i *discordgo.Interaction, content string, ephemeral bool) error {
	params := &discordgo.WebhookParams{Content: content}
	if ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}
	if _, err := g.session.FollowupMessageCreate(i, true, params); err != nil {
		return fmt.Errorf("send follow-up: %w", err)
	}
	return nil
}

func (g *GuildSession) EditResponse(i *discordgo.Interaction, content string, clearComponents bool) error {
	edit := &discordgo.WebhookEdit{Content: &content}
	if clearComponents {
		components := []discordgo.MessageComponent{}
		edit.Components = &components
	}
	if _, err := g.session.InteractionResponseEdit(i, edit); err != nil {
		return fmt.Errorf("edit interaction response: %w", err)
	}
	return nil
}

func (g *GuildSession) RemoveComponents(channelID, messageID string) error {
	edit := discordgo.NewMessageEdit(channelID, messageID)
	components := []discordgo.MessageComponent{}
	edit.Components = &components
	if _, err := g.session.ChannelMessageEditComplex(edit); err != nil {
		return fmt.Errorf("remove message components: %w", err)
	}
	return nil
}

func (g *GuildSession) React(channelID, messageID, emoji string) error {
	if err := g.session.MessageReactionAdd(channelID, messageID, emoji); err != nil {
		return fmt.Errorf("add reaction: %w", err)
	}
	return nil
}

func (g *GuildSession) Roles() ([]*discordgo.Role, error) {
	roles, err := g.session.GuildRoles(g.guildID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (g *GuildSession) CreateRole(params *discordgo.RoleParams) (*discordgo.Role, error) {
	role, err := g.session.GuildRoleCreate(g.guildID, params)
	if err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

func (g *GuildSession) AddMemberRole(userID, roleID string) error {
	if err := g.session.GuildMemberRoleAdd(g.guildID, userID, roleID); err != nil {
		return fmt.Errorf("add member role: %w", err)
	}
	return nil
}

func (g *GuildSession) RemoveMemberRole(userID, roleID string) error {
	if err := g.session.GuildMemberRoleRemove(g.guildID, userID, roleID); err != nil {
		return fmt.Errorf("remove member role: %w", err)
	}
	return nil
}

func (g *GuildSession) Member(userID string) (*discordgo.Member, error) {
	member, err := g.session.GuildMember(g.guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch member: %w", err)
	}
	return member, nil
}

func (g *GuildSession) BotUser() *discordgo.User {
	if g.session.State == nil {
		return nil
	}
	return g.session.State.User
}

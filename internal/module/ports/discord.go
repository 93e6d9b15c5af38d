package ports

import "github.com/bwmarrin/discordgo"

// Messenger posts to channels and direct messages in the connected guild.
type Messenger interface {
	Send(channelID, content string) error
	SendComplex(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error)
	SendDM(userID, content string) error
}

// EventManager reads and mutates the guild's scheduled events.
type EventManager interface {
	ScheduledEvents() ([]*discordgo.GuildScheduledEvent, error)
	CreateScheduledEvent(params *discordgo.GuildScheduledEventParams) (*discordgo.GuildScheduledEvent, error)
	EditScheduledEvent(eventID string, params *discordgo.GuildScheduledEventParams) (*discordgo.GuildScheduledEvent, error)
}

// Responder answers interactions (slash commands, buttons, selects, modals).
type Responder interface {
	Respond(i *discordgo.Interaction, r *discordgo.InteractionResponse) error
	FollowUp(i *discordgo.Interaction, content string, ephemeral bool) error
	EditResponse(i *discordgo.Interaction, content string, clearComponents bool) error
	RemoveComponents(channelID, messageID string) error
}

// Reactor adds emoji reactions to messages.
type Reactor interface {
	React(channelID, messageID, emoji string) error
}

// RoleManager reads and mutates guild roles and member role assignments.
type RoleManager interface {
	Roles() ([]*discordgo.Role, error)
	CreateRole(params *discordgo.RoleParams) (*discordgo.Role, error)
	AddMemberRole(userID, roleID string) error
	RemoveMemberRole(userID, roleID string) error
}

// MemberDirectory resolves guild members.
type MemberDirectory interface {
	Member(userID string) (*discordgo.Member, error)
}

// BotIdentity exposes the bot's own gateway user, available once the
// session is ready.
type BotIdentity interface {
	BotUser() *discordgo.User
}

// Package module defines the plug-in surface the bot dispatches Discord
// callbacks to. The set of modules is closed and wired statically in
// internal/app.
package module

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Module is the mandatory surface of a bot module. Lifecycle hooks beyond
// these are optional: the dispatcher type-asserts the *Hook interfaces below
// and skips modules that do not implement them.
type Module interface {
	Name() string

	// Commands returns the application commands to register for the guild.
	Commands() []*discordgo.ApplicationCommand

	// HandleInteraction processes a command invocation, component click or
	// modal submit. It reports whether the interaction belonged to this
	// module so the dispatcher can stop routing.
	HandleInteraction(ctx context.Context, ic *discordgo.InteractionCreate) bool
}

// ReadyHook runs once the gateway session is ready.
type ReadyHook interface {
	OnReady(ctx context.Context)
}

// ScheduledEventUpdateHook observes guild scheduled event status changes.
// The dispatcher supplies the last-known status as old; discordgo only
// delivers the new state.
type ScheduledEventUpdateHook interface {
	OnScheduledEventUpdate(ctx context.Context, old discordgo.GuildScheduledEventStatus, ev *discordgo.GuildScheduledEvent)
}

// ScheduledEventUserHook observes members joining or leaving a scheduled
// event.
type ScheduledEventUserHook interface {
	OnScheduledEventUserAdd(ctx context.Context, scheduledEventID, userID string)
	OnScheduledEventUserRemove(ctx context.Context, scheduledEventID, userID string)
}

// MessageHook observes guild messages.
type MessageHook interface {
	OnMessage(ctx context.Context, m *discordgo.MessageCreate)
}

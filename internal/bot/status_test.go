package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestStatusTracker_DefaultsToScheduled(t *testing.T) {
	tracker := newStatusTracker()

	// An event first seen mid-life reports Scheduled as its previous state.
	old := tracker.swap("ev-1", discordgo.GuildScheduledEventStatusActive)
	assert.Equal(t, discordgo.GuildScheduledEventStatusScheduled, old)
}

func TestStatusTracker_RemembersTransitions(t *testing.T) {
	tracker := newStatusTracker()

	tracker.record("ev-1", discordgo.GuildScheduledEventStatusScheduled)

	old := tracker.swap("ev-1", discordgo.GuildScheduledEventStatusActive)
	assert.Equal(t, discordgo.GuildScheduledEventStatusScheduled, old)

	old = tracker.swap("ev-1", discordgo.GuildScheduledEventStatusActive)
	assert.Equal(t, discordgo.GuildScheduledEventStatusActive, old)

	old = tracker.swap("ev-1", discordgo.GuildScheduledEventStatusCompleted)
	assert.Equal(t, discordgo.GuildScheduledEventStatusActive, old)
}

func TestStatusTracker_Forget(t *testing.T) {
	tracker := newStatusTracker()

	tracker.record("ev-1", discordgo.GuildScheduledEventStatusCompleted)
	tracker.forget("ev-1")

	old := tracker.swap("ev-1", discordgo.GuildScheduledEventStatusActive)
	assert.Equal(t, discordgo.GuildScheduledEventStatusScheduled, old)
}

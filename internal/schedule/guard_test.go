package schedule

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestIsPubEvent(t *testing.T) {
	assert.True(t, IsPubEvent(&discordgo.GuildScheduledEvent{Name: "Pub"}))
	assert.True(t, IsPubEvent(&discordgo.GuildScheduledEvent{Name: "🍺 Spontaneous Pub 🍺"}))
	assert.False(t, IsPubEvent(&discordgo.GuildScheduledEvent{Name: "Board games"}))
}

func TestFindAt(t *testing.T) {
	slot := time.Date(2026, time.September, 4, 18, 0, 0, 0, time.UTC)

	events := []*discordgo.GuildScheduledEvent{
		{ID: "other", Name: "Board games", ScheduledStartTime: slot},
		{ID: "early", Name: "Pub", ScheduledStartTime: slot.Add(-7 * 24 * time.Hour)},
		{ID: "match", Name: "Pub", ScheduledStartTime: slot},
	}

	got := FindAt(events, slot)
	assert.NotNil(t, got)
	assert.Equal(t, "match", got.ID)

	assert.Nil(t, FindAt(events, slot.Add(time.Minute)))
}

func TestFindUpcoming(t *testing.T) {
	base := time.Date(2026, time.September, 4, 18, 0, 0, 0, time.UTC)

	events := []*discordgo.GuildScheduledEvent{
		{ID: "done", Name: "Pub", ScheduledStartTime: base.Add(-14 * 24 * time.Hour), Status: discordgo.GuildScheduledEventStatusCompleted},
		{ID: "later", Name: "Pub", ScheduledStartTime: base.Add(7 * 24 * time.Hour), Status: discordgo.GuildScheduledEventStatusScheduled},
		{ID: "next", Name: "Pub", ScheduledStartTime: base, Status: discordgo.GuildScheduledEventStatusScheduled},
		{ID: "other", Name: "Quiz night", ScheduledStartTime: base.Add(-time.Hour), Status: discordgo.GuildScheduledEventStatusScheduled},
	}

	got := FindUpcoming(events)
	assert.NotNil(t, got)
	assert.Equal(t, "next", got.ID)
}

func TestFindUpcoming_ActiveWins(t *testing.T) {
	base := time.Date(2026, time.September, 4, 18, 0, 0, 0, time.UTC)

	// A pub that is underway sorts before next week's.
	events := []*discordgo.GuildScheduledEvent{
		{ID: "future", Name: "Pub", ScheduledStartTime: base.Add(7 * 24 * time.Hour), Status: discordgo.GuildScheduledEventStatusScheduled},
		{ID: "active", Name: "Pub", ScheduledStartTime: base, Status: discordgo.GuildScheduledEventStatusActive},
	}

	got := FindUpcoming(events)
	assert.NotNil(t, got)
	assert.Equal(t, "active", got.ID)
}

func TestFindUpcoming_Empty(t *testing.T) {
	assert.Nil(t, FindUpcoming(nil))
	assert.Nil(t, FindUpcoming([]*discordgo.GuildScheduledEvent{
		{Name: "Pub", Status: discordgo.GuildScheduledEventStatusCompleted},
	}))
}

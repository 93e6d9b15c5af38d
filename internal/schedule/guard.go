package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// nameMarker tags a Discord scheduled event as a pub event. The marker is a
// substring match so decorated names ("🍺 Spontaneous Pub 🍺") qualify.
const nameMarker = "Pub"

// IsPubEvent reports whether the scheduled event is one of ours.
func IsPubEvent(ev *discordgo.GuildScheduledEvent) bool {
	return strings.Contains(ev.Name, nameMarker)
}

// FindAt returns the pub event starting exactly at start, or nil. Used to
// dedup the recurring /pub next command against the computed occurrence.
func FindAt(events []*discordgo.GuildScheduledEvent, start time.Time) *discordgo.GuildScheduledEvent {
	for _, ev := range events {
		if IsPubEvent(ev) && ev.ScheduledStartTime.Equal(start) {
			return ev
		}
	}
	return nil
}

// FindUpcoming returns the earliest pub event that is still scheduled or
// currently active, ignoring the exact slot. Callers wanting "the current or
// next pub" (table assignment, bookings, attendee listing) use this mode.
// Absence is a normal outcome and returns nil.
func FindUpcoming(events []*discordgo.GuildScheduledEvent) *discordgo.GuildScheduledEvent {
	candidates := make([]*discordgo.GuildScheduledEvent, 0, len(events))
	for _, ev := range events {
		if !IsPubEvent(ev) {
			continue
		}
		switch ev.Status {
		case discordgo.GuildScheduledEventStatusScheduled, discordgo.GuildScheduledEventStatusActive:
			candidates = append(candidates, ev)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ScheduledStartTime.Before(candidates[j].ScheduledStartTime)
	})
	return candidates[0]
}

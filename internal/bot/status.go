package bot

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// statusTracker remembers the last seen status of each guild scheduled
// event. The gateway only delivers the new state on updates, so transition
// handlers need this cache to get the previous one. Events first seen
// mid-life default to Scheduled.
type statusTracker struct {
	mu       sync.Mutex
	statuses map[string]discordgo.GuildScheduledEventStatus
}

func newStatusTracker() *statusTracker {
	return &statusTracker{statuses: make(map[string]discordgo.GuildScheduledEventStatus)}
}

// swap records the new status and returns the previous one.
func (t *statusTracker) swap(eventID string, status discordgo.GuildScheduledEventStatus) discordgo.GuildScheduledEventStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	old, ok := t.statuses[eventID]
	if !ok {
		old = discordgo.GuildScheduledEventStatusScheduled
	}
	t.statuses[eventID] = status
	return old
}

func (t *statusTracker) record(eventID string, status discordgo.GuildScheduledEventStatus) {
	t.mu.Lock()
	t.statuses[eventID] = status
	t.mu.Unlock()
}

func (t *statusTracker) forget(eventID string) {
	t.mu.Lock()
	delete(t.statuses, eventID)
	t.mu.Unlock()
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pub is immutable venue reference data owned by the ferry service.
type Pub struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Emoji   string    `json:"emoji"`
	MenuURL *string   `json:"menu_url"`
	MapURL  string    `json:"map_url"`
}

// PubLink is the compact reference shape for a Pub.
type PubLink struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PubTable is the table assigned for a pub event.
type PubTable struct {
	ID     uuid.UUID `json:"id"`
	Pub    PubLink   `json:"pub"`
	Number int       `json:"number"`
}

// Booking is a restaurant-style table booking. The service enforces at most
// one per pub event; a second create attempt conflicts rather than
// overwriting.
type Booking struct {
	ID        uuid.UUID `json:"id"`
	TableSize int       `json:"table_size"`
	CreatedBy uuid.UUID `json:"created_by"`
}

// PubEvent mirrors one occurrence of the recurring pub night. The Discord
// scheduled event referenced by DiscordID is owned by Discord; the rest is
// owned by the ferry service.
type PubEvent struct {
	ID            uuid.UUID    `json:"id"`
	Timestamp     time.Time    `json:"timestamp"`
	PubID         uuid.UUID    `json:"pub"`
	DiscordID     *int64       `json:"discord_id"`
	Table         *PubTable    `json:"table"`
	Booking       *Booking     `json:"booking"`
	Attendees     []PersonLink `json:"attendees"`
	Announcements []string     `json:"announcements"`
}

// HasAttendee reports whether the person is recorded as attending.
func (e *PubEvent) HasAttendee(personID uuid.UUID) bool {
	for _, a := range e.Attendees {
		if a.ID == personID {
			return true
		}
	}
	return false
}

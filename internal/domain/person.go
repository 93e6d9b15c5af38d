package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Person is the ferry service's record of a club member. People are created
// lazily the first time a Discord member is referenced; at most one Person
// exists per Discord id.
type Person struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	DiscordID   *int64    `json:"discord_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Mention renders the person for a Discord message, preferring a real
// mention when their Discord id is known.
func (p Person) Mention() string {
	if p.DiscordID != nil {
		return fmt.Sprintf("<@%d>", *p.DiscordID)
	}
	return p.DisplayName
}

// PersonWithScore is the leaderboard shape of a Person.
type PersonWithScore struct {
	Person
	CurrentScore  float64 `json:"current_score"`
	FerrySequence string  `json:"ferry_sequence"`
}

// PersonLink is the compact reference shape embedded in other resources.
// Older service versions omit discord_id, so it stays optional.
type PersonLink struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	DiscordID   *int64    `json:"discord_id,omitempty"`
}

func (p PersonLink) Mention() string {
	if p.DiscordID != nil {
		return fmt.Sprintf("<@%d>", *p.DiscordID)
	}
	return p.DisplayName
}

// User is the ferry service account the bot authenticates as.
type User struct {
	Username string `json:"username"`
}

// Fact is an occasionally-available link token for a person.
type Fact struct {
	LinkToken *string `json:"link_token"`
}

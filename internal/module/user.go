package module

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// InteractionUser returns the invoking user. Guild interactions carry a
// Member, DM interactions a bare User.
func InteractionUser(ic *discordgo.InteractionCreate) *discordgo.User {
	if ic.Member != nil {
		return ic.Member.User
	}
	return ic.User
}

// ParseSnowflake parses a Discord id into the numeric form the ferry
// service stores.
func ParseSnowflake(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse discord id %q: %w", id, err)
	}
	return n, nil
}

// DisplayName picks the most human name available for a user.
func DisplayName(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// MemberDisplayName prefers the guild nickname over the account name.
func MemberDisplayName(m *discordgo.Member) string {
	if m.Nick != "" {
		return m.Nick
	}
	return DisplayName(m.User)
}

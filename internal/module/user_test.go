package module

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnowflake(t *testing.T) {
	n, err := ParseSnowflake("1234567890")
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890), n)

	_, err = ParseSnowflake("not-a-snowflake")
	assert.Error(t, err)
}

func TestInteractionUser(t *testing.T) {
	guildUser := &discordgo.User{ID: "100"}
	dmUser := &discordgo.User{ID: "200"}

	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: guildUser},
	}}
	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: dmUser,
	}}

	assert.Equal(t, guildUser, InteractionUser(guild))
	assert.Equal(t, dmUser, InteractionUser(dm))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Alice", DisplayName(&discordgo.User{Username: "alice99", GlobalName: "Alice"}))
	assert.Equal(t, "alice99", DisplayName(&discordgo.User{Username: "alice99"}))
}

func TestMemberDisplayName(t *testing.T) {
	member := &discordgo.Member{
		Nick: "Al",
		User: &discordgo.User{Username: "alice99", GlobalName: "Alice"},
	}
	assert.Equal(t, "Al", MemberDisplayName(member))

	member.Nick = ""
	assert.Equal(t, "Alice", MemberDisplayName(member))
}

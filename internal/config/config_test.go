package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func validConfig() *Config {
	return &Config{
		Timezone: "Europe/London",
		Logger:   LoggerConfig{Engine: "slog", Level: "info"},
		Server:   ServerConfig{Addr: ":8080", Mode: "release", ReadTimeout: 10 * time.Second, WriteTimeout: 10 * time.Second},
		Discord:  DiscordConfig{Token: "token", GuildID: "guild"},
		Ferry: FerryConfig{
			APIURL:     "https://ferry.example.com/api/",
			APIKey:     "key",
			ChannelID:  "chan",
			BannedWord: "ferry",
		},
		Pub: PubConfig{
			ChannelID:     "chan",
			Weekday:       4,
			Hour:          18,
			Minute:        0,
			EventDuration: 3 * time.Hour,
		},
	}
}

func TestValidate_ResolvesLocation(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	loc := cfg.Location()
	require.NotNil(t, loc)
	assert.Equal(t, "Europe/London", loc.String())
}

func TestValidate_BadTimezone(t *testing.T) {
	cfg := validConfig()
	cfg.Timezone = "Atlantis/Lost"

	assert.Error(t, cfg.Validate())
}

func TestValidate_WeekdayRange(t *testing.T) {
	cfg := validConfig()
	cfg.Pub.Weekday = 7

	assert.Error(t, cfg.Validate())
}

func TestValidate_HourRange(t *testing.T) {
	cfg := validConfig()
	cfg.Pub.Hour = 24

	assert.Error(t, cfg.Validate())
}

func TestValidate_LicenceTypeNeedsName(t *testing.T) {
	cfg := validConfig()
	cfg.Licence.Types = []LicenceType{{Emoji: "📻"}}

	assert.Error(t, cfg.Validate())
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.WarnLevel, LoggerConfig{Level: "warn"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "info"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: ""}.LogLevel())
}

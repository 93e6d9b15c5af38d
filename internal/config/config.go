package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Timezone string        `yaml:"timezone" env:"TIMEZONE" env-default:"Europe/London" validate:"required"`
	Logger   LoggerConfig  `yaml:"logger"   validate:"required"`
	Server   ServerConfig  `yaml:"server"   validate:"required"`
	Discord  DiscordConfig `yaml:"discord"  validate:"required"`
	Ferry    FerryConfig   `yaml:"ferry"    validate:"required"`
	Pub      PubConfig     `yaml:"pub"      validate:"required"`
	Licence  LicenceConfig `yaml:"licence"`

	location *time.Location
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

// LogLevel converts the configured string level to a wbf logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine converts the configured string engine to a wbf logger.Engine.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

// ServerConfig configures the health/status HTTP listener.
type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	Mode         string        `yaml:"mode"          env:"SERVER_MODE"          env-default:"release" validate:"required,oneof=debug release test"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s" validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s" validate:"gt=0"`
}

type DiscordConfig struct {
	Token   string `yaml:"token"    env:"DISCORD_TOKEN" validate:"required"`
	GuildID string `yaml:"guild_id" env:"DISCORD_GUILD_ID" validate:"required"`
}

type FerryConfig struct {
	APIURL      string   `yaml:"api_url"      env:"FERRY_API_URL" validate:"required"`
	APIKey      string   `yaml:"api_key"      env:"FERRY_API_KEY" validate:"required"`
	ChannelID   string   `yaml:"channel_id"   env:"FERRY_CHANNEL_ID" validate:"required"`
	BannedWord  string   `yaml:"banned_word"  env:"FERRY_BANNED_WORD" env-default:"ferry" validate:"required"`
	EmojiReacts []string `yaml:"emoji_reacts"`
}

// PubConfig describes the recurring pub night. Weekday follows the service's
// convention: 0 is Monday, 6 is Sunday.
type PubConfig struct {
	ChannelID         string        `yaml:"channel_id" env:"PUB_CHANNEL_ID" validate:"required"`
	Description       string        `yaml:"description" env-default:"The weekly pub night."`
	Weekday           int           `yaml:"weekday" env:"PUB_WEEKDAY" validate:"min=0,max=6"`
	Hour              int           `yaml:"hour"    env:"PUB_HOUR"    validate:"min=0,max=23"`
	Minute            int           `yaml:"minute"  env:"PUB_MINUTE"  env-default:"0" validate:"min=0,max=59"`
	SupplementalEmoji string        `yaml:"supplemental_emoji" env-default:"🍺"`
	EventDuration     time.Duration `yaml:"event_duration" env-default:"3h" validate:"gt=0"`
}

type LicenceConfig struct {
	Types []LicenceType `yaml:"types"`
}

// LicenceType is one amateur-radio licence level and the Discord role that
// represents it. Role is optional: a licence without a role is informational
// only.
type LicenceType struct {
	Name  string             `yaml:"name" validate:"required"`
	Emoji string             `yaml:"emoji"`
	Role  *LicenceRoleConfig `yaml:"role"`
}

type LicenceRoleConfig struct {
	Name   string `yaml:"name" validate:"required"`
	Colour int    `yaml:"colour"`
}

// Location returns the configured timezone. Valid after Validate.
func (c *Config) Location() *time.Location {
	return c.location
}

// Validate checks the cross-field constraints cleanenv cannot express and
// resolves the timezone.
func (c *Config) Validate() error {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	c.location = loc

	if c.Pub.Weekday < 0 || c.Pub.Weekday > 6 {
		return fmt.Errorf("pub.weekday must be 0-6 (0 is Monday), got %d", c.Pub.Weekday)
	}
	if c.Pub.Hour < 0 || c.Pub.Hour > 23 {
		return fmt.Errorf("pub.hour must be 0-23, got %d", c.Pub.Hour)
	}
	if c.Pub.Minute < 0 || c.Pub.Minute > 59 {
		return fmt.Errorf("pub.minute must be 0-59, got %d", c.Pub.Minute)
	}

	for _, lt := range c.Licence.Types {
		if lt.Name == "" {
			return fmt.Errorf("licence type with empty name")
		}
	}

	return nil
}

// MustLoad loads and validates the configuration. A bad config is fatal to
// process start; nothing else is.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return &cfg
}

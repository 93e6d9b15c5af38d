// Package bot owns the Discord gateway session. It registers the modules'
// application commands, fans gateway callbacks out to the modules and keeps
// the scheduled-event status cache the lifecycle hooks depend on.
package bot

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/config"
	"github.com/sown/kmibot/internal/module"
)

type Bot struct {
	cfg     *config.Config
	log     logger.Logger
	session *discordgo.Session
	guild   *GuildSession
	modules []module.Module
	events  *statusTracker

	baseCtx context.Context
	ready   atomic.Bool
}

func New(cfg *config.Config, log logger.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMembers |
		discordgo.IntentGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentGuildScheduledEvents |
		discordgo.IntentGuildMessageReactions

	return &Bot{
		cfg:     cfg,
		log:     log,
		session: session,
		guild:   NewGuildSession(session, cfg.Discord.GuildID),
		events:  newStatusTracker(),
		baseCtx: context.Background(),
	}, nil
}

// Session returns the guild-scoped port implementation the modules are
// wired against.
func (b *Bot) Session() *GuildSession { return b.guild }

// SetModules fixes the dispatch order. Must be called before Open.
func (b *Bot) SetModules(mods ...module.Module) { b.modules = mods }

// Open connects to the gateway. ctx is the lifetime of the bot: callbacks
// dispatched to modules derive from it.
func (b *Bot) Open(ctx context.Context) error {
	b.baseCtx = ctx

	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onInteractionCreate)
	b.session.AddHandler(b.onMessageCreate)
	b.session.AddHandler(b.onScheduledEventCreate)
	b.session.AddHandler(b.onScheduledEventUpdate)
	b.session.AddHandler(b.onScheduledEventDelete)
	b.session.AddHandler(b.onScheduledEventUserAdd)
	b.session.AddHandler(b.onScheduledEventUserRemove)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway session: %w", err)
	}
	return nil
}

func (b *Bot) Close() error {
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("close gateway session: %w", err)
	}
	return nil
}

// Status is the health surface reported by the HTTP server.
type Status struct {
	Connected        bool     `json:"connected"`
	HeartbeatLatency string   `json:"heartbeat_latency"`
	Modules          []string `json:"modules"`
}

func (b *Bot) Status() Status {
	names := make([]string, 0, len(b.modules))
	for _, m := range b.modules {
		names = append(names, m.Name())
	}
	return Status{
		Connected:        b.ready.Load(),
		HeartbeatLatency: b.session.HeartbeatLatency().Round(time.Millisecond).String(),
		Modules:          names,
	}
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info("gateway session ready",
		logger.String("user", r.User.Username),
		logger.String("guild", b.cfg.Discord.GuildID),
	)

	var commands []*discordgo.ApplicationCommand
	for _, m := range b.modules {
		commands = append(commands, m.Commands()...)
	}
	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, b.cfg.Discord.GuildID, commands)
	if err != nil {
		b.log.Error("failed to register commands", logger.String("error", err.Error()))
	} else {
		b.log.Info("registered application commands", logger.Int("count", len(commands)))
	}

	b.ready.Store(true)

	for _, m := range b.modules {
		if hook, ok := m.(module.ReadyHook); ok {
			b.dispatch(m.Name(), func(ctx context.Context) { hook.OnReady(ctx) })
		}
	}
}

func (b *Bot) onInteractionCreate(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	b.dispatch("interaction", func(ctx context.Context) {
		for _, m := range b.modules {
			if m.HandleInteraction(ctx, ic) {
				return
			}
		}
		b.log.Debug("unrouted interaction", logger.Int("type", int(ic.Type)))
	})
}

func (b *Bot) onMessageCreate(_ *discordgo.Session, msg *discordgo.MessageCreate) {
	if msg.GuildID != b.cfg.Discord.GuildID {
		return
	}
	for _, m := range b.modules {
		if hook, ok := m.(module.MessageHook); ok {
			b.dispatch(m.Name(), func(ctx context.Context) { hook.OnMessage(ctx, msg) })
		}
	}
}

func (b *Bot) onScheduledEventCreate(_ *discordgo.Session, ev *discordgo.GuildScheduledEventCreate) {
	b.events.record(ev.ID, ev.Status)
}

func (b *Bot) onScheduledEventUpdate(_ *discordgo.Session, ev *discordgo.GuildScheduledEventUpdate) {
	old := b.events.swap(ev.ID, ev.Status)
	if old == ev.Status {
		return
	}
	for _, m := range b.modules {
		if hook, ok := m.(module.ScheduledEventUpdateHook); ok {
			b.dispatch(m.Name(), func(ctx context.Context) {
				hook.OnScheduledEventUpdate(ctx, old, ev.GuildScheduledEvent)
			})
		}
	}
}

func (b *Bot) onScheduledEventDelete(_ *discordgo.Session, ev *discordgo.GuildScheduledEventDelete) {
	b.events.forget(ev.ID)
}

func (b *Bot) onScheduledEventUserAdd(_ *discordgo.Session, ev *discordgo.GuildScheduledEventUserAdd) {
	for _, m := range b.modules {
		if hook, ok := m.(module.ScheduledEventUserHook); ok {
			b.dispatch(m.Name(), func(ctx context.Context) {
				hook.OnScheduledEventUserAdd(ctx, ev.GuildScheduledEventID, ev.UserID)
			})
		}
	}
}

func (b *Bot) onScheduledEventUserRemove(_ *discordgo.Session, ev *discordgo.GuildScheduledEventUserRemove) {
	for _, m := range b.modules {
		if hook, ok := m.(module.ScheduledEventUserHook); ok {
			b.dispatch(m.Name(), func(ctx context.Context) {
				hook.OnScheduledEventUserRemove(ctx, ev.GuildScheduledEventID, ev.UserID)
			})
		}
	}
}

// dispatch runs a module callback on its own goroutine so one slow handler
// cannot stall the gateway reader. Panics are contained and logged.
func (b *Bot) dispatch(name string, fn func(ctx context.Context)) {
	ctx := context.WithoutCancel(b.baseCtx)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				b.log.LogAttrs(ctx, logger.ErrorLevel, "panic in module callback",
					logger.String("module", name),
					logger.Any("error", r),
					logger.String("stack", string(debug.Stack())),
				)
			}
		}()
		fn(ctx)
	}()
}

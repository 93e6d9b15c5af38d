package pub

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/module"
	"github.com/sown/kmibot/internal/schedule"
)

const pubOverMessage = "The pub is over. You are still not allowed to say that word."

// OnScheduledEventUpdate observes pub event status transitions. Callbacks
// may be redelivered; re-announcing is acceptable, mutating remote state is
// not, so both edges are announcement-only.
func (m *Module) OnScheduledEventUpdate(ctx context.Context, old discordgo.GuildScheduledEventStatus, ev *discordgo.GuildScheduledEvent) {
	if !schedule.IsPubEvent(ev) {
		return
	}

	if old != discordgo.GuildScheduledEventStatusActive && ev.Status == discordgo.GuildScheduledEventStatusActive {
		m.log.Info("a pub event has started", logger.String("event", ev.Name))
		m.announceStarted(ctx, ev)
	}

	if old != discordgo.GuildScheduledEventStatusCompleted && ev.Status == discordgo.GuildScheduledEventStatusCompleted {
		m.log.Info("a pub event has ended", logger.String("event", ev.Name))
		m.announceEnded()
	}
}

// announceStarted resolves the venue and posts the "we are here" message.
// This is a background notification: failures are logged and the
// announcement is skipped, never retried.
func (m *Module) announceStarted(ctx context.Context, ev *discordgo.GuildScheduledEvent) {
	eventID, err := module.ParseSnowflake(ev.ID)
	if err != nil {
		m.log.Error("unparseable scheduled event id", logger.String("error", err.Error()))
		return
	}

	pubEvent, err := m.pubs.PubEventByDiscordID(ctx, eventID)
	if err != nil {
		m.log.Warn("a pub event started, but no pub event record was found",
			logger.String("event_id", ev.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	pub, err := m.pubs.Pub(ctx, pubEvent.PubID)
	if err != nil {
		m.log.Warn("a pub event started, but the pub could not be resolved",
			logger.String("pub_id", pubEvent.PubID.String()),
			logger.String("error", err.Error()),
		)
		return
	}

	content := strings.Join([]string{
		"**Pub-O-Clock**",
		fmt.Sprintf("We are at %s", m.formattedPubName(pub)),
	}, "\n")
	_, err = m.msg.SendComplex(m.cfg.Pub.ChannelID, &discordgo.MessageSend{
		Content:    content,
		Components: pubButtons(pub),
	})
	if err != nil {
		m.log.Error("failed to announce pub start", logger.String("error", err.Error()))
	}
}

func (m *Module) announceEnded() {
	if err := m.msg.Send(m.cfg.Pub.ChannelID, pubOverMessage); err != nil {
		m.log.Error("failed to announce pub end", logger.String("error", err.Error()))
	}
}

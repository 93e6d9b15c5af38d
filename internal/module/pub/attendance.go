package pub

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/domain"
	"github.com/sown/kmibot/internal/module"
)

const autoPubNotice = "You left the pub event on Discord, but you are still " +
	"marked as attending via AutoPub. If you are not coming, please also " +
	"retract your attendance there."

// OnScheduledEventUserAdd mirrors a Discord event signup into the ferry
// attendance record. Fire and forget: there is no response channel in this
// callback context, so failures are only logged. Adds are idempotent on the
// service side.
func (m *Module) OnScheduledEventUserAdd(ctx context.Context, scheduledEventID, userID string) {
	pubEvent, person, ok := m.resolveAttendance(ctx, scheduledEventID, userID)
	if !ok {
		return
	}

	if err := m.pubs.AddAttendee(ctx, pubEvent.ID, person.ID); err != nil {
		m.log.Error("failed to add attendee",
			logger.String("pub_event_id", pubEvent.ID.String()),
			logger.String("person_id", person.ID.String()),
			logger.String("error", err.Error()),
		)
		return
	}
	m.log.Info("attendee added",
		logger.String("pub_event_id", pubEvent.ID.String()),
		logger.String("person_id", person.ID.String()),
	)
}

// OnScheduledEventUserRemove retracts a signup. The remote response is
// ground truth: when the person is still listed afterwards they registered
// through AutoPub as well, and we tell them so directly.
func (m *Module) OnScheduledEventUserRemove(ctx context.Context, scheduledEventID, userID string) {
	pubEvent, person, ok := m.resolveAttendance(ctx, scheduledEventID, userID)
	if !ok {
		return
	}

	updated, err := m.pubs.RemoveAttendee(ctx, pubEvent.ID, person.ID)
	if err != nil {
		m.log.Error("failed to remove attendee",
			logger.String("pub_event_id", pubEvent.ID.String()),
			logger.String("person_id", person.ID.String()),
			logger.String("error", err.Error()),
		)
		return
	}
	m.log.Info("attendee removed",
		logger.String("pub_event_id", pubEvent.ID.String()),
		logger.String("person_id", person.ID.String()),
	)

	if updated.HasAttendee(person.ID) {
		if err := m.msg.SendDM(userID, autoPubNotice); err != nil {
			m.log.Error("failed to send AutoPub notice", logger.String("error", err.Error()))
		}
	}
}

// resolveAttendance maps the callback's ids onto the ferry records. A
// scheduled event with no mirrored pub event is not ours and is skipped
// silently.
func (m *Module) resolveAttendance(ctx context.Context, scheduledEventID, userID string) (*domain.PubEvent, *domain.Person, bool) {
	eventID, err := module.ParseSnowflake(scheduledEventID)
	if err != nil {
		m.log.Error("unparseable scheduled event id", logger.String("error", err.Error()))
		return nil, nil, false
	}

	pubEvent, err := m.pubs.PubEventByDiscordID(ctx, eventID)
	if errors.Is(err, domain.ErrNotFound) {
		m.log.Debug("scheduled event has no pub event record", logger.String("event_id", scheduledEventID))
		return nil, nil, false
	}
	if err != nil {
		m.log.Error("failed to look up pub event", logger.String("error", err.Error()))
		return nil, nil, false
	}

	member, err := m.members.Member(userID)
	if err != nil {
		m.log.Error("failed to fetch member", logger.String("user_id", userID), logger.String("error", err.Error()))
		return nil, nil, false
	}

	discordID, err := module.ParseSnowflake(userID)
	if err != nil {
		m.log.Error("unparseable user id", logger.String("error", err.Error()))
		return nil, nil, false
	}

	person, err := m.people.PersonForDiscordID(ctx, discordID, module.MemberDisplayName(member))
	if err != nil {
		m.log.Error("failed to resolve person", logger.String("error", err.Error()))
		return nil, nil, false
	}

	return pubEvent, person, true
}

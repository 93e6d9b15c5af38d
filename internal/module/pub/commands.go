package pub

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/domain"
	"github.com/sown/kmibot/internal/ferryapi"
	"github.com/sown/kmibot/internal/module"
	"github.com/sown/kmibot/internal/schedule"
)

// nextPubTime computes the next scheduled occurrence of the recurring pub.
func (m *Module) nextPubTime() time.Time {
	return schedule.NextOccurrence(
		m.clock(),
		m.cfg.Pub.Weekday,
		m.cfg.Pub.Hour,
		m.cfg.Pub.Minute,
		m.cfg.Location(),
	)
}

// resolvePerson lazily resolves or creates the ferry Person for a Discord
// user.
func (m *Module) resolvePerson(ctx context.Context, u *discordgo.User) (*domain.Person, error) {
	discordID, err := module.ParseSnowflake(u.ID)
	if err != nil {
		return nil, err
	}
	return m.people.PersonForDiscordID(ctx, discordID, module.DisplayName(u))
}

// upcomingPubEvent finds the current-or-next pub regardless of exact slot
// and resolves its mirrored ferry record. Absence of either is reported via
// sentinel errors.
func (m *Module) upcomingPubEvent(ctx context.Context) (*discordgo.GuildScheduledEvent, *domain.PubEvent, error) {
	events, err := m.events.ScheduledEvents()
	if err != nil {
		return nil, nil, fmt.Errorf("list scheduled events: %w", err)
	}

	ev := schedule.FindUpcoming(events)
	if ev == nil {
		return nil, nil, domain.ErrNoUpcomingPub
	}

	eventID, err := module.ParseSnowflake(ev.ID)
	if err != nil {
		return nil, nil, err
	}
	pubEvent, err := m.pubs.PubEventByDiscordID(ctx, eventID)
	if err != nil {
		return ev, nil, err
	}
	return ev, pubEvent, nil
}

// createPubEvent creates the Discord scheduled event and its mirrored ferry
// record.
func (m *Module) createPubEvent(ctx context.Context, user *discordgo.User, pub *domain.Pub, start time.Time, title string) (*discordgo.GuildScheduledEvent, error) {
	m.log.Info("creating scheduled event",
		logger.String("pub", pub.Name),
		logger.String("start", start.Format(time.RFC3339)),
	)

	end := start.Add(m.cfg.Pub.EventDuration)
	ev, err := m.events.CreateScheduledEvent(&discordgo.GuildScheduledEventParams{
		Name:               fmt.Sprintf("%s %s %s", pub.Emoji, title, m.cfg.Pub.SupplementalEmoji),
		ScheduledStartTime: &start,
		ScheduledEndTime:   &end,
		EntityType:         discordgo.GuildScheduledEventEntityTypeExternal,
		PrivacyLevel:       discordgo.GuildScheduledEventPrivacyLevelGuildOnly,
		EntityMetadata:     &discordgo.GuildScheduledEventEntityMetadata{Location: pub.Name},
		Description:        m.cfg.Pub.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("create scheduled event: %w", err)
	}

	person, err := m.resolvePerson(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("resolve creator: %w", err)
	}

	eventID, err := module.ParseSnowflake(ev.ID)
	if err != nil {
		return nil, err
	}
	err = m.pubs.CreatePubEvent(ctx, ferryapi.CreatePubEventInput{
		Timestamp:        start,
		PubID:            pub.ID,
		CreatedBy:        person.ID,
		ScheduledEventID: eventID,
	})
	if err != nil {
		return nil, fmt.Errorf("create pub event record: %w", err)
	}
	return ev, nil
}

func (m *Module) handleNext(ctx context.Context, ic *discordgo.InteractionCreate) {
	events, err := m.events.ScheduledEvents()
	if err != nil {
		m.log.Error("failed to list scheduled events", logger.String("error", err.Error()))
		m.apologise(ic)
		return
	}

	pubTime := m.nextPubTime()
	if schedule.FindAt(events, pubTime) != nil {
		m.log.Info("a pub event already exists")
		m.respondEphemeral(ic, "A pub event already exists.")
		return
	}

	pub, err := m.choosePub(ctx, ic, fmt.Sprintf("Please choose the pub for %s", pubTime.Format("Monday 2 January, 15:04")))
	if err != nil {
		m.finishChooser(ic, err)
		return
	}

	if _, err := m.createPubEvent(ctx, module.InteractionUser(ic), pub, pubTime, "Pub"); err != nil {
		m.log.Error("failed to create pub event", logger.String("error", err.Error()))
		m.followUpEphemeral(ic, "Something went wrong creating the event, sorry.")
		return
	}

	content := strings.Join([]string{
		"**Pub Next Week**",
		fmt.Sprintf("The next pub will be <t:%d:R>", pubTime.Unix()),
		fmt.Sprintf("It will be held at %s", m.formattedPubName(pub)),
		"",
		"If you are coming, please mark 🔔 interest on the event!",
	}, "\n")

	m.log.Info("posting pub info", logger.String("channel", m.cfg.Pub.ChannelID))
	_, err = m.msg.SendComplex(m.cfg.Pub.ChannelID, &discordgo.MessageSend{
		Content:    content,
		Components: pubButtons(pub),
	})
	if err != nil {
		m.log.Error("failed to announce pub", logger.String("error", err.Error()))
	}
}

func (m *Module) handleNow(ctx context.Context, ic *discordgo.InteractionCreate) {
	pub, err := m.choosePub(ctx, ic, "Please choose the spontaneous pub")
	if err != nil {
		m.finishChooser(ic, err)
		return
	}

	start := m.clock().Add(time.Second)
	if _, err := m.createPubEvent(ctx, module.InteractionUser(ic), pub, start, "Spontaneous Pub"); err != nil {
		m.log.Error("failed to create spontaneous pub", logger.String("error", err.Error()))
		m.followUpEphemeral(ic, "Something went wrong creating the event, sorry.")
		return
	}
	// The channel announcement is posted by the lifecycle handler when the
	// event goes active.
}

func (m *Module) handleInfo(ctx context.Context, ic *discordgo.InteractionCreate) {
	ev, pubEvent, err := m.upcomingPubEvent(ctx)
	if errors.Is(err, domain.ErrNoUpcomingPub) || errors.Is(err, domain.ErrNotFound) {
		m.respondEphemeral(ic, "There is no pub scheduled.")
		return
	}
	if err != nil {
		m.log.Error("failed to resolve upcoming pub", logger.String("error", err.Error()))
		m.apologise(ic)
		return
	}

	pub, err := m.pubs.Pub(ctx, pubEvent.PubID)
	if err != nil {
		m.log.Error("failed to fetch pub", logger.String("error", err.Error()))
		m.apologise(ic)
		return
	}

	lines := []string{
		"**Upcoming Pub**",
		fmt.Sprintf("The next pub will be <t:%d:R>", ev.ScheduledStartTime.Unix()),
		fmt.Sprintf("It will be held at %s", m.formattedPubName(pub)),
	}
	if pubEvent.Table != nil {
		lines = append(lines, fmt.Sprintf("We will be at table %d", pubEvent.Table.Number))
	}

	err = m.resp.Respond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    strings.Join(lines, "\n"),
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: pubButtons(pub),
		},
	})
	if err != nil {
		m.log.Error("failed to respond with pub info", logger.String("error", err.Error()))
	}
}

// changeTimeLayout is the wall-clock format accepted by /pub change,
// interpreted in the configured timezone.
const changeTimeLayout = "2006-01-02 15:04"

func (m *Module) handleChange(ctx context.Context, ic *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	var newStart *time.Time
	for _, opt := range opts {
		if opt.Name != "start" {
			continue
		}
		parsed, err := time.ParseInLocation(changeTimeLayout, opt.StringValue(), m.cfg.Location())
		if err != nil {
			// Refused before any remote call.
			m.respondEphemeral(ic, fmt.Sprintf("The start time must look like `%s`.", changeTimeLayout))
			return
		}
		newStart = &parsed
	}

	ev, pubEvent, err := m.upcomingPubEvent(ctx)
	if errors.Is(err, domain.ErrNoUpcomingPub) || errors.Is(err, domain.ErrNotFound) {
		m.respondEphemeral(ic, "There is no pub scheduled.")
		return
	}
	if err != nil {
		m.log.Error("failed to resolve upcoming pub", logger.String("error", err.Error()))
		m.apologise(ic)
		return
	}

	pub, err := m.choosePub(ctx, ic, "Please choose the new pub")
	if err != nil {
		m.finishChooser(ic, err)
		return
	}

	update := ferryapi.UpdatePubEventInput{PubID: &pub.ID, Timestamp: newStart}
	if _, err := m.pubs.UpdatePubEvent(ctx, pubEvent.ID, update); err != nil {
		m.log.Error("failed to update pub event", logger.String("error", err.Error()))
		m.followUpEphemeral(ic, "Something went wrong updating the event, sorry.")
		return
	}

	params := &discordgo.GuildScheduledEventParams{
		Name:           fmt.Sprintf("%s Pub %s", pub.Emoji, m.cfg.Pub.SupplementalEmoji),
		EntityMetadata: &discordgo.GuildScheduledEventEntityMetadata{Location: pub.Name},
	}
	if newStart != nil {
		end := newStart.Add(m.cfg.Pub.EventDuration)
		params.ScheduledStartTime = newStart
		params.ScheduledEndTime = &end
	}
	_, err = m.events.EditScheduledEvent(ev.ID, params)
	if err != nil {
		m.log.Error("failed to edit scheduled event", logger.String("error", err.Error()))
		m.followUpEphemeral(ic, "The change was recorded, but the Discord event could not be updated.")
		return
	}

	lines := []string{
		"**Pub Changed**",
		fmt.Sprintf("The pub will now be held at %s", m.formattedPubName(pub)),
	}
	if newStart != nil {
		lines = append(lines, fmt.Sprintf("It will now start <t:%d:R>", newStart.Unix()))
	}
	content := strings.Join(lines, "\n")
	if _, err := m.msg.SendComplex(m.cfg.Pub.ChannelID, &discordgo.MessageSend{
		Content:    content,
		Components: pubButtons(pub),
	}); err != nil {
		m.log.Error("failed to announce pub change", logger.String("error", err.Error()))
	}
}

func (m *Module) handleAttendees(ctx context.Context, ic *discordgo.InteractionCreate) {
	_, pubEvent, err := m.upcomingPubEvent(ctx)
	if errors.Is(err, domain.ErrNoUpcomingPub) || errors.Is(err, domain.ErrNotFound) {
		m.respondEphemeral(ic, "There is no pub scheduled.")
		return
	}
	if err != nil {
		m.log.Error("failed to resolve upcoming pub", logger.String("error", err.Error()))
		m.apologise(ic)
		return
	}

	if len(pubEvent.Attendees) == 0 {
		m.respondEphemeral(ic, "Nobody has signed up to the pub yet.")
		return
	}

	lines := make([]string, 0, len(pubEvent.Attendees)+1)
	lines = append(lines, fmt.Sprintf("%d people are coming to the pub:", len(pubEvent.Attendees)))
	for _, attendee := range pubEvent.Attendees {
		lines = append(lines, attendee.Mention())
	}
	m.respondEphemeral(ic, strings.Join(lines, "\n"))
}

func (m *Module) handleTable(ctx context.Context, ic *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	if len(opts) == 0 {
		return
	}
	number := opts[0].IntValue()
	if number <= 0 {
		// Refused before any remote call.
		m.respondEphemeral(ic, "The table number must be a positive integer.")
		return
	}

	ev, pubEvent, err := m.upcomingPubEvent(ctx)
	if errors.Is(err, domain.ErrNoUpcomingPub) || errors.Is(err, domain.ErrNotFound) {
		m.respondEphemeral(ic, "There is no pub scheduled.")
		return
	}
	if err != nil {
		m.log.Error("failed to resolve upcoming pub", logger.String("error", err.Error()))
		m.apologise(ic)
		return
	}

	if err := m.pubs.SetTable(ctx, pubEvent.ID, int(number)); err != nil {
		m.log.Error("failed to set table", logger.String("error", err.Error()))
		m.apologise(ic)
		return
	}

	// The table number rides along in the event location so it shows up in
	// the Discord UI.
	location := baseLocation(ev.EntityMetadata.Location)
	_, err = m.events.EditScheduledEvent(ev.ID, &discordgo.GuildScheduledEventParams{
		EntityMetadata: &discordgo.GuildScheduledEventEntityMetadata{
			Location: fmt.Sprintf("%s - Table %d", location, number),
		},
	})
	if err != nil {
		m.log.Error("failed to edit event location", logger.String("error", err.Error()))
		m.respondEphemeral(ic, "The table was recorded, but the Discord event could not be updated.")
		return
	}

	m.respondEphemeral(ic, fmt.Sprintf("We are at table %d.", number))
}

// baseLocation strips a previous table suffix so reassignment does not stack.
func baseLocation(location string) string {
	if idx := strings.LastIndex(location, " - Table "); idx >= 0 {
		return location[:idx]
	}
	return location
}

func (m *Module) handleBook(ctx context.Context, ic *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	if len(opts) == 0 {
		return
	}
	tableSize := opts[0].IntValue()
	if tableSize <= 0 {
		// Refused before any remote call.
		m.respondEphemeral(ic, "The table size must be a positive integer.")
		return
	}

	_, pubEvent, err := m.upcomingPubEvent(ctx)
	if errors.Is(err, domain.ErrNoUpcomingPub) || errors.Is(err, domain.ErrNotFound) {
		m.respondEphemeral(ic, "There is no pub scheduled.")
		return
	}
	if err != nil {
		m.log.Error("failed to resolve upcoming pub", logger.String("error", err.Error()))
		m.apologise(ic)
		return
	}

	person, err := m.resolvePerson(ctx, module.InteractionUser(ic))
	if err != nil {
		m.log.Error("failed to resolve person", logger.String("error", err.Error()))
		m.apologise(ic)
		return
	}

	booking, err := m.pubs.CreateBooking(ctx, pubEvent.ID, int(tableSize), person.ID)
	if errors.Is(err, domain.ErrBookingAlreadyExists) {
		m.respondEphemeral(ic, "A booking has already been made for this pub.")
		return
	}
	if err != nil {
		m.log.Error("failed to create booking", logger.String("error", err.Error()))
		m.apologise(ic)
		return
	}

	m.respondEphemeral(ic, fmt.Sprintf("Booked a table for %d people.", booking.TableSize))
}

// finishChooser resolves the ephemeral chooser message after a failed or
// abandoned selection.
func (m *Module) finishChooser(ic *discordgo.InteractionCreate, err error) {
	if errors.Is(err, domain.ErrNoSelection) {
		m.log.Info("pub chooser timed out")
		if e := m.resp.EditResponse(ic.Interaction, "No pub was selected in time.", true); e != nil {
			m.log.Error("failed to edit chooser message", logger.String("error", e.Error()))
		}
		return
	}
	m.log.Error("pub chooser failed", logger.String("error", err.Error()))
	m.apologise(ic)
}

func (m *Module) followUpEphemeral(ic *discordgo.InteractionCreate, content string) {
	if err := m.resp.FollowUp(ic.Interaction, content, true); err != nil {
		m.log.Error("failed to send follow-up", logger.String("error", err.Error()))
	}
}

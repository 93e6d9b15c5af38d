package pub

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/config"
	"github.com/sown/kmibot/internal/domain"
	"github.com/sown/kmibot/internal/ferryapi"
	"github.com/sown/kmibot/internal/module/ports/mocks"
	"github.com/sown/kmibot/internal/schedule"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Timezone: "Europe/London",
		Pub: config.PubConfig{
			ChannelID:         "pub-channel",
			Description:       "The weekly pub night.",
			Weekday:           4,
			Hour:              18,
			Minute:            0,
			SupplementalEmoji: "🍺",
			EventDuration:     3 * time.Hour,
		},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

type pubMocks struct {
	people  *mocks.MockPeopleAPI
	pubs    *mocks.MockPubAPI
	msg     *mocks.MockMessenger
	events  *mocks.MockEventManager
	resp    *mocks.MockResponder
	members *mocks.MockMemberDirectory
}

func newTestModule(t *testing.T) (*Module, *pubMocks) {
	t.Helper()
	pm := &pubMocks{
		people:  mocks.NewMockPeopleAPI(t),
		pubs:    mocks.NewMockPubAPI(t),
		msg:     mocks.NewMockMessenger(t),
		events:  mocks.NewMockEventManager(t),
		resp:    mocks.NewMockResponder(t),
		members: mocks.NewMockMemberDirectory(t),
	}
	m := New(testConfig(t), newTestLogger(t), pm.people, pm.pubs, pm.msg, pm.events, pm.resp, pm.members)
	return m, pm
}

func commandInteraction(userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:   discordgo.InteractionApplicationCommand,
			Member: &discordgo.Member{User: &discordgo.User{ID: userID, Username: "alice"}},
		},
	}
}

func intOption(name string, value int64) []*discordgo.ApplicationCommandInteractionDataOption {
	return []*discordgo.ApplicationCommandInteractionDataOption{
		{
			Name:  name,
			Type:  discordgo.ApplicationCommandOptionInteger,
			Value: float64(value),
		},
	}
}

func ephemeralContaining(fragment string) interface{} {
	return mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return r.Type == discordgo.InteractionResponseChannelMessageWithSource &&
			r.Data != nil &&
			r.Data.Flags&discordgo.MessageFlagsEphemeral != 0 &&
			strings.Contains(r.Data.Content, fragment)
	})
}

func upcomingPub(id string, start time.Time) *discordgo.GuildScheduledEvent {
	return &discordgo.GuildScheduledEvent{
		ID:                 id,
		Name:               "🍺 Pub 🍺",
		ScheduledStartTime: start,
		Status:             discordgo.GuildScheduledEventStatusScheduled,
		EntityMetadata:     discordgo.GuildScheduledEventEntityMetadata{Location: "The Crown"},
	}
}

func TestHandleTable_NonPositiveRefusedBeforeRemoteCalls(t *testing.T) {
	for _, number := range []int64{0, -3} {
		m, pm := newTestModule(t)

		// No expectations on the event or ferry mocks: any remote call
		// fails the test.
		pm.resp.EXPECT().Respond(mock.Anything, ephemeralContaining("must be a positive integer")).Return(nil)

		m.handleTable(context.Background(), commandInteraction("100"), intOption("number", number))
	}
}

func TestHandleBook_NonPositiveRefusedBeforeRemoteCalls(t *testing.T) {
	m, pm := newTestModule(t)

	pm.resp.EXPECT().Respond(mock.Anything, ephemeralContaining("must be a positive integer")).Return(nil)

	m.handleBook(context.Background(), commandInteraction("100"), intOption("table_size", 0))
}

func TestHandleTable_SetsTableAndLocation(t *testing.T) {
	m, pm := newTestModule(t)

	start := time.Date(2026, time.September, 4, 18, 0, 0, 0, time.UTC)
	pubEventID := uuid.New()

	pm.events.EXPECT().ScheduledEvents().
		Return([]*discordgo.GuildScheduledEvent{upcomingPub("555", start)}, nil)
	pm.pubs.EXPECT().PubEventByDiscordID(mock.Anything, int64(555)).
		Return(&domain.PubEvent{ID: pubEventID}, nil)
	pm.pubs.EXPECT().SetTable(mock.Anything, pubEventID, 12).Return(nil)
	pm.events.EXPECT().EditScheduledEvent("555", mock.MatchedBy(func(p *discordgo.GuildScheduledEventParams) bool {
		return p.EntityMetadata != nil && p.EntityMetadata.Location == "The Crown - Table 12"
	})).Return(upcomingPub("555", start), nil)
	pm.resp.EXPECT().Respond(mock.Anything, ephemeralContaining("We are at table 12.")).Return(nil)

	m.handleTable(context.Background(), commandInteraction("100"), intOption("number", 12))
}

func TestHandleTable_ReassignmentDoesNotStackSuffix(t *testing.T) {
	m, pm := newTestModule(t)

	start := time.Date(2026, time.September, 4, 18, 0, 0, 0, time.UTC)
	pubEventID := uuid.New()

	ev := upcomingPub("555", start)
	ev.EntityMetadata.Location = "The Crown - Table 3"

	pm.events.EXPECT().ScheduledEvents().
		Return([]*discordgo.GuildScheduledEvent{ev}, nil)
	pm.pubs.EXPECT().PubEventByDiscordID(mock.Anything, int64(555)).
		Return(&domain.PubEvent{ID: pubEventID}, nil)
	pm.pubs.EXPECT().SetTable(mock.Anything, pubEventID, 7).Return(nil)
	pm.events.EXPECT().EditScheduledEvent("555", mock.MatchedBy(func(p *discordgo.GuildScheduledEventParams) bool {
		return p.EntityMetadata != nil && p.EntityMetadata.Location == "The Crown - Table 7"
	})).Return(ev, nil)
	pm.resp.EXPECT().Respond(mock.Anything, ephemeralContaining("We are at table 7.")).Return(nil)

	m.handleTable(context.Background(), commandInteraction("100"), intOption("number", 7))
}

func TestHandleBook_ConflictIsDistinguishable(t *testing.T) {
	m, pm := newTestModule(t)

	start := time.Date(2026, time.September, 4, 18, 0, 0, 0, time.UTC)
	pubEventID := uuid.New()
	personID := uuid.New()

	pm.events.EXPECT().ScheduledEvents().
		Return([]*discordgo.GuildScheduledEvent{upcomingPub("555", start)}, nil)
	pm.pubs.EXPECT().PubEventByDiscordID(mock.Anything, int64(555)).
		Return(&domain.PubEvent{ID: pubEventID}, nil)
	pm.people.EXPECT().PersonForDiscordID(mock.Anything, int64(100), "alice").
		Return(&domain.Person{ID: personID, DisplayName: "alice"}, nil)
	pm.pubs.EXPECT().CreateBooking(mock.Anything, pubEventID, 6, personID).
		Return(nil, domain.ErrBookingAlreadyExists)

	pm.resp.EXPECT().Respond(mock.Anything, ephemeralContaining("A booking has already been made for this pub.")).Return(nil)

	m.handleBook(context.Background(), commandInteraction("100"), intOption("table_size", 6))
}

func TestHandleBook_Success(t *testing.T) {
	m, pm := newTestModule(t)

	start := time.Date(2026, time.September, 4, 18, 0, 0, 0, time.UTC)
	pubEventID := uuid.New()
	personID := uuid.New()

	pm.events.EXPECT().ScheduledEvents().
		Return([]*discordgo.GuildScheduledEvent{upcomingPub("555", start)}, nil)
	pm.pubs.EXPECT().PubEventByDiscordID(mock.Anything, int64(555)).
		Return(&domain.PubEvent{ID: pubEventID}, nil)
	pm.people.EXPECT().PersonForDiscordID(mock.Anything, int64(100), "alice").
		Return(&domain.Person{ID: personID, DisplayName: "alice"}, nil)
	pm.pubs.EXPECT().CreateBooking(mock.Anything, pubEventID, 6, personID).
		Return(&domain.Booking{ID: uuid.New(), TableSize: 6}, nil)

	pm.resp.EXPECT().Respond(mock.Anything, ephemeralContaining("Booked a table for 6 people.")).Return(nil)

	m.handleBook(context.Background(), commandInteraction("100"), intOption("table_size", 6))
}

func TestHandleNext_ExistingEventRefused(t *testing.T) {
	m, pm := newTestModule(t)

	now := time.Date(2026, time.September, 2, 10, 0, 0, 0, m.cfg.Location())
	m.clock = func() time.Time { return now }

	slot := schedule.NextOccurrence(now, 4, 18, 0, m.cfg.Location())
	pm.events.EXPECT().ScheduledEvents().
		Return([]*discordgo.GuildScheduledEvent{upcomingPub("555", slot)}, nil)

	pm.resp.EXPECT().Respond(mock.Anything, ephemeralContaining("A pub event already exists.")).Return(nil)

	m.handleNext(context.Background(), commandInteraction("100"))
}

func TestHandleAttendees_ListsMentions(t *testing.T) {
	m, pm := newTestModule(t)

	start := time.Date(2026, time.September, 4, 18, 0, 0, 0, time.UTC)
	discordID := int64(300)

	pm.events.EXPECT().ScheduledEvents().
		Return([]*discordgo.GuildScheduledEvent{upcomingPub("555", start)}, nil)
	pm.pubs.EXPECT().PubEventByDiscordID(mock.Anything, int64(555)).
		Return(&domain.PubEvent{
			ID: uuid.New(),
			Attendees: []domain.PersonLink{
				{ID: uuid.New(), DisplayName: "carol", DiscordID: &discordID},
				{ID: uuid.New(), DisplayName: "dave"},
			},
		}, nil)

	pm.resp.EXPECT().Respond(mock.Anything, mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return r.Data != nil &&
			strings.Contains(r.Data.Content, "2 people are coming to the pub:") &&
			strings.Contains(r.Data.Content, "<@300>") &&
			strings.Contains(r.Data.Content, "dave")
	})).Return(nil)

	m.handleAttendees(context.Background(), commandInteraction("100"))
}

func TestHandleAttendees_NoPubScheduled(t *testing.T) {
	m, pm := newTestModule(t)

	pm.events.EXPECT().ScheduledEvents().Return(nil, nil)
	pm.resp.EXPECT().Respond(mock.Anything, ephemeralContaining("There is no pub scheduled.")).Return(nil)

	m.handleAttendees(context.Background(), commandInteraction("100"))
}

func stringOption(name, value string) []*discordgo.ApplicationCommandInteractionDataOption {
	return []*discordgo.ApplicationCommandInteractionDataOption{
		{
			Name:  name,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: value,
		},
	}
}

// resolveChooser completes the pub chooser as soon as it is presented.
func resolveChooser(m *Module, pub domain.Pub) func(*discordgo.Interaction, *discordgo.InteractionResponse) {
	return func(_ *discordgo.Interaction, r *discordgo.InteractionResponse) {
		row := r.Data.Components[0].(discordgo.ActionsRow)
		menu := row.Components[0].(discordgo.SelectMenu)
		m.selections.complete(menu.CustomID, pub.ID.String())
	}
}

func chooserResponse() interface{} {
	return mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return r.Type == discordgo.InteractionResponseChannelMessageWithSource &&
			r.Data != nil && len(r.Data.Components) == 1
	})
}

func TestHandleChange_BadStartTimeRefusedBeforeRemoteCalls(t *testing.T) {
	m, pm := newTestModule(t)

	pm.resp.EXPECT().Respond(mock.Anything, ephemeralContaining("start time")).Return(nil)

	m.handleChange(context.Background(), commandInteraction("100"), stringOption("start", "next friday"))
}

func TestHandleChange_RevenuesAndRetimes(t *testing.T) {
	m, pm := newTestModule(t)

	eventUUID := uuid.New()
	newPub := domain.Pub{ID: uuid.New(), Name: "The Anchor", Emoji: "⚓"}
	newStart, err := time.ParseInLocation(changeTimeLayout, "2026-09-11 19:00", m.cfg.Location())
	require.NoError(t, err)

	pm.events.EXPECT().ScheduledEvents().
		Return([]*discordgo.GuildScheduledEvent{
			upcomingPub("555", time.Date(2026, 9, 4, 18, 0, 0, 0, m.cfg.Location())),
		}, nil)
	pm.pubs.EXPECT().PubEventByDiscordID(mock.Anything, int64(555)).
		Return(&domain.PubEvent{ID: eventUUID}, nil)
	pm.pubs.EXPECT().Pubs(mock.Anything).Return([]domain.Pub{newPub}, nil)
	pm.resp.EXPECT().Respond(mock.Anything, chooserResponse()).
		Run(resolveChooser(m, newPub)).Return(nil)

	pm.pubs.EXPECT().UpdatePubEvent(mock.Anything, eventUUID, mock.MatchedBy(func(in ferryapi.UpdatePubEventInput) bool {
		return in.PubID != nil && *in.PubID == newPub.ID &&
			in.Timestamp != nil && in.Timestamp.Equal(newStart)
	})).Return(&domain.PubEvent{ID: eventUUID, PubID: newPub.ID}, nil)

	pm.events.EXPECT().EditScheduledEvent("555", mock.MatchedBy(func(p *discordgo.GuildScheduledEventParams) bool {
		return p.EntityMetadata != nil && p.EntityMetadata.Location == "The Anchor" &&
			p.ScheduledStartTime != nil && p.ScheduledStartTime.Equal(newStart) &&
			p.ScheduledEndTime != nil && p.ScheduledEndTime.Equal(newStart.Add(m.cfg.Pub.EventDuration))
	})).Return(&discordgo.GuildScheduledEvent{ID: "555"}, nil)

	pm.msg.EXPECT().SendComplex("pub-channel", mock.MatchedBy(func(msg *discordgo.MessageSend) bool {
		return strings.Contains(msg.Content, "The Anchor") &&
			strings.Contains(msg.Content, fmt.Sprintf("<t:%d:R>", newStart.Unix()))
	})).Return(&discordgo.Message{}, nil)

	m.handleChange(context.Background(), commandInteraction("100"), stringOption("start", "2026-09-11 19:00"))
}

func TestHandleChange_VenueOnlyLeavesTimeAlone(t *testing.T) {
	m, pm := newTestModule(t)

	eventUUID := uuid.New()
	newPub := domain.Pub{ID: uuid.New(), Name: "The Anchor", Emoji: "⚓"}

	pm.events.EXPECT().ScheduledEvents().
		Return([]*discordgo.GuildScheduledEvent{
			upcomingPub("555", time.Date(2026, 9, 4, 18, 0, 0, 0, m.cfg.Location())),
		}, nil)
	pm.pubs.EXPECT().PubEventByDiscordID(mock.Anything, int64(555)).
		Return(&domain.PubEvent{ID: eventUUID}, nil)
	pm.pubs.EXPECT().Pubs(mock.Anything).Return([]domain.Pub{newPub}, nil)
	pm.resp.EXPECT().Respond(mock.Anything, chooserResponse()).
		Run(resolveChooser(m, newPub)).Return(nil)

	pm.pubs.EXPECT().UpdatePubEvent(mock.Anything, eventUUID, mock.MatchedBy(func(in ferryapi.UpdatePubEventInput) bool {
		return in.PubID != nil && *in.PubID == newPub.ID && in.Timestamp == nil
	})).Return(&domain.PubEvent{ID: eventUUID, PubID: newPub.ID}, nil)

	pm.events.EXPECT().EditScheduledEvent("555", mock.MatchedBy(func(p *discordgo.GuildScheduledEventParams) bool {
		return p.EntityMetadata != nil && p.EntityMetadata.Location == "The Anchor" &&
			p.ScheduledStartTime == nil && p.ScheduledEndTime == nil
	})).Return(&discordgo.GuildScheduledEvent{ID: "555"}, nil)

	pm.msg.EXPECT().SendComplex("pub-channel", mock.MatchedBy(func(msg *discordgo.MessageSend) bool {
		return strings.Contains(msg.Content, "The Anchor") &&
			!strings.Contains(msg.Content, "It will now start")
	})).Return(&discordgo.Message{}, nil)

	m.handleChange(context.Background(), commandInteraction("100"), nil)
}

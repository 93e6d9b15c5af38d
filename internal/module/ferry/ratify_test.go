package ferry

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/config"
	"github.com/sown/kmibot/internal/domain"
	"github.com/sown/kmibot/internal/module/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testConfig() *config.Config {
	return &config.Config{
		Ferry: config.FerryConfig{
			ChannelID:   "ferry-channel",
			BannedWord:  "ferry",
			EmojiReacts: []string{"⛴️", "🚂"},
		},
	}
}

type ferryMocks struct {
	identity *mocks.MockIdentityAPI
	people   *mocks.MockPeopleAPI
	court    *mocks.MockCourtAPI
	msg      *mocks.MockMessenger
	resp     *mocks.MockResponder
	react    *mocks.MockReactor
	members  *mocks.MockMemberDirectory
	bot      *mocks.MockBotIdentity
}

func newTestModule(t *testing.T) (*Module, *ferryMocks) {
	t.Helper()
	fm := &ferryMocks{
		identity: mocks.NewMockIdentityAPI(t),
		people:   mocks.NewMockPeopleAPI(t),
		court:    mocks.NewMockCourtAPI(t),
		msg:      mocks.NewMockMessenger(t),
		resp:     mocks.NewMockResponder(t),
		react:    mocks.NewMockReactor(t),
		members:  mocks.NewMockMemberDirectory(t),
		bot:      mocks.NewMockBotIdentity(t),
	}
	m := New(testConfig(), newTestLogger(t), fm.identity, fm.people, fm.court, fm.msg, fm.resp, fm.react, fm.members, fm.bot)
	return m, fm
}

func componentInteraction(userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionMessageComponent,
			ChannelID: "ferry-channel",
			Member:    &discordgo.Member{User: &discordgo.User{ID: userID, Username: "alice"}},
			Message:   &discordgo.Message{ID: "accusation-msg"},
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

func TestCheckRatifier(t *testing.T) {
	accuser := uuid.New()
	suspect := uuid.New()
	bystander := uuid.New()

	acc := &domain.Accusation{
		Suspect:   domain.PersonLink{ID: suspect},
		CreatedBy: domain.PersonLink{ID: accuser},
	}

	assert.ErrorIs(t, checkRatifier(acc, accuser), domain.ErrOwnAccusation)
	assert.ErrorIs(t, checkRatifier(acc, suspect), domain.ErrAccusedRatifier)
	assert.NoError(t, checkRatifier(acc, bystander))
}

func TestHandleRatify_OwnAccusationRefused(t *testing.T) {
	m, fm := newTestModule(t)

	accusationID := uuid.New()
	accuser := uuid.New()
	suspect := uuid.New()

	acc := &domain.Accusation{
		ID:        accusationID,
		Suspect:   domain.PersonLink{ID: suspect},
		CreatedBy: domain.PersonLink{ID: accuser},
	}

	fm.court.EXPECT().Accusation(mock.Anything, accusationID).Return(acc, nil)
	fm.people.EXPECT().Person(mock.Anything, suspect).Return(&domain.Person{ID: suspect, DisplayName: "bob"}, nil)
	fm.people.EXPECT().PersonForDiscordID(mock.Anything, int64(100), "alice").
		Return(&domain.Person{ID: accuser, DisplayName: "alice"}, nil)

	// The refusal is ephemeral and nothing is mutated remotely.
	fm.resp.EXPECT().Respond(mock.Anything, ephemeralContaining("that you made")).Return(nil)

	m.handleRatify(context.Background(), componentInteraction("100"), accusationID.String())
}

func TestHandleRatify_AccusedRefused(t *testing.T) {
	m, fm := newTestModule(t)

	accusationID := uuid.New()
	accuser := uuid.New()
	suspect := uuid.New()

	acc := &domain.Accusation{
		ID:        accusationID,
		Suspect:   domain.PersonLink{ID: suspect},
		CreatedBy: domain.PersonLink{ID: accuser},
	}

	fm.court.EXPECT().Accusation(mock.Anything, accusationID).Return(acc, nil)
	fm.people.EXPECT().Person(mock.Anything, suspect).Return(&domain.Person{ID: suspect, DisplayName: "bob"}, nil)
	fm.people.EXPECT().PersonForDiscordID(mock.Anything, int64(100), "alice").
		Return(&domain.Person{ID: suspect, DisplayName: "bob"}, nil)

	fm.resp.EXPECT().Respond(mock.Anything, ephemeralContaining("against you")).Return(nil)

	m.handleRatify(context.Background(), componentInteraction("100"), accusationID.String())
}

func TestHandleRatify_RatifiedRecordShortCircuits(t *testing.T) {
	m, fm := newTestModule(t)

	accusationID := uuid.New()

	acc := &domain.Accusation{
		ID:           accusationID,
		Suspect:      domain.PersonLink{ID: uuid.New()},
		CreatedBy:    domain.PersonLink{ID: uuid.New()},
		Ratification: &domain.Ratification{ID: uuid.New()},
	}

	// A verdict already on the record stops the press before any person
	// lookup or ratification attempt.
	fm.court.EXPECT().Accusation(mock.Anything, accusationID).Return(acc, nil)
	fm.resp.EXPECT().Respond(mock.Anything, mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return r.Type == discordgo.InteractionResponseDeferredMessageUpdate
	})).Return(nil)
	fm.resp.EXPECT().RemoveComponents("ferry-channel", "accusation-msg").Return(nil)
	fm.resp.EXPECT().FollowUp(mock.Anything, "That accusation has already been ratified.", true).Return(nil)

	m.handleRatify(context.Background(), componentInteraction("100"), accusationID.String())
}

func TestHandleRatify_AlreadyRatified(t *testing.T) {
	m, fm := newTestModule(t)

	accusationID := uuid.New()
	accuser := uuid.New()
	suspect := uuid.New()
	ratifier := uuid.New()

	acc := &domain.Accusation{
		ID:        accusationID,
		Suspect:   domain.PersonLink{ID: suspect},
		CreatedBy: domain.PersonLink{ID: accuser},
	}

	fm.court.EXPECT().Accusation(mock.Anything, accusationID).Return(acc, nil)
	fm.people.EXPECT().Person(mock.Anything, suspect).Return(&domain.Person{ID: suspect, DisplayName: "bob"}, nil)
	fm.people.EXPECT().PersonForDiscordID(mock.Anything, int64(100), "alice").
		Return(&domain.Person{ID: ratifier, DisplayName: "alice"}, nil)
	fm.court.EXPECT().CreateRatification(mock.Anything, accusationID, ratifier).
		Return(nil, domain.ErrAlreadyRatified)

	// The remote verdict stands: the stale button goes away and only this
	// clicker hears about the conflict.
	fm.resp.EXPECT().Respond(mock.Anything, mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return r.Type == discordgo.InteractionResponseDeferredMessageUpdate
	})).Return(nil)
	fm.resp.EXPECT().RemoveComponents("ferry-channel", "accusation-msg").Return(nil)
	fm.resp.EXPECT().FollowUp(mock.Anything, "That accusation has already been ratified.", true).Return(nil)

	m.handleRatify(context.Background(), componentInteraction("100"), accusationID.String())
}

func TestHandleRatify_Success(t *testing.T) {
	m, fm := newTestModule(t)

	accusationID := uuid.New()
	accuser := uuid.New()
	suspect := uuid.New()
	ratifier := uuid.New()
	suspectDiscord := int64(200)

	acc := &domain.Accusation{
		ID:        accusationID,
		Suspect:   domain.PersonLink{ID: suspect},
		CreatedBy: domain.PersonLink{ID: accuser},
	}

	fm.court.EXPECT().Accusation(mock.Anything, accusationID).Return(acc, nil)
	fm.people.EXPECT().Person(mock.Anything, suspect).
		Return(&domain.Person{ID: suspect, DisplayName: "bob", DiscordID: &suspectDiscord}, nil)
	fm.people.EXPECT().PersonForDiscordID(mock.Anything, int64(100), "alice").
		Return(&domain.Person{ID: ratifier, DisplayName: "alice"}, nil)
	fm.court.EXPECT().CreateRatification(mock.Anything, accusationID, ratifier).
		Return(&domain.Ratification{
			Consequence: domain.Consequence{Content: "buying a round"},
		}, nil)

	fm.resp.EXPECT().Respond(mock.Anything, mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return r.Type == discordgo.InteractionResponseDeferredMessageUpdate
	})).Return(nil)
	fm.resp.EXPECT().RemoveComponents("ferry-channel", "accusation-msg").Return(nil)
	fm.resp.EXPECT().FollowUp(mock.Anything, mock.MatchedBy(func(content string) bool {
		return strings.Contains(content, "ratified by <@100>") &&
			strings.Contains(content, "<@200> has been sentenced to buying a round")
	}), false).Return(nil)

	fm.people.EXPECT().Leaderboard(mock.Anything).Return([]domain.PersonWithScore{
		{Person: domain.Person{ID: suspect, DisplayName: "bob", DiscordID: &suspectDiscord}, CurrentScore: 2},
	}, nil)
	fm.msg.EXPECT().Send("ferry-channel", mock.MatchedBy(func(content string) bool {
		return strings.HasPrefix(content, "Bad people:") && strings.Contains(content, "<@200>")
	})).Return(nil)

	m.handleRatify(context.Background(), componentInteraction("100"), accusationID.String())
}

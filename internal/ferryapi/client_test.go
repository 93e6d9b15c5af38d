package ferryapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", "test-key", newTestLogger(t))
}

func TestCurrentUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/users/me/", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		fmt.Fprint(w, `{"username": "kmibot"}`)
	})

	user, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "kmibot", user.Username)
}

func TestPersonForDiscordID_Existing(t *testing.T) {
	personID := uuid.New()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method, "an existing person must not trigger a create")
		assert.Equal(t, "/v2/people/", r.URL.Path)
		assert.Equal(t, "12345", r.URL.Query().Get("discord_id"))

		fmt.Fprintf(w, `{"results": [{"id": %q, "display_name": "alice", "discord_id": 12345}]}`, personID)
	})

	person, err := c.PersonForDiscordID(context.Background(), 12345, "alice")
	require.NoError(t, err)
	assert.Equal(t, personID, person.ID)
	assert.Equal(t, "alice", person.DisplayName)
}

func TestPersonForDiscordID_LazyCreate(t *testing.T) {
	personID := uuid.New()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			fmt.Fprint(w, `{"results": []}`)
		case http.MethodPost:
			assert.Equal(t, "/v2/people/", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "alice", body["display_name"])
			assert.Equal(t, float64(12345), body["discord_id"])

			w.WriteHeader(http.StatusCreated)
			fmt.Fprintf(w, `{"id": %q, "display_name": "alice", "discord_id": 12345}`, personID)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})

	person, err := c.PersonForDiscordID(context.Background(), 12345, "alice")
	require.NoError(t, err)
	assert.Equal(t, personID, person.ID)
}

func TestPub_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Pub(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPubEventByDiscordID_EmptyResultsIsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": []}`)
	})

	_, err := c.PubEventByDiscordID(context.Background(), 555)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateRatification_Conflict(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	_, err := c.CreateRatification(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrAlreadyRatified)
}

func TestCreateRatification_Success(t *testing.T) {
	accusationID := uuid.New()
	ratifierID := uuid.New()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, fmt.Sprintf("/v2/court/accusations/%s/ratification/", accusationID), r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, ratifierID.String(), body["created_by"])

		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id": %q, "consequence": {"id": %q, "content": "buying a round"}}`, uuid.New(), uuid.New())
	})

	ratification, err := c.CreateRatification(context.Background(), accusationID, ratifierID)
	require.NoError(t, err)
	assert.Equal(t, "buying a round", ratification.Consequence.Content)
}

func TestCreateBooking_Conflict(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	_, err := c.CreateBooking(context.Background(), uuid.New(), 6, uuid.New())
	assert.ErrorIs(t, err, domain.ErrBookingAlreadyExists)
}

func TestCreateBooking_ExtractsBooking(t *testing.T) {
	pubEventID := uuid.New()
	bookingID := uuid.New()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/v2/pub/events/%s/booking/", pubEventID), r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(6), body["table_size"])

		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{
			"id": %q,
			"timestamp": "2026-09-04T18:00:00Z",
			"pub": %q,
			"discord_id": 555,
			"attendees": [],
			"booking": {"id": %q, "table_size": 6}
		}`, pubEventID, uuid.New(), bookingID)
	})

	booking, err := c.CreateBooking(context.Background(), pubEventID, 6, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, bookingID, booking.ID)
	assert.Equal(t, 6, booking.TableSize)
}

func TestLeaderboard(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/people/", r.URL.Path)
		assert.Equal(t, "-current_score", r.URL.Query().Get("ordering"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		fmt.Fprintf(w, `{"results": [
			{"id": %q, "display_name": "alice", "current_score": 4.5, "ferry_sequence": "seq"},
			{"id": %q, "display_name": "bob", "current_score": 2.0, "ferry_sequence": "seq"}
		]}`, uuid.New(), uuid.New())
	})

	people, err := c.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "alice", people[0].DisplayName)
	assert.Equal(t, 4.5, people[0].CurrentScore)
}

func TestGenericFailureIsNotASentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Pubs(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}

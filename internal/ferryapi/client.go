// Package ferryapi is the client for the remote ferry service, the system of
// record for people, scores, accusations and pub bookings. The bot never
// stores any of this locally.
package ferryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/sown/kmibot/internal/domain"
)

const requestTimeout = 30 * time.Second

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     logger.Logger
}

func New(baseURL, apiKey string, log logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

// paginated is the envelope the service wraps list responses in.
type paginated[T any] struct {
	Results []T `json:"results"`
}

// do performs one request. 404 maps to domain.ErrNotFound and 409 to
// domain.ErrConflict so callers can errors.Is where those are recognised
// outcomes. No retries: every remote failure is one-shot.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.log.Debug("ferry api request",
		logger.String("method", method),
		logger.String("endpoint", endpoint),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, endpoint, domain.ErrNotFound)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s %s: %w", method, endpoint, domain.ErrConflict)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, endpoint, resp.StatusCode, detail)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, endpoint, err)
	}
	return nil
}

// CurrentUser returns the service account the API key belongs to. Used as a
// startup identity check.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "v2/users/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Leaderboard returns the top people ordered by descending score.
func (c *Client) Leaderboard(ctx context.Context) ([]domain.PersonWithScore, error) {
	var page paginated[domain.PersonWithScore]
	if err := c.do(ctx, http.MethodGet, "v2/people/?ordering=-current_score&limit=10", nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (c *Client) Person(ctx context.Context, personID uuid.UUID) (*domain.Person, error) {
	var person domain.Person
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("v2/people/%s/", personID), nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// PersonForDiscordID resolves the Person mirroring a Discord member, creating
// one on first reference. The service enforces at most one Person per
// Discord id.
func (c *Client) PersonForDiscordID(ctx context.Context, discordID int64, displayName string) (*domain.Person, error) {
	var page paginated[domain.Person]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("v2/people/?discord_id=%d", discordID), nil, &page); err != nil {
		return nil, err
	}
	if len(page.Results) > 0 {
		return &page.Results[0], nil
	}

	c.log.Info("creating new person",
		logger.String("display_name", displayName),
		logger.Int64("discord_id", discordID),
	)
	payload := map[string]any{
		"display_name": displayName,
		"discord_id":   discordID,
	}
	var person domain.Person
	if err := c.do(ctx, http.MethodPost, "v2/people/", payload, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (c *Client) FactForPerson(ctx context.Context, personID uuid.UUID) (*domain.Fact, error) {
	var fact domain.Fact
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("v2/people/%s/fact/", personID), nil, &fact); err != nil {
		return nil, err
	}
	return &fact, nil
}

func (c *Client) CreateAccusation(ctx context.Context, createdBy, suspect uuid.UUID, quote string) (*domain.Accusation, error) {
	payload := map[string]any{
		"quote":      quote,
		"suspect":    suspect.String(),
		"created_by": createdBy.String(),
	}
	var accusation domain.Accusation
	if err := c.do(ctx, http.MethodPost, "v2/court/accusations/", payload, &accusation); err != nil {
		return nil, err
	}
	return &accusation, nil
}

func (c *Client) Accusation(ctx context.Context, accusationID uuid.UUID) (*domain.Accusation, error) {
	var accusation domain.Accusation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("v2/court/accusations/%s/", accusationID), nil, &accusation); err != nil {
		return nil, err
	}
	return &accusation, nil
}

// CreateRatification attaches the one-time ratification to an accusation.
// The service is authoritative for the "already ratified" conflict, reported
// as domain.ErrAlreadyRatified.
func (c *Client) CreateRatification(ctx context.Context, accusationID, createdBy uuid.UUID) (*domain.Ratification, error) {
	payload := map[string]any{
		"created_by": createdBy.String(),
	}
	var ratification domain.Ratification
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("v2/court/accusations/%s/ratification/", accusationID), payload, &ratification)
	if err != nil {
		if isConflict(err) {
			return nil, fmt.Errorf("accusation %s: %w", accusationID, domain.ErrAlreadyRatified)
		}
		return nil, err
	}
	return &ratification, nil
}

func (c *Client) Pubs(ctx context.Context) ([]domain.Pub, error) {
	var page paginated[domain.Pub]
	if err := c.do(ctx, http.MethodGet, "v2/pub/pubs/", nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Pub fetches one pub. Absence is a recognised outcome: domain.ErrNotFound.
func (c *Client) Pub(ctx context.Context, pubID uuid.UUID) (*domain.Pub, error) {
	var pub domain.Pub
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("v2/pub/pubs/%s/", pubID), nil, &pub); err != nil {
		return nil, err
	}
	return &pub, nil
}

type CreatePubEventInput struct {
	Timestamp        time.Time
	PubID            uuid.UUID
	CreatedBy        uuid.UUID
	ScheduledEventID int64
}

func (c *Client) CreatePubEvent(ctx context.Context, in CreatePubEventInput) error {
	payload := map[string]any{
		"timestamp":  in.Timestamp.Format(time.RFC3339),
		"pub":        in.PubID.String(),
		"discord_id": in.ScheduledEventID,
		"table":      nil,
		"created_by": in.CreatedBy.String(),
	}
	return c.do(ctx, http.MethodPost, "v2/pub/events/", payload, nil)
}

// UpdatePubEventInput carries the PATCHable pub-event fields; nil fields are
// left unchanged.
type UpdatePubEventInput struct {
	Timestamp *time.Time
	PubID     *uuid.UUID
}

func (c *Client) UpdatePubEvent(ctx context.Context, eventID uuid.UUID, in UpdatePubEventInput) (*domain.PubEvent, error) {
	payload := map[string]any{}
	if in.Timestamp != nil {
		payload["timestamp"] = in.Timestamp.Format(time.RFC3339)
	}
	if in.PubID != nil {
		payload["pub"] = in.PubID.String()
	}
	var event domain.PubEvent
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("v2/pub/events/%s/", eventID), payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// PubEventByDiscordID looks up the mirrored pub event for a Discord scheduled
// event. Absence is a recognised outcome: domain.ErrNotFound.
func (c *Client) PubEventByDiscordID(ctx context.Context, scheduledEventID int64) (*domain.PubEvent, error) {
	var page paginated[domain.PubEvent]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("v2/pub/events/?discord_id=%d", scheduledEventID), nil, &page); err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, fmt.Errorf("pub event for discord id %d: %w", scheduledEventID, domain.ErrNotFound)
	}
	return &page.Results[0], nil
}

// AddAttendee idempotently records a person as attending; the service
// enforces set semantics, so duplicate adds neither error nor double-count.
func (c *Client) AddAttendee(ctx context.Context, pubEventID, personID uuid.UUID) error {
	payload := map[string]any{"person": personID.String()}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("v2/pub/events/%s/attendees/add/", pubEventID), payload, nil)
}

// RemoveAttendee removes a person from the attendee set and returns the
// updated event. The returned attendee set is ground truth: the person may
// still be registered through AutoPub.
func (c *Client) RemoveAttendee(ctx context.Context, pubEventID, personID uuid.UUID) (*domain.PubEvent, error) {
	payload := map[string]any{"person": personID.String()}
	var event domain.PubEvent
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("v2/pub/events/%s/attendees/remove/", pubEventID), payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) SetTable(ctx context.Context, pubEventID uuid.UUID, tableNumber int) error {
	payload := map[string]any{"table_number": tableNumber}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("v2/pub/events/%s/table/", pubEventID), payload, nil)
}

// CreateBooking creates the at-most-one booking for a pub event. A second
// attempt is reported as domain.ErrBookingAlreadyExists, distinguishably from
// generic failure.
func (c *Client) CreateBooking(ctx context.Context, pubEventID uuid.UUID, tableSize int, createdBy uuid.UUID) (*domain.Booking, error) {
	payload := map[string]any{
		"table_size": tableSize,
		"created_by": createdBy.String(),
	}
	// The endpoint returns the full pub event; the booking is extracted.
	var event domain.PubEvent
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("v2/pub/events/%s/booking/", pubEventID), payload, &event)
	if err != nil {
		if isConflict(err) {
			c.log.Warn("booking already exists", logger.String("pub_event_id", pubEventID.String()))
			return nil, fmt.Errorf("pub event %s: %w", pubEventID, domain.ErrBookingAlreadyExists)
		}
		return nil, err
	}
	if event.Booking == nil {
		return nil, fmt.Errorf("pub event %s: booking created but absent from response", pubEventID)
	}
	return event.Booking, nil
}

func isConflict(err error) bool {
	return errors.Is(err, domain.ErrConflict)
}

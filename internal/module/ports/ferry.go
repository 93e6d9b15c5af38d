// Package ports declares the interfaces modules depend on: slices of the
// ferry service client and of the Discord session. Concrete implementations
// are internal/ferryapi and internal/bot.
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/sown/kmibot/internal/domain"
	"github.com/sown/kmibot/internal/ferryapi"
)

type IdentityAPI interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

type PeopleAPI interface {
	PersonForDiscordID(ctx context.Context, discordID int64, displayName string) (*domain.Person, error)
	Person(ctx context.Context, personID uuid.UUID) (*domain.Person, error)
	Leaderboard(ctx context.Context) ([]domain.PersonWithScore, error)
	FactForPerson(ctx context.Context, personID uuid.UUID) (*domain.Fact, error)
}

type CourtAPI interface {
	CreateAccusation(ctx context.Context, createdBy, suspect uuid.UUID, quote string) (*domain.Accusation, error)
	Accusation(ctx context.Context, accusationID uuid.UUID) (*domain.Accusation, error)
	CreateRatification(ctx context.Context, accusationID, createdBy uuid.UUID) (*domain.Ratification, error)
}

type PubAPI interface {
	Pubs(ctx context.Context) ([]domain.Pub, error)
	Pub(ctx context.Context, pubID uuid.UUID) (*domain.Pub, error)
	CreatePubEvent(ctx context.Context, in ferryapi.CreatePubEventInput) error
	UpdatePubEvent(ctx context.Context, eventID uuid.UUID, in ferryapi.UpdatePubEventInput) (*domain.PubEvent, error)
	PubEventByDiscordID(ctx context.Context, scheduledEventID int64) (*domain.PubEvent, error)
	AddAttendee(ctx context.Context, pubEventID, personID uuid.UUID) error
	RemoveAttendee(ctx context.Context, pubEventID, personID uuid.UUID) (*domain.PubEvent, error)
	SetTable(ctx context.Context, pubEventID uuid.UUID, tableNumber int) error
	CreateBooking(ctx context.Context, pubEventID uuid.UUID, tableSize int, createdBy uuid.UUID) (*domain.Booking, error)
}

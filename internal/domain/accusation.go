package domain

import (
	"time"

	"github.com/google/uuid"
)

// Consequence is the sentence attached to a ratified accusation.
type Consequence struct {
	ID      uuid.UUID `json:"id"`
	Content string    `json:"content"`
}

// Ratification is the one-time peer confirmation of an accusation. The ferry
// service guarantees at most one per accusation; concurrent attempts have
// exactly one winner.
type Ratification struct {
	ID          uuid.UUID   `json:"id"`
	Consequence Consequence `json:"consequence"`
	CreatedBy   PersonLink  `json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Accusation is a claim that someone ferried. Immutable after creation
// except for the attachment of its Ratification.
type Accusation struct {
	ID           uuid.UUID     `json:"id"`
	Quote        string        `json:"quote"`
	Suspect      PersonLink    `json:"suspect"`
	CreatedBy    PersonLink    `json:"created_by"`
	Ratification *Ratification `json:"ratification"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Ratified reports whether the accusation has reached its terminal state.
func (a *Accusation) Ratified() bool {
	return a.Ratification != nil
}

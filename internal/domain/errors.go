package domain

import "errors"

var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
)

// Remote conflicts, authoritative on the ferry service side.
var (
	ErrBookingAlreadyExists = errors.New("a booking already exists for this pub event")
	ErrAlreadyRatified      = errors.New("accusation has already been ratified")
)

// User-input refusals, detected before any remote call.
var (
	ErrOwnAccusation   = errors.New("cannot ratify your own accusation")
	ErrAccusedRatifier = errors.New("cannot ratify an accusation against yourself")
)

var (
	ErrNoUpcomingPub = errors.New("no upcoming pub event")
	ErrNoSelection   = errors.New("no selection was made")
)

package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrVenueNotFound        = errors.New("venue not found")
	ErrOrganiserNotFound    = errors.New("organiser not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrShowNotFound         = errors.New("show not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrTicketHolderNotFound = errors.New("ticket holder not found")

	ErrShowCancelled     = errors.New("show is cancelled")
	ErrEventCancelled    = errors.New("event is cancelled")
	ErrSeatTaken         = errors.New("seat is already taken for this show")
	ErrCapacityExceeded  = errors.New("show has reached venue capacity")
	ErrAlreadyBooked     = errors.New("ticket holder already has an active booking for this show")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCancelViaCascade  = errors.New("shows are cancelled through the cancel endpoint, which also cancels their bookings")
	ErrBookingActive     = errors.New("booking is still active; cancel it before deleting")
	ErrDuplicateShow     = errors.New("a show for this event and date already exists")
	ErrDuplicate         = errors.New("duplicate entry")
	ErrHolderHasBookings = errors.New("ticket holder has active bookings and cannot be deleted")
	ErrHolderHasHistory  = errors.New("ticket holder has booking history; delete those bookings first")
	ErrConcurrentUpdate  = errors.New("conflicting concurrent update, retry the request")

	ErrInvalidPagination = errors.New("page and per_page must be positive integers")
)

const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"

	seatIndexName   = "idx_booking_seat_active"
	holderIndexName = "idx_booking_holder_active"
	showIndexName   = "idx_show_occurrence"
)

// uniqueViolation reports whether err is a postgres unique violation on the
// named constraint. The allocation engine leans on this: the database rejects
// the racing insert, and the constraint name tells us which invariant fired.
func uniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgUniqueViolation &&
		pgErr.ConstraintName == constraint
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		(pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected)
}

// runTx executes fn in a transaction, retrying exactly once on transient
// contention (serialization failure or deadlock). Contention that survives
// the retry is reported as ErrConcurrentUpdate so callers see a conflict,
// not a raw driver error.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := db.WithContext(ctx).Transaction(fn)
	if isTransient(err) {
		err = db.WithContext(ctx).Transaction(fn)
	}
	if isTransient(err) {
		return ErrConcurrentUpdate
	}
	return err
}

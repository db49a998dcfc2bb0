package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gigmate/gigmate/internal/models"
	"github.com/gigmate/gigmate/internal/repository"
	"github.com/gigmate/gigmate/pkg/rabbitmq"
	"gorm.io/gorm"
)

type CreateBookingInput struct {
	ShowID         uint
	TicketHolderID uint
	Section        string
	SeatNumber     *string
}

// BookingPage is one page of the deterministic booking listing.
type BookingPage struct {
	Items   []models.Booking
	Total   int64
	Page    int
	PerPage int
}

type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, page, perPage int) (*BookingPage, error)
	ConfirmBooking(ctx context.Context, id uint) (*models.Booking, error)
	CancelBooking(ctx context.Context, id uint) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id uint) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	showRepo    repository.ShowRepository
	eventRepo   repository.EventRepository
	venueRepo   repository.VenueRepository
	holderRepo  repository.TicketHolderRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	showRepo repository.ShowRepository,
	eventRepo repository.EventRepository,
	venueRepo repository.VenueRepository,
	holderRepo repository.TicketHolderRepository,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		showRepo:    showRepo,
		eventRepo:   eventRepo,
		venueRepo:   venueRepo,
		holderRepo:  holderRepo,
		publisher:   publisher,
	}
}

// CreateBooking is the allocation path. The show row lock serializes every
// allocation for a show, so the capacity count and the insert behave as one
// atomic step; the partial unique indexes catch seat and double-booking races
// at the database rather than with a check-then-act lookup.
func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	var result *models.Booking

	err := runTx(ctx, s.bookingRepo.GetDB(), func(tx *gorm.DB) error {
		show, err := s.showRepo.FindByIDForUpdate(ctx, tx, in.ShowID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShowNotFound
			}
			return err
		}
		if show.Status == models.ShowCancelled {
			return ErrShowCancelled
		}

		if _, err := s.holderRepo.FindByID(ctx, in.TicketHolderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketHolderNotFound
			}
			return err
		}

		event, err := s.eventRepo.FindByID(ctx, show.EventID)
		if err != nil {
			return err
		}

		// Shows at a confirmed venue are capacity-bounded; a show whose
		// event has no venue yet has no bound to enforce.
		if event.VenueID != nil {
			venue, err := s.venueRepo.FindByID(ctx, *event.VenueID)
			if err != nil {
				return err
			}
			active, err := s.bookingRepo.CountActiveByShow(ctx, tx, show.ID)
			if err != nil {
				return err
			}
			if active >= int64(venue.Capacity) {
				return ErrCapacityExceeded
			}
		}

		booking := &models.Booking{
			Reference:      uuid.NewString(),
			ShowID:         in.ShowID,
			TicketHolderID: in.TicketHolderID,
			Section:        in.Section,
			SeatNumber:     in.SeatNumber,
			Status:         models.BookingPending,
			BookingDate:    time.Now(),
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			switch {
			case uniqueViolation(err, seatIndexName):
				return ErrSeatTaken
			case uniqueViolation(err, holderIndexName):
				return ErrAlreadyBooked
			}
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", result)
	}
	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, page, perPage int) (*BookingPage, error) {
	if page < 1 || perPage < 1 {
		return nil, ErrInvalidPagination
	}

	total, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	// A page beyond the end is an empty result, not an error.
	items, err := s.bookingRepo.List(ctx, (page-1)*perPage, perPage)
	if err != nil {
		return nil, err
	}

	return &BookingPage{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return s.transition(ctx, id, models.BookingConfirmed, "booking.confirmed")
}

func (s *bookingService) CancelBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return s.transition(ctx, id, models.BookingCancelled, "booking.cancelled")
}

func (s *bookingService) transition(ctx context.Context, id uint, to models.BookingStatus, routingKey string) (*models.Booking, error) {
	var result *models.Booking

	err := runTx(ctx, s.bookingRepo.GetDB(), func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if !booking.Status.CanTransitionTo(to) {
			return ErrInvalidTransition
		}
		if err := s.bookingRepo.UpdateStatus(ctx, tx, booking.ID, to); err != nil {
			return err
		}

		booking.Status = to
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(routingKey, result)
	}
	return result, nil
}

// DeleteBooking removes the row outright. Distinct from cancellation: the
// record disappears, so it is only allowed once the booking is no longer
// active.
func (s *bookingService) DeleteBooking(ctx context.Context, id uint) error {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if booking.Active() {
		return ErrBookingActive
	}
	return s.bookingRepo.Delete(ctx, id)
}

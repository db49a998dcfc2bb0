package service

import (
	"context"
	"errors"
	"time"

	"github.com/gigmate/gigmate/internal/models"
	"github.com/gigmate/gigmate/internal/repository"
	"github.com/gigmate/gigmate/pkg/rabbitmq"
	"gorm.io/gorm"
)

// CancelResult reports what a cancellation cascade touched.
type CancelResult struct {
	ShowsCancelled    int64 `json:"shows_cancelled"`
	BookingsCancelled int64 `json:"bookings_cancelled"`
	AlreadyCancelled  bool  `json:"already_cancelled"`
}

// CascadeService propagates cancellations: a cancelled show takes its active
// bookings with it, a cancelled event takes every show. Each cascade is one
// transaction, so a cancelled show with a still-active booking is never
// observable.
type CascadeService interface {
	CancelShow(ctx context.Context, showID uint) (*CancelResult, error)
	CancelEvent(ctx context.Context, eventID uint) (*CancelResult, error)
}

type cascadeService struct {
	showRepo    repository.ShowRepository
	eventRepo   repository.EventRepository
	bookingRepo repository.BookingRepository
	publisher   *rabbitmq.Publisher
}

func NewCascadeService(
	showRepo repository.ShowRepository,
	eventRepo repository.EventRepository,
	bookingRepo repository.BookingRepository,
	publisher *rabbitmq.Publisher,
) CascadeService {
	return &cascadeService{
		showRepo:    showRepo,
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
		publisher:   publisher,
	}
}

func (s *cascadeService) CancelShow(ctx context.Context, showID uint) (*CancelResult, error) {
	var result CancelResult

	err := runTx(ctx, s.bookingRepo.GetDB(), func(tx *gorm.DB) error {
		show, err := s.showRepo.FindByIDForUpdate(ctx, tx, showID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShowNotFound
			}
			return err
		}

		// Cancelling an already-cancelled show is a no-op success: the end
		// state is identical.
		if show.Status == models.ShowCancelled {
			result.AlreadyCancelled = true
			return nil
		}

		n, err := s.cancelShowLocked(ctx, tx, show)
		if err != nil {
			return err
		}
		result.ShowsCancelled = 1
		result.BookingsCancelled = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil && !result.AlreadyCancelled {
		_ = s.publisher.Publish("show.cancelled", map[string]any{"show_id": showID})
	}
	return &result, nil
}

func (s *cascadeService) CancelEvent(ctx context.Context, eventID uint) (*CancelResult, error) {
	var result CancelResult

	err := runTx(ctx, s.bookingRepo.GetDB(), func(tx *gorm.DB) error {
		event, err := s.eventRepo.FindByIDForUpdate(ctx, tx, eventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if event.Cancelled() {
			result.AlreadyCancelled = true
			return nil
		}

		shows, err := s.showRepo.FindByEventForUpdate(ctx, tx, eventID)
		if err != nil {
			return err
		}
		for i := range shows {
			if shows[i].Status == models.ShowCancelled {
				continue
			}
			n, err := s.cancelShowLocked(ctx, tx, &shows[i])
			if err != nil {
				return err
			}
			result.ShowsCancelled++
			result.BookingsCancelled += n
		}

		return s.eventRepo.MarkCancelled(ctx, tx, eventID, time.Now())
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil && !result.AlreadyCancelled {
		_ = s.publisher.Publish("event.cancelled", map[string]any{"event_id": eventID})
	}
	return &result, nil
}

// cancelShowLocked does the per-show fan-out inside an open transaction; the
// caller holds the show row lock.
func (s *cascadeService) cancelShowLocked(ctx context.Context, tx *gorm.DB, show *models.Show) (int64, error) {
	if !show.Status.CanTransitionTo(models.ShowCancelled) {
		return 0, ErrInvalidTransition
	}
	if err := s.showRepo.UpdateStatus(ctx, tx, show.ID, models.ShowCancelled); err != nil {
		return 0, err
	}
	return s.bookingRepo.CancelActiveByShow(ctx, tx, show.ID)
}

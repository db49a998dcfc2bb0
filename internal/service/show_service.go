package service

import (
	"context"
	"errors"
	"time"

	"github.com/gigmate/gigmate/internal/models"
	"github.com/gigmate/gigmate/internal/repository"
	"gorm.io/gorm"
)

type UpdateShowInput struct {
	DateTime *time.Time
	Status   *models.ShowStatus
}

type ShowService interface {
	CreateShow(ctx context.Context, eventID uint, dateTime time.Time) (*models.Show, error)
	GetShow(ctx context.Context, id uint) (*models.Show, error)
	ListShows(ctx context.Context) ([]models.Show, error)
	UpdateShow(ctx context.Context, id uint, in UpdateShowInput) (*models.Show, error)
}

type showService struct {
	showRepo  repository.ShowRepository
	eventRepo repository.EventRepository
}

func NewShowService(showRepo repository.ShowRepository, eventRepo repository.EventRepository) ShowService {
	return &showService{showRepo: showRepo, eventRepo: eventRepo}
}

func (s *showService) CreateShow(ctx context.Context, eventID uint, dateTime time.Time) (*models.Show, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if event.Cancelled() {
		return nil, ErrEventCancelled
	}

	show := &models.Show{
		EventID:  eventID,
		DateTime: dateTime,
		Status:   models.ShowScheduled,
	}
	if err := s.showRepo.Create(ctx, show); err != nil {
		if uniqueViolation(err, showIndexName) {
			return nil, ErrDuplicateShow
		}
		return nil, err
	}
	return show, nil
}

func (s *showService) GetShow(ctx context.Context, id uint) (*models.Show, error) {
	show, err := s.showRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return show, nil
}

func (s *showService) ListShows(ctx context.Context) ([]models.Show, error) {
	return s.showRepo.FindAll(ctx)
}

// UpdateShow reschedules a show. A date change without an explicit status
// flips SCHEDULED to RESCHEDULED; explicit status changes go through the
// transition table and fail rather than being silently ignored. CANCELLED is
// not reachable here: cancellation cascades to the show's bookings, so it
// only happens through the cascade.
func (s *showService) UpdateShow(ctx context.Context, id uint, in UpdateShowInput) (*models.Show, error) {
	if in.Status != nil && *in.Status == models.ShowCancelled {
		return nil, ErrCancelViaCascade
	}

	var result *models.Show

	err := runTx(ctx, s.showRepo.GetDB(), func(tx *gorm.DB) error {
		show, err := s.showRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShowNotFound
			}
			return err
		}

		next := show.Status
		if in.Status != nil {
			if !in.Status.Valid() {
				return ErrInvalidTransition
			}
			next = *in.Status
		} else if in.DateTime != nil && !in.DateTime.Equal(show.DateTime) && show.Status == models.ShowScheduled {
			next = models.ShowRescheduled
		}

		if next != show.Status && !show.Status.CanTransitionTo(next) {
			return ErrInvalidTransition
		}

		if in.DateTime != nil {
			show.DateTime = *in.DateTime
		}
		show.Status = next

		if err := tx.WithContext(ctx).Save(show).Error; err != nil {
			if uniqueViolation(err, showIndexName) {
				return ErrDuplicateShow
			}
			return err
		}
		result = show
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

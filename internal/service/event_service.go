package service

import (
	"context"
	"errors"

	"github.com/gigmate/gigmate/internal/models"
	"github.com/gigmate/gigmate/internal/repository"
	"gorm.io/gorm"
)

type CreateEventInput struct {
	Title         string
	Description   string
	DurationHours float64
	OrganiserID   *uint
	VenueID       *uint
}

type UpdateEventInput struct {
	Title         *string
	Description   *string
	DurationHours *float64
	OrganiserID   *uint
	VenueID       *uint
}

type EventService interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*models.Event, error)
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	UpdateEvent(ctx context.Context, id uint, in UpdateEventInput) (*models.Event, error)
}

type eventService struct {
	eventRepo     repository.EventRepository
	organiserRepo repository.OrganiserRepository
	venueRepo     repository.VenueRepository
}

func NewEventService(
	eventRepo repository.EventRepository,
	organiserRepo repository.OrganiserRepository,
	venueRepo repository.VenueRepository,
) EventService {
	return &eventService{
		eventRepo:     eventRepo,
		organiserRepo: organiserRepo,
		venueRepo:     venueRepo,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, in CreateEventInput) (*models.Event, error) {
	if in.OrganiserID != nil {
		if _, err := s.organiserRepo.FindByID(ctx, *in.OrganiserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrganiserNotFound
			}
			return nil, err
		}
	}
	if in.VenueID != nil {
		if _, err := s.venueRepo.FindByID(ctx, *in.VenueID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVenueNotFound
			}
			return nil, err
		}
	}

	event := &models.Event{
		Title:         in.Title,
		Description:   in.Description,
		DurationHours: in.DurationHours,
		OrganiserID:   in.OrganiserID,
		VenueID:       in.VenueID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

func (s *eventService) UpdateEvent(ctx context.Context, id uint, in UpdateEventInput) (*models.Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.DurationHours != nil {
		event.DurationHours = *in.DurationHours
	}
	if in.OrganiserID != nil {
		if _, err := s.organiserRepo.FindByID(ctx, *in.OrganiserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrganiserNotFound
			}
			return nil, err
		}
		event.OrganiserID = in.OrganiserID
	}
	if in.VenueID != nil {
		if _, err := s.venueRepo.FindByID(ctx, *in.VenueID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVenueNotFound
			}
			return nil, err
		}
		event.VenueID = in.VenueID
	}

	if err := s.eventRepo.Save(ctx, event); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return event, nil
}

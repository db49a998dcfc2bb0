package service

import (
	"context"
	"errors"

	"github.com/gigmate/gigmate/internal/models"
	"github.com/gigmate/gigmate/internal/repository"
	"gorm.io/gorm"
)

type UpdateVenueInput struct {
	Name     *string
	Location *string
	Capacity *int
}

type VenueService interface {
	CreateVenue(ctx context.Context, venue *models.Venue) error
	GetVenue(ctx context.Context, id uint) (*models.Venue, error)
	ListVenues(ctx context.Context) ([]models.Venue, error)
	UpdateVenue(ctx context.Context, id uint, in UpdateVenueInput) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error
}

type venueService struct {
	repo repository.VenueRepository
}

func NewVenueService(repo repository.VenueRepository) VenueService {
	return &venueService{repo: repo}
}

func (s *venueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if err := s.repo.Create(ctx, venue); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *venueService) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return venue, nil
}

func (s *venueService) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.repo.FindAll(ctx)
}

func (s *venueService) UpdateVenue(ctx context.Context, id uint, in UpdateVenueInput) (*models.Venue, error) {
	venue, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		venue.Name = *in.Name
	}
	if in.Location != nil {
		venue.Location = *in.Location
	}
	if in.Capacity != nil {
		venue.Capacity = *in.Capacity
	}

	if err := s.repo.Save(ctx, venue); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return venue, nil
}

// DeleteVenue removes the venue; dependent events keep their rows with
// venue_id cleared ("Venue To Be Announced").
func (s *venueService) DeleteVenue(ctx context.Context, id uint) error {
	if _, err := s.GetVenue(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

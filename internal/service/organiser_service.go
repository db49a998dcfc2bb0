package service

import (
	"context"
	"errors"

	"github.com/gigmate/gigmate/internal/models"
	"github.com/gigmate/gigmate/internal/repository"
	"gorm.io/gorm"
)

type UpdateOrganiserInput struct {
	FullName    *string
	Email       *string
	PhoneNumber *string
}

type OrganiserService interface {
	CreateOrganiser(ctx context.Context, organiser *models.Organiser) error
	GetOrganiser(ctx context.Context, id uint) (*models.Organiser, error)
	ListOrganisers(ctx context.Context) ([]models.Organiser, error)
	UpdateOrganiser(ctx context.Context, id uint, in UpdateOrganiserInput) (*models.Organiser, error)
	DeleteOrganiser(ctx context.Context, id uint) error
}

type organiserService struct {
	repo repository.OrganiserRepository
}

func NewOrganiserService(repo repository.OrganiserRepository) OrganiserService {
	return &organiserService{repo: repo}
}

func (s *organiserService) CreateOrganiser(ctx context.Context, organiser *models.Organiser) error {
	if err := s.repo.Create(ctx, organiser); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *organiserService) GetOrganiser(ctx context.Context, id uint) (*models.Organiser, error) {
	organiser, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganiserNotFound
		}
		return nil, err
	}
	return organiser, nil
}

func (s *organiserService) ListOrganisers(ctx context.Context) ([]models.Organiser, error) {
	return s.repo.FindAll(ctx)
}

func (s *organiserService) UpdateOrganiser(ctx context.Context, id uint, in UpdateOrganiserInput) (*models.Organiser, error) {
	organiser, err := s.GetOrganiser(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		organiser.FullName = *in.FullName
	}
	if in.Email != nil {
		organiser.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		organiser.PhoneNumber = *in.PhoneNumber
	}

	if err := s.repo.Save(ctx, organiser); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return organiser, nil
}

// DeleteOrganiser removes the organiser; their events keep running with
// organiser_id cleared ("To Be Determined").
func (s *organiserService) DeleteOrganiser(ctx context.Context, id uint) error {
	if _, err := s.GetOrganiser(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

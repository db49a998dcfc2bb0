package service

import (
	"context"
	"errors"

	"github.com/gigmate/gigmate/internal/models"
	"github.com/gigmate/gigmate/internal/repository"
	"gorm.io/gorm"
)

type UpdateTicketHolderInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
}

type TicketHolderService interface {
	CreateTicketHolder(ctx context.Context, holder *models.TicketHolder) error
	GetTicketHolder(ctx context.Context, id uint) (*models.TicketHolder, error)
	ListTicketHolders(ctx context.Context) ([]models.TicketHolder, error)
	UpdateTicketHolder(ctx context.Context, id uint, in UpdateTicketHolderInput) (*models.TicketHolder, error)
	DeleteTicketHolder(ctx context.Context, id uint) error
}

type ticketHolderService struct {
	repo        repository.TicketHolderRepository
	bookingRepo repository.BookingRepository
}

func NewTicketHolderService(repo repository.TicketHolderRepository, bookingRepo repository.BookingRepository) TicketHolderService {
	return &ticketHolderService{repo: repo, bookingRepo: bookingRepo}
}

func (s *ticketHolderService) CreateTicketHolder(ctx context.Context, holder *models.TicketHolder) error {
	if err := s.repo.Create(ctx, holder); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *ticketHolderService) GetTicketHolder(ctx context.Context, id uint) (*models.TicketHolder, error) {
	holder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketHolderNotFound
		}
		return nil, err
	}
	return holder, nil
}

func (s *ticketHolderService) ListTicketHolders(ctx context.Context) ([]models.TicketHolder, error) {
	return s.repo.FindAll(ctx)
}

func (s *ticketHolderService) UpdateTicketHolder(ctx context.Context, id uint, in UpdateTicketHolderInput) (*models.TicketHolder, error) {
	holder, err := s.GetTicketHolder(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		holder.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		holder.LastName = *in.LastName
	}
	if in.Email != nil {
		holder.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		holder.PhoneNumber = *in.PhoneNumber
	}

	if err := s.repo.Save(ctx, holder); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return holder, nil
}

// DeleteTicketHolder is refused while the holder still has PENDING or
// CONFIRMED bookings. The bookings FK is RESTRICT, so even cancelled rows
// keep the holder around until they are explicitly deleted; that rejection
// is reported as a conflict, not a bare database error.
func (s *ticketHolderService) DeleteTicketHolder(ctx context.Context, id uint) error {
	if _, err := s.GetTicketHolder(ctx, id); err != nil {
		return err
	}

	active, err := s.bookingRepo.CountActiveByHolder(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrHolderHasBookings
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return ErrHolderHasHistory
		}
		return err
	}
	return nil
}

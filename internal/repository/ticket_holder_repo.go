package repository

import (
	"context"

	"github.com/gigmate/gigmate/internal/models"
	"gorm.io/gorm"
)

type TicketHolderRepository interface {
	Create(ctx context.Context, holder *models.TicketHolder) error
	FindByID(ctx context.Context, id uint) (*models.TicketHolder, error)
	FindAll(ctx context.Context) ([]models.TicketHolder, error)
	Save(ctx context.Context, holder *models.TicketHolder) error
	Delete(ctx context.Context, id uint) error
}

type ticketHolderRepository struct {
	db *gorm.DB
}

func NewTicketHolderRepository(db *gorm.DB) TicketHolderRepository {
	return &ticketHolderRepository{db: db}
}

func (r *ticketHolderRepository) Create(ctx context.Context, holder *models.TicketHolder) error {
	return r.db.WithContext(ctx).Create(holder).Error
}

func (r *ticketHolderRepository) FindByID(ctx context.Context, id uint) (*models.TicketHolder, error) {
	var holder models.TicketHolder
	if err := r.db.WithContext(ctx).First(&holder, id).Error; err != nil {
		return nil, err
	}
	return &holder, nil
}

func (r *ticketHolderRepository) FindAll(ctx context.Context) ([]models.TicketHolder, error) {
	var holders []models.TicketHolder
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&holders).Error; err != nil {
		return nil, err
	}
	return holders, nil
}

func (r *ticketHolderRepository) Save(ctx context.Context, holder *models.TicketHolder) error {
	return r.db.WithContext(ctx).Save(holder).Error
}

func (r *ticketHolderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.TicketHolder{}, id).Error
}

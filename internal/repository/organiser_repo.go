package repository

import (
	"context"

	"github.com/gigmate/gigmate/internal/models"
	"gorm.io/gorm"
)

type OrganiserRepository interface {
	Create(ctx context.Context, organiser *models.Organiser) error
	FindByID(ctx context.Context, id uint) (*models.Organiser, error)
	FindAll(ctx context.Context) ([]models.Organiser, error)
	Save(ctx context.Context, organiser *models.Organiser) error
	Delete(ctx context.Context, id uint) error
}

type organiserRepository struct {
	db *gorm.DB
}

func NewOrganiserRepository(db *gorm.DB) OrganiserRepository {
	return &organiserRepository{db: db}
}

func (r *organiserRepository) Create(ctx context.Context, organiser *models.Organiser) error {
	return r.db.WithContext(ctx).Create(organiser).Error
}

func (r *organiserRepository) FindByID(ctx context.Context, id uint) (*models.Organiser, error) {
	var organiser models.Organiser
	if err := r.db.WithContext(ctx).First(&organiser, id).Error; err != nil {
		return nil, err
	}
	return &organiser, nil
}

func (r *organiserRepository) FindAll(ctx context.Context) ([]models.Organiser, error) {
	var organisers []models.Organiser
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&organisers).Error; err != nil {
		return nil, err
	}
	return organisers, nil
}

func (r *organiserRepository) Save(ctx context.Context, organiser *models.Organiser) error {
	return r.db.WithContext(ctx).Save(organiser).Error
}

func (r *organiserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Organiser{}, id).Error
}

package repository

import (
	"context"

	"github.com/gigmate/gigmate/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	FindByID(ctx context.Context, id uint) (*models.Show, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Show, error)
	FindAll(ctx context.Context) ([]models.Show, error)
	FindByEventForUpdate(ctx context.Context, tx *gorm.DB, eventID uint) ([]models.Show, error)
	Save(ctx context.Context, show *models.Show) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, showID uint, status models.ShowStatus) error
	GetDB() *gorm.DB
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	return r.db.WithContext(ctx).Create(show).Error
}

func (r *showRepository) FindByID(ctx context.Context, id uint) (*models.Show, error) {
	var show models.Show
	if err := r.db.WithContext(ctx).First(&show, id).Error; err != nil {
		return nil, err
	}
	return &show, nil
}

// FindByIDForUpdate acquires a row lock on the show within the given
// transaction. Allocation and cancellation serialize on this lock, which is
// what makes their check+write pairs atomic per show.
func (r *showRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Show, error) {
	var show models.Show
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&show, id).Error; err != nil {
		return nil, err
	}
	return &show, nil
}

func (r *showRepository) FindAll(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&shows).Error; err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByEventForUpdate(ctx context.Context, tx *gorm.DB, eventID uint) ([]models.Show, error) {
	var shows []models.Show
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) Save(ctx context.Context, show *models.Show) error {
	return r.db.WithContext(ctx).Save(show).Error
}

func (r *showRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, showID uint, status models.ShowStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Show{}).
		Where("id = ?", showID).
		Update("status", status).Error
}

package repository

import (
	"context"

	"github.com/gigmate/gigmate/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error)
	List(ctx context.Context, offset, limit int) ([]models.Booking, error)
	Count(ctx context.Context) (int64, error)
	CountActiveByShow(ctx context.Context, tx *gorm.DB, showID uint) (int64, error)
	CountActiveByHolder(ctx context.Context, holderID uint) (int64, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error
	CancelActiveByShow(ctx context.Context, tx *gorm.DB, showID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByIDForUpdate locks the booking row so concurrent status transitions
// on the same booking serialize.
func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns a deterministic page: id ascending, so repeated calls against
// an unchanged data set see identical pages.
func (r *bookingRepository) List(ctx context.Context, offset, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).Count(&count).Error
	return count, err
}

func (r *bookingRepository) CountActiveByShow(ctx context.Context, tx *gorm.DB, showID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("show_id = ? AND status <> ?", showID, models.BookingCancelled).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) CountActiveByHolder(ctx context.Context, holderID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("ticket_holder_id = ? AND status <> ?", holderID, models.BookingCancelled).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

// CancelActiveByShow flips every PENDING/CONFIRMED booking on the show to
// CANCELLED in one statement and reports how many rows changed.
func (r *bookingRepository) CancelActiveByShow(ctx context.Context, tx *gorm.DB, showID uint) (int64, error) {
	result := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("show_id = ? AND status IN ?", showID, []models.BookingStatus{models.BookingPending, models.BookingConfirmed}).
		Update("status", models.BookingCancelled)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

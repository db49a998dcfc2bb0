package service

import (
	"context"
	"testing"
	"time"

	"github.com/gigmate/gigmate/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock ShowRepository ---

type mockShowRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.Show, error)
	created    []*models.Show
}

func (m *mockShowRepo) Create(ctx context.Context, show *models.Show) error {
	m.created = append(m.created, show)
	return nil
}
func (m *mockShowRepo) FindByID(ctx context.Context, id uint) (*models.Show, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockShowRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Show, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockShowRepo) FindAll(ctx context.Context) ([]models.Show, error) { return nil, nil }
func (m *mockShowRepo) FindByEventForUpdate(ctx context.Context, tx *gorm.DB, eventID uint) ([]models.Show, error) {
	return nil, nil
}
func (m *mockShowRepo) Save(ctx context.Context, show *models.Show) error { return nil }
func (m *mockShowRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, showID uint, status models.ShowStatus) error {
	return nil
}
func (m *mockShowRepo) GetDB() *gorm.DB { return nil }

// --- Tests ---

// Cancellation only happens through the cascade; a status update to
// CANCELLED must not slip past the booking fan-out.
func TestUpdateShow_CancelledStatusRejected(t *testing.T) {
	showRepo := &mockShowRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Show, error) {
			return &models.Show{ID: id, Status: models.ShowScheduled}, nil
		},
	}

	svc := NewShowService(showRepo, &mockEventRepo{})

	cancelled := models.ShowCancelled
	_, err := svc.UpdateShow(context.Background(), 1, UpdateShowInput{Status: &cancelled})
	assert.ErrorIs(t, err, ErrCancelViaCascade)
}

func TestCreateShow_CancelledEvent(t *testing.T) {
	now := time.Now()
	eventRepo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return &models.Event{ID: id, Title: "Farewell Run", CancelledAt: &now}, nil
		},
	}
	showRepo := &mockShowRepo{}

	svc := NewShowService(showRepo, eventRepo)

	_, err := svc.CreateShow(context.Background(), 1, time.Date(2026, 12, 1, 19, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrEventCancelled)
	assert.Empty(t, showRepo.created)
}

func TestCreateShow_UnknownEvent(t *testing.T) {
	eventRepo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewShowService(&mockShowRepo{}, eventRepo)

	_, err := svc.CreateShow(context.Background(), 42, time.Date(2026, 12, 1, 19, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrEventNotFound)
}

package database

import (
	"log"

	"github.com/gigmate/gigmate/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate creates the schema plus the partial unique indexes the allocation
// engine relies on. The indexes only cover non-cancelled bookings, so a seat
// (or a holder's slot) frees up again once its booking is cancelled.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Venue{},
		&models.Organiser{},
		&models.Event{},
		&models.Show{},
		&models.TicketHolder{},
		&models.Booking{},
	); err != nil {
		return err
	}

	// One non-cancelled booking per (show, section, seat): the no-oversell
	// guarantee for assigned seats. Checked by the database inside the same
	// transaction as the insert, never by a separate lookup.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_seat_active
		ON bookings (show_id, section, seat_number)
		WHERE status <> 'CANCELLED' AND seat_number IS NOT NULL
	`).Error; err != nil {
		return err
	}

	// One non-cancelled booking per holder per show.
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_holder_active
		ON bookings (show_id, ticket_holder_id)
		WHERE status <> 'CANCELLED'
	`).Error
}

package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gigmate/gigmate/internal/models"
	"gorm.io/gorm"
)

// Seed populates demo data for local development. Insert order follows the
// foreign key chain: venues and organisers first, bookings last.
func Seed(db *gorm.DB) error {
	venues := []models.Venue{
		{Name: "Rod Laver Arena", Location: "200 Batman Ave, Melbourne VIC 3004", Capacity: 15000},
		{Name: "Hordern Pavilion", Location: "1 Driver Ave, Moore Park NSW 2021", Capacity: 5000},
	}
	if err := db.Create(&venues).Error; err != nil {
		return fmt.Errorf("seed venues: %w", err)
	}

	organisers := []models.Organiser{
		{FullName: "Johnnie Marks", Email: "johnnie@email.com", PhoneNumber: "+61232333456"},
		{FullName: "Georgia Pierce-Allen", Email: "georgia@email.com", PhoneNumber: "+61888976543"},
	}
	if err := db.Create(&organisers).Error; err != nil {
		return fmt.Errorf("seed organisers: %w", err)
	}

	events := []models.Event{
		{
			Title:         "Linkin Park: From Zero World Tour",
			Description:   "The band performs new hits alongside iconic anthems spanning their 20+ year career.",
			DurationHours: 2.25,
			OrganiserID:   &organisers[0].ID,
			VenueID:       &venues[0].ID,
		},
		{
			Title:         "Halsey: For My Last Trick",
			Description:   "Celebrating the 10th anniversary of the triple platinum debut album BADLANDS.",
			DurationHours: 2.5,
			OrganiserID:   &organisers[1].ID,
			VenueID:       &venues[1].ID,
		},
	}
	if err := db.Create(&events).Error; err != nil {
		return fmt.Errorf("seed events: %w", err)
	}

	shows := []models.Show{
		{EventID: events[0].ID, DateTime: time.Now().AddDate(0, 1, 0), Status: models.ShowScheduled},
		{EventID: events[0].ID, DateTime: time.Now().AddDate(0, 1, 1), Status: models.ShowScheduled},
		{EventID: events[1].ID, DateTime: time.Now().AddDate(0, 2, 0), Status: models.ShowScheduled},
	}
	if err := db.Create(&shows).Error; err != nil {
		return fmt.Errorf("seed shows: %w", err)
	}

	holders := []models.TicketHolder{
		{FirstName: "Bobby", LastName: "Mac Manus", Email: "bobby@email.com", PhoneNumber: "+64424111222"},
		{FirstName: "Susie", LastName: "Tinsdale", Email: "susie@email.com", PhoneNumber: "+64232666777"},
		{FirstName: "Josie", LastName: "Roberts", Email: "josie@email.com", PhoneNumber: "+64232444333"},
		{FirstName: "Lottie", LastName: "Timins", Email: "lottie@email.com", PhoneNumber: "+64424555688"},
	}
	if err := db.Create(&holders).Error; err != nil {
		return fmt.Errorf("seed ticket holders: %w", err)
	}

	seatA12 := "A12"
	bookings := []models.Booking{
		{
			Reference:      uuid.NewString(),
			ShowID:         shows[0].ID,
			TicketHolderID: holders[0].ID,
			Section:        "seated-L1",
			SeatNumber:     &seatA12,
			Status:         models.BookingConfirmed,
			BookingDate:    time.Now(),
		},
		{
			Reference:      uuid.NewString(),
			ShowID:         shows[0].ID,
			TicketHolderID: holders[1].ID,
			Section:        "standing",
			Status:         models.BookingPending,
			BookingDate:    time.Now(),
		},
	}
	if err := db.Create(&bookings).Error; err != nil {
		return fmt.Errorf("seed bookings: %w", err)
	}

	return nil
}

package database

import (
	"log"
	"time"

	"github.com/clienthub/backend/internal/models"
	"gorm.io/gorm"
)

// SeedDevData populates the database with development test data.
// Idempotent: skips if data already exists.
func SeedDevData(db *gorm.DB) error {
	const devUserID = "dev-firebase-uid-12345"

	// Check if seed data already exists
	var existingUser models.User
	result := db.Where("id = ?", devUserID).First(&existingUser)
	if result.Error == nil {
		log.Println("Seed data already exists, skipping")
		return nil
	}

	user := models.User{
		ID:            devUserID,
		Email:         "dev@clienthub.local",
		DisplayName:   "Dev User",
		EmailVerified: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	customers := []models.Customer{
		{UserID: user.ID, FirstName: "Jon", LastName: "Doe", Email: "jon.doe@example.com"},
		{UserID: user.ID, FirstName: "Marjorie", LastName: "Smith", Email: "marjorie.smith@example.com"},
		{UserID: user.ID, FirstName: "Johnathan", LastName: "Byrne", Email: "johnathan.byrne@example.com"},
	}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			return err
		}
	}

	work := "work"
	phone := models.CustomerPhone{
		CustomerID:  customers[0].ID,
		PhoneNumber: "+1-555-0100",
		Designation: "mobile",
	}
	address := models.CustomerAddress{
		CustomerID:   customers[0].ID,
		AddressLine1: "100 Main St",
		City:         "Chicago",
		Country:      "USA",
		AddressType:  &work,
	}
	note := models.CustomerNote{
		CustomerID: customers[0].ID,
		Note:       "Prefers email contact.",
	}
	desc := "Follow up about the renewal"
	reminder := models.CustomerReminder{
		CustomerID:  customers[0].ID,
		UserID:      user.ID,
		Description: &desc,
		DueDate:     time.Now().Add(7 * 24 * time.Hour),
		Priority:    models.PriorityHigh,
	}

	for _, rec := range []any{&phone, &address, &note, &reminder} {
		if err := db.Create(rec).Error; err != nil {
			return err
		}
	}

	log.Println("Seeded dev data: 1 user, 3 customers, 1 phone, 1 address, 1 note, 1 reminder")
	return nil
}

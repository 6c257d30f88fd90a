package store

import (
	"context"
	"testing"

	"github.com/clienthub/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCustomerCreateRejectsRepeatedNestedPhones(t *testing.T) {
	// The duplicate check runs before any database access, so no connection
	// is needed to exercise it.
	s := &customerStore{uniquePhones: true}

	customer := &models.Customer{
		UserID:    "user-1",
		FirstName: "Jon",
		LastName:  "Doe",
		Email:     "jon.doe@example.com",
		Phones: []models.CustomerPhone{
			{PhoneNumber: "+1 555 0100", Designation: "mobile"},
			{PhoneNumber: "+1 555 0100", Designation: "home"},
		},
	}

	err := s.Create(context.Background(), customer)
	assert.ErrorIs(t, err, ErrDuplicatePhone)
}

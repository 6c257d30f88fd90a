package store

import (
	"context"
	"math"
	"time"

	"github.com/clienthub/backend/internal/models"
	"gorm.io/gorm"
)

// Reminder listing status filters. Overdue means still open with a due date
// in the past; all is the unfiltered default.
const (
	ReminderStatusActive    = "active"
	ReminderStatusOverdue   = "overdue"
	ReminderStatusCompleted = "completed"
	ReminderStatusAll       = "all"
)

// ReminderStatuses lists the accepted status filter values.
var ReminderStatuses = []string{
	ReminderStatusActive,
	ReminderStatusOverdue,
	ReminderStatusCompleted,
	ReminderStatusAll,
}

// ReminderCounts breaks a user's reminders down by completion state.
type ReminderCounts struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Overdue   int64 `json:"overdue"`
	Completed int64 `json:"completed"`
}

// ReminderAnalytics is the per-user reminder summary. CompletionRate is
// completed over total, rounded to two decimal places, zero when the user
// has no reminders.
type ReminderAnalytics struct {
	Counts         ReminderCounts `json:"counts"`
	CompletionRate float64        `json:"completionRate"`
}

type reminderStore struct {
	db *gorm.DB
}

// Open reminders sort first, then by due date, matching the follow-up view.
const reminderOrder = "date_completed ASC NULLS FIRST, due_date ASC"

func (s *reminderStore) ListByCustomer(ctx context.Context, customerID, userID string) ([]models.CustomerReminder, error) {
	var reminders []models.CustomerReminder
	err := s.db.WithContext(ctx).
		Where("customer_id = ? AND user_id = ?", customerID, userID).
		Order(reminderOrder).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (s *reminderStore) ListByOwner(ctx context.Context, userID, status string, includeCustomer bool) ([]models.CustomerReminder, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	switch status {
	case ReminderStatusActive:
		q = q.Where("date_completed IS NULL")
	case ReminderStatusOverdue:
		q = q.Where("date_completed IS NULL AND due_date < ?", time.Now())
	case ReminderStatusCompleted:
		q = q.Where("date_completed IS NOT NULL")
	}
	if includeCustomer {
		q = q.Preload("Customer")
	}
	var reminders []models.CustomerReminder
	if err := q.Order(reminderOrder).Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (s *reminderStore) Analytics(ctx context.Context, userID string) (*ReminderAnalytics, error) {
	var total, completed, overdue int64

	err := s.db.WithContext(ctx).Model(&models.CustomerReminder{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Model(&models.CustomerReminder{}).
		Where("user_id = ? AND date_completed IS NOT NULL", userID).
		Count(&completed).Error
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Model(&models.CustomerReminder{}).
		Where("user_id = ? AND date_completed IS NULL AND due_date < ?", userID, time.Now()).
		Count(&overdue).Error
	if err != nil {
		return nil, err
	}

	analytics := &ReminderAnalytics{
		Counts: ReminderCounts{
			Total:     total,
			Active:    total - completed,
			Overdue:   overdue,
			Completed: completed,
		},
	}
	if total > 0 {
		analytics.CompletionRate = math.Round(float64(completed)/float64(total)*100) / 100
	}
	return analytics, nil
}

func (s *reminderStore) Create(ctx context.Context, reminder *models.CustomerReminder) error {
	return s.db.WithContext(ctx).Create(reminder).Error
}

func (s *reminderStore) Get(ctx context.Context, id, customerID, userID string) (*models.CustomerReminder, error) {
	var reminder models.CustomerReminder
	err := s.db.WithContext(ctx).
		Where("id = ? AND customer_id = ? AND user_id = ?", id, customerID, userID).
		First(&reminder).Error
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (s *reminderStore) Update(ctx context.Context, reminder *models.CustomerReminder) error {
	// Select all mutable columns so clearing DateCompleted back to nil
	// (reopening) is written rather than skipped as a zero value.
	return s.db.WithContext(ctx).
		Model(reminder).
		Select("Description", "DueDate", "DateCompleted", "Priority").
		Updates(reminder).Error
}

func (s *reminderStore) Delete(ctx context.Context, reminder *models.CustomerReminder) error {
	return s.db.WithContext(ctx).Delete(reminder).Error
}

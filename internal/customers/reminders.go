package customers

import (
	"net/http"
	"time"

	"github.com/clienthub/backend/internal/auth"
	"github.com/clienthub/backend/internal/httperr"
	"github.com/clienthub/backend/internal/models"
	"github.com/clienthub/backend/internal/store"
	"github.com/clienthub/backend/internal/validate"
	"github.com/gin-gonic/gin"
)

func registerReminders(grp gin.IRouter, reminders store.ReminderStore) {
	grp.GET("", HandleListReminders(reminders))
	grp.POST("", HandleCreateReminder(reminders))
	grp.GET("/:id", HandleGetReminder(reminders))
	grp.PUT("/:id", HandleUpdateReminder(reminders))
	grp.PATCH("/:id", HandlePatchReminder(reminders))
	grp.DELETE("/:id", HandleDeleteReminder(reminders))
}

func HandleListReminders(reminders store.ReminderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := reminders.ListByCustomer(c.Request.Context(), ownedCustomer(c).ID, auth.Subject(c))
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Reminder"))
			return
		}
		if list == nil {
			list = []models.CustomerReminder{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// reminderListQuery validates the strict query shape of the cross-customer
// listing: only status and include are recognized, and status is limited to
// the closed filter set.
func reminderListQuery(c *gin.Context) (status string, includeCustomer bool, violations []httperr.FieldError) {
	for key := range c.Request.URL.Query() {
		if key != "status" && key != "include" {
			violations = append(violations, httperr.FieldError{
				Field:   key,
				Message: "unknown query parameter",
			})
		}
	}

	status = c.DefaultQuery("status", store.ReminderStatusAll)
	if v := validate.Enum("status", status, store.ReminderStatuses); v != nil {
		violations = append(violations, *v)
	}

	includeCustomer = c.Query("include") == "customer"
	return status, includeCustomer, violations
}

// HandleListAllReminders lists reminders across all of the subject's
// customers. ?status= narrows to active, overdue, or completed ones;
// ?include=customer embeds each reminder's owning customer identity.
func HandleListAllReminders(reminders store.ReminderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, includeCustomer, violations := reminderListQuery(c)
		if len(violations) > 0 {
			httperr.Write(c, httperr.Validation(violations))
			return
		}

		list, err := reminders.ListByOwner(c.Request.Context(), auth.Subject(c), status, includeCustomer)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Reminder"))
			return
		}
		if list == nil {
			list = []models.CustomerReminder{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// HandleReminderAnalytics summarizes the subject's reminders: counts by
// completion state and the overall completion rate.
func HandleReminderAnalytics(reminders store.ReminderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		analytics, err := reminders.Analytics(c.Request.Context(), auth.Subject(c))
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Reminder"))
			return
		}
		c.JSON(http.StatusOK, analytics)
	}
}

func HandleCreateReminder(reminders store.ReminderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reminderRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		dueDate, _ := time.Parse(time.RFC3339, req.DueDate)
		reminder := models.CustomerReminder{
			CustomerID: ownedCustomer(c).ID,
			UserID:     auth.Subject(c),
			DueDate:    dueDate,
			Priority:   req.Priority,
		}
		if req.Description.Valid {
			reminder.Description = &req.Description.Value
		}

		if err := reminders.Create(c.Request.Context(), &reminder); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Reminder"))
			return
		}
		c.JSON(http.StatusCreated, reminder)
	}
}

func HandleGetReminder(reminders store.ReminderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		reminder, err := reminders.Get(c.Request.Context(), c.Param("id"), ownedCustomer(c).ID, auth.Subject(c))
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Reminder"))
			return
		}
		c.JSON(http.StatusOK, reminder)
	}
}

// HandleUpdateReminder replaces the reminder's mutable fields. Omitting
// description clears it; omitting priority resets it to medium.
func HandleUpdateReminder(reminders store.ReminderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reminderRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		ctx := c.Request.Context()
		reminder, err := reminders.Get(ctx, c.Param("id"), ownedCustomer(c).ID, auth.Subject(c))
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Reminder"))
			return
		}

		reminder.DueDate, _ = time.Parse(time.RFC3339, req.DueDate)
		reminder.Description = nil
		if req.Description.Valid {
			reminder.Description = &req.Description.Value
		}
		reminder.Priority = req.Priority
		if reminder.Priority == "" {
			reminder.Priority = models.PriorityMedium
		}

		if err := reminders.Update(ctx, reminder); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Reminder"))
			return
		}
		c.JSON(http.StatusOK, reminder)
	}
}

// HandlePatchReminder updates the provided subset of fields. Sending
// dateCompleted marks the reminder done; sending it as null reopens it, and
// reopening an already-open reminder is a no-op rather than an error.
func HandlePatchReminder(reminders store.ReminderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reminderPatchRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		ctx := c.Request.Context()
		reminder, err := reminders.Get(ctx, c.Param("id"), ownedCustomer(c).ID, auth.Subject(c))
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Reminder"))
			return
		}

		if req.DueDate != nil {
			reminder.DueDate, _ = time.Parse(time.RFC3339, *req.DueDate)
		}
		if req.Description.Set {
			reminder.Description = nil
			if req.Description.Valid {
				reminder.Description = &req.Description.Value
			}
		}
		if req.Priority != nil {
			reminder.Priority = *req.Priority
		}
		if req.DateCompleted.Set {
			reminder.DateCompleted = nil
			if req.DateCompleted.Valid {
				done, _ := time.Parse(time.RFC3339, req.DateCompleted.Value)
				reminder.DateCompleted = &done
			}
		}

		if err := reminders.Update(ctx, reminder); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Reminder"))
			return
		}
		c.JSON(http.StatusOK, reminder)
	}
}

func HandleDeleteReminder(reminders store.ReminderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reminder, err := reminders.Get(ctx, c.Param("id"), ownedCustomer(c).ID, auth.Subject(c))
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Reminder"))
			return
		}
		if err := reminders.Delete(ctx, reminder); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Reminder"))
			return
		}
		c.Status(http.StatusNoContent)
	}
}

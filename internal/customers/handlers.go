// Package customers implements the customer resource and its nested phones,
// addresses, notes, and reminders. Every route below /customers runs behind
// authentication, and every nested route additionally runs behind the
// RequireCustomer ownership gate.
package customers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/clienthub/backend/internal/auth"
	"github.com/clienthub/backend/internal/httperr"
	"github.com/clienthub/backend/internal/models"
	"github.com/clienthub/backend/internal/store"
	"github.com/clienthub/backend/internal/validate"
	"github.com/gin-gonic/gin"
)

// UserMirror is the slice of the user mirror the customer routes need: the
// owner row must exist locally before the first customer insert references it.
type UserMirror interface {
	Ensure(ctx context.Context, uid string) (*models.User, error)
}

// Register wires the customer routes onto r, which is expected to already
// require authentication.
func Register(r gin.IRouter, stores *store.Stores, mirror UserMirror) {
	grp := r.Group("/customers")
	grp.GET("", HandleList(stores.Customers))
	grp.POST("", HandleCreate(stores.Customers, mirror))
	grp.GET("/search", HandleSearch(stores.Customers))

	one := grp.Group("/:customerId", RequireCustomer(stores.Customers))
	one.GET("", HandleGet())
	one.PUT("", HandleUpdate(stores.Customers))
	one.PATCH("", HandlePatch(stores.Customers))
	one.DELETE("", HandleDelete(stores.Customers))

	registerPhones(one.Group("/phones"), stores.Phones)
	registerAddresses(one.Group("/addresses"), stores.Addresses)
	registerNotes(one.Group("/notes"), stores.Notes)
	registerReminders(one.Group("/reminders"), stores.Reminders)
}

// RegisterReminderList wires the cross-customer reminder listing and its
// analytics summary.
func RegisterReminderList(r gin.IRouter, reminders store.ReminderStore) {
	grp := r.Group("/reminders")
	grp.GET("", HandleListAllReminders(reminders))
	grp.GET("/analytics", HandleReminderAnalytics(reminders))
}

// HandleList returns every customer owned by the subject, children embedded,
// ordered by last then first name.
func HandleList(customerStore store.CustomerStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := customerStore.ListByOwner(c.Request.Context(), auth.Subject(c))
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Customer"))
			return
		}
		if customers == nil {
			customers = []models.Customer{}
		}
		c.JSON(http.StatusOK, customers)
	}
}

// HandleCreate persists a customer with any nested phones and addresses. The
// owner's mirror row is created lazily first, since the customer row
// references it. A duplicate (email, owner) pair surfaces as a conflict from
// the store's unique constraint.
func HandleCreate(customerStore store.CustomerStore, mirror UserMirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customerRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		ctx := c.Request.Context()
		subject := auth.Subject(c)
		if _, err := mirror.Ensure(ctx, subject); err != nil {
			httperr.Write(c, httperr.FromStore(err, "User"))
			return
		}

		customer := models.Customer{
			UserID:    subject,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
		}
		for _, p := range req.Phones {
			customer.Phones = append(customer.Phones, models.CustomerPhone{
				PhoneNumber: p.PhoneNumber,
				Designation: p.Designation,
			})
		}
		for i := range req.Addresses {
			customer.Addresses = append(customer.Addresses, req.Addresses[i].model(""))
		}

		if err := customerStore.Create(ctx, &customer); err != nil {
			if errors.Is(err, store.ErrDuplicatePhone) {
				httperr.Write(c, httperr.Conflict(httperr.CodeDuplicate, err.Error()))
				return
			}
			httperr.Write(c, httperr.FromStore(err, "Customer"))
			return
		}
		c.JSON(http.StatusCreated, customer)
	}
}

// HandleGet returns the customer already resolved by the ownership gate.
func HandleGet() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ownedCustomer(c))
	}
}

// HandleUpdate replaces the customer's own fields.
func HandleUpdate(customerStore store.CustomerStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customerUpdateRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		customer := ownedCustomer(c)
		customer.FirstName = req.FirstName
		customer.LastName = req.LastName
		customer.Email = req.Email

		if err := customerStore.Update(c.Request.Context(), customer); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Customer"))
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// HandlePatch updates the provided subset of the customer's own fields.
func HandlePatch(customerStore store.CustomerStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customerPatchRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		customer := ownedCustomer(c)
		if req.FirstName != nil {
			customer.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			customer.LastName = *req.LastName
		}
		if req.Email != nil {
			customer.Email = *req.Email
		}

		if err := customerStore.Update(c.Request.Context(), customer); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Customer"))
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// HandleDelete removes the customer; children go with it via the store's
// cascade rules.
func HandleDelete(customerStore store.CustomerStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := customerStore.Delete(c.Request.Context(), ownedCustomer(c)); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Customer"))
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// HandleSearch runs the tiered ranked search over the subject's customers.
// A user with no matches gets an empty array, not an error.
func HandleSearch(customerStore store.CustomerStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		if strings.TrimSpace(query) == "" {
			httperr.Write(c, httperr.Validation([]httperr.FieldError{
				{Field: "query", Message: "Search query is required"},
			}))
			return
		}

		customers, err := customerStore.Search(c.Request.Context(), auth.Subject(c), query)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Customer"))
			return
		}
		if customers == nil {
			customers = []models.Customer{}
		}
		c.JSON(http.StatusOK, customers)
	}
}

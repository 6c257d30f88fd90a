package customers

import (
	"github.com/clienthub/backend/internal/auth"
	"github.com/clienthub/backend/internal/httperr"
	"github.com/clienthub/backend/internal/models"
	"github.com/clienthub/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const customerKey = "owned_customer"

// isUUID accepts only the canonical dashed 36-character form; the permissive
// variants uuid.Parse tolerates (braced, URN) are rejected by the length
// check.
func isUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// RequireCustomer is the ownership gate every nested-resource route runs
// behind. It rejects malformed path identifiers before any store access,
// then resolves the customer scoped by both id and subject in one query, so
// a customer that exists but belongs to someone else is indistinguishable
// from one that does not exist.
func RequireCustomer(customerStore store.CustomerStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := c.Param("customerId")
		if !isUUID(customerID) {
			httperr.Write(c, httperr.InvalidID())
			return
		}
		if childID := c.Param("id"); childID != "" && !isUUID(childID) {
			httperr.Write(c, httperr.InvalidID())
			return
		}

		customer, err := customerStore.ResolveOwned(c.Request.Context(), customerID, auth.Subject(c))
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Customer"))
			return
		}

		c.Set(customerKey, customer)
		c.Next()
	}
}

// ownedCustomer returns the customer resolved by RequireCustomer.
func ownedCustomer(c *gin.Context) *models.Customer {
	return c.MustGet(customerKey).(*models.Customer)
}

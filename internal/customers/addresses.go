package customers

import (
	"net/http"

	"github.com/clienthub/backend/internal/httperr"
	"github.com/clienthub/backend/internal/models"
	"github.com/clienthub/backend/internal/store"
	"github.com/clienthub/backend/internal/validate"
	"github.com/gin-gonic/gin"
)

func registerAddresses(grp gin.IRouter, addresses store.AddressStore) {
	grp.GET("", HandleListAddresses(addresses))
	grp.POST("", HandleCreateAddress(addresses))
	grp.GET("/:id", HandleGetAddress(addresses))
	grp.PUT("/:id", HandleUpdateAddress(addresses))
	grp.DELETE("/:id", HandleDeleteAddress(addresses))
}

func HandleListAddresses(addresses store.AddressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := addresses.ListByCustomer(c.Request.Context(), ownedCustomer(c).ID)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Address"))
			return
		}
		if list == nil {
			list = []models.CustomerAddress{}
		}
		c.JSON(http.StatusOK, list)
	}
}

func HandleCreateAddress(addresses store.AddressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addressRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		address := req.model(ownedCustomer(c).ID)
		if err := addresses.Create(c.Request.Context(), &address); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Address"))
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

func HandleGetAddress(addresses store.AddressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, err := addresses.Get(c.Request.Context(), c.Param("id"), ownedCustomer(c).ID)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Address"))
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

func HandleUpdateAddress(addresses store.AddressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addressRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		ctx := c.Request.Context()
		address, err := addresses.Get(ctx, c.Param("id"), ownedCustomer(c).ID)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Address"))
			return
		}

		updated := req.model(address.CustomerID)
		updated.ID = address.ID
		updated.CreatedAt = address.CreatedAt
		if err := addresses.Update(ctx, &updated); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Address"))
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func HandleDeleteAddress(addresses store.AddressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		address, err := addresses.Get(ctx, c.Param("id"), ownedCustomer(c).ID)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Address"))
			return
		}
		if err := addresses.Delete(ctx, address); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Address"))
			return
		}
		c.Status(http.StatusNoContent)
	}
}

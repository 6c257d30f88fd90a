package customers

import (
	"errors"
	"net/http"

	"github.com/clienthub/backend/internal/httperr"
	"github.com/clienthub/backend/internal/models"
	"github.com/clienthub/backend/internal/store"
	"github.com/clienthub/backend/internal/validate"
	"github.com/gin-gonic/gin"
)

func registerPhones(grp gin.IRouter, phones store.PhoneStore) {
	grp.GET("", HandleListPhones(phones))
	grp.POST("", HandleCreatePhone(phones))
	grp.GET("/:id", HandleGetPhone(phones))
	grp.PUT("/:id", HandleUpdatePhone(phones))
	grp.DELETE("/:id", HandleDeletePhone(phones))
}

func HandleListPhones(phones store.PhoneStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := phones.ListByCustomer(c.Request.Context(), ownedCustomer(c).ID)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Phone"))
			return
		}
		if list == nil {
			list = []models.CustomerPhone{}
		}
		c.JSON(http.StatusOK, list)
	}
}

func HandleCreatePhone(phones store.PhoneStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req phoneRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		phone := models.CustomerPhone{
			CustomerID:  ownedCustomer(c).ID,
			PhoneNumber: req.PhoneNumber,
			Designation: req.Designation,
		}
		if err := phones.Create(c.Request.Context(), &phone); err != nil {
			if errors.Is(err, store.ErrDuplicatePhone) {
				httperr.Write(c, httperr.Conflict(httperr.CodeDuplicate, err.Error()))
				return
			}
			httperr.Write(c, httperr.FromStore(err, "Phone"))
			return
		}
		c.JSON(http.StatusCreated, phone)
	}
}

func HandleGetPhone(phones store.PhoneStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone, err := phones.Get(c.Request.Context(), c.Param("id"), ownedCustomer(c).ID)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Phone"))
			return
		}
		c.JSON(http.StatusOK, phone)
	}
}

func HandleUpdatePhone(phones store.PhoneStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req phoneRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		ctx := c.Request.Context()
		phone, err := phones.Get(ctx, c.Param("id"), ownedCustomer(c).ID)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Phone"))
			return
		}

		phone.PhoneNumber = req.PhoneNumber
		phone.Designation = req.Designation
		if err := phones.Update(ctx, phone); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Phone"))
			return
		}
		c.JSON(http.StatusOK, phone)
	}
}

func HandleDeletePhone(phones store.PhoneStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		phone, err := phones.Get(ctx, c.Param("id"), ownedCustomer(c).ID)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Phone"))
			return
		}
		if err := phones.Delete(ctx, phone); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Phone"))
			return
		}
		c.Status(http.StatusNoContent)
	}
}

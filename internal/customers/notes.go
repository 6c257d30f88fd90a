package customers

import (
	"net/http"

	"github.com/clienthub/backend/internal/httperr"
	"github.com/clienthub/backend/internal/models"
	"github.com/clienthub/backend/internal/store"
	"github.com/clienthub/backend/internal/validate"
	"github.com/gin-gonic/gin"
)

func registerNotes(grp gin.IRouter, notes store.NoteStore) {
	grp.GET("", HandleListNotes(notes))
	grp.POST("", HandleCreateNote(notes))
	grp.GET("/:id", HandleGetNote(notes))
	grp.PUT("/:id", HandleUpdateNote(notes))
	grp.DELETE("/:id", HandleDeleteNote(notes))
}

func HandleListNotes(notes store.NoteStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := notes.ListByCustomer(c.Request.Context(), ownedCustomer(c).ID)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Note"))
			return
		}
		if list == nil {
			list = []models.CustomerNote{}
		}
		c.JSON(http.StatusOK, list)
	}
}

func HandleCreateNote(notes store.NoteStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req noteRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		note := models.CustomerNote{
			CustomerID: ownedCustomer(c).ID,
			Note:       req.Note,
		}
		if err := notes.Create(c.Request.Context(), &note); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Note"))
			return
		}
		c.JSON(http.StatusCreated, note)
	}
}

func HandleGetNote(notes store.NoteStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		note, err := notes.Get(c.Request.Context(), c.Param("id"), ownedCustomer(c).ID)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Note"))
			return
		}
		c.JSON(http.StatusOK, note)
	}
}

func HandleUpdateNote(notes store.NoteStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req noteRequest
		if apiErr := validate.Body(c.Request.Body, &req); apiErr != nil {
			httperr.Write(c, apiErr)
			return
		}

		ctx := c.Request.Context()
		note, err := notes.Get(ctx, c.Param("id"), ownedCustomer(c).ID)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Note"))
			return
		}

		note.Note = req.Note
		if err := notes.Update(ctx, note); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Note"))
			return
		}
		c.JSON(http.StatusOK, note)
	}
}

func HandleDeleteNote(notes store.NoteStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		note, err := notes.Get(ctx, c.Param("id"), ownedCustomer(c).ID)
		if err != nil {
			httperr.Write(c, httperr.FromStore(err, "Note"))
			return
		}
		if err := notes.Delete(ctx, note); err != nil {
			httperr.Write(c, httperr.FromStore(err, "Note"))
			return
		}
		c.Status(http.StatusNoContent)
	}
}

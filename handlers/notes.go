// File: caredesk/handlers/notes.go
package handlers

import (
	"net/http"

	"caredesk/models"
	"caredesk/services/notes"

	"github.com/gin-gonic/gin"
)

// NotesHandler encapsulates therapy note endpoints.
type NotesHandler struct {
	Service notes.NotesService
}

// NewNotesHandler creates a new NotesHandler.
func NewNotesHandler(svc notes.NotesService) *NotesHandler {
	return &NotesHandler{Service: svc}
}

// ListNotesHandler returns note headers, optionally scoped by clientId.
func (nh *NotesHandler) ListNotesHandler(c *gin.Context) {
	records, err := nh.Service.ListNotes(c.Request.Context(), c.Query("clientId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetNoteHandler returns one note in full detail.
func (nh *NotesHandler) GetNoteHandler(c *gin.Context) {
	record, err := nh.Service.GetNote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// CreateNoteHandler records a new note authored by the caller.
func (nh *NotesHandler) CreateNoteHandler(c *gin.Context) {
	var input models.NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	record, err := nh.Service.CreateNote(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

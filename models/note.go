// models/note.go
package models

// NoteInput is the payload for creating a therapy note. The stored document
// is free-form; this covers the fields the dashboard form submits.
type NoteInput struct {
	ClientID string `json:"clientId" binding:"required"`
	Subject  string `json:"subject" binding:"required"`
	Body     string `json:"body"`
	Plan     string `json:"plan,omitempty"`
}

// models/principal.go
package models

// Principal is the verified identity behind an inbound request, produced by
// the identity verifier. It lives for the duration of a single request.
type Principal struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

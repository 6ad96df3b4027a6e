package identity

import (
	"context"
	"fmt"

	"caredesk/models"
	"caredesk/services/access"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// FirebaseVerifier validates Firebase ID tokens. The decoded token carries
// the uid, email and email_verified claims that make up a Principal.
type FirebaseVerifier struct {
	Client *auth.Client
}

// NewFirebaseVerifier creates a Verifier over a Firebase Auth client.
func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{Client: client}
}

// Verify validates the ID token and extracts the principal. Expired and
// malformed tokens both surface as ErrUnauthenticated; the distinction is
// logged server-side only.
func (v *FirebaseVerifier) Verify(ctx context.Context, credential string) (models.Principal, error) {
	token, err := v.Client.VerifyIDToken(ctx, credential)
	if err != nil {
		zap.L().Debug("Firebase token rejected", zap.Error(err))
		return models.Principal{}, fmt.Errorf("%w: provider rejected credential", access.ErrUnauthenticated)
	}

	principal := models.Principal{ID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		principal.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		principal.EmailVerified = verified
	}
	return principal, nil
}

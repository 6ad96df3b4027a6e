package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caredesk/models"
	"caredesk/services/access"

	"github.com/golang-jwt/jwt"
)

// LocalVerifier validates HS256 tokens signed with a shared secret. Used in
// deployments without Firebase credentials (local development, tests).
type LocalVerifier struct {
	secret []byte
}

// NewLocalVerifier creates a Verifier over a shared HMAC secret.
func NewLocalVerifier(secret string) *LocalVerifier {
	return &LocalVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token and extracts the principal from its
// sub, email and email_verified claims.
func (v *LocalVerifier) Verify(_ context.Context, credential string) (models.Principal, error) {
	token, err := jwt.Parse(credential, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Principal{}, fmt.Errorf("%w: invalid token", access.ErrUnauthenticated)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Principal{}, fmt.Errorf("%w: invalid token claims", access.ErrUnauthenticated)
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return models.Principal{}, fmt.Errorf("%w: token missing subject", access.ErrUnauthenticated)
	}

	principal := models.Principal{ID: sub}
	if email, ok := claims["email"].(string); ok {
		principal.Email = email
	}
	if verified, ok := claims["email_verified"].(bool); ok {
		principal.EmailVerified = verified
	}
	return principal, nil
}

// GenerateToken creates a signed HS256 token for the given subject and
// email, expiring after the specified duration. Dev tooling and tests only.
func (v *LocalVerifier) GenerateToken(subject, email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":            subject,
		"email":          email,
		"email_verified": true,
		"iat":            time.Now().Unix(),
		"exp":            time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

package access

import "errors"

var (
	// ErrUnauthenticated covers a missing, malformed, or rejected credential.
	// Provider-side rejections are deliberately not distinguished.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrProfileIncomplete signals an authenticated principal whose profile
	// is absent or missing required fields. The client should route to the
	// setup flow, not show an error.
	ErrProfileIncomplete = errors.New("profile incomplete")
	// ErrUnauthorized signals an authenticated principal whose role lacks a
	// required permission.
	ErrUnauthorized = errors.New("insufficient permissions")
	// ErrUnknownCategory signals a data category missing from the
	// sensitivity map. Misconfiguration: callers deny and log loudly.
	ErrUnknownCategory = errors.New("unknown data category")
	// ErrInternal covers unexpected downstream failures.
	ErrInternal = errors.New("internal error")
)

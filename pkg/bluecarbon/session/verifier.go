package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
)

var (
	// ErrInvalidCredentials indicates the verifier rejected the identifier or secret.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownRole indicates the identity claims could not be mapped onto the app's roles.
	ErrUnknownRole = errors.New("unknown role")

	// ErrNoVerifier indicates Authenticate was called on a gate without a verifier.
	ErrNoVerifier = errors.New("no credential verifier configured")
)

// Credentials is what a login screen collects before a role is granted.
type Credentials struct {
	Identifier string // Email, phone number, or digital id
	Secret     string // Password or one-time code
	Role       string // Role claimed by the identity provider, e.g. "community-leader"
}

// Verifier maps external credentials onto one of the app's roles.
type Verifier[R router.ID] interface {
	Verify(ctx context.Context, creds Credentials) (R, error)
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc[R router.ID] func(ctx context.Context, creds Credentials) (R, error)

func (f VerifierFunc[R]) Verify(ctx context.Context, creds Credentials) (R, error) {
	return f(ctx, creds)
}

// AuthError wraps a verifier failure with the identifier that was attempted.
type AuthError struct {
	Op         string // Operation that failed (e.g., "verify")
	Identifier string // Identifier that was presented
	Err        error  // Underlying error
}

func (e *AuthError) Error() string {
	if e.Identifier == "" {
		return fmt.Sprintf("session: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("session: %s %q: %v", e.Op, e.Identifier, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsAuthError checks if an error came from credential verification.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// StaticVerifier accepts any non-empty identifier and grants the claimed role.
// It stands in for a real identity provider in demos and tests.
type StaticVerifier[R router.ID] struct {
	parse func(string) (R, error)
}

// NewStaticVerifier creates a verifier that maps role claims with parse.
func NewStaticVerifier[R router.ID](parse func(string) (R, error)) *StaticVerifier[R] {
	return &StaticVerifier[R]{parse: parse}
}

func (v *StaticVerifier[R]) Verify(ctx context.Context, creds Credentials) (R, error) {
	var zero R

	if err := ctx.Err(); err != nil {
		return zero, &AuthError{Op: "verify", Identifier: creds.Identifier, Err: err}
	}
	if strings.TrimSpace(creds.Identifier) == "" {
		return zero, &AuthError{Op: "verify", Err: ErrInvalidCredentials}
	}

	role, err := v.parse(creds.Role)
	if err != nil {
		return zero, &AuthError{Op: "verify", Identifier: creds.Identifier, Err: fmt.Errorf("%w: %v", ErrUnknownRole, err)}
	}
	return role, nil
}

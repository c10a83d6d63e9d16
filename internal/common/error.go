// Package common defines shared constants and sentinel errors used across
// Gatekeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential errors. A single sentinel covers both "no such user" and
	// "wrong password" so callers cannot tell the two cases apart.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Token lifecycle errors. Missing and invalid stay distinct: the guard
	// reports them with different messages.
	ErrMissingToken = errors.New("access token missing")
	ErrInvalidToken = errors.New("invalid access token")
)

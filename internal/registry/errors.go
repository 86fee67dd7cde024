package registry

import "errors"

// Every failed registry operation wraps exactly one of these. A failed
// operation never changes registry state.
var (
	ErrUnauthorized      = errors.New("caller not authorized")
	ErrDuplicateAddress  = errors.New("address already registered")
	ErrDuplicateCode     = errors.New("property code already registered")
	ErrDuplicateClientID = errors.New("client id already registered")
	ErrPropertyNotFound  = errors.New("property not found")
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidTransition = errors.New("invalid state transition")
)

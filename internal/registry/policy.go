package registry

import (
	"fmt"
	"strings"
)

// Caller is the session presented to mutating operations.
type Caller interface {
	IsAuthenticated() bool
}

// AuthPolicy decides which callers may mutate the registry.
type AuthPolicy int

const (
	// RequireAuthenticated admits only authenticated callers.
	RequireAuthenticated AuthPolicy = iota
	// LegacyInverted admits only callers that report NOT being authenticated.
	// Data and scripts from the agency's older system depend on it.
	LegacyInverted
)

const (
	policyRequireAuthenticated = "require-authenticated"
	policyLegacyInverted       = "legacy-inverted"
)

// ParseAuthPolicy parses a policy name. Empty selects the default.
func ParseAuthPolicy(s string) (AuthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", policyRequireAuthenticated:
		return RequireAuthenticated, nil
	case policyLegacyInverted:
		return LegacyInverted, nil
	}
	return RequireAuthenticated, fmt.Errorf("unknown auth policy %q (want %s|%s)",
		s, policyRequireAuthenticated, policyLegacyInverted)
}

func (p AuthPolicy) String() string {
	if p == LegacyInverted {
		return policyLegacyInverted
	}
	return policyRequireAuthenticated
}

// permits reports whether caller may mutate the registry. A nil caller
// never may.
func (p AuthPolicy) permits(caller Caller) bool {
	if caller == nil {
		return false
	}
	if p == LegacyInverted {
		return !caller.IsAuthenticated()
	}
	return caller.IsAuthenticated()
}

// Package employee provides the agency employee session that callers present
// to the registry. Credential handling is out of scope: Login and Logout only
// flip the session's authenticated flag.
package employee

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Employee is an agency employee's working session.
type Employee struct {
	Name      string
	SessionID string

	mu            sync.RWMutex
	authenticated bool
}

// New starts a logged-out session for the named employee.
func New(name string) *Employee {
	return &Employee{
		Name:      strings.TrimSpace(name),
		SessionID: uuid.NewString(),
	}
}

// Login marks the session as authenticated.
func (e *Employee) Login() {
	e.mu.Lock()
	e.authenticated = true
	e.mu.Unlock()
}

// Logout marks the session as not authenticated.
func (e *Employee) Logout() {
	e.mu.Lock()
	e.authenticated = false
	e.mu.Unlock()
}

// IsAuthenticated reports whether the session is logged in. A nil session
// is not.
func (e *Employee) IsAuthenticated() bool {
	if e == nil {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.authenticated
}

// Session returns the session id used to correlate log lines.
func (e *Employee) Session() string {
	if e == nil {
		return ""
	}
	return e.SessionID
}

// Package client provides the agency's client (renter/buyer) value type.
package client

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Client is a person registered as a potential renter or buyer.
// ID is a tax-id-like value and is unique across the registry.
type Client struct {
	ID   string `json:"id" yaml:"id" validate:"required"`
	Name string `json:"name" yaml:"name"`
}

// New builds a client with trimmed fields.
func New(id, name string) Client {
	return Client{
		ID:   NormalizeID(id),
		Name: strings.TrimSpace(name),
	}
}

// NormalizeID returns id in the form clients are stored and looked up by.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}

// Validate checks the client's fields. The registry does not call it.
func (c Client) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("client %q: %w", c.ID, err)
	}
	return nil
}

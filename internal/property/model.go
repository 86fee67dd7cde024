// Package property provides the property value type and its rent/sale states.
package property

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Property represents a unit of real estate offered by the agency.
// Code and Address identify it; everything else is descriptive.
//
// The registry accepts any code and address. Validate is for front ends that
// take property data from people or files.
type Property struct {
	Code         int64    `json:"code" yaml:"code"`
	Address      string   `json:"address" yaml:"address" validate:"required"`
	PropertyType *string  `json:"property_type,omitempty" yaml:"type,omitempty" validate:"omitempty,max=64"`
	Bedrooms     *float64 `json:"bedrooms,omitempty" yaml:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms    *float64 `json:"bathrooms,omitempty" yaml:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Sqft         *int64   `json:"sqft,omitempty" yaml:"sqft,omitempty" validate:"omitempty,gt=0"`
	YearBuilt    *int64   `json:"year_built,omitempty" yaml:"year_built,omitempty" validate:"omitempty,gte=1000,lte=9999"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty" validate:"max=2048"`
}

// Normalize trims surrounding whitespace from the address.
func (p Property) Normalize() Property {
	p.Address = strings.TrimSpace(p.Address)
	return p
}

// Clone returns a copy that shares no pointers with p.
func (p Property) Clone() Property {
	p.PropertyType = clonePtr(p.PropertyType)
	p.Bedrooms = clonePtr(p.Bedrooms)
	p.Bathrooms = clonePtr(p.Bathrooms)
	p.Sqft = clonePtr(p.Sqft)
	p.YearBuilt = clonePtr(p.YearBuilt)
	return p
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Validate checks the property's fields.
func (p Property) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("property %d: %w", p.Code, err)
	}
	return nil
}

// RentalKind tags a RentalState.
type RentalKind string

const (
	KindUnavailable      RentalKind = "unavailable"
	KindAvailableForRent RentalKind = "available_for_rent"
	KindRentedBy         RentalKind = "rented"
)

// RentalState describes whether a property is offered for rent and, when
// rented, which client occupies it. ClientID is set only for KindRentedBy.
type RentalState struct {
	Kind     RentalKind `json:"kind"`
	ClientID string     `json:"client_id,omitempty"`
}

// Unavailable is the state of a property not offered for rent.
func Unavailable() RentalState {
	return RentalState{Kind: KindUnavailable}
}

// AvailableForRent is the state of a vacant property offered for rent.
func AvailableForRent() RentalState {
	return RentalState{Kind: KindAvailableForRent}
}

// RentedBy is the state of a property occupied by the given client.
func RentedBy(clientID string) RentalState {
	return RentalState{Kind: KindRentedBy, ClientID: clientID}
}

// IsRentedBy reports whether the property is rented by exactly clientID.
func (s RentalState) IsRentedBy(clientID string) bool {
	return s.Kind == KindRentedBy && s.ClientID == clientID
}

func (s RentalState) String() string {
	switch s.Kind {
	case KindAvailableForRent:
		return "available for rent"
	case KindRentedBy:
		return "rented by " + s.ClientID
	default:
		return "not for rent"
	}
}

// SaleEligibility tells whether a property is listed for sale.
type SaleEligibility bool

const (
	ForSale    SaleEligibility = true
	NotForSale SaleEligibility = false
)

func (e SaleEligibility) String() string {
	if e {
		return "for sale"
	}
	return "not for sale"
}

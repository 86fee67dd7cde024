// Package seed loads a YAML file of clients and properties into a registry.
package seed

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/guimcabral/imobiliaria/internal/client"
	"github.com/guimcabral/imobiliaria/internal/property"
	"github.com/guimcabral/imobiliaria/internal/registry"
)

var validate = validator.New()

// File is the parsed content of a seed file.
type File struct {
	Clients    []client.Client `yaml:"clients" validate:"dive"`
	Properties []PropertyEntry `yaml:"properties" validate:"dive"`
}

// PropertyEntry is a property plus the state it should end up in.
type PropertyEntry struct {
	property.Property `yaml:",inline"`

	Rentable bool   `yaml:"rentable"`
	ForSale  bool   `yaml:"for_sale"`
	RentedBy string `yaml:"rented_by,omitempty"`
}

// Registrar is the subset of the registry a seed file is applied through.
type Registrar interface {
	RegisterClient(caller registry.Caller, name, id string) error
	RegisterProperty(caller registry.Caller, p property.Property) error
	SetRentable(caller registry.Caller, code int64) error
	SetForSale(caller registry.Caller, code int64) error
	RentProperty(caller registry.Caller, code int64, clientID string) error
}

// Load reads and validates a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates seed YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("validating seed file: %w", err)
	}
	return &f, nil
}

// Apply registers every client, then every property with its states, through
// reg. It stops at the first failure.
func (f *File) Apply(reg Registrar, caller registry.Caller) error {
	for _, c := range f.Clients {
		if err := reg.RegisterClient(caller, c.Name, c.ID); err != nil {
			return fmt.Errorf("seeding client %q: %w", c.ID, err)
		}
	}

	for _, e := range f.Properties {
		if err := e.apply(reg, caller); err != nil {
			return fmt.Errorf("seeding property %d: %w", e.Code, err)
		}
	}

	slog.Debug("seed applied", "clients", len(f.Clients), "properties", len(f.Properties))
	return nil
}

func (e PropertyEntry) apply(reg Registrar, caller registry.Caller) error {
	if err := reg.RegisterProperty(caller, e.Property); err != nil {
		return err
	}
	if e.Rentable {
		if err := reg.SetRentable(caller, e.Code); err != nil {
			return err
		}
	}
	if e.RentedBy != "" {
		if err := reg.RentProperty(caller, e.Code, e.RentedBy); err != nil {
			return err
		}
	}
	if e.ForSale {
		if err := reg.SetForSale(caller, e.Code); err != nil {
			return err
		}
	}
	return nil
}

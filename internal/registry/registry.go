// Package registry is the agency's single source of truth for properties,
// clients and the rent/sale state of each property.
//
// A Registry keeps three things in step: the property table, the per-property
// rental state and the per-property sale flag. They live in one record keyed
// by property code, so they are inserted and removed together. Mutating
// operations are gated on the caller's authentication flag (see AuthPolicy)
// and either apply fully or leave the registry untouched.
package registry

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"sync"

	"github.com/guimcabral/imobiliaria/internal/client"
	"github.com/guimcabral/imobiliaria/internal/property"
)

// Listing is a read-only snapshot of one registered property and its states.
type Listing struct {
	Property property.Property        `json:"property"`
	Rental   property.RentalState     `json:"rental"`
	Sale     property.SaleEligibility `json:"for_sale"`
}

type entry struct {
	property property.Property
	rental   property.RentalState
	sale     property.SaleEligibility
}

func (e *entry) listing() Listing {
	return Listing{Property: e.property.Clone(), Rental: e.rental, Sale: e.sale}
}

// Registry owns properties, clients and their states. The zero value is not
// usable; call New.
type Registry struct {
	policy AuthPolicy
	log    *slog.Logger

	// mu guards every table below as one unit.
	mu          sync.Mutex
	entries     map[int64]*entry
	addresses   map[string]int64
	order       []int64
	clients     map[string]client.Client
	clientOrder []string
}

// Option configures a Registry.
type Option func(*Registry)

// WithAuthPolicy sets the policy used to admit callers.
func WithAuthPolicy(p AuthPolicy) Option {
	return func(r *Registry) { r.policy = p }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		policy:    RequireAuthenticated,
		log:       slog.Default(),
		entries:   make(map[int64]*entry),
		addresses: make(map[string]int64),
		clients:   make(map[string]client.Client),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.policy == LegacyInverted {
		r.log.Warn("registry admits only callers that are NOT authenticated",
			"auth_policy", r.policy.String())
	}
	return r
}

// Policy returns the registry's auth policy.
func (r *Registry) Policy() AuthPolicy {
	return r.policy
}

// RegisterProperty adds p with rental state Unavailable and NotForSale.
// It fails if the address or the code is already registered.
func (r *Registry) RegisterProperty(caller Caller, p property.Property) error {
	const op = "register_property"

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.authorize(caller); err != nil {
		return r.reject(op, caller, err, "code", p.Code)
	}

	p = p.Normalize()
	if _, ok := r.addresses[p.Address]; ok {
		return r.reject(op, caller, fmt.Errorf("%w: %q", ErrDuplicateAddress, p.Address), "code", p.Code)
	}
	if _, ok := r.entries[p.Code]; ok {
		return r.reject(op, caller, fmt.Errorf("%w: %d", ErrDuplicateCode, p.Code), "code", p.Code)
	}

	r.entries[p.Code] = &entry{
		property: p.Clone(),
		rental:   property.Unavailable(),
		sale:     property.NotForSale,
	}
	r.addresses[p.Address] = p.Code
	r.order = append(r.order, p.Code)

	r.applied(op, caller, "code", p.Code, "address", p.Address)
	return nil
}

// RegisterClient adds a client. It fails if the id is already registered.
// Surrounding whitespace is trimmed from the id and the name.
func (r *Registry) RegisterClient(caller Caller, name, id string) error {
	const op = "register_client"

	r.mu.Lock()
	defer r.mu.Unlock()

	c := client.New(id, name)
	if err := r.authorize(caller); err != nil {
		return r.reject(op, caller, err, "client_id", c.ID)
	}
	if _, ok := r.clients[c.ID]; ok {
		return r.reject(op, caller, fmt.Errorf("%w: %q", ErrDuplicateClientID, c.ID), "client_id", c.ID)
	}

	r.clients[c.ID] = c
	r.clientOrder = append(r.clientOrder, c.ID)

	r.applied(op, caller, "client_id", c.ID)
	return nil
}

// SetRentable lists the property for rent. Any current tenant is dropped.
func (r *Registry) SetRentable(caller Caller, code int64) error {
	return r.update("set_rentable", caller, code, func(e *entry) {
		e.rental = property.AvailableForRent()
	})
}

// SetNotRentable withdraws the property from rent. Any current tenant is
// dropped.
func (r *Registry) SetNotRentable(caller Caller, code int64) error {
	return r.update("set_not_rentable", caller, code, func(e *entry) {
		e.rental = property.Unavailable()
	})
}

// SetForSale lists the property for sale.
func (r *Registry) SetForSale(caller Caller, code int64) error {
	return r.update("set_for_sale", caller, code, func(e *entry) {
		e.sale = property.ForSale
	})
}

// SetNotForSale withdraws the property from sale.
func (r *Registry) SetNotForSale(caller Caller, code int64) error {
	return r.update("set_not_for_sale", caller, code, func(e *entry) {
		e.sale = property.NotForSale
	})
}

func (r *Registry) update(op string, caller Caller, code int64, apply func(*entry)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.authorize(caller); err != nil {
		return r.reject(op, caller, err, "code", code)
	}
	e, err := r.lookupEntry(code)
	if err != nil {
		return r.reject(op, caller, err, "code", code)
	}

	apply(e)

	r.applied(op, caller, "code", code, "rental", e.rental.String(), "sale", e.sale.String())
	return nil
}

// RentProperty assigns the property to the client. It does not require the
// property to be vacant or listed for rent: an existing tenant is replaced.
// Callers that want a vacancy check consult AvailableForRent first.
func (r *Registry) RentProperty(caller Caller, code int64, clientID string) error {
	const op = "rent_property"
	clientID = client.NormalizeID(clientID)

	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.resolve(caller, code, clientID)
	if err != nil {
		return r.reject(op, caller, err, "code", code, "client_id", clientID)
	}

	previous := e.rental
	e.rental = property.RentedBy(clientID)

	r.applied(op, caller, "code", code, "client_id", clientID, "previous", previous.String())
	return nil
}

// ReturnProperty ends clientID's rental and puts the property back on the
// rental list. It fails unless the property is rented by exactly clientID.
func (r *Registry) ReturnProperty(caller Caller, code int64, clientID string) error {
	const op = "return_property"
	clientID = client.NormalizeID(clientID)

	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.resolve(caller, code, clientID)
	if err != nil {
		return r.reject(op, caller, err, "code", code, "client_id", clientID)
	}
	if !e.rental.IsRentedBy(clientID) {
		err := fmt.Errorf("%w: property %d is %s, not rented by %s",
			ErrInvalidTransition, code, e.rental, clientID)
		return r.reject(op, caller, err, "code", code, "client_id", clientID)
	}

	e.rental = property.AvailableForRent()

	r.applied(op, caller, "code", code, "client_id", clientID)
	return nil
}

// SellProperty sells the property to clientID and removes it, with its
// states, from the registry for good. The property must be for sale and
// either available for rent or rented by the buyer.
func (r *Registry) SellProperty(caller Caller, code int64, clientID string) error {
	const op = "sell_property"
	clientID = client.NormalizeID(clientID)

	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.resolve(caller, code, clientID)
	if err != nil {
		return r.reject(op, caller, err, "code", code, "client_id", clientID)
	}
	if !e.sale {
		err := fmt.Errorf("%w: property %d is not for sale", ErrInvalidTransition, code)
		return r.reject(op, caller, err, "code", code, "client_id", clientID)
	}
	if e.rental.Kind != property.KindAvailableForRent && !e.rental.IsRentedBy(clientID) {
		err := fmt.Errorf("%w: property %d is %s", ErrInvalidTransition, code, e.rental)
		return r.reject(op, caller, err, "code", code, "client_id", clientID)
	}

	delete(r.entries, code)
	delete(r.addresses, e.property.Address)
	r.order = slices.DeleteFunc(r.order, func(c int64) bool { return c == code })

	r.applied(op, caller, "code", code, "client_id", clientID, "address", e.property.Address)
	return nil
}

// Lookup returns the property registered under code with its states.
func (r *Registry) Lookup(code int64) (Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookupEntry(code)
	if err != nil {
		return Listing{}, err
	}
	return e.listing(), nil
}

// Client returns the client registered under id.
func (r *Registry) Client(id string) (client.Client, error) {
	id = client.NormalizeID(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[id]
	if !ok {
		return client.Client{}, fmt.Errorf("%w: %q", ErrClientNotFound, id)
	}
	return c, nil
}

// Len returns the number of registered properties.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// ClientCount returns the number of registered clients.
func (r *Registry) ClientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Properties yields every registered property in registration order.
func (r *Registry) Properties() iter.Seq[property.Property] {
	return propertiesOf(r.listings(nil))
}

// AvailableForRent yields the properties listed for rent and vacant.
func (r *Registry) AvailableForRent() iter.Seq[property.Property] {
	return propertiesOf(r.listings(func(e *entry) bool {
		return e.rental.Kind == property.KindAvailableForRent
	}))
}

// AvailableForSale yields the properties listed for sale.
func (r *Registry) AvailableForSale() iter.Seq[property.Property] {
	return propertiesOf(r.listings(func(e *entry) bool {
		return bool(e.sale)
	}))
}

// Listings yields every registered property with its states.
func (r *Registry) Listings() iter.Seq[Listing] {
	return r.listings(nil)
}

// Clients yields every registered client in registration order.
func (r *Registry) Clients() iter.Seq[client.Client] {
	return func(yield func(client.Client) bool) {
		r.mu.Lock()
		snapshot := make([]client.Client, 0, len(r.clientOrder))
		for _, id := range r.clientOrder {
			snapshot = append(snapshot, r.clients[id])
		}
		r.mu.Unlock()

		for _, c := range snapshot {
			if !yield(c) {
				return
			}
		}
	}
}

// listings returns a sequence over the entries accepted by keep (all when
// nil). Each iteration copies the matching entries under the lock and yields
// outside it, so a sequence can be ranged over again and sees current state.
func (r *Registry) listings(keep func(*entry) bool) iter.Seq[Listing] {
	return func(yield func(Listing) bool) {
		r.mu.Lock()
		snapshot := make([]Listing, 0, len(r.order))
		for _, code := range r.order {
			e := r.entries[code]
			if keep == nil || keep(e) {
				snapshot = append(snapshot, e.listing())
			}
		}
		r.mu.Unlock()

		for _, l := range snapshot {
			if !yield(l) {
				return
			}
		}
	}
}

func propertiesOf(seq iter.Seq[Listing]) iter.Seq[property.Property] {
	return func(yield func(property.Property) bool) {
		for l := range seq {
			if !yield(l.Property) {
				return
			}
		}
	}
}

// authorize checks the caller against the policy. Callers hold r.mu.
func (r *Registry) authorize(caller Caller) error {
	if !r.policy.permits(caller) {
		return ErrUnauthorized
	}
	return nil
}

// resolve authorizes the caller, then finds the client and the property in
// that order. Callers hold r.mu.
func (r *Registry) resolve(caller Caller, code int64, clientID string) (*entry, error) {
	if err := r.authorize(caller); err != nil {
		return nil, err
	}
	if _, ok := r.clients[clientID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrClientNotFound, clientID)
	}
	return r.lookupEntry(code)
}

func (r *Registry) lookupEntry(code int64) (*entry, error) {
	e, ok := r.entries[code]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPropertyNotFound, code)
	}
	return e, nil
}

func (r *Registry) reject(op string, caller Caller, err error, attrs ...any) error {
	r.log.Info("registry operation rejected",
		append([]any{"op", op, "session", sessionOf(caller), "error", err.Error()}, attrs...)...)
	return err
}

func (r *Registry) applied(op string, caller Caller, attrs ...any) {
	r.log.Debug("registry operation applied",
		append([]any{"op", op, "session", sessionOf(caller)}, attrs...)...)
}

// sessionOf returns the caller's session id when it exposes one.
func sessionOf(caller Caller) string {
	if s, ok := caller.(interface{ Session() string }); ok {
		return s.Session()
	}
	return ""
}

package seed

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guimcabral/imobiliaria/internal/employee"
	"github.com/guimcabral/imobiliaria/internal/property"
	"github.com/guimcabral/imobiliaria/internal/registry"
)

const sample = `
clients:
  - id: "111"
    name: Ana
  - id: "222"
    name: Bruno
properties:
  - code: 1
    address: Rua A, 10
    type: apartment
    bedrooms: 2
    rentable: true
  - code: 2
    address: Rua B, 20
    for_sale: true
    rented_by: "111"
  - code: 3
    address: Rua C, 30
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func loggedIn() *employee.Employee {
	e := employee.New("seed")
	e.Login()
	return e
}

func TestLoadAndApply(t *testing.T) {
	f, err := Load(writeSeed(t, sample))
	require.NoError(t, err)
	require.Len(t, f.Clients, 2)
	require.Len(t, f.Properties, 3)
	require.NotNil(t, f.Properties[0].PropertyType)
	assert.Equal(t, "apartment", *f.Properties[0].PropertyType)

	reg := registry.New()
	require.NoError(t, f.Apply(reg, loggedIn()))

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, 2, reg.ClientCount())

	l, err := reg.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, property.AvailableForRent(), l.Rental)
	assert.Equal(t, property.NotForSale, l.Sale)

	l, err = reg.Lookup(2)
	require.NoError(t, err)
	assert.Equal(t, property.RentedBy("111"), l.Rental)
	assert.Equal(t, property.ForSale, l.Sale)

	l, err = reg.Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, property.Unavailable(), l.Rental)

	var forSale []int64
	for p := range reg.AvailableForSale() {
		forSale = append(forSale, p.Code)
	}
	assert.Equal(t, []int64{2}, forSale)
	assert.Len(t, slices.Collect(reg.AvailableForRent()), 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed yaml", "clients: [\n"},
		{"client without id", "clients:\n  - name: Ana\n"},
		{"property without address", "properties:\n  - code: 1\n"},
		{"property with negative bedrooms", "properties:\n  - code: 1\n    address: Rua A\n    bedrooms: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	f, err := Parse([]byte(`
clients:
  - id: "111"
    name: Ana
properties:
  - code: 1
    address: Rua A
  - code: 2
    address: Rua B
    rented_by: "999"
  - code: 3
    address: Rua C
`))
	require.NoError(t, err)

	reg := registry.New()
	err = f.Apply(reg, loggedIn())
	require.ErrorIs(t, err, registry.ErrClientNotFound)
	assert.Contains(t, err.Error(), "seeding property 2")

	_, err = reg.Lookup(3)
	assert.ErrorIs(t, err, registry.ErrPropertyNotFound)
}

func TestApplyRequiresAuthorizedCaller(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	reg := registry.New()
	err = f.Apply(reg, employee.New("anon"))
	require.ErrorIs(t, err, registry.ErrUnauthorized)
	assert.Equal(t, 0, reg.ClientCount())
}

package customer_test

import (
	"testing"

	"tubertreats/internal/core/domain/model/customer"
	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create customer", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.MustNewID(6), "Patrick", "120 Conch Street")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, kernel.ID(6), c.ID())
		assert.Equal(t, "Patrick", c.Name())
		assert.Equal(t, "120 Conch Street", c.Address())
	})

	t.Run("should store empty name and address as given", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.MustNewID(1), "", "")

		require.NoError(t, err)
		assert.Empty(t, c.Name())
		assert.Empty(t, c.Address())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.ID(0), "Patrick", "120 Conch Street")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, c)
	})
}

func TestCustomer_Validate(t *testing.T) {
	var zero customer.Customer
	var nilCustomer *customer.Customer

	assert.Equal(t, customer.ErrCustomerIsNotConstructed, zero.Validate())
	assert.Equal(t, customer.ErrCustomerIsNotConstructed, nilCustomer.Validate())
}

func TestCustomer_Clone(t *testing.T) {
	c, _ := customer.NewCustomer(kernel.MustNewID(2), "Jason", "8675 I got it Street")

	cp := c.Clone()

	assert.Equal(t, c, cp)
	assert.NotSame(t, c, cp)
}

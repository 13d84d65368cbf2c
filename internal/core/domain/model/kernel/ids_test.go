package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedIdentifiers(t *testing.T) {
	fixed, _ := kernel.UUIDFromString("0190a5c4-7d3e-7b7a-9f1e-3c2d4b5a6e7f")
	ids := kernel.IDGeneratorFunc(func() kernel.UUID { return fixed })

	t.Run("should draw identifiers from the generator", func(t *testing.T) {
		assert.True(t, kernel.NewOrderID(ids).UUID.IsEqual(fixed))
		assert.True(t, kernel.NewOrderItemID(ids).UUID.IsEqual(fixed))
		assert.True(t, kernel.NewCustomerID(ids).UUID.IsEqual(fixed))
		assert.True(t, kernel.NewProductID(ids).UUID.IsEqual(fixed))
	})

	t.Run("should parse identifiers from strings", func(t *testing.T) {
		orderID, err := kernel.OrderIDFromString(fixed.String())
		require.NoError(t, err)
		assert.True(t, orderID.IsEqual(kernel.NewOrderID(ids)))

		itemID, err := kernel.OrderItemIDFromString(fixed.String())
		require.NoError(t, err)
		assert.Equal(t, fixed.String(), itemID.String())

		customerID, err := kernel.CustomerIDFromString(fixed.String())
		require.NoError(t, err)
		assert.True(t, customerID.IsEqual(kernel.NewCustomerID(ids)))

		productID, err := kernel.ProductIDFromString(fixed.String())
		require.NoError(t, err)
		assert.True(t, productID.IsEqual(kernel.NewProductID(ids)))
	})

	t.Run("should reject malformed identifiers", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("nope")
		require.Error(t, err)

		_, err = kernel.CustomerIDFromString("")
		require.Error(t, err)
	})

	t.Run("zero value identifiers fail validation", func(t *testing.T) {
		var orderID kernel.OrderID
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, orderID.Validate())
	})
}

func TestTimeOrderedIDGenerator(t *testing.T) {
	gen := kernel.TimeOrderedIDGenerator{}

	first := kernel.NewOrderID(gen)
	second := kernel.NewOrderID(gen)

	require.NoError(t, first.Validate())
	assert.False(t, first.IsEqual(second))
	assert.Less(t, first.String(), second.String())
}

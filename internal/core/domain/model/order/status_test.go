package order_test

import (
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []order.Status{
	order.Unknown,
	order.Draft,
	order.Placed,
	order.Paid,
	order.Ready,
	order.Canceled,
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Draft))
		assert.Equal(t, 2, int(order.Placed))
		assert.Equal(t, 3, int(order.Paid))
		assert.Equal(t, 4, int(order.Ready))
		assert.Equal(t, 5, int(order.Canceled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate defined statuses", func(t *testing.T) {
		for _, status := range allStatuses[1:] {
			t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and undefined statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(99), order.Status(-1)} {
			err := status.Validate()

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Draft", order.Draft.String())
	assert.Equal(t, "Placed", order.Placed.String())
	assert.Equal(t, "Paid", order.Paid.String())
	assert.Equal(t, "Ready", order.Ready.String())
	assert.Equal(t, "Canceled", order.Canceled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_CanChangeTo(t *testing.T) {
	allowed := map[[2]order.Status]bool{
		{order.Draft, order.Placed}:    true,
		{order.Placed, order.Paid}:     true,
		{order.Paid, order.Ready}:      true,
		{order.Draft, order.Canceled}:  true,
		{order.Placed, order.Canceled}: true,
		{order.Paid, order.Canceled}:   true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowed[[2]order.Status{from, to}]
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				assert.Equal(t, want, from.CanChangeTo(to))
				assert.Equal(t, !want, from.CannotChangeTo(to))
			})
		}
	}

	t.Run("should be repeatable", func(t *testing.T) {
		for range 3 {
			assert.True(t, order.Draft.CanChangeTo(order.Placed))
			assert.False(t, order.Paid.CanChangeTo(order.Draft))
		}
	})

	t.Run("should never lead back to draft", func(t *testing.T) {
		for _, from := range allStatuses {
			assert.False(t, from.CanChangeTo(order.Draft))
		}
	})
}

func TestPaymentMethod(t *testing.T) {
	require.NoError(t, order.CreditCard.Validate())
	require.NoError(t, order.GatewayBalance.Validate())
	require.ErrorIs(t, order.PaymentMethodUnknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.PaymentMethod(7).Validate(), errs.ErrValueIsInvalid)

	assert.Equal(t, "CreditCard", order.CreditCard.String())
	assert.Equal(t, "GatewayBalance", order.GatewayBalance.String())
	assert.Equal(t, "Unknown", order.PaymentMethod(7).String())
}

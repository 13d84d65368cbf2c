package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// PaymentMethod is the way a customer pays for an order.
type PaymentMethod int

const (
	// PaymentMethodUnknown marks an order whose payment method has not been chosen yet.
	PaymentMethodUnknown PaymentMethod = iota

	// CreditCard charges a credit card at checkout.
	CreditCard

	// GatewayBalance debits the balance held by the payment gateway.
	GatewayBalance
)

// Validate rejects PaymentMethodUnknown and undefined values.
func (m PaymentMethod) Validate() error {
	if m != CreditCard && m != GatewayBalance {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

func (m PaymentMethod) String() string {
	switch m {
	case CreditCard:
		return "CreditCard"
	case GatewayBalance:
		return "GatewayBalance"
	case PaymentMethodUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

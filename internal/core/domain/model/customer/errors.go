package customer

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
)

// ErrCustomerArchived is matched by every ArchivedError.
var ErrCustomerArchived = errors.New("customer is archived")

// ArchivedError reports a change attempted on an archived customer.
type ArchivedError struct {
	CustomerID kernel.CustomerID
}

func (e *ArchivedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCustomerArchived, e.CustomerID)
}

func (e *ArchivedError) Unwrap() error {
	return ErrCustomerArchived
}

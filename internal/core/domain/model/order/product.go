package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when validating a zero-value Product.
var ErrProductIsNotConstructed = errs.NewValueIsRequiredError("product must be created via NewProduct")

// Product is a snapshot of a catalog product taken when it is added to an order.
// Later catalog changes never reach items that were built from an older snapshot.
type Product struct { //nolint:recvcheck //using for validation
	id      kernel.ProductID
	name    kernel.ProductName
	price   kernel.Money
	inStock bool
	guard   guard.ConstructorGuard
}

// NewProduct validates the catalog data and returns a Product.
func NewProduct(id kernel.ProductID, name kernel.ProductName, price kernel.Money, inStock bool) (Product, error) {
	product := Product{
		inStock: inStock,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return Product{}, err
	}

	return product, nil
}

// Validate reports whether p was built by NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the catalog identifier.
func (p Product) ID() kernel.ProductID { return p.id }

// Name returns the display name.
func (p Product) Name() kernel.ProductName { return p.name }

// Price returns the unit price.
func (p Product) Price() kernel.Money { return p.price }

// InStock reports whether the product can be ordered.
func (p Product) InStock() bool { return p.inStock }

func (p *Product) setID(id kernel.ProductID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name kernel.ProductName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

package kernel

// IDGenerator supplies new unique, time-ordered identifiers.
// Aggregates never generate identifiers on their own; they ask the generator
// configured through WithIDGenerator.
type IDGenerator interface {
	NewUUID() UUID
}

// IDGeneratorFunc adapts an ordinary function to the IDGenerator interface.
type IDGeneratorFunc func() UUID

// NewUUID calls f.
func (f IDGeneratorFunc) NewUUID() UUID {
	return f()
}

// TimeOrderedIDGenerator is the default IDGenerator. It produces version 7 UUIDs.
type TimeOrderedIDGenerator struct{}

// NewUUID returns a fresh version 7 UUID.
func (TimeOrderedIDGenerator) NewUUID() UUID {
	return NewUUID()
}

// OrderID identifies an order aggregate.
type OrderID struct{ UUID }

// NewOrderID draws a new OrderID from ids.
func NewOrderID(ids IDGenerator) OrderID {
	return OrderID{ids.NewUUID()}
}

// OrderIDFromString parses an OrderID.
func OrderIDFromString(s string) (OrderID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{id}, nil
}

// IsEqual reports whether both identifiers hold the same UUID.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.UUID.IsEqual(other.UUID)
}

// OrderItemID identifies a line item inside an order.
type OrderItemID struct{ UUID }

// NewOrderItemID draws a new OrderItemID from ids.
func NewOrderItemID(ids IDGenerator) OrderItemID {
	return OrderItemID{ids.NewUUID()}
}

// OrderItemIDFromString parses an OrderItemID.
func OrderItemIDFromString(s string) (OrderItemID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return OrderItemID{}, err
	}
	return OrderItemID{id}, nil
}

// IsEqual reports whether both identifiers hold the same UUID.
func (id OrderItemID) IsEqual(other OrderItemID) bool {
	return id.UUID.IsEqual(other.UUID)
}

// CustomerID identifies a customer aggregate.
type CustomerID struct{ UUID }

// NewCustomerID draws a new CustomerID from ids.
func NewCustomerID(ids IDGenerator) CustomerID {
	return CustomerID{ids.NewUUID()}
}

// CustomerIDFromString parses a CustomerID.
func CustomerIDFromString(s string) (CustomerID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return CustomerID{}, err
	}
	return CustomerID{id}, nil
}

// IsEqual reports whether both identifiers hold the same UUID.
func (id CustomerID) IsEqual(other CustomerID) bool {
	return id.UUID.IsEqual(other.UUID)
}

// ProductID identifies a catalog product.
type ProductID struct{ UUID }

// NewProductID draws a new ProductID from ids.
func NewProductID(ids IDGenerator) ProductID {
	return ProductID{ids.NewUUID()}
}

// ProductIDFromString parses a ProductID.
func ProductIDFromString(s string) (ProductID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return ProductID{}, err
	}
	return ProductID{id}, nil
}

// IsEqual reports whether both identifiers hold the same UUID.
func (id ProductID) IsEqual(other ProductID) bool {
	return id.UUID.IsEqual(other.UUID)
}

package creational

import (
	"errors"
	"fmt"
)

// ProductKind selects which product variant NewProduct returns.
type ProductKind int

// Known product kinds.
const (
	KindA ProductKind = iota
	KindB
)

// ErrUnknownKind indicates NewProduct was called with an unmapped kind.
var ErrUnknownKind = errors.New("unknown product kind")

// NewProduct is the simple factory: it returns a new Product matching
// the given kind. Callers never see the concrete types.
func NewProduct(kind ProductKind) (Product, error) {
	switch kind {
	case KindA:
		return ProductA{}, nil
	case KindB:
		return ProductB{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

package creational

// Product is the capability shared by everything the factories produce.
type Product interface {
	// Show returns a short line identifying the product variant.
	Show() string
}

// ProductA is the first product variant.
type ProductA struct{}

// Show implements Product.
func (ProductA) Show() string { return "productA" }

// ProductB is the second product variant.
type ProductB struct{}

// Show implements Product.
func (ProductB) Show() string { return "productB" }

package creational

// Factory is the creator interface for the factory method pattern.
// Each concrete factory fixes which product its CreateProduct returns,
// so adding a product means adding a factory, not editing one.
type Factory interface {
	CreateProduct() Product
}

// FactoryA creates ProductA instances.
type FactoryA struct{}

// CreateProduct implements Factory.
func (FactoryA) CreateProduct() Product { return ProductA{} }

// FactoryB creates ProductB instances.
type FactoryB struct{}

// CreateProduct implements Factory.
func (FactoryB) CreateProduct() Product { return ProductB{} }

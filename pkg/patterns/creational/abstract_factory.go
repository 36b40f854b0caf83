package creational

// Accessory is the second product line produced by family factories.
type Accessory interface {
	Show() string
}

// AccessoryA is the accessory belonging to family A.
type AccessoryA struct{}

// Show implements Accessory.
func (AccessoryA) Show() string { return "accessoryA" }

// AccessoryB is the accessory belonging to family B.
type AccessoryB struct{}

// Show implements Accessory.
func (AccessoryB) Show() string { return "accessoryB" }

// FamilyFactory is the abstract factory: one creator returns a family
// of related products. A concrete factory never mixes families.
type FamilyFactory interface {
	CreateProduct() Product
	CreateAccessory() Accessory
}

// FamilyA produces ProductA and AccessoryA.
type FamilyA struct{}

// CreateProduct implements FamilyFactory.
func (FamilyA) CreateProduct() Product { return ProductA{} }

// CreateAccessory implements FamilyFactory.
func (FamilyA) CreateAccessory() Accessory { return AccessoryA{} }

// FamilyB produces ProductB and AccessoryB.
type FamilyB struct{}

// CreateProduct implements FamilyFactory.
func (FamilyB) CreateProduct() Product { return ProductB{} }

// CreateAccessory implements FamilyFactory.
func (FamilyB) CreateAccessory() Accessory { return AccessoryB{} }

package structural

// Payment is implemented by both the real service and its proxy.
type Payment interface {
	Show() string
}

// Cash is the real payment service.
type Cash struct{}

// Show implements Payment.
func (*Cash) Show() string { return "here is the cash" }

// CreditCard is a pure forwarding proxy for Cash. It implements the
// same interface and relays calls to the instance it holds.
type CreditCard struct {
	cash *Cash
}

// NewCreditCard creates a proxy over the given cash service.
func NewCreditCard(cash *Cash) *CreditCard {
	return &CreditCard{cash: cash}
}

// Show implements Payment by forwarding to the underlying service.
func (c *CreditCard) Show() string {
	return c.cash.Show()
}

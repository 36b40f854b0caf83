package structural

// Target is the interface callers already program against.
type Target interface {
	Show() string
}

// BaseTarget is the stock Target implementation.
type BaseTarget struct{}

// Show implements Target.
func (BaseTarget) Show() string { return "target class" }

// Service is the incompatible API being adapted. Its method does not
// match the Target interface.
type Service struct{}

// ServiceMethod is the service's native operation.
func (Service) ServiceMethod() string { return "service class" }

// CombinedAdapter satisfies Target by owning both capabilities as
// fields and delegating to each in turn. This replaces the classic
// dual-inheritance class adapter with plain composition.
type CombinedAdapter struct {
	BaseTarget
	Service
}

// Show relays to the target behavior, then the adapted service.
func (a CombinedAdapter) Show() string {
	return a.BaseTarget.Show() + "\n" + a.ServiceMethod()
}

// ObjectAdapter satisfies Target by holding a reference to the service
// it adapts. The relay adds no transformation logic.
type ObjectAdapter struct {
	target  BaseTarget
	service *Service
}

// NewObjectAdapter creates an adapter owning a fresh service instance.
func NewObjectAdapter() *ObjectAdapter {
	return &ObjectAdapter{service: &Service{}}
}

// Show relays to the target behavior, then the adapted service.
func (a *ObjectAdapter) Show() string {
	return a.target.Show() + "\n" + a.service.ServiceMethod()
}

package behavioral

// Handler is one link in a chain of responsibility. Handle processes a
// request and returns the accumulated output of every handler that ran.
type Handler interface {
	// SetNext links the following handler. Chain order is determined by
	// explicit link-setting, not type.
	SetNext(next Handler)

	// Handle processes the request, then forwards it down the chain.
	Handle(req int) []string
}

// BaseHandler performs no work of its own: it only forwards to the next
// handler if one is set. Forwarding past the chain's end is a no-op.
// Concrete handlers embed it to inherit the forwarding behavior.
type BaseHandler struct {
	next Handler
}

// SetNext implements Handler.
func (b *BaseHandler) SetNext(next Handler) {
	b.next = next
}

// Handle implements Handler by forwarding to the next link.
func (b *BaseHandler) Handle(req int) []string {
	if b.next != nil {
		return b.next.Handle(req)
	}
	return nil
}

// FirstHandler handles every request and forwards it on.
type FirstHandler struct {
	BaseHandler
}

// Handle implements Handler.
func (h *FirstHandler) Handle(req int) []string {
	out := []string{"handler1"}
	return append(out, h.BaseHandler.Handle(req)...)
}

// SecondHandler handles every request and forwards it on.
type SecondHandler struct {
	BaseHandler
}

// Handle implements Handler.
func (h *SecondHandler) Handle(req int) []string {
	out := []string{"handler2"}
	return append(out, h.BaseHandler.Handle(req)...)
}

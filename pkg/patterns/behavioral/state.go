package behavioral

// StateKind identifies a player state. States are plain values;
// transition logic lives in the transition function, not in the states.
type StateKind int

// Player states.
const (
	Locked StateKind = iota
	Playing
	Ready
)

// String returns the state's name.
func (k StateKind) String() string {
	switch k {
	case Locked:
		return "locked"
	case Playing:
		return "playing"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Event is a player operation that may trigger a transition.
type Event int

// Player events.
const (
	EventPlay Event = iota
	EventLock
	EventNext
)

// transitionTarget is the pure transition function: given the current
// state and an event it yields the state that owns the event. Every
// event is legal from every state.
func transitionTarget(current StateKind, ev Event) StateKind {
	_ = current // every state accepts every event
	switch ev {
	case EventPlay:
		return Playing
	case EventLock:
		return Locked
	default:
		return Ready
	}
}

// state is a lazily created, cached behavior object for one StateKind.
type state struct {
	kind StateKind
}

// act returns the state's output for the event it owns.
func (s *state) act() string {
	switch s.kind {
	case Playing:
		return "playing..."
	case Locked:
		return "lock..."
	default:
		return "next..."
	}
}

// Player is the state-machine context. It holds exactly one current
// state plus a table of lazily created alternates; repeated transitions
// to the same state reuse the cached instance.
type Player struct {
	current *state
	states  map[StateKind]*state
}

// NewPlayer creates a player starting in the Locked state.
func NewPlayer() *Player {
	p := &Player{states: make(map[StateKind]*state)}
	p.current = p.stateFor(Locked)
	return p
}

// Current returns the active state.
func (p *Player) Current() StateKind {
	return p.current.kind
}

// Play transitions to Playing and performs the play action.
func (p *Player) Play() string {
	return p.apply(EventPlay)
}

// Lock transitions to Locked and performs the lock action.
func (p *Player) Lock() string {
	return p.apply(EventLock)
}

// Next transitions to Ready and performs the next action.
func (p *Player) Next() string {
	return p.apply(EventNext)
}

// apply looks up the transition target, installs it as current, and
// delegates the action to it.
func (p *Player) apply(ev Event) string {
	target := transitionTarget(p.current.kind, ev)
	p.current = p.stateFor(target)
	return p.current.act()
}

// stateFor returns the cached state for the kind, creating it lazily.
func (p *Player) stateFor(kind StateKind) *state {
	if s, ok := p.states[kind]; ok {
		return s
	}
	s := &state{kind: kind}
	p.states[kind] = s
	return s
}

package router

import "fmt"

// ID is the constraint for screen and role identifiers.
// Applications define their own int-based types with iota constants and a String method.
//
// Example:
//
//	type Screen int
//
//	const (
//	    ScreenLogin Screen = iota
//	    ScreenDashboard
//	)
type ID interface {
	comparable
	fmt.Stringer
}

// Params is the optional payload attached to one navigation request,
// such as a selected project id or an initial tab hint.
type Params map[string]any

// String returns the value stored under key when it is a string.
func (p Params) String(key string) string {
	if p == nil {
		return ""
	}
	s, _ := p[key].(string)
	return s
}

// Bool returns the value stored under key when it is a bool.
func (p Params) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

// TransitionKind describes how the current screen changed.
type TransitionKind int

const (
	TransitionForward TransitionKind = iota // Navigate to a new screen
	TransitionBack                          // Popped from the back stack
	TransitionReset                         // Forced back to the entry screen
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionForward:
		return "forward"
	case TransitionBack:
		return "back"
	case TransitionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Transition describes one applied state change.
type Transition[S ID] struct {
	From   S
	To     S
	Params Params
	Kind   TransitionKind
}

// TransitionFunc is called after every applied transition.
// It observes the change; it cannot veto or redirect it.
type TransitionFunc[S ID] func(t Transition[S])

// Router holds the current screen of one app instance and applies transitions
// against a RouteTable. It is a synchronous finite-state machine: states are
// screens, transitions are Navigate/Back/Reset calls, the initial state is the
// table's entry screen, and there is no terminal state.
//
// Router is not safe for concurrent use. All calls are expected from the UI thread.
type Router[S ID, R ID] struct {
	table     *RouteTable[S, R]
	current   S
	params    Params
	stack     *Stack[S]
	listeners []TransitionFunc[S]
}

// New creates a Router positioned on the table's entry screen.
func New[S ID, R ID](table *RouteTable[S, R]) *Router[S, R] {
	return &Router[S, R]{
		table:   table,
		current: table.Entry(),
		stack:   NewStack[S](),
	}
}

// OnTransition registers a listener called after each applied transition.
func (r *Router[S, R]) OnTransition(fn TransitionFunc[S]) *Router[S, R] {
	r.listeners = append(r.listeners, fn)
	return r
}

// Current returns the current screen. It is always defined.
func (r *Router[S, R]) Current() S {
	return r.current
}

// Params returns the params stored by the last transition, for the next render pass.
func (r *Router[S, R]) Params() Params {
	return r.params
}

// Table returns the route table the router validates against.
func (r *Router[S, R]) Table() *RouteTable[S, R] {
	return r.table
}

// Navigate moves to target when role may reach it. The previous screen is pushed
// onto the back stack. If target is not reachable, ErrUnreachableScreen is returned
// and the router state is left untouched.
func (r *Router[S, R]) Navigate(target S, params Params, role R) error {
	if !r.table.Reachable(target, role) {
		return screenError("navigate", target, ErrUnreachableScreen)
	}

	from := r.current
	if from != target && r.table.Reachable(from, role) {
		r.stack.Push(from, r.params)
	}

	r.apply(Transition[S]{From: from, To: target, Params: params, Kind: TransitionForward})
	return nil
}

// Back returns to the most recent stacked screen that role may still reach.
// Returns false and leaves the state untouched when no such screen exists.
func (r *Router[S, R]) Back(role R) bool {
	for entry := r.stack.Pop(); entry != nil; entry = r.stack.Pop() {
		if entry.Screen == r.current || !r.table.Reachable(entry.Screen, role) {
			continue
		}
		r.apply(Transition[S]{From: r.current, To: entry.Screen, Params: entry.Params, Kind: TransitionBack})
		return true
	}
	return false
}

// Reset forces the router back to the entry screen and clears history and params.
func (r *Router[S, R]) Reset() {
	r.stack.Clear()
	if r.current == r.table.Entry() && r.params == nil {
		return
	}
	r.apply(Transition[S]{From: r.current, To: r.table.Entry(), Kind: TransitionReset})
}

// Stack returns the back-navigation stack.
func (r *Router[S, R]) Stack() *Stack[S] {
	return r.stack
}

func (r *Router[S, R]) apply(t Transition[S]) {
	r.current = t.To
	r.params = t.Params
	for _, fn := range r.listeners {
		fn(t)
	}
}

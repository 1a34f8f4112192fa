package router

// StackEntry represents a single entry in the navigation stack.
// It stores the screen identifier and the params that screen was opened with.
type StackEntry[S ID] struct {
	Screen S
	Params Params
}

// DefaultStackDepth bounds the history kept by NewStack.
const DefaultStackDepth = 32

// Stack manages navigation history for back navigation.
// It holds at most depth entries; pushing onto a full stack drops the oldest entry.
type Stack[S ID] struct {
	entries []StackEntry[S]
	depth   int
}

// NewStack creates a new empty navigation stack bounded by DefaultStackDepth.
func NewStack[S ID]() *Stack[S] {
	return NewStackWithDepth[S](DefaultStackDepth)
}

// NewStackWithDepth creates a stack holding at most depth entries.
// A depth below one is treated as one.
func NewStackWithDepth[S ID](depth int) *Stack[S] {
	if depth < 1 {
		depth = 1
	}
	return &Stack[S]{
		entries: make([]StackEntry[S], 0, depth),
		depth:   depth,
	}
}

// Push adds a new entry to the stack.
// Called when navigating forward to a new screen.
func (s *Stack[S]) Push(screen S, params Params) {
	if len(s.entries) == s.depth {
		copy(s.entries, s.entries[1:])
		s.entries = s.entries[:len(s.entries)-1]
	}
	s.entries = append(s.entries, StackEntry[S]{
		Screen: screen,
		Params: params,
	})
}

// Screens returns the stacked screens, oldest first.
func (s *Stack[S]) Screens() []S {
	screens := make([]S, len(s.entries))
	for i, e := range s.entries {
		screens[i] = e.Screen
	}
	return screens
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack[S]) Pop() *StackEntry[S] {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack[S]) Peek() *StackEntry[S] {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack[S]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack[S]) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack[S]) Clear() {
	s.entries = s.entries[:0]
}

package router

// StackEntry is a screen the user can go back to. Resume is handed back to
// the screen when it is shown again.
type StackEntry struct {
	Route  Route
	Input  any
	Resume any
}

// Stack is the wizard's back history. The transition function pushes the
// screen being left and pops it again on Back; the router rolls it back
// when a transition is vetoed.
type Stack struct {
	entries []StackEntry
}

func NewStack() *Stack {
	return &Stack{}
}

// Push records route as the screen Back returns to.
func (s *Stack) Push(route Route, input any, resume any) {
	s.entries = append(s.entries, StackEntry{
		Route:  route,
		Input:  input,
		Resume: resume,
	})
}

// Pop takes the most recent screen off the history, or returns nil at the
// first screen.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek is Pop without removing the entry.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear forgets the history, e.g. when the wizard returns home after an
// install.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// snapshot copies the entries so a vetoed transition can undo whatever the
// transition function pushed or popped.
func (s *Stack) snapshot() []StackEntry {
	return append([]StackEntry(nil), s.entries...)
}

func (s *Stack) restore(entries []StackEntry) {
	s.entries = append(s.entries[:0], entries...)
}

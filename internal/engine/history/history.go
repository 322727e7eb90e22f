// Package history provides the bounded undo/redo snapshot stacks for
// the editing engine. A snapshot captures content and cursor only;
// selection, preferred column and viewport width are deliberately not
// part of content history.
//
// Stack is an immutable value: Push and Pop return new stacks and
// never modify the receiver, so a State holding a stack remains a
// stable snapshot after further edits. The stack is bounded — pushing
// beyond the cap evicts the oldest entries, giving undo history a hard
// memory ceiling.
package history

// DefaultLimit is the maximum number of snapshots a stack retains.
const DefaultLimit = 100

// Snapshot is one undoable state: the logical lines and the cursor.
type Snapshot struct {
	Lines []string
	Row   int
	Col   int
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	lines := make([]string, len(s.Lines))
	copy(lines, s.Lines)
	return Snapshot{Lines: lines, Row: s.Row, Col: s.Col}
}

// Stack is a bounded immutable stack of snapshots. The zero value is
// an empty stack with DefaultLimit capacity.
type Stack struct {
	entries []Snapshot
	limit   int
}

// NewStack returns an empty stack with the given capacity. A
// non-positive limit means DefaultLimit.
func NewStack(limit int) Stack {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Stack{limit: limit}
}

func (s Stack) cap() int {
	if s.limit <= 0 {
		return DefaultLimit
	}
	return s.limit
}

// Len returns the number of snapshots on the stack.
func (s Stack) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether the stack holds no snapshots.
func (s Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Push returns a new stack with snap on top. If the result would
// exceed the cap, the oldest entries are evicted.
func (s Stack) Push(snap Snapshot) Stack {
	start := 0
	if n := len(s.entries) + 1; n > s.cap() {
		start = n - s.cap()
	}
	entries := make([]Snapshot, 0, len(s.entries)-start+1)
	entries = append(entries, s.entries[start:]...)
	entries = append(entries, snap)
	return Stack{entries: entries, limit: s.limit}
}

// Pop returns the top snapshot and the stack without it. ok is false
// on an empty stack, in which case the stack is returned unchanged.
func (s Stack) Pop() (Snapshot, Stack, bool) {
	n := len(s.entries)
	if n == 0 {
		return Snapshot{}, s, false
	}
	return s.entries[n-1], Stack{entries: s.entries[:n-1], limit: s.limit}, true
}

// Peek returns the top snapshot without removing it.
func (s Stack) Peek() (Snapshot, bool) {
	if len(s.entries) == 0 {
		return Snapshot{}, false
	}
	return s.entries[len(s.entries)-1], true
}

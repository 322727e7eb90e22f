package buffer

// VimKind identifies a vim-mode action delegated to the handler.
type VimKind uint8

// Vim motions, edits, and mode transitions.
const (
	// Motions
	VimMoveLeft  VimKind = iota // h
	VimMoveRight                // l
	VimMoveUp                   // k
	VimMoveDown                 // j
	VimWordForward              // w
	VimWordBackward             // b
	VimWordEnd                  // e
	VimLineStart                // 0
	VimLineEnd                  // $
	VimFirstNonBlank            // ^
	VimBufferStart              // gg
	VimBufferEnd                // G
	VimGotoLine                 // [count]G

	// Edits
	VimDeleteWordForward  // dw
	VimDeleteWordBackward // db
	VimDeleteToWordEnd    // de
	VimChangeWordForward  // cw
	VimChangeWordBackward // cb
	VimChangeToWordEnd    // ce
	VimDeleteLine         // dd
	VimChangeLine         // cc
	VimDeleteToLineEnd    // D
	VimChangeToLineEnd    // C

	// Mode transitions
	VimInsert      // i
	VimAppend      // a
	VimOpenBelow   // o
	VimOpenAbove   // O
	VimAppendEnd   // A
	VimInsertStart // I
	VimEscape
)

// VimAction is the payload delegated to the vim handler. Count is the
// repeat prefix; zero or negative means 1.
type VimAction struct {
	Kind  VimKind
	Count int
}

// VimHandler applies vim-mode semantics to a state. Implementations
// must preserve the State invariants and are solely responsible for
// undo-snapshotting their own mutations; the reducer does not snapshot
// before delegating. The handler boundary keeps the base action set
// closed while vim emulation evolves independently.
type VimHandler interface {
	Apply(State, VimAction) State
}

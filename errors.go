package piecetree

import "errors"

// Range errors
var (
	// ErrInvalidOffset names the condition of an offset that does not
	// exist in the tree. No function in this package returns it: offset
	// queries and edits clamp instead (see At, LineAt, Insert).
	ErrInvalidOffset = errors.New("piecetree: offset out of range")

	// ErrInvalidLine names the condition of a line that does not exist. No
	// function in this package returns it: line queries clamp to an empty
	// range instead.
	ErrInvalidLine = errors.New("piecetree: line out of range")
)

// History errors
var (
	// ErrEmptyHistory describes what TryUndo/TryRedo report through
	// UndoRedoResult.Success == false: the relevant stack had nothing to
	// pop. It exists as a named sentinel for callers that want to compare
	// against a stable error value when building their own wrappers around
	// the undo/redo result, even though Tree itself never returns it.
	ErrEmptyHistory = errors.New("piecetree: history stack is empty")
)

// Invariant errors
var (
	// ErrInvariantViolation indicates a red-black tree invariant no longer
	// holds. It is raised only by the debug-only invariant checker used in
	// tests; it is never returned from a product code path.
	ErrInvariantViolation = errors.New("piecetree: red-black invariant violated")
)

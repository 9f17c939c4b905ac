package piecetree

// This file implements undo/redo and direct history manipulation. Because
// every tree mutation produces a brand new root while sharing every
// untouched node with its predecessor, the history stacks only need to
// remember old roots, not diffs or copies of the document.

// UndoRedoEntry pairs a retained root with the offset of the operation
// that moved the tree away from it, so undoing restores both the content
// and the caller's cursor position.
type UndoRedoEntry struct {
	root     *node
	opOffset CharOffset
}

// Root is an opaque handle to a tree's state at some point in time,
// obtained from Head and later restored with SnapTo. Two Roots compare
// equal if and only if they were produced from the same edit.
type Root struct {
	n *node
}

// appendUndo records old as an undo point and discards any pending redo
// history, since redoing past a newly recorded edit would be ambiguous.
func (t *Tree) appendUndo(old *node, opOffset CharOffset) {
	t.redoStack = t.redoStack[:0]
	t.undoStack = append(t.undoStack, UndoRedoEntry{root: old, opOffset: opOffset})
}

// TryUndo restores the most recently recorded root, pushing the tree's
// current root onto the redo stack first. opOffset is stamped onto the
// redo entry so a subsequent TryRedo can report where to place the cursor.
func (t *Tree) TryUndo(opOffset CharOffset) UndoRedoResult {
	if len(t.undoStack) == 0 {
		return UndoRedoResult{}
	}
	t.redoStack = append(t.redoStack, UndoRedoEntry{root: t.root, opOffset: opOffset})
	entry := t.undoStack[len(t.undoStack)-1]
	t.undoStack = t.undoStack[:len(t.undoStack)-1]
	t.root = entry.root
	t.computeBufferMeta()
	return UndoRedoResult{Success: true, OpOffset: entry.opOffset}
}

// TryRedo is TryUndo's mirror image.
func (t *Tree) TryRedo(opOffset CharOffset) UndoRedoResult {
	if len(t.redoStack) == 0 {
		return UndoRedoResult{}
	}
	t.undoStack = append(t.undoStack, UndoRedoEntry{root: t.root, opOffset: opOffset})
	entry := t.redoStack[len(t.redoStack)-1]
	t.redoStack = t.redoStack[:len(t.redoStack)-1]
	t.root = entry.root
	t.computeBufferMeta()
	return UndoRedoResult{Success: true, OpOffset: entry.opOffset}
}

// CommitHead records the tree's current root as an undo point without
// performing an edit, letting a caller group a batch of suppressed edits
// behind a single undo entry.
func (t *Tree) CommitHead(offset CharOffset) {
	t.appendUndo(t.root, offset)
}

// Head returns a handle to the tree's current state.
func (t *Tree) Head() Root {
	return Root{n: t.root}
}

// SnapTo restores the tree to a previously captured Root. r must have been
// derived from this tree (directly or via its history), since a root from
// an unrelated buffer set would desynchronize offsets from content.
func (t *Tree) SnapTo(r Root) {
	t.root = r.n
	t.computeBufferMeta()
}

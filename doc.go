// Package piecetree provides a text-buffer data structure for interactive
// editors. A document is stored as a persistent, structurally-shared
// red-black tree of pieces, each piece a contiguous slice of one of several
// immutable original buffers or a single append-only modification buffer.
// In-order traversal of the tree yields the current document.
//
// Because tree nodes are never mutated after construction, every edit
// produces a new root while sharing the unchanged majority of the previous
// tree with it. Former roots are retained in an undo history; roots
// displaced by an undo move to a redo history so that redo is O(1). A Root
// captured before an edit stays valid forever and can be restored with
// SnapTo; an OwningSnap or ReferenceSnapshot taken from a Root additionally
// offers the full read-only query surface against that frozen state.
//
// The package is not safe for concurrent use: a Tree is owned by a single
// goroutine at a time and performs no internal locking.
package piecetree

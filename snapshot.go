package piecetree

// OwningSnap is a read-only capture of a Tree's content that remains
// valid even after the Tree it was taken from is discarded. It clones the
// BufferCollection's bookkeeping (not the underlying bytes, which are
// append-only and so never need copying) so it owns an independent,
// permanently frozen view of the document.
type OwningSnap struct {
	view
}

// ReferenceSnapshot is a read-only capture of a Tree's content that
// shares its buffers directly with the parent Tree. It is cheaper to take
// than OwningSnap but is only valid for as long as the parent Tree is
// reachable.
type ReferenceSnapshot struct {
	view
}

// OwningSnap captures the Tree's current state as an OwningSnap.
func (t *Tree) OwningSnap() *OwningSnap {
	return t.OwningSnapAt(t.Head())
}

// OwningSnapAt captures r, a Root previously obtained from this Tree, as
// an OwningSnap.
func (t *Tree) OwningSnapAt(r Root) *OwningSnap {
	return &OwningSnap{view: view{
		buffers: t.buffers.clone(),
		root:    r.n,
		meta:    BufferMeta{LFCount: treeLFCount(r.n), TotalContentLength: treeLength(r.n)},
	}}
}

// RefSnap captures the Tree's current state as a ReferenceSnapshot.
func (t *Tree) RefSnap() *ReferenceSnapshot {
	return t.RefSnapAt(t.Head())
}

// RefSnapAt captures r, a Root previously obtained from this Tree, as a
// ReferenceSnapshot.
func (t *Tree) RefSnapAt(r Root) *ReferenceSnapshot {
	return &ReferenceSnapshot{view: view{
		buffers: t.buffers,
		root:    r.n,
		meta:    BufferMeta{LFCount: treeLFCount(r.n), TotalContentLength: treeLength(r.n)},
	}}
}

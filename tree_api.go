package piecetree

import "io"

// BufferMeta caches the two aggregates callers ask for most often so Len,
// LineCount, and LineFeedCount never have to walk the tree.
type BufferMeta struct {
	LFCount            LFCount
	TotalContentLength Length
}

// Tree is a persistent piece-table text buffer. Every mutating method
// replaces the receiver's root with a new one; the buffers underneath the
// pieces are append-only, so every Root ever handed out by Head remains
// valid and independently queryable for as long as the Tree (or a Snap
// derived from it) is reachable.
//
// A Tree has no internal synchronization and must not be shared across
// goroutines without external locking.
type Tree struct {
	view

	lastInsert    BufferCursor
	endLastInsert CharOffset

	undoStack []UndoRedoEntry
	redoStack []UndoRedoEntry
}

// EditOption customizes a single call to Insert or Remove.
type EditOption func(*editOptions)

type editOptions struct {
	suppressHistory bool
}

// SuppressHistory skips recording an undo entry for this edit. The edit
// still updates cached length/line-feed metadata and the insert-coalescing
// cursor as usual.
func SuppressHistory() EditOption {
	return func(o *editOptions) { o.suppressHistory = true }
}

func resolveEditOptions(opts []EditOption) editOptions {
	var o editOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns an empty Tree with no underlying immutable buffers; all
// content will live in the modification buffer.
func New() *Tree {
	return newTreeFromBuffers(nil)
}

// NewFromBlobs builds a Tree whose initial content is the concatenation
// of blobs, each retained as its own immutable original buffer.
func NewFromBlobs(blobs ...[]byte) *Tree {
	return newTreeFromBuffers(blobs)
}

// Builder accumulates blobs that will become a Tree's original buffers,
// mirroring the piece-table convention of building the buffer set before
// the tree that indexes it.
type Builder struct {
	blobs [][]byte
}

// Accept appends txt as the next original buffer.
func (b *Builder) Accept(txt []byte) {
	b.blobs = append(b.blobs, txt)
}

// Create constructs the Tree from every blob accumulated so far.
func (b *Builder) Create() *Tree {
	return newTreeFromBuffers(b.blobs)
}

// NewFromReader drains r into a single original buffer and builds a Tree
// over it.
func NewFromReader(r io.Reader) (*Tree, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return newTreeFromBuffers([][]byte{data}), nil
}

func newTreeFromBuffers(blobs [][]byte) *Tree {
	t := &Tree{endLastInsert: sentinelOffset}
	t.buffers = newBufferCollection(blobs)
	t.buildTree(blobs)
	return t
}

// buildTree seeds root with one piece per non-empty original buffer, each
// spanning the buffer's full content.
func (t *Tree) buildTree(blobs [][]byte) {
	var offset CharOffset
	for i, blob := range blobs {
		if len(blob) == 0 {
			continue
		}
		buf := t.buffers.bufferAt(BufferIndex(i))
		lastLine := buf.lastLine()
		piece := Piece{
			Index:        BufferIndex(i),
			First:        BufferCursor{Line: 0, Column: 0},
			Last:         BufferCursor{Line: lastLine, Column: Length(len(blob)) - buf.lineStarts[lastLine]},
			Length:       Length(len(blob)),
			NewlineCount: lastLine,
		}
		t.root = treeInsert(t.root, NodeData{Piece: piece}, offset)
		offset += piece.Length
	}
	t.computeBufferMeta()
}

// Insert splices txt into the document at offset.
func (t *Tree) Insert(offset CharOffset, txt []byte, opts ...EditOption) {
	if len(txt) == 0 {
		return
	}
	o := resolveEditOptions(opts)
	if !o.suppressHistory {
		if t.endLastInsert != offset || t.root == nil {
			t.appendUndo(t.root, offset)
		}
	}
	t.endLastInsert = offset + CharOffset(len(txt))
	t.internalInsert(offset, txt)
	t.computeBufferMeta()
}

// Remove deletes count characters starting at offset.
func (t *Tree) Remove(offset CharOffset, count Length, opts ...EditOption) {
	if count == 0 || t.root == nil {
		return
	}
	o := resolveEditOptions(opts)
	if !o.suppressHistory {
		t.appendUndo(t.root, offset)
	}
	t.internalRemove(offset, count)
	t.computeBufferMeta()
}

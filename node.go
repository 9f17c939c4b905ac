package piecetree

// color is the red-black tree node color. colorDoubleBlack is never
// produced by insert or remove (the balance-left/balance-right delete does
// without it); the test-only invariant checker rejects any node carrying
// it.
type color uint8

const (
	colorRed color = iota
	colorBlack
	colorDoubleBlack
)

func (c color) String() string {
	switch c {
	case colorRed:
		return "red"
	case colorBlack:
		return "black"
	case colorDoubleBlack:
		return "double-black"
	default:
		return "unknown"
	}
}

// Piece describes a contiguous, half-open range [First, Last) of
// character positions inside one underlying CharBuffer.
type Piece struct {
	Index        BufferIndex
	First        BufferCursor
	Last         BufferCursor
	Length       Length
	NewlineCount LFCount
}

// NodeData is the payload carried by every tree node: the piece it
// represents, plus the aggregate length and line-feed count of its left
// subtree. The aggregates are recomputed at construction time so that
// offset and line queries stay O(log n).
type NodeData struct {
	Piece              Piece
	LeftSubtreeLength  Length
	LeftSubtreeLFCount LFCount
}

// node is an immutable red-black tree node. Nodes are shared by every
// tree root that contains them and are never mutated after construction;
// new roots are built by allocating new ancestors that alias the
// unchanged children of an existing tree.
type node struct {
	color color
	left  *node
	data  NodeData
	right *node
}

// isRed reports whether n is non-nil and colored red. A nil node is
// treated as black, per the standard red-black convention.
func isRed(n *node) bool {
	return n != nil && n.color == colorRed
}

// treeLength returns the total character length spanned by root's pieces.
func treeLength(root *node) Length {
	if root == nil {
		return 0
	}
	return root.data.LeftSubtreeLength + root.data.Piece.Length + treeLength(root.right)
}

// treeLFCount returns the total line-feed count spanned by root's pieces.
func treeLFCount(root *node) LFCount {
	if root == nil {
		return 0
	}
	return root.data.LeftSubtreeLFCount + root.data.Piece.NewlineCount + treeLFCount(root.right)
}

// attribute recomputes data's left-subtree aggregates from left, returning
// a new NodeData ready to be stored in a freshly constructed node.
func attribute(data NodeData, left *node) NodeData {
	data.LeftSubtreeLength = treeLength(left)
	data.LeftSubtreeLFCount = treeLFCount(left)
	return data
}

// newNode constructs a node, re-attributing data's aggregates from left.
// Every node built with a new left child goes through it; the only other
// constructions (paint, and the root repaint in treeInsert/treeRemove)
// copy an existing node's left child and already-attributed data as is, so
// the aggregate invariant is maintained automatically by every tree
// manipulation.
func newNode(c color, left *node, data NodeData, right *node) *node {
	return &node{color: c, left: left, data: attribute(data, left), right: right}
}

// paint returns a node identical to n except for its color. n must be
// non-nil.
func (n *node) paint(c color) *node {
	return &node{color: c, left: n.left, data: n.data, right: n.right}
}

// doubledLeft reports whether n is red and its left child is also red —
// the "left-left" red violation that balance() on insert watches for.
func doubledLeft(n *node) bool {
	return isRed(n) && isRed(n.left)
}

// doubledRight reports whether n is red and its right child is also red.
func doubledRight(n *node) bool {
	return isRed(n) && isRed(n.right)
}

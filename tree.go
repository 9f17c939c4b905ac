package piecetree

// This file implements the persistent (purely functional) red-black tree
// that backs the piece tree: insert and remove each return a new root that
// shares every unaffected node with the receiver. Ordering is by the
// accumulated character offset of each node, computed from the aggregate
// NodeData carried by every ancestor on the path to it.
//
// Insertion uses Okasaki's four-case balance, applied on the way back up
// from the inserted leaf. Deletion uses the
// balance-left/balance-right/fuse variant: descending into a subtree whose
// pre-recursion child was black re-balances on the way back up to restore
// black height, and fuse merges two same-black-height subtrees when the
// node between them is deleted.

// treeInsert inserts data at offset at into root, returning a new root.
func treeInsert(root *node, data NodeData, at CharOffset) *node {
	t := ins(root, data, at, 0)
	return &node{color: colorBlack, left: t.left, data: t.data, right: t.right}
}

// ins performs the recursive, offset-routed insert, rebalancing on the way
// back up via balance.
func ins(root *node, x NodeData, at, totalOffset CharOffset) *node {
	if root == nil {
		return newNode(colorRed, nil, x, nil)
	}
	y := root.data
	if at < totalOffset+y.LeftSubtreeLength+y.Piece.Length {
		return balance(root.color, ins(root.left, x, at, totalOffset), y, root.right)
	}
	return balance(root.color, root.left, y, ins(root.right, x, at, totalOffset+y.LeftSubtreeLength+y.Piece.Length))
}

// balance applies Okasaki's four red-red-violation cases against a black
// parent of color c; any other shape is passed through unchanged.
func balance(c color, lft *node, x NodeData, rgt *node) *node {
	switch {
	case c == colorBlack && doubledLeft(lft):
		return newNode(colorRed,
			lft.left.paint(colorBlack),
			lft.data,
			newNode(colorBlack, lft.right, x, rgt))
	case c == colorBlack && doubledRight(lft):
		return newNode(colorRed,
			newNode(colorBlack, lft.left, lft.data, lft.right.left),
			lft.right.data,
			newNode(colorBlack, lft.right.right, x, rgt))
	case c == colorBlack && doubledLeft(rgt):
		return newNode(colorRed,
			newNode(colorBlack, lft, x, rgt.left.left),
			rgt.left.data,
			newNode(colorBlack, rgt.left.right, rgt.data, rgt.right))
	case c == colorBlack && doubledRight(rgt):
		return newNode(colorRed,
			newNode(colorBlack, lft, x, rgt.left),
			rgt.data,
			rgt.right.paint(colorBlack))
	default:
		return newNode(c, lft, x, rgt)
	}
}

// treeRemove removes the piece located at offset at from root, returning a
// new root.
func treeRemove(root *node, at CharOffset) *node {
	t := rem(root, at, 0)
	if t == nil {
		return nil
	}
	return &node{color: colorBlack, left: t.left, data: t.data, right: t.right}
}

// rem is the recursive, offset-routed delete.
func rem(root *node, at, total CharOffset) *node {
	if root == nil {
		return nil
	}
	y := root.data
	switch {
	case at < total+y.LeftSubtreeLength:
		return removeLeft(root, at, total)
	case at == total+y.LeftSubtreeLength:
		return fuse(root.left, root.right)
	default:
		return removeRight(root, at, total)
	}
}

// removeLeft recurses into root's left child and restores black height on
// the way back up if that child was black before the recursive call.
func removeLeft(root *node, at, total CharOffset) *node {
	newLeft := rem(root.left, at, total)
	newRoot := newNode(colorRed, newLeft, root.data, root.right)
	if root.left != nil && root.left.color == colorBlack {
		return balanceLeft(newRoot)
	}
	return newRoot
}

// removeRight is the mirror image of removeLeft.
func removeRight(root *node, at, total CharOffset) *node {
	y := root.data
	newRight := rem(root.right, at, total+y.LeftSubtreeLength+y.Piece.Length)
	newRoot := newNode(colorRed, root.left, root.data, newRight)
	if root.right != nil && root.right.color == colorBlack {
		return balanceRight(newRoot)
	}
	return newRoot
}

// fuse merges two subtrees of equal black height into one, called when
// the node that separated them is deleted.
func fuse(left, right *node) *node {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	case left.color == colorBlack && right.color == colorRed:
		return newNode(colorRed, fuse(left, right.left), right.data, right.right)
	case left.color == colorRed && right.color == colorBlack:
		return newNode(colorRed, left.left, left.data, fuse(left.right, right))
	case left.color == colorRed && right.color == colorRed:
		fused := fuse(left.right, right.left)
		if fused != nil && fused.color == colorRed {
			newLeft := newNode(colorRed, left.left, left.data, fused.left)
			newRight := newNode(colorRed, fused.right, right.data, right.right)
			return newNode(colorRed, newLeft, fused.data, newRight)
		}
		newRight := newNode(colorRed, fused, right.data, right.right)
		return newNode(colorRed, left.left, left.data, newRight)
	default: // (black, black)
		fused := fuse(left.right, right.left)
		if fused != nil && fused.color == colorRed {
			newLeft := newNode(colorBlack, left.left, left.data, fused.left)
			newRight := newNode(colorBlack, fused.right, right.data, right.right)
			return newNode(colorRed, newLeft, fused.data, newRight)
		}
		newRight := newNode(colorBlack, fused, right.data, right.right)
		newRoot := newNode(colorRed, left.left, left.data, newRight)
		return balanceLeft(newRoot)
	}
}

// rebalance resolves a double-red at the top of node, or — if node's root
// is actually black — defers to balance for the finer-grained cases.
func rebalance(n *node) *node {
	if isRed(n.left) && isRed(n.right) {
		return newNode(colorRed, n.left.paint(colorBlack), n.data, n.right.paint(colorBlack))
	}
	return balance(n.color, n.left, n.data, n.right)
}

// balanceLeft restores the red-black invariant after a black-height
// deficit appears below left's left side.
func balanceLeft(left *node) *node {
	switch {
	case isRed(left.left):
		return newNode(colorRed, left.left.paint(colorBlack), left.data, left.right)
	case left.right != nil && left.right.color == colorBlack:
		newLeft := newNode(colorBlack, left.left, left.data, left.right.paint(colorRed))
		return rebalance(newLeft)
	case isRed(left.right) && left.right.left != nil && left.right.left.color == colorBlack:
		rl := left.right
		unbalancedNewRight := newNode(colorBlack, rl.left.right, rl.data, rl.right.paint(colorRed))
		newRight := rebalance(unbalancedNewRight)
		newLeft := newNode(colorBlack, left.left, left.data, rl.left.left)
		return newNode(colorRed, newLeft, rl.left.data, newRight)
	default:
		panic("piecetree: balanceLeft reached an impossible shape")
	}
}

// balanceRight is the mirror image of balanceLeft.
func balanceRight(right *node) *node {
	switch {
	case isRed(right.right):
		return newNode(colorRed, right.left, right.data, right.right.paint(colorBlack))
	case right.left != nil && right.left.color == colorBlack:
		newRight := newNode(colorBlack, right.left.paint(colorRed), right.data, right.right)
		return rebalance(newRight)
	case isRed(right.left) && right.left.right != nil && right.left.right.color == colorBlack:
		lr := right.left
		unbalancedNewLeft := newNode(colorBlack, lr.left.paint(colorRed), lr.data, lr.right.left)
		newLeft := rebalance(unbalancedNewLeft)
		newRight := newNode(colorBlack, lr.right.right, right.data, right.right)
		return newNode(colorRed, newLeft, lr.right.data, newRight)
	default:
		panic("piecetree: balanceRight reached an impossible shape")
	}
}

package piecetree

import "fmt"

// checkInvariants walks root and confirms the red-black invariants hold: no
// red node has a red child, and every path from root to a nil leaf passes
// through the same number of black nodes. It also re-derives each node's
// cached aggregates from its children and confirms they match what
// attribute would have computed, catching any place a mutation bypassed
// newNode. It is only ever called from tests.
func checkInvariants(root *node) error {
	if root != nil && root.color == colorRed {
		return fmt.Errorf("%w: root is red", ErrInvariantViolation)
	}
	_, err := checkNode(root)
	return err
}

func checkNode(n *node) (blackHeight int, err error) {
	if n == nil {
		return 1, nil
	}
	if n.color == colorDoubleBlack {
		return 0, fmt.Errorf("%w: double-black color escaped into a finished tree", ErrInvariantViolation)
	}
	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		return 0, fmt.Errorf("%w: red node has a red child", ErrInvariantViolation)
	}

	wantData := attribute(n.data, n.left)
	if wantData.LeftSubtreeLength != n.data.LeftSubtreeLength || wantData.LeftSubtreeLFCount != n.data.LeftSubtreeLFCount {
		return 0, fmt.Errorf("%w: cached aggregates stale (got length=%d lf=%d, want length=%d lf=%d)",
			ErrInvariantViolation, n.data.LeftSubtreeLength, n.data.LeftSubtreeLFCount,
			wantData.LeftSubtreeLength, wantData.LeftSubtreeLFCount)
	}

	leftHeight, err := checkNode(n.left)
	if err != nil {
		return 0, err
	}
	rightHeight, err := checkNode(n.right)
	if err != nil {
		return 0, err
	}
	if leftHeight != rightHeight {
		return 0, fmt.Errorf("%w: black height mismatch (left=%d right=%d)", ErrInvariantViolation, leftHeight, rightHeight)
	}
	if n.color == colorBlack {
		return leftHeight + 1, nil
	}
	return leftHeight, nil
}

// collectInOrder returns every piece under root in document order, used by
// tests to confirm a sequence of tree edits preserved the expected content
// shape without walking through the public Tree API.
func collectInOrder(root *node) []Piece {
	if root == nil {
		return nil
	}
	var out []Piece
	out = append(out, collectInOrder(root.left)...)
	out = append(out, root.data.Piece)
	out = append(out, collectInOrder(root.right)...)
	return out
}

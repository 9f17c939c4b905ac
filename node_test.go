package piecetree

import "testing"

func leafData(length Length) NodeData {
	return NodeData{Piece: Piece{Length: length}}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    color
		want string
	}{
		{colorRed, "red"},
		{colorBlack, "black"},
		{colorDoubleBlack, "double-black"},
		{color(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("color(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestIsRed(t *testing.T) {
	if isRed(nil) {
		t.Error("isRed(nil) should be false")
	}
	black := newNode(colorBlack, nil, leafData(1), nil)
	if isRed(black) {
		t.Error("black node should not be red")
	}
	red := newNode(colorRed, nil, leafData(1), nil)
	if !isRed(red) {
		t.Error("red node should be red")
	}
}

func TestTreeLengthAndLFCount(t *testing.T) {
	left := newNode(colorBlack, nil, NodeData{Piece: Piece{Length: 3, NewlineCount: 1}}, nil)
	right := newNode(colorBlack, nil, NodeData{Piece: Piece{Length: 5, NewlineCount: 2}}, nil)
	root := newNode(colorBlack, left, NodeData{Piece: Piece{Length: 2, NewlineCount: 0}}, right)

	if got := treeLength(root); got != 10 {
		t.Errorf("treeLength = %d, want 10", got)
	}
	if got := treeLFCount(root); got != 3 {
		t.Errorf("treeLFCount = %d, want 3", got)
	}
	if got := treeLength(nil); got != 0 {
		t.Errorf("treeLength(nil) = %d, want 0", got)
	}
}

func TestNewNodeAttributesFromLeft(t *testing.T) {
	left := newNode(colorBlack, nil, NodeData{Piece: Piece{Length: 4, NewlineCount: 1}}, nil)
	root := newNode(colorBlack, left, NodeData{Piece: Piece{Length: 2}}, nil)

	if root.data.LeftSubtreeLength != 4 {
		t.Errorf("LeftSubtreeLength = %d, want 4", root.data.LeftSubtreeLength)
	}
	if root.data.LeftSubtreeLFCount != 1 {
		t.Errorf("LeftSubtreeLFCount = %d, want 1", root.data.LeftSubtreeLFCount)
	}

	leaf := newNode(colorBlack, nil, leafData(7), nil)
	if leaf.data.LeftSubtreeLength != 0 || leaf.data.LeftSubtreeLFCount != 0 {
		t.Error("a leaf's left-subtree aggregates should be zero")
	}
}

func TestNodePaintPreservesShape(t *testing.T) {
	left := newNode(colorBlack, nil, leafData(1), nil)
	right := newNode(colorBlack, nil, leafData(1), nil)
	n := newNode(colorRed, left, leafData(2), right)

	painted := n.paint(colorBlack)
	if painted.color != colorBlack {
		t.Errorf("painted color = %v, want black", painted.color)
	}
	if painted.left != n.left || painted.right != n.right {
		t.Error("paint should not change children")
	}
	if n.color != colorRed {
		t.Error("paint must not mutate the receiver")
	}
}

func TestDoubledLeftAndRight(t *testing.T) {
	redLeaf := newNode(colorRed, nil, leafData(1), nil)
	blackLeaf := newNode(colorBlack, nil, leafData(1), nil)

	withRedLeft := newNode(colorRed, redLeaf, leafData(1), blackLeaf)
	if !doubledLeft(withRedLeft) {
		t.Error("expected doubledLeft to be true")
	}
	if doubledRight(withRedLeft) {
		t.Error("expected doubledRight to be false")
	}

	withRedRight := newNode(colorRed, blackLeaf, leafData(1), redLeaf)
	if !doubledRight(withRedRight) {
		t.Error("expected doubledRight to be true")
	}

	if doubledLeft(nil) || doubledRight(nil) {
		t.Error("a nil node can never be doubled")
	}
}

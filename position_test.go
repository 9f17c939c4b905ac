package piecetree

import "testing"

func TestNodeAtLocatesOffset(t *testing.T) {
	tr := NewFromBlobs([]byte("hello\nworld"))

	res := nodeAt(tr.buffers, tr.root, 7)
	if !res.found() {
		t.Fatal("nodeAt should have found a piece")
	}
	if res.line != 2 {
		t.Errorf("line = %d, want 2", res.line)
	}
}

func TestNodeAtPastEndReturnsRightmostPiece(t *testing.T) {
	tr := NewFromBlobs([]byte("hello"))
	res := nodeAt(tr.buffers, tr.root, 1000)
	if !res.found() {
		t.Fatal("nodeAt should still find the rightmost piece for an out-of-range offset")
	}
}

func TestNodeAtEmptyTree(t *testing.T) {
	tr := New()
	res := nodeAt(tr.buffers, tr.root, 0)
	if res.found() {
		t.Error("nodeAt on an empty tree should report not found")
	}
}

func TestLineStartAccumFindsLineStarts(t *testing.T) {
	tr := NewFromBlobs([]byte("aaa\nbbb\nccc"))

	if got := lineStartAccum(tr.buffers, tr.root, 1, accumulateValue); got != 0 {
		t.Errorf("line 1 start = %d, want 0", got)
	}
	if got := lineStartAccum(tr.buffers, tr.root, 2, accumulateValue); got != 4 {
		t.Errorf("line 2 start = %d, want 4", got)
	}
	if got := lineStartAccum(tr.buffers, tr.root, 3, accumulateValue); got != 8 {
		t.Errorf("line 3 start = %d, want 8", got)
	}
}

func TestCharAtAndOutOfRange(t *testing.T) {
	tr := NewFromBlobs([]byte("abc"))
	if got := charAt(tr.buffers, tr.root, 0); got != 'a' {
		t.Errorf("charAt(0) = %q, want 'a'", got)
	}
	if got := charAt(tr.buffers, tr.root, 2); got != 'c' {
		t.Errorf("charAt(2) = %q, want 'c'", got)
	}
	if got := charAt(tr.buffers, tr.root, 100); got != 0 {
		t.Errorf("charAt(out of range) = %q, want 0", got)
	}
}

func TestLineEndCRLFRetractsCRLF(t *testing.T) {
	tr := NewFromBlobs([]byte("line one\r\nline two"))

	// lineEndCRLF is addressed by the line after the one whose end is
	// wanted, the same way LineRangeCRLF calls it.
	var offset CharOffset
	lineEndCRLF(tr.buffers, tr.root, tr.root, 2, &offset)
	if offset != 8 {
		t.Errorf("CRLF-aware line end = %d, want 8 (excluding \\r\\n)", offset)
	}

	withoutCRLF := NewFromBlobs([]byte("line one\nline two"))
	var offset2 CharOffset
	lineEndCRLF(withoutCRLF.buffers, withoutCRLF.root, withoutCRLF.root, 2, &offset2)
	if offset2 != 8 {
		t.Errorf("LF-only line end = %d, want 8", offset2)
	}
}

func TestBufferPositionBinarySearch(t *testing.T) {
	c := newBufferCollection([][]byte{[]byte("aa\nbb\ncc\ndd")})
	piece := Piece{Index: 0, First: BufferCursor{0, 0}, Last: BufferCursor{3, 2}, Length: 11}

	pos := c.bufferPosition(piece, 6) // offset 6 into the buffer is the first 'c' of "cc"
	if pos.Line != 2 || pos.Column != 0 {
		t.Errorf("bufferPosition = %+v, want {Line:2 Column:0}", pos)
	}
}

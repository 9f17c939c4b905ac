package piecetree

// This file implements the piece-level edit engine: turning a raw
// insert/remove request at an absolute offset into the handful of
// RedBlack-tree insert/remove calls that keep the document's pieces
// contiguous and minimal.

// buildPiece appends txt to the tree's modification buffer and returns a
// piece spanning it, threading the tree's last-insert cursor so
// consecutive builds tile the buffer without gaps.
func (t *Tree) buildPiece(txt []byte) Piece {
	piece, next := t.buffers.buildPiece(txt, t.lastInsert)
	t.lastInsert = next
	return piece
}

// internalInsert splits whichever piece contains offset (if any) and
// grafts a freshly built piece for txt into the gap.
func (t *Tree) internalInsert(offset CharOffset, txt []byte) {
	if len(txt) == 0 {
		return
	}
	if t.root == nil {
		piece := t.buildPiece(txt)
		t.root = treeInsert(t.root, NodeData{Piece: piece}, 0)
		return
	}

	result := nodeAt(t.buffers, t.root, offset)
	if !result.found() {
		off := CharOffset(0)
		if t.meta.TotalContentLength != 0 {
			off = t.meta.TotalContentLength - 1
		}
		result = nodeAt(t.buffers, t.root, off)
	}

	nodeStartOffset := result.startOffset
	piece := result.data.Piece
	insertPos := t.buffers.bufferPosition(piece, result.remainder)

	// Case 1: inserting exactly at the start of an existing piece.
	if nodeStartOffset == offset {
		newPiece := t.buildPiece(txt)
		t.root = treeInsert(t.root, NodeData{Piece: newPiece}, offset)
		return
	}

	insideNode := offset < nodeStartOffset+piece.Length

	// Case 2: inserting at or past the end of an existing piece.
	if !insideNode {
		newPiece := t.buildPiece(txt)
		t.root = treeInsert(t.root, NodeData{Piece: newPiece}, offset)
		return
	}

	// Case 3: inserting inside a piece. Split it into a left remainder, the
	// freshly inserted piece, and a right remainder.
	newPieceRight := piece
	newPieceRight.First = insertPos
	newPieceRight.Length = t.buffers.bufferOffset(piece.Index, piece.Last) - t.buffers.bufferOffset(piece.Index, insertPos)
	newPieceRight.NewlineCount = t.buffers.lineFeedCount(piece.Index, insertPos, piece.Last)

	newPieceLeft := t.buffers.trimPieceRight(piece, insertPos)
	newPiece := t.buildPiece(txt)

	t.root = treeRemove(t.root, nodeStartOffset)
	t.root = treeInsert(t.root, NodeData{Piece: newPieceLeft}, nodeStartOffset)

	midOffset := nodeStartOffset + newPieceLeft.Length
	t.root = treeInsert(t.root, NodeData{Piece: newPiece}, midOffset)

	rightOffset := midOffset + newPiece.Length
	t.root = treeInsert(t.root, NodeData{Piece: newPieceRight}, rightOffset)
}

// removeNodeRange deletes whole pieces starting at first until length
// characters have been removed, leaving any partial remainder at the edges
// for the caller to re-insert.
func (t *Tree) removeNodeRange(first positionResult, length Length) {
	totalLength := first.data.Piece.Length
	length = length - (totalLength - first.remainder) + totalLength
	deleteAtOffset := first.startOffset

	var deletedLen Length
	for deletedLen < length && first.found() {
		deletedLen += first.data.Piece.Length
		t.root = treeRemove(t.root, deleteAtOffset)
		first = nodeAt(t.buffers, t.root, deleteAtOffset)
	}
}

// internalRemove deletes count characters starting at offset, trimming
// the pieces at either edge of the range and removing every whole piece
// in between.
func (t *Tree) internalRemove(offset CharOffset, count Length) {
	if count == 0 || t.root == nil {
		return
	}

	first := nodeAt(t.buffers, t.root, offset)
	last := nodeAt(t.buffers, t.root, offset+count)
	firstPiece := first.data.Piece

	startSplitPos := t.buffers.bufferPosition(firstPiece, first.remainder)

	if last.found() && first.data == last.data {
		endSplitPos := t.buffers.bufferPosition(firstPiece, last.remainder)

		if first.startOffset == offset {
			if count == firstPiece.Length {
				t.root = treeRemove(t.root, first.startOffset)
				return
			}
			newPiece := t.buffers.trimPieceLeft(firstPiece, endSplitPos)
			t.root = treeRemove(t.root, first.startOffset)
			t.root = treeInsert(t.root, NodeData{Piece: newPiece}, first.startOffset)
			return
		}

		if first.startOffset+firstPiece.Length == offset+count {
			newPiece := t.buffers.trimPieceRight(firstPiece, startSplitPos)
			t.root = treeRemove(t.root, first.startOffset)
			t.root = treeInsert(t.root, NodeData{Piece: newPiece}, first.startOffset)
			return
		}

		left, right := t.buffers.shrinkPiece(firstPiece, startSplitPos, endSplitPos)
		t.root = treeRemove(t.root, first.startOffset)
		t.root = treeInsert(t.root, NodeData{Piece: right}, first.startOffset)
		t.root = treeInsert(t.root, NodeData{Piece: left}, first.startOffset)
		return
	}

	newFirst := t.buffers.trimPieceRight(firstPiece, startSplitPos)
	if !last.found() {
		t.removeNodeRange(first, count)
	} else {
		lastPiece := last.data.Piece
		endSplitPos := t.buffers.bufferPosition(lastPiece, last.remainder)
		newLast := t.buffers.trimPieceLeft(lastPiece, endSplitPos)
		t.removeNodeRange(first, count)
		if last.remainder != 0 && newLast.Length != 0 {
			t.root = treeInsert(t.root, NodeData{Piece: newLast}, first.startOffset)
		}
	}

	if newFirst.Length != 0 {
		t.root = treeInsert(t.root, NodeData{Piece: newFirst}, first.startOffset)
	}
}

// computeBufferMeta recomputes the cached total length and line-feed count
// for the current root, keeping Len/LineCount/LineFeedCount at O(1).
func (t *Tree) computeBufferMeta() {
	t.meta.LFCount = treeLFCount(t.root)
	t.meta.TotalContentLength = treeLength(t.root)
}

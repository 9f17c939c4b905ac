package piecetree

// This file maps between absolute character offsets, (line, column) pairs,
// and concrete buffer cursors, using the aggregate metadata cached in each
// tree node so that every query below runs in O(log n).

// positionResult is the outcome of locating the piece that contains a
// given absolute offset.
type positionResult struct {
	data        *NodeData
	remainder   Length
	startOffset CharOffset
	line        Line
}

// found reports whether nodeAt located a piece; it is false only when the
// tree was empty.
func (p positionResult) found() bool {
	return p.data != nil
}

// nodeAt descends root by accumulated offset, returning the node whose
// piece contains off. If off runs past the end of the document, the
// rightmost piece is returned so callers can still identify "at end of
// document".
func nodeAt(c *BufferCollection, root *node, off CharOffset) positionResult {
	n := root
	var nodeStartOffset CharOffset
	var newlineCount LFCount
	for n != nil {
		switch {
		case n.data.LeftSubtreeLength > off:
			n = n.left
		case n.data.LeftSubtreeLength+n.data.Piece.Length > off:
			nodeStartOffset += n.data.LeftSubtreeLength
			newlineCount += n.data.LeftSubtreeLFCount
			remainder := off - n.data.LeftSubtreeLength
			pos := c.bufferPosition(n.data.Piece, remainder)
			newlineCount += pos.Line - n.data.Piece.First.Line
			return positionResult{
				data:        &n.data,
				remainder:   remainder,
				startOffset: nodeStartOffset,
				line:        newlineCount + 1,
			}
		default:
			if n.right == nil {
				nodeStartOffset += n.data.LeftSubtreeLength
				newlineCount += n.data.LeftSubtreeLFCount + n.data.Piece.NewlineCount
				return positionResult{
					data:        &n.data,
					remainder:   n.data.Piece.Length,
					startOffset: nodeStartOffset,
					line:        newlineCount + 1,
				}
			}
			offsetAmount := n.data.LeftSubtreeLength + n.data.Piece.Length
			off -= offsetAmount
			nodeStartOffset += offsetAmount
			newlineCount += n.data.LeftSubtreeLFCount + n.data.Piece.NewlineCount
			n = n.right
		}
	}
	return positionResult{}
}

// bufferPosition binary-searches piece's buffer's line-start index for the
// line containing piece's origin offset plus remainder characters.
func (c *BufferCollection) bufferPosition(piece Piece, remainder Length) BufferCursor {
	starts := c.bufferAt(piece.Index).lineStarts
	startOffset := starts[piece.First.Line] + piece.First.Column
	offset := startOffset + remainder

	low, high := piece.First.Line, piece.Last.Line
	mid, midStart := low, starts[low]
	for low <= high {
		mid = low + (high-low)/2
		midStart = starts[mid]
		if mid == high {
			break
		}
		midStop := starts[mid+1]
		if offset < midStart {
			high = mid - 1
		} else if offset >= midStop {
			low = mid + 1
		} else {
			break
		}
	}
	return BufferCursor{Line: mid, Column: offset - midStart}
}

// accumulator selects between including or excluding a trailing line feed
// when summing a piece's content up to a given relative line. The two
// variants behave identically except when the summed span ends in a '\n'.
type accumulator func(c *BufferCollection, piece Piece, index Line) Length

// accumulateValue returns the length of piece from its first line through
// relative line index, inclusive of any terminating line feed.
func accumulateValue(c *BufferCollection, piece Piece, index Line) Length {
	buf := c.bufferAt(piece.Index)
	starts := buf.lineStarts
	expectedStart := piece.First.Line + index + 1
	first := starts[piece.First.Line] + piece.First.Column
	if expectedStart > piece.Last.Line {
		last := starts[piece.Last.Line] + piece.Last.Column
		return last - first
	}
	last := starts[expectedStart]
	return last - first
}

// accumulateValueNoLF is accumulateValue but excludes a trailing '\n' so
// the reported length stops at the end of the line's content.
func accumulateValueNoLF(c *BufferCollection, piece Piece, index Line) Length {
	buf := c.bufferAt(piece.Index)
	starts := buf.lineStarts
	expectedStart := piece.First.Line + index + 1
	first := starts[piece.First.Line] + piece.First.Column
	if expectedStart > piece.Last.Line {
		last := starts[piece.Last.Line] + piece.Last.Column
		if last == first {
			return 0
		}
		if buf.bytes[last-1] == '\n' {
			return last - 1 - first
		}
		return last - first
	}
	last := starts[expectedStart]
	if last == first {
		return 0
	}
	if buf.bytes[last-1] == '\n' {
		return last - 1 - first
	}
	return last - first
}

// lineStartAccum walks root accumulating the CharOffset of the start of
// line (1-based), using accumulate to size the final partial piece.
func lineStartAccum(c *BufferCollection, root *node, line Line, accumulate accumulator) CharOffset {
	var offset CharOffset
	lineStartAccumInto(c, root, line, accumulate, &offset)
	return offset
}

func lineStartAccumInto(c *BufferCollection, root *node, line Line, accumulate accumulator, offset *CharOffset) {
	if root == nil {
		return
	}
	lineIndex := line - 1
	switch {
	case root.data.LeftSubtreeLFCount >= lineIndex:
		lineStartAccumInto(c, root.left, line, accumulate, offset)
	case root.data.LeftSubtreeLFCount+root.data.Piece.NewlineCount >= lineIndex:
		lineIndex -= root.data.LeftSubtreeLFCount
		length := root.data.LeftSubtreeLength
		if lineIndex != 0 {
			length += accumulate(c, root.data.Piece, lineIndex-1)
		}
		*offset += length
	default:
		lineIndex -= root.data.LeftSubtreeLFCount + root.data.Piece.NewlineCount
		*offset += root.data.LeftSubtreeLength + root.data.Piece.Length
		lineStartAccumInto(c, root.right, lineIndex+1, accumulate, offset)
	}
}

// charAt returns the byte at offset within the document rooted at
// fullRoot, or 0 if offset is out of range. It always addresses fullRoot
// regardless of which subtree a recursive caller is currently examining.
func charAt(c *BufferCollection, fullRoot *node, offset CharOffset) byte {
	result := nodeAt(c, fullRoot, offset)
	if !result.found() {
		return 0
	}
	piece := result.data.Piece
	bufOffset := c.bufferOffset(piece.Index, piece.First)
	buf := c.bufferAt(piece.Index)
	idx := bufOffset + result.remainder
	if idx < 0 || idx >= Length(len(buf.bytes)) {
		return 0
	}
	return buf.bytes[idx]
}

// lineEndCRLF is lineStartAccum's CRLF-aware counterpart for the end of a
// line: like lineStartAccum(line, accumulateValueNoLF) it reports the end
// of the content of line-1 (so callers pass the line after the one whose
// end they want), and it retracts the reported offset by one more when
// that line's last two bytes are "\r\n", so neither is included. node is
// the subtree currently
// being examined; fullRoot is always the whole document, needed to look
// up the byte following a candidate line end.
func lineEndCRLF(c *BufferCollection, fullRoot *node, node *node, line Line, offset *CharOffset) {
	if node == nil {
		return
	}
	lineIndex := line - 1
	switch {
	case node.data.LeftSubtreeLFCount >= lineIndex:
		lineEndCRLF(c, fullRoot, node.left, line, offset)
	case node.data.LeftSubtreeLFCount+node.data.Piece.NewlineCount >= lineIndex:
		lineIndex -= node.data.LeftSubtreeLFCount
		length := node.data.LeftSubtreeLength
		if lineIndex != 0 {
			length += accumulateValueNoLF(c, node.data.Piece, lineIndex-1)
		}
		if length != 0 {
			lastCharOffset := *offset + length - 1
			if charAt(c, fullRoot, lastCharOffset) == '\r' && charAt(c, fullRoot, lastCharOffset+1) == '\n' {
				length--
			}
		}
		*offset += length
	default:
		piece := node.data.Piece
		lineIndex -= node.data.LeftSubtreeLFCount + piece.NewlineCount
		*offset += node.data.LeftSubtreeLength + piece.Length
		lineEndCRLF(c, fullRoot, node.right, lineIndex+1, offset)
	}
}

package piecetree

// This file implements the piece-level helpers used by the edit engine:
// building pieces out of newly inserted text, trimming a piece from either
// end when an edit lands inside it, and counting line feeds within a
// buffer range.

// lineFeedCount returns the number of line feeds strictly inside the
// range [start, end) of the buffer identified by index.
//
// By SPEC_FULL.md's resolution of the CRLF open question, a line feed is
// any '\n' byte; '\r' is ordinary content except at the CRLF line-range
// query boundary (see LineRangeCRLF/LineContentCRLF), so this count is
// simply the number of line-start entries after start's line, up to and
// including end's line.
func (c *BufferCollection) lineFeedCount(index BufferIndex, start, end BufferCursor) LFCount {
	return end.Line - start.Line
}

// trimPieceRight returns a piece identical to piece but ending at pos
// instead of piece.Last, recomputing length and newline count.
func (c *BufferCollection) trimPieceRight(piece Piece, pos BufferCursor) Piece {
	origEnd := c.bufferOffset(piece.Index, piece.Last)
	newEnd := c.bufferOffset(piece.Index, pos)
	newLF := c.lineFeedCount(piece.Index, piece.First, pos)

	newPiece := piece
	newPiece.Last = pos
	newPiece.NewlineCount = newLF
	newPiece.Length -= origEnd - newEnd
	return newPiece
}

// trimPieceLeft returns a piece identical to piece but starting at pos
// instead of piece.First, recomputing length and newline count.
func (c *BufferCollection) trimPieceLeft(piece Piece, pos BufferCursor) Piece {
	origStart := c.bufferOffset(piece.Index, piece.First)
	newStart := c.bufferOffset(piece.Index, pos)
	newLF := c.lineFeedCount(piece.Index, pos, piece.Last)

	newPiece := piece
	newPiece.First = pos
	newPiece.NewlineCount = newLF
	newPiece.Length -= newStart - origStart
	return newPiece
}

// shrinkPiece splits piece into a left remainder ending at first and a
// right remainder starting at last, used when an edit removes a strictly
// interior span of a single piece.
func (c *BufferCollection) shrinkPiece(piece Piece, first, last BufferCursor) (left, right Piece) {
	return c.trimPieceRight(piece, first), c.trimPieceLeft(piece, last)
}

// buildPiece appends txt to the modification buffer and returns a Piece
// spanning the newly appended bytes. last is the buffer cursor following
// the previous append (0,0 initially); it is the caller's responsibility
// to thread the returned cursor into the next call so that consecutive
// pieces tile the modification buffer without gaps.
func (c *BufferCollection) buildPiece(txt []byte, last BufferCursor) (Piece, BufferCursor) {
	startOffset := Length(len(c.mod.bytes))
	newStarts := populateLineStarts(txt)

	// Offset the freshly discovered line starts by the buffer's current
	// size, then append everything but the leading zero entry that every
	// populateLineStarts result begins with.
	for i := 1; i < len(newStarts); i++ {
		c.mod.lineStarts = append(c.mod.lineStarts, newStarts[i]+startOffset)
	}

	c.mod.bytes = append(c.mod.bytes, txt...)

	endOffset := Length(len(c.mod.bytes))
	endIndex := Line(len(c.mod.lineStarts) - 1)
	endCol := endOffset - c.mod.lineStarts[endIndex]
	endPos := BufferCursor{Line: endIndex, Column: endCol}

	piece := Piece{
		Index:        ModBuf,
		First:        last,
		Last:         endPos,
		Length:       endOffset - startOffset,
		NewlineCount: c.lineFeedCount(ModBuf, last, endPos),
	}
	return piece, endPos
}

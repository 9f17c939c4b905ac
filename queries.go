package piecetree

import "bytes"

// view is the read-only query surface shared by Tree and its snapshots:
// a root, the buffer collection it indexes into, and the cached
// aggregates for that root. Tree embeds one directly; OwningSnap and
// ReferenceSnapshot each hold their own, frozen at the moment they were
// taken.
type view struct {
	buffers *BufferCollection
	root    *node
	meta    BufferMeta
}

// Len returns the document's total character length.
func (v *view) Len() Length {
	return v.meta.TotalContentLength
}

// IsEmpty reports whether the document has no content.
func (v *view) IsEmpty() bool {
	return v.meta.TotalContentLength == 0
}

// LineFeedCount returns the number of line feeds in the document.
func (v *view) LineFeedCount() LFCount {
	return v.meta.LFCount
}

// LineCount returns the number of lines in the document; a document with
// no line feeds still has exactly one line.
func (v *view) LineCount() Length {
	return v.meta.LFCount + 1
}

// At returns the byte at offset, or 0 if offset is out of range.
func (v *view) At(offset CharOffset) byte {
	return charAt(v.buffers, v.root, offset)
}

// LineAt returns the 1-based line number containing offset.
func (v *view) LineAt(offset CharOffset) Line {
	if v.IsEmpty() {
		return FirstLine
	}
	return nodeAt(v.buffers, v.root, offset).line
}

// LineRange returns the half-open byte range of line's content, excluding
// any trailing line terminator.
func (v *view) LineRange(line Line) LineRange {
	var r LineRange
	r.First = lineStartAccum(v.buffers, v.root, line, accumulateValue)
	r.Last = lineStartAccum(v.buffers, v.root, line+1, accumulateValueNoLF)
	return r
}

// LineRangeWithNewline is LineRange but includes the line's trailing '\n'
// (if any) in Last.
func (v *view) LineRangeWithNewline(line Line) LineRange {
	var r LineRange
	r.First = lineStartAccum(v.buffers, v.root, line, accumulateValue)
	r.Last = lineStartAccum(v.buffers, v.root, line+1, accumulateValue)
	return r
}

// LineRangeCRLF is LineRange but also excludes a trailing "\r\n" pair as a
// unit, rather than only the '\n'.
func (v *view) LineRangeCRLF(line Line) LineRange {
	var r LineRange
	r.First = lineStartAccum(v.buffers, v.root, line, accumulateValue)
	lineEndCRLF(v.buffers, v.root, v.root, line+1, &r.Last)
	return r
}

// LineContent returns the content of line, excluding its terminator.
func (v *view) LineContent(line Line) []byte {
	if line == LineBeginning {
		return nil
	}
	var buf bytes.Buffer
	start := lineStartAccum(v.buffers, v.root, line, accumulateValue)
	w := v.Forward(start)
	for !w.Exhausted() {
		c := w.Next()
		if c == '\n' {
			break
		}
		buf.WriteByte(c)
	}
	return buf.Bytes()
}

// LineContentCRLF is LineContent but also strips a trailing '\r' that
// precedes the line's '\n', reporting IncompleteCRLFYes when a trailing
// '\r' was found without a following '\n' before the walk exhausted.
func (v *view) LineContentCRLF(line Line) ([]byte, IncompleteCRLF) {
	if line == LineBeginning {
		return nil, CompleteCRLF
	}
	var buf bytes.Buffer
	start := lineStartAccum(v.buffers, v.root, line, accumulateValue)
	w := v.Forward(start)
	var prev byte
	for !w.Exhausted() {
		c := w.Next()
		if c == '\n' {
			if prev == '\r' {
				buf.Truncate(buf.Len() - 1)
			}
			return buf.Bytes(), CompleteCRLF
		}
		buf.WriteByte(c)
		prev = c
	}
	if prev == '\r' {
		return buf.Bytes(), IncompleteCRLFYes
	}
	return buf.Bytes(), CompleteCRLF
}

// Forward returns a ForwardWalker over v's content positioned at offset.
func (v *view) Forward(offset CharOffset) *ForwardWalker {
	w := &ForwardWalker{buffers: v.buffers, root: v.root, total: v.meta.TotalContentLength}
	w.Seek(offset)
	return w
}

// Reverse returns a ReverseWalker over v's content positioned just before
// offset.
func (v *view) Reverse(offset CharOffset) *ReverseWalker {
	w := &ReverseWalker{buffers: v.buffers, root: v.root, total: v.meta.TotalContentLength}
	w.Seek(offset)
	return w
}

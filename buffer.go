package piecetree

import (
	"bufio"
	"io"
)

// CharBuffer is an ordered byte sequence paired with a precomputed index of
// line starts. line_starts[0] is always 0; the slice is strictly
// increasing; entry i marks the byte one past the i-th line feed.
type CharBuffer struct {
	bytes      []byte
	lineStarts []LineStart
}

// populateLineStarts scans bytes and returns the line-start index: an
// entry of 0 followed by one entry i+1 for each byte i whose value is '\n'.
func populateLineStarts(bytes []byte) []LineStart {
	starts := make([]LineStart, 1, 16)
	starts[0] = 0
	for i, b := range bytes {
		if b == '\n' {
			starts = append(starts, LineStart(i+1))
		}
	}
	return starts
}

// newCharBuffer builds a CharBuffer over an immutable byte slice, computing
// its line-start index once.
func newCharBuffer(data []byte) *CharBuffer {
	return &CharBuffer{bytes: data, lineStarts: populateLineStarts(data)}
}

// lastLine returns the 0-based index of the buffer's final line.
func (b *CharBuffer) lastLine() Line {
	return Line(len(b.lineStarts) - 1)
}

// BufferCollection owns the modification buffer and holds the immutable
// original buffers shared with every tree derived from it.
type BufferCollection struct {
	original []*CharBuffer
	mod      CharBuffer
}

// bufferAt resolves a BufferIndex to its CharBuffer. ModBuf selects the
// modification buffer.
func (c *BufferCollection) bufferAt(index BufferIndex) *CharBuffer {
	if index == ModBuf {
		return &c.mod
	}
	return c.original[index]
}

// bufferOffset converts a buffer cursor into a byte offset within that
// buffer.
func (c *BufferCollection) bufferOffset(index BufferIndex, cursor BufferCursor) CharOffset {
	buf := c.bufferAt(index)
	return buf.lineStarts[cursor.Line] + cursor.Column
}

// clone copies the collection struct (not the buffer contents) so an
// owning snapshot can outlive the parent tree while still sharing the
// actual byte storage via the retained slices.
func (c *BufferCollection) clone() *BufferCollection {
	cp := &BufferCollection{
		original: make([]*CharBuffer, len(c.original)),
		mod:      c.mod,
	}
	copy(cp.original, c.original)
	return cp
}

// newBufferCollection creates a BufferCollection from the builder's
// original blobs. The modification buffer starts empty but always carries
// the single line-start entry of 0 so line_feed_count can index safely.
func newBufferCollection(blobs [][]byte) *BufferCollection {
	c := &BufferCollection{
		original: make([]*CharBuffer, 0, len(blobs)),
		mod:      CharBuffer{bytes: nil, lineStarts: []LineStart{0}},
	}
	for _, b := range blobs {
		c.original = append(c.original, newCharBuffer(b))
	}
	return c
}

// readAll drains an io.Reader into a single byte slice, matching the
// buffer-population convention used by the rest of the package (one blob
// in, one CharBuffer out).
func readAll(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	var out []byte
	buf := make([]byte, 64*1024)
	for {
		n, err := br.Read(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

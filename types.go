package piecetree

import "math"

// CharOffset is an absolute 0-based position in the virtual document.
type CharOffset = int64

// Length is a count of characters.
type Length = int64

// Line is a 1-based line number in the virtual document. The sentinel
// value LineBeginning (0) means "before line 1" and is only meaningful as
// an input denoting an empty range.
type Line = int64

// LineBeginning is the sentinel Line value meaning "before line 1", used
// as an input to reject queries that ask for a line that cannot exist.
const LineBeginning Line = 0

// FirstLine is the line number reported for an empty document, which
// always has exactly one (empty) line.
const FirstLine Line = 1

// Column is a 0-based column within a line, counted in characters.
type Column = int64

// LFCount is a count of line feeds.
type LFCount = int64

// BufferIndex identifies a character buffer. ModBuf denotes the
// modification buffer; all other non-negative values index the
// original-buffer vector.
type BufferIndex int

// ModBuf is the distinguished BufferIndex denoting the modification
// buffer.
const ModBuf BufferIndex = -1

// LineStart is a byte offset into a single buffer, marking the position
// immediately after a line feed (or the start of the buffer).
type LineStart = int64

// BufferCursor is a line-relative coordinate inside one buffer.
type BufferCursor struct {
	Line   Line
	Column Column
}

// sentinelOffset marks end_last_insert as "no insertion has happened yet",
// distinct from any valid offset (spec §9, "Coalescing of consecutive
// single-character inserts").
const sentinelOffset CharOffset = math.MaxInt64

// LineRange is a half-open byte range [First, Last) describing the
// content of a single line, excluding any trailing line terminator
// unless the caller asked for one to be included.
type LineRange struct {
	First CharOffset
	Last  CharOffset
}

// IncompleteCRLF indicates whether a CRLF-aware line query found a
// trailing '\r' with no following '\n'.
type IncompleteCRLF bool

const (
	CompleteCRLF      IncompleteCRLF = false
	IncompleteCRLFYes IncompleteCRLF = true
)

// UndoRedoResult reports whether a history navigation succeeded and, if
// so, the op_offset recorded for that transition.
type UndoRedoResult struct {
	Success  bool
	OpOffset CharOffset
}

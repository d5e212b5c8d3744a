package text

import (
	"errors"
	"fmt"
	"slices"
)

// LineIndex maps byte offsets to line/column locations over a UTF-8 source buffer.
//
// Line numbers are 0-based; columns are byte columns, not rune or grapheme
// columns. This is deliberately the minimal projection a diagnostic renderer
// needs; it is an external collaborator and not specified here.
type LineIndex struct {
	src        []byte
	lineStarts []ByteOffset
}

var errNilLineIndex = errors.New("nil LineIndex")

// NewLineIndex builds an index over src.
func NewLineIndex(src []byte) *LineIndex {
	starts := []ByteOffset{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	return &LineIndex{
		src:        src,
		lineStarts: starts,
	}
}

// SourceLen returns the source length in bytes.
func (li *LineIndex) SourceLen() ByteOffset {
	if li == nil {
		return 0
	}
	return ByteOffset(len(li.src))
}

// LineCount returns the number of logical lines in the source.
func (li *LineIndex) LineCount() int {
	if li == nil {
		return 0
	}
	return len(li.lineStarts)
}

// OffsetToPoint converts a byte offset to a line/column point.
func (li *LineIndex) OffsetToPoint(off ByteOffset) (Point, error) {
	if li == nil {
		return Point{}, errNilLineIndex
	}
	if !off.IsValid() || off > ByteOffset(len(li.src)) {
		return Point{}, fmt.Errorf("offset out of range: %d", off)
	}

	line := li.lineForOffset(off)
	return Point{
		Line:   line,
		Column: int(off - li.lineStarts[line]),
	}, nil
}

// lineForOffset returns the largest i such that lineStarts[i] <= off.
func (li *LineIndex) lineForOffset(off ByteOffset) int {
	i, found := slices.BinarySearch(li.lineStarts, off)
	if found {
		return i
	}
	return i - 1
}

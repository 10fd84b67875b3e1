package source

import (
	"fmt"
)

// Span is the line/column range a token or node occupies.
// Start is inclusive, End is exclusive; columns count Unicode scalar values.
type Span struct {
	File      FileID
	LineStart uint32
	LineEnd   uint32
	ColStart  uint32
	ColEnd    uint32
}

// Start returns the first position covered by the span.
func (s Span) Start() LineCol {
	return LineCol{Line: s.LineStart, Col: s.ColStart}
}

// End returns the position just past the span.
func (s Span) End() LineCol {
	return LineCol{Line: s.LineEnd, Col: s.ColEnd}
}

// Empty reports whether the span covers nothing.
func (s Span) Empty() bool {
	return s.LineStart == s.LineEnd && s.ColStart == s.ColEnd
}

// Valid checks the ordering invariant: start never comes after end.
func (s Span) Valid() bool {
	if s.LineStart == 0 || s.ColStart == 0 {
		return false
	}
	if s.LineStart != s.LineEnd {
		return s.LineStart < s.LineEnd
	}
	return s.ColStart <= s.ColEnd
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.LineStart, s.ColStart, s.LineEnd, s.ColEnd)
}

// Cover returns the smallest span containing both s and other.
// Spans from different files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start().Before(s.Start()) {
		s.LineStart, s.ColStart = other.LineStart, other.ColStart
	}
	if s.End().Before(other.End()) {
		s.LineEnd, s.ColEnd = other.LineEnd, other.ColEnd
	}
	return s
}

// ZeroideToEnd collapses the span to its end position.
func (s Span) ZeroideToEnd() Span {
	s.LineStart, s.ColStart = s.LineEnd, s.ColEnd
	return s
}

// Before reports whether p comes strictly before other.
func (p LineCol) Before(other LineCol) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

func (p LineCol) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

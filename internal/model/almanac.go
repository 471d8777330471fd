// Package model holds the data types shared across the almanac pipeline.
package model

// Number is the numeric identifier propagated through the pipeline.
// 64 bits so chained offsets cannot overflow on real inputs.
type Number uint64

// Span is a half-open interval [Start, End). Start == End is the empty span.
type Span struct {
	Start Number
	End   Number
}

// NewSpan builds a span from a start and a length.
func NewSpan(start, length Number) Span {
	return Span{Start: start, End: start + length}
}

// Contains reports whether n lies inside the span.
func (s Span) Contains(n Number) bool {
	return n >= s.Start && n < s.End
}

// Len returns the number of values covered by the span.
func (s Span) Len() Number {
	return s.End - s.Start
}

// RangeMapping is one contiguous offset rule within a stage: values in
// Src map to the value at the same offset in Dest. Both spans have
// equal length by construction.
type RangeMapping struct {
	Dest Span
	Src  Span
}

// NewRangeMapping builds a mapping from the wire-order triple
// (destination start, source start, length). length == 0 yields a
// mapping that never matches.
func NewRangeMapping(dest, src, length Number) RangeMapping {
	return RangeMapping{
		Dest: NewSpan(dest, length),
		Src:  NewSpan(src, length),
	}
}

// Lookup translates n into destination space. The second return is
// false when n is outside the source span; that is an expected
// outcome, not an error.
func (m RangeMapping) Lookup(n Number) (Number, bool) {
	if !m.Src.Contains(n) {
		return 0, false
	}

	return m.Dest.Start + (n - m.Src.Start), true
}

// Table is one named stage of the pipeline: an ordered list of range
// mappings between a source and a destination category. Tables are
// immutable once parsed.
type Table struct {
	From     string
	To       string
	Mappings []RangeMapping
}

// Resolve maps n through the first matching range, falling back to
// identity when nothing matches. If source ranges overlap (a
// data-integrity violation the parser does not detect) the earliest
// declared range wins.
func (t Table) Resolve(n Number) Number {
	for _, m := range t.Mappings {
		if out, ok := m.Lookup(n); ok {
			return out
		}
	}

	return n
}

// Almanac is the fully parsed input document: the seed list plus the
// stages in document order. The almanac owns its tables exclusively
// and is read-only after parse.
type Almanac struct {
	Seeds  []Number
	Tables []Table
}

package model

import "testing"

func TestRangeMapping_Lookup_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		dest  Number
		src   Number
		len   Number
		in    Number
		want  Number
		match bool
	}{
		{"source start", 50, 98, 2, 98, 50, true},
		{"last covered value", 50, 98, 2, 99, 51, true},
		{"one past the end", 50, 98, 2, 100, 0, false},
		{"one before the start", 50, 98, 2, 97, 0, false},
		{"far outside", 50, 98, 2, 17, 0, false},
		{"zero length never matches", 50, 98, 0, 98, 0, false},
		{"interior offset", 52, 50, 48, 53, 55, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRangeMapping(tt.dest, tt.src, tt.len)

			got, ok := m.Lookup(tt.in)
			if ok != tt.match {
				t.Fatalf("Lookup(%d) match = %v, want %v", tt.in, ok, tt.match)
			}

			if ok && got != tt.want {
				t.Fatalf("Lookup(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	s := NewSpan(4, 2)

	if s != (Span{Start: 4, End: 6}) {
		t.Fatalf("NewSpan(4, 2) = %+v, want [4, 6)", s)
	}

	for n, want := range map[Number]bool{3: false, 4: true, 5: true, 6: false} {
		if s.Contains(n) != want {
			t.Fatalf("Contains(%d) = %v, want %v", n, !want, want)
		}
	}
}

func TestTable_Resolve_FirstMatchThenIdentity(t *testing.T) {
	table := Table{
		From: "seed",
		To:   "soil",
		Mappings: []RangeMapping{
			NewRangeMapping(50, 98, 2),
			NewRangeMapping(52, 50, 48),
		},
	}

	tests := []struct {
		in   Number
		want Number
	}{
		{98, 50},
		{99, 51},
		{53, 55},
		{56, 58},
		{10, 10}, // unmapped passthrough
		{17, 17},
	}

	for _, tt := range tests {
		if got := table.Resolve(tt.in); got != tt.want {
			t.Fatalf("Resolve(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTable_Resolve_OverlapUsesEarliestRange(t *testing.T) {
	table := Table{
		Mappings: []RangeMapping{
			NewRangeMapping(100, 10, 5),
			NewRangeMapping(200, 10, 5),
		},
	}

	if got := table.Resolve(12); got != 102 {
		t.Fatalf("Resolve(12) = %d, want earliest-declared range to win (102)", got)
	}
}

func TestTable_Resolve_EmptyTableIsIdentity(t *testing.T) {
	table := Table{From: "water", To: "light"}

	if got := table.Resolve(42); got != 42 {
		t.Fatalf("Resolve(42) = %d, want identity 42", got)
	}
}

package puzzles

import "strings"

// gridPos addresses one cell of the schematic grid.
type gridPos struct {
	line int
	col  int
}

// partNumber is a number embedded in the grid, with the cells it spans.
type partNumber struct {
	value int
	line  int
	start int
	width int
}

// Schematic is the parsed engine schematic: every embedded number and
// every non-digit, non-dot symbol with its position.
type Schematic struct {
	numbers []partNumber
	symbols map[gridPos]rune
}

// ParseSchematic scans the grid in one pass per line, collecting
// numbers and symbols.
func ParseSchematic(input string) Schematic {
	s := Schematic{symbols: make(map[gridPos]rune)}

	for li, line := range strings.Split(input, "\n") {
		num, start := 0, -1

		flush := func(end int) {
			if start < 0 {
				return
			}

			s.numbers = append(s.numbers, partNumber{
				value: num,
				line:  li,
				start: start,
				width: end - start,
			})
			num, start = 0, -1
		}

		for i, c := range line {
			switch {
			case c >= '0' && c <= '9':
				if start < 0 {
					start = i
				}

				num = num*10 + int(c-'0')
			default:
				flush(i)

				if c != '.' {
					s.symbols[gridPos{line: li, col: i}] = c
				}
			}
		}

		flush(len(line))
	}

	return s
}

// adjacentToSymbol reports whether any cell neighboring the number
// (including diagonals) holds a symbol.
func (s Schematic) adjacentToSymbol(n partNumber) bool {
	for li := n.line - 1; li <= n.line+1; li++ {
		for col := n.start - 1; col <= n.start+n.width; col++ {
			if li == n.line && col >= n.start && col < n.start+n.width {
				continue
			}

			if _, ok := s.symbols[gridPos{line: li, col: col}]; ok {
				return true
			}
		}
	}

	return false
}

// PartNumbers returns the values adjacent to at least one symbol, in
// scan order.
func (s Schematic) PartNumbers() []int {
	var parts []int

	for _, n := range s.numbers {
		if s.adjacentToSymbol(n) {
			parts = append(parts, n.value)
		}
	}

	return parts
}

// SumPartNumbers parses the schematic and sums its part numbers.
func SumPartNumbers(input string) int {
	sum := 0
	for _, part := range ParseSchematic(input).PartNumbers() {
		sum += part
	}

	return sum
}

package puzzles

import (
	"fmt"
	"strconv"
	"strings"
)

// Card is one scratchcard: its number, the winning numbers, and the
// numbers you hold.
type Card struct {
	Number  int
	Winning []int
	Held    []int
}

// ParseCard parses a line like "Card 1: 41 48 83 | 83 86 6".
func ParseCard(line string) (Card, error) {
	title, rest, found := strings.Cut(line, ":")
	if !found {
		return Card{}, fmt.Errorf("card line missing colon: %q", line)
	}

	_, numStr, found := strings.Cut(strings.TrimSpace(title), " ")
	if !found {
		return Card{}, fmt.Errorf("card title %q missing number", title)
	}

	number, err := strconv.Atoi(strings.TrimSpace(numStr))
	if err != nil {
		return Card{}, fmt.Errorf("parse card number %q: %w", numStr, err)
	}

	winningStr, heldStr, found := strings.Cut(rest, "|")
	if !found {
		return Card{}, fmt.Errorf("card %d missing | separator", number)
	}

	winning, err := parseNumberList(winningStr)
	if err != nil {
		return Card{}, fmt.Errorf("card %d winning numbers: %w", number, err)
	}

	held, err := parseNumberList(heldStr)
	if err != nil {
		return Card{}, fmt.Errorf("card %d held numbers: %w", number, err)
	}

	return Card{Number: number, Winning: winning, Held: held}, nil
}

func parseNumberList(s string) ([]int, error) {
	fields := strings.Fields(s)
	nums := make([]int, 0, len(fields))

	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", field, err)
		}

		nums = append(nums, n)
	}

	return nums, nil
}

// Matches counts held numbers that appear among the winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}

	matches := 0

	for _, n := range c.Held {
		if _, ok := winning[n]; ok {
			matches++
		}
	}

	return matches
}

// Points scores a card: 1 for the first match, doubled per further match.
func (c Card) Points() int {
	matches := c.Matches()
	if matches == 0 {
		return 0
	}

	return 1 << (matches - 1)
}

// ParseCards parses one card per non-empty line.
func ParseCards(input string) ([]Card, error) {
	var cards []Card

	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		card, err := ParseCard(line)
		if err != nil {
			return nil, err
		}

		cards = append(cards, card)
	}

	return cards, nil
}

// TotalPoints sums the points of every card.
func TotalPoints(cards []Card) int {
	sum := 0
	for _, card := range cards {
		sum += card.Points()
	}

	return sum
}

// CountWonCards plays the cascading rule: each card wins one copy of
// the next Matches() cards per copy held, and the answer is the total
// number of cards held at the end.
func CountWonCards(cards []Card) int {
	held := make(map[int]int, len(cards))
	for _, card := range cards {
		held[card.Number] = 1
	}

	for _, card := range cards {
		copies := held[card.Number]

		for won := card.Number + 1; won <= card.Number+card.Matches(); won++ {
			if _, ok := held[won]; !ok {
				held[won] = 1
			}

			held[won] += copies
		}
	}

	total := 0
	for _, count := range held {
		total += count
	}

	return total
}

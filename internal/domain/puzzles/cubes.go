package puzzles

import (
	"fmt"
	"strconv"
	"strings"
)

// CubeSet is one draw of cubes from the bag, or the bag itself.
type CubeSet struct {
	Red   int
	Green int
	Blue  int
}

// Game is one line of the cube puzzle: an ID and the draws shown.
type Game struct {
	ID    int
	Draws []CubeSet
}

// ViableWith reports whether every draw fits inside the given bag.
func (g Game) ViableWith(bag CubeSet) bool {
	for _, d := range g.Draws {
		if d.Red > bag.Red || d.Green > bag.Green || d.Blue > bag.Blue {
			return false
		}
	}

	return true
}

// ParseGame parses a line like
// "Game 3: 8 green, 6 blue; 5 blue, 4 red".
func ParseGame(line string) (Game, error) {
	title, rest, found := strings.Cut(line, ":")
	if !found {
		return Game{}, fmt.Errorf("game line missing colon: %q", line)
	}

	idStr, ok := strings.CutPrefix(strings.TrimSpace(title), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("game title %q missing Game prefix", title)
	}

	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return Game{}, fmt.Errorf("parse game id %q: %w", idStr, err)
	}

	var draws []CubeSet

	for _, draw := range strings.Split(rest, ";") {
		set, err := parseCubeSet(draw)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}

		draws = append(draws, set)
	}

	return Game{ID: id, Draws: draws}, nil
}

func parseCubeSet(s string) (CubeSet, error) {
	var set CubeSet

	for _, part := range strings.Split(s, ",") {
		numStr, color, found := strings.Cut(strings.TrimSpace(part), " ")
		if !found {
			return CubeSet{}, fmt.Errorf("cube count missing color: %q", part)
		}

		num, err := strconv.Atoi(numStr)
		if err != nil {
			return CubeSet{}, fmt.Errorf("parse cube count %q: %w", numStr, err)
		}

		switch strings.TrimSpace(color) {
		case "red":
			set.Red = num
		case "green":
			set.Green = num
		case "blue":
			set.Blue = num
		default:
			return CubeSet{}, fmt.Errorf("unknown cube color %q", color)
		}
	}

	return set, nil
}

// SumViableGameIDs parses every line and sums the IDs of games that
// fit in the bag.
func SumViableGameIDs(input string, bag CubeSet) (int, error) {
	sum := 0

	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		game, err := ParseGame(line)
		if err != nil {
			return 0, err
		}

		if game.ViableWith(bag) {
			sum += game.ID
		}
	}

	return sum, nil
}

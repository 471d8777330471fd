// Package puzzles holds the self-contained daily solvers that share a
// repository with the almanac pipeline but no state or protocol with it.
package puzzles

import (
	"strconv"
	"strings"
)

// digitWords maps spelled-out digits to their numeric form, in value
// order so index+1 is the digit.
var digitWords = [9]string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// CalibrationValue combines the first and last digit characters of a
// line into a two-digit number. A line without digits contributes 0.
func CalibrationValue(line string) int {
	first, last := -1, 0

	for _, c := range line {
		if c < '0' || c > '9' {
			continue
		}

		d := int(c - '0')
		if first < 0 {
			first = d
		}

		last = d
	}

	if first < 0 {
		return 0
	}

	return first*10 + last
}

// SumCalibrations sums the calibration value of every line.
func SumCalibrations(input string) int {
	sum := 0
	for _, line := range strings.Split(input, "\n") {
		sum += CalibrationValue(line)
	}

	return sum
}

// RewriteDigitWords replaces every spelled-out digit with its numeric
// form, lowest digit first, so "eighttwothree" becomes "823". An
// overlapping word consumes letters its neighbor needs: "eightwo"
// collapses to "eigh2" because "two" claims the shared "t".
func RewriteDigitWords(line string) string {
	for i, word := range digitWords {
		line = strings.ReplaceAll(line, word, strconv.Itoa(i+1))
	}

	return line
}

// SumCalibrationsWithWords sums calibration values after rewriting
// spelled-out digits on each line.
func SumCalibrationsWithWords(input string) int {
	sum := 0
	for _, line := range strings.Split(input, "\n") {
		sum += CalibrationValue(RewriteDigitWords(line))
	}

	return sum
}

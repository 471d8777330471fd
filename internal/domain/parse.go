// Package domain implements the almanac grammar and the chained
// stage resolution that turns seed numbers into final locations.
package domain

import (
	"strconv"
	"strings"

	m "github.com/mouse-blink/almanac/internal/model"
)

// headerSeparator splits a stage header into its two category labels,
// as in "seed-to-soil map:".
const headerSeparator = "-to-"

// ParseAlmanac parses a full input document: a seed line, then one
// blank-line-delimited section per mapping table, in document order.
// Carriage returns are stripped first so Windows files parse the same
// as Unix ones. The first malformed section aborts the whole parse;
// no partial almanac is ever returned.
func ParseAlmanac(text string) (m.Almanac, error) {
	text = strings.ReplaceAll(text, "\r", "")

	sections := splitSections(text)
	if len(sections) == 0 {
		return m.Almanac{}, parseErr(ErrEmptyInput, "", "")
	}

	seeds, err := parseSeeds(sections[0])
	if err != nil {
		return m.Almanac{}, err
	}

	tables := make([]m.Table, 0, len(sections)-1)

	for _, section := range sections[1:] {
		table, err := parseTable(section)
		if err != nil {
			return m.Almanac{}, err
		}

		tables = append(tables, table)
	}

	return m.Almanac{Seeds: seeds, Tables: tables}, nil
}

// splitSections splits on blank lines, dropping whitespace-only
// sections so trailing blank lines are tolerated.
func splitSections(text string) []string {
	var sections []string

	for _, section := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(section) == "" {
			continue
		}

		sections = append(sections, section)
	}

	return sections
}

// parseSeeds parses the seed list block. Only the first line counts:
// an ignored label, a colon, then whitespace-separated numbers.
func parseSeeds(section string) ([]m.Number, error) {
	line, _, _ := strings.Cut(section, "\n")

	_, rest, found := strings.Cut(line, ":")
	if !found {
		return nil, parseErr(ErrMalformedSeeds, line, "")
	}

	fields := strings.Fields(rest)
	seeds := make([]m.Number, 0, len(fields))

	for _, field := range fields {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, parseErr(ErrMalformedSeeds, line, field)
		}

		seeds = append(seeds, m.Number(n))
	}

	return seeds, nil
}

// parseTable parses one stage section: a header line naming the
// source and destination categories, then zero or more mapping lines.
func parseTable(section string) (m.Table, error) {
	lines := strings.Split(section, "\n")
	header := lines[0]

	from, to, found := strings.Cut(header, headerSeparator)
	if !found {
		return m.Table{}, parseErr(ErrMalformedHeader, header, "")
	}

	// The destination label runs to the next whitespace, cutting off
	// the trailing " map:" marker.
	if i := strings.IndexAny(to, " \t"); i >= 0 {
		to = to[:i]
	}

	var mappings []m.RangeMapping

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		mapping, err := parseMapping(line)
		if err != nil {
			return m.Table{}, err
		}

		mappings = append(mappings, mapping)
	}

	return m.Table{From: from, To: to, Mappings: mappings}, nil
}

// parseMapping parses one "dest src len" triple.
func parseMapping(line string) (m.RangeMapping, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return m.RangeMapping{}, parseErr(ErrMalformedMapping, line, "")
	}

	nums := make([]m.Number, 3)

	for i, field := range fields {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return m.RangeMapping{}, parseErr(ErrMalformedMapping, line, field)
		}

		nums[i] = m.Number(n)
	}

	return m.NewRangeMapping(nums[0], nums[1], nums[2]), nil
}

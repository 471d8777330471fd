package domain

import (
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/almanac/internal/model"
)

// Resolver drives seeds through an almanac's stages. Seeds are
// independent and the almanac is immutable after parse, so resolution
// fans out over a bounded pool without any locking.
type Resolver struct {
	threads int
}

// NewResolver returns a resolver running up to threads seeds
// concurrently. Values below one fall back to sequential resolution.
func NewResolver(threads int) Resolver {
	if threads < 1 {
		threads = 1
	}

	return Resolver{threads: threads}
}

// ResolveSeed folds one seed through every table in document order.
// Stage composition is plain left-to-right function application;
// reordering tables changes the result.
func ResolveSeed(a m.Almanac, seed m.Number) m.Number {
	value := seed
	for _, table := range a.Tables {
		value = table.Resolve(value)
	}

	return value
}

// TraceSeed is ResolveSeed keeping every intermediate value. The
// returned slice holds the seed itself followed by one value per
// stage, so its length is len(a.Tables)+1.
func TraceSeed(a m.Almanac, seed m.Number) []m.Number {
	trace := make([]m.Number, 0, len(a.Tables)+1)
	trace = append(trace, seed)

	value := seed
	for _, table := range a.Tables {
		value = table.Resolve(value)
		trace = append(trace, value)
	}

	return trace
}

// ResolveAll resolves every seed, preserving seed-list order. Given a
// parsed almanac this cannot fail; all fallibility lives in the parse.
// The optional onResolved callback fires once per finished seed and
// must be safe for concurrent use.
func (r Resolver) ResolveAll(a m.Almanac, onResolved func(seed, location m.Number)) []m.Number {
	locations := make([]m.Number, len(a.Seeds))

	g := new(errgroup.Group)
	g.SetLimit(r.threads)

	for i, seed := range a.Seeds {
		g.Go(func() error {
			locations[i] = ResolveSeed(a, seed)

			if onResolved != nil {
				onResolved(seed, locations[i])
			}

			return nil
		})
	}

	// Workers never return errors; Wait only joins the pool.
	_ = g.Wait()

	return locations
}

// Min reduces resolved locations to the reported answer. An empty
// seed list has no well-defined minimum and surfaces ErrEmptyInput
// rather than a sentinel value.
func Min(locations []m.Number) (m.Number, error) {
	if len(locations) == 0 {
		return 0, parseErr(ErrEmptyInput, "", "")
	}

	min := locations[0]
	for _, loc := range locations[1:] {
		if loc < min {
			min = loc
		}
	}

	return min, nil
}

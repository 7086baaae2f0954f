// Package tally counts colour literals per key and orders the result for
// reporting.
package tally

import (
	"cmp"
	"slices"

	"github.com/jmylchreest/colourcount/internal/colour"
)

// Stat holds the usage statistics of one distinct colour.
// Total always equals the sum of the Usage counts.
type Stat struct {
	Total int
	Usage map[string]int
}

// Tally maps normalised colours ("#FF0000") to their statistics.
// A Tally is owned by a single run and is not safe for concurrent use.
type Tally struct {
	stats map[string]*Stat
}

// New creates an empty Tally.
func New() *Tally {
	return &Tally{stats: make(map[string]*Stat)}
}

// AddColour records one occurrence of the colour literal under key.
func (t *Tally) AddColour(key, literal string) {
	c := colour.NormaliseHex(literal)

	stat, ok := t.stats[c]
	if !ok {
		t.stats[c] = &Stat{Total: 1, Usage: map[string]int{key: 1}}
		return
	}

	stat.Total++
	stat.Usage[key]++
}

// Add records every colour literal found in value under key and returns how
// many were found. A colour appearing twice in value is counted twice.
func (t *Tally) Add(key, value string) int {
	literals := colour.FindHex(value)
	for _, literal := range literals {
		t.AddColour(key, literal)
	}
	return len(literals)
}

// Len returns the number of distinct colours.
func (t *Tally) Len() int {
	return len(t.stats)
}

// Occurrences returns the number of colour literals counted across all keys.
func (t *Tally) Occurrences() int {
	n := 0
	for _, stat := range t.stats {
		n += stat.Total
	}
	return n
}

// stat returns a copy of the statistics for a colour literal given in any
// case.
func (t *Tally) stat(c string) (Stat, bool) {
	stat, ok := t.stats[colour.NormaliseHex(c)]
	if !ok {
		return Stat{}, false
	}

	usage := make(map[string]int, len(stat.Usage))
	for k, v := range stat.Usage {
		usage[k] = v
	}
	return Stat{Total: stat.Total, Usage: usage}, true
}

// KeyCount is the number of times a colour was referenced by one key.
type KeyCount struct {
	Key   string
	Count int
}

// ColourCount is one entry of the ordered report.
type ColourCount struct {
	Colour string
	Total  int
	Usage  []KeyCount
}

// Sorted returns the colours ordered by descending total, ties broken by
// ascending colour. Each colour's keys are ordered the same way: descending
// count, then ascending key.
func (t *Tally) Sorted() []ColourCount {
	colours := make([]ColourCount, 0, len(t.stats))
	for c, stat := range t.stats {
		usage := make([]KeyCount, 0, len(stat.Usage))
		for key, count := range stat.Usage {
			usage = append(usage, KeyCount{Key: key, Count: count})
		}
		sortByCount(usage, func(u KeyCount) (string, int) { return u.Key, u.Count })

		colours = append(colours, ColourCount{Colour: c, Total: stat.Total, Usage: usage})
	}
	sortByCount(colours, func(c ColourCount) (string, int) { return c.Colour, c.Total })

	return colours
}

// sortByCount orders s alphabetically by name and then, stably, by
// descending count so that equal counts stay in name order.
func sortByCount[T any](s []T, fields func(T) (string, int)) {
	slices.SortFunc(s, func(a, b T) int {
		na, _ := fields(a)
		nb, _ := fields(b)
		return cmp.Compare(na, nb)
	})
	slices.SortStableFunc(s, func(a, b T) int {
		_, ca := fields(a)
		_, cb := fields(b)
		return cmp.Compare(cb, ca)
	})
}
